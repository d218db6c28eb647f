// Package image loads Intcode program images: comma-separated signed
// decimal cells.
package image

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	imageLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `[-+]?\d+`},
		{Name: "Punct", Pattern: `,`},
		{Name: "whitespace", Pattern: `\s+`},
	})

	parser = participle.MustBuild[Image](
		participle.Lexer(imageLexer),
		participle.Elide("whitespace"),
	)
)

type Image struct {
	Cells []*Cell `@@ ( "," @@ )*`
}

type Cell struct {
	Pos   lexer.Position
	Value string `@Int`
}

// Parse parses source into program memory. name is used in error positions.
func Parse(name, source string) ([]int64, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, &ParseError{
			Message: "empty program image",
			Pos:     lexer.Position{Filename: name, Line: 1, Column: 1},
			Help:    "an image is a comma-separated list of integers, e.g. 1,0,0,0,99",
		}
	}

	img, err := parser.ParseString(name, source)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &ParseError{
				Message: perr.Message(),
				Pos:     perr.Position(),
				Source:  source,
				Help:    "cells must be signed decimal integers separated by commas",
			}
		}
		return nil, fmt.Errorf("parse %s: %w", name, err)
	}

	cells := make([]int64, len(img.Cells))
	for i, c := range img.Cells {
		v, err := strconv.ParseInt(c.Value, 10, 64)
		if err != nil {
			return nil, &ParseError{
				Message: fmt.Sprintf("cell %d does not fit in 64 bits", i),
				Pos:     c.Pos,
				Source:  source,
				Snippet: c.Value,
			}
		}
		cells[i] = v
	}
	return cells, nil
}

// Load reads and parses the image at path.
func Load(path string) ([]int64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read program image %s: %w", path, err)
	}
	return Parse(path, string(data))
}
