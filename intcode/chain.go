package intcode

// Chain joins two steppers so that every output of head is queued as input
// of tail. Only tail's outputs are visible to the caller. Longer pipelines
// nest: the tail of a Chain may itself be a Chain.
type Chain struct {
	head Stepper
	tail Stepper
}

func NewChain(head, tail Stepper) *Chain {
	return &Chain{head: head, tail: tail}
}

// Pipeline chains the machines in order. A single machine is returned as is.
func Pipeline(stages ...*Machine) Stepper {
	if len(stages) == 0 {
		panic("intcode: Pipeline needs at least one machine")
	}
	var s Stepper = stages[len(stages)-1]
	for i := len(stages) - 2; i >= 0; i-- {
		s = NewChain(stages[i], s)
	}
	return s
}

func (c *Chain) stepper() {}

// AddInput queues values on the head of the chain.
func (c *Chain) AddInput(values ...int64) {
	c.head.AddInput(values...)
}

// Halted reports whether the tail has halted; upstream stages may halt
// earlier.
func (c *Chain) Halted() bool { return c.tail.Halted() }

// Step advances the head once, forwards any head output to the tail, then
// advances the tail once. NeedInput is reported only when the tail is
// starved and the head cannot make progress either.
func (c *Chain) Step() (Status, int64) {
	if c.tail.Halted() {
		fault(FaultHalted, -1, 0)
	}

	headStatus := Halt
	if !c.head.Halted() {
		var value int64
		headStatus, value = c.head.Step()
		if headStatus == Output {
			c.tail.AddInput(value)
		}
	}

	status, value := c.tail.Step()
	if status == NeedInput && (headStatus == Proceed || headStatus == Output) {
		return Proceed, 0
	}
	return status, value
}

func (c *Chain) RunToOutput() (int64, bool) { return RunToOutput(c) }

func (c *Chain) Run() []int64 { return Run(c) }

// Feedback runs s with every output routed back into its own input until
// it halts, and returns the last output. Inputs that prime the loop must be
// queued before calling.
func Feedback(s Stepper) int64 {
	var last int64
	for {
		switch status, value := s.Step(); status {
		case Output:
			last = value
			s.AddInput(value)
		case NeedInput:
			fault(FaultMissingInput, pcOf(s), 0)
		case Halt:
			return last
		}
	}
}
