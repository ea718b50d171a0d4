package progress

// Reporter tracks a bounded, monotonically increasing step counter paired
// with a status label.
type Reporter interface {
	// Start resets the counter to zero and sets the step total.
	Start(total int)
	// Advance moves the counter forward by one and shows label.
	Advance(label string)
	// Complete moves the counter to the total and shows label.
	Complete(label string)
	// Stop finalizes the display. Calling it more than once is harmless.
	Stop()
}

// counter holds the state shared by every Reporter implementation.
type counter struct {
	count int
	total int
	label string
}

func (c *counter) start(total int) {
	if total < 0 {
		total = 0
	}
	c.count = 0
	c.total = total
	c.label = ""
}

// advance increments the counter without passing the total.
func (c *counter) advance(label string) {
	if c.count < c.total {
		c.count++
	}
	c.label = label
}

func (c *counter) complete(label string) {
	c.count = c.total
	c.label = label
}

func (c *counter) percent() int {
	if c.total == 0 {
		return 100
	}
	return c.count * 100 / c.total
}

// Count returns the current counter value.
func (c *counter) Count() int { return c.count }

// Total returns the step total passed to Start.
func (c *counter) Total() int { return c.total }
