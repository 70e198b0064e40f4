package engine

// Counter is a mutable integer shared by pointer between the objects that
// read or change it. It is not clamped.
type Counter struct {
	value int
}

// NewCounter creates a counter holding the given value.
func NewCounter(value int) *Counter {
	return &Counter{value: value}
}

func (c *Counter) Value() int       { return c.value }
func (c *Counter) Increment()       { c.value++ }
func (c *Counter) Decrement()       { c.value-- }
func (c *Counter) IncreaseBy(n int) { c.value += n }
func (c *Counter) Set(v int)        { c.value = v }
func (c *Counter) Reset()           { c.value = 0 }
