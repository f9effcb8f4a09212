// Package clicks tracks the player's click total for a session.
package clicks

// Counter holds the session's click total. It never goes negative.
type Counter struct {
	value int64
}

// New creates a counter starting at zero.
func New() *Counter {
	return &Counter{}
}

// Value returns the current click total.
func (c *Counter) Value() int64 {
	return c.value
}

// Add increases the total by n clicks and returns the new total.
// Non-positive n is ignored.
func (c *Counter) Add(n int64) int64 {
	if n > 0 {
		c.value += n
	}
	return c.value
}

// Spend deducts n clicks if the total covers it.
func (c *Counter) Spend(n int64) bool {
	if n < 0 || n > c.value {
		return false
	}
	c.value -= n
	return true
}

// Reset sets the total back to zero.
func (c *Counter) Reset() {
	c.value = 0
}
