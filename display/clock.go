package display

import "time"

// Clock measures the seconds between frames for backends whose frame rate is not
// fixed, such as ebiten's Draw with vsync off.
type Clock struct {
	now  func() time.Time
	last time.Time
}

func NewClock() *Clock {
	return &Clock{now: time.Now}
}

// Tick returns the seconds since the previous Tick. The first call has nothing to
// measure against and returns first.
func (c *Clock) Tick(first float64) float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return first
	}
	dt := t.Sub(c.last).Seconds()
	c.last = t
	return dt
}
