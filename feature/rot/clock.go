package rot

import "foodfunk/core/matching"

// Clock tracks the decay of one stack in game ticks.
type Clock struct {
	// Start is the tick decay is measured from. Preservation moves it forward.
	Start int64 `json:"start"`
	// Duration is the number of ticks until the stack is rotten.
	Duration int64 `json:"duration"`
}

// NewClock starts decay at now for an item with property p. Items that never
// rot get no clock.
func NewClock(p Property, now int64) (Clock, bool) {
	if !p.Rots() {
		return Clock{}, false
	}
	return Clock{Start: now, Duration: p.Ticks()}, true
}

// Expiry is the tick at which the stack is rotten.
func (c Clock) Expiry() int64 {
	return c.Start + c.Duration
}

// IsRotten reports whether the stack has rotted by now.
func (c Clock) IsRotten(now int64) bool {
	return now >= c.Expiry()
}

// Percent is how far decay has progressed at now, clamped to 0..100.
func (c Clock) Percent(now int64) int {
	if c.Duration <= 0 {
		return 100
	}
	elapsed := now - c.Start
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= c.Duration:
		return 100
	}
	return int(elapsed * 100 / c.Duration)
}

// Preserve credits elapsed ticks spent in a container with the given
// preserving ratio: ratio percent of that time does not count toward decay.
func (c Clock) Preserve(ratio int, elapsed int64) Clock {
	if ratio <= 0 || elapsed <= 0 {
		return c
	}
	if ratio > 100 {
		ratio = 100
	}
	c.Start += elapsed * int64(ratio) / 100
	return c
}

// Expiration is the tick at which a stack created at now expires while held in
// a container with the given preserving ratio. It reports false for stacks that
// never rot, including those whose decay is halted.
func Expiration(t *matching.Table[Property], stack *matching.ItemStack, now int64, ratio int) (int64, bool) {
	p, ok := t.PropertyStack(stack)
	if !ok || !p.Rots() || ratio >= 100 {
		return 0, false
	}
	if ratio < 0 {
		ratio = 0
	}
	return now + p.Ticks()*100/int64(100-ratio), true
}
