// Package clock makes the current time controllable from tests.
package clock

import (
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	current Clock = DefaultClock{}
)

type Clock interface {
	Now() time.Time
}

type DefaultClock struct{}

func (c DefaultClock) Now() time.Time {
	return time.Now()
}

// TestClock is a clock whose time moves only when asked.
type TestClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewTestClockAt(date time.Time) *TestClock {
	return &TestClock{
		now: date,
	}
}

func (c *TestClock) FastForward(d time.Duration) time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
	return c.now
}

func (c *TestClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func CurrentClock() Clock {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Same as time.Now() but makes possible to control time from unit tests.
func Now() time.Time {
	return CurrentClock().Now()
}

// FreezeAt stops the time at the given date until Unfreeze is called.
func FreezeAt(now time.Time) *TestClock {
	testClock := NewTestClockAt(now)
	mu.Lock()
	current = testClock
	mu.Unlock()
	return testClock
}

// Freeze stops the time at the current date.
func Freeze() *TestClock {
	return FreezeAt(time.Now())
}

func Unfreeze() {
	mu.Lock()
	current = DefaultClock{}
	mu.Unlock()
}
