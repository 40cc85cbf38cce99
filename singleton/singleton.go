package singleton

import "sync"

// Counter is the singleton: one mutex-guarded tally for the whole
// process. Construct only through Instance.
type Counter struct {
	mu    sync.Mutex
	value int
}

var (
	once     sync.Once
	instance *Counter
)

// Instance returns the process-wide Counter, constructing it on the
// first call. Safe for concurrent use; every caller gets the same
// instance.
func Instance() *Counter {
	once.Do(func() {
		instance = &Counter{}
	})

	return instance
}

// Set overwrites the tally.
func (c *Counter) Set(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = n
}

// Incr adds one to the tally and returns the new value.
func (c *Counter) Incr() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value++

	return c.value
}

// Value reads the tally.
func (c *Counter) Value() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.value
}
