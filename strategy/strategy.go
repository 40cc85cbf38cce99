package strategy

// Strategy is the interface all interchangeable algorithms satisfy.
type Strategy interface {
	Run() string
}

// Fast is a concrete strategy.
type Fast struct{}

// Run executes the fast algorithm.
func (Fast) Run() string { return "very fast algorithm" }

// Slow is a concrete strategy.
type Slow struct{}

// Run executes the slow algorithm.
func (Slow) Run() string { return "very slow algorithm ..." }

// Task is the context: its behaviour is whatever strategy is currently
// attached.
type Task struct {
	strategy Strategy
}

// NewTask returns a task using s.
func NewTask(s Strategy) *Task {
	return &Task{strategy: s}
}

// SetStrategy swaps the algorithm at runtime.
func (t *Task) SetStrategy(s Strategy) {
	t.strategy = s
}

// Run forwards to the attached strategy.
func (t *Task) Run() string {
	return t.strategy.Run()
}
