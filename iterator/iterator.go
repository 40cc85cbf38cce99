package iterator

// Iterator is the traversal interface. ok is false once the sequence is
// exhausted; infinite sequences simply never report false.
type Iterator interface {
	Next() (value uint64, ok bool)
}

// Fibonacci iterates the Fibonacci numbers endlessly. Each iterator
// carries its own position, so independent traversals never interfere.
type Fibonacci struct {
	current, next uint64
}

// NewFibonacci returns an iterator positioned before the first Fibonacci
// number.
func NewFibonacci() *Fibonacci {
	return &Fibonacci{current: 0, next: 1}
}

// Next advances and returns the next Fibonacci number. ok is always
// true; the stream is infinite.
func (f *Fibonacci) Next() (uint64, bool) {
	f.current, f.next = f.next, f.current+f.next

	return f.current, true
}

// Sequence is the aggregate: a named stream handing out iterators over
// its elements.
type Sequence struct {
	// Name labels the stream.
	Name string
}

// NewSequence returns a named Fibonacci sequence.
func NewSequence(name string) *Sequence {
	return &Sequence{Name: name}
}

// Iter mints a fresh iterator positioned at the start of the sequence.
func (s *Sequence) Iter() Iterator {
	return NewFibonacci()
}

// Take collects up to n values from it into a slice. Stops early if the
// iterator is exhausted first.
func Take(it Iterator, n int) []uint64 {
	out := make([]uint64, 0, n)
	for len(out) < n {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}

	return out
}
