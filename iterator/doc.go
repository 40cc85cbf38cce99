// Package iterator demonstrates the Iterator pattern: sequential access
// to an aggregate's elements without exposing its representation.
//
// 🚀 What is an Iterator?
//
//	The aggregate hands out an iterator object; the iterator keeps the
//	traversal position, so several traversals can run over the same
//	aggregate at once, and the aggregate's internals stay hidden.
//
// Participants:
//   - Iterator  — the traversal interface: Next() (value, ok).
//   - Fibonacci — a concrete iterator producing an endless Fibonacci
//     stream; the state is just the current pair.
//   - Sequence  — the aggregate: names a stream and mints iterators
//     over it via Iter.
//
// ⚙️ Usage:
//
//	it := iterator.NewSequence("fib").Iter()
//	v, _ := it.Next() // 1
//	v, _ = it.Next()  // 1
//	v, _ = it.Next()  // 2
//
// The Next() (value, ok) shape is Go's native pull iterator; ok false
// marks exhaustion, which makes the "null iterator" boundary case of the
// textbook unnecessary. Take collects a bounded prefix of any iterator,
// finite or not. One classic caution: mutating an aggregate mid-
// traversal invalidates naive iterators; robust iterators promise
// otherwise at extra cost.
package iterator
