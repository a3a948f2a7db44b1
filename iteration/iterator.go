package iteration

import (
	"iter"
)

// Produces values one at a time. ok is false once the sequence is exhausted.
type Iterator[T any] interface {
	Next() (v T, ok bool)
}

// Implemented by iterators that can estimate how many values remain.
//
// lower must never exceed the number of remaining values. If bounded is true,
// upper must never be below it.
type SizeHinter interface {
	SizeHint() (lower, upper int, bounded bool)
}

// An iterator that can also take values from the back of the sequence
type DoubleEnded[T any] interface {
	Iterator[T]
	NextBack() (v T, ok bool)
}

// Adapts a function to the Iterator interface
type NextFunc[T any] func() (T, bool)

func (f NextFunc[T]) Next() (T, bool) {
	return f()
}

type funcEnds[T any] struct {
	next, nextBack func() (T, bool)
}

// Combine two functions taking values from the front and the back of the same sequence into a DoubleEnded iterator
func Ends[T any](next, nextBack func() (T, bool)) DoubleEnded[T] {
	return funcEnds[T]{next: next, nextBack: nextBack}
}

func (e funcEnds[T]) Next() (T, bool)     { return e.next() }
func (e funcEnds[T]) NextBack() (T, bool) { return e.nextBack() }

// A double-ended iterator over a slice with an exact size hint
type SliceIterator[T any] struct {
	s           []T
	front, back int
}

// Create an iterator over s. The slice is not copied and must not be changed while iterating
func Slice[T any](s []T) *SliceIterator[T] {
	return &SliceIterator[T]{s: s, back: len(s)}
}

func (it *SliceIterator[T]) Next() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	v := it.s[it.front]
	it.front++
	return v, true
}

func (it *SliceIterator[T]) NextBack() (T, bool) {
	if it.front >= it.back {
		var zero T
		return zero, false
	}
	it.back--
	return it.s[it.back], true
}

func (it *SliceIterator[T]) SizeHint() (int, int, bool) {
	n := it.back - it.front
	return n, n, true
}

// Return a factory of iterators over seq.
//
// seq must be re-iterable: every call of the factory ranges over it from the start.
// The iterators are built with iter.Pull and release it once they report exhaustion.
func Pull[T any](seq iter.Seq[T]) func() Iterator[T] {
	return func() Iterator[T] {
		next, stop := iter.Pull(seq)
		return &pulled[T]{next: next, stop: stop}
	}
}

type pulled[T any] struct {
	next func() (T, bool)
	stop func()
}

func (p *pulled[T]) Next() (T, bool) {
	v, ok := p.next()
	if !ok {
		p.stop()
	}
	return v, ok
}
