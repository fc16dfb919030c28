// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build go1.18
// +build go1.18

package bst

// NodeIterator allows callers of ForEach to iterate over a sequence of nodes.
// When this function returns false, iteration will stop and ForEach will
// immediately return.
type NodeIterator[T any] func(*Node[T]) bool

// Iterator is a lazy, single-pass sequence of nodes.  Each traversal or range
// query creates a fresh iterator; an exhausted iterator stays exhausted.
//
// An iterator follows the links of the tree as it advances, so the tree must
// not be mutated until the iterator is exhausted or dropped.
type Iterator[T any] struct {
	next func() *Node[T]
}

// newIterator creates an iterator that draws nodes from next until it returns
// nil.
func newIterator[T any](next func() *Node[T]) *Iterator[T] {
	return &Iterator[T]{next: next}
}

// emptyIterator returns an iterator that yields nothing.
func emptyIterator[T any]() *Iterator[T] {
	return &Iterator[T]{}
}

// Next advances the iterator, returning the next node and true, or nil and
// false once the sequence is exhausted.
func (it *Iterator[T]) Next() (*Node[T], bool) {
	if it.next == nil {
		return nil, false
	}
	n := it.next()
	if n == nil {
		it.next = nil
		return nil, false
	}
	return n, true
}

// ForEach calls iter for every remaining node, until iter returns false.
func (it *Iterator[T]) ForEach(iter NodeIterator[T]) {
	for n, ok := it.Next(); ok; n, ok = it.Next() {
		if !iter(n) {
			return
		}
	}
}

// Nodes drains the iterator into a slice.
func (it *Iterator[T]) Nodes() (out []*Node[T]) {
	it.ForEach(func(n *Node[T]) bool {
		out = append(out, n)
		return true
	})
	return
}

// Values drains the iterator into a slice of the values of its nodes.
func (it *Iterator[T]) Values() (out []T) {
	it.ForEach(func(n *Node[T]) bool {
		out = append(out, n.value)
		return true
	})
	return
}

// concat chains the given iterators.  Each one is consumed only after the
// previous one is exhausted.
func concat[T any](its ...*Iterator[T]) *Iterator[T] {
	return newIterator(func() *Node[T] {
		for 0 < len(its) {
			if n, ok := its[0].Next(); ok {
				return n
			}
			its[0] = nil
			its = its[1:]
		}
		return nil
	})
}

// single returns an iterator that yields n alone, or nothing if n is nil.
func single[T any](n *Node[T]) *Iterator[T] {
	return newIterator(func() (out *Node[T]) {
		out, n = n, nil
		return
	})
}
