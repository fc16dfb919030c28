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

// The range queries below rely on the ordering invariant of the tree; they
// neither sort nor validate.  Each of them descends a single root-to-leaf path
// and enumerates only subtrees that lie wholly inside the requested range, so
// retrieving k nodes costs O(h + k) for a tree of height h.

// LessThan returns an iterator over the nodes whose values are less than
// upper, in ascending order.
func (t *Tree[T]) LessThan(upper T) *Iterator[T] {
	return lessThan(t.root, upper, true, t.cmp)
}

// LessThanOrEqual returns an iterator over the nodes whose values are less than
// or equal to upper, in ascending order.
func (t *Tree[T]) LessThanOrEqual(upper T) *Iterator[T] {
	return lessThan(t.root, upper, false, t.cmp)
}

// GreaterThan returns an iterator over the nodes whose values are greater than
// lower, in ascending order.
func (t *Tree[T]) GreaterThan(lower T) *Iterator[T] {
	return greaterThan(t.root, lower, true, t.cmp)
}

// GreaterThanOrEqual returns an iterator over the nodes whose values are
// greater than or equal to lower, in ascending order.
func (t *Tree[T]) GreaterThanOrEqual(lower T) *Iterator[T] {
	return greaterThan(t.root, lower, false, t.cmp)
}

// Range returns an iterator over the nodes whose values lie between lower and
// upper, in ascending order.  Each bound is inclusive unless the corresponding
// exclude flag is set.  An inverted range, where lower is greater than upper,
// is empty.
func (t *Tree[T]) Range(lower, upper T, excludeLower, excludeUpper bool) *Iterator[T] {
	if t.root == nil || 0 < t.cmp(lower, upper) {
		return emptyIterator[T]()
	}

	current := t.root
	for current != nil {
		lo, hi := sign(t.cmp(lower, current.value)), sign(t.cmp(upper, current.value))
		if lo != hi {
			// the bounds diverge here, so current splits the range
			var split *Node[T]
			switch {
			case lo == 0:
				if !excludeLower {
					split = current
				}
			case hi == 0:
				if !excludeUpper {
					split = current
				}
			default:
				split = current
			}
			return concat(
				greaterThan(current.left, lower, excludeLower, t.cmp),
				single(split),
				lessThan(current.right, upper, excludeUpper, t.cmp),
			)
		}

		switch {
		case lo < 0:
			current = current.left
		case 0 < lo:
			current = current.right
		default:
			// lower and upper both equal current
			if excludeLower || excludeUpper {
				return emptyIterator[T]()
			}
			return single(current)
		}
	}
	return emptyIterator[T]()
}

// sign normalizes the result of a comparator to -1, 0 or +1.
func sign(compared int) int {
	switch {
	case compared < 0:
		return -1
	case 0 < compared:
		return +1
	}
	return 0
}

// lessThan returns an iterator over the nodes of the subtree rooted at root
// whose values are less than upper, or equal to it unless excludeUpper is set.
//
// Whenever the walk turns right, the node and its whole left subtree are
// below upper and are yielded before descending further.  Nothing to the
// right of an exact match is ever reached.
func lessThan[T any](root *Node[T], upper T, excludeUpper bool, cmp Comparator[T]) *Iterator[T] {
	var (
		current = root
		sub     *Iterator[T]
		pending *Node[T]
	)
	return newIterator(func() *Node[T] {
		for {
			if sub != nil {
				if n, ok := sub.Next(); ok {
					return n
				}
				sub = nil
				if pending != nil {
					n := pending
					pending = nil
					return n
				}
			}
			if current == nil {
				return nil
			}
			switch compared := cmp(upper, current.value); {
			case compared < 0:
				current = current.left
			case 0 < compared:
				sub, pending = InOrder(current.left), current
				current = current.right
			default:
				sub = InOrder(current.left)
				if !excludeUpper {
					pending = current
				}
				current = nil
			}
		}
	})
}

// greaterThan returns an iterator over the nodes of the subtree rooted at root
// whose values are greater than lower, or equal to it unless excludeLower is
// set.
//
// The walk towards lower collects every node at which it turns left; those
// are exactly the ancestors greater than lower.  They are then yielded
// deepest first, each followed by its right subtree, which interleaves them
// into ascending order.
func greaterThan[T any](root *Node[T], lower T, excludeLower bool, cmp Comparator[T]) *Iterator[T] {
	var (
		larger  stack[T]
		equal   *Node[T]
		sub     *Iterator[T]
		started bool
	)
	descend := func() {
		current := root
		for current != nil {
			switch compared := cmp(lower, current.value); {
			case compared < 0:
				larger.push(current)
				current = current.left
			case 0 < compared:
				current = current.right
			default:
				if !excludeLower {
					equal = current
				}
				// the right subtree of an exact match is above lower as well
				sub = InOrder(current.right)
				current = nil
			}
		}
	}
	return newIterator(func() *Node[T] {
		if !started {
			started = true
			descend()
			if equal != nil {
				return equal
			}
		}
		for {
			if sub != nil {
				if n, ok := sub.Next(); ok {
					return n
				}
				sub = nil
			}
			if len(larger) == 0 {
				return nil
			}
			n := larger.pop()
			sub = InOrder(n.right)
			return n
		}
	})
}
