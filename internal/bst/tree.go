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

// Package bst implements an in-memory binary search tree.
//
// bst implements an unbalanced binary search tree for use as an ordered index.
// It is not meant for persistent storage solutions.  Balancing is not
// maintained on mutation; instead, Rebalance rebuilds the whole tree into one
// of minimal height on demand.
//
// Every node keeps a back-reference to its parent, which makes successor and
// predecessor lookups possible without a stack, and the range queries
// retrieve k nodes in O(log n + k) on a balanced tree without enumerating any
// subtree that lies wholly outside the range.
//
// A tree is not safe for concurrent use.  Iterators follow the links of the
// tree lazily, so the tree must not be mutated while an iterator is being
// consumed; doing so yields undefined results.  Callers that share a tree
// between goroutines must provide their own synchronization.
package bst

import (
	"errors"
	"fmt"

	"github.com/9rum/bstree/internal/order"
	"golang.org/x/exp/constraints"
)

// ErrDuplicateKey is returned when inserting a value that compares equal to a
// value already in the tree.
var ErrDuplicateKey = errors.New("bst: duplicate key")

// Comparator is a total order on T.  It must return a negative number when a
// is less than b, zero when a equals b and a positive number otherwise.
type Comparator[T any] func(a, b T) int

// Tree is a binary search tree of unique values.
//
// For every node, all values in its left subtree compare less than its value
// and all values in its right subtree compare greater.
type Tree[T any] struct {
	root *Node[T]
	cmp  Comparator[T]
}

// New creates a new empty tree ordered by the natural order of T.
func New[T constraints.Ordered]() *Tree[T] {
	return NewWithComparator[T](order.Ordered[T])
}

// NewWithComparator creates a new empty tree ordered by the given comparator.
func NewWithComparator[T any](cmp Comparator[T]) *Tree[T] {
	if cmp == nil {
		panic("nil comparator")
	}
	return &Tree[T]{cmp: cmp}
}

// NewFromRoot creates a new tree over the node graph rooted at root, ordered
// by the natural order of T.  The graph is adopted as is; it is the caller's
// responsibility that it satisfies the ordering invariant.
func NewFromRoot[T constraints.Ordered](root *Node[T]) *Tree[T] {
	return NewFromRootWithComparator[T](root, order.Ordered[T])
}

// NewFromRootWithComparator creates a new tree over the node graph rooted at
// root, ordered by the given comparator.
func NewFromRootWithComparator[T any](root *Node[T], cmp Comparator[T]) *Tree[T] {
	t := NewWithComparator(cmp)
	t.setRoot(root)
	return t
}

// NewFromValues creates a balanced tree holding the given values, ordered by
// the natural order of T.  It returns ErrDuplicateKey if two of the values are
// equal.
func NewFromValues[T constraints.Ordered](values ...T) (*Tree[T], error) {
	return NewFromValuesWithComparator[T](order.Ordered[T], values...)
}

// NewFromValuesWithComparator creates a balanced tree holding the given
// values, ordered by the given comparator.
func NewFromValuesWithComparator[T any](cmp Comparator[T], values ...T) (*Tree[T], error) {
	nodes := make([]*Node[T], 0, len(values))
	for _, value := range values {
		nodes = append(nodes, NewNode(value))
	}
	sortNodes(nodes, cmp)
	for i := 1; i < len(nodes); i++ {
		if cmp(nodes[i-1].value, nodes[i].value) == 0 {
			return nil, fmt.Errorf("%w: %v", ErrDuplicateKey, nodes[i].value)
		}
	}
	return NewFromRootWithComparator(buildSorted(nodes), cmp), nil
}

// Root returns the root node of the tree, or nil if the tree is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Comparator returns the order of the tree.
func (t *Tree[T]) Comparator() Comparator[T] {
	return t.cmp
}

// setRoot makes n the root of the tree.
func (t *Tree[T]) setRoot(n *Node[T]) {
	t.root = n
	if n != nil {
		n.parent = nil
	}
}

// Search looks for the node holding the given value, returning nil if no such
// node exists.
func (t *Tree[T]) Search(value T) *Node[T] {
	current := t.root
	for current != nil {
		switch compared := t.cmp(value, current.value); {
		case compared < 0:
			current = current.left
		case 0 < compared:
			current = current.right
		default:
			return current
		}
	}
	return nil
}

// Has returns true if the given value is in the tree.
func (t *Tree[T]) Has(value T) bool {
	return t.Search(value) != nil
}

// Min returns the node holding the smallest value, or nil if the tree is
// empty.
func (t *Tree[T]) Min() *Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.Min()
}

// Max returns the node holding the largest value, or nil if the tree is empty.
func (t *Tree[T]) Max() *Node[T] {
	if t.root == nil {
		return nil
	}
	return t.root.Max()
}

// Len returns the number of nodes in the tree.  This walks the whole tree.
func (t *Tree[T]) Len() (n int) {
	WalkInOrder(t.root, func(*Node[T]) {
		n++
	})
	return
}

// Insert adds the given value to the tree.  If a value in the tree already
// equals the given one, the tree is left unmodified and an error wrapping
// ErrDuplicateKey is returned.
func (t *Tree[T]) Insert(value T) error {
	return t.InsertNode(NewNode(value))
}

// InsertNode links the given detached node into the tree.  The node's child
// links are cleared.
func (t *Tree[T]) InsertNode(n *Node[T]) error {
	var parent *Node[T]
	current := t.root
	compared := 0
	for current != nil {
		parent = current
		if compared = t.cmp(n.value, current.value); compared < 0 {
			current = current.left
		} else if 0 < compared {
			current = current.right
		} else {
			return fmt.Errorf("%w: %v", ErrDuplicateKey, n.value)
		}
	}

	n.detach()
	switch {
	case parent == nil:
		t.root = n
	case compared < 0:
		parent.SetLeft(n)
	default:
		parent.SetRight(n)
	}
	return nil
}

// Delete removes the node holding the given value from the tree, returning
// true.  If no such node exists, the tree is left unmodified and false is
// returned.
func (t *Tree[T]) Delete(value T) bool {
	n := t.Search(value)
	if n == nil {
		return false
	}
	t.DeleteNode(n)
	return true
}

// DeleteNode unlinks the given node from the tree.  n must be reachable from
// the root of this tree.
//
// A node with two children is replaced by its in-order successor, the
// leftmost node of its right subtree.
func (t *Tree[T]) DeleteNode(n *Node[T]) {
	switch {
	case n.left == nil:
		t.Replace(n, n.right)
	case n.right == nil:
		t.Replace(n, n.left)
	default:
		successor := n.right.Min()
		if successor.parent != n {
			// detach the successor, then hand it the right subtree
			t.Replace(successor, successor.right)
			successor.right = n.right
			successor.right.parent = successor
		}
		t.Replace(n, successor)
		successor.left = n.left
		successor.left.parent = successor
	}
	n.detach()
}

// Replace puts replacement in the position of n by rewiring the child link
// of n's parent, or the root of the tree if n is the root.  Only the parent
// side is updated; relinking the children of n onto replacement is up to the
// caller.
func (t *Tree[T]) Replace(n, replacement *Node[T]) {
	switch {
	case n.parent == nil:
		t.root = replacement
	case n == n.parent.left:
		n.parent.left = replacement
	default:
		n.parent.right = replacement
	}
	if replacement != nil {
		replacement.parent = n.parent
	}
}

// Valid reports whether the tree satisfies the ordering invariant, holds no
// equal values and keeps every parent link consistent with its child links.
func (t *Tree[T]) Valid() bool {
	if t.root != nil && t.root.parent != nil {
		return false
	}
	var prev *Node[T]
	for it := InOrder(t.root); ; {
		n, ok := it.Next()
		if !ok {
			return true
		}
		if prev != nil && 0 <= t.cmp(prev.value, n.value) {
			return false
		}
		if (n.left != nil && n.left.parent != n) || (n.right != nil && n.right.parent != n) {
			return false
		}
		prev = n
	}
}
