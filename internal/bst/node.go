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

// Node is a single element of a binary search tree.
//
// The left and right links own their subtrees.  The parent link is a
// back-reference and must at all times be the inverse of whichever child link
// of the parent points to this node, or nil if this node is a root or is
// detached.
type Node[T any] struct {
	value  T
	parent *Node[T]
	left   *Node[T]
	right  *Node[T]
}

// NewNode creates a detached node holding the given value.
func NewNode[T any](value T) *Node[T] {
	return &Node[T]{value: value}
}

// Value returns the value held by the node.
func (n *Node[T]) Value() T {
	return n.value
}

// Parent returns the parent of the node, or nil.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Left returns the left child of the node, or nil.
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the right child of the node, or nil.
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// SetLeft links child as the left child of the node and updates its parent
// link.  The previous left child, if any, is detached from the node.
func (n *Node[T]) SetLeft(child *Node[T]) {
	if n.left != nil && n.left.parent == n {
		n.left.parent = nil
	}
	n.left = child
	if child != nil {
		child.parent = n
	}
}

// SetRight links child as the right child of the node and updates its parent
// link.  The previous right child, if any, is detached from the node.
func (n *Node[T]) SetRight(child *Node[T]) {
	if n.right != nil && n.right.parent == n {
		n.right.parent = nil
	}
	n.right = child
	if child != nil {
		child.parent = n
	}
}

// Min returns the leftmost node of the subtree rooted at n.
func (n *Node[T]) Min() *Node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// Max returns the rightmost node of the subtree rooted at n.
func (n *Node[T]) Max() *Node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Successor returns the in-order successor of n, or nil if n holds the
// largest value of its tree.
func (n *Node[T]) Successor() *Node[T] {
	if n.right != nil {
		return n.right.Min()
	}
	current := n.parent
	for current != nil && n == current.right {
		n, current = current, current.parent
	}
	return current
}

// Predecessor returns the in-order predecessor of n, or nil if n holds the
// smallest value of its tree.
func (n *Node[T]) Predecessor() *Node[T] {
	if n.left != nil {
		return n.left.Max()
	}
	current := n.parent
	for current != nil && n == current.left {
		n, current = current, current.parent
	}
	return current
}

// detach clears all links of the node.
func (n *Node[T]) detach() {
	n.parent, n.left, n.right = nil, nil, nil
}

// Height returns the number of nodes on the longest path from n down to a
// leaf.  The height of a nil node is zero.
func Height[T any](n *Node[T]) int {
	if n == nil {
		return 0
	}
	left, right := Height(n.left), Height(n.right)
	if left < right {
		return right + 1
	}
	return left + 1
}
