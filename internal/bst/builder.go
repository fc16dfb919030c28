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

import "golang.org/x/exp/constraints"

// NodeConfig describes the shape of a node graph: a value and optional left
// and right subtrees.  The shape is taken as given; nothing checks that it is
// ordered.
type NodeConfig[T any] struct {
	Value T
	Left  *NodeConfig[T]
	Right *NodeConfig[T]
}

// Leaf returns the configuration of a node without children.
func Leaf[T any](value T) *NodeConfig[T] {
	return &NodeConfig[T]{Value: value}
}

// Build creates the node graph described by c and returns its root.
func (c *NodeConfig[T]) Build() *Node[T] {
	if c == nil {
		return nil
	}
	n := NewNode(c.Value)
	n.SetLeft(c.Left.Build())
	n.SetRight(c.Right.Build())
	return n
}

// BuildTree creates a tree over the node graph described by c, ordered by the
// natural order of T.
func BuildTree[T constraints.Ordered](c *NodeConfig[T]) *Tree[T] {
	return NewFromRoot(c.Build())
}

// BuildTreeWithComparator creates a tree over the node graph described by c,
// ordered by the given comparator.
func BuildTreeWithComparator[T any](c *NodeConfig[T], cmp Comparator[T]) *Tree[T] {
	return NewFromRootWithComparator(c.Build(), cmp)
}
