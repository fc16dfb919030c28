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

import "sort"

// BuildBalanced links the given nodes into a tree of minimal height and
// returns its root, or nil if there are no nodes.  The nodes are sorted by cmp
// first; the caller must ensure that no two of them compare equal.  Any
// previous links of the nodes are discarded.
func BuildBalanced[T any](nodes []*Node[T], cmp Comparator[T]) *Node[T] {
	sorted := make([]*Node[T], len(nodes))
	copy(sorted, nodes)
	sortNodes(sorted, cmp)
	return buildSorted(sorted)
}

// Rebalance rebuilds the tree into one of minimal height.  The nodes of the
// tree are kept and only their links change.
func (t *Tree[T]) Rebalance() {
	t.setRoot(buildSorted(InOrder(t.root).Nodes()))
}

// sortNodes sorts the given nodes by their values.
func sortNodes[T any](nodes []*Node[T], cmp Comparator[T]) {
	sort.SliceStable(nodes, func(i, j int) bool {
		return cmp(nodes[i].value, nodes[j].value) < 0
	})
}

// buildSorted links the given sorted nodes into a tree of minimal height.
func buildSorted[T any](sorted []*Node[T]) (root *Node[T]) {
	if root = build(sorted, 0, len(sorted)-1); root != nil {
		root.parent = nil
	}
	return
}

// build links sorted[start:end+1] into a subtree rooted at the median and
// returns it.  On even counts the lower middle is taken as the median.
func build[T any](sorted []*Node[T], start, end int) *Node[T] {
	if end < start {
		return nil
	}
	mid := (start + end) / 2
	n := sorted[mid]
	n.left = build(sorted, start, mid-1)
	if n.left != nil {
		n.left.parent = n
	}
	n.right = build(sorted, mid+1, end)
	if n.right != nil {
		n.right.parent = n
	}
	return n
}
