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

import (
	"fmt"
	"strings"
)

// TreeString returns the structure of the subtree rooted at root as a fully
// parenthesized string, e.g. "(2(1(null)(null))(null))".  Absent children
// and an absent root are written as "(null)".
func TreeString[T any](root *Node[T]) string {
	var sb strings.Builder
	DepthFirstWithNil(root, func(n *Node[T]) {
		if n == nil {
			sb.WriteString("(null")
			return
		}
		fmt.Fprintf(&sb, "(%v", n.value)
	}, nil, func(*Node[T]) {
		sb.WriteByte(')')
	})
	return sb.String()
}

// InOrderString joins the values of the subtree rooted at root in in-order
// with dashes.
func InOrderString[T any](root *Node[T]) string {
	return join(InOrder(root))
}

// PreOrderString joins the values of the subtree rooted at root in pre-order
// with dashes.
func PreOrderString[T any](root *Node[T]) string {
	return join(PreOrder(root))
}

// PostOrderString joins the values of the subtree rooted at root in
// post-order with dashes.
func PostOrderString[T any](root *Node[T]) string {
	return join(PostOrder(root))
}

func join[T any](it *Iterator[T]) string {
	var values []string
	it.ForEach(func(n *Node[T]) bool {
		values = append(values, fmt.Sprint(n.value))
		return true
	})
	return strings.Join(values, "-")
}

// String returns the value of the node in its default format.
func (n *Node[T]) String() string {
	return fmt.Sprint(n.value)
}
