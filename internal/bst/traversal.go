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

// Visitor is applied to each node visited by a walk.
type Visitor[T any] func(*Node[T])

// stack is a LIFO of nodes.
type stack[T any] []*Node[T]

func (s *stack[T]) push(n *Node[T]) {
	*s = append(*s, n)
}

// pop removes and returns the last node in the stack.
func (s *stack[T]) pop() (out *Node[T]) {
	index := len(*s) - 1
	out = (*s)[index]
	(*s)[index] = nil
	*s = (*s)[:index]
	return
}

func (s stack[T]) top() *Node[T] {
	return s[len(s)-1]
}

// InOrder returns an iterator over the subtree rooted at root that visits the
// left subtree, then the node, then the right subtree.  On a search tree this
// yields the nodes in ascending order.
//
// The iterator keeps an explicit stack rather than recursing, so it handles
// degenerate trees of any depth.
func InOrder[T any](root *Node[T]) *Iterator[T] {
	if root == nil {
		return emptyIterator[T]()
	}
	var s stack[T]
	current := root
	return newIterator(func() *Node[T] {
		for current != nil {
			s.push(current)
			current = current.left
		}
		if len(s) == 0 {
			return nil
		}
		n := s.pop()
		current = n.right
		return n
	})
}

// PreOrder returns an iterator over the subtree rooted at root that visits the
// node, then the left subtree, then the right subtree.
func PreOrder[T any](root *Node[T]) *Iterator[T] {
	if root == nil {
		return emptyIterator[T]()
	}
	s := stack[T]{root}
	return newIterator(func() *Node[T] {
		if len(s) == 0 {
			return nil
		}
		n := s.pop()
		if n.right != nil {
			s.push(n.right)
		}
		if n.left != nil {
			s.push(n.left)
		}
		return n
	})
}

// PostOrder returns an iterator over the subtree rooted at root that visits
// the left subtree, then the right subtree, then the node.
func PostOrder[T any](root *Node[T]) *Iterator[T] {
	if root == nil {
		return emptyIterator[T]()
	}
	var (
		s    stack[T]
		last *Node[T]
	)
	current := root
	return newIterator(func() *Node[T] {
		for {
			for current != nil {
				s.push(current)
				current = current.left
			}
			if len(s) == 0 {
				return nil
			}
			// descend right unless we are coming back from there
			if n := s.top(); n.right != nil && n.right != last {
				current = n.right
				continue
			}
			last = s.pop()
			return last
		}
	})
}

// BreadthFirst returns an iterator over the subtree rooted at root that visits
// the nodes level by level, left to right.
func BreadthFirst[T any](root *Node[T]) *Iterator[T] {
	if root == nil {
		return emptyIterator[T]()
	}
	queue := []*Node[T]{root}
	return newIterator(func() *Node[T] {
		if len(queue) == 0 {
			return nil
		}
		n := queue[0]
		queue[0] = nil
		queue = queue[1:]
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
		return n
	})
}

// WalkInOrder applies visit to every node of the subtree rooted at root in
// in-order.
func WalkInOrder[T any](root *Node[T], visit Visitor[T]) {
	if root == nil {
		return
	}
	WalkInOrder(root.left, visit)
	visit(root)
	WalkInOrder(root.right, visit)
}

// WalkPreOrder applies visit to every node of the subtree rooted at root in
// pre-order.
func WalkPreOrder[T any](root *Node[T], visit Visitor[T]) {
	if root == nil {
		return
	}
	visit(root)
	WalkPreOrder(root.left, visit)
	WalkPreOrder(root.right, visit)
}

// WalkPostOrder applies visit to every node of the subtree rooted at root in
// post-order.
func WalkPostOrder[T any](root *Node[T], visit Visitor[T]) {
	if root == nil {
		return
	}
	WalkPostOrder(root.left, visit)
	WalkPostOrder(root.right, visit)
	visit(root)
}

// WalkBreadthFirst applies visit to every node of the subtree rooted at root
// level by level.
func WalkBreadthFirst[T any](root *Node[T], visit Visitor[T]) {
	if root == nil {
		return
	}
	queue := []*Node[T]{root}
	for head := 0; head < len(queue); head++ {
		n := queue[head]
		visit(n)
		if n.left != nil {
			queue = append(queue, n.left)
		}
		if n.right != nil {
			queue = append(queue, n.right)
		}
	}
}

// DepthFirst walks the subtree rooted at root depth-first.  For every node,
// enter is called before descending left, pass between the left and the right
// descent and exit after the right descent.  Any of the hooks may be nil.
func DepthFirst[T any](root *Node[T], enter, pass, exit Visitor[T]) {
	if root == nil {
		return
	}
	if enter != nil {
		enter(root)
	}
	DepthFirst(root.left, enter, pass, exit)
	if pass != nil {
		pass(root)
	}
	DepthFirst(root.right, enter, pass, exit)
	if exit != nil {
		exit(root)
	}
}

// DepthFirstWithNil is like DepthFirst, but also calls each hook once with a
// nil node for every absent child, including an absent root.
func DepthFirstWithNil[T any](root *Node[T], enter, pass, exit Visitor[T]) {
	if enter != nil {
		enter(root)
	}
	if root != nil {
		DepthFirstWithNil(root.left, enter, pass, exit)
	}
	if pass != nil {
		pass(root)
	}
	if root != nil {
		DepthFirstWithNil(root.right, enter, pass, exit)
	}
	if exit != nil {
		exit(root)
	}
}
