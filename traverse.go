// Copyright 2024 Google Inc.
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

package bstree

import "iter"

// The four pre-order traversals below visit a node, then its left subtree,
// then its right subtree.  For a given tree they all produce the same
// sequence.  None of them tolerate the tree being modified mid-walk.

// ItemVisitor is called by Preorder and PreorderIterative for every item.
type ItemVisitor[T any] func(item T)

func (n *node[T]) preorder(visit ItemVisitor[T]) {
	if n == nil {
		return
	}
	visit(n.item)
	n.left.preorder(visit)
	n.right.preorder(visit)
}

// Preorder calls visit for every item of the tree in pre-order, recursing
// down the tree.  It returns once the whole tree has been visited.
func (t *Tree[T]) Preorder(visit ItemVisitor[T]) {
	t.root.preorder(visit)
}

// PreorderIterative is Preorder driven by an explicit stack instead of
// recursion.
func (t *Tree[T]) PreorderIterative(visit ItemVisitor[T]) {
	if t.root == nil {
		return
	}
	stack := []*node[T]{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visit(n.item)
		// Right goes first so that left is popped first.
		if n.right != nil {
			stack = append(stack, n.right)
		}
		if n.left != nil {
			stack = append(stack, n.left)
		}
	}
}

func (n *node[T]) preorderSeq(yield func(T) bool) bool {
	if n == nil {
		return true
	}
	return yield(n.item) && n.left.preorderSeq(yield) && n.right.preorderSeq(yield)
}

// PreorderSeq returns a lazy pre-order sequence of the tree's items,
// produced by recursive descent.  The caller may stop early.  Each call to
// the returned sequence starts a fresh walk.
func (t *Tree[T]) PreorderSeq() iter.Seq[T] {
	root := t.root
	return func(yield func(T) bool) {
		root.preorderSeq(yield)
	}
}

// Iterator walks a tree in pre-order one item at a time, keeping its
// position on an explicit stack.  An Iterator cannot be rewound; ask the
// tree for a new one to start over.
type Iterator[T any] struct {
	stack []*node[T]
}

// PreorderIterator returns an Iterator positioned before the first item of
// the tree.
func (t *Tree[T]) PreorderIterator() *Iterator[T] {
	it := &Iterator[T]{}
	if t.root != nil {
		it.stack = append(it.stack, t.root)
	}
	return it
}

// Next returns the next item, or (zeroValue, false) once the walk is over.
func (it *Iterator[T]) Next() (_ T, _ bool) {
	if len(it.stack) == 0 {
		return
	}
	n := it.stack[len(it.stack)-1]
	it.stack[len(it.stack)-1] = nil
	it.stack = it.stack[:len(it.stack)-1]
	if n.right != nil {
		it.stack = append(it.stack, n.right)
	}
	if n.left != nil {
		it.stack = append(it.stack, n.left)
	}
	return n.item, true
}

// All returns the remaining items of the walk as a sequence.  Items consumed
// by the sequence are consumed from the Iterator too.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for item, ok := it.Next(); ok; item, ok = it.Next() {
			if !yield(item) {
				return
			}
		}
	}
}
