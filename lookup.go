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

// ItemIterator allows callers of Ascend to iterate in-order over the tree.
// When this function returns false, iteration will stop and Ascend will
// immediately return.
type ItemIterator[T any] func(item T) bool

// find returns the topmost node holding an item equivalent to key, or nil.
func (t *Tree[T]) find(n *node[T], key T) *node[T] {
	if n == nil {
		return nil
	}
	switch {
	case t.less(key, n.item):
		return t.find(n.left, key)
	case t.less(n.item, key):
		return t.find(n.right, key)
	}
	return n
}

// Has returns true if the given key is in the tree.
func (t *Tree[T]) Has(key T) bool {
	return t.find(t.root, key) != nil
}

// count returns the number of items equivalent to key below n.  Once a match
// is found the search continues only to the left, where all of its
// duplicates live.
func (t *Tree[T]) count(n *node[T], key T) int {
	if n == nil {
		return 0
	}
	switch {
	case t.less(key, n.item):
		return t.count(n.left, key)
	case t.less(n.item, key):
		return t.count(n.right, key)
	}
	return 1 + t.count(n.left, key)
}

// Count returns how many items equivalent to key are in the tree.
func (t *Tree[T]) Count(key T) int {
	return t.count(t.root, key)
}

// min returns the leftmost node of the subtree.
func min[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// max returns the rightmost node of the subtree.
func max[T any](n *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}

// Min returns the smallest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Min() (_ T, _ bool) {
	if n := min(t.root); n != nil {
		return n.item, true
	}
	return
}

// Max returns the largest item in the tree, or (zeroValue, false) if the tree is empty.
func (t *Tree[T]) Max() (_ T, _ bool) {
	if n := max(t.root); n != nil {
		return n.item, true
	}
	return
}

func (n *node[T]) size() int {
	if n == nil {
		return 0
	}
	return 1 + n.left.size() + n.right.size()
}

// Size counts the nodes of the tree.  Unlike Len, which is maintained as the
// tree changes, Size walks the whole tree.
func (t *Tree[T]) Size() int {
	return t.root.size()
}

func (n *node[T]) depth() int {
	d := 0
	if n.left != nil {
		d = 1 + n.left.depth()
	}
	if n.right != nil {
		if r := 1 + n.right.depth(); r > d {
			d = r
		}
	}
	return d
}

// Depth returns the number of edges on the longest path from the root to a
// leaf: 0 for a single item and -1 for an empty tree.
func (t *Tree[T]) Depth() int {
	if t.root == nil {
		return -1
	}
	return t.root.depth()
}

func (n *node[T]) ascend(iter ItemIterator[T]) bool {
	if n == nil {
		return true
	}
	return n.left.ascend(iter) && iter(n.item) && n.right.ascend(iter)
}

// Ascend calls the iterator for every value in the tree in ascending order,
// until iterator returns false.
func (t *Tree[T]) Ascend(iterator ItemIterator[T]) {
	t.root.ascend(iterator)
}
