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

import "errors"

// Delete removes one item equivalent to the given one from the tree and
// returns how many were removed: 1, or 0 if there was no such item.
//
// If the only node left in the tree holds the item, Delete returns
// ErrSoleNode and leaves the tree unchanged.  Use Clear to empty a tree.
func (t *Tree[T]) Delete(item T) (int, error) {
	if t.root == nil || t.find(t.root, item) == nil {
		return 0, nil
	}
	if t.root.left == nil && t.root.right == nil {
		return 0, ErrSoleNode
	}
	removed := t.remove(t.mutableRoot(), item)
	t.length -= removed
	return removed, nil
}

// DeleteAll removes every item equivalent to the given one and returns how
// many were removed, which always equals Count(item) before the call.  If
// that leaves nothing in the tree, the tree is cleared.
func (t *Tree[T]) DeleteAll(item T) int {
	total := 0
	for {
		removed, err := t.Delete(item)
		if errors.Is(err, ErrSoleNode) {
			t.Clear()
			return total + 1
		}
		if removed == 0 {
			return total
		}
		total += removed
	}
}

// remove deletes one item equivalent to the given one from the subtree
// rooted at n, which must be writable, and reports how many it removed.
//
// A matched node keeps its place in the tree and takes over the value of a
// donor: the largest item of its left subtree if there is one, otherwise
// the smallest of its right subtree.  The donor is then removed instead.
func (t *Tree[T]) remove(n *node[T], item T) int {
	if n == nil {
		return 0
	}
	switch {
	case t.less(item, n.item):
		return t.remove(t.mutableLeft(n), item)
	case t.less(n.item, item):
		return t.remove(t.mutableRight(n), item)
	}
	switch {
	case n.left != nil:
		// A valueless donor may only end up in a node that becomes a leaf.
		if donor := max(n.left); n.right != nil || n.left != donor {
			donor.mustHoldValue()
		}
		left := t.mutableLeft(n)
		n.item = max(left).item
		t.mustRemove(left, n.item)
	case n.right != nil:
		if donor := min(n.right); n.right != donor {
			donor.mustHoldValue()
		}
		right := t.mutableRight(n)
		minInRight := min(right).item
		n.item = minInRight
		t.mustRemove(right, minInRight)
		// Items in the right subtree must be strictly greater than n.item,
		// so every other copy of minInRight has to move to the left.
		for t.remove(t.mutableRight(n), minInRight) == 1 {
			t.insert(n, minInRight)
		}
	default:
		// n has a parent: Delete refuses to detach a lone root.
		parent := n.parent
		if parent.left == n {
			parent.left = nil
		} else {
			parent.right = nil
		}
		t.cow.freeNode(n)
	}
	return 1
}

// mustRemove removes an item known to be in the subtree rooted at n.
func (t *Tree[T]) mustRemove(n *node[T], item T) {
	if t.remove(n, item) != 1 {
		panic("bstree: donor item missing from subtree")
	}
}
