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

import (
	"fmt"
	"strings"
)

// Strategy selects one of the insertion algorithms.  All strategies produce
// structurally identical trees for the same sequence of inserts.
type Strategy int

const (
	Recursive  Strategy = iota // Insert
	Iterative                  // InsertIterative
	Persistent                 // InsertPersistent
)

var strategyNames = [...]string{
	Recursive:  "recursive",
	Iterative:  "iterative",
	Persistent: "persistent",
}

func (s Strategy) String() string {
	if s < 0 || int(s) >= len(strategyNames) {
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
	return strategyNames[s]
}

// ParseStrategy returns the Strategy with the given name, ignoring case.
func ParseStrategy(name string) (Strategy, error) {
	for i, n := range strategyNames {
		if strings.EqualFold(n, name) {
			return Strategy(i), nil
		}
	}
	return 0, fmt.Errorf("bstree: unknown insertion strategy %q", name)
}

// InsertWith inserts item using strategy s and returns the resulting tree.
// For Recursive and Iterative that is t itself; for Persistent it is a new
// version and t is left unchanged.
func (t *Tree[T]) InsertWith(s Strategy, item T) *Tree[T] {
	switch s {
	case Recursive:
		t.Insert(item)
	case Iterative:
		t.InsertIterative(item)
	case Persistent:
		return t.InsertPersistent(item)
	default:
		panic("bstree: invalid strategy")
	}
	return t
}

// Insert adds item to the tree by recursive descent.  Equivalent items
// already in the tree are kept; the new one is placed to their left.
func (t *Tree[T]) Insert(item T) {
	if t.root == nil {
		t.root = t.cow.newNode(nil, item, nil, nil)
	} else {
		t.insert(t.mutableRoot(), item)
	}
	t.length++
}

// insert adds item below n, which must be writable.  It does not touch
// t.length.
func (t *Tree[T]) insert(n *node[T], item T) {
	if t.routesLeft(n.item, item) {
		if n.left == nil {
			n.mustHoldValue()
			n.left = t.cow.newNode(n, item, nil, nil)
			return
		}
		t.insert(t.mutableLeft(n), item)
		return
	}
	if n.right == nil {
		n.mustHoldValue()
		n.right = t.cow.newNode(n, item, nil, nil)
		return
	}
	t.insert(t.mutableRight(n), item)
}

// InsertIterative adds item to the tree exactly like Insert, but walks down
// with a loop instead of recursion.  Use it for trees deep enough to make
// recursion a concern.
func (t *Tree[T]) InsertIterative(item T) {
	if t.root == nil {
		t.root = t.cow.newNode(nil, item, nil, nil)
		t.length++
		return
	}
	var parent *node[T]
	var leftChild bool
	for n := t.mutableRoot(); n != nil; {
		parent = n
		if leftChild = t.routesLeft(n.item, item); leftChild {
			n = t.mutableLeft(n)
		} else {
			n = t.mutableRight(n)
		}
	}
	parent.mustHoldValue()
	child := t.cow.newNode(parent, item, nil, nil)
	if leftChild {
		parent.left = child
	} else {
		parent.right = child
	}
	t.length++
}

// InsertPersistent returns a new tree holding every item of t plus item.
// t is not modified: only the nodes on the path from the root to the new
// leaf are copied, and every other subtree is shared by both trees.
//
// After the call both trees treat their common nodes as shared, so later
// in-place writes to either one copy before writing.  InsertPersistent may
// run while other goroutines read t, but not while anything writes to it.
func (t *Tree[T]) InsertPersistent(item T) *Tree[T] {
	out := t.fork()
	out.root = out.insertPersistent(t.root, nil, item)
	out.length++
	return out
}

// insertPersistent returns a copy of the subtree rooted at n with item
// added, reparented under parent.
func (t *Tree[T]) insertPersistent(n, parent *node[T], item T) *node[T] {
	if n == nil {
		return t.cow.newNode(parent, item, nil, nil)
	}
	n.mustHoldValue()
	c := t.cow.newNode(parent, n.item, n.left, n.right)
	if t.routesLeft(n.item, item) {
		c.left = t.insertPersistent(n.left, c, item)
	} else {
		c.right = t.insertPersistent(n.right, c, item)
	}
	return c
}
