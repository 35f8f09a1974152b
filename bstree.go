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

// Package bstree implements an in-memory, unbalanced binary search tree that
// stores multiple equivalent values.
//
// Every value in a node's left subtree is less than or equal to the node's
// value, and every value in its right subtree is strictly greater. Equivalent
// values therefore always live to the left of their topmost occurrence, which
// is what Count and Delete rely on.
//
// Values can be inserted three ways, all producing structurally identical
// trees for the same input order:
//   - Insert descends recursively and writes into the first empty slot.
//   - InsertIterative does the same with an explicit loop.
//   - InsertPersistent returns a new version of the tree and leaves the
//     receiver observably unchanged.  Only the root-to-leaf path is copied;
//     every other subtree is shared between the two versions.
//
// Shared subtrees are never written to.  Each Tree tracks which nodes it may
// write, and in-place operations copy a shared node before touching it, so
// versions produced by InsertPersistent or Clone can be mutated independently.
//
// The tree is not balanced: its height depends only on insertion order.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, but Read operations are.
package bstree

import (
	"errors"
	"reflect"
	"sync"
	"sync/atomic"
)

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~float32 | ~float64 | ~string
}

// LessFunc[T] determines how to order a type 'T'.  It should implement a strict
// ordering, and should return true if within that ordering, 'a' < 'b'.
type LessFunc[T any] func(a, b T) bool

// Less[T] returns a default LessFunc that uses the '<' operator for types that support it.
func Less[T Ordered]() LessFunc[T] {
	return func(a, b T) bool { return a < b }
}

const (
	// DefaultFreeListSize is the size of the free list New gives each tree.
	DefaultFreeListSize = 32
)

// ErrSoleNode is returned by Delete when the value to remove is held by the
// only node left in the tree.  A tree has no way to empty itself through
// Delete; callers should Clear it instead.
var ErrSoleNode = errors.New("bstree: cannot delete the sole node of a tree; use Clear instead")

// FreeList represents a free list of tree nodes.  By default each Tree has
// its own FreeList, and versions produced by Clone or InsertPersistent share
// their parent's.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// node is a single element of the tree.
//
// A node owns its children.  parent is an observer pointer and is never
// followed to reach nodes the current version does not own.
type node[T any] struct {
	item   T
	left   *node[T]
	right  *node[T]
	parent *node[T]
}

// cowContext handles the sharing of nodes between tree versions.
//
// Each Tree has its own context which keeps track of which nodes it may
// write to.
type cowContext[T any] struct {
	// writables is the set of nodes the tree can safely write to.
	// nil means all nodes are unshared; empty means all nodes are shared.
	//
	// Forking a tree swaps the set of the receiver, which may be read by
	// other goroutines at the same time, so it is only ever loaded and
	// replaced atomically.
	writables atomic.Pointer[map[*node[T]]bool]
	freelist  *FreeList[T]
}

// shared marks all nodes shared.  Concurrent callers agree on a single
// empty set, and a context that is already all-shared is left as is.
func (c *cowContext[T]) shared() {
	for {
		cur := c.writables.Load()
		if cur != nil && len(*cur) == 0 {
			return
		}
		next := make(map[*node[T]]bool)
		if c.writables.CompareAndSwap(cur, &next) {
			return
		}
	}
}

func (c *cowContext[T]) writable(n *node[T]) bool {
	w := c.writables.Load()
	return w == nil || (*w)[n]
}

const valuelessParent = "bstree: node without a value cannot have children"

// newNode returns a new node holding item.  Absent values may only be
// stored in leaves.
func (c *cowContext[T]) newNode(parent *node[T], item T, left, right *node[T]) *node[T] {
	if (left != nil || right != nil) && isAbsent(item) {
		panic(valuelessParent)
	}
	n := c.freelist.newNode()
	n.item, n.left, n.right, n.parent = item, left, right, parent
	// If there are shared nodes, mark this new one unshared
	if w := c.writables.Load(); w != nil {
		(*w)[n] = true
	}
	return n
}

// freeNode releases a node that has been detached from the tree.  Shared
// nodes are left alone since another version still refers to them.
func (c *cowContext[T]) freeNode(n *node[T]) {
	if !c.writable(n) {
		return
	}
	var zero T
	n.item, n.left, n.right, n.parent = zero, nil, nil, nil
	if w := c.writables.Load(); w != nil {
		delete(*w, n)
	}
	c.freelist.freeNode(n)
}

// copyNode returns a writable copy of the shared node n, attached under
// parent.  The children are shared with n.
func (c *cowContext[T]) copyNode(n, parent *node[T]) *node[T] {
	return c.newNode(parent, n.item, n.left, n.right)
}

// mustHoldValue panics if n holds an absent value.  It guards every place
// a child is attached to an existing node.
func (n *node[T]) mustHoldValue() {
	if isAbsent(n.item) {
		panic(valuelessParent)
	}
}

// isAbsent reports whether v is a nil pointer, interface, map, slice,
// func or chan.
func isAbsent[T any](v T) bool {
	rv := reflect.ValueOf(any(v))
	if !rv.IsValid() {
		return true
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// Tree is an unbalanced binary search tree that permits duplicates.
//
// The zero value is not usable; create trees with New or NewOrdered.
type Tree[T any] struct {
	root   *node[T]
	length int
	less   LessFunc[T]
	cow    *cowContext[T]
}

// New creates an empty tree ordered by less.
func New[T any](less LessFunc[T]) *Tree[T] {
	return NewWithFreeList(less, NewFreeList[T](DefaultFreeListSize))
}

// NewOrdered creates an empty tree for ordered types.
func NewOrdered[T Ordered]() *Tree[T] {
	return New[T](Less[T]())
}

// NewWithFreeList creates an empty tree that uses the given node free list.
func NewWithFreeList[T any](less LessFunc[T], f *FreeList[T]) *Tree[T] {
	if less == nil {
		panic("bstree: nil LessFunc")
	}
	return &Tree[T]{
		less: less,
		cow:  &cowContext[T]{freelist: f},
	}
}

// Build creates a tree from items.  The first item becomes the root and the
// remaining ones are inserted in order using strategy s.
func Build[T any](less LessFunc[T], s Strategy, items []T) *Tree[T] {
	t := New[T](less)
	for _, item := range items {
		t = t.InsertWith(s, item)
	}
	return t
}

// BuildOrdered is Build for ordered types.
func BuildOrdered[T Ordered](s Strategy, items []T) *Tree[T] {
	return Build[T](Less[T](), s, items)
}

// equal reports whether a and b are equivalent under t's ordering.
func (t *Tree[T]) equal(a, b T) bool {
	return !t.less(a, b) && !t.less(b, a)
}

// routesLeft reports whether item belongs in the left subtree of a node
// holding pivot.  Ties go left.
func (t *Tree[T]) routesLeft(pivot, item T) bool {
	return !t.less(pivot, item)
}

// Len returns the number of items currently in the tree.
func (t *Tree[T]) Len() int {
	return t.length
}

// Clear removes all items from the tree.  This is the only way to remove
// the last remaining item.
func (t *Tree[T]) Clear() {
	t.root, t.length = nil, 0
	t.cow.writables.Store(nil)
}

// Clone clones the tree, lazily.  Clone should not be called concurrently,
// but the original tree (t) and the new tree (t2) can be used concurrently
// once the Clone call completes.
//
// The internal nodes are shared between t and t2.  Writes to either tree
// copy the nodes they touch first, so neither version observes the other's
// changes.
func (t *Tree[T]) Clone() (t2 *Tree[T]) {
	return t.fork()
}

// fork returns a new tree that shares every node with t and marks both
// trees as sharing.  t is only marked through its atomic writable set, so
// several goroutines may fork the same tree at once.
func (t *Tree[T]) fork() *Tree[T] {
	out := &Tree[T]{
		root:   t.root,
		length: t.length,
		less:   t.less,
		cow:    &cowContext[T]{freelist: t.cow.freelist},
	}
	if t.root != nil {
		t.cow.shared()
		out.cow.shared()
	}
	return out
}

// mutableRoot returns a writable version of the root, copying it first if
// it is shared.
func (t *Tree[T]) mutableRoot() *node[T] {
	if t.root != nil && !t.cow.writable(t.root) {
		t.root = t.cow.copyNode(t.root, nil)
	}
	return t.root
}

// mutableLeft returns a writable version of n's left child.  n itself must
// already be writable.
func (t *Tree[T]) mutableLeft(n *node[T]) *node[T] {
	if n.left != nil && !t.cow.writable(n.left) {
		n.left = t.cow.copyNode(n.left, n)
	}
	return n.left
}

// mutableRight returns a writable version of n's right child.  n itself must
// already be writable.
func (t *Tree[T]) mutableRight(n *node[T]) *node[T] {
	if n.right != nil && !t.cow.writable(n.right) {
		n.right = t.cow.copyNode(n.right, n)
	}
	return n.right
}
