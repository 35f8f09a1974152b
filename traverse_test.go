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
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allPreorders collects the output of every pre-order traversal of tr.
func allPreorders[T any](tr *Tree[T]) map[string][]T {
	out := map[string][]T{}
	var rec, iterative []T
	tr.Preorder(func(item T) { rec = append(rec, item) })
	tr.PreorderIterative(func(item T) { iterative = append(iterative, item) })
	out["recursive"] = rec
	out["iterative"] = iterative
	out["seq"] = slices.Collect(tr.PreorderSeq())
	it := tr.PreorderIterator()
	var lazy []T
	for item, ok := it.Next(); ok; item, ok = it.Next() {
		lazy = append(lazy, item)
	}
	out["iterator"] = lazy
	return out
}

func TestPreorderKnownTrees(t *testing.T) {
	for _, want := range [][]int{
		{9, 8, 4, 2, 4, 3, 5, 5, 8, 6},
		{2, 1, 0, 0, 0, 17, 16, 5, 4, 10, 9, 9, 9, 13, 16, 16, 15, 17, 19, 18},
	} {
		// Inserting a tree's pre-order sequence rebuilds the same tree.
		tr := BuildOrdered(Recursive, want)
		for name, got := range allPreorders(tr) {
			assert.Equal(t, want, got, name)
		}
	}
}

func TestPreorderEquivalence(t *testing.T) {
	r := rand.New(rand.NewSource(0))
	for _, s := range strategies {
		for n := 1; n <= 60; n++ {
			tr := BuildOrdered(s, randomValues(r, n, 30))
			all := allPreorders(tr)
			want := all["recursive"]
			require.Len(t, want, n)
			for name, got := range all {
				require.Equal(t, want, got, "%v/%s", s, name)
			}
		}
	}
}

func TestPreorderEmpty(t *testing.T) {
	tr := NewOrdered[int]()
	for name, got := range allPreorders(tr) {
		assert.Empty(t, got, name)
	}
}

func TestPreorderSeqStopsEarlyAndRestarts(t *testing.T) {
	tr := BuildOrdered(Recursive, []int{9, 8, 4, 2, 4, 3, 5, 5, 8, 6})
	seq := tr.PreorderSeq()
	var got []int
	for v := range seq {
		got = append(got, v)
		if len(got) == 3 {
			break
		}
	}
	assert.Equal(t, []int{9, 8, 4}, got)
	assert.Equal(t, []int{9, 8, 4, 2, 4, 3, 5, 5, 8, 6}, slices.Collect(seq))
}

func TestIteratorIsOneShot(t *testing.T) {
	tr := BuildOrdered(Recursive, []int{2, 1, 3})
	it := tr.PreorderIterator()
	v, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, []int{1, 3}, slices.Collect(it.All()))
	_, ok = it.Next()
	assert.False(t, ok)
	assert.Empty(t, slices.Collect(it.All()))

	// A new iterator starts over.
	assert.Equal(t, []int{2, 1, 3}, slices.Collect(tr.PreorderIterator().All()))
}

func TestAscend(t *testing.T) {
	values := randomValues(rand.New(rand.NewSource(4)), 100, 30)
	tr := BuildOrdered(Recursive, values)
	var got []int
	tr.Ascend(func(v int) bool {
		got = append(got, v)
		return true
	})
	want := slices.Clone(values)
	slices.Sort(want)
	assert.Equal(t, want, got)

	got = got[:0]
	tr.Ascend(func(v int) bool {
		if v > 10 {
			return false
		}
		got = append(got, v)
		return true
	})
	small := 0
	for _, v := range values {
		if v <= 10 {
			small++
		}
	}
	assert.Equal(t, want[:small], got)
}
