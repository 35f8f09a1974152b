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
	"io"
	"strings"

	"github.com/xlab/treeprint"
)

const (
	rightBranch = "├─R──>"
	rightIndent = "|     "
	leftBranch  = "└─L──>"
	leftIndent  = "      "
	absent      = "nil"
)

// String renders the tree as a multi-line diagram.  Two trees have the same
// shape and the same items in the same places exactly when their renderings
// are equal.
//
// The first line holds the root item.  A node with at least one child is
// followed by its right subtree and then its left one, each indented under
// a branch marker; a missing child is drawn as nil:
//
//	2
//	├─R──>3
//	└─L──>1
//
// An empty tree renders as "nil".
func (t *Tree[T]) String() string {
	if t.root == nil {
		return absent
	}
	return strings.Join(t.root.lines(nil), "\n")
}

// lines appends the rendering of the subtree rooted at n to out.
func (n *node[T]) lines(out []string) []string {
	out = append(out, fmt.Sprint(n.item))
	if n.left == nil && n.right == nil {
		return out
	}
	out = n.right.branch(out, rightBranch, rightIndent)
	return n.left.branch(out, leftBranch, leftIndent)
}

// branch appends the rendering of n to out, prefixing its first line with
// marker and every following line with indent.
func (n *node[T]) branch(out []string, marker, indent string) []string {
	if n == nil {
		return append(out, marker+absent)
	}
	start := len(out)
	out = n.lines(out)
	out[start] = marker + out[start]
	for i := start + 1; i < len(out); i++ {
		out[i] = indent + out[i]
	}
	return out
}

// Print writes a debugging view of the tree to w.
func (t *Tree[T]) Print(w io.Writer) error {
	if t.root == nil {
		_, err := io.WriteString(w, absent+"\n")
		return err
	}
	tree := treeprint.NewWithRoot(t.root.item)
	t.root.print(tree)
	_, err := io.WriteString(w, tree.String())
	return err
}

func (n *node[T]) print(branch treeprint.Tree) {
	if n.right != nil {
		n.right.print(branch.AddMetaBranch("R", n.right.item))
	}
	if n.left != nil {
		n.left.print(branch.AddMetaBranch("L", n.left.item))
	}
}
