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

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/bstree"
	"github.com/urfave/cli/v2"
)

type command int

const (
	cmdRender command = iota
	cmdDebug
	cmdStats
	cmdSorted
	cmdTraverse
	cmdCount
	cmdDelete
)

// dispatch returns the action for c, picking the value type from the
// --strings flag.
func dispatch(c command) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		if cctx.Bool("strings") {
			return run(cctx, c, func(s string) (string, error) { return s, nil })
		}
		return run(cctx, c, strconv.Atoi)
	}
}

func parseValues[T any](args []string, parse func(string) (T, error)) ([]T, error) {
	out := make([]T, 0, len(args))
	for _, arg := range args {
		v, err := parse(arg)
		if err != nil {
			return nil, fmt.Errorf("parsing value %q: %w", arg, err)
		}
		out = append(out, v)
	}
	return out, nil
}

func run[T bstree.Ordered](cctx *cli.Context, c command, parse func(string) (T, error)) error {
	strategy, err := bstree.ParseStrategy(cctx.String("strategy"))
	if err != nil {
		return err
	}
	values, err := parseValues(cctx.Args().Slice(), parse)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no values given")
	}
	tr := bstree.BuildOrdered(strategy, values)
	slog.Debug("built tree", "strategy", strategy, "len", tr.Len(), "depth", tr.Depth())

	w := cctx.App.Writer
	switch c {
	case cmdRender:
		_, err = fmt.Fprintln(w, tr)
	case cmdDebug:
		err = tr.Print(w)
	case cmdStats:
		err = writeStats(w, tr)
	case cmdSorted:
		var out []string
		tr.Ascend(func(v T) bool {
			out = append(out, fmt.Sprint(v))
			return true
		})
		_, err = fmt.Fprintln(w, strings.Join(out, " "))
	case cmdTraverse:
		err = traverse(w, tr, cctx.String("mode"))
	case cmdCount:
		var v T
		if v, err = parse(cctx.String("value")); err != nil {
			return fmt.Errorf("parsing --value: %w", err)
		}
		_, err = fmt.Fprintln(w, tr.Count(v))
	case cmdDelete:
		err = deleteValue(w, tr, cctx, parse)
	default:
		return fmt.Errorf("unknown command %d", c)
	}
	return err
}

func writeStats[T bstree.Ordered](w io.Writer, tr *bstree.Tree[T]) error {
	lo, _ := tr.Min()
	hi, _ := tr.Max()
	_, err := fmt.Fprintf(w, "len: %d\ndepth: %d\nmin: %v\nmax: %v\n", tr.Len(), tr.Depth(), lo, hi)
	return err
}

func traverse[T bstree.Ordered](w io.Writer, tr *bstree.Tree[T], mode string) error {
	var out []string
	add := func(v T) { out = append(out, fmt.Sprint(v)) }
	switch mode {
	case "recursive":
		tr.Preorder(add)
	case "iterative":
		tr.PreorderIterative(add)
	case "seq":
		for v := range tr.PreorderSeq() {
			add(v)
		}
	case "iterator":
		for v := range tr.PreorderIterator().All() {
			add(v)
		}
	default:
		return fmt.Errorf("unknown traversal mode %q", mode)
	}
	_, err := fmt.Fprintln(w, strings.Join(out, " "))
	return err
}

func deleteValue[T bstree.Ordered](w io.Writer, tr *bstree.Tree[T], cctx *cli.Context, parse func(string) (T, error)) error {
	v, err := parse(cctx.String("value"))
	if err != nil {
		return fmt.Errorf("parsing --value: %w", err)
	}
	var removed int
	if cctx.Bool("all") {
		removed = tr.DeleteAll(v)
	} else {
		removed, err = tr.Delete(v)
		if errors.Is(err, bstree.ErrSoleNode) {
			slog.Info("deleting the last node; clearing tree", "value", v)
			tr.Clear()
			removed = 1
		} else if err != nil {
			return fmt.Errorf("deleting %v: %w", v, err)
		}
	}
	slog.Debug("deleted", "value", v, "removed", removed, "len", tr.Len())
	_, err = fmt.Fprintf(w, "removed: %d\n%s\n", removed, tr)
	return err
}
