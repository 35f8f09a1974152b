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

// Command bstree builds a binary search tree from the values given on the
// command line and prints what the requested operation makes of it.
package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/urfave/cli/v2"
)

func main() {
	newApp().RunAndExitOnError()
}

func newApp() *cli.App {
	app := &cli.App{
		Name:  "bstree",
		Usage: "build, query and render unbalanced binary search trees",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log verbosity level (eg: debug, info, warn, error)",
				Value:   "warn",
				EnvVars: []string{"BSTREE_LOG_LEVEL", "LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "strategy",
				Usage:   "insertion strategy: recursive, iterative or persistent",
				Value:   "recursive",
				EnvVars: []string{"BSTREE_STRATEGY"},
			},
			&cli.BoolFlag{
				Name:  "strings",
				Usage: "treat values as strings instead of integers",
			},
		},
		Before: func(cctx *cli.Context) error {
			configLogger(cctx.String("log-level"), cctx.App.ErrWriter)
			return nil
		},
	}
	app.Commands = []*cli.Command{
		{
			Name:      "render",
			Usage:     "print the canonical rendering of the tree",
			ArgsUsage: "VALUES...",
			Action:    dispatch(cmdRender),
		},
		{
			Name:      "debug",
			Usage:     "print a debugging view of the tree",
			ArgsUsage: "VALUES...",
			Action:    dispatch(cmdDebug),
		},
		{
			Name:      "stats",
			Usage:     "print size, depth, min and max of the tree",
			ArgsUsage: "VALUES...",
			Action:    dispatch(cmdStats),
		},
		{
			Name:      "sorted",
			Usage:     "print the values in ascending order",
			ArgsUsage: "VALUES...",
			Action:    dispatch(cmdSorted),
		},
		{
			Name:      "traverse",
			Usage:     "print the values in pre-order",
			ArgsUsage: "VALUES...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "mode",
					Usage: "traversal implementation: recursive, iterative, seq or iterator",
					Value: "recursive",
				},
			},
			Action: dispatch(cmdTraverse),
		},
		{
			Name:      "count",
			Usage:     "print how many times a value occurs in the tree",
			ArgsUsage: "VALUES...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Usage:    "value to count",
					Required: true,
				},
			},
			Action: dispatch(cmdCount),
		},
		{
			Name:      "delete",
			Usage:     "delete a value and print the resulting tree",
			ArgsUsage: "VALUES...",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:     "value",
					Usage:    "value to delete",
					Required: true,
				},
				&cli.BoolFlag{
					Name:  "all",
					Usage: "delete every occurrence instead of one",
				},
			},
			Action: dispatch(cmdDelete),
		},
	}
	return app
}

func configLogger(levelName string, writer io.Writer) *slog.Logger {
	if writer == nil {
		writer = os.Stderr
	}
	var level slog.Level
	switch strings.ToLower(levelName) {
	case "error":
		level = slog.LevelError
	case "warn":
		level = slog.LevelWarn
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	default:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}
