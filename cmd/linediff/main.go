// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// linediff compares two versions of a document line by line.
//
// Usage:
//
//	linediff [flags] <fileA> <fileB>
//
// Every line of both files is printed once, in document order. Lines only in fileA are prefixed
// with "-", lines only in fileB with "+", and lines in both files are printed unchanged. With
// -unified, only the changes and a few lines of context are printed, grouped into hunks.
//
// The exit status is 0 if both files could be read, whether they differ or not, 1 if a file could
// not be read and 2 for invalid usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"onepg.dev/linediff"
	"onepg.dev/linediff/internal/textfile"
	"onepg.dev/linediff/textdiff"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("linediff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	unified := fs.Int("unified", -1, "print a unified diff with `n` lines of context; by default every line is printed")
	colorMode := fs.String("color", "auto", "color the output: auto, always or never")
	logLevel := fs.String("log-level", "warn", "log level, one of "+levels())
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: linediff [flags] <fileA> <fileB>\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	logger := log.New()
	logger.SetOutput(stderr)
	ll, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid -log-level %q: %v\n", *logLevel, err)
		return exitUsage
	}
	logger.SetLevel(ll)

	if fs.NArg() != 2 {
		fs.Usage()
		return exitUsage
	}
	colored, err := useColor(*colorMode, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "%v\n", err)
		return exitUsage
	}

	pathA, pathB := resolve(fs.Arg(0)), resolve(fs.Arg(1))
	textA, textB, err := textfile.ReadPair(ctx, pathA, pathB)
	if err != nil {
		var rerr *textfile.ReadError
		if errors.As(err, &rerr) {
			logger.WithFields(log.Fields{"path": rerr.Path, "cause": rerr.Err}).Debug("Could not read file")
		}
		fmt.Fprintf(stderr, "linediff: %v\n", err)
		return exitError
	}
	logger.WithFields(log.Fields{"a": pathA, "b": pathB}).Debug("Read both files")

	var opts []linediff.Option
	if colored {
		opts = append(opts, textdiff.TerminalColors())
	}

	if *unified >= 0 {
		opts = append(opts, linediff.ContextLines(*unified))
		out := textdiff.Unified(textA, textB, opts...)
		logger.WithField("bytes", len(out)).Debug("Rendered unified diff")
		_, err = io.WriteString(stdout, out)
	} else {
		lines := textdiff.Lines(textA, textB, opts...)
		logger.WithField("lines", len(lines)).Debug("Rendered diff")
		_, err = fmt.Fprintln(stdout, strings.Join(lines, "\n"))
	}
	if err != nil {
		logger.WithField("cause", err).Error("Could not write diff")
		return exitError
	}
	return exitOK
}

// resolve returns an absolute path for path, or path itself if that's not possible.
func resolve(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

func useColor(mode string, w io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
		if os.Getenv("NO_COLOR") != "" {
			return false, nil
		}
		f, ok := w.(*os.File)
		return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())), nil
	default:
		return false, fmt.Errorf("invalid -color %q: must be auto, always or never", mode)
	}
}

func levels() string {
	names := make([]string, len(log.AllLevels))
	for i, l := range log.AllLevels {
		names[i] = l.String()
	}
	return strings.Join(names, ", ")
}
