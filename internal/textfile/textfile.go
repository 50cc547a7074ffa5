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

// Package textfile reads the documents that are compared by the linediff command.
package textfile

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// ReadError is returned for any failure to read or decode a file.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return "reading " + e.Path + ": " + e.Err.Error()
}

func (e *ReadError) Unwrap() error { return e.Err }

// Read reads the file at path and returns its contents as UTF-8 text.
//
// Files without a byte order mark are read as UTF-8. A UTF-8 byte order mark is dropped, files
// with a UTF-16 byte order mark are converted to UTF-8. Invalid UTF-8 is replaced with U+FFFD.
func Read(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	text, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return string(text), nil
}

// ReadPair reads the files at a and b concurrently. If a read fails, the other one is abandoned
// if it hasn't started yet and the first error is returned.
func ReadPair(ctx context.Context, a, b string) (textA, textB string, err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		textA, err = readContext(ctx, a)
		return err
	})
	g.Go(func() (err error) {
		textB, err = readContext(ctx, b)
		return err
	})
	if err := g.Wait(); err != nil {
		return "", "", err
	}
	return textA, textB, nil
}

func readContext(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", &ReadError{Path: path, Err: err}
	}
	return Read(path)
}
