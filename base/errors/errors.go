// Copyright (c) 2026, Polyview Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors extends the standard library errors package with
// helpers that log errors at the point where they are handled,
// so that error return paths never silently drop diagnostics.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// Aliases of the standard library functions, so that this package
// can be used as a drop-in replacement.
var (
	As     = errors.As
	Is     = errors.Is
	Join   = errors.Join
	New    = errors.New
	Unwrap = errors.Unwrap
)

// Log logs the given error with caller information if it is non-nil,
// returning it unchanged. Insert it in an error return path to ensure
// the error is reported even if the caller discards it.
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 is a variant of [Log] for functions returning a value
// in addition to an error.
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must panics if the given error is non-nil, for setup steps
// where there is no meaningful way to continue.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 is a variant of [Must] for functions returning a value
// in addition to an error.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns the file and line number of the caller
// two levels up, which is the site that called Log or Log1.
func CallerInfo() string {
	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return "unknown"
	}
	return file + ":" + strconv.Itoa(line)
}
