// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides a set of error functions that are helpful
// for handling errors at call sites that cannot return them.
// It re-exports the standard library helpers so that it can be
// used as a drop-in replacement for the errors package.
package errors

import (
	"errors"
	"log/slog"
	"runtime"
	"strconv"
)

// New is an alias for [errors.New].
func New(text string) error {
	return errors.New(text)
}

// Is is an alias for [errors.Is].
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As is an alias for [errors.As].
func As(err error, target any) bool {
	return errors.As(err, target)
}

// Join is an alias for [errors.Join].
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// Log takes the given error and logs it if it is non-nil.
// The intended usage is:
//
//	errors.Log(MyFunc(v))
//	// or
//	return errors.Log(MyFunc(v))
func Log(err error) error {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return err
}

// Log1 takes the given value and error and returns the value if
// the error is nil, and logs the error and returns a zero value
// if the error is non-nil. The intended usage is:
//
//	a := errors.Log1(MyFunc(v))
func Log1[T any](v T, err error) T {
	if err != nil {
		slog.Error(err.Error() + " | " + CallerInfo())
	}
	return v
}

// Must takes the given error and panics if it is non-nil.
// The intended usage is:
//
//	errors.Must(MyFunc(v))
func Must(err error) {
	if err != nil {
		panic(err)
	}
}

// Must1 takes the given value and error and returns the value if
// the error is nil, and panics if the error is non-nil.
func Must1[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// CallerInfo returns string information about the caller
// of the function that called CallerInfo.
func CallerInfo() string {
	pc, file, line, _ := runtime.Caller(2)
	return runtime.FuncForPC(pc).Name() + " " + file + ":" + strconv.Itoa(line)
}
