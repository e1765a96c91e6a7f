// Copyright 2021-2024 The utility Authors. All rights reserved.
// Use of this source code is governed by the MIT license that can be found in the
// LICENSE file

// Package errors provides a canonical error type with a stacktrace and the helpers that
// funnel other failure shapes into it.
//
// Three shapes are converted: a value or an error (Result), a value or a string message
// (StringResult) and a value or nothing (Option). Normalize and NormalizeMsg turn each of
// them into a Result over *Error. On the failure path Log, LogMsg, WithContext and
// WithLocation log the error or wrap it in a new layer naming the call site:
//
//	port, err := errors.Of(strconv.Atoi(s)).WithContext("parse port").Get()
//	addr, err := errors.OptionOf(os.LookupEnv("ADDR")).NormalizeMsg("ADDR is not set").Get()
//
// Plain errors get the same treatment from the package-level functions of the same
// names. The package is fully compatible with the standard library: Is, As, Join and
// Unwrap are re-exported and every layer unwraps to the one it was built on.

package errors
