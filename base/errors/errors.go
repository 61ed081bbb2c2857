// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package errors provides warning and error handling helpers
// extending the standard library errors package.
package errors

import "errors"

// Aliases of the standard library errors package, so that this package
// can be used as a drop-in replacement for it.
var (
	As     = errors.As
	Is     = errors.Is
	Join   = errors.Join
	New    = errors.New
	Unwrap = errors.Unwrap
)
