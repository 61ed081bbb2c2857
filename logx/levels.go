// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides leveled logging for end users, with a
// [slog.Handler] that colors its output based on the message level.
package logx

import "log/slog"

// UserLevel is the verbosity [slog.Level] that the user has selected for
// which logging and printing messages should be shown. Messages at levels
// at or above this level will be shown. It should typically be set once
// at startup, through [LevelFromFlags] for command line tools. The
// default is [Info], or the level selected by the debug or release build
// tags.
var UserLevel = defaultUserLevel

// Aliases for the levels in [slog].
const (
	Debug = slog.LevelDebug
	Info  = slog.LevelInfo
	Warn  = slog.LevelWarn
	Error = slog.LevelError
)

// LevelFromFlags returns the [slog.Level] corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [Debug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
