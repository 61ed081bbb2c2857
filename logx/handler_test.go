// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHandler(t *testing.T) {
	old := UserLevel
	UserLevel = Debug
	defer func() { UserLevel = old }()

	b := &bytes.Buffer{}
	l := slog.New(NewHandler(b))
	l.Debug("this is debug")
	l.Info("this is info", "x1", 42)
	l.With("widget", "button").Warn("this is warn")

	out := b.String()
	assert.Contains(t, out, "this is debug")
	assert.Contains(t, out, "x1=42")
	assert.Contains(t, out, "this is warn widget=button")
}

func TestDefaultLogger(t *testing.T) {
	old := UserLevel
	UserLevel = Debug
	defer func() { UserLevel = old }()
	SetDefaultLogger()

	slog.Debug("this is debug")
	slog.Info("this is info")
	slog.Warn("this is warn")
}
