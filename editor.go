// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import (
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/lace/lay"
	"cogentcore.org/lace/text"
)

// Editor is a read-only view of one source file, shown in the
// [text.Mono] face. It puts no constraints on its size, taking
// whatever space its container gives it; editing the buffer is not
// implemented.
type Editor struct {
	WidgetBase

	// Face is the font face the text is shown in.
	Face text.Face

	path  string
	lines []string
}

// OpenEditor returns a new [Editor] showing the contents of the given
// file.
func OpenEditor(filename string) (*Editor, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return &Editor{
		WidgetBase: WidgetBase{Name: "<editor>"},
		Face:       text.Mono,
		path:       filename,
		lines:      strings.Split(string(data), "\n"),
	}, nil
}

func (ed *Editor) Collect(cx *lay.Context) lay.BB {
	return cx.Area(&ed.Box, ed.Name)
}

// Title returns the name of the shown file, captioning the editor in a
// [Tabs] strip.
func (ed *Editor) Title() string {
	return filepath.Base(ed.path)
}

// Path returns the path the editor was opened from.
func (ed *Editor) Path() string {
	return ed.path
}

// Lines returns the lines of the shown file.
func (ed *Editor) Lines() []string {
	return ed.lines
}
