// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package text measures text for layout: widgets size themselves from
// font metrics and string widths, which a [Source] supplies without any
// rendering. [Faces] is the standard implementation backed by real font
// files; [Fixed] supplies constant metrics for tests and headless use.
package text

// Face identifies one of the standard font faces that widgets measure
// text in.
type Face int32

const (
	// Regular is the proportional face, used by labels, buttons,
	// and tab captions.
	Regular Face = iota

	// Mono is the fixed-width face, used by code editors.
	Mono

	// MonoBold is the bold variant of [Mono].
	MonoBold
)

func (f Face) String() string {
	switch f {
	case Regular:
		return "Regular"
	case Mono:
		return "Mono"
	case MonoBold:
		return "MonoBold"
	}
	return "Face(invalid)"
}

// Metrics are the vertical extents of one line of text in a [Face],
// in pixels.
type Metrics struct {
	// Ascent is the height above the baseline.
	Ascent float32

	// Descent is the depth below the baseline (positive).
	Descent float32

	// LineGap is the extra space between consecutive lines.
	LineGap float32
}

// Height returns the height of one line, including the line gap.
func (m Metrics) Height() float32 {
	return m.Ascent + m.Descent + m.LineGap
}

// Source measures text in the standard faces. All results are in pixels
// at the source's rendering size.
type Source interface {
	// Metrics returns the line metrics of the given face.
	Metrics(face Face) Metrics

	// Width returns the width of the given text in the given face.
	Width(face Face, text string) float32
}
