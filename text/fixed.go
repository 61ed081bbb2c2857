// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import "unicode/utf8"

// Fixed is a [Source] with the same metrics for every face and the same
// advance for every rune, so layout results are exact round numbers.
// It is used in tests and headless runs where no real font is wanted.
type Fixed struct {
	// Advance is the width of every rune.
	Advance float32

	// Ascent, Descent, and Gap are the line metrics of every face.
	Ascent, Descent, Gap float32
}

func (f Fixed) Metrics(face Face) Metrics {
	return Metrics{Ascent: f.Ascent, Descent: f.Descent, LineGap: f.Gap}
}

func (f Fixed) Width(face Face, text string) float32 {
	return f.Advance * float32(utf8.RuneCountInString(text))
}
