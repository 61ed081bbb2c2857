// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestFaces(t *testing.T) {
	f := NewFaces(14)

	for _, face := range []Face{Regular, Mono, MonoBold} {
		m := f.Metrics(face)
		assert.Greater(t, m.Ascent, float32(0), face.String())
		assert.Greater(t, m.Descent, float32(0), face.String())
		assert.GreaterOrEqual(t, m.LineGap, float32(0), face.String())
		assert.Equal(t, m.Ascent+m.Descent+m.LineGap, m.Height(), face.String())
	}

	assert.Equal(t, float32(0), f.Width(Regular, ""))
	assert.Greater(t, f.Width(Regular, "Hello"), f.Width(Regular, "H"))

	// The typewriter faces advance every glyph by the same amount.
	assert.Equal(t, 3*f.Width(Mono, "i"), f.Width(Mono, "iwm"))
}

func TestFacesScale(t *testing.T) {
	f14 := NewFaces(14)
	f28 := NewFaces(28)
	assert.InDelta(t, 2*f14.Width(Regular, "scale"), f28.Width(Regular, "scale"), 0.001)
	assert.InDelta(t, 2*f14.Metrics(Regular).Height(), f28.Metrics(Regular).Height(), 0.001)
}

func TestSetFont(t *testing.T) {
	f := NewFaces(14)
	assert.NoError(t, f.SetFont(Regular, goregular.TTF))
	assert.Greater(t, f.Width(Regular, "Go"), float32(0))

	assert.NoError(t, f.SetFont(Mono, gomono.TTF))
	assert.Equal(t, 2*f.Width(Mono, "i"), f.Width(Mono, "iw"))

	assert.Error(t, f.SetFont(Regular, []byte("not a font")))
}

func TestFixed(t *testing.T) {
	f := Fixed{Advance: 10, Ascent: 8, Descent: 2}
	assert.Equal(t, float32(30), f.Width(Mono, "abc"))
	assert.Equal(t, float32(20), f.Width(Regular, "hé")) // runes, not bytes
	assert.Equal(t, float32(10), f.Metrics(Regular).Height())
}
