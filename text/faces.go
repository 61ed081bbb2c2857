// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package text

import (
	"bytes"
	"fmt"

	"cogentcore.org/lace/base/errors"
	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmmonolt10bold"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"github.com/go-text/typesetting/font"
)

// Faces is a [Source] backed by font files, measuring glyph advances and
// font extents through go-text/typesetting. The zero value is not usable;
// use [NewFaces].
type Faces struct {
	// Size is the pixel size at which all faces are measured.
	Size float32

	faces [MonoBold + 1]*font.Face
}

// NewFaces returns a [Faces] measuring at the given pixel size, loaded
// with the standard Latin Modern fonts: [Regular] is the 10pt sans,
// [Mono] and [MonoBold] the 10pt typewriter faces. Use [Faces.SetFont]
// to substitute other fonts.
func NewFaces(size float32) *Faces {
	f := &Faces{Size: size}
	errors.Must(f.SetFont(Regular, lmsans10regular.TTF))
	errors.Must(f.SetFont(Mono, lmmono10regular.TTF))
	errors.Must(f.SetFont(MonoBold, lmmonolt10bold.TTF))
	return f
}

// SetFont replaces the font of the given face with the given OpenType
// font data (TTF, OTF, or TTC, in which case the first font is used).
func (f *Faces) SetFont(face Face, ttf []byte) error {
	faces, err := font.ParseTTC(bytes.NewReader(ttf))
	if err != nil {
		return fmt.Errorf("text: failed to parse font for %v: %w", face, err)
	}
	f.faces[face] = faces[0]
	return nil
}

// scale returns the font-unit to pixel conversion factor for the face.
func (f *Faces) scale(fc *font.Face) float32 {
	return f.Size / float32(fc.Upem())
}

func (f *Faces) Metrics(face Face) Metrics {
	fc := f.faces[face]
	ext, _ := fc.FontHExtents()
	sc := f.scale(fc)
	return Metrics{
		Ascent:  ext.Ascender * sc,
		Descent: -ext.Descender * sc, // Descender extends below the baseline
		LineGap: ext.LineGap * sc,
	}
}

func (f *Faces) Width(face Face, text string) float32 {
	fc := f.faces[face]
	sc := f.scale(fc)
	w := float32(0)
	for _, r := range text {
		gid, ok := fc.NominalGlyph(r)
		if !ok {
			gid = 0 // .notdef advance, as it would render
		}
		w += fc.HorizontalAdvance(gid) * sc
	}
	return w
}
