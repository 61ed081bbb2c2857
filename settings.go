// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lace

import (
	"fmt"
	"path/filepath"

	"cogentcore.org/lace/base/iox/jsonx"
	"cogentcore.org/lace/base/iox/tomlx"
	"cogentcore.org/lace/base/iox/yamlx"
)

// Settings are the user-adjustable dimensions of the widget kit, in
// pixels unless noted. Widgets read them while collecting constraints,
// so a change takes effect on the next layout pass.
type Settings struct {
	// FontSize is the rendering size for all faces, passed to
	// [cogentcore.org/lace/text.NewFaces] by apps.
	FontSize float32

	// ButtonPadX is the inset between a tool bar button and the left
	// and right edges of its label.
	ButtonPadX float32

	// ButtonPadY is the inset between a tool bar button and the top
	// and bottom edges of its label.
	ButtonPadY float32

	// MenuPad is the uniform inset around a menu button label.
	MenuPad float32

	// TabStripLines is the height of the tab caption strip, in line
	// heights of the [text.Regular] face.
	TabStripLines float32
}

// Defaults sets the standard dimensions.
func (se *Settings) Defaults() {
	se.FontSize = 14
	se.ButtonPadX = 20
	se.ButtonPadY = 10
	se.MenuPad = 5
	se.TabStripLines = 2
}

// DefaultSettings returns a new [Settings] holding the standard
// dimensions.
func DefaultSettings() *Settings {
	se := &Settings{}
	se.Defaults()
	return se
}

// Prefs are the active [Settings] that widgets read during collection.
var Prefs = DefaultSettings()

// Open reads the settings from the given file, in a format chosen by
// extension: .toml, .json, or .yaml / .yml.
func (se *Settings) Open(filename string) error {
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		return tomlx.Open(se, filename)
	case ".json":
		return jsonx.Open(se, filename)
	case ".yaml", ".yml":
		return yamlx.Open(se, filename)
	default:
		return fmt.Errorf("lace.Settings.Open: unknown settings format %q", ext)
	}
}

// Save writes the settings to the given file, in a format chosen by
// extension: .toml, .json, or .yaml / .yml.
func (se *Settings) Save(filename string) error {
	switch ext := filepath.Ext(filename); ext {
	case ".toml":
		return tomlx.Save(se, filename)
	case ".json":
		return jsonx.SaveIndent(se, filename)
	case ".yaml", ".yml":
		return yamlx.Save(se, filename)
	default:
		return fmt.Errorf("lace.Settings.Save: unknown settings format %q", ext)
	}
}
