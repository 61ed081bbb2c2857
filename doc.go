// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lace is a widget kit for code-editor style user interfaces,
// laid out by the constraint solver in [cogentcore.org/lace/lay].
// Widgets do not position themselves: each one declares how its edges
// relate to its content and its children (a label is as wide as its
// text, a flow chains its children edge to edge), and one call to
// [lay.Compute] turns those relationships into pixel geometry for the
// whole tree.
//
// The kit covers the chrome of an editor window: [Label], [Button] and
// [MenuButton], tool and menu [Bar]s, [Flow] containers, a tabbed
// [Tabs] set, a read-only [Editor] view, and flexible [Space] fillers.
// Dimensions shared across widgets (font size, paddings, the tab strip
// height) live in [Settings] and take effect on the next layout pass.
package lace
