// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/muesli/termenv"
)

// Handler is a [slog.Handler] whose output is designed to be read by end
// users: one line per record, with the level tag colored when the output
// terminal supports it, and attributes rendered as key=value pairs.
type Handler struct {
	out  *termenv.Output
	goas []groupOrAttrs
	mu   *sync.Mutex
	w    io.Writer
}

// groupOrAttrs holds either a group name or a list of [slog.Attr]s.
type groupOrAttrs struct {
	group string
	attrs []slog.Attr
}

// NewHandler makes a new [Handler] writing to the given writer.
func NewHandler(w io.Writer) *Handler {
	return &Handler{out: termenv.NewOutput(w), mu: &sync.Mutex{}, w: w}
}

// SetDefaultLogger sets the default logger to a [Handler] writing to
// [os.Stderr], which filters messages by [UserLevel]. Any app that sets
// [UserLevel] should call it at startup.
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// Enabled reports whether the given level is at or above [UserLevel].
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= UserLevel
}

// WithGroup returns a new [Handler] with the given group name applied to
// all subsequent attributes.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{group: name})
}

// WithAttrs returns a new [Handler] with the given attributes applied to
// all subsequent records.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.withGroupOrAttrs(groupOrAttrs{attrs: attrs})
}

func (h *Handler) withGroupOrAttrs(goa groupOrAttrs) *Handler {
	h2 := *h
	h2.goas = make([]groupOrAttrs, len(h.goas)+1)
	copy(h2.goas, h.goas)
	h2.goas[len(h2.goas)-1] = goa
	return &h2
}

// levelColor returns the color for the tag of the given level.
func levelColor(level slog.Level) termenv.Color {
	switch {
	case level >= slog.LevelError:
		return termenv.ANSIRed
	case level >= slog.LevelWarn:
		return termenv.ANSIYellow
	case level >= slog.LevelInfo:
		return termenv.ANSIGreen
	default:
		return termenv.ANSIBrightBlack
	}
}

// Handle writes the given record as one line.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	b := &bytes.Buffer{}
	b.WriteString(h.out.String(r.Level.String()).Foreground(levelColor(r.Level)).String())
	b.WriteString(" " + r.Message)

	goas := h.goas
	if r.NumAttrs() == 0 {
		// Skip any trailing empty groups.
		for len(goas) > 0 && goas[len(goas)-1].group != "" {
			goas = goas[:len(goas)-1]
		}
	}
	prefix := ""
	for _, goa := range goas {
		if goa.group != "" {
			prefix += goa.group + "."
		} else {
			for _, a := range goa.attrs {
				h.appendAttr(b, prefix, a)
			}
		}
	}
	r.Attrs(func(a slog.Attr) bool {
		h.appendAttr(b, prefix, a)
		return true
	})
	b.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(b.Bytes())
	return err
}

func (h *Handler) appendAttr(b *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			prefix += a.Key + "."
		}
		for _, ga := range a.Value.Group() {
			h.appendAttr(b, prefix, ga)
		}
		return
	}
	fmt.Fprintf(b, " %s=%v", h.out.String(prefix+a.Key).Faint(), a.Value)
}
