// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the default slog configuration:
// a user-selected verbosity level and colored level labels
// on terminals that support them.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. The default user
// verbosity level is [slog.LevelWarn].
var UserLevel = slog.LevelWarn

// UseColor is whether to color level labels when the output supports it.
var UseColor = true

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both
// vv and q are specified, it will still return [slog.LevelDebug].
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

// SetDefaultLogger sets the default logger to one writing to [os.Stderr]
// through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}

// userLeveler reads [UserLevel] each time so that changes
// apply to loggers that already exist.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a text handler writing to w that filters on
// [UserLevel] and colors the level label if [UseColor] is set and
// w is a terminal with color support.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	color := UseColor && out.ColorProfile() != termenv.Ascii
	opts := &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if !color || len(groups) > 0 || a.Key != slog.LevelKey {
				return a
			}
			lev, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(LevelString(out, lev))
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the level label styled for the given output.
func LevelString(out *termenv.Output, lev slog.Level) string {
	s := out.String(lev.String())
	switch {
	case lev >= slog.LevelError:
		s = s.Foreground(out.Color("1")).Bold()
	case lev >= slog.LevelWarn:
		s = s.Foreground(out.Color("3"))
	case lev >= slog.LevelInfo:
		s = s.Foreground(out.Color("4"))
	default:
		s = s.Faint()
	}
	return s.String()
}
