// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user verbosity level and a default
// colored [slog] handler for fancybar commands.
package logx

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [LevelFromFlags] to the end user's preference.
var UserLevel = defaultUserLevel

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

// userLeveler reads [UserLevel] on every check so that
// changes after [SetDefaultLogger] still apply.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// NewHandler returns a text [slog.Handler] writing to w that filters by
// [UserLevel] and colors the level names when w is a color terminal.
func NewHandler(w io.Writer) slog.Handler {
	out := termenv.NewOutput(w)
	opts := &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}
			switch a.Key {
			case slog.TimeKey:
				return slog.Attr{}
			case slog.LevelKey:
				lvl, ok := a.Value.Any().(slog.Level)
				if !ok {
					return a
				}
				return slog.String(a.Key, LevelString(out, lvl))
			}
			return a
		},
	}
	return slog.NewTextHandler(w, opts)
}

// LevelString returns the name of the given level, colored
// for the given output when it supports color.
func LevelString(out *termenv.Output, lvl slog.Level) string {
	s := lvl.String()
	if out.Profile == termenv.Ascii {
		return s
	}
	var hex string
	switch {
	case lvl >= slog.LevelError:
		hex = "#e5534b"
	case lvl >= slog.LevelWarn:
		hex = "#d08770"
	case lvl >= slog.LevelInfo:
		hex = "#57ab5a"
	default:
		hex = "#768390"
	}
	return out.String(s).Foreground(out.Color(hex)).Bold().String()
}

// SetDefaultLogger sets the default [slog] logger to one
// that writes to stderr through [NewHandler].
func SetDefaultLogger() {
	slog.SetDefault(slog.New(NewHandler(os.Stderr)))
}
