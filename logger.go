// seehuhn.de/go/draw - an immediate-mode 2D shape drawing library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package draw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard is a slog.Handler which drops every record.
// Enabled reports false, so callers skip formatting altogether.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var logger atomic.Pointer[slog.Logger]

func init() {
	logger.Store(slog.New(discard{}))
}

// SetLogger sets the logger used by this package and by the renderers in
// its sub-packages. The default logger discards all output.
// Passing nil restores the default.
//
// The following levels are used:
//   - [slog.LevelDebug]: mesh rebuilds and renderer internals
//   - [slog.LevelWarn]: misuse which is tolerated, such as popping an
//     empty canvas stack
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(discard{})
	}
	logger.Store(l)
}

// Logger returns the logger set by [SetLogger].
func Logger() *slog.Logger {
	return logger.Load()
}
