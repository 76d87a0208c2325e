// Copyright (c) 2024 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package pickfx connects pick scopes to the lifecycle of an fx application.
//
// A scope opened through pickfx is closed when the application stops, so
// close hooks registered on it run during fx shutdown.
package pickfx

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/pick"
)

// Scope provides the *pick.Scope for the last of names, opened on g when the
// application is constructed and closed when it stops.
//
//	fx.New(
//		pickfx.Scope(graph, "app"),
//		fx.Invoke(func(s *pick.Scope) { ... }),
//	)
func Scope(g *pick.Graph, names ...interface{}) fx.Option {
	return fx.Provide(func(lc fx.Lifecycle) (*pick.Scope, error) {
		s, err := g.Open(names...)
		if err != nil {
			return nil, err
		}
		CloseOnStop(lc, g, s.Name())
		return s, nil
	})
}

// Module installs modules into the *pick.Scope provided to the application.
func Module(mods ...*pick.Module) fx.Option {
	return fx.Invoke(func(s *pick.Scope) error {
		return s.InstallModules(mods...)
	})
}

// CloseOnStop closes the scope registered under name when lc stops.
func CloseOnStop(lc fx.Lifecycle, g *pick.Graph, name interface{}) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return g.Close(name)
		},
	})
}
