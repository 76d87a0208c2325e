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

// Package picktest has helpers for tests of code built on pick.
package picktest

import (
	"fmt"
	"strings"

	"go.uber.org/pick"
	"go.uber.org/pick/pickevent"
)

// TB is a subset of the standard library's testing.TB interface. It's
// satisfied by both *testing.T and *testing.B.
type TB interface {
	Logf(string, ...interface{})
	Errorf(string, ...interface{})
	FailNow()
	Cleanup(func())
}

// NewGraph builds a graph that logs its events to t and closes all of its
// scopes when the test ends. Options are applied after the logger, so
// WithLogger replaces it.
func NewGraph(t TB, opts ...pick.Option) *pick.Graph {
	opts = append([]pick.Option{pick.WithLogger(NewTestLogger(t))}, opts...)
	g := pick.NewGraph(opts...)
	t.Cleanup(func() {
		if err := g.Reset(); err != nil {
			t.Errorf("graph didn't close cleanly: %v", err)
		}
	})
	return g
}

// RequireOpen opens names on g, failing the test if that is not possible.
func RequireOpen(t TB, g *pick.Graph, names ...interface{}) *pick.Scope {
	s, err := g.Open(names...)
	if err != nil {
		t.Errorf("scope %v didn't open: %v", names, err)
		t.FailNow()
	}
	return s
}

// RequireClose closes name on g, failing the test if a close hook fails.
func RequireClose(t TB, g *pick.Graph, name interface{}) {
	if err := g.Close(name); err != nil {
		t.Errorf("scope %v didn't close cleanly: %v", name, err)
		t.FailNow()
	}
}

// NewTestLogger returns a pickevent.Logger that writes to t.Logf.
func NewTestLogger(t TB) pickevent.Logger {
	return &pickevent.ConsoleLogger{W: testLogWriter{t}}
}

type testLogWriter struct{ t TB }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Logf("%s", strings.TrimSuffix(string(p), "\n"))
	return len(p), nil
}

func (w testLogWriter) String() string {
	return fmt.Sprintf("testLogWriter(%T)", w.t)
}
