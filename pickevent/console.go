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

package pickevent

import (
	"fmt"
	"io"
	"strings"
)

// ConsoleLogger is a pick event logger that attempts to write human-readable
// messages to the console.
//
// Use this during development.
type ConsoleLogger struct {
	W io.Writer
}

var _ Logger = (*ConsoleLogger)(nil)

func (l *ConsoleLogger) logf(msg string, args ...interface{}) {
	fmt.Fprintf(l.W, "[pick] "+msg+"\n", args...)
}

// LogEvent logs the given event to the provided writer.
func (l *ConsoleLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *ScopeOpened:
		if e.Parent == nil {
			l.logf("OPEN\t\t%v", e.Name)
		} else {
			l.logf("OPEN\t\t%v (parent: %v)", e.Name, e.Parent)
		}
	case *ScopeLinked:
		l.logf("LINK\t\t%v -> %v", e.Name, e.Parent)
	case *ScopeClosed:
		if e.Err != nil {
			l.logf("ERROR\t\tClosing %v failed: %v", e.Name, e.Err)
		} else if len(e.Descendants) > 0 {
			l.logf("CLOSE\t\t%v (with %s)", e.Name, strings.Join(e.Descendants, ", "))
		} else {
			l.logf("CLOSE\t\t%v", e.Name)
		}
	case *ModulesInstalled:
		verb := "INSTALL"
		if e.Test {
			verb = "INSTALL TEST"
		}
		if e.Err != nil {
			l.logf("ERROR\t\t%s into %v failed: %v", verb, e.Scope, e.Err)
		} else {
			for _, k := range e.Keys {
				l.logf("%s\t%v <= %s", verb, e.Scope, k)
			}
		}
	case *Instantiated:
		if e.Err != nil {
			l.logf("ERROR\t\tCreating %s in %v failed: %v", e.Key, e.Scope, e.Err)
		} else {
			l.logf("CREATE\t\t%s in %v (%s)", e.Key, e.Scope, e.Runtime)
		}
	case *Released:
		l.logf("RELEASE\t%v [%s]", e.Scope, strings.Join(e.Keys, ", "))
	case *CloseHookExecuting:
		l.logf("HOOK OnClose\t\t%s executing (caller: %s)", e.FunctionName, e.CallerName)
	case *CloseHookExecuted:
		if e.Err != nil {
			l.logf("HOOK OnClose\t\t%s called by %s failed in %s: %v", e.FunctionName, e.CallerName, e.Runtime, e.Err)
		} else {
			l.logf("HOOK OnClose\t\t%s called by %s ran successfully in %s", e.FunctionName, e.CallerName, e.Runtime)
		}
	}
}
