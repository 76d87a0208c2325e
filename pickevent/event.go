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

import "time"

// Event defines an event emitted by the scope graph.
type Event interface {
	event() // Only pickevent can implement this interface.
}

// Passing events by type to make Event hashable in the future.
func (*ScopeOpened) event()        {}
func (*ScopeLinked) event()        {}
func (*ScopeClosed) event()        {}
func (*ModulesInstalled) event()   {}
func (*Instantiated) event()       {}
func (*Released) event()           {}
func (*CloseHookExecuting) event() {}
func (*CloseHookExecuted) event()  {}

// ScopeOpened is emitted when a scope is created and registered.
type ScopeOpened struct {
	// Name is the name of the new scope.
	Name interface{}
	// Parent is the name of the parent scope, or nil for a root scope.
	Parent interface{}
}

// ScopeLinked is emitted when an existing root scope is attached to a
// parent.
type ScopeLinked struct {
	Name   interface{}
	Parent interface{}
}

// ScopeClosed is emitted after a scope and its descendants were torn down.
type ScopeClosed struct {
	Name interface{}
	// Descendants lists the names of the child scopes closed along with
	// this one.
	Descendants []string
	Err         error
}

// ModulesInstalled is emitted when bindings are installed into a scope.
type ModulesInstalled struct {
	Scope interface{}
	// Keys lists the keys that were bound.
	Keys []string
	// Test reports whether the modules were installed as test modules.
	Test bool
	Err  error
}

// Instantiated is emitted after a factory or a binding produced a value that
// gets cached in a scope, or failed to.
type Instantiated struct {
	Scope   interface{}
	Key     string
	Runtime time.Duration
	Err     error
}

// Released is emitted after releasable singletons were discarded from a
// scope.
type Released struct {
	Scope interface{}
	Keys  []string
}

// CloseHookExecuting is emitted before a close hook runs.
type CloseHookExecuting struct {
	// FunctionName is the name of the hook being executed.
	FunctionName string
	// CallerName is the name of the caller that appended the hook.
	CallerName string
}

// CloseHookExecuted is emitted after a close hook has been executed.
type CloseHookExecuted struct {
	FunctionName string
	CallerName   string
	Runtime      time.Duration
	Err          error
}
