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

// Package pickreflect names the functions behind close hooks so that events
// can say which hook ran and who registered it.
package pickreflect

import (
	"reflect"
	"runtime"
	"strings"
)

const (
	_modulePath = "go.uber.org/pick"
	_unknown    = "n/a"

	// Frames inspected by Caller.
	_maxDepth = 8
)

// Caller returns the first function up the stack that is not part of pick.
// Functions declared in test files always count as callers.
func Caller() string {
	var pcs [_maxDepth]uintptr
	// Skip runtime.Callers and Caller.
	n := runtime.Callers(2, pcs[:])
	frames := runtime.CallersFrames(pcs[:n])
	for {
		f, more := frames.Next()
		if f.Function != "" && !shouldIgnoreFrame(f) {
			return f.Function
		}
		if !more {
			return _unknown
		}
	}
}

// FuncName returns the qualified name of fn followed by "()", or "n/a" if fn
// is not a non-nil function.
func FuncName(fn interface{}) string {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return _unknown
	}
	f := runtime.FuncForPC(v.Pointer())
	if f == nil {
		return _unknown
	}
	return f.Name() + "()"
}

func shouldIgnoreFrame(f runtime.Frame) bool {
	if strings.HasSuffix(f.File, "_test.go") {
		return false
	}
	rest, ok := strings.CutPrefix(f.Function, _modulePath)
	return ok && (strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, "/"))
}
