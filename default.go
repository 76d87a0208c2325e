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

package pick

var _graph = NewGraph()

// DefaultGraph returns the process-wide graph used by the package-level
// functions.
func DefaultGraph() *Graph { return _graph }

// OpenScope opens names on the default graph. See Graph.Open.
func OpenScope(names ...interface{}) (*Scope, error) {
	return _graph.Open(names...)
}

// OpenScopeConfigured opens a configured root scope on the default graph.
// See Graph.OpenConfigured.
func OpenScopeConfigured(name interface{}, configure func(*Scope) error) (*Scope, error) {
	return _graph.OpenConfigured(name, configure)
}

// CloseScope closes a scope of the default graph and its descendants.
func CloseScope(name interface{}) error {
	return _graph.Close(name)
}

// IsScopeOpen reports whether name is open on the default graph.
func IsScopeOpen(name interface{}) bool {
	return _graph.IsOpen(name)
}

// Reset closes every scope of the default graph.
func Reset() error {
	return _graph.Reset()
}
