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

// Module is an ordered list of bindings installed together into a scope.
// When two bindings of a module share a key, the later one wins.
type Module struct {
	bindings []*Binding
}

// NewModule returns an empty module.
func NewModule() *Module {
	return &Module{}
}

// Bind adds a binding for k to the module and returns it for configuration.
func (m *Module) Bind(k Key) *Binding {
	b := &Binding{key: k}
	m.bindings = append(m.bindings, b)
	return b
}

// Bind adds a binding for the unqualified key of T to m.
func Bind[T any](m *Module) *Binding {
	return m.Bind(KeyOf[T]())
}

// Bindings returns the bindings added so far.
func (m *Module) Bindings() []*Binding {
	return append([]*Binding(nil), m.bindings...)
}
