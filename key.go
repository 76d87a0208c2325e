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

import (
	"fmt"
	"reflect"
)

// Key identifies a dependency. It pairs a type with an optional qualifier,
// so that several values of the same type can live side by side.
//
// The zero Key is invalid.
type Key struct {
	typ  reflect.Type
	name string
}

// KeyOf returns the unqualified key for T.
func KeyOf[T any]() Key {
	return Key{typ: reflect.TypeFor[T]()}
}

// NamedKeyOf returns the key for T qualified by name.
func NamedKeyOf[T any](name string) Key {
	return Key{typ: reflect.TypeFor[T](), name: name}
}

// KeyFor returns the key for a runtime type and qualifier.
func KeyFor(t reflect.Type, name string) Key {
	return Key{typ: t, name: name}
}

// Type returns the type the key refers to.
func (k Key) Type() reflect.Type { return k.typ }

// Name returns the qualifier, or "" for an unqualified key.
func (k Key) Name() string { return k.name }

// Named returns a copy of k with the given qualifier.
func (k Key) Named(name string) Key {
	k.name = name
	return k
}

// IsZero reports whether k is the zero Key.
func (k Key) IsZero() bool { return k.typ == nil }

func (k Key) String() string {
	switch {
	case k.typ == nil:
		return "<invalid key>"
	case k.name == "":
		return k.typ.String()
	default:
		return fmt.Sprintf("%v[name=%q]", k.typ, k.name)
	}
}
