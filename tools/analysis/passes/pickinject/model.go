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

package pickinject

import (
	"go/token"
	"go/types"
)

// Kind is the way a dependency is injected.
type Kind int

const (
	// Instance injects the value itself.
	Instance Kind = iota
	// Provider injects a pick.Provider.
	Provider
	// Lazy injects a pick.Lazy.
	Lazy
)

func (k Kind) String() string {
	switch k {
	case Provider:
		return "Provider"
	case Lazy:
		return "Lazy"
	default:
		return "Instance"
	}
}

// Result is the set of injectable types of a package.
type Result struct {
	Pkg *types.Package

	// Injectables is sorted by type name.
	Injectables []*Injectable
}

// Injectable is a type pick can build or inject into.
type Injectable struct {
	Obj *types.TypeName
	Pos token.Pos

	// Constructor is nil for structs that are built as zero values and
	// then have their fields injected.
	Constructor *Constructor

	// Fields are the fields tagged with `inject`, in declaration order.
	Fields []*Dependency

	// Embedded is the embedded struct whose own injection points are
	// injected before Fields.
	Embedded *Embedded

	Scope      string
	Singleton  bool
	Releasable bool
}

// Name returns the name of the type.
func (i *Injectable) Name() string { return i.Obj.Name() }

// HasFactory reports whether a factory is generated for the type.
func (i *Injectable) HasFactory() bool {
	return i.Constructor != nil || i.HasInjector()
}

// HasInjector reports whether a member injector is generated for the type.
func (i *Injectable) HasInjector() bool {
	return len(i.Fields) > 0 || i.Embedded != nil
}

// FactoryType is the type the factory is registered for: the constructor's
// result, or a pointer to the type for zero value construction.
func (i *Injectable) FactoryType() types.Type {
	if i.Constructor != nil {
		return i.Constructor.Result
	}
	return types.NewPointer(i.Obj.Type())
}

// Constructor is a function annotated with //pick:inject.
type Constructor struct {
	Func         *types.Func
	Params       []*Dependency
	Result       types.Type
	ReturnsError bool
}

// ReturnsPointer reports whether the constructor returns a pointer.
func (c *Constructor) ReturnsPointer() bool {
	_, ok := c.Result.(*types.Pointer)
	return ok
}

// Dependency is a constructor parameter or an injected field.
type Dependency struct {
	Name string
	// Type is the key type, with any Provider or Lazy wrapper removed.
	Type      types.Type
	Qualifier string
	Kind      Kind
	Pos       token.Pos
}

// Embedded is an embedded struct with injection points of its own.
type Embedded struct {
	Field   string
	Type    *types.Named
	Pointer bool
}
