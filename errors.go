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

import "github.com/pkg/errors"

// Errors returned by this package are wrapped with context. Use errors.Is to
// match them.
var (
	// ErrScopeNotFound is returned when a scope name is not registered in
	// the graph, or when a closed scope is used.
	ErrScopeNotFound = errors.New("scope not found")

	// ErrScopeAlreadyHasDifferentParent is returned when opening a chain
	// would link a scope under a parent other than the one it already has.
	ErrScopeAlreadyHasDifferentParent = errors.New("scope already has a different parent")

	// ErrScopeCycle is returned when linking a scope would make it its own
	// ancestor.
	ErrScopeCycle = errors.New("scope cycle")

	// ErrMultipleRootScopes is returned by graphs created with SingleRoot
	// when a second root scope would be opened.
	ErrMultipleRootScopes = errors.New("multiple root scopes")

	// ErrInvalidScopeName is returned for nil or non-comparable scope names.
	ErrInvalidScopeName = errors.New("invalid scope name")

	// ErrNoFactoryFound is returned when a key has neither a visible binding
	// nor a registered factory.
	ErrNoFactoryFound = errors.New("no factory found")

	// ErrNoInjectorFound is returned by Inject when no member injector is
	// registered for the target's type.
	ErrNoInjectorFound = errors.New("no member injector found")

	// ErrScopeAnnotationNotBound is returned when a factory names a scope
	// annotation that no scope in the resolution chain supports.
	ErrScopeAnnotationNotBound = errors.New("scope annotation not bound")

	// ErrCyclicDependency is returned when a key is requested again while it
	// is being built.
	ErrCyclicDependency = errors.New("cyclic dependency")

	// ErrInvalidBinding is returned when a module holds a binding that can
	// never produce a value of its key's type.
	ErrInvalidBinding = errors.New("invalid binding")

	// ErrDuplicateArtifact is returned when a second factory or member
	// injector is registered for the same type.
	ErrDuplicateArtifact = errors.New("duplicate artifact")

	// ErrUnexpectedType is returned when a resolved value or injection
	// target does not have the expected type.
	ErrUnexpectedType = errors.New("unexpected type")
)
