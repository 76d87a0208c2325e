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
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// Injector resolves keys.
//
// A *Scope is an Injector. Factories and member injectors receive an
// Injector bound to the resolution in progress; they should pass it on to
// GetInstance and friends rather than hold on to it.
type Injector interface {
	Resolve(k Key, kind Kind) (interface{}, error)
}

// Factory builds instances of one type. Factories are usually generated by
// pickgen.
type Factory interface {
	// CreateInstance builds a new instance, resolving its dependencies
	// from in.
	CreateInstance(in Injector) (interface{}, error)

	// ScopeName returns the scope annotation instances must be created in,
	// or "" if they can be created in any scope.
	ScopeName() string

	// Singleton reports whether the instance is cached by the scope it is
	// created in.
	Singleton() bool

	// Releasable reports whether a cached instance is dropped by
	// Scope.Release.
	Releasable() bool
}

// MemberInjector assigns the injectable fields of an existing value.
type MemberInjector interface {
	Inject(target interface{}, in Injector) error
}

// Registry maps types to their factories and member injectors.
type Registry struct {
	mu        sync.RWMutex
	factories map[reflect.Type]Factory
	injectors map[reflect.Type]MemberInjector
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[reflect.Type]Factory),
		injectors: make(map[reflect.Type]MemberInjector),
	}
}

var _registry = NewRegistry()

// DefaultRegistry returns the registry generated code registers into. Graphs
// use it unless built with WithRegistry.
func DefaultRegistry() *Registry { return _registry }

// RegisterFactory registers f as the factory for T in the default registry.
// It panics if T already has a factory.
func RegisterFactory[T any](f Factory) {
	if err := _registry.AddFactory(KeyOf[T](), f); err != nil {
		panic(err)
	}
}

// RegisterMemberInjector registers m as the member injector for T in the
// default registry. It panics if T already has one.
func RegisterMemberInjector[T any](m MemberInjector) {
	if err := _registry.AddMemberInjector(KeyOf[T](), m); err != nil {
		panic(err)
	}
}

// AddFactory registers f for the type of k. Factories are looked up by type
// only, so k must be unqualified.
func (r *Registry) AddFactory(k Key, f Factory) error {
	if err := registrable(k, f == nil); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[k.typ]; ok {
		return errors.Wrapf(ErrDuplicateArtifact, "factory for %v", k)
	}
	r.factories[k.typ] = f
	return nil
}

// AddMemberInjector registers m for the type of k, which must be
// unqualified.
func (r *Registry) AddMemberInjector(k Key, m MemberInjector) error {
	if err := registrable(k, m == nil); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.injectors[k.typ]; ok {
		return errors.Wrapf(ErrDuplicateArtifact, "member injector for %v", k)
	}
	r.injectors[k.typ] = m
	return nil
}

func registrable(k Key, isNil bool) error {
	switch {
	case k.IsZero():
		return errors.New("cannot register an artifact for the zero key")
	case k.name != "":
		return errors.Errorf("cannot register an artifact for qualified key %v", k)
	case isNil:
		return errors.Errorf("cannot register a nil artifact for %v", k)
	}
	return nil
}

func (r *Registry) factory(t reflect.Type) Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.factories[t]
}

func (r *Registry) memberInjector(t reflect.Type) MemberInjector {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.injectors[t]
}
