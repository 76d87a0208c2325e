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
	"sort"
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/pick/internal/lifecycle"
	"go.uber.org/pick/pickevent"
)

// Scope is a node of a Graph. It holds bindings, cached singletons and the
// scope annotations it supports.
//
// A Scope stays usable until it is closed. After that every operation fails
// with ErrScopeNotFound.
type Scope struct {
	name  interface{}
	graph *Graph

	// Guarded by graph.mu.
	parent    interface{}
	hasParent bool
	children  map[interface{}]struct{}

	mu          sync.RWMutex
	closed      bool
	bindings    map[Key]*Binding
	testKeys    map[Key]struct{}
	instances   map[Key]*entry
	annotations map[string]struct{}

	lifecycle *lifecycle.Lifecycle
}

// entry is a cached singleton. The value is published through done so that
// reads of a built singleton do not take a lock.
type entry struct {
	mu         sync.Mutex
	done       atomic.Bool
	value      interface{}
	releasable bool
}

var _ Injector = (*Scope)(nil)

func newScope(g *Graph, name interface{}) *Scope {
	return &Scope{
		name:        name,
		graph:       g,
		children:    make(map[interface{}]struct{}),
		bindings:    make(map[Key]*Binding),
		testKeys:    make(map[Key]struct{}),
		instances:   make(map[Key]*entry),
		annotations: make(map[string]struct{}),
		lifecycle:   lifecycle.New(g.logger, g.clock),
	}
}

// Name returns the name the scope was opened with.
func (s *Scope) Name() interface{} { return s.name }

func (s *Scope) String() string { return fmt.Sprintf("scope(%v)", s.name) }

// Parent returns the parent scope, or nil for a root or closed scope.
func (s *Scope) Parent() *Scope {
	s.graph.mu.RLock()
	defer s.graph.mu.RUnlock()
	return s.graph.parentLocked(s)
}

// Root returns the root of the tree the scope belongs to. A closed scope is
// its own root.
func (s *Scope) Root() *Scope {
	s.graph.mu.RLock()
	defer s.graph.mu.RUnlock()

	root := s
	for p := s.graph.parentLocked(s); p != nil; p = s.graph.parentLocked(p) {
		root = p
	}
	return root
}

// IsOpen reports whether the scope has not been closed.
func (s *Scope) IsOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed
}

// SupportScopeAnnotation makes the scope a target for factories annotated
// with name.
func (s *Scope) SupportScopeAnnotation(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.closedErr()
	}
	s.annotations[name] = struct{}{}
	return nil
}

// SupportsScopeAnnotation reports whether factories annotated with name are
// created in this scope. A scope named by a string supports that string.
func (s *Scope) SupportsScopeAnnotation(name string) bool {
	if n, ok := s.name.(string); ok && n == name {
		return true
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.annotations[name]
	return ok
}

// ParentWithAnnotation returns the nearest scope, starting with s itself,
// that supports the annotation.
func (s *Scope) ParentWithAnnotation(name string) (*Scope, error) {
	chain, err := s.graph.chain(s)
	if err != nil {
		return nil, err
	}
	for _, c := range chain {
		if c.SupportsScopeAnnotation(name) {
			return c, nil
		}
	}
	return nil, errors.Wrapf(ErrScopeAnnotationNotBound, "no scope above %v supports %q", s.name, name)
}

// OnClose registers f to run when the scope closes. Hooks run in reverse
// order of registration.
func (s *Scope) OnClose(f func() error) error {
	if !s.IsOpen() || !s.lifecycle.Append(lifecycle.Hook{OnClose: f}) {
		return s.closedErr()
	}
	return nil
}

// InstallModules installs the bindings of mods into the scope. A binding
// replaces any binding for the same key installed earlier, except one
// installed by InstallTestModules, and evicts the value cached for that key.
//
// Either every binding is installed or, if one is invalid, none is.
func (s *Scope) InstallModules(mods ...*Module) error {
	return s.install(false, mods)
}

// InstallTestModules is InstallModules for test doubles: its bindings cannot
// be replaced by later calls to InstallModules.
func (s *Scope) InstallTestModules(mods ...*Module) error {
	return s.install(true, mods)
}

func (s *Scope) install(test bool, mods []*Module) (err error) {
	var (
		bindings []*Binding
		keys     []string
	)
	defer func() {
		s.graph.logger.LogEvent(&pickevent.ModulesInstalled{
			Scope: s.name,
			Keys:  keys,
			Test:  test,
			Err:   err,
		})
	}()

	for _, m := range mods {
		if m == nil {
			continue
		}
		for _, b := range m.bindings {
			err = multierr.Append(err, b.validate())
			bindings = append(bindings, b)
		}
	}
	if err != nil {
		return errors.Wrapf(err, "install modules in %v", s.name)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return s.closedErr()
	}
	for _, b := range bindings {
		if _, ok := s.testKeys[b.key]; ok && !test {
			continue
		}
		// Copy so that later changes to the module do not leak in.
		bc := *b
		s.bindings[b.key] = &bc
		if test {
			s.testKeys[b.key] = struct{}{}
		}
		delete(s.instances, b.key)
		keys = append(keys, b.key.String())
	}
	return nil
}

// Release drops the cached releasable singletons of the scope and its
// descendants. They are rebuilt on their next resolution.
func (s *Scope) Release() {
	s.graph.mu.RLock()
	subtree := s.graph.subtreeLocked(s, nil)
	s.graph.mu.RUnlock()

	for _, n := range subtree {
		n.release()
	}
}

func (s *Scope) release() {
	var keys []string

	s.mu.Lock()
	for k, e := range s.instances {
		if e.releasable && e.done.Load() {
			delete(s.instances, k)
			keys = append(keys, k.String())
		}
	}
	s.mu.Unlock()

	if len(keys) == 0 {
		return
	}
	sort.Strings(keys)
	s.graph.logger.LogEvent(&pickevent.Released{Scope: s.name, Keys: keys})
}

// Resolve returns the value, Provider or Lazy for k as seen from the scope.
func (s *Scope) Resolve(k Key, kind Kind) (interface{}, error) {
	v, err := s.graph.resolve(&request{scope: s}, k, kind)
	if err != nil {
		s.graph.metrics.Counter("resolve_errors").Inc(1)
	}
	return v, err
}

// Inject assigns the injectable fields of target from the scope.
func (s *Scope) Inject(target interface{}) error {
	return Inject(target, s)
}

func (s *Scope) binding(k Key) *Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bindings[k]
}

// cached returns the singleton cached for k, building it with create if
// needed. Concurrent callers wait for a single build. Failed builds are not
// cached.
func (s *Scope) cached(k Key, releasable bool, create func() (interface{}, error)) (interface{}, error) {
	s.mu.RLock()
	e, ok := s.instances[k]
	s.mu.RUnlock()
	if ok && e.done.Load() {
		return e.value, nil
	}

	if !ok {
		s.mu.Lock()
		if s.closed {
			s.mu.Unlock()
			return nil, s.closedErr()
		}
		if e, ok = s.instances[k]; !ok {
			e = &entry{releasable: releasable}
			s.instances[k] = e
		}
		s.mu.Unlock()
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done.Load() {
		return e.value, nil
	}
	v, err := create()
	if err != nil {
		return nil, err
	}
	e.value = v
	e.done.Store(true)
	return v, nil
}

func (s *Scope) teardown() error {
	s.mu.Lock()
	s.closed = true
	s.bindings = nil
	s.testKeys = nil
	s.instances = nil
	s.mu.Unlock()

	return s.lifecycle.Close()
}

func (s *Scope) closedErr() error {
	return errors.Wrapf(ErrScopeNotFound, "scope %v is closed", s.name)
}
