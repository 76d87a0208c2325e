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
	"sort"
	"sync"

	"github.com/pkg/errors"
	"github.com/uber-go/tally/v4"
	"go.uber.org/multierr"
	"go.uber.org/pick/internal/pickclock"
	"go.uber.org/pick/pickevent"
)

// Graph is a forest of named scopes. It is safe for concurrent use.
//
// The graph owns every scope it opened. Scopes refer to their parent by name
// and to their children through the graph, so closing a scope removes it
// from the graph in a single step and stale references fail with
// ErrScopeNotFound.
type Graph struct {
	mu    sync.RWMutex
	nodes map[interface{}]*Scope

	registry   *Registry
	logger     pickevent.Logger
	metrics    tally.Scope
	clock      pickclock.Clock
	cycleCheck bool
	singleRoot bool
}

// NewGraph builds an empty graph.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		nodes:      make(map[interface{}]*Scope),
		registry:   _registry,
		logger:     pickevent.NopLogger,
		metrics:    tally.NoopScope,
		clock:      pickclock.System,
		cycleCheck: true,
	}
	for _, opt := range opts {
		opt.apply(g)
	}
	return g
}

// Open returns the scope for the last of names, opening any scope of the
// chain that is not open yet and linking each name under the one before it.
//
// A single name opens a root scope, or returns the scope already open under
// that name wherever it sits in the graph. Linking an open root under a
// parent is allowed. Linking a scope that already has another parent fails
// with ErrScopeAlreadyHasDifferentParent.
//
// Open is not atomic: when a link fails, the scopes opened for the names
// before it stay open and linked.
func (g *Graph) Open(names ...interface{}) (*Scope, error) {
	if len(names) == 0 {
		return nil, errors.Wrap(ErrInvalidScopeName, "no scope names given")
	}
	for _, name := range names {
		if err := checkName(name); err != nil {
			return nil, err
		}
	}

	var (
		events []pickevent.Event
		parent *Scope
	)
	g.mu.Lock()
	for _, name := range names {
		s, ev, err := g.openLocked(parent, name)
		if err != nil {
			g.mu.Unlock()
			g.emit(events)
			return nil, err
		}
		if ev != nil {
			events = append(events, ev)
		}
		parent = s
	}
	open := len(g.nodes)
	g.mu.Unlock()

	g.emit(events)
	g.metrics.Gauge("open_scopes").Update(float64(open))
	return parent, nil
}

// OpenConfigured opens a root scope and lets configure install modules into
// it before any other goroutine can see it. If the scope is already open,
// configure is not called and the open scope is returned. If configure fails
// the scope is discarded.
func (g *Graph) OpenConfigured(name interface{}, configure func(*Scope) error) (*Scope, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if s := g.lookup(name); s != nil {
		return s, nil
	}

	fresh := newScope(g, name)
	if configure != nil {
		if err := configure(fresh); err != nil {
			return nil, errors.Wrapf(err, "configure scope %v", name)
		}
	}

	g.mu.Lock()
	if s, ok := g.nodes[name]; ok {
		// Lost a race with another opener.
		g.mu.Unlock()
		return s, nil
	}
	if g.singleRoot && g.hasRootLocked() {
		g.mu.Unlock()
		return nil, errors.Wrapf(ErrMultipleRootScopes, "open %v", name)
	}
	g.nodes[name] = fresh
	open := len(g.nodes)
	g.mu.Unlock()

	g.logger.LogEvent(&pickevent.ScopeOpened{Name: name})
	g.metrics.Counter("scopes_opened").Inc(1)
	g.metrics.Gauge("open_scopes").Update(float64(open))
	return fresh, nil
}

func (g *Graph) openLocked(parent *Scope, name interface{}) (*Scope, pickevent.Event, error) {
	s, ok := g.nodes[name]
	if !ok {
		if parent == nil && g.singleRoot && g.hasRootLocked() {
			return nil, nil, errors.Wrapf(ErrMultipleRootScopes, "open %v", name)
		}
		s = newScope(g, name)
		g.nodes[name] = s
		ev := &pickevent.ScopeOpened{Name: name}
		if parent != nil {
			g.linkLocked(parent, s)
			ev.Parent = parent.name
		}
		g.metrics.Counter("scopes_opened").Inc(1)
		return s, ev, nil
	}

	switch {
	case parent == nil:
		return s, nil, nil
	case s.hasParent && s.parent == parent.name:
		return s, nil, nil
	case s.hasParent:
		return nil, nil, errors.Wrapf(ErrScopeAlreadyHasDifferentParent,
			"cannot open %v under %v, it is a child of %v", name, parent.name, s.parent)
	}

	for cur := parent; cur != nil; cur = g.parentLocked(cur) {
		if cur == s {
			return nil, nil, errors.Wrapf(ErrScopeCycle, "cannot open %v under its descendant %v", name, parent.name)
		}
	}
	g.linkLocked(parent, s)
	return s, &pickevent.ScopeLinked{Name: name, Parent: parent.name}, nil
}

func (g *Graph) linkLocked(parent, child *Scope) {
	child.parent = parent.name
	child.hasParent = true
	parent.children[child.name] = struct{}{}
}

// parentLocked returns nil for a closed scope, even if its parent is still
// open or a scope of the same name was opened since.
func (g *Graph) parentLocked(s *Scope) *Scope {
	if !s.hasParent || g.nodes[s.name] != s {
		return nil
	}
	return g.nodes[s.parent]
}

func (g *Graph) hasRootLocked() bool {
	for _, s := range g.nodes {
		if !s.hasParent {
			return true
		}
	}
	return false
}

// Lookup returns the open scope registered under name.
func (g *Graph) Lookup(name interface{}) (*Scope, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	if s := g.lookup(name); s != nil {
		return s, nil
	}
	return nil, errors.Wrapf(ErrScopeNotFound, "lookup %v", name)
}

func (g *Graph) lookup(name interface{}) *Scope {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.nodes[name]
}

// IsOpen reports whether a scope is registered under name.
func (g *Graph) IsOpen(name interface{}) bool {
	if checkName(name) != nil {
		return false
	}
	return g.lookup(name) != nil
}

// Close closes the scope registered under name and all of its descendants.
// Descendants are torn down before their parents. Closing a name that is not
// open is a no-op.
//
// The returned error combines the failures of the close hooks; the scopes
// are closed regardless.
func (g *Graph) Close(name interface{}) error {
	if err := checkName(name); err != nil {
		return err
	}

	g.mu.Lock()
	s, ok := g.nodes[name]
	if !ok {
		g.mu.Unlock()
		return nil
	}
	if p := g.parentLocked(s); p != nil {
		delete(p.children, name)
	}
	subtree := g.subtreeLocked(s, nil)
	for _, n := range subtree {
		delete(g.nodes, n.name)
	}
	open := len(g.nodes)
	g.mu.Unlock()

	var (
		err         error
		descendants []string
	)
	for _, n := range subtree {
		err = multierr.Append(err, n.teardown())
		if n != s {
			descendants = append(descendants, fmt.Sprint(n.name))
		}
	}
	sort.Strings(descendants)

	g.logger.LogEvent(&pickevent.ScopeClosed{
		Name:        name,
		Descendants: descendants,
		Err:         err,
	})
	g.metrics.Counter("scopes_closed").Inc(int64(len(subtree)))
	g.metrics.Gauge("open_scopes").Update(float64(open))
	return err
}

// subtreeLocked appends the subtree rooted at s in post-order.
func (g *Graph) subtreeLocked(s *Scope, out []*Scope) []*Scope {
	for child := range s.children {
		if c, ok := g.nodes[child]; ok {
			out = g.subtreeLocked(c, out)
		}
	}
	return append(out, s)
}

// Reset closes every root scope, leaving the graph empty.
func (g *Graph) Reset() error {
	g.mu.RLock()
	var roots []interface{}
	for name, s := range g.nodes {
		if !s.hasParent {
			roots = append(roots, name)
		}
	}
	g.mu.RUnlock()

	var err error
	for _, name := range roots {
		err = multierr.Append(err, g.Close(name))
	}
	return err
}

// chain returns s followed by its ancestors, nearest first.
func (g *Graph) chain(s *Scope) ([]*Scope, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.nodes[s.name] != s {
		return nil, errors.Wrapf(ErrScopeNotFound, "scope %v is closed", s.name)
	}
	chain := []*Scope{s}
	for p := g.parentLocked(s); p != nil; p = g.parentLocked(p) {
		chain = append(chain, p)
	}
	return chain, nil
}

func (g *Graph) emit(events []pickevent.Event) {
	for _, ev := range events {
		g.logger.LogEvent(ev)
	}
}

func checkName(name interface{}) error {
	if name == nil {
		return errors.Wrap(ErrInvalidScopeName, "scope name is nil")
	}
	if !reflect.TypeOf(name).Comparable() {
		return errors.Wrapf(ErrInvalidScopeName, "scope name of type %T is not comparable", name)
	}
	return nil
}
