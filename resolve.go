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
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/pick/pickevent"
)

// request is the Injector handed to factories, producers and member
// injectors. It resolves from the scope the current value is built in and
// carries the keys under construction for cycle detection.
type request struct {
	scope *Scope
	path  []Key
}

var _ Injector = (*request)(nil)

func (r *request) Resolve(k Key, kind Kind) (interface{}, error) {
	return r.scope.graph.resolve(r, k, kind)
}

func (r *request) building(k Key) bool {
	for _, p := range r.path {
		if p == k {
			return true
		}
	}
	return false
}

// enter returns the request for building k's dependencies from s.
func (r *request) enter(s *Scope, k Key) *request {
	path := make([]Key, len(r.path), len(r.path)+1)
	copy(path, r.path)
	return &request{scope: s, path: append(path, k)}
}

func (r *request) cycle(k Key) error {
	parts := make([]string, 0, len(r.path)+1)
	for _, p := range r.path {
		parts = append(parts, p.String())
	}
	parts = append(parts, k.String())
	return errors.Wrap(ErrCyclicDependency, strings.Join(parts, " -> "))
}

// plan says how a key is produced: by a binding owned by target, or by a
// factory building in target.
type plan struct {
	key        Key
	binding    *Binding
	factory    Factory
	target     *Scope
	singleton  bool
	releasable bool
}

func (g *Graph) resolve(req *request, k Key, kind Kind) (interface{}, error) {
	if k.IsZero() {
		return nil, errors.Wrap(ErrNoFactoryFound, "resolve the zero key")
	}

	chain, err := g.chain(req.scope)
	if err != nil {
		return nil, err
	}
	p, err := g.plan(chain, k)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindInstance:
		return g.produce(req, p)
	case KindProvider:
		return &provider{scope: req.scope, key: k}, nil
	case KindLazy:
		return &lazy{provider: provider{scope: req.scope, key: k}}, nil
	default:
		return nil, errors.Errorf("resolve %v: unknown kind %v", k, kind)
	}
}

func (g *Graph) plan(chain []*Scope, k Key) (plan, error) {
	for _, s := range chain {
		if b := s.binding(k); b != nil {
			return plan{
				key:        k,
				binding:    b,
				target:     s,
				singleton:  b.singleton,
				releasable: b.releasable,
			}, nil
		}
	}

	if k.name != "" {
		return plan{}, errors.Wrapf(ErrNoFactoryFound, "no binding for %v", k)
	}
	f := g.registry.factory(k.typ)
	if f == nil {
		return plan{}, errors.Wrapf(ErrNoFactoryFound, "no binding or factory for %v", k)
	}

	target := chain[0]
	if ann := f.ScopeName(); ann != "" {
		target = nil
		for _, s := range chain {
			if s.SupportsScopeAnnotation(ann) {
				target = s
				break
			}
		}
		if target == nil {
			return plan{}, errors.Wrapf(ErrScopeAnnotationNotBound,
				"%v must be created in a scope supporting %q", k, ann)
		}
	}
	return plan{
		key:        k,
		factory:    f,
		target:     target,
		singleton:  f.Singleton(),
		releasable: f.Releasable(),
	}, nil
}

func (g *Graph) produce(req *request, p plan) (interface{}, error) {
	if p.binding != nil && p.binding.mode == bindInstance {
		return p.binding.instance, nil
	}
	if g.cycleCheck && req.building(p.key) {
		return nil, req.cycle(p.key)
	}
	if !p.singleton {
		return g.create(req, p)
	}
	return p.target.cached(p.key, p.releasable, func() (interface{}, error) {
		return g.create(req, p)
	})
}

func (g *Graph) create(req *request, p plan) (interface{}, error) {
	sub := &request{scope: p.target}
	if g.cycleCheck {
		sub = req.enter(p.target, p.key)
	}

	start := g.clock.Now()
	v, err := g.build(sub, p)
	if err != nil {
		err = errors.Wrapf(err, "create %v", p.key)
	}
	g.logger.LogEvent(&pickevent.Instantiated{
		Scope:   p.target.name,
		Key:     p.key.String(),
		Runtime: g.clock.Since(start),
		Err:     err,
	})
	if err != nil {
		return nil, err
	}
	g.metrics.Counter("instances_created").Inc(1)
	return v, nil
}

func (g *Graph) build(req *request, p plan) (interface{}, error) {
	if p.binding == nil {
		return p.factory.CreateInstance(req)
	}

	b := p.binding
	switch b.mode {
	case bindClass:
		return req.Resolve(b.target, KindInstance)
	case bindProducer:
		return b.producer.Produce()
	case bindProviderKey:
		v, err := req.Resolve(b.target, KindInstance)
		if err != nil {
			return nil, err
		}
		producer, ok := v.(Producer)
		if !ok {
			return nil, errors.Wrapf(ErrUnexpectedType, "%v resolved to %T, not a Producer", b.target, v)
		}
		return producer.Produce()
	default:
		f := g.registry.factory(p.key.typ)
		if f == nil {
			return nil, errors.Wrapf(ErrNoFactoryFound, "no factory for %v", p.key)
		}
		return f.CreateInstance(req)
	}
}
