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

	"github.com/uber-go/tally/v4"
	"go.uber.org/pick/internal/pickclock"
	"go.uber.org/pick/pickevent"
)

// Option configures a Graph.
type Option interface {
	fmt.Stringer

	apply(*Graph)
}

type optionFunc struct {
	name string
	f    func(*Graph)
}

func (o optionFunc) apply(g *Graph) { o.f(g) }

func (o optionFunc) String() string { return o.name }

// WithLogger sends the graph's events to l. Graphs are silent by default.
func WithLogger(l pickevent.Logger) Option {
	return optionFunc{
		name: fmt.Sprintf("WithLogger(%v)", l),
		f:    func(g *Graph) { g.logger = l },
	}
}

// WithMetrics reports scope and instance counters to s.
func WithMetrics(s tally.Scope) Option {
	return optionFunc{
		name: "WithMetrics()",
		f:    func(g *Graph) { g.metrics = s },
	}
}

// WithRegistry makes the graph look factories and member injectors up in r
// instead of the default registry.
func WithRegistry(r *Registry) Option {
	return optionFunc{
		name: "WithRegistry()",
		f:    func(g *Graph) { g.registry = r },
	}
}

// SingleRoot restricts the graph to one root scope at a time. Opening a
// second root fails with ErrMultipleRootScopes.
func SingleRoot() Option {
	return optionFunc{
		name: "SingleRoot()",
		f:    func(g *Graph) { g.singleRoot = true },
	}
}

// WithoutCycleCheck turns off the bookkeeping that turns dependency cycles
// into ErrCyclicDependency. Only use it for graphs whose artifacts were
// checked by pickvet: an unchecked cycle through a singleton deadlocks.
func WithoutCycleCheck() Option {
	return optionFunc{
		name: "WithoutCycleCheck()",
		f:    func(g *Graph) { g.cycleCheck = false },
	}
}

func withClock(c pickclock.Clock) Option {
	return optionFunc{
		name: "withClock()",
		f:    func(g *Graph) { g.clock = c },
	}
}
