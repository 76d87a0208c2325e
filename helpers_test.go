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

package pick_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/pick"
	"go.uber.org/pick/internal/picklog"
	"go.uber.org/pick/picktest"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type Clock struct{ id int64 }

type Logger interface {
	Log(string) string
}

type prefixLogger struct {
	prefix string
}

func (l *prefixLogger) Log(msg string) string { return l.prefix + msg }

// Service depends on a Clock and a Logger.
type Service struct {
	Clock  *Clock
	Logger Logger
}

// factory is a hand-written pick.Factory.
type factory struct {
	create     func(pick.Injector) (interface{}, error)
	scope      string
	singleton  bool
	releasable bool
}

var _ pick.Factory = factory{}

func (f factory) CreateInstance(in pick.Injector) (interface{}, error) { return f.create(in) }
func (f factory) ScopeName() string                                     { return f.scope }
func (f factory) Singleton() bool                                       { return f.singleton }
func (f factory) Releasable() bool                                      { return f.releasable }

// clockFactory builds Clocks with increasing ids and counts them.
func clockFactory(count *atomic.Int64) func(pick.Injector) (interface{}, error) {
	return func(pick.Injector) (interface{}, error) {
		return &Clock{id: count.Add(1)}, nil
	}
}

// clockProducer is clockFactory for bindings to a provider function.
func clockProducer(count *atomic.Int64) func() (interface{}, error) {
	return func() (interface{}, error) {
		return &Clock{id: count.Add(1)}, nil
	}
}

func serviceFactory(in pick.Injector) (interface{}, error) {
	c, err := pick.GetInstance[*Clock](in)
	if err != nil {
		return nil, err
	}
	l, err := pick.GetInstance[Logger](in)
	if err != nil {
		return nil, err
	}
	return &Service{Clock: c, Logger: l}, nil
}

type env struct {
	registry *pick.Registry
	graph    *pick.Graph
	spy      *picklog.Spy
}

func newEnv(t *testing.T, opts ...pick.Option) *env {
	e := &env{registry: pick.NewRegistry(), spy: &picklog.Spy{}}
	opts = append([]pick.Option{pick.WithRegistry(e.registry), pick.WithLogger(e.spy)}, opts...)
	e.graph = picktest.NewGraph(t, opts...)
	return e
}

func (e *env) factory(t *testing.T, k pick.Key, f pick.Factory) {
	require.NoError(t, e.registry.AddFactory(k, f), "register factory for %v", k)
}

func (e *env) open(t *testing.T, names ...interface{}) *pick.Scope {
	return picktest.RequireOpen(t, e.graph, names...)
}

func install(t *testing.T, s *pick.Scope, bind func(m *pick.Module)) {
	m := pick.NewModule()
	bind(m)
	require.NoError(t, s.InstallModules(m))
}
