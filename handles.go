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
	"sync"
	"sync/atomic"

	"github.com/pkg/errors"
)

// Provider resolves its key every time Get is called, from the scope it was
// obtained from. Each Get is a fresh resolution, so a non-singleton key
// yields a new value each time.
type Provider[T any] interface {
	Get() (T, error)
}

// Lazy resolves its key on the first successful Get and returns that value
// from then on. Failed attempts are not remembered.
type Lazy[T any] interface {
	Get() (T, error)
}

type provider struct {
	scope *Scope
	key   Key
}

var _ Provider[interface{}] = (*provider)(nil)

func (p *provider) Get() (interface{}, error) {
	return p.scope.Resolve(p.key, KindInstance)
}

type lazy struct {
	provider provider

	mu    sync.Mutex
	done  atomic.Bool
	value interface{}
}

var _ Lazy[interface{}] = (*lazy)(nil)

func (l *lazy) Get() (interface{}, error) {
	if l.done.Load() {
		return l.value, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.done.Load() {
		return l.value, nil
	}
	v, err := l.provider.Get()
	if err != nil {
		return nil, err
	}
	l.value = v
	l.done.Store(true)
	return v, nil
}

type typedHandle[T any] struct {
	key    Key
	handle interface{ Get() (interface{}, error) }
}

func (h typedHandle[T]) Get() (T, error) {
	v, err := h.handle.Get()
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](h.key, v)
}

func cast[T any](k Key, v interface{}) (T, error) {
	t, ok := v.(T)
	if !ok && v != nil {
		return t, errors.Wrapf(ErrUnexpectedType, "%v resolved to %T", k, v)
	}
	return t, nil
}
