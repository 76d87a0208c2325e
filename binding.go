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

	"github.com/pkg/errors"
)

// Producer produces values for a provider binding.
type Producer interface {
	Produce() (interface{}, error)
}

// ProducerFunc adapts a function to the Producer interface.
type ProducerFunc func() (interface{}, error)

// Produce calls f.
func (f ProducerFunc) Produce() (interface{}, error) { return f() }

type bindingMode int

const (
	// Without a production rule the key is built by its own factory.
	bindSelf bindingMode = iota
	bindClass
	bindInstance
	bindProducer
	bindProviderKey
)

func (m bindingMode) String() string {
	switch m {
	case bindSelf:
		return "self"
	case bindClass:
		return "class"
	case bindInstance:
		return "instance"
	case bindProducer:
		return "provider"
	default:
		return "provider key"
	}
}

// Binding is a rule telling a scope how to produce values for a key.
// Bindings are created by Module.Bind and configured with the fluent methods
// below. A binding takes at most one production rule. With none, the key is
// built by the factory registered for its type.
type Binding struct {
	key  Key
	mode bindingMode

	target   Key
	instance interface{}
	producer Producer

	singleton  bool
	releasable bool

	ruled bool
	// Set when more than one production rule is given.
	err error
}

// Key returns the key the binding is for.
func (b *Binding) Key() Key { return b.key }

// Named qualifies the bound key.
func (b *Binding) Named(name string) *Binding {
	b.key = b.key.Named(name)
	return b
}

// To binds the key to another key, usually an implementation of an
// interface. The target is resolved from the scope owning the binding.
func (b *Binding) To(target Key) *Binding {
	if target == b.key {
		return b.setMode(bindSelf)
	}
	b.target = target
	return b.setMode(bindClass)
}

// ToInstance binds the key to a fixed value.
func (b *Binding) ToInstance(v interface{}) *Binding {
	b.instance = v
	return b.setMode(bindInstance)
}

// ToProvider binds the key to a producer. The producer is called for every
// resolution unless the binding is a singleton.
func (b *Binding) ToProvider(p Producer) *Binding {
	b.producer = p
	return b.setMode(bindProducer)
}

// ToProviderFunc is ToProvider for a plain function.
func (b *Binding) ToProviderFunc(f func() (interface{}, error)) *Binding {
	if f == nil {
		return b.ToProvider(nil)
	}
	return b.ToProvider(ProducerFunc(f))
}

// ToProviderKey binds the key to the producer resolved for k from the scope
// owning the binding.
func (b *Binding) ToProviderKey(k Key) *Binding {
	b.target = k
	return b.setMode(bindProviderKey)
}

// Singleton makes the owning scope cache the first value produced.
func (b *Binding) Singleton() *Binding {
	b.singleton = true
	return b
}

// Releasable lets Scope.Release drop the cached singleton. It requires
// Singleton.
func (b *Binding) Releasable() *Binding {
	b.releasable = true
	return b
}

func (b *Binding) setMode(m bindingMode) *Binding {
	if b.ruled {
		if b.err == nil {
			b.err = errors.Errorf("%v already has a %v rule", b.key, b.mode)
		}
		return b
	}
	b.ruled = true
	b.mode = m
	return b
}

func (b *Binding) validate() error {
	if b.key.IsZero() {
		return errors.Wrap(ErrInvalidBinding, "binding for the zero key")
	}
	if b.err != nil {
		return errors.Wrap(ErrInvalidBinding, b.err.Error())
	}
	if b.releasable && !b.singleton {
		return errors.Wrapf(ErrInvalidBinding, "%v is releasable but not a singleton", b.key)
	}

	switch b.mode {
	case bindClass:
		if b.target.IsZero() {
			return errors.Wrapf(ErrInvalidBinding, "%v bound to the zero key", b.key)
		}
		if !b.target.typ.AssignableTo(b.key.typ) {
			return errors.Wrapf(ErrInvalidBinding, "%v cannot be used as %v", b.target.typ, b.key.typ)
		}
	case bindInstance:
		if b.instance == nil {
			return errors.Wrapf(ErrInvalidBinding, "%v bound to a nil instance", b.key)
		}
		if t := reflect.TypeOf(b.instance); !t.AssignableTo(b.key.typ) {
			return errors.Wrapf(ErrInvalidBinding, "instance of %v cannot be used as %v", t, b.key.typ)
		}
	case bindProducer:
		if b.producer == nil {
			return errors.Wrapf(ErrInvalidBinding, "%v bound to a nil provider", b.key)
		}
	case bindProviderKey:
		if b.target.IsZero() {
			return errors.Wrapf(ErrInvalidBinding, "%v bound to the zero provider key", b.key)
		}
	}
	return nil
}
