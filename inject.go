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

// Inject assigns the injectable fields of target, which is usually a pointer
// to a struct, using the member injector registered for its dynamic type.
// Generated member injectors call Inject for embedded injectable structs.
func Inject(target interface{}, in Injector) error {
	if target == nil {
		return errors.Wrap(ErrUnexpectedType, "inject into nil")
	}

	t := reflect.TypeOf(target)
	mi := registryOf(in).memberInjector(t)
	if mi == nil {
		return errors.Wrapf(ErrNoInjectorFound, "inject %v", t)
	}
	if err := mi.Inject(target, in); err != nil {
		return errors.Wrapf(err, "inject %v", t)
	}
	return nil
}

func registryOf(in Injector) *Registry {
	switch in := in.(type) {
	case *Scope:
		return in.graph.registry
	case *request:
		return in.scope.graph.registry
	default:
		return _registry
	}
}
