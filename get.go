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

// GetInstance resolves the unqualified key of T from in.
func GetInstance[T any](in Injector) (T, error) {
	return getInstance[T](in, KeyOf[T]())
}

// GetInstanceNamed resolves T qualified by name from in.
func GetInstanceNamed[T any](in Injector, name string) (T, error) {
	return getInstance[T](in, NamedKeyOf[T](name))
}

// GetProvider returns a Provider for the unqualified key of T. It fails
// right away if nothing can produce T, without building anything.
func GetProvider[T any](in Injector) (Provider[T], error) {
	return getHandle[T](in, KeyOf[T](), KindProvider)
}

// GetProviderNamed returns a Provider for T qualified by name.
func GetProviderNamed[T any](in Injector, name string) (Provider[T], error) {
	return getHandle[T](in, NamedKeyOf[T](name), KindProvider)
}

// GetLazy returns a Lazy for the unqualified key of T. It fails right away if
// nothing can produce T, without building anything.
func GetLazy[T any](in Injector) (Lazy[T], error) {
	return getHandle[T](in, KeyOf[T](), KindLazy)
}

// GetLazyNamed returns a Lazy for T qualified by name.
func GetLazyNamed[T any](in Injector, name string) (Lazy[T], error) {
	return getHandle[T](in, NamedKeyOf[T](name), KindLazy)
}

func getInstance[T any](in Injector, k Key) (T, error) {
	v, err := in.Resolve(k, KindInstance)
	if err != nil {
		var zero T
		return zero, err
	}
	return cast[T](k, v)
}

// getHandle serves both handle kinds: Provider and Lazy have the same
// method set.
func getHandle[T any](in Injector, k Key, kind Kind) (Provider[T], error) {
	v, err := in.Resolve(k, kind)
	if err != nil {
		return nil, err
	}
	h, ok := v.(interface{ Get() (interface{}, error) })
	if !ok {
		return nil, errors.Wrapf(ErrUnexpectedType, "%v %v handle is a %T", kind, k, v)
	}
	return typedHandle[T]{key: k, handle: h}, nil
}
