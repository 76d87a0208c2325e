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

import "strconv"

// Kind selects what a resolution returns for a key.
type Kind int

const (
	// KindInstance returns the value itself.
	KindInstance Kind = iota
	// KindProvider returns a Provider that resolves the key on every Get.
	KindProvider
	// KindLazy returns a Lazy that resolves the key once, on first Get.
	KindLazy
)

func (k Kind) String() string {
	switch k {
	case KindInstance:
		return "instance"
	case KindProvider:
		return "provider"
	case KindLazy:
		return "lazy"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}
