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

// Package pickclock is the time source of pick. Graphs read it to time
// instance construction and close hooks.
package pickclock

import (
	"fmt"
	"sync/atomic"
	"time"
)

// Clock reports the current time and durations measured against it.
type Clock interface {
	Now() time.Time
	Since(start time.Time) time.Duration
}

// System reads the wall clock.
var System Clock = wall{}

type wall struct{}

func (wall) Now() time.Time                      { return time.Now() }
func (wall) Since(start time.Time) time.Duration { return time.Since(start) }

// Mock is a Clock that only moves when told to. It starts at the Unix epoch
// so that recorded times are the same on every run.
type Mock struct {
	elapsed atomic.Int64 // nanoseconds since the epoch
}

var _ Clock = (*Mock)(nil)

// NewMock returns a Mock stopped at the Unix epoch.
func NewMock() *Mock {
	return &Mock{}
}

// Now returns the mock time.
func (m *Mock) Now() time.Time {
	return time.Unix(0, m.elapsed.Load()).UTC()
}

// Since returns the mock time elapsed since start.
func (m *Mock) Since(start time.Time) time.Duration {
	return m.Now().Sub(start)
}

// Add moves the clock forward by d. It panics if d is negative.
func (m *Mock) Add(d time.Duration) {
	if d < 0 {
		panic(fmt.Sprintf("pickclock: cannot move back by %v", d))
	}
	m.elapsed.Add(int64(d))
}
