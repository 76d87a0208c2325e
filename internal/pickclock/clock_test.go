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

package pickclock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystem(t *testing.T) {
	start := System.Now()
	assert.GreaterOrEqual(t, System.Since(start), time.Duration(0))
}

func TestMock(t *testing.T) {
	t.Run("starts at the epoch", func(t *testing.T) {
		assert.Equal(t, time.Unix(0, 0).UTC(), NewMock().Now())
	})

	t.Run("Add", func(t *testing.T) {
		clock := NewMock()
		start := clock.Now()
		clock.Add(3 * time.Second)
		clock.Add(time.Millisecond)
		assert.Equal(t, 3*time.Second+time.Millisecond, clock.Since(start))
	})

	t.Run("stands still", func(t *testing.T) {
		clock := NewMock()
		clock.Add(time.Hour)
		assert.Equal(t, clock.Now(), clock.Now())
	})

	t.Run("negative duration", func(t *testing.T) {
		clock := NewMock()
		assert.PanicsWithValue(t, "pickclock: cannot move back by -1ns", func() { clock.Add(-1) })
	})
}
