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

// Package lifecycle runs the teardown hooks attached to a scope.
package lifecycle

import (
	"sync"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/pick/internal/pickclock"
	"go.uber.org/pick/internal/pickreflect"
	"go.uber.org/pick/pickevent"
)

// A Hook is a close callback plus a string identifying the supplier of the
// hook.
type Hook struct {
	OnClose func() error
	caller  string
}

// Lifecycle coordinates the close hooks of one scope.
type Lifecycle struct {
	logger pickevent.Logger
	clock  pickclock.Clock

	mu     sync.Mutex
	hooks  []Hook
	closed bool
}

// New constructs a new Lifecycle.
func New(logger pickevent.Logger, clock pickclock.Clock) *Lifecycle {
	if logger == nil {
		logger = pickevent.NopLogger
	}
	if clock == nil {
		clock = pickclock.System
	}
	return &Lifecycle{logger: logger, clock: clock}
}

// Append adds a Hook to the lifecycle. It reports false if the lifecycle has
// already been closed, in which case the hook will never run.
func (l *Lifecycle) Append(hook Hook) bool {
	hook.caller = pickreflect.Caller()

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		return false
	}
	l.hooks = append(l.hooks, hook)
	return true
}

// Close runs all OnClose hooks in reverse order. For best-effort cleanup it
// keeps going after errors; errors are combined into one. Close runs the
// hooks at most once; later calls return nil.
func (l *Lifecycle) Close() error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	hooks := l.hooks
	l.hooks = nil
	l.mu.Unlock()

	var errs []error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := l.runHook(hooks[i]); err != nil {
			errs = append(errs, err)
		}
	}
	return multierr.Combine(errs...)
}

func (l *Lifecycle) runHook(hook Hook) (err error) {
	if hook.OnClose == nil {
		return nil
	}

	funcName := pickreflect.FuncName(hook.OnClose)
	l.logger.LogEvent(&pickevent.CloseHookExecuting{
		FunctionName: funcName,
		CallerName:   hook.caller,
	})
	defer func(begin time.Time) {
		l.logger.LogEvent(&pickevent.CloseHookExecuted{
			FunctionName: funcName,
			CallerName:   hook.caller,
			Runtime:      l.clock.Since(begin),
			Err:          err,
		})
	}(l.clock.Now())

	return hook.OnClose()
}
