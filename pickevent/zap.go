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

package pickevent

import (
	"fmt"

	"go.uber.org/zap"
)

// ZapLogger is a pick event logger that logs events to Zap.
type ZapLogger struct {
	Logger *zap.Logger
}

var _ Logger = (*ZapLogger)(nil)

// LogEvent logs the given event to the provided Zap logger.
func (l *ZapLogger) LogEvent(event Event) {
	switch e := event.(type) {
	case *ScopeOpened:
		if e.Parent == nil {
			l.Logger.Info("scope opened", scopeField("scope", e.Name))
		} else {
			l.Logger.Info("scope opened",
				scopeField("scope", e.Name),
				scopeField("parent", e.Parent),
			)
		}
	case *ScopeLinked:
		l.Logger.Info("scope linked",
			scopeField("scope", e.Name),
			scopeField("parent", e.Parent),
		)
	case *ScopeClosed:
		if e.Err != nil {
			l.Logger.Error("scope closed with errors",
				scopeField("scope", e.Name),
				zap.Strings("descendants", e.Descendants),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("scope closed",
				scopeField("scope", e.Name),
				zap.Strings("descendants", e.Descendants),
			)
		}
	case *ModulesInstalled:
		if e.Err != nil {
			l.Logger.Error("module installation failed",
				scopeField("scope", e.Scope),
				zap.Bool("test", e.Test),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("modules installed",
				scopeField("scope", e.Scope),
				zap.Strings("keys", e.Keys),
				zap.Bool("test", e.Test),
			)
		}
	case *Instantiated:
		if e.Err != nil {
			l.Logger.Error("instantiation failed",
				scopeField("scope", e.Scope),
				zap.String("key", e.Key),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Debug("instantiated",
				scopeField("scope", e.Scope),
				zap.String("key", e.Key),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	case *Released:
		l.Logger.Info("released",
			scopeField("scope", e.Scope),
			zap.Strings("keys", e.Keys),
		)
	case *CloseHookExecuting:
		l.Logger.Info("close hook executing",
			zap.String("callee", e.FunctionName),
			zap.String("caller", e.CallerName),
		)
	case *CloseHookExecuted:
		if e.Err != nil {
			l.Logger.Error("close hook failed",
				zap.String("callee", e.FunctionName),
				zap.String("caller", e.CallerName),
				zap.Error(e.Err),
			)
		} else {
			l.Logger.Info("close hook executed",
				zap.String("callee", e.FunctionName),
				zap.String("caller", e.CallerName),
				zap.String("runtime", e.Runtime.String()),
			)
		}
	}
}

// Scope names are opaque, so they're logged by their formatted value.
func scopeField(key string, name interface{}) zap.Field {
	return zap.String(key, fmt.Sprint(name))
}
