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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger(t *testing.T) {
	t.Parallel()

	someError := errors.New("some error")

	tests := []struct {
		name        string
		give        Event
		wantLevel   zapcore.Level
		wantMessage string
		wantFields  map[string]interface{}
	}{
		{
			name:        "ScopeOpenedRoot",
			give:        &ScopeOpened{Name: "app"},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "scope opened",
			wantFields:  map[string]interface{}{"scope": "app"},
		},
		{
			name:        "ScopeOpenedChild",
			give:        &ScopeOpened{Name: "activity", Parent: "app"},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "scope opened",
			wantFields:  map[string]interface{}{"scope": "activity", "parent": "app"},
		},
		{
			name:        "ScopeLinked",
			give:        &ScopeLinked{Name: 42, Parent: "app"},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "scope linked",
			wantFields:  map[string]interface{}{"scope": "42", "parent": "app"},
		},
		{
			name:        "ScopeClosed",
			give:        &ScopeClosed{Name: "app", Descendants: []string{"activity"}},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "scope closed",
			wantFields: map[string]interface{}{
				"scope":       "app",
				"descendants": []interface{}{"activity"},
			},
		},
		{
			name:        "ScopeClosedError",
			give:        &ScopeClosed{Name: "app", Err: someError},
			wantLevel:   zapcore.ErrorLevel,
			wantMessage: "scope closed with errors",
			wantFields: map[string]interface{}{
				"scope":       "app",
				"descendants": []interface{}{},
				"error":       "some error",
			},
		},
		{
			name:        "ModulesInstalled",
			give:        &ModulesInstalled{Scope: "app", Keys: []string{"coffee.Pump"}},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "modules installed",
			wantFields: map[string]interface{}{
				"scope": "app",
				"keys":  []interface{}{"coffee.Pump"},
				"test":  false,
			},
		},
		{
			name:        "ModulesInstalledError",
			give:        &ModulesInstalled{Scope: "app", Test: true, Err: someError},
			wantLevel:   zapcore.ErrorLevel,
			wantMessage: "module installation failed",
			wantFields: map[string]interface{}{
				"scope": "app",
				"test":  true,
				"error": "some error",
			},
		},
		{
			name:        "Instantiated",
			give:        &Instantiated{Scope: "app", Key: "*coffee.Clock", Runtime: 3 * time.Millisecond},
			wantLevel:   zapcore.DebugLevel,
			wantMessage: "instantiated",
			wantFields: map[string]interface{}{
				"scope":   "app",
				"key":     "*coffee.Clock",
				"runtime": "3ms",
			},
		},
		{
			name:        "InstantiatedError",
			give:        &Instantiated{Scope: "app", Key: "*coffee.Clock", Err: someError},
			wantLevel:   zapcore.ErrorLevel,
			wantMessage: "instantiation failed",
			wantFields: map[string]interface{}{
				"scope": "app",
				"key":   "*coffee.Clock",
				"error": "some error",
			},
		},
		{
			name:        "Released",
			give:        &Released{Scope: "app", Keys: []string{"*coffee.Clock"}},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "released",
			wantFields: map[string]interface{}{
				"scope": "app",
				"keys":  []interface{}{"*coffee.Clock"},
			},
		},
		{
			name:        "CloseHookExecuting",
			give:        &CloseHookExecuting{FunctionName: "hook.onClose", CallerName: "main.run"},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "close hook executing",
			wantFields: map[string]interface{}{
				"callee": "hook.onClose",
				"caller": "main.run",
			},
		},
		{
			name: "CloseHookExecuted",
			give: &CloseHookExecuted{
				FunctionName: "hook.onClose",
				CallerName:   "main.run",
				Runtime:      5 * time.Millisecond,
			},
			wantLevel:   zapcore.InfoLevel,
			wantMessage: "close hook executed",
			wantFields: map[string]interface{}{
				"callee":  "hook.onClose",
				"caller":  "main.run",
				"runtime": "5ms",
			},
		},
		{
			name: "CloseHookExecutedError",
			give: &CloseHookExecuted{
				FunctionName: "hook.onClose",
				CallerName:   "main.run",
				Err:          someError,
			},
			wantLevel:   zapcore.ErrorLevel,
			wantMessage: "close hook failed",
			wantFields: map[string]interface{}{
				"callee": "hook.onClose",
				"caller": "main.run",
				"error":  "some error",
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			core, observedLogs := observer.New(zap.DebugLevel)
			(&ZapLogger{Logger: zap.New(core)}).LogEvent(tt.give)

			logs := observedLogs.TakeAll()
			require.Len(t, logs, 1)
			got := logs[0]

			assert.Equal(t, tt.wantLevel, got.Level)
			assert.Equal(t, tt.wantMessage, got.Message)
			assert.Equal(t, tt.wantFields, got.ContextMap())
		})
	}
}
