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

package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/pick/tools/gen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

const _coffee = `package coffee

type Heater struct{}

//pick:inject
func NewHeater() *Heater { return &Heater{} }

//pick:singleton
//pick:scope app
type Pump struct {
	Heater *Heater ` + "`inject:\"\"`" + `
}
`

const _plain = `package coffee

type Heater struct{}
`

// writeModule lays out a single package module and returns its directory.
func writeModule(t *testing.T, src string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/coffee\n\ngo 1.22\n"), 0o644))
	writeSource(t, dir, src)
	return dir
}

func writeSource(t *testing.T, dir, src string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "coffee.go"), []byte(src), 0o644))
}

func runPickgen(t *testing.T, dir string, dryRun bool) (*observer.ObservedLogs, error) {
	t.Helper()

	core, logs := observer.New(zapcore.DebugLevel)
	cfg := &config{
		Patterns: []string{"./..."},
		Dir:      dir,
		Jobs:     2,
		DryRun:   dryRun,
	}
	return logs, run(context.Background(), zap.New(core), cfg)
}

func generatedFile(dir string) string {
	return filepath.Join(dir, gen.FileName("coffee"))
}

func TestRun(t *testing.T) {
	t.Run("writes artifacts", func(t *testing.T) {
		dir := writeModule(t, _coffee)

		logs, err := runPickgen(t, dir, false)
		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("wrote").Len())

		src, err := os.ReadFile(generatedFile(dir))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(src), gen.Header))
		assert.Contains(t, string(src), "type pickFactory_Heater struct{}")
		assert.Contains(t, string(src), "type pickInjector_Pump struct{}")
	})

	t.Run("second run is a no-op", func(t *testing.T) {
		dir := writeModule(t, _coffee)

		_, err := runPickgen(t, dir, false)
		require.NoError(t, err)
		before, err := os.ReadFile(generatedFile(dir))
		require.NoError(t, err)

		logs, err := runPickgen(t, dir, false)
		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("up to date").Len())
		assert.Zero(t, logs.FilterMessage("wrote").Len())

		after, err := os.ReadFile(generatedFile(dir))
		require.NoError(t, err)
		assert.Equal(t, before, after)
	})

	t.Run("removes stale artifacts", func(t *testing.T) {
		dir := writeModule(t, _coffee)

		_, err := runPickgen(t, dir, false)
		require.NoError(t, err)
		require.FileExists(t, generatedFile(dir))

		writeSource(t, dir, _plain)
		logs, err := runPickgen(t, dir, false)
		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("removed stale file").Len())
		assert.NoFileExists(t, generatedFile(dir))
	})

	t.Run("dry run", func(t *testing.T) {
		dir := writeModule(t, _coffee)

		logs, err := runPickgen(t, dir, true)
		require.NoError(t, err)
		assert.Equal(t, 1, logs.FilterMessage("would write").Len())
		assert.NoFileExists(t, generatedFile(dir))
	})

	t.Run("invalid annotations", func(t *testing.T) {
		dir := writeModule(t, _coffee+`
//pick:bogus
type Grinder struct{}
`)

		logs, err := runPickgen(t, dir, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no files written")
		assert.Contains(t, err.Error(), "unknown directive //pick:bogus")
		assert.Equal(t, 1, logs.FilterMessage("invalid annotation").Len())
		assert.NoFileExists(t, generatedFile(dir))
	})

	t.Run("foreign file", func(t *testing.T) {
		dir := writeModule(t, _coffee)
		require.NoError(t, os.WriteFile(generatedFile(dir), []byte("package coffee\n"), 0o644))

		_, err := runPickgen(t, dir, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not generated by pickgen")

		src, err := os.ReadFile(generatedFile(dir))
		require.NoError(t, err)
		assert.Equal(t, "package coffee\n", string(src))
	})

	t.Run("load errors", func(t *testing.T) {
		dir := writeModule(t, "package coffee\n\nvar x int = \"nope\"\n")

		_, err := runPickgen(t, dir, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load packages")
	})
}
