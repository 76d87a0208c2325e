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
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := viper.New()
		v.SetDefault("jobs", 4)

		cfg, err := loadConfig(v, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"./..."}, cfg.Patterns)
		assert.Equal(t, 4, cfg.Jobs)
		assert.False(t, cfg.DryRun)
	})

	t.Run("arguments win over the config file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pickgen.yaml")
		require.NoError(t, os.WriteFile(path, []byte("patterns: [./internal/...]\njobs: 3\ndry-run: true\n"), 0o644))

		v := viper.New()
		v.Set("config", path)

		cfg, err := loadConfig(v, []string{"./cmd/..."})
		require.NoError(t, err)
		assert.Equal(t, []string{"./cmd/..."}, cfg.Patterns)
		assert.Equal(t, 3, cfg.Jobs)
		assert.True(t, cfg.DryRun)

		cfg, err = loadConfig(v, nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"./internal/..."}, cfg.Patterns)
	})

	t.Run("missing config file", func(t *testing.T) {
		v := viper.New()
		v.Set("config", filepath.Join(t.TempDir(), "missing.yaml"))

		_, err := loadConfig(v, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config")
	})

	t.Run("jobs must be positive", func(t *testing.T) {
		v := viper.New()
		v.Set("jobs", 0)

		_, err := loadConfig(v, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jobs must be positive")
	})
}

func TestCommandFlags(t *testing.T) {
	cmd := newCommand()
	for _, name := range []string{"config", "dir", "tags", "jobs", "dry-run", "verbose"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "flag %q", name)
	}
	assert.Equal(t, "C", cmd.Flags().Lookup("dir").Shorthand)
	assert.Equal(t, "j", cmd.Flags().Lookup("jobs").Shorthand)
}

func TestCommandEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("PICKGEN_DIR", dir)
	t.Setenv("PICKGEN_JOBS", "0")

	cmd := newCommand()
	cmd.SetArgs([]string{"./..."})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jobs must be positive")
}

func TestNewLogger(t *testing.T) {
	log, err := newLogger(false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	log, err = newLogger(true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}
