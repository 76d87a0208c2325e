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
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const _envPrefix = "PICKGEN"

type config struct {
	Patterns []string
	Dir      string
	Tags     []string
	Jobs     int
	DryRun   bool
	Verbose  bool
}

func newCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:           "pickgen [packages]",
		Short:         "Generate pick factories and member injectors",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, args)
			if err != nil {
				return err
			}
			log, err := newLogger(cfg.Verbose)
			if err != nil {
				return err
			}
			defer log.Sync() //nolint:errcheck

			if err := run(cmd.Context(), log, cfg); err != nil {
				log.Error("pickgen failed", zap.Error(err))
				return err
			}
			return nil
		},
	}

	flags := cmd.Flags()
	flags.String("config", "", "YAML file to read settings from")
	flags.StringP("dir", "C", "", "directory to resolve package patterns in")
	flags.StringSlice("tags", nil, "additional build tags")
	flags.IntP("jobs", "j", runtime.GOMAXPROCS(0), "number of packages generated in parallel")
	flags.Bool("dry-run", false, "report changes without writing files")
	flags.BoolP("verbose", "v", false, "log debug output")

	// Flags are always registered, so binding can't fail.
	_ = v.BindPFlags(flags)
	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return cmd
}

// loadConfig merges flags, environment and the optional config file. Package
// patterns on the command line take precedence over the "patterns" setting.
func loadConfig(v *viper.Viper, args []string) (*config, error) {
	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %v", path)
		}
	}

	cfg := &config{
		Patterns: args,
		Dir:      v.GetString("dir"),
		Tags:     v.GetStringSlice("tags"),
		Jobs:     v.GetInt("jobs"),
		DryRun:   v.GetBool("dry-run"),
		Verbose:  v.GetBool("verbose"),
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = v.GetStringSlice("patterns")
	}
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"./..."}
	}
	if cfg.Jobs < 1 {
		return nil, errors.Errorf("jobs must be positive, got %d", cfg.Jobs)
	}
	return cfg, nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}
