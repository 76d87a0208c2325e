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
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/pick/tools/analysis/passes/pickinject"
	"go.uber.org/pick/tools/gen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/go/packages"
)

const _loadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// output is the generation result of one package.
type output struct {
	pkg   *packages.Package
	path  string
	src   []byte
	count int
	diags []string
}

func run(ctx context.Context, log *zap.Logger, cfg *config) error {
	pkgs, err := load(ctx, cfg)
	if err != nil {
		return err
	}
	log.Debug("loaded packages", zap.Int("count", len(pkgs)), zap.Strings("patterns", cfg.Patterns))

	outputs := make([]*output, len(pkgs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Jobs)
	for i, pkg := range pkgs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := generate(pkg)
			outputs[i] = out
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	var invalid error
	for _, out := range outputs {
		for _, d := range out.diags {
			log.Error("invalid annotation", zap.String("package", out.pkg.PkgPath), zap.String("diagnostic", d))
			invalid = multierr.Append(invalid, errors.New(d))
		}
	}
	if invalid != nil {
		return errors.Wrap(invalid, "no files written")
	}

	for _, out := range outputs {
		err = multierr.Append(err, write(log, cfg, out))
	}
	return err
}

func load(ctx context.Context, cfg *config) ([]*packages.Package, error) {
	tags := append([]string{gen.BuildTag}, cfg.Tags...)
	pcfg := &packages.Config{
		Context:    ctx,
		Mode:       _loadMode,
		Dir:        cfg.Dir,
		BuildFlags: []string{"-tags=" + strings.Join(tags, ",")},
	}
	pkgs, err := packages.Load(pcfg, cfg.Patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "load packages")
	}

	var errs error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = multierr.Append(errs, e)
		}
	}
	if errs != nil {
		return nil, errors.Wrap(errs, "load packages")
	}
	return pkgs, nil
}

func generate(pkg *packages.Package) (*output, error) {
	out := &output{pkg: pkg}
	res, diags := pickinject.Analyze(pkg.Fset, pkg.Syntax, pkg.Types, pkg.TypesInfo)
	for _, d := range diags {
		out.diags = append(out.diags, fmt.Sprintf("%v: %v", pkg.Fset.Position(d.Pos), d.Message))
	}
	if len(out.diags) > 0 || len(pkg.GoFiles) == 0 {
		return out, nil
	}

	src, err := gen.Generate(res)
	if err != nil {
		return nil, err
	}
	out.path = filepath.Join(filepath.Dir(pkg.GoFiles[0]), gen.FileName(pkg.Name))
	out.src = src
	out.count = len(res.Injectables)
	return out, nil
}

// write brings the generated file of out up to date. Files that were not
// written by pickgen are never touched.
func write(log *zap.Logger, cfg *config, out *output) error {
	if out.path == "" {
		return nil
	}
	log = log.With(zap.String("file", out.path))

	existing, err := os.ReadFile(out.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		existing = nil
	case err != nil:
		return errors.Wrapf(err, "read %v", out.path)
	case !bytes.HasPrefix(existing, []byte(gen.Header)):
		if out.src == nil {
			return nil
		}
		return errors.Errorf("refusing to overwrite %v: not generated by pickgen", out.path)
	}

	if out.src == nil {
		if existing == nil {
			return nil
		}
		if cfg.DryRun {
			log.Info("would remove stale file")
			return nil
		}
		if err := os.Remove(out.path); err != nil {
			return errors.Wrapf(err, "remove %v", out.path)
		}
		log.Info("removed stale file")
		return nil
	}

	if bytes.Equal(existing, out.src) {
		log.Debug("up to date")
		return nil
	}
	if cfg.DryRun {
		log.Info("would write", zap.Int("injectables", out.count))
		return nil
	}
	if err := os.WriteFile(out.path, out.src, 0o644); err != nil {
		return errors.Wrapf(err, "write %v", out.path)
	}
	log.Info("wrote", zap.Int("injectables", out.count))
	return nil
}
