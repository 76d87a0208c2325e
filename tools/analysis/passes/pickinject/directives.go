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

package pickinject

import (
	"go/ast"
	"go/token"
	"strings"
)

const _directivePrefix = "//pick:"

const (
	_inject     = "inject"
	_named      = "named"
	_scope      = "scope"
	_singleton  = "singleton"
	_releasable = "releasable"
)

// directive is a //pick:name arg... comment line.
type directive struct {
	Name string
	Args []string
	Pos  token.Pos
}

func (d directive) String() string {
	return _directivePrefix + d.Name
}

// directives extracts the pick directives of the given comment groups, in
// order. Nil groups are skipped.
func directives(groups ...*ast.CommentGroup) []directive {
	var out []directive
	for _, g := range groups {
		if g == nil {
			continue
		}
		for _, c := range g.List {
			if !strings.HasPrefix(c.Text, _directivePrefix) {
				continue
			}
			fields := strings.Fields(strings.TrimPrefix(c.Text, _directivePrefix))
			if len(fields) == 0 {
				out = append(out, directive{Pos: c.Pos()})
				continue
			}
			out = append(out, directive{
				Name: fields[0],
				Args: fields[1:],
				Pos:  c.Pos(),
			})
		}
	}
	return out
}

func knownDirective(name string) bool {
	switch name {
	case _inject, _named, _scope, _singleton, _releasable:
		return true
	}
	return false
}

// typeDirective reports whether the directive belongs on a type declaration.
func typeDirective(name string) bool {
	switch name {
	case _scope, _singleton, _releasable:
		return true
	}
	return false
}
