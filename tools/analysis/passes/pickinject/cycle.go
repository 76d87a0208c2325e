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
	"go/types"
	"strings"

	"golang.org/x/tools/go/types/typeutil"
)

// checkCycles reports dependency cycles among injectables. Only unqualified
// instance dependencies form edges: qualified keys need a binding, and
// Provider and Lazy defer resolution until after construction.
func (c *collector) checkCycles(injectables []*Injectable) {
	var byType typeutil.Map
	for _, inj := range injectables {
		byType.Set(inj.FactoryType(), inj)
	}
	byObj := make(map[*types.TypeName]*Injectable, len(injectables))
	for _, inj := range injectables {
		byObj[inj.Obj] = inj
	}

	edges := func(inj *Injectable) []*Injectable {
		var out []*Injectable
		for _, dep := range c.instanceDeps(inj, byObj) {
			if target, ok := byType.At(dep.Type).(*Injectable); ok {
				out = append(out, target)
			}
		}
		return out
	}

	const (
		unvisited = iota
		visiting
		visited
	)
	state := make(map[*Injectable]int, len(injectables))
	var stack []*Injectable

	var visit func(inj *Injectable)
	visit = func(inj *Injectable) {
		switch state[inj] {
		case visited:
			return
		case visiting:
			c.reportCycle(stack, inj)
			return
		}

		state[inj] = visiting
		stack = append(stack, inj)
		for _, next := range edges(inj) {
			visit(next)
		}
		stack = stack[:len(stack)-1]
		state[inj] = visited
	}

	for _, inj := range injectables {
		visit(inj)
	}
}

// instanceDeps returns the dependencies resolved while building inj,
// including those of its embedded structs declared in this package.
func (c *collector) instanceDeps(inj *Injectable, byObj map[*types.TypeName]*Injectable) []*Dependency {
	var deps []*Dependency
	if inj.Constructor != nil {
		deps = append(deps, inj.Constructor.Params...)
	}
	seen := make(map[*Injectable]bool)
	for cur := inj; cur != nil && !seen[cur]; {
		seen[cur] = true
		deps = append(deps, cur.Fields...)
		if cur.Embedded == nil {
			break
		}
		cur = byObj[cur.Embedded.Type.Obj()]
	}

	out := deps[:0]
	for _, d := range deps {
		if d.Kind == Instance && d.Qualifier == "" {
			out = append(out, d)
		}
	}
	return out
}

func (c *collector) reportCycle(stack []*Injectable, back *Injectable) {
	start := 0
	for i, inj := range stack {
		if inj == back {
			start = i
			break
		}
	}

	parts := make([]string, 0, len(stack)-start+1)
	for _, inj := range stack[start:] {
		parts = append(parts, c.typeString(inj.FactoryType()))
	}
	parts = append(parts, c.typeString(back.FactoryType()))
	c.reportf(back.Pos, "dependency cycle: %v", strings.Join(parts, " -> "))
}
