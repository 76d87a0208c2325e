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

// Package allpickevents implements a Go analysis pass that reports
// pickevent.Logger implementations whose LogEvent method ignores some of the
// pickevent types.
//
// A logger that handles none of the events, like a no-op logger, is left
// alone. Test files are not checked.
package allpickevents

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

// PickeventPath is the import path of the package defining the events.
const PickeventPath = "go.uber.org/pick/pickevent"

// Analyzer reports loggers that don't handle every pickevent.Event.
var Analyzer = &analysis.Analyzer{
	Name:     "allpickevents",
	Doc:      "check that pickevent.Loggers handle every event",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

var _filter = []ast.Node{
	&ast.File{},
	&ast.FuncDecl{},
	&ast.CaseClause{},
	&ast.TypeAssertExpr{},
}

func run(pass *analysis.Pass) (interface{}, error) {
	pkg := importedPackage(pass.Pkg, PickeventPath)
	if pkg == nil {
		return nil, nil
	}
	events, ok := loadEvents(pkg)
	if !ok {
		return nil, nil
	}

	c := checker{pass: pass, events: events}
	pass.ResultOf[inspect.Analyzer].(*inspector.Inspector).Nodes(_filter, c.Visit)
	return nil, nil
}

func importedPackage(pkg *types.Package, path string) *types.Package {
	if pkg.Path() == path {
		return pkg
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return imp
		}
	}
	return nil
}

// events describes the pickevent package.
type events struct {
	logger *types.Interface
	all    typeutil.Map // event type -> struct{}
}

func loadEvents(pkg *types.Package) (*events, bool) {
	scope := pkg.Scope()
	eventObj, loggerObj := scope.Lookup("Event"), scope.Lookup("Logger")
	if eventObj == nil || loggerObj == nil {
		return nil, false
	}
	event := eventObj.Type()
	logger, ok := loggerObj.Type().Underlying().(*types.Interface)
	if !ok {
		return nil, false
	}

	e := &events{logger: logger}
	for _, name := range scope.Names() {
		obj, ok := scope.Lookup(name).(*types.TypeName)
		if !ok || !obj.Exported() || obj == eventObj {
			continue
		}
		for _, t := range []types.Type{obj.Type(), types.NewPointer(obj.Type())} {
			if types.IsInterface(t) {
				continue
			}
			if types.AssignableTo(t, event) {
				e.all.Set(t, struct{}{})
				break
			}
		}
	}
	return e, e.all.Len() > 0
}

type checker struct {
	pass   *analysis.Pass
	events *events

	// Set while inside a LogEvent method.
	recv      types.Type
	unhandled *typeutil.Map
}

func (c *checker) Visit(n ast.Node, push bool) bool {
	if !push {
		if fd, ok := n.(*ast.FuncDecl); ok && c.unhandled != nil {
			c.report(fd)
			c.recv, c.unhandled = nil, nil
		}
		return false
	}

	switch n := n.(type) {
	case *ast.File:
		name := c.pass.Fset.File(n.Pos()).Name()
		return !strings.HasSuffix(name, "_test.go")

	case *ast.FuncDecl:
		return c.enter(n)

	case *ast.CaseClause:
		for _, expr := range n.List {
			c.handled(expr)
		}

	case *ast.TypeAssertExpr:
		if n.Type != nil {
			c.handled(n.Type)
		}
	}
	return false
}

func (c *checker) enter(fd *ast.FuncDecl) bool {
	if fd.Recv == nil || fd.Name.Name != "LogEvent" || len(fd.Recv.List) == 0 {
		return false
	}
	recv := c.pass.TypesInfo.TypeOf(fd.Recv.List[0].Type)
	if recv == nil || !types.Implements(recv, c.events.logger) {
		return false
	}

	c.recv = recv
	c.unhandled = new(typeutil.Map)
	c.events.all.Iterate(func(t types.Type, v interface{}) {
		c.unhandled.Set(t, v)
	})
	return true
}

func (c *checker) handled(expr ast.Expr) {
	if c.unhandled == nil {
		return
	}
	if t := c.pass.TypesInfo.TypeOf(expr); t != nil {
		c.unhandled.Delete(t)
	}
}

func (c *checker) report(fd *ast.FuncDecl) {
	n := c.unhandled.Len()
	if n == 0 || n == c.events.all.Len() {
		return
	}

	missing := make([]string, 0, n)
	c.unhandled.Iterate(func(t types.Type, _ interface{}) {
		missing = append(missing, types.TypeString(t, nameOnly))
	})
	sort.Strings(missing)

	c.pass.Report(analysis.Diagnostic{
		Pos: fd.Pos(),
		Message: fmt.Sprintf("%v does not handle %v",
			types.TypeString(c.recv, nameOnly), strings.Join(missing, ", ")),
	})
}

func nameOnly(*types.Package) string { return "" }
