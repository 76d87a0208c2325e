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

// Package pickinject implements a Go analysis pass that finds the injectable
// types of a package and checks their pick annotations.
//
// A type is injectable when it has a constructor annotated with
// //pick:inject, or when it is a struct with fields tagged `inject`:
//
//	//pick:scope app
//	//pick:singleton
//	type Clock struct{ ... }
//
//	//pick:inject
//	//pick:named zone tz
//	func NewClock(zone string, log pick.Lazy[Logger]) (*Clock, error)
//
//	type Activity struct {
//		Clock *Clock `inject:""`
//		Zone  string `inject:"tz"`
//	}
//
// The pass reports malformed annotations and dependency cycles, and returns a
// *Result describing every injectable type. pickgen generates factories and
// member injectors from that result.
package pickinject

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

// PickPath is the import path of the pick runtime.
const PickPath = "go.uber.org/pick"

// Analyzer is a go/analysis compatible analyzer that checks pick injection
// annotations. Its result is a *Result.
var Analyzer = &analysis.Analyzer{
	Name:       "pickinject",
	Doc:        "check pick injection annotations",
	Run:        run,
	ResultType: reflect.TypeOf((*Result)(nil)),
	Requires: []*analysis.Analyzer{
		inspect.Analyzer,
	},
}

var _filter = []ast.Node{
	&ast.File{},
	&ast.GenDecl{},
	&ast.FuncDecl{},
}

func run(pass *analysis.Pass) (interface{}, error) {
	c := newCollector(pass.Fset, pass.Pkg, pass.TypesInfo)
	pass.ResultOf[inspect.Analyzer].(*inspector.Inspector).Nodes(_filter, c.Visit)

	res, diags := c.finish()
	for _, d := range diags {
		pass.Report(d)
	}
	return res, nil
}

// Analyze runs the checks of Analyzer over already type-checked files.
func Analyze(fset *token.FileSet, files []*ast.File, pkg *types.Package, info *types.Info) (*Result, []analysis.Diagnostic) {
	c := newCollector(fset, pkg, info)
	for _, f := range files {
		if !c.Visit(f, true) {
			continue
		}
		for _, decl := range f.Decls {
			c.Visit(decl, true)
		}
	}
	return c.finish()
}

type constructorDecl struct {
	ctor *Constructor
	obj  *types.TypeName
	pos  token.Pos
}

type collector struct {
	Fset *token.FileSet
	Pkg  *types.Package
	Info *types.Info

	injectables map[*types.TypeName]*Injectable
	ctors       map[*types.TypeName][]constructorDecl
	diags       []analysis.Diagnostic
}

func newCollector(fset *token.FileSet, pkg *types.Package, info *types.Info) *collector {
	return &collector{
		Fset:        fset,
		Pkg:         pkg,
		Info:        info,
		injectables: make(map[*types.TypeName]*Injectable),
		ctors:       make(map[*types.TypeName][]constructorDecl),
	}
}

func (c *collector) Visit(n ast.Node, push bool) (recurse bool) {
	if !push {
		return false
	}

	switch n := n.(type) {
	case *ast.File:
		// Test files are not part of the generated artifacts.
		fname := c.Fset.File(n.Pos()).Name()
		return !strings.HasSuffix(fname, "_test.go")

	case *ast.GenDecl:
		c.genDecl(n)

	case *ast.FuncDecl:
		c.funcDecl(n)
	}
	return false
}

func (c *collector) reportf(pos token.Pos, format string, args ...interface{}) {
	c.diags = append(c.diags, analysis.Diagnostic{
		Pos:     pos,
		Message: fmt.Sprintf(format, args...),
	})
}

func (c *collector) typeString(t types.Type) string {
	return types.TypeString(t, types.RelativeTo(c.Pkg))
}

func (c *collector) genDecl(d *ast.GenDecl) {
	if d.Tok != token.TYPE {
		for _, dir := range directives(d.Doc) {
			c.reportf(dir.Pos, "%v is not allowed on a %v declaration", dir, d.Tok)
		}
		return
	}

	if len(d.Specs) > 1 {
		for _, dir := range directives(d.Doc) {
			c.reportf(dir.Pos, "%v on a grouped declaration is ambiguous: annotate each type", dir)
		}
	}
	for _, spec := range d.Specs {
		ts := spec.(*ast.TypeSpec)
		dirs := directives(ts.Doc)
		if len(d.Specs) == 1 {
			dirs = directives(d.Doc, ts.Doc)
		}
		c.typeSpec(ts, dirs)
	}
}

func (c *collector) typeSpec(ts *ast.TypeSpec, dirs []directive) {
	obj, ok := c.Info.Defs[ts.Name].(*types.TypeName)
	if !ok {
		return
	}

	inj := &Injectable{Obj: obj, Pos: ts.Pos()}
	var scopes int
	for _, dir := range dirs {
		switch {
		case !knownDirective(dir.Name):
			c.reportf(dir.Pos, "unknown directive %v", dir)
		case !typeDirective(dir.Name):
			c.reportf(dir.Pos, "%v belongs on a constructor function, not on type %v", dir, obj.Name())
		case dir.Name == _scope:
			scopes++
			if len(dir.Args) != 1 {
				c.reportf(dir.Pos, "%v takes exactly one scope name", dir)
				continue
			}
			if scopes > 1 {
				c.reportf(dir.Pos, "%v has more than one %v directive", obj.Name(), dir)
				continue
			}
			inj.Scope = dir.Args[0]
		case dir.Name == _singleton:
			inj.Singleton = true
		case dir.Name == _releasable:
			inj.Releasable = true
		}
	}
	annotated := inj.Scope != "" || inj.Singleton || inj.Releasable

	if ts.Assign.IsValid() || ts.TypeParams != nil {
		if annotated {
			c.reportf(ts.Pos(), "%v cannot be injected: aliases and generic types are not supported", obj.Name())
		}
		return
	}
	if inj.Releasable && !inj.Singleton {
		c.reportf(ts.Pos(), "%v is releasable but not a singleton", obj.Name())
	}

	if st, ok := obj.Type().Underlying().(*types.Struct); ok {
		c.structFields(inj, st)
	}

	if annotated || inj.HasInjector() {
		c.injectables[obj] = inj
	}
}

func (c *collector) structFields(inj *Injectable, st *types.Struct) {
	var embedded []*Embedded
	for i := 0; i < st.NumFields(); i++ {
		f := st.Field(i)
		qualifier, tagged := reflect.StructTag(st.Tag(i)).Lookup("inject")
		if tagged {
			if dep, ok := c.dependency(f.Name(), f.Type(), qualifier, f.Pos()); ok {
				inj.Fields = append(inj.Fields, dep)
			}
			continue
		}
		if !f.Embedded() || !hasInjectionPoints(f.Type(), nil) {
			continue
		}

		t, ptr := f.Type(), false
		if p, ok := t.(*types.Pointer); ok {
			t, ptr = p.Elem(), true
		}
		embedded = append(embedded, &Embedded{
			Field:   f.Name(),
			Type:    t.(*types.Named),
			Pointer: ptr,
		})
	}

	switch len(embedded) {
	case 0:
	case 1:
		inj.Embedded = embedded[0]
	default:
		names := make([]string, len(embedded))
		for i, e := range embedded {
			names[i] = e.Field
		}
		c.reportf(inj.Pos, "%v embeds more than one struct with injection points: %v",
			inj.Name(), strings.Join(names, ", "))
	}
}

// hasInjectionPoints reports whether t is a named struct, or a pointer to
// one, with fields tagged `inject` of its own or through embedding.
func hasInjectionPoints(t types.Type, seen map[*types.Named]bool) bool {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok || seen[named] {
		return false
	}
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}
	if seen == nil {
		seen = make(map[*types.Named]bool)
	}
	seen[named] = true

	for i := 0; i < st.NumFields(); i++ {
		if _, ok := reflect.StructTag(st.Tag(i)).Lookup("inject"); ok {
			return true
		}
		if f := st.Field(i); f.Embedded() && hasInjectionPoints(f.Type(), seen) {
			return true
		}
	}
	return false
}

func (c *collector) funcDecl(d *ast.FuncDecl) {
	dirs := directives(d.Doc)
	if len(dirs) == 0 {
		return
	}

	var (
		inject bool
		named  []directive
	)
	for _, dir := range dirs {
		switch {
		case !knownDirective(dir.Name):
			c.reportf(dir.Pos, "unknown directive %v", dir)
		case typeDirective(dir.Name):
			c.reportf(dir.Pos, "%v belongs on a type declaration, not on function %v", dir, d.Name.Name)
		case dir.Name == _inject:
			inject = true
		case dir.Name == _named:
			named = append(named, dir)
		}
	}

	switch {
	case d.Recv != nil && (inject || len(named) > 0):
		c.reportf(d.Pos(), "method %v cannot be an injectable constructor", d.Name.Name)
		return
	case !inject:
		for _, dir := range named {
			c.reportf(dir.Pos, "%v requires //pick:inject on %v", dir, d.Name.Name)
		}
		return
	}

	fn, ok := c.Info.Defs[d.Name].(*types.Func)
	if !ok {
		return
	}
	c.constructor(d, fn, named)
}

func (c *collector) constructor(d *ast.FuncDecl, fn *types.Func, named []directive) {
	sig := fn.Type().(*types.Signature)
	switch {
	case sig.TypeParams().Len() > 0:
		c.reportf(d.Pos(), "constructor %v cannot be generic", fn.Name())
		return
	case sig.Variadic():
		c.reportf(d.Pos(), "constructor %v cannot be variadic", fn.Name())
		return
	}

	res := sig.Results()
	returnsError := res.Len() == 2 && isError(res.At(1).Type())
	if res.Len() != 1 && !returnsError {
		c.reportf(d.Pos(), "constructor %v must return T or (T, error)", fn.Name())
		return
	}

	result := res.At(0).Type()
	obj := c.declaredType(result)
	if obj == nil {
		c.reportf(d.Pos(), "constructor %v must return a type declared in package %v, or a pointer to one, not %v",
			fn.Name(), c.Pkg.Name(), c.typeString(result))
		return
	}

	params := sig.Params()
	qualifiers := make(map[string]string)
	for _, dir := range named {
		if len(dir.Args) != 2 {
			c.reportf(dir.Pos, "%v takes a parameter name and a qualifier", dir)
			continue
		}
		param, qualifier := dir.Args[0], dir.Args[1]
		if !hasParam(params, param) {
			c.reportf(dir.Pos, "%v names unknown parameter %q of %v", dir, param, fn.Name())
			continue
		}
		if _, dup := qualifiers[param]; dup {
			c.reportf(dir.Pos, "parameter %q of %v is qualified more than once", param, fn.Name())
			continue
		}
		qualifiers[param] = qualifier
	}

	ctor := &Constructor{
		Func:         fn,
		Result:       result,
		ReturnsError: returnsError,
	}
	valid := true
	for i := 0; i < params.Len(); i++ {
		p := params.At(i)
		dep, ok := c.dependency(p.Name(), p.Type(), qualifiers[p.Name()], p.Pos())
		if !ok {
			valid = false
			continue
		}
		ctor.Params = append(ctor.Params, dep)
	}
	if !valid {
		return
	}

	c.ctors[obj] = append(c.ctors[obj], constructorDecl{ctor: ctor, obj: obj, pos: d.Pos()})
}

func hasParam(params *types.Tuple, name string) bool {
	for i := 0; i < params.Len(); i++ {
		if params.At(i).Name() == name {
			return true
		}
	}
	return false
}

// declaredType returns the type name of t, or of the type t points to, if it
// is declared in the analyzed package.
func (c *collector) declaredType(t types.Type) *types.TypeName {
	if p, ok := t.(*types.Pointer); ok {
		t = p.Elem()
	}
	named, ok := t.(*types.Named)
	if !ok || named.TypeArgs().Len() > 0 || named.Obj().Pkg() != c.Pkg {
		return nil
	}
	return named.Obj()
}

func isError(t types.Type) bool {
	return types.Identical(t, types.Universe.Lookup("error").Type())
}

// dependency builds the key of a parameter or field of type t. It reports
// malformed keys and returns false for them.
func (c *collector) dependency(name string, t types.Type, qualifier string, pos token.Pos) (*Dependency, bool) {
	dep := &Dependency{
		Name:      name,
		Type:      t,
		Qualifier: qualifier,
		Kind:      Instance,
		Pos:       pos,
	}
	if kind, elem, ok := wrapper(t); ok {
		if _, _, nested := wrapper(elem); nested {
			c.reportf(pos, "%v of %v: wrappers cannot be nested", name, c.typeString(t))
			return nil, false
		}
		dep.Kind = kind
		dep.Type = elem
	}

	switch kt := types.Unalias(dep.Type).(type) {
	case *types.Named:
		return dep, true
	case *types.Pointer:
		if _, ok := types.Unalias(kt.Elem()).(*types.Named); ok {
			return dep, true
		}
	case *types.Basic:
		if qualifier != "" {
			return dep, true
		}
		c.reportf(pos, "%v of basic type %v needs a qualifier", name, c.typeString(kt))
		return nil, false
	}
	c.reportf(pos, "%v has unnamed type %v: declare a named type for it", name, c.typeString(dep.Type))
	return nil, false
}

// wrapper reports whether t is pick.Provider[T] or pick.Lazy[T], returning
// the kind and T.
func wrapper(t types.Type) (Kind, types.Type, bool) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return Instance, nil, false
	}
	obj := named.Obj()
	if obj.Pkg() == nil || obj.Pkg().Path() != PickPath || named.TypeArgs().Len() != 1 {
		return Instance, nil, false
	}

	switch obj.Name() {
	case "Provider":
		return Provider, named.TypeArgs().At(0), true
	case "Lazy":
		return Lazy, named.TypeArgs().At(0), true
	}
	return Instance, nil, false
}

func (c *collector) finish() (*Result, []analysis.Diagnostic) {
	for obj, decls := range c.ctors {
		if len(decls) > 1 {
			names := make([]string, len(decls))
			for i, d := range decls {
				names[i] = d.ctor.Func.Name()
			}
			sort.Strings(names)
			for _, d := range decls {
				c.reportf(d.pos, "%v has more than one injectable constructor: %v",
					obj.Name(), strings.Join(names, ", "))
			}
			continue
		}

		inj, ok := c.injectables[obj]
		if !ok {
			inj = &Injectable{Obj: obj, Pos: obj.Pos()}
			c.injectables[obj] = inj
		}
		inj.Constructor = decls[0].ctor
	}

	res := &Result{Pkg: c.Pkg}
	for _, inj := range c.injectables {
		if !inj.HasFactory() {
			c.reportf(inj.Pos, "%v has pick annotations but neither an injectable constructor nor injected fields", inj.Name())
			continue
		}
		res.Injectables = append(res.Injectables, inj)
	}
	sort.Slice(res.Injectables, func(i, j int) bool {
		return res.Injectables[i].Name() < res.Injectables[j].Name()
	})

	c.checkCycles(res.Injectables)

	sort.SliceStable(c.diags, func(i, j int) bool {
		return c.diags[i].Pos < c.diags[j].Pos
	})
	return res, c.diags
}
