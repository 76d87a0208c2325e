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

// Package gen renders the factories and member injectors of a package's
// injectable types as Go source.
//
// The output registers every artifact with the pick runtime from an init
// function, so importing the package is enough to make its types
// resolvable.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"go.uber.org/pick/tools/analysis/passes/pickinject"
)

// Header marks generated files. pickgen only overwrites or removes files
// that start with it.
const Header = "// Code generated by pickgen. DO NOT EDIT."

// BuildTag excludes generated files from a build. pickgen loads packages
// with it so that stale artifacts never break the analysis.
const BuildTag = "pickgen"

// FileName returns the name of the file generated for a package.
func FileName(pkgName string) string {
	return pkgName + "_pick.gen.go"
}

// Generate renders the artifacts of res as a formatted Go file. It returns
// nil if res has nothing to generate.
func Generate(res *pickinject.Result) ([]byte, error) {
	if len(res.Injectables) == 0 {
		return nil, nil
	}

	im := newImports(res.Pkg)
	data := fileData{
		Pick:     im.pick,
		Header:   Header,
		BuildTag: BuildTag,
		Package:  res.Pkg.Name(),
	}
	for _, inj := range res.Injectables {
		if inj.HasFactory() {
			data.Factories = append(data.Factories, newFactory(inj, im))
		}
		if inj.HasInjector() {
			data.Injectors = append(data.Injectors, newInjector(inj, im))
		}
	}
	data.Imports = im.specs()

	var buf bytes.Buffer
	if err := _fileTmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "render artifacts of %v", res.Pkg.Path())
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, errors.Wrapf(err, "format artifacts of %v", res.Pkg.Path())
	}
	return src, nil
}

type fileData struct {
	Pick      string
	Header    string
	BuildTag  string
	Package   string
	Imports   []importSpec
	Factories []factoryData
	Injectors []injectorData
}

type factoryData struct {
	Pick       string
	Name       string
	Key        string
	Scope      string
	Singleton  bool
	Releasable bool

	Params       []string
	Constructor  string
	ReturnsError bool
	// Zero is the expression for zero value construction.
	Zero string

	Inject bool
	// Addr is set when the constructed value is not a pointer and must be
	// addressed to be injected.
	Addr bool
}

type injectorData struct {
	Fmt      string
	Pick     string
	Name     string
	Target   string
	Embedded *embeddedData
	Fields   []fieldData
}

type embeddedData struct {
	Field   string
	Pointer bool
	Type    string
}

type fieldData struct {
	Name string
	Get  string
}

func newFactory(inj *pickinject.Injectable, im *imports) factoryData {
	f := factoryData{
		Pick:       im.pick,
		Name:       inj.Name(),
		Key:        im.typeString(inj.FactoryType()),
		Scope:      inj.Scope,
		Singleton:  inj.Singleton,
		Releasable: inj.Releasable,
		Inject:     inj.HasInjector(),
	}

	if ctor := inj.Constructor; ctor != nil {
		f.Constructor = ctor.Func.Name()
		f.ReturnsError = ctor.ReturnsError
		f.Addr = !ctor.ReturnsPointer()
		for _, p := range ctor.Params {
			f.Params = append(f.Params, getter(p, im))
		}
	} else {
		f.Zero = "&" + im.typeString(inj.Obj.Type()) + "{}"
	}
	return f
}

func newInjector(inj *pickinject.Injectable, im *imports) injectorData {
	d := injectorData{
		Name:   inj.Name(),
		Target: im.typeString(types.NewPointer(inj.Obj.Type())),
		Fmt:    im.add("fmt", "fmt"),
		Pick:   im.pick,
	}
	if e := inj.Embedded; e != nil {
		d.Embedded = &embeddedData{
			Field:   e.Field,
			Pointer: e.Pointer,
			Type:    im.typeString(e.Type),
		}
	}
	for _, f := range inj.Fields {
		d.Fields = append(d.Fields, fieldData{Name: f.Name, Get: getter(f, im)})
	}
	return d
}

// getter returns the call resolving dep from an Injector named in.
func getter(dep *pickinject.Dependency, im *imports) string {
	fn := "Get" + dep.Kind.String()
	if dep.Qualifier == "" {
		return fmt.Sprintf("%v.%v[%v](in)", im.pick, fn, im.typeString(dep.Type))
	}
	return fmt.Sprintf("%v.%vNamed[%v](in, %v)",
		im.pick, fn, im.typeString(dep.Type), strconv.Quote(dep.Qualifier))
}

type importSpec struct {
	Name string
	Path string
}

// imports tracks the packages referenced by the generated code and picks a
// unique name for each of them.
type imports struct {
	self   *types.Package
	byPath map[string]string
	taken  map[string]bool
	pick   string
}

func newImports(self *types.Package) *imports {
	im := &imports{
		self:   self,
		byPath: make(map[string]string),
		taken:  make(map[string]bool),
	}
	// Package-level names and the locals of the generated functions would
	// shadow imports of the same name.
	for _, name := range self.Scope().Names() {
		im.taken[name] = true
	}
	for _, name := range []string{"in", "target", "t", "v", "ok", "err"} {
		im.taken[name] = true
	}
	im.pick = im.add(pickinject.PickPath, "pick")
	return im
}

func (im *imports) add(path, name string) string {
	if n, ok := im.byPath[path]; ok {
		return n
	}
	n := name
	for i := 2; im.taken[n]; i++ {
		n = name + strconv.Itoa(i)
	}
	im.taken[n] = true
	im.byPath[path] = n
	return n
}

func (im *imports) qualifier(p *types.Package) string {
	if p == im.self || p.Path() == im.self.Path() {
		return ""
	}
	return im.add(p.Path(), p.Name())
}

func (im *imports) typeString(t types.Type) string {
	return types.TypeString(t, im.qualifier)
}

func (im *imports) specs() []importSpec {
	specs := make([]importSpec, 0, len(im.byPath))
	for path, name := range im.byPath {
		spec := importSpec{Path: path}
		if name != defaultName(path) {
			spec.Name = name
		}
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool {
		return specs[i].Path < specs[j].Path
	})
	return specs
}

// defaultName guesses the name a package is imported under when no name is
// given. A wrong guess only adds a redundant import name.
func defaultName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' {
			return path[i+1:]
		}
	}
	return path
}
