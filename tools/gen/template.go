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

package gen

import "text/template"

var _fileTmpl = template.Must(template.New("file").Parse(`{{ .Header }}

//go:build !{{ .BuildTag }}

package {{ .Package }}

import (
{{- range .Imports }}
	{{ with .Name }}{{ . }} {{ end }}"{{ .Path }}"
{{- end }}
)
{{ range .Factories }}
type pickFactory_{{ .Name }} struct{}

func (pickFactory_{{ .Name }}) CreateInstance(in {{ .Pick }}.Injector) (interface{}, error) {
{{- range $i, $p := .Params }}
	p{{ $i }}, err := {{ $p }}
	if err != nil {
		return nil, err
	}
{{- end }}
{{- if .Zero }}
	v := {{ .Zero }}
{{- else if .ReturnsError }}
	v, err := {{ .Constructor }}({{ range $i, $p := .Params }}{{ if $i }}, {{ end }}p{{ $i }}{{ end }})
	if err != nil {
		return nil, err
	}
{{- else }}
	v := {{ .Constructor }}({{ range $i, $p := .Params }}{{ if $i }}, {{ end }}p{{ $i }}{{ end }})
{{- end }}
{{- if .Inject }}
	if err := (pickInjector_{{ .Name }}{}).Inject({{ if .Addr }}&{{ end }}v, in); err != nil {
		return nil, err
	}
{{- end }}
	return v, nil
}

func (pickFactory_{{ .Name }}) ScopeName() string { return {{ printf "%q" .Scope }} }

func (pickFactory_{{ .Name }}) Singleton() bool { return {{ .Singleton }} }

func (pickFactory_{{ .Name }}) Releasable() bool { return {{ .Releasable }} }
{{ end }}
{{- range .Injectors }}
type pickInjector_{{ .Name }} struct{}

func (pickInjector_{{ .Name }}) Inject(target interface{}, in {{ .Pick }}.Injector) error {
	t, ok := target.({{ .Target }})
	if !ok {
		return {{ .Fmt }}.Errorf("%w: %T is not a {{ .Target }}", {{ .Pick }}.ErrUnexpectedType, target)
	}
{{- with .Embedded }}
{{- if .Pointer }}
	if t.{{ .Field }} == nil {
		t.{{ .Field }} = new({{ .Type }})
	}
	if err := {{ $.Pick }}.Inject(t.{{ .Field }}, in); err != nil {
		return err
	}
{{- else }}
	if err := {{ $.Pick }}.Inject(&t.{{ .Field }}, in); err != nil {
		return err
	}
{{- end }}
{{- end }}
{{- if .Fields }}
	var err error
{{- range .Fields }}
	if t.{{ .Name }}, err = {{ .Get }}; err != nil {
		return err
	}
{{- end }}
{{- end }}
	return nil
}
{{ end }}
func init() {
{{- range .Factories }}
	{{ $.Pick }}.RegisterFactory[{{ .Key }}](pickFactory_{{ .Name }}{})
{{- end }}
{{- range .Injectors }}
	{{ $.Pick }}.RegisterMemberInjector[{{ .Target }}](pickInjector_{{ .Name }}{})
{{- end }}
}
`))
