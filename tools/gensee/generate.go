package main

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strings"
	"text/template"
)

const slotsTemplate = `// Code generated by gensee from {{.Source}}. DO NOT EDIT.

package slots

// Intercepted functions, in counter-table column order.
const (
{{- range $i, $f := .Funcs}}
	{{$f.Const}}{{if eq $i 0}} Slot = iota{{end}}
{{- end}}

	// Count is the number of intercepted functions.
	Count = iota
)

var infos = [Count]Info{
{{- range .Funcs}}
	{"{{.Import}}.{{.Name}}", "{{.Import}}", "{{.Name}}", "{{.Const}}", {{.GroupConst}}},
{{- end}}
}
`

const symbolsTemplate = `// Code generated by gensee from {{.Source}}. DO NOT EDIT.

package see

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}
)

// symbols holds one implementation per slot, in slot order.
type symbols struct {
{{- range .Funcs}}
	{{.Const}} func({{.Params}}){{with .Results}} {{.}}{{end}}
{{- end}}
}

// system is the standard library implementation of every slot.
var system = symbols{
{{- range .Funcs}}
	{{.Const}}: {{.Pkg}}.{{.Name}},
{{- end}}
}

// exports is the instrumented implementation of every slot.
var exports = symbols{
{{- range .Funcs}}
	{{.Const}}: {{.Const}},
{{- end}}
}
`

const wrappersTemplate = `// Code generated by gensee from {{.Source}}. DO NOT EDIT.

package see

import (
{{- range .Imports}}
	"{{.}}"
{{- end}}

	"github.com/kolkov/libsee/internal/see/engine"
	"github.com/kolkov/libsee/internal/see/slots"
)
{{range .Funcs}}
// {{.Const}} wraps {{.Import}}.{{.Name}}.
func {{.Const}}({{.Params}}){{with .Results}} {{.}}{{end}} {
	start := engine.Default.Begin(slots.{{.Const}})
{{- if .NumResults}}
	{{results .NumResults}} := next.{{.Const}}({{join .Args}})
	engine.Default.End(slots.{{.Const}}, start)
	return {{results .NumResults}}
{{- else}}
	next.{{.Const}}({{join .Args}})
	engine.Default.End(slots.{{.Const}}, start)
{{- end}}
}
{{end}}`

var funcs = template.FuncMap{
	"join": func(args []string) string { return strings.Join(args, ", ") },
	"results": func(n int) string {
		names := make([]string, n)
		for i := range names {
			names[i] = fmt.Sprintf("r%d", i)
		}
		return strings.Join(names, ", ")
	},
}

var (
	slotsTmpl    = template.Must(template.New("slots").Parse(slotsTemplate))
	symbolsTmpl  = template.Must(template.New("symbols").Parse(symbolsTemplate))
	wrappersTmpl = template.Must(template.New("wrappers").Funcs(funcs).Parse(wrappersTemplate))
)

type templateData struct {
	Source  string
	Imports []string
	Funcs   []Func
}

func generateSlots(m *Manifest, source string) ([]byte, error) {
	return execute(slotsTmpl, templateData{Source: source, Funcs: m.Funcs})
}

func generateSymbols(m *Manifest, source string) ([]byte, error) {
	return execute(symbolsTmpl, templateData{Source: source, Imports: m.Imports, Funcs: m.Funcs})
}

// generateWrappers imports only the packages the wrapper signatures
// name; the wrapper bodies refer to no standard-library package.
func generateWrappers(m *Manifest, source string) ([]byte, error) {
	byName := make(map[string]string, len(m.Imports))
	for _, f := range m.Funcs {
		byName[f.Pkg] = f.Import
	}
	used := make(map[string]bool)
	for _, f := range m.Funcs {
		for _, pkg := range f.Uses {
			imp, ok := byName[pkg]
			if !ok {
				return nil, fmt.Errorf("%s.%s: package %s is not in the manifest", f.Import, f.Name, pkg)
			}
			used[imp] = true
		}
	}
	return execute(wrappersTmpl, templateData{Source: source, Imports: sortedKeys(used), Funcs: m.Funcs})
}

func execute(t *template.Template, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", t.Name(), err)
	}
	return src, nil
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
