package main

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"path"
	"strings"

	"gopkg.in/yaml.v3"
)

// groupConsts maps manifest group names to their constants in package
// slots.
var groupConsts = map[string]string{
	"string": "GroupString",
	"memory": "GroupMemory",
	"sort":   "GroupSort",
	"random": "GroupRandom",
	"number": "GroupNumber",
	"format": "GroupFormat",
	"file":   "GroupFile",
	"stream": "GroupStream",
	"time":   "GroupTime",
}

// reserved names are used by the wrapper bodies and cannot be parameter
// names.
var reserved = map[string]bool{
	"start":  true,
	"next":   true,
	"engine": true,
	"slots":  true,
}

type manifestFile struct {
	Groups []struct {
		Name   string   `yaml:"name"`
		Import string   `yaml:"import"`
		Funcs  []string `yaml:"funcs"`
	} `yaml:"groups"`
}

// Func is one intercepted function.
type Func struct {
	Import     string   // import path, e.g. "math/rand"
	Pkg        string   // package name, e.g. "rand"
	Name       string   // function name, e.g. "Intn"
	Const      string   // slot constant and wrapper name, e.g. "RandIntn"
	GroupConst string   // group constant in package slots
	Params     string   // parameter list as written
	Results    string   // result list as written, may be empty
	Args       []string // call arguments, variadic ones with "..."
	NumResults int
	Uses       []string // packages named in the signature
}

// Manifest is the parsed slot manifest.
type Manifest struct {
	Funcs   []Func
	Imports []string // distinct import paths, sorted
}

func parseManifest(data []byte) (*Manifest, error) {
	var mf manifestFile
	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, err
	}
	if len(mf.Groups) == 0 {
		return nil, errors.New("no groups")
	}

	m := new(Manifest)
	seen := make(map[string]bool)
	imports := make(map[string]bool)
	for _, g := range mf.Groups {
		groupConst, ok := groupConsts[g.Name]
		if !ok {
			return nil, fmt.Errorf("unknown group %q", g.Name)
		}
		if g.Import == "" {
			return nil, fmt.Errorf("group %q: missing import", g.Name)
		}
		imports[g.Import] = true
		for _, sig := range g.Funcs {
			f, err := parseFunc(sig)
			if err != nil {
				return nil, fmt.Errorf("group %q: %q: %w", g.Name, sig, err)
			}
			f.Import = g.Import
			f.Pkg = path.Base(g.Import)
			f.Const = strings.ToUpper(f.Pkg[:1]) + f.Pkg[1:] + f.Name
			f.GroupConst = groupConst
			if seen[f.Const] {
				return nil, fmt.Errorf("duplicate function %s.%s", f.Import, f.Name)
			}
			seen[f.Const] = true
			m.Funcs = append(m.Funcs, f)
		}
	}
	m.Imports = sortedKeys(imports)
	return m, nil
}

// parseFunc parses a signature written as "Name(params) results".
func parseFunc(sig string) (Func, error) {
	var f Func
	open := strings.IndexByte(sig, '(')
	if open <= 0 {
		return f, errors.New("missing parameter list")
	}
	f.Name = strings.TrimSpace(sig[:open])
	if !token.IsExported(f.Name) {
		return f, errors.New("function name must be exported")
	}

	src := "func" + sig[open:]
	expr, err := parser.ParseExpr(src)
	if err != nil {
		return f, err
	}
	ft, ok := expr.(*ast.FuncType)
	if !ok {
		return f, errors.New("not a function signature")
	}

	// Offsets into src are Pos-1: ParseExpr starts the file at base 1.
	f.Params = src[ft.Params.Opening : ft.Params.Closing-1]
	f.Results = strings.TrimSpace(src[ft.Params.Closing:])

	for _, field := range ft.Params.List {
		if len(field.Names) == 0 {
			return f, errors.New("parameters must be named")
		}
		_, variadic := field.Type.(*ast.Ellipsis)
		for _, name := range field.Names {
			if reserved[name.Name] || isResultName(name.Name) {
				return f, fmt.Errorf("parameter name %q is reserved", name.Name)
			}
			arg := name.Name
			if variadic {
				arg += "..."
			}
			f.Args = append(f.Args, arg)
		}
	}
	if ft.Results != nil {
		f.NumResults = ft.Results.NumFields()
	}

	uses := make(map[string]bool)
	ast.Inspect(ft, func(n ast.Node) bool {
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok {
				uses[id.Name] = true
			}
		}
		return true
	})
	f.Uses = sortedKeys(uses)
	return f, nil
}

// isResultName reports whether name has the form of a wrapper's result
// variable: r0, r1, ...
func isResultName(name string) bool {
	if len(name) < 2 || name[0] != 'r' {
		return false
	}
	for _, c := range name[1:] {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
