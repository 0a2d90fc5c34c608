package instrument

import (
	"fmt"
	"go/ast"
	"go/token"
	"path"
	"strconv"

	"golang.org/x/tools/go/ast/astutil"

	"github.com/kolkov/libsee/internal/see/slots"
)

// importInfo is one import of an intercepted package (or os).
type importInfo struct {
	path     string // import path
	specName string // explicit name in the import spec, "" if none
	used     bool   // at least one selector through this name was rewritten
}

// rewriter carries the per-file state of one instrumentation pass.
type rewriter struct {
	fset *token.FileSet
	file *ast.File

	imports map[string]*importInfo // local package name -> import
	alias   string                 // local name of the see package
	hasSee  bool                   // file already imports the see package
	seeUsed bool                   // the see package is referenced after the pass

	stats InstrumentStats
}

// intercepted reports whether calls into the package at path can be rewritten.
func intercepted(importPath string) bool {
	if importPath == "os" {
		return true
	}
	for _, p := range slots.Imports() {
		if p == importPath {
			return true
		}
	}
	return false
}

func newRewriter(fset *token.FileSet, file *ast.File, reserved map[string]bool) *rewriter {
	r := &rewriter{
		fset:    fset,
		file:    file,
		imports: make(map[string]*importInfo),
	}

	for _, spec := range file.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		if p == SeePackageImportPath {
			r.hasSee = true
			r.alias = SeePackageAlias
			if spec.Name != nil && spec.Name.Name != "_" && spec.Name.Name != "." {
				r.alias = spec.Name.Name
			}
			continue
		}
		if !intercepted(p) {
			continue
		}

		name := path.Base(p)
		specName := ""
		if spec.Name != nil {
			specName = spec.Name.Name
			name = specName
		}
		switch name {
		case "_":
			continue
		case ".":
			r.stats.Warnings = append(r.stats.Warnings, NewInstrumentationErrorWithSuggestion(
				fset, spec.Pos(),
				fmt.Sprintf("dot import of %q hides intercepted calls", p),
				fmt.Sprintf("Import %q by name so that calls can be rewritten", p)))
			continue
		}
		r.imports[name] = &importInfo{path: p, specName: specName}
	}

	if !r.hasSee {
		r.alias = freeName(file, reserved, SeePackageAlias, fallbackAlias)
	}
	return r
}

// freeName returns the first candidate that is neither used as an
// identifier anywhere in file nor reserved, appending a number to the last
// candidate if needed.
func freeName(file *ast.File, reserved map[string]bool, candidates ...string) string {
	taken := make(map[string]bool, len(reserved))
	for name := range reserved {
		taken[name] = true
	}
	ast.Inspect(file, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			taken[id.Name] = true
		}
		return true
	})
	for _, c := range candidates {
		if !taken[c] {
			return c
		}
	}
	last := candidates[len(candidates)-1]
	for i := 2; ; i++ {
		c := last + strconv.Itoa(i)
		if !taken[c] {
			return c
		}
	}
}

// rewriteCalls redirects every call of an intercepted function to its
// wrapper. The selector is modified in place so positions, and with them
// comments, stay where they were.
func (r *rewriter) rewriteCalls() {
	if len(r.imports) == 0 {
		return
	}
	astutil.Apply(r.file, func(c *astutil.Cursor) bool {
		sel, ok := c.Node().(*ast.SelectorExpr)
		if !ok {
			return true
		}
		id, ok := sel.X.(*ast.Ident)
		if !ok {
			return true
		}
		imp, ok := r.imports[id.Name]
		if !ok {
			return true
		}

		wrapper, isExit := target(imp.path, sel.Sel.Name)
		if wrapper == "" {
			return true
		}
		if id.Obj != nil {
			// A local declaration shadows the package name.
			r.stats.ShadowedSkipped++
			return true
		}
		if call, ok := c.Parent().(*ast.CallExpr); !ok || c.Name() != "Fun" || call.Fun != sel {
			r.stats.ValuesSkipped++
			return true
		}

		if isExit {
			r.stats.ExitsRewritten++
		} else {
			s, _ := slots.ByImport(imp.path, sel.Sel.Name)
			r.stats.Calls[s]++
		}
		sel.X = &ast.Ident{NamePos: id.NamePos, Name: r.alias}
		sel.Sel = &ast.Ident{NamePos: sel.Sel.NamePos, Name: wrapper}
		imp.used = true
		r.seeUsed = true
		return false
	}, nil)
}

// target returns the name of the see function that replaces pkg.fn, or ""
// if the function is not intercepted.
func target(importPath, fn string) (wrapper string, isExit bool) {
	if importPath == "os" && fn == "Exit" {
		return "Exit", true
	}
	if s, ok := slots.ByImport(importPath, fn); ok {
		return s.Info().Wrapper, false
	}
	return "", false
}

// fixImports adds the see import when something references it and removes
// the imports whose last use was rewritten.
func (r *rewriter) fixImports() {
	if r.seeUsed && !r.hasSee {
		name := ""
		if r.alias != SeePackageAlias {
			name = r.alias
		}
		astutil.AddNamedImport(r.fset, r.file, name, SeePackageImportPath)
		r.hasSee = true
	}

	for name, imp := range r.imports {
		if !imp.used || usesName(r.file, name) {
			continue
		}
		astutil.DeleteNamedImport(r.fset, r.file, imp.specName, imp.path)
	}
}

// usesName reports whether any selector in file is qualified by the
// unresolved identifier name, that is by an imported package name.
func usesName(file *ast.File, name string) bool {
	used := false
	ast.Inspect(file, func(n ast.Node) bool {
		if used {
			return false
		}
		if sel, ok := n.(*ast.SelectorExpr); ok {
			if id, ok := sel.X.(*ast.Ident); ok && id.Name == name && id.Obj == nil {
				used = true
			}
		}
		return true
	})
	return used
}
