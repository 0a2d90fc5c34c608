package instrument

import (
	"bytes"
	"go/ast"
	"go/format"
	"go/token"
	"text/template"
)

// injectMain makes func main of package main initialize libsee first and
// print the report when it returns:
//
//	func main() {
//		see.Init()
//		defer see.Fini()
//		...
//	}
//
// Files that already start main this way are left alone, so instrumenting
// twice gives the same result.
func (r *rewriter) injectMain() {
	if r.file.Name.Name != "main" {
		return
	}
	fn := findFunc(r.file, "main")
	if fn == nil || fn.Body == nil {
		return
	}
	if r.hasPrologue(fn.Body) {
		return
	}

	pos := fn.Body.Lbrace
	initStmt := &ast.ExprStmt{X: &ast.CallExpr{
		Fun:    r.seeSelector("Init", pos),
		Lparen: pos,
		Rparen: pos,
	}}
	deferStmt := &ast.DeferStmt{
		Defer: pos,
		Call: &ast.CallExpr{
			Fun:    r.seeSelector("Fini", pos),
			Lparen: pos,
			Rparen: pos,
		},
	}
	fn.Body.List = append([]ast.Stmt{initStmt, deferStmt}, fn.Body.List...)

	r.stats.MainInjected = true
	r.seeUsed = true
}

func (r *rewriter) seeSelector(name string, pos token.Pos) *ast.SelectorExpr {
	return &ast.SelectorExpr{
		X:   &ast.Ident{NamePos: pos, Name: r.alias},
		Sel: &ast.Ident{NamePos: pos, Name: name},
	}
}

// hasPrologue reports whether body already begins with see.Init() followed
// by defer see.Fini().
func (r *rewriter) hasPrologue(body *ast.BlockStmt) bool {
	if !r.hasSee || len(body.List) < 2 {
		return false
	}
	first, ok := body.List[0].(*ast.ExprStmt)
	if !ok {
		return false
	}
	call, ok := first.X.(*ast.CallExpr)
	if !ok || !r.isSeeCall(call, "Init") {
		return false
	}
	second, ok := body.List[1].(*ast.DeferStmt)
	return ok && r.isSeeCall(second.Call, "Fini")
}

func (r *rewriter) isSeeCall(call *ast.CallExpr, name string) bool {
	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok || sel.Sel.Name != name {
		return false
	}
	id, ok := sel.X.(*ast.Ident)
	return ok && id.Name == r.alias
}

// findFunc returns the top-level function (not method) with the given name.
func findFunc(file *ast.File, name string) *ast.FuncDecl {
	for _, decl := range file.Decls {
		if fn, ok := decl.(*ast.FuncDecl); ok && fn.Recv == nil && fn.Name.Name == name {
			return fn
		}
	}
	return nil
}

// HasTestMain reports whether file declares func TestMain.
func HasTestMain(file *ast.File) bool {
	return findFunc(file, "TestMain") != nil
}

// TestMainFileName is the name of the file GenerateTestMain output is
// written to.
const TestMainFileName = "libsee_main_test.go"

var testMainTemplate = template.Must(template.New("testmain").Parse(`// Code generated by libsee. DO NOT EDIT.

package {{.Package}}

import (
	"testing"

	{{.Alias}} "{{.Import}}"
)

func TestMain(m *testing.M) {
	{{.Alias}}.Init()
	{{.Alias}}.Exit(m.Run())
}
`))

// GenerateTestMain returns a TestMain for a test package that has none, so
// that the report covers the whole test binary. Exit runs the report
// before the process ends, which a deferred Fini would not do once
// m.Run's status is passed to os.Exit.
func GenerateTestMain(pkg string) ([]byte, error) {
	var buf bytes.Buffer
	err := testMainTemplate.Execute(&buf, struct {
		Package string
		Alias   string
		Import  string
	}{pkg, SeePackageAlias, SeePackageImportPath})
	if err != nil {
		return nil, err
	}
	return format.Source(buf.Bytes())
}
