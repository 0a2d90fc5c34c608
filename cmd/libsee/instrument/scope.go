package instrument

import (
	"go/ast"
	"go/parser"
	"go/token"
)

// PackageScope returns the names declared at package level by the given
// files: functions, variables, constants and types. Methods are left out,
// they live in their receiver's scope. Pass the result as Options.Reserved
// when instrumenting each file of the package.
//
// Files are parsed without bodies and may belong to an external _test
// package; extra names only make the alias choice more conservative.
func PackageScope(filenames []string) (map[string]bool, error) {
	names := make(map[string]bool)
	fset := token.NewFileSet()
	for _, filename := range filenames {
		file, err := parser.ParseFile(fset, filename, nil, parser.SkipObjectResolution)
		if err != nil {
			return nil, syntaxError(filename, err)
		}
		addDecls(names, file)
	}
	return names, nil
}

func addDecls(names map[string]bool, file *ast.File) {
	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv == nil {
				names[d.Name.Name] = true
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names[n.Name] = true
					}
				case *ast.TypeSpec:
					names[s.Name.Name] = true
				}
			}
		}
	}
}
