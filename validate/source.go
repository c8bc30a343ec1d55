package validate

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strings"
	"unicode/utf8"

	"reprocheck/config"
	"reprocheck/types"
)

// validateSource checks a source-code artifact: the file must be non-empty
// and parse cleanly. On success the declared functions, types, and imports
// are recorded as metadata, along with any recognized scientific libraries.
func (v *Validator) validateSource(path string, report *types.ValidationReport) {
	content, err := os.ReadFile(path)
	if err != nil {
		report.AddError(fmt.Sprintf("File unreadable: %v", err))
		return
	}
	if !utf8.Valid(content) {
		report.AddError("Encoding error - use UTF-8")
		return
	}

	src := string(content)
	if strings.TrimSpace(src) == "" {
		report.AddError("Empty source file")
		return
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, 0)
	if err != nil {
		report.AddError(fmt.Sprintf("Syntax error: %v", err))
		return
	}

	var functions, typeNames, imports []string
	hasMain := false

	for _, decl := range file.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			functions = append(functions, d.Name.Name)
			if d.Name.Name == "main" && d.Recv == nil {
				hasMain = true
			}
		case *ast.GenDecl:
			if d.Tok != token.TYPE {
				continue
			}
			for _, spec := range d.Specs {
				if ts, ok := spec.(*ast.TypeSpec); ok {
					typeNames = append(typeNames, ts.Name.Name)
				}
			}
		}
	}
	for _, imp := range file.Imports {
		imports = append(imports, strings.Trim(imp.Path.Value, `"`))
	}

	var scientific []string
	for _, keyword := range config.ScientificImports {
		for _, imp := range imports {
			if strings.Contains(imp, keyword) {
				scientific = append(scientific, keyword)
				break
			}
		}
	}

	if len(functions) == 0 && len(typeNames) == 0 {
		report.AddWarning("No functions or types defined")
	}
	if !hasMain {
		report.AddWarning("No main function detected")
	}

	report.Metadata["package"] = file.Name.Name
	report.Metadata["functions"] = functions
	report.Metadata["types"] = typeNames
	report.Metadata["imports"] = imports
	report.Metadata["scientific_libraries"] = scientific
	report.Metadata["line_count"] = strings.Count(src, "\n") + 1
}
