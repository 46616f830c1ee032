package extract

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// fileIdentifier describes the file itself. Route files whose names are
// fixed by a framework are skipped.
func (w *walker) fileIdentifier(root *sitter.Node) (core.Identifier, bool) {
	stem := FileStem(w.path)
	if routeStem(stem) {
		return core.Identifier{}, false
	}

	cat := core.CategoryModuleFile
	switch {
	case w.isTest:
		cat = core.CategoryTestFile
	case w.jsx && startsUpper(stem):
		cat = core.CategoryComponent
	}

	facts := w.fileFacts(root)
	facts.IsTest = w.isTest

	return core.Identifier{
		Name:      stem,
		Category:  cat,
		Path:      w.path,
		Line:      1,
		Column:    1,
		EndLine:   1,
		EndColumn: len(stem) + 1,
		File:      facts,
	}, true
}

// fileFacts classifies the top-level declarations of a module.
func (w *walker) fileFacts(root *sitter.Node) core.FileFacts {
	var facts core.FileFacts
	types, constants := 0, 0

	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		exported := false
		if stmt.Type() == "export_statement" {
			exported = true
			decl := stmt.ChildByFieldName("declaration")
			if decl == nil {
				// export { a, b } / export default expr
				continue
			}
			stmt = decl
		}

		switch stmt.Type() {
		case "interface_declaration", "type_alias_declaration", "enum_declaration":
			facts.Declarations++
			types++
		case "class_declaration", "abstract_class_declaration", "function_declaration", "generator_function_declaration":
			facts.Declarations++
			if exported && w.isServiceName(stmt.ChildByFieldName("name")) {
				facts.ServiceExport = true
			}
		case "lexical_declaration", "variable_declaration":
			for j := 0; j < int(stmt.NamedChildCount()); j++ {
				decl := stmt.NamedChild(j)
				if decl.Type() != "variable_declarator" {
					continue
				}
				facts.Declarations++
				if isLiteral(unwrapExpression(decl.ChildByFieldName("value"))) {
					constants++
				}
				if exported && w.isServiceName(decl.ChildByFieldName("name")) {
					facts.ServiceExport = true
				}
			}
		}
	}

	facts.OnlyTypes = facts.Declarations > 0 && types == facts.Declarations
	facts.OnlyConstants = facts.Declarations > 0 && constants == facts.Declarations
	return facts
}

func (w *walker) isServiceName(name *sitter.Node) bool {
	return name != nil && strings.HasSuffix(w.text(name), "Service")
}
