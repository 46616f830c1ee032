package extract

import (
	"slices"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// React class lifecycle methods keep their framework names.
var lifecycleMethods = []string{
	"constructor", "render", "componentDidMount", "componentDidUpdate",
	"componentWillUnmount", "shouldComponentUpdate", "getSnapshotBeforeUpdate",
	"componentDidCatch", "getDerivedStateFromProps", "getDerivedStateFromError",
	"toString", "toJSON",
}

var testCallees = []string{"it", "test", "it.only", "it.skip", "test.only", "test.skip", "it.todo", "test.todo"}

// walker collects identifiers while walking the syntax tree.
type walker struct {
	src    []byte
	path   string
	isTest bool
	jsx    bool
	idents []core.Identifier
}

// walk recursively walks the AST and extracts identifiers
func (w *walker) walk(cursor *sitter.TreeCursor) {
	node := cursor.CurrentNode()

	switch node.Type() {
	case "function_declaration", "generator_function_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			w.add(name, w.classifyFunction(w.text(name), node.ChildByFieldName("body")), false)
		}

	case "lexical_declaration", "variable_declaration":
		w.declaration(node)

	case "class_declaration", "abstract_class_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			cat := core.CategoryTypeOrInterface
			if w.extendsComponent(node) {
				cat = core.CategoryComponent
			}
			w.add(name, cat, false)
		}

	case "method_definition":
		w.method(node)

	case "interface_declaration", "type_alias_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			w.add(name, core.CategoryTypeOrInterface, false)
		}

	case "enum_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			w.add(name, core.CategoryEnum, false)
		}
		w.enumMembers(node.ChildByFieldName("body"))

	case "call_expression":
		w.testCase(node)
	}

	// Recursively process children
	if cursor.GoToFirstChild() {
		for {
			w.walk(cursor)
			if !cursor.GoToNextSibling() {
				break
			}
		}
		cursor.GoToParent()
	}
}

// declaration handles const/let/var statements.
func (w *walker) declaration(node *sitter.Node) {
	isConst := false
	for i := 0; i < int(node.ChildCount()); i++ {
		if node.Child(i).Type() == "const" {
			isConst = true
			break
		}
	}
	moduleScope := isModuleScope(node)

	for i := 0; i < int(node.NamedChildCount()); i++ {
		decl := node.NamedChild(i)
		if decl.Type() != "variable_declarator" {
			continue
		}
		w.declarator(decl, isConst && moduleScope)
	}
}

func (w *walker) declarator(decl *sitter.Node, moduleConst bool) {
	nameNode := decl.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	value := unwrapExpression(decl.ChildByFieldName("value"))

	switch nameNode.Type() {
	case "identifier":
	case "array_pattern":
		w.arrayPattern(nameNode, value)
		return
	default:
		// object destructuring: names are dictated by the source object
		return
	}

	name := w.text(nameNode)
	typeNode := decl.ChildByFieldName("type")

	if value != nil {
		switch value.Type() {
		case "arrow_function", "function_expression", "function", "generator_function":
			w.add(nameNode, w.classifyFunction(name, value.ChildByFieldName("body")), false)
			return
		case "call_expression":
			if startsUpper(name) && w.isComponentFactory(value) {
				w.add(nameNode, core.CategoryComponent, false)
				return
			}
		}
	}

	if w.isTest && (w.isMockValue(value) || hasWordPrefix(name, "mock")) {
		w.add(nameNode, core.CategoryMockObject, false)
		return
	}

	if w.isBooleanTyped(typeNode) || isBooleanExpression(value, w.src) {
		w.add(nameNode, core.CategoryBooleanVariable, true)
		return
	}

	if moduleConst && isLiteral(value) {
		w.add(nameNode, core.CategoryConstant, false)
		return
	}

	w.add(nameNode, core.CategoryVariable, false)
}

// arrayPattern handles [value, setValue] = useState(initial) and plain
// array destructuring.
func (w *walker) arrayPattern(pattern, value *sitter.Node) {
	var elems []*sitter.Node
	for i := 0; i < int(pattern.NamedChildCount()); i++ {
		elem := pattern.NamedChild(i)
		if elem.Type() == "assignment_pattern" {
			elem = elem.ChildByFieldName("left")
		}
		if elem != nil && elem.Type() == "identifier" {
			elems = append(elems, elem)
		} else {
			elems = append(elems, nil)
		}
	}

	if isCallTo(value, w.src, "useState", "React.useState") {
		initial := firstArgument(value)
		if len(elems) > 0 && elems[0] != nil {
			if isBooleanExpression(initial, w.src) {
				w.add(elems[0], core.CategoryBooleanVariable, true)
			} else {
				w.add(elems[0], core.CategoryVariable, false)
			}
		}
		if len(elems) > 1 && elems[1] != nil {
			// setX follows the state variable x
			w.add(elems[1], core.CategoryFunction, false)
			w.idents[len(w.idents)-1].Derived = true
		}
		return
	}

	for _, elem := range elems {
		if elem != nil {
			w.add(elem, core.CategoryVariable, false)
		}
	}
}

func (w *walker) method(node *sitter.Node) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil || nameNode.Type() == "computed_property_name" {
		return
	}
	name := strings.TrimPrefix(w.text(nameNode), "#")
	if slices.Contains(lifecycleMethods, name) {
		return
	}
	w.add(nameNode, w.classifyFunction(name, node.ChildByFieldName("body")), false)
}

func (w *walker) enumMembers(body *sitter.Node) {
	if body == nil {
		return
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		if member.Type() == "enum_assignment" {
			member = member.ChildByFieldName("name")
		}
		if member != nil && member.Type() == "property_identifier" {
			w.add(member, core.CategoryEnumMember, false)
		}
	}
}

// testCase records it('...')/test('...') descriptions.
func (w *walker) testCase(call *sitter.Node) {
	fn := call.ChildByFieldName("function")
	if fn == nil || !slices.Contains(testCallees, w.text(fn)) {
		return
	}
	arg := firstArgument(call)
	if arg == nil {
		return
	}
	var desc string
	switch arg.Type() {
	case "string":
		desc = unquote(w.text(arg))
	case "template_string":
		// descriptions with substitutions are generated, not written
		for i := 0; i < int(arg.NamedChildCount()); i++ {
			if arg.NamedChild(i).Type() == "template_substitution" {
				return
			}
		}
		desc = unquote(w.text(arg))
	default:
		return
	}
	w.addText(arg, desc, core.CategoryTestCase)
}

// unquote drops the delimiters of a string or template literal.
func unquote(lit string) string {
	if len(lit) < 2 {
		return lit
	}
	return lit[1 : len(lit)-1]
}

func (w *walker) add(node *sitter.Node, cat core.Category, isBoolean bool) {
	w.idents = append(w.idents, w.identifier(node, strings.TrimPrefix(w.text(node), "#"), cat, isBoolean))
}

func (w *walker) addText(node *sitter.Node, name string, cat core.Category) {
	w.idents = append(w.idents, w.identifier(node, name, cat, false))
}

func (w *walker) identifier(node *sitter.Node, name string, cat core.Category, isBoolean bool) core.Identifier {
	start, end := node.StartPoint(), node.EndPoint()
	return core.Identifier{
		Name:      name,
		Category:  cat,
		IsBoolean: isBoolean,
		Path:      w.path,
		Line:      int(start.Row) + 1,
		Column:    int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndColumn: int(end.Column) + 1,
	}
}

func (w *walker) text(node *sitter.Node) string {
	return node.Content(w.src)
}

// isModuleScope reports whether a declaration sits at the top of the file,
// optionally behind an export.
func isModuleScope(node *sitter.Node) bool {
	parent := node.Parent()
	if parent != nil && parent.Type() == "export_statement" {
		parent = parent.Parent()
	}
	return parent != nil && parent.Type() == "program"
}
