package extract

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

var (
	componentBases     = []string{"Component", "PureComponent", "React.Component", "React.PureComponent"}
	componentFactories = []string{"memo", "React.memo", "forwardRef", "React.forwardRef", "styled", "lazy", "React.lazy"}
	mockFactories      = []string{"jest.fn", "vi.fn", "jest.spyOn", "vi.spyOn", "jest.mocked", "vi.mocked", "sinon.stub", "sinon.spy"}
	comparisonOps      = []string{"===", "!==", "==", "!=", "<", ">", "<=", ">=", "instanceof", "in"}
)

// classifyFunction picks the category of a named function from its name and
// body. Functions that render JSX are components unless their name starts
// with a verb (renderUserRow, buildUserCard).
func (w *walker) classifyFunction(name string, body *sitter.Node) core.Category {
	tokens := naming.Words(name)
	switch {
	case hasWordPrefix(name, "use"):
		return core.CategoryHook
	case hasWordPrefix(name, "handle"):
		return core.CategoryEventHandler
	case w.jsx && body != nil && containsJSX(body) && !startsWithVerb(tokens):
		return core.CategoryComponent
	case w.isTest:
		return core.CategoryHelperFunction
	default:
		return core.CategoryFunction
	}
}

func startsWithVerb(tokens []string) bool {
	if len(tokens) == 0 {
		return false
	}
	_, ok := naming.Default().ActionVerbs(core.CategoryHelperFunction)[tokens[0]]
	return ok
}

// hasWordPrefix reports whether name starts with the whole word prefix:
// "useAuth" and "use" match "use", "user" does not.
func hasWordPrefix(name, prefix string) bool {
	if !strings.HasPrefix(name, prefix) {
		return false
	}
	rest := name[len(prefix):]
	if rest == "" {
		return true
	}
	r, _ := utf8.DecodeRuneInString(rest)
	return unicode.IsUpper(r) || unicode.IsDigit(r) || r == '_'
}

func (w *walker) extendsComponent(class *sitter.Node) bool {
	for i := 0; i < int(class.NamedChildCount()); i++ {
		heritage := class.NamedChild(i)
		if heritage.Type() != "class_heritage" {
			continue
		}
		for j := 0; j < int(heritage.NamedChildCount()); j++ {
			clause := heritage.NamedChild(j)
			if clause.Type() != "extends_clause" {
				// javascript grammar: class_heritage holds the expression directly
				if j == 0 && slices.Contains(componentBases, w.text(clause)) {
					return true
				}
				continue
			}
			value := clause.ChildByFieldName("value")
			if value == nil && clause.NamedChildCount() > 0 {
				value = clause.NamedChild(0)
			}
			if value != nil && slices.Contains(componentBases, w.text(value)) {
				return true
			}
		}
	}
	return false
}

// isComponentFactory matches memo(...), forwardRef(...), styled.div`...`.
func (w *walker) isComponentFactory(call *sitter.Node) bool {
	fn := call.ChildByFieldName("function")
	if fn == nil {
		return false
	}
	callee := w.text(fn)
	for _, f := range componentFactories {
		if callee == f || strings.HasPrefix(callee, f+".") || strings.HasPrefix(callee, f+"(") {
			return true
		}
	}
	return false
}

// isMockValue matches jest.fn(), vi.spyOn(...) and chained calls on them.
func (w *walker) isMockValue(value *sitter.Node) bool {
	for value != nil && value.Type() == "call_expression" {
		fn := value.ChildByFieldName("function")
		if fn == nil {
			return false
		}
		if slices.Contains(mockFactories, w.text(fn)) {
			return true
		}
		// jest.fn().mockReturnValue(x): descend into the receiver
		if fn.Type() != "member_expression" {
			return false
		}
		value = fn.ChildByFieldName("object")
	}
	return false
}

func (w *walker) isBooleanTyped(typeNode *sitter.Node) bool {
	if typeNode == nil {
		return false
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(w.text(typeNode)), ":")) == "boolean"
}

// isBooleanExpression matches true/false literals, negations and comparisons.
func isBooleanExpression(value *sitter.Node, src []byte) bool {
	value = unwrapExpression(value)
	if value == nil {
		return false
	}
	switch value.Type() {
	case "true", "false":
		return true
	case "unary_expression":
		op := value.ChildByFieldName("operator")
		return op != nil && op.Content(src) == "!"
	case "binary_expression":
		op := value.ChildByFieldName("operator")
		return op != nil && slices.Contains(comparisonOps, op.Content(src))
	}
	return false
}

// isLiteral matches string, number and template literals.
func isLiteral(value *sitter.Node) bool {
	if value == nil {
		return false
	}
	switch value.Type() {
	case "string", "number", "template_string":
		return true
	case "unary_expression":
		// -1
		arg := value.ChildByFieldName("argument")
		return arg != nil && arg.Type() == "number"
	}
	return false
}

func isCallTo(value *sitter.Node, src []byte, names ...string) bool {
	if value == nil || value.Type() != "call_expression" {
		return false
	}
	fn := value.ChildByFieldName("function")
	if fn == nil {
		return false
	}
	return slices.Contains(names, fn.Content(src))
}

func firstArgument(call *sitter.Node) *sitter.Node {
	if call == nil {
		return nil
	}
	args := call.ChildByFieldName("arguments")
	if args == nil || args.NamedChildCount() == 0 {
		return nil
	}
	return args.NamedChild(0)
}

// unwrapExpression strips parentheses and TypeScript assertions:
// (x), x as const, x satisfies T, x!.
func unwrapExpression(node *sitter.Node) *sitter.Node {
	for node != nil {
		switch node.Type() {
		case "parenthesized_expression", "as_expression", "satisfies_expression", "non_null_expression":
			if node.NamedChildCount() == 0 {
				return node
			}
			node = node.NamedChild(0)
		default:
			return node
		}
	}
	return nil
}

// containsJSX reports whether any descendant is a JSX node.
func containsJSX(node *sitter.Node) bool {
	if strings.HasPrefix(node.Type(), "jsx_") {
		return true
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if containsJSX(node.NamedChild(i)) {
			return true
		}
	}
	return false
}
