package lsp

import (
	"fmt"
	"strings"

	"github.com/leapstack-labs/namelint/pkg/lint"
)

// getHover explains the naming diagnostics under the cursor.
func (s *Server) getHover(params HoverParams) *Hover {
	doc := s.documents.Get(params.TextDocument.URI)
	if doc == nil {
		return nil
	}

	line, col := doc.ByteColumn(params.Position)

	var hits []lint.Diagnostic
	for _, d := range doc.Diagnostics {
		if covers(d, line, col) {
			hits = append(hits, d)
		}
	}
	if len(hits) == 0 {
		return nil
	}

	catalog := s.getEngine().Analyzer().Checker().Catalog()

	var b strings.Builder
	for i, d := range hits {
		if i > 0 {
			b.WriteString("\n---\n\n")
		}
		fmt.Fprintf(&b, "**%s** `%s` (%s)\n\n", d.RuleID, d.Identifier, d.Category)
		b.WriteString(d.Reason + "\n")
		if rule, err := catalog.Rule(d.Category); err == nil {
			if pattern := rule.PatternString(); pattern != "" {
				fmt.Fprintf(&b, "\nExpected: %s `%s`\n", rule.Casing, pattern)
			} else {
				fmt.Fprintf(&b, "\nExpected: %s\n", rule.Casing)
			}
		}
		if d.Suggestion != "" {
			fmt.Fprintf(&b, "\nSuggestion: `%s`\n", d.Suggestion)
		}
		if d.DocumentationURL != "" {
			fmt.Fprintf(&b, "\n[Documentation](%s)\n", d.DocumentationURL)
		}
	}

	r := diagnosticRange(doc, hits[0])
	return &Hover{
		Contents: MarkupContent{Kind: MarkupKindMarkdown, Value: b.String()},
		Range:    &r,
	}
}

// covers reports whether a 1-based line and byte column fall inside the
// identifier span of d.
func covers(d lint.Diagnostic, line, col int) bool {
	if line < d.Pos.Line || (line == d.Pos.Line && col < d.Pos.Column) {
		return false
	}
	endLine, endCol := d.EndPos.Line, d.EndPos.Column
	if endLine == 0 {
		endLine, endCol = d.Pos.Line, d.Pos.Column+len(d.Identifier)
	}
	return line < endLine || (line == endLine && col <= endCol)
}
