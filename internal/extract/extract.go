package extract

import (
	"context"
	"fmt"
	"os"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// Result holds the identifiers found in one file.
type Result struct {
	Path        string
	Identifiers []core.Identifier // File identifier first, then in source order
	Partial     bool              // Source had syntax errors; extraction is best effort
}

// ExtractFile reads and extracts a single file.
func ExtractFile(ctx context.Context, path string) (*Result, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return ExtractSource(ctx, path, content)
}

// ExtractSource extracts identifiers from in-memory content. The path selects
// the grammar and decides whether the file is a test file.
func ExtractSource(ctx context.Context, path string, content []byte) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(languageFor(path))

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	defer tree.Close()

	// Check context after parsing
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	root := tree.RootNode()
	w := &walker{
		src:    content,
		path:   path,
		isTest: IsTestFile(path),
		jsx:    allowsJSX(path),
	}

	result := &Result{
		Path:    path,
		Partial: root.HasError(),
	}
	if file, ok := w.fileIdentifier(root); ok {
		result.Identifiers = append(result.Identifiers, file)
	}

	cursor := sitter.NewTreeCursor(root)
	defer cursor.Close()
	w.walk(cursor)

	result.Identifiers = append(result.Identifiers, w.idents...)
	return result, nil
}
