package extract

import (
	"path/filepath"
	"strings"
	"unicode"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
)

// SkipDirs are directory names never descended into.
var SkipDirs = []string{"node_modules", "dist", "build", "coverage", ".next"}

// IsTargetFile returns true if the file is a TypeScript/JavaScript source
// file. Declaration files (.d.ts) are excluded.
func IsTargetFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	if strings.HasSuffix(base, ".d.ts") {
		return false
	}
	switch filepath.Ext(base) {
	case ".ts", ".tsx", ".js", ".jsx", ".mts", ".cts", ".mjs", ".cjs":
		return true
	}
	return false
}

// IsTestFile reports whether path is a test file: *.test.*, *.spec.* or any
// file below a __tests__ directory.
func IsTestFile(path string) bool {
	base := filepath.Base(path)
	if strings.Contains(base, ".test.") || strings.Contains(base, ".spec.") {
		return true
	}
	for _, part := range strings.Split(filepath.ToSlash(filepath.Dir(path)), "/") {
		if part == "__tests__" {
			return true
		}
	}
	return false
}

// FileStem returns the base name up to its first dot:
// "user-profile" for "src/user-profile.types.ts".
func FileStem(path string) string {
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		return base[:i]
	}
	return base
}

// routeStem reports framework file names that are dictated by routing
// conventions ([id].tsx, _app.tsx, +page.ts) rather than chosen.
func routeStem(stem string) bool {
	return stem == "" || strings.ContainsAny(stem[:1], "[_+(@$")
}

func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx":
		return tsx.GetLanguage()
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	default:
		return javascript.GetLanguage()
	}
}

func allowsJSX(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsx", ".jsx", ".js", ".mjs", ".cjs":
		return true
	}
	return false
}

func startsUpper(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return unicode.IsUpper(r)
}
