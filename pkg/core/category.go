package core

import (
	"fmt"
	"strings"
)

// Category is the syntactic role of an identifier. It is assigned by the
// extractor (or the caller) and selects which naming rule applies.
type Category string

// Identifier categories.
const (
	CategoryVariable        Category = "variable"
	CategoryBooleanVariable Category = "booleanVariable"
	CategoryFunction        Category = "function"
	CategoryEventHandler    Category = "eventHandler"
	CategoryHook            Category = "hook"
	CategoryComponent       Category = "component"
	CategoryTypeOrInterface Category = "typeOrInterface"
	CategoryConstant        Category = "constant"
	CategoryEnum            Category = "enum"
	CategoryEnumMember      Category = "enumMember"
	CategoryModuleFile      Category = "moduleFile"
	CategoryTestFile        Category = "testFile"
	CategoryTestCase        Category = "testCase"
	CategoryMockObject      Category = "mockObject"
	CategoryHelperFunction  Category = "helperFunction"
)

// Categories returns every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryVariable,
		CategoryBooleanVariable,
		CategoryFunction,
		CategoryEventHandler,
		CategoryHook,
		CategoryComponent,
		CategoryTypeOrInterface,
		CategoryConstant,
		CategoryEnum,
		CategoryEnumMember,
		CategoryModuleFile,
		CategoryTestFile,
		CategoryTestCase,
		CategoryMockObject,
		CategoryHelperFunction,
	}
}

// IdentifierCategories returns the categories that name code symbols,
// as opposed to files and test descriptions.
func IdentifierCategories() []Category {
	return []Category{
		CategoryVariable,
		CategoryBooleanVariable,
		CategoryFunction,
		CategoryEventHandler,
		CategoryHook,
		CategoryComponent,
		CategoryTypeOrInterface,
		CategoryConstant,
		CategoryEnum,
		CategoryEnumMember,
		CategoryMockObject,
		CategoryHelperFunction,
	}
}

// FileCategories returns the categories used for file names.
func FileCategories() []Category {
	return []Category{CategoryModuleFile, CategoryTestFile}
}

// String returns the category name.
func (c Category) String() string {
	return string(c)
}

// IsFile reports whether the category names a file.
func (c Category) IsFile() bool {
	return c == CategoryModuleFile || c == CategoryTestFile
}

// UnmarshalText parses a category name case-insensitively.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, ok := ParseCategory(string(text))
	if !ok {
		return fmt.Errorf("unknown category %q", string(text))
	}
	*c = parsed
	return nil
}

// ParseCategory converts a string to a Category. Matching ignores case and
// accepts kebab/snake spellings ("event-handler", "boolean_variable").
func ParseCategory(s string) (Category, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "", " ", "").Replace(strings.TrimSpace(s)))
	for _, c := range Categories() {
		if strings.ToLower(string(c)) == key {
			return c, true
		}
	}
	switch key {
	case "boolean", "bool":
		return CategoryBooleanVariable, true
	case "type", "interface":
		return CategoryTypeOrInterface, true
	case "handler":
		return CategoryEventHandler, true
	case "file":
		return CategoryModuleFile, true
	case "test":
		return CategoryTestCase, true
	case "mock":
		return CategoryMockObject, true
	case "helper":
		return CategoryHelperFunction, true
	}
	return "", false
}
