package core

import (
	"regexp"
	"strings"
)

// Casing is a case convention an identifier must follow.
type Casing string

// Case conventions.
const (
	CasingCamel          Casing = "camelCase"
	CasingPascal         Casing = "PascalCase"
	CasingScreamingSnake Casing = "SCREAMING_SNAKE_CASE"
	CasingKebab          Casing = "kebab-case"
	CasingFreeText       Casing = "freeText"
)

var casingPatterns = map[Casing]*regexp.Regexp{
	CasingPascal:         regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`),
	CasingCamel:          regexp.MustCompile(`^[a-z][A-Za-z0-9]*$`),
	CasingScreamingSnake: regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`),
	CasingKebab:          regexp.MustCompile(`^[a-z][a-z0-9-]*$`),
}

// Matches reports whether s follows the convention.
// Free text matches any non-blank string.
func (c Casing) Matches(s string) bool {
	if c == CasingFreeText {
		return strings.TrimSpace(s) != ""
	}
	re, ok := casingPatterns[c]
	if !ok {
		return false
	}
	return re.MatchString(s)
}

// Pattern returns the regular expression source for the convention,
// or an empty string for free text.
func (c Casing) Pattern() string {
	if re, ok := casingPatterns[c]; ok {
		return re.String()
	}
	return ""
}

// String returns the convention name.
func (c Casing) String() string {
	return string(c)
}
