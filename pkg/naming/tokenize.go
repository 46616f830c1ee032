package naming

import (
	"strings"
	"unicode"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// units fold into the preceding slot: calculateOrderTaxMs has three slots.
var units = map[string]struct{}{
	"ms": {}, "s": {}, "sec": {}, "px": {}, "em": {}, "rem": {},
	"pct": {}, "kb": {}, "mb": {}, "gb": {},
}

// Tokenize splits a name into lowercase words using the delimiter of its
// casing. camelCase and PascalCase split at case boundaries, keeping acronyms
// together (HTTPServer -> http, server) and digits on the preceding word
// (user2 -> user2).
func Tokenize(name string, casing core.Casing) []string {
	switch casing {
	case core.CasingScreamingSnake:
		return lowerAll(strings.Split(name, "_"))
	case core.CasingKebab:
		return lowerAll(strings.Split(name, "-"))
	case core.CasingFreeText:
		fields := strings.Fields(name)
		for i, f := range fields {
			fields[i] = strings.TrimFunc(f, func(r rune) bool {
				return !unicode.IsLetter(r) && !unicode.IsDigit(r)
			})
		}
		return lowerAll(fields)
	default:
		return lowerAll(splitCase(name))
	}
}

// Words splits a name of unknown casing on any delimiter and on case
// boundaries. It is used to re-case names that failed a casing check.
func Words(name string) []string {
	parts := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var words []string
	for _, p := range parts {
		if isUpperWord(p) {
			words = append(words, p)
			continue
		}
		words = append(words, splitCase(p)...)
	}
	return lowerAll(words)
}

// Join spells words in the given casing.
func Join(words []string, casing core.Casing) string {
	switch casing {
	case core.CasingScreamingSnake:
		return strings.ToUpper(strings.Join(words, "_"))
	case core.CasingKebab:
		return strings.ToLower(strings.Join(words, "-"))
	case core.CasingFreeText:
		return strings.Join(words, " ")
	}

	var b strings.Builder
	for i, w := range words {
		if i == 0 && casing == core.CasingCamel {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(title(w))
	}
	return b.String()
}

// Slots groups tokens into structural slots. Pure-digit tokens and unit
// suffixes join the slot before them; the first token always opens a slot.
func Slots(tokens []string) [][]string {
	var slots [][]string
	for _, tok := range tokens {
		if len(slots) > 0 && foldsIntoPrevious(tok) {
			last := len(slots) - 1
			slots[last] = append(slots[last], tok)
			continue
		}
		slots = append(slots, []string{tok})
	}
	return slots
}

func foldsIntoPrevious(tok string) bool {
	if _, ok := units[tok]; ok {
		return true
	}
	return tok != "" && strings.TrimFunc(tok, unicode.IsDigit) == ""
}

func splitCase(s string) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}

	var words []string
	start := 0
	for i := 1; i < len(runes); i++ {
		prev, cur := runes[i-1], runes[i]
		boundary := false
		switch {
		case unicode.IsLower(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsDigit(prev) && unicode.IsUpper(cur):
			boundary = true
		case unicode.IsUpper(prev) && unicode.IsUpper(cur) && i+1 < len(runes) && unicode.IsLower(runes[i+1]):
			// last capital of an acronym run starts the next word: HTTPServer
			boundary = true
		}
		if boundary {
			words = append(words, string(runes[start:i]))
			start = i
		}
	}
	return append(words, string(runes[start:]))
}

func isUpperWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		out = append(out, strings.ToLower(w))
	}
	return out
}

func title(w string) string {
	runes := []rune(strings.ToLower(w))
	if len(runes) == 0 {
		return ""
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
