package naming

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/namelint/pkg/core"
	"golang.org/x/text/unicode/norm"
)

// loopCounters are the single-letter variable names that are allowed.
var loopCounters = []string{"i", "j", "k"}

// Checker validates identifiers against a catalog. It holds no mutable state.
type Checker struct {
	catalog *Catalog
}

// NewChecker creates a checker. A nil catalog uses Default().
func NewChecker(catalog *Catalog) *Checker {
	if catalog == nil {
		catalog = Default()
	}
	return &Checker{catalog: catalog}
}

// Catalog returns the catalog the checker reads from.
func (c *Checker) Catalog() *Catalog {
	return c.catalog
}

// Report holds the outcome of every check step for one identifier.
// A nil field means the step passed or did not apply.
type Report struct {
	Identifier    string
	Category      core.Category
	Tokens        []string
	Unknown       *Violation
	Casing        *Violation
	Forbidden     *Violation
	BooleanPrefix *Violation
	Structure     *Violation
}

// First returns the first violation in check order, or nil.
func (r Report) First() *Violation {
	if vs := r.Violations(); len(vs) > 0 {
		return vs[0]
	}
	return nil
}

// Violations returns all violations in check order.
func (r Report) Violations() []*Violation {
	var out []*Violation
	for _, v := range []*Violation{r.Unknown, r.Casing, r.Forbidden, r.BooleanPrefix, r.Structure} {
		if v != nil {
			out = append(out, v)
		}
	}
	return out
}

// OK reports whether every step passed.
func (r Report) OK() bool {
	return r.First() == nil
}

// Check validates name and returns the first violation, or nil on success.
func (c *Checker) Check(name string, category core.Category, isBoolean bool) *Violation {
	return c.Evaluate(name, category, isBoolean).First()
}

// Evaluate runs every check step and keeps each outcome. An unknown category
// or a casing failure stops evaluation; the other steps are independent.
func (c *Checker) Evaluate(name string, category core.Category, isBoolean bool) Report {
	name = norm.NFC.String(name)
	report := Report{Identifier: name, Category: category}

	rule, err := c.catalog.Rule(category)
	if err != nil {
		report.Unknown = &Violation{
			Identifier: name,
			Category:   category,
			Kind:       KindUnknownCategory,
			Reason:     fmt.Sprintf("no naming rule registered for category %q", string(category)),
		}
		return report
	}

	if v := c.checkCasing(name, rule); v != nil {
		report.Casing = v
		return report
	}

	tokens := Tokenize(name, rule.Casing)
	report.Tokens = tokens

	if rule.Casing != core.CasingFreeText {
		report.Forbidden = c.checkForbidden(name, rule, tokens)
	}
	if isBoolean || category == core.CategoryBooleanVariable {
		report.BooleanPrefix = c.checkBooleanPrefix(name, rule, tokens)
	}
	if rule.Enforced {
		if category == core.CategoryTestCase {
			report.Structure = c.checkTestDescription(name, rule, tokens)
		} else {
			report.Structure = c.checkStructure(name, rule, tokens)
		}
	}
	return report
}

func (c *Checker) checkCasing(name string, rule NamingRule) *Violation {
	if rule.Casing.Matches(name) {
		return nil
	}
	v := &Violation{
		Identifier: name,
		Category:   rule.Category,
		Kind:       KindCasing,
		Reason:     fmt.Sprintf("expected %s", rule.Casing),
	}
	if strings.TrimSpace(name) == "" {
		v.Reason = "empty name"
		return v
	}
	if s := Join(Words(name), rule.Casing); s != name && rule.Casing.Matches(s) {
		v.Suggestion = s
	}
	return v
}

func (c *Checker) checkForbidden(name string, rule NamingRule, tokens []string) *Violation {
	isVariable := rule.Category == core.CategoryVariable || rule.Category == core.CategoryBooleanVariable
	if isVariable && len([]rune(name)) == 1 && !slices.Contains(loopCounters, name) {
		return &Violation{
			Identifier: name,
			Category:   rule.Category,
			Kind:       KindForbiddenToken,
			Tokens:     []string{strings.ToLower(name)},
			Reason:     "single-letter names are only allowed for loop counters (i, j, k)",
		}
	}

	var bad []string
	for _, tok := range tokens {
		if c.catalog.IsForbidden(tok) && !slices.Contains(bad, tok) {
			bad = append(bad, tok)
		}
	}
	if len(bad) == 0 {
		return nil
	}

	v := &Violation{
		Identifier: name,
		Category:   rule.Category,
		Kind:       KindForbiddenToken,
		Tokens:     bad,
	}
	var kinds []string
	for _, tok := range bad {
		if _, ok := c.catalog.Expansion(tok); ok {
			kinds = append(kinds, fmt.Sprintf("abbreviation %q", tok))
		} else {
			kinds = append(kinds, fmt.Sprintf("noise word %q", tok))
		}
	}
	v.Reason = "contains " + strings.Join(kinds, ", ")

	expanded := make([]string, len(tokens))
	complete := true
	for i, tok := range tokens {
		expanded[i] = tok
		if !c.catalog.IsForbidden(tok) {
			continue
		}
		if full, ok := c.catalog.Expansion(tok); ok {
			expanded[i] = full
		} else {
			complete = false
		}
	}
	if complete {
		v.Suggestion = Join(expanded, rule.Casing)
	}
	return v
}

func (c *Checker) checkBooleanPrefix(name string, rule NamingRule, tokens []string) *Violation {
	if len(tokens) > 0 && c.catalog.isPrefix(tokens[0]) {
		return nil
	}
	return &Violation{
		Identifier: name,
		Category:   rule.Category,
		Kind:       KindMissingBooleanPrefix,
		Slot:       SlotPrefix,
		Reason:     fmt.Sprintf("boolean names start with one of %s", strings.Join(c.catalog.prefixes, ", ")),
		Suggestion: Join(append([]string{"is"}, tokens...), rule.Casing),
	}
}

// checkStructure validates a [head, context..., tail] pattern. The head is a
// literal or Action slot, the tail an Event slot. When context slots are
// short the leading ones are reported missing, so getProfile misses
// HighContext rather than LowContext.
func (c *Checker) checkStructure(name string, rule NamingRule, tokens []string) *Violation {
	slots := Slots(tokens)
	pattern := rule.Pattern

	var head, tail *Slot
	middle := pattern
	if len(middle) > 0 && (middle[0].Literal != "" || middle[0].Name == SlotAction) {
		head = &middle[0]
		middle = middle[1:]
	}
	if len(middle) > 0 && middle[len(middle)-1].Name == SlotEvent {
		tail = &middle[len(middle)-1]
		middle = middle[:len(middle)-1]
	}

	missing := func(s Slot, reason string) *Violation {
		return &Violation{
			Identifier: name,
			Category:   rule.Category,
			Kind:       KindMissingStructureSlot,
			Slot:       s.Name,
			Reason:     reason,
		}
	}

	if head != nil {
		first := slots[0][0]
		switch {
		case head.Literal != "" && first != head.Literal:
			v := missing(*head, fmt.Sprintf("must start with %q", head.Literal))
			v.Suggestion = Join(append([]string{head.Literal}, tokens...), rule.Casing)
			return v
		case head.Literal == "" && !c.catalog.isVerb(rule.Category, first):
			return missing(*head, fmt.Sprintf("%q is not an action verb (e.g. %s)", first, strings.Join(sampleVerbs, ", ")))
		}
	}

	consumed := 0
	if head != nil {
		consumed++
	}
	if tail != nil && len(slots) > consumed {
		last := strings.TrimRightFunc(slots[len(slots)-1][0], isDigit)
		if !c.catalog.isEvent(last) {
			return missing(*tail, fmt.Sprintf("must end with an event word such as Click, Change or Submit, got %q", last))
		}
		consumed++
	}

	required := 0
	for _, s := range middle {
		if !s.Optional {
			required++
		}
	}
	if have := len(slots) - consumed; have < required {
		return missing(middle[0], fmt.Sprintf("has %d of %d slots %s, missing %s",
			len(slots), rule.RequiredSlots(), rule.PatternString(), middle[0].Name))
	}
	return nil
}

// checkTestDescription validates "should <behavior> when <condition>".
func (c *Checker) checkTestDescription(name string, rule NamingRule, tokens []string) *Violation {
	missing := func(slotName, reason string) *Violation {
		return &Violation{
			Identifier: name,
			Category:   rule.Category,
			Kind:       KindMissingStructureSlot,
			Slot:       slotName,
			Reason:     reason,
		}
	}

	if len(tokens) == 0 || tokens[0] != "should" {
		return missing("should", `must start with "should"`)
	}
	when := slices.Index(tokens, "when")
	switch {
	case len(tokens) == 1 || when == 1:
		return missing(SlotBehavior, `missing behavior after "should"`)
	case when < 0:
		return missing("when", `missing "when <condition>"`)
	case when == len(tokens)-1:
		return missing(SlotCondition, `missing condition after "when"`)
	}
	return nil
}

var sampleVerbs = []string{"get", "fetch", "create", "update", "validate"}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Structure runs the structural check even when the catalog does not enforce
// the category's pattern. It returns nil for categories without a pattern and
// for names that fail the casing check.
func (c *Checker) Structure(name string, category core.Category) *Violation {
	name = norm.NFC.String(name)
	rule, err := c.catalog.Rule(category)
	if err != nil || len(rule.Pattern) == 0 || !rule.Casing.Matches(name) {
		return nil
	}
	tokens := Tokenize(name, rule.Casing)
	if category == core.CategoryTestCase {
		return c.checkTestDescription(name, rule, tokens)
	}
	if category == core.CategoryBooleanVariable {
		return nil
	}
	return c.checkStructure(name, rule, tokens)
}
