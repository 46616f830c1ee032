package lint

import (
	"slices"
	"strings"
	"sync"

	"github.com/leapstack-labs/namelint/pkg/core"
)

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = &Registry{
	rules: make(map[string]IdentifierRule),
}

// Registry stores registered lint rules for discovery.
type Registry struct {
	mu    sync.RWMutex
	rules map[string]IdentifierRule // keyed by ID
}

// Register adds a rule definition to the global registry.
// Call this from init() functions in rule packages.
func Register(def RuleDef) {
	RegisterRule(WrapRuleDef(def))
}

// RegisterRule adds a rule implementation to the global registry.
func RegisterRule(rule IdentifierRule) {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules[rule.ID()] = rule
}

// IdentifierRules returns all registered rules sorted by ID.
func IdentifierRules() []IdentifierRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	rules := make([]IdentifierRule, 0, len(globalRegistry.rules))
	for _, rule := range globalRegistry.rules {
		rules = append(rules, rule)
	}
	sortRules(rules)
	return rules
}

// GetRuleByID returns a rule by its ID. Matching ignores case.
func GetRuleByID(id string) (IdentifierRule, bool) {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	rule, ok := globalRegistry.rules[strings.ToUpper(id)]
	return rule, ok
}

// GetRulesByGroup returns all rules in a specific group sorted by ID.
func GetRulesByGroup(group string) []IdentifierRule {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()

	var rules []IdentifierRule
	for _, rule := range globalRegistry.rules {
		if rule.Group() == group {
			rules = append(rules, rule)
		}
	}
	sortRules(rules)
	return rules
}

// GetRulesByCategory returns rules that check the given category.
func GetRulesByCategory(category core.Category) []IdentifierRule {
	var rules []IdentifierRule
	for _, rule := range IdentifierRules() {
		if slices.Contains(rule.Categories(), category) {
			rules = append(rules, rule)
		}
	}
	return rules
}

// AllRules returns metadata for all registered rules sorted by ID.
func AllRules() []core.RuleInfo {
	rules := IdentifierRules()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// Count returns the number of registered rules.
func Count() int {
	globalRegistry.mu.RLock()
	defer globalRegistry.mu.RUnlock()
	return len(globalRegistry.rules)
}

// Clear removes all registered rules. Used for testing.
func Clear() {
	globalRegistry.mu.Lock()
	defer globalRegistry.mu.Unlock()
	globalRegistry.rules = make(map[string]IdentifierRule)
}

func sortRules(rules []IdentifierRule) {
	slices.SortFunc(rules, func(a, b IdentifierRule) int {
		return strings.Compare(a.ID(), b.ID())
	})
}
