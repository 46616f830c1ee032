package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

// mockRule implements IdentifierRule for testing
type mockRule struct {
	id          string
	name        string
	group       string
	description string
	severity    core.Severity
	configKeys  []string
	categories  []core.Category
	calls       int
}

func (m *mockRule) ID() string                     { return m.id }
func (m *mockRule) Name() string                   { return m.name }
func (m *mockRule) Group() string                  { return m.group }
func (m *mockRule) Description() string            { return m.description }
func (m *mockRule) DefaultSeverity() core.Severity { return m.severity }
func (m *mockRule) ConfigKeys() []string           { return m.configKeys }
func (m *mockRule) Categories() []core.Category    { return m.categories }

// Documentation methods (return empty for mocks)
func (m *mockRule) Rationale() string   { return "" }
func (m *mockRule) BadExample() string  { return "" }
func (m *mockRule) GoodExample() string { return "" }
func (m *mockRule) Fix() string         { return "" }

func (m *mockRule) CheckIdentifier(_ *CheckContext, ident core.Identifier, _ map[string]any) []Diagnostic {
	m.calls++
	return []Diagnostic{{RuleID: m.id, Severity: m.severity, Message: ident.Name}}
}

// withCleanRegistry swaps in an empty registry for the duration of the test.
func withCleanRegistry(t *testing.T) {
	t.Helper()
	globalRegistry.mu.Lock()
	saved := globalRegistry.rules
	globalRegistry.rules = make(map[string]IdentifierRule)
	globalRegistry.mu.Unlock()

	t.Cleanup(func() {
		globalRegistry.mu.Lock()
		globalRegistry.rules = saved
		globalRegistry.mu.Unlock()
	})
}

func TestIdentifierRuleInterface(t *testing.T) {
	rule := &mockRule{
		id:          "TST01",
		name:        "test-rule",
		group:       "testing",
		description: "A test rule",
		severity:    core.SeverityWarning,
		configKeys:  []string{"max_count"},
		categories:  []core.Category{core.CategoryHook},
	}

	// Verify it implements Rule interface
	var _ Rule = rule

	// Verify it implements IdentifierRule interface
	var _ IdentifierRule = rule

	assert.Equal(t, "TST01", rule.ID())
	assert.Equal(t, []core.Category{core.CategoryHook}, rule.Categories())
}

func TestGetRuleInfo(t *testing.T) {
	rule := &mockRule{
		id:          "TST02",
		name:        "info-rule",
		group:       "testing",
		description: "Rule for info",
		severity:    core.SeverityInfo,
		configKeys:  []string{"threshold"},
		categories:  []core.Category{core.CategoryFunction, core.CategoryHook},
	}

	info := GetRuleInfo(rule)

	assert.Equal(t, "TST02", info.ID)
	assert.Equal(t, "info-rule", info.Name)
	assert.Equal(t, "testing", info.Group)
	assert.Equal(t, "Rule for info", info.Description)
	assert.Equal(t, core.SeverityInfo, info.DefaultSeverity)
	assert.Equal(t, []string{"threshold"}, info.ConfigKeys)
	assert.Equal(t, []core.Category{core.CategoryFunction, core.CategoryHook}, info.Categories)
}

func TestWrapRuleDef(t *testing.T) {
	called := false
	def := RuleDef{
		ID:          "WRAP01",
		Name:        "wrapped",
		Group:       "testing",
		Description: "Wrapped rule",
		Severity:    core.SeverityHint,
		Categories:  []core.Category{core.CategoryVariable},
		ConfigKeys:  []string{"opt"},
		Rationale:   "because",
		Check: func(_ *CheckContext, ident core.Identifier, opts map[string]any) []Diagnostic {
			called = true
			assert.Equal(t, "value", opts["opt"])
			return []Diagnostic{{RuleID: "WRAP01", Message: ident.Name}}
		},
	}

	rule := WrapRuleDef(def)

	assert.Equal(t, "WRAP01", rule.ID())
	assert.Equal(t, "wrapped", rule.Name())
	assert.Equal(t, core.SeverityHint, rule.DefaultSeverity())
	assert.Equal(t, []core.Category{core.CategoryVariable}, rule.Categories())
	assert.Equal(t, "because", rule.Rationale())

	diags := rule.CheckIdentifier(&CheckContext{}, core.Identifier{Name: "userName"}, map[string]any{"opt": "value"})
	assert.True(t, called)
	require.Len(t, diags, 1)
	assert.Equal(t, "userName", diags[0].Message)

	unwrapper, ok := rule.(interface{ Unwrap() RuleDef })
	require.True(t, ok)
	assert.Equal(t, "WRAP01", unwrapper.Unwrap().ID)
}

func TestWrapRuleDef_NilCheck(t *testing.T) {
	rule := WrapRuleDef(RuleDef{ID: "NIL01"})
	assert.Nil(t, rule.CheckIdentifier(&CheckContext{}, core.Identifier{}, nil))
}

func TestRegistry(t *testing.T) {
	withCleanRegistry(t)

	Register(RuleDef{ID: "ZZ01", Name: "z", Group: "beta", Categories: []core.Category{core.CategoryHook}})
	Register(RuleDef{ID: "AA01", Name: "a", Group: "alpha", Categories: []core.Category{core.CategoryFunction}})
	RegisterRule(&mockRule{id: "MM01", group: "alpha", categories: []core.Category{core.CategoryHook}})

	assert.Equal(t, 3, Count())

	rules := IdentifierRules()
	require.Len(t, rules, 3)
	assert.Equal(t, "AA01", rules[0].ID())
	assert.Equal(t, "MM01", rules[1].ID())
	assert.Equal(t, "ZZ01", rules[2].ID())

	rule, ok := GetRuleByID("aa01")
	require.True(t, ok)
	assert.Equal(t, "a", rule.Name())

	_, ok = GetRuleByID("XX99")
	assert.False(t, ok)

	alpha := GetRulesByGroup("alpha")
	require.Len(t, alpha, 2)
	assert.Equal(t, "AA01", alpha[0].ID())

	hooks := GetRulesByCategory(core.CategoryHook)
	require.Len(t, hooks, 2)
	assert.Equal(t, "MM01", hooks[0].ID())

	infos := AllRules()
	require.Len(t, infos, 3)
	assert.Equal(t, "AA01", infos[0].ID)

	Clear()
	assert.Equal(t, 0, Count())
}

func TestNewDiagnostic(t *testing.T) {
	ident := core.Identifier{
		Name:      "usrPrf",
		Category:  core.CategoryVariable,
		Path:      "src/a.ts",
		Line:      4,
		Column:    7,
		EndLine:   4,
		EndColumn: 13,
	}
	v := &naming.Violation{
		Identifier: "usrPrf",
		Category:   core.CategoryVariable,
		Kind:       naming.KindForbiddenToken,
		Reason:     `contains abbreviation "usr"`,
		Suggestion: "userProfile",
	}

	d := NewDiagnostic("NC02", core.SeverityWarning, ident, v, ImpactMedium)

	assert.Equal(t, "NC02", d.RuleID)
	assert.Equal(t, `variable "usrPrf": contains abbreviation "usr"`, d.Message)
	assert.Equal(t, Position{Line: 4, Column: 7}, d.Pos)
	assert.Equal(t, Position{Line: 4, Column: 13}, d.EndPos)
	assert.Equal(t, "4:7", d.Pos.String())
	assert.Equal(t, naming.KindForbiddenToken, d.Kind)
	assert.Equal(t, "userProfile", d.Suggestion)
	assert.Equal(t, 50, d.ImpactScore)
	assert.Equal(t, "https://namelint.dev/docs/rules/nc02", d.DocumentationURL)
}

func TestDocsBaseURL(t *testing.T) {
	t.Cleanup(ResetDocsBaseURL)

	SetDocsBaseURL("http://localhost:3000/rules/")
	assert.Equal(t, "http://localhost:3000/rules/nc01", BuildDocURL("NC01"))

	ResetDocsBaseURL()
	assert.Equal(t, DefaultDocsBaseURL+"/nc01", BuildDocURL("NC01"))
}
