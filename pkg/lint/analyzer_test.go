package lint_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules" // register rules
	"github.com/leapstack-labs/namelint/pkg/naming"
)

func ruleIDs(diags []lint.Diagnostic) []string {
	ids := make([]string, 0, len(diags))
	for _, d := range diags {
		ids = append(ids, d.RuleID)
	}
	return ids
}

func TestAnalyzer_Analyze(t *testing.T) {
	tests := []struct {
		name    string
		ident   core.Identifier
		wantIDs []string
	}{
		{
			name:    "clean function",
			ident:   core.Identifier{Name: "getUserProfile", Category: core.CategoryFunction},
			wantIDs: []string{},
		},
		{
			name:    "short function",
			ident:   core.Identifier{Name: "getProfile", Category: core.CategoryFunction},
			wantIDs: []string{"NC04"},
		},
		{
			name:    "casing stops later rules",
			ident:   core.Identifier{Name: "Usr_Data", Category: core.CategoryVariable, IsBoolean: true},
			wantIDs: []string{"NC01"},
		},
		{
			name:    "several findings at once",
			ident:   core.Identifier{Name: "tmpLoader", Category: core.CategoryFunction},
			wantIDs: []string{"NC02", "NC04"},
		},
		{
			name:    "boolean and forbidden",
			ident:   core.Identifier{Name: "dataReady", Category: core.CategoryBooleanVariable, IsBoolean: true},
			wantIDs: []string{"NC02", "NC03"},
		},
		{
			name:    "test description",
			ident:   core.Identifier{Name: "works", Category: core.CategoryTestCase},
			wantIDs: []string{"TS01"},
		},
	}

	analyzer := lint.NewAnalyzer(lint.NewConfig(), naming.NewChecker(naming.Default()))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags, err := analyzer.Analyze(tt.ident)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, ruleIDs(diags))
		})
	}
}

func TestAnalyzer_UnknownCategory(t *testing.T) {
	analyzer := lint.NewAnalyzer(nil, nil)

	_, err := analyzer.Analyze(core.Identifier{Name: "x", Category: "widget", Path: "a.ts", Line: 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, naming.ErrUnknownCategory))
	assert.Contains(t, err.Error(), "a.ts:2")

	_, err = analyzer.AnalyzeAll([]core.Identifier{
		{Name: "getUserProfile", Category: core.CategoryFunction},
		{Name: "x", Category: "widget"},
	})
	assert.ErrorIs(t, err, naming.ErrUnknownCategory)
}

func TestAnalyzer_AnalyzeAll(t *testing.T) {
	analyzer := lint.NewAnalyzer(lint.NewConfig().Disable("NC02"), nil)

	diags, err := analyzer.AnalyzeAll([]core.Identifier{
		{Name: "getProfile", Category: core.CategoryFunction},
		{Name: "userData", Category: core.CategoryVariable},
		{Name: "useAuth", Category: core.CategoryHook},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"NC04", "NC04"}, ruleIDs(diags))
}

func TestAnalyzer_CatalogOptions(t *testing.T) {
	checker := naming.NewChecker(naming.NewCatalog(naming.WithAllowedTokens("data")))
	analyzer := lint.NewAnalyzer(nil, checker)

	diags, err := analyzer.Analyze(core.Identifier{Name: "userData", Category: core.CategoryVariable})
	require.NoError(t, err)
	assert.Empty(t, diags)
	assert.Same(t, checker, analyzer.Checker())
}

func TestAnalyzer_RegisteredRules(t *testing.T) {
	for _, id := range []string{"NC01", "NC02", "NC03", "NC04", "FN01", "FN02", "TS01"} {
		rule, ok := lint.GetRuleByID(id)
		require.True(t, ok, "rule %s not registered", id)
		assert.NotEmpty(t, rule.Description())
		assert.NotEmpty(t, rule.Categories())
	}
}
