package testcase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules" // register rules
)

func runRule(t *testing.T, cfg *lint.Config, description string) []lint.Diagnostic {
	t.Helper()
	ident := core.Identifier{
		Name:     description,
		Category: core.CategoryTestCase,
		Path:     "src/user/user-profile.test.tsx",
		Line:     12,
		Column:   6,
	}
	diags, err := lint.NewAnalyzer(cfg, nil).Analyze(ident)
	require.NoError(t, err)
	return diags
}

func TestTS01_Description(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantDiag    bool
	}{
		{"full description", "should show error message when email is invalid", false},
		{"no should", "shows error message", true},
		{"no condition", "should show error message", true},
		{"dangling when", "should show error message when", true},
		{"no behavior", "should when empty", true},
		{"one word", "works", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, nil, tt.description)
			if tt.wantDiag {
				require.Len(t, diags, 1, "expected TS01 diagnostic")
				assert.Equal(t, "TS01", diags[0].RuleID)
			} else {
				assert.Empty(t, diags, "unexpected TS01 diagnostic")
			}
		})
	}
}

func TestTS01_RequireConditionOption(t *testing.T) {
	cfg := lint.NewConfig().SetRuleOptions("TS01", map[string]any{"require_condition": false})

	assert.Empty(t, runRule(t, cfg, "should show error message"))
	assert.Empty(t, runRule(t, cfg, "should show error message when"))
	assert.Len(t, runRule(t, cfg, "shows error message"), 1)
}
