package file_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
	_ "github.com/leapstack-labs/namelint/pkg/lint/rules" // register rules
)

func runRule(t *testing.T, ident core.Identifier, ruleID string) []lint.Diagnostic {
	t.Helper()
	diags, err := lint.NewAnalyzer(nil, nil).Analyze(ident)
	require.NoError(t, err)

	var filtered []lint.Diagnostic
	for _, d := range diags {
		if d.RuleID == ruleID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func moduleFile(path, name string, facts core.FileFacts) core.Identifier {
	return core.Identifier{
		Name:     name,
		Category: core.CategoryModuleFile,
		Path:     path,
		Line:     1,
		Column:   1,
		File:     facts,
	}
}

func TestFN01_FileCasing(t *testing.T) {
	tests := []struct {
		name     string
		ident    core.Identifier
		wantDiag bool
		wantFix  string
	}{
		{"kebab", moduleFile("src/utils/format-currency.ts", "format-currency", core.FileFacts{}), false, ""},
		{"camel", moduleFile("src/utils/formatCurrency.ts", "formatCurrency", core.FileFacts{}), true, "format-currency.ts"},
		{"pascal with suffix", moduleFile("src/user/UserProfile.types.ts", "UserProfile", core.FileFacts{}), true, "user-profile.types.ts"},
		{"test file", core.Identifier{Name: "formatCurrency", Category: core.CategoryTestFile, Path: "src/formatCurrency.test.ts"}, true, "format-currency.test.ts"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.ident, "FN01")
			if !tt.wantDiag {
				assert.Empty(t, diags, "unexpected FN01 diagnostic")
				return
			}
			require.Len(t, diags, 1, "expected FN01 diagnostic")
			assert.Equal(t, tt.wantFix, diags[0].Suggestion)
		})
	}
}

func TestFN02_FileSuffix(t *testing.T) {
	tests := []struct {
		name    string
		ident   core.Identifier
		wantFix string // empty means no diagnostic
	}{
		{
			name:    "type-only module without suffix",
			ident:   moduleFile("src/user/user.ts", "user", core.FileFacts{Declarations: 2, OnlyTypes: true}),
			wantFix: "user.types.ts",
		},
		{
			name:  "type-only module with suffix",
			ident: moduleFile("src/user/user.types.ts", "user", core.FileFacts{Declarations: 2, OnlyTypes: true}),
		},
		{
			name:    "constant-only module without suffix",
			ident:   moduleFile("src/user/limits.ts", "limits", core.FileFacts{Declarations: 1, OnlyConstants: true}),
			wantFix: "limits.constants.ts",
		},
		{
			name:    "service module without suffix",
			ident:   moduleFile("src/user/user-api.ts", "user-api", core.FileFacts{Declarations: 3, ServiceExport: true}),
			wantFix: "user-api-service.ts",
		},
		{
			name:  "service module with suffix",
			ident: moduleFile("src/user/user-service.ts", "user-service", core.FileFacts{Declarations: 3, ServiceExport: true}),
		},
		{
			name:  "mixed module",
			ident: moduleFile("src/user/user.ts", "user", core.FileFacts{Declarations: 4}),
		},
		{
			name:  "empty module",
			ident: moduleFile("src/index.ts", "index", core.FileFacts{OnlyTypes: true}),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := runRule(t, tt.ident, "FN02")
			if tt.wantFix == "" {
				assert.Empty(t, diags, "unexpected FN02 diagnostic")
				return
			}
			require.Len(t, diags, 1, "expected FN02 diagnostic")
			assert.Equal(t, tt.wantFix, diags[0].Suggestion)
			assert.Equal(t, core.SeverityInfo, diags[0].Severity)
		})
	}
}
