package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/internal/cli/config"
	"github.com/leapstack-labs/namelint/internal/cli/output"
	"github.com/leapstack-labs/namelint/internal/cli/testutil"
	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/leapstack-labs/namelint/pkg/lint"
)

func TestBuildLintConfig(t *testing.T) {
	t.Run("empty options", func(t *testing.T) {
		cfg := buildLintConfig(nil, nil, nil)

		require.NotNil(t, cfg)
		assert.False(t, cfg.IsDisabled("NC01"))
	})

	t.Run("disable rules", func(t *testing.T) {
		cfg := buildLintConfig(nil, []string{"NC02", " FN02"}, nil)

		assert.True(t, cfg.IsDisabled("NC02"))
		assert.True(t, cfg.IsDisabled("FN02"))
		assert.False(t, cfg.IsDisabled("NC01"))
	})

	t.Run("enable only specific rules", func(t *testing.T) {
		cfg := buildLintConfig(nil, nil, []string{"nc01", "NC02"})

		assert.False(t, cfg.IsDisabled("NC01"))
		assert.False(t, cfg.IsDisabled("NC02"))
		for _, r := range lint.IdentifierRules() {
			if r.ID() != "NC01" && r.ID() != "NC02" {
				assert.True(t, cfg.IsDisabled(r.ID()), "rule %q should be disabled", r.ID())
			}
		}
	})

	t.Run("project config", func(t *testing.T) {
		projectCfg := &config.Config{
			Lint: &config.LintConfig{
				Disabled: []string{"TS01"},
				Severity: map[string]string{"NC04": "error"},
			},
		}
		cfg := buildLintConfig(projectCfg, []string{"FN02"}, nil)

		assert.True(t, cfg.IsDisabled("TS01"))
		assert.True(t, cfg.IsDisabled("FN02"))
		assert.Equal(t, core.SeverityError, cfg.GetSeverity("NC04", core.SeverityWarning))
		assert.Equal(t, core.SeverityWarning, cfg.GetSeverity("NC03", core.SeverityWarning))
	})
}

func TestFilterBySeverity(t *testing.T) {
	diags := []lint.Diagnostic{
		{RuleID: "NC01", Severity: core.SeverityError},
		{RuleID: "NC02", Severity: core.SeverityWarning},
		{RuleID: "TS01", Severity: core.SeverityInfo},
		{RuleID: "X", Severity: core.SeverityHint},
	}

	assert.Len(t, filterBySeverity(diags, core.SeverityError), 1)
	assert.Len(t, filterBySeverity(diags, core.SeverityWarning), 2)
	assert.Len(t, filterBySeverity(diags, core.SeverityInfo), 3)
	assert.Len(t, filterBySeverity(diags, core.SeverityHint), 4)
}

func TestGroupByFile(t *testing.T) {
	diags := []lint.Diagnostic{
		{Path: "/p/src/a.ts", RuleID: "NC01"},
		{Path: "/p/src/a.ts", RuleID: "NC02"},
		{Path: "/p/src/b.ts", RuleID: "NC01"},
	}

	results := groupByFile("/p", diags)
	require.Len(t, results, 2)
	assert.Equal(t, "src/a.ts", results[0].Path)
	assert.Len(t, results[0].Diagnostics, 2)
	assert.Equal(t, "src/b.ts", results[1].Path)
}

func decodeLintOutput(t *testing.T, stdout string) output.LintOutput {
	t.Helper()
	var out output.LintOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out), "stdout: %s", stdout)
	return out
}

func findFile(out output.LintOutput, path string) *output.LintFileResult {
	for i := range out.Files {
		if out.Files[i].Path == path {
			return &out.Files[i]
		}
	}
	return nil
}

func TestLintCommand_Project(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	stdout, _, err := runCommand(t, dir, NewLintCommand(), "--format", "json")
	require.EqualError(t, err, "lint issues found")

	out := decodeLintOutput(t, stdout)
	assert.Equal(t, 3, out.Summary.FilesAnalyzed, "generated file is excluded")
	assert.Nil(t, findFile(out, "src/api/schema.generated.ts"))

	file := findFile(out, "src/utils/usr-prf.ts")
	require.NotNil(t, file)

	var forbidden []string
	for _, d := range file.Diagnostics {
		if d.RuleID == "NC02" {
			forbidden = append(forbidden, d.Identifier)
			assert.Equal(t, "warning", d.Severity)
			assert.Equal(t, "ForbiddenTokenViolation", d.Kind)
			assert.NotEmpty(t, d.Reason)
			assert.Positive(t, d.Line)
		}
	}
	assert.Contains(t, forbidden, "usrPrf")
	assert.Contains(t, forbidden, "tmp")
}

func TestLintCommand_ExplicitPaths(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	t.Run("clean file", func(t *testing.T) {
		stdout, _, err := runCommand(t, dir, NewLintCommand(), "--format", "json", "src/components/UserProfileCard.tsx")
		require.NoError(t, err)

		out := decodeLintOutput(t, stdout)
		assert.Equal(t, 1, out.Summary.FilesAnalyzed)
		assert.Zero(t, out.Summary.TotalIssues)
	})

	t.Run("only selected rule", func(t *testing.T) {
		_, _, err := runCommand(t, dir, NewLintCommand(), "--format", "json", "--rule", "NC01", "src/utils/usr-prf.ts")
		assert.NoError(t, err, "both names are valid camelCase")
	})

	t.Run("severity threshold", func(t *testing.T) {
		_, _, err := runCommand(t, dir, NewLintCommand(), "--format", "json", "--severity", "error", "src/utils/usr-prf.ts")
		assert.NoError(t, err, "forbidden tokens are warnings")
	})
}

func TestLintCommand_Baseline(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	stdout, _, err := runCommand(t, dir, NewLintCommand(), "--format", "json", "--update-baseline")
	require.NoError(t, err, "every issue is baselined")
	out := decodeLintOutput(t, stdout)
	assert.Zero(t, out.Summary.TotalIssues)
	assert.Positive(t, out.Summary.Baselined)

	stdout, _, err = runCommand(t, dir, NewLintCommand(), "--format", "json")
	require.NoError(t, err)
	assert.Positive(t, decodeLintOutput(t, stdout).Summary.Baselined)

	_, _, err = runCommand(t, dir, NewLintCommand(), "--format", "json", "--baseline=false")
	assert.EqualError(t, err, "lint issues found")
}

func TestLintCommand_TextOutput(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	stdout, _, err := runCommand(t, dir, NewLintCommand(), "--format", "markdown", "src/utils/usr-prf.ts")
	require.Error(t, err)

	testutil.AssertNoANSI(t, stdout)
	assert.Contains(t, stdout, "src/utils/usr-prf.ts")
	assert.Contains(t, stdout, "NC02")
	assert.Contains(t, stdout, "Summary:")
}

func TestLintCommand_InvalidFlags(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	_, _, err := runCommand(t, dir, NewLintCommand(), "--severity", "fatal")
	assert.ErrorContains(t, err, "invalid severity")

	_, _, err = runCommand(t, dir, NewLintCommand(), "--disable", "XX99")
	assert.ErrorContains(t, err, "unknown rule")

	_, _, err = runCommand(t, dir, NewLintCommand(), "missing/dir")
	assert.ErrorContains(t, err, "missing/dir")
}
