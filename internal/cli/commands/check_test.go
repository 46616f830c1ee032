package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/internal/cli/output"
	"github.com/leapstack-labs/namelint/internal/cli/testutil"
	"github.com/leapstack-labs/namelint/pkg/naming"
)

func TestCheckCommand(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	tests := []struct {
		name    string
		args    []string
		wantErr string
		want    string
	}{
		{
			name: "valid hook",
			args: []string{"useUserProfile", "--category", "hook", "--format", "markdown"},
			want: "follows the naming rules",
		},
		{
			name:    "abbreviated variable",
			args:    []string{"usrPrf", "--category", "variable", "--format", "markdown"},
			wantErr: "naming violations found",
			want:    "ForbiddenTokenViolation",
		},
		{
			name:    "boolean without prefix",
			args:    []string{"loading", "--category", "variable", "--boolean", "--format", "markdown"},
			wantErr: "naming violations found",
			want:    "MissingBooleanPrefixViolation",
		},
		{
			name:    "missing category",
			args:    []string{"useUserProfile"},
			wantErr: "--category is required",
		},
		{
			name:    "unknown category",
			args:    []string{"useUserProfile", "--category", "widget"},
			wantErr: `unknown category "widget"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCommand(t, dir, NewCheckCommand(), tt.args...)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			if tt.want != "" {
				testutil.AssertNoANSI(t, stdout)
				assert.Contains(t, stdout, tt.want)
			}
		})
	}
}

func TestCheckCommand_JSON(t *testing.T) {
	dir := testutil.SetupTestProject(t)

	stdout, _, err := runCommand(t, dir, NewCheckCommand(), "usrPrf", "-c", "variable", "-f", "json")
	require.ErrorIs(t, err, errNamingViolation)

	var out output.CheckOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "usrPrf", out.Identifier)
	assert.Equal(t, "variable", out.Category)
	assert.Equal(t, []string{"usr", "prf"}, out.Tokens)
	assert.False(t, out.OK)
	require.NotEmpty(t, out.Violations)
	assert.Equal(t, "ForbiddenTokenViolation", out.Violations[0].Kind)
}

func newTestSession(tr *testutil.TestRenderer) *checkSession {
	return &checkSession{
		checker:  naming.NewChecker(nil),
		renderer: tr.Renderer,
	}
}

func TestCheckSession_HandleLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		wantQuit bool
		want     string
	}{
		{name: "empty line", line: "   "},
		{name: "valid", line: "hook useUserProfile", want: "follows the naming rules"},
		{name: "test description with spaces", line: "testCase should render user name", want: "should render user name"},
		{name: "violation", line: "variable usrPrf", want: "ForbiddenTokenViolation"},
		{name: "missing identifier", line: "hook", want: "usage: <category> <identifier>"},
		{name: "unknown category", line: "widget Foo", want: `unknown category "widget"`},
		{name: "categories", line: ".categories", want: "eventHandler"},
		{name: "help", line: ".help", want: ".boolean [on|off]"},
		{name: "unknown command", line: ".foo", want: "unknown command: .foo"},
		{name: "quit", line: ".quit", wantQuit: true},
		{name: "exit", line: ".EXIT", wantQuit: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := testutil.NewTestRendererMarkdown()
			s := newTestSession(tr)

			assert.Equal(t, tt.wantQuit, s.handleLine(tt.line))
			if tt.want != "" {
				assert.Contains(t, tr.Output()+tr.ErrorOutput(), tt.want)
			}
		})
	}
}

func TestCheckSession_BooleanToggle(t *testing.T) {
	tr := testutil.NewTestRendererMarkdown()
	s := newTestSession(tr)

	s.handleLine(".boolean on")
	assert.True(t, s.boolean)

	s.handleLine("variable loading")
	assert.Contains(t, tr.Output(), "MissingBooleanPrefixViolation")

	s.handleLine(".boolean")
	assert.False(t, s.boolean)
}
