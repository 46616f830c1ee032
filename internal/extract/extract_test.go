package extract

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/namelint/pkg/core"
)

const componentSource = `import React, { useState } from 'react';

export const MAX_RETRY_COUNT = 3;
const apiBaseUrl = '/api';

export interface UserProfileProps {
  userId: string;
}

type Status = 'active' | 'inactive';

enum OrderStatus {
  Pending = 'pending',
  Shipped,
}

export function UserProfileCard({ userId }: UserProfileProps) {
  const [isOpen, setIsOpen] = useState(false);
  const [user, setUser] = useState(null);
  const loading = true;
  const hasError: boolean = checkError();
  const { name, email } = user;
  const handleUserProfileSubmit = () => {
    setIsOpen(!isOpen);
  };
  return <div onClick={handleUserProfileSubmit}>{name}</div>;
}

function useUserProfile(userId: string) {
  return userId;
}

export const getProfile = async (id: string) => fetch(id);

class LegacyCard extends React.Component {
  render() {
    return <span />;
  }
  handleClick() {}
}

for (let i = 0; i < 3; i++) {}
`

const testSource = `import { render } from '@testing-library/react';

const mockUserService = { fetchUser: jest.fn() };
const fetchSpy = jest.fn().mockResolvedValue({});

function renderUserProfileCard() {
  return render(null);
}

describe('UserProfileCard', () => {
  it('should show error message when email is invalid', () => {});
  it.only("renders", () => {});
  test(` + "`should load profile when mounted`" + `, () => {});
  it(` + "`row ${1}`" + `, () => {});
});
`

// byName indexes identifiers by name; the file identifier is keyed by its category.
func byName(t *testing.T, idents []core.Identifier) map[string]core.Identifier {
	t.Helper()
	out := make(map[string]core.Identifier, len(idents))
	for _, id := range idents {
		out[id.Name] = id
	}
	return out
}

func TestExtractSource_Component(t *testing.T) {
	result, err := ExtractSource(context.Background(), "src/user/UserProfileCard.tsx", []byte(componentSource))
	require.NoError(t, err)
	assert.False(t, result.Partial)
	require.NotEmpty(t, result.Identifiers)

	file := result.Identifiers[0]
	assert.Equal(t, "UserProfileCard", file.Name)
	assert.Equal(t, core.CategoryComponent, file.Category)
	assert.Equal(t, 1, file.Line)

	got := byName(t, result.Identifiers[1:])

	tests := []struct {
		name      string
		category  core.Category
		isBoolean bool
	}{
		{"MAX_RETRY_COUNT", core.CategoryConstant, false},
		{"apiBaseUrl", core.CategoryConstant, false},
		{"UserProfileProps", core.CategoryTypeOrInterface, false},
		{"Status", core.CategoryTypeOrInterface, false},
		{"OrderStatus", core.CategoryEnum, false},
		{"Pending", core.CategoryEnumMember, false},
		{"Shipped", core.CategoryEnumMember, false},
		{"UserProfileCard", core.CategoryComponent, false},
		{"isOpen", core.CategoryBooleanVariable, true},
		{"setIsOpen", core.CategoryFunction, false},
		{"user", core.CategoryVariable, false},
		{"setUser", core.CategoryFunction, false},
		{"loading", core.CategoryBooleanVariable, true},
		{"hasError", core.CategoryBooleanVariable, true},
		{"handleUserProfileSubmit", core.CategoryEventHandler, false},
		{"useUserProfile", core.CategoryHook, false},
		{"getProfile", core.CategoryFunction, false},
		{"LegacyCard", core.CategoryComponent, false},
		{"handleClick", core.CategoryEventHandler, false},
		{"i", core.CategoryVariable, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := got[tt.name]
			require.True(t, ok, "identifier %s not extracted", tt.name)
			assert.Equal(t, tt.category, id.Category)
			assert.Equal(t, tt.isBoolean, id.IsBoolean)
			assert.Equal(t, "src/user/UserProfileCard.tsx", id.Path)
		})
	}

	assert.True(t, got["setUser"].Derived, "useState setter")
	assert.True(t, got["setIsOpen"].Derived, "useState setter")
	assert.False(t, got["getProfile"].Derived)

	for _, skipped := range []string{"name", "email", "render", "userId", "React"} {
		_, ok := got[skipped]
		assert.False(t, ok, "%s should not be extracted", skipped)
	}
}

func TestExtractSource_Positions(t *testing.T) {
	result, err := ExtractSource(context.Background(), "src/limits.ts", []byte("const x = 1;\nexport const MAX_RETRY_COUNT = 3;\n"))
	require.NoError(t, err)

	got := byName(t, result.Identifiers)
	id := got["MAX_RETRY_COUNT"]
	assert.Equal(t, 2, id.Line)
	assert.Equal(t, 14, id.Column)
	assert.Equal(t, 2, id.EndLine)
	assert.Equal(t, 29, id.EndColumn)

	assert.Equal(t, 1, got["x"].Line)
	assert.Equal(t, 7, got["x"].Column)
}

func TestExtractSource_TestFile(t *testing.T) {
	result, err := ExtractSource(context.Background(), "src/user/user-profile.test.ts", []byte(testSource))
	require.NoError(t, err)

	file := result.Identifiers[0]
	assert.Equal(t, "user-profile", file.Name)
	assert.Equal(t, core.CategoryTestFile, file.Category)
	assert.True(t, file.File.IsTest)

	got := byName(t, result.Identifiers[1:])
	assert.Equal(t, core.CategoryMockObject, got["mockUserService"].Category)
	assert.Equal(t, core.CategoryMockObject, got["fetchSpy"].Category)
	assert.Equal(t, core.CategoryHelperFunction, got["renderUserProfileCard"].Category)

	var cases []string
	for _, id := range result.Identifiers {
		if id.Category == core.CategoryTestCase {
			cases = append(cases, id.Name)
		}
	}
	assert.Equal(t, []string{
		"should show error message when email is invalid",
		"renders",
		"should load profile when mounted",
	}, cases)
}

func TestExtractSource_TestCaseQuotes(t *testing.T) {
	src := `it('should show "x" when empty', () => {});
test("should keep 'y' when saved", () => {});
it(` + "`should render \"z\"`" + `, () => {});
`
	result, err := ExtractSource(context.Background(), "src/quotes.test.ts", []byte(src))
	require.NoError(t, err)

	var cases []string
	for _, id := range result.Identifiers {
		if id.Category == core.CategoryTestCase {
			cases = append(cases, id.Name)
		}
	}
	assert.Equal(t, []string{
		`should show "x" when empty`,
		`should keep 'y' when saved`,
		`should render "z"`,
	}, cases)
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, `say "hi"`, unquote(`'say "hi"'`))
	assert.Equal(t, "tpl", unquote("`tpl`"))
	assert.Equal(t, "", unquote(`''`))
	assert.Equal(t, "'", unquote("'"))
}

func TestExtractSource_FileFacts(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		source string
		want   core.FileFacts
	}{
		{
			name:   "type-only module",
			path:   "src/user.ts",
			source: "export interface User { id: string }\nexport type UserId = string;\nenum Role { Admin }\n",
			want:   core.FileFacts{Declarations: 3, OnlyTypes: true},
		},
		{
			name:   "constant-only module",
			path:   "src/limits.ts",
			source: "export const MAX_RETRY_COUNT = 3;\nexport const API_BASE_URL = '/api';\n",
			want:   core.FileFacts{Declarations: 2, OnlyConstants: true},
		},
		{
			name:   "service module",
			path:   "src/user-api.ts",
			source: "export class UserService {}\nconst retryDelayMs = compute();\n",
			want:   core.FileFacts{Declarations: 2, ServiceExport: true},
		},
		{
			name:   "imports only",
			path:   "src/index.ts",
			source: "import './polyfills';\nexport { a } from './a';\n",
			want:   core.FileFacts{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ExtractSource(context.Background(), tt.path, []byte(tt.source))
			require.NoError(t, err)
			require.NotEmpty(t, result.Identifiers)
			assert.Equal(t, core.CategoryModuleFile, result.Identifiers[0].Category)
			assert.Equal(t, tt.want, result.Identifiers[0].File)
		})
	}
}

func TestExtractSource_RouteFiles(t *testing.T) {
	result, err := ExtractSource(context.Background(), "pages/[id].tsx", []byte("export default function Page() { return <div />; }\n"))
	require.NoError(t, err)
	for _, id := range result.Identifiers {
		assert.NotEqual(t, "[id]", id.Name)
	}
}

func TestExtractSource_SyntaxErrors(t *testing.T) {
	result, err := ExtractSource(context.Background(), "src/broken.ts", []byte("const userName = ;\nfunction getUserProfile( {\n"))
	require.NoError(t, err)
	assert.True(t, result.Partial)
}

func TestExtractSource_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := ExtractSource(ctx, "src/a.ts", []byte("const a = 1;"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "format-currency.ts")
	require.NoError(t, os.WriteFile(path, []byte("export function formatCurrencyAmount(value: number) { return value; }\n"), 0o644))

	result, err := ExtractFile(context.Background(), path)
	require.NoError(t, err)
	got := byName(t, result.Identifiers)
	assert.Equal(t, core.CategoryModuleFile, got["format-currency"].Category)
	assert.Equal(t, core.CategoryFunction, got["formatCurrencyAmount"].Category)

	_, err = ExtractFile(context.Background(), filepath.Join(dir, "missing.ts"))
	assert.Error(t, err)
}

func TestFileHelpers(t *testing.T) {
	assert.True(t, IsTargetFile("src/a.ts"))
	assert.True(t, IsTargetFile("src/A.TSX"))
	assert.True(t, IsTargetFile("src/a.mjs"))
	assert.False(t, IsTargetFile("src/a.d.ts"))
	assert.False(t, IsTargetFile("src/a.css"))

	assert.True(t, IsTestFile("src/a.test.ts"))
	assert.True(t, IsTestFile("src/a.spec.tsx"))
	assert.True(t, IsTestFile("src/__tests__/a.ts"))
	assert.False(t, IsTestFile("src/testing/a.ts"))

	assert.Equal(t, "user-profile", FileStem("src/user-profile.types.ts"))
	assert.Equal(t, "index", FileStem("index.ts"))

	assert.True(t, hasWordPrefix("useAuth", "use"))
	assert.True(t, hasWordPrefix("use", "use"))
	assert.False(t, hasWordPrefix("user", "use"))
}
