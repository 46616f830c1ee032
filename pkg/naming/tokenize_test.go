package naming

import (
	"testing"

	"github.com/leapstack-labs/namelint/pkg/core"
	"github.com/stretchr/testify/assert"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		casing core.Casing
		want   []string
	}{
		{"camel", "getUserProfile", core.CasingCamel, []string{"get", "user", "profile"}},
		{"pascal", "UserProfileCard", core.CasingPascal, []string{"user", "profile", "card"}},
		{"acronym run", "HTTPServer", core.CasingPascal, []string{"http", "server"}},
		{"acronym inside", "OAuthUserToken", core.CasingPascal, []string{"o", "auth", "user", "token"}},
		{"trailing acronym", "parseURL", core.CasingCamel, []string{"parse", "url"}},
		{"digit stays attached", "user2Name", core.CasingCamel, []string{"user2", "name"}},
		{"version suffix", "fetchUserV2", core.CasingCamel, []string{"fetch", "user", "v2"}},
		{"screaming snake", "USER_SESSION_TIMEOUT_MS", core.CasingScreamingSnake, []string{"user", "session", "timeout", "ms"}},
		{"kebab", "user-profile-service", core.CasingKebab, []string{"user", "profile", "service"}},
		{"free text", "should render card, when user is active.", core.CasingFreeText,
			[]string{"should", "render", "card", "when", "user", "is", "active"}},
		{"empty", "", core.CasingCamel, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input, tt.casing)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSlots(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   int
	}{
		{"unit folds", []string{"calculate", "order", "tax", "ms"}, 3},
		{"digits fold", []string{"fetch", "user", "2"}, 2},
		{"first token never folds", []string{"ms", "value"}, 2},
		{"plain", []string{"get", "user", "profile"}, 3},
		{"empty", nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Slots(tt.tokens), tt.want)
		})
	}
}

func TestJoinAndWords(t *testing.T) {
	words := Words("get_user-Profile")
	assert.Equal(t, []string{"get", "user", "profile"}, words)

	assert.Equal(t, "getUserProfile", Join(words, core.CasingCamel))
	assert.Equal(t, "GetUserProfile", Join(words, core.CasingPascal))
	assert.Equal(t, "GET_USER_PROFILE", Join(words, core.CasingScreamingSnake))
	assert.Equal(t, "get-user-profile", Join(words, core.CasingKebab))

	assert.Equal(t, []string{"max", "retries"}, Words("MAX_RETRIES"))
}
