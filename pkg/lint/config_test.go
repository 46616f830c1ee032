package lint

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/leapstack-labs/namelint/pkg/core"
)

func TestConfig_DisableRule(t *testing.T) {
	cfg := NewConfig().Disable("nc01")

	assert.True(t, cfg.IsDisabled("NC01"))
	assert.False(t, cfg.IsDisabled("NC02"))

	cfg.Enable("NC01")
	assert.False(t, cfg.IsDisabled("NC01"))
}

func TestConfig_SeverityOverride(t *testing.T) {
	cfg := NewConfig().SetSeverity("NC04", core.SeverityError)

	assert.Equal(t, core.SeverityError, cfg.GetSeverity("NC04", core.SeverityWarning))
	assert.Equal(t, core.SeverityWarning, cfg.GetSeverity("NC03", core.SeverityWarning))
}

func TestConfig_Nil(t *testing.T) {
	var cfg *Config
	assert.False(t, cfg.IsDisabled("NC01"))
	assert.Equal(t, core.SeverityInfo, cfg.GetSeverity("NC01", core.SeverityInfo))
	assert.Nil(t, cfg.GetRuleOptions("NC01"))
}

func TestConfigFromProject(t *testing.T) {
	cfg := ConfigFromProject(&core.LintConfig{
		Disabled: []string{"FN02"},
		Severity: map[string]string{"nc04": "error", "NC03": "bogus"},
		Rules: map[string]core.RuleOptions{
			"TS01": {"require_condition": false},
		},
	})

	assert.True(t, cfg.IsDisabled("FN02"))
	assert.Equal(t, core.SeverityError, cfg.GetSeverity("NC04", core.SeverityWarning))
	assert.Equal(t, core.SeverityWarning, cfg.GetSeverity("NC03", core.SeverityWarning))
	assert.Equal(t, false, cfg.GetRuleOptions("ts01")["require_condition"])

	assert.NotNil(t, ConfigFromProject(nil))
}
