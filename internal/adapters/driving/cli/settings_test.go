package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/linesplit/internal/core/domain"
)

func TestSettingsCmd_Show(t *testing.T) {
	setupTestServices(t)

	out, _, err := execute(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "(next to the source file)")
	assert.Contains(t, out, "Encoding:     utf-8")
	assert.Contains(t, out, "Line ending:  LF (\\n)")
	assert.Contains(t, out, "Strict parts: no")
	assert.Contains(t, out, "Enabled: yes")
	assert.Contains(t, out, "Config file: :memory:")
}

func TestSettingsCmd_Set(t *testing.T) {
	setupTestServices(t)

	out, _, err := execute(t, "settings", "set", "split.strict_parts", "true")
	require.NoError(t, err)
	assert.Contains(t, out, `Set split.strict_parts = "true"`)

	settings, err := settingsService.Get()
	require.NoError(t, err)
	assert.True(t, settings.Split.StrictParts)

	out, _, err = execute(t, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Strict parts: yes")
}

func TestSettingsCmd_SetUnknownKey(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "settings", "set", "split.colour", "red")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownSetting)
	assert.Contains(t, err.Error(), "known keys")
}

func TestSettingsCmd_SetInvalidValue(t *testing.T) {
	setupTestServices(t)

	_, _, err := execute(t, "settings", "set", "split.line_ending", "cr")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to set split.line_ending")
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, "yes", yesNo(true))
	assert.Equal(t, "no", yesNo(false))
}
