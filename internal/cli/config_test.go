package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"xiangqi/internal/game"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "xiangqi.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = LoadConfig(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
color: never
self_check_rule: standard
save_dir: /tmp/games
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	lvl, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, zerolog.DebugLevel, lvl)

	rule, err := cfg.Rule()
	require.NoError(t, err)
	assert.Equal(t, game.RuleStandard, rule)

	assert.Equal(t, "/tmp/games", cfg.SaveDir)
	assert.False(t, cfg.UseColor(true))
}

func TestLoadConfigErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "colour: always\n",
		"bad level":    "log_level: loud\n",
		"bad rule":     "self_check_rule: lenient\n",
		"bad color":    "color: sometimes\n",
		"invalid yaml": "log_level: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, body))
			assert.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUseColor(t *testing.T) {
	cfg := DefaultConfig()
	assert.True(t, cfg.UseColor(true))
	assert.False(t, cfg.UseColor(false))
	cfg.Color = ColorAlways
	assert.True(t, cfg.UseColor(false))
}
