package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DISCORD_BOT_TOKEN", "")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("DEFAULT_PAIR", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "!", cfg.Discord.CommandPrefix)
	assert.Equal(t, "EURUSD", cfg.DataSource.DefaultPair)
	assert.Equal(t, "0 0 * * * *", cfg.Schedule.SessionCron)
	assert.Error(t, cfg.Validate(), "token must be required")
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	yaml := `
discord:
  bot_token: from-file
  command_prefix: "$"
data_source:
  default_pair: GBPUSD
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	t.Setenv("DISCORD_BOT_TOKEN", "from-env")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("DEFAULT_PAIR", "")

	cfg, err := Load(path)
	require.NoError(t, err)

	// Env wins over file; untouched file values survive.
	assert.Equal(t, "from-env", cfg.Discord.BotToken)
	assert.Equal(t, "$", cfg.Discord.CommandPrefix)
	assert.Equal(t, "GBPUSD", cfg.DataSource.DefaultPair)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("discord: ["), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
