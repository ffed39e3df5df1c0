package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PIXELDASH_COMMENTARY_API_KEY", "GEMINI_API_KEY", "API_KEY", "PIXELDASH_FPS", "PIXELDASH_SSH_ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)
	clearEnv(t)

	require.NoError(t, Load(t.TempDir()))
	s := Current()

	assert.Equal(t, "info", s.LogLevel)
	assert.Equal(t, 60, s.FPS)
	assert.Equal(t, int64(0), s.Seed)
	assert.Equal(t, "~/.pixeldash/scores.db", s.DBPath)
	assert.Equal(t, "", s.ConfigPath)
	assert.Equal(t, "", s.Difficulty)
	assert.False(t, s.Mute)
	assert.Equal(t, ":23234", s.SSHAddr)
	assert.Equal(t, 30*time.Minute, s.IdleTimeout)
	assert.Equal(t, "", s.APIKey)
	assert.Equal(t, "gemini-2.5-flash", s.Model)
	assert.Equal(t, 8*time.Second, s.CommentTimeout)
}

func TestLoad_WithSettingsFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	clearEnv(t)

	dir := t.TempDir()
	cfg := `
fps: 30
difficulty: hard
commentary:
  model: gemini-test
  timeout: 2s
ssh:
  addr: ":2222"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte(cfg), 0o644))

	require.NoError(t, Load(dir))
	s := Current()

	assert.Equal(t, 30, s.FPS)
	assert.Equal(t, "hard", s.Difficulty)
	assert.Equal(t, "gemini-test", s.Model)
	assert.Equal(t, 2*time.Second, s.CommentTimeout)
	assert.Equal(t, ":2222", s.SSHAddr)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("fps: [unclosed"), 0o644))

	err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Cleanup(viper.Reset)
	clearEnv(t)

	t.Setenv("PIXELDASH_FPS", "45")
	t.Setenv("PIXELDASH_SSH_ADDR", ":9999")

	require.NoError(t, Load(t.TempDir()))
	s := Current()

	assert.Equal(t, 45, s.FPS)
	assert.Equal(t, ":9999", s.SSHAddr)
}

func TestLoad_APIKeySources(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"legacy", map[string]string{"API_KEY": "legacy"}, "legacy"},
		{"gemini", map[string]string{"GEMINI_API_KEY": "gem", "API_KEY": "legacy"}, "gem"},
		{"prefixed", map[string]string{"PIXELDASH_COMMENTARY_API_KEY": "own", "GEMINI_API_KEY": "gem"}, "own"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			require.NoError(t, Load(t.TempDir()))
			assert.Equal(t, tt.want, Current().APIKey)
		})
	}
}

func TestBindFlags(t *testing.T) {
	t.Cleanup(viper.Reset)
	clearEnv(t)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("fps", 60, "")
	fs.String("log-level", "info", "")
	fs.Bool("mute", false, "")
	fs.String("unrelated", "", "")

	require.NoError(t, Load(t.TempDir()))
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--fps", "120", "--mute", "--log-level", "debug"}))

	s := Current()
	assert.Equal(t, 120, s.FPS)
	assert.True(t, s.Mute)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestBindFlags_UnsetFlagKeepsFileValue(t *testing.T) {
	t.Cleanup(viper.Reset)
	clearEnv(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "settings.yaml"), []byte("fps: 30\n"), 0o644))

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("fps", 60, "")

	require.NoError(t, Load(dir))
	require.NoError(t, BindFlags(fs))
	require.NoError(t, fs.Parse(nil))

	assert.Equal(t, 30, Current().FPS)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "x.db"), ExpandHome("~/x.db"))
	assert.Equal(t, "/abs/x.db", ExpandHome("/abs/x.db"))
	assert.Equal(t, "", ExpandHome(""))
}
