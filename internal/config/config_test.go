package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config search paths at an empty temp dir so a real
// user config does not leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":8080", cfg.Serve.Addr)
	assert.Equal(t, []string{"*"}, cfg.Serve.CORSOrigins)
	assert.Equal(t, 15*time.Second, cfg.Serve.RequestTimeout)
	assert.Equal(t, "anthropic", cfg.LLM.Provider)
	assert.Equal(t, 3, cfg.LLM.Retry.MaxAttempts)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	err := os.WriteFile(path, []byte(`
env: production
bank_path: /tmp/bank.yaml
log:
  level: debug
serve:
  addr: 127.0.0.1:9000
llm:
  provider: openai
  openai:
    model: gpt-4o
`), 0o644)
	require.NoError(t, err)

	t.Setenv("QUIZBOOK_SERVE_ADDR", ":7000")
	t.Setenv("QUIZBOOK_LLM_OPENAI_API_KEY", "sk-test")
	t.Setenv("QUIZBOOK_DB", "/tmp/q.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "/tmp/bank.yaml", cfg.BankPath)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, ":7000", cfg.Serve.Addr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o", cfg.LLM.OpenAI.Model)
	assert.Equal(t, "sk-test", cfg.LLM.OpenAI.APIKey)
	assert.Equal(t, "/tmp/q.db", cfg.DBPath)
}

func TestLoad_SearchPath(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "quizbook"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quizbook", "config.yaml"), []byte("env: development\n"), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
}

func TestLoad_ExplicitMissingFile(t *testing.T) {
	dir := isolate(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Malformed(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("env: [unclosed\n"), 0o644))

	_, err := Load("")
	assert.Error(t, err)
}

func TestStateDir(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/var/state")
	dir, err := StateDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/var/state", "quizbook"), dir)
}
