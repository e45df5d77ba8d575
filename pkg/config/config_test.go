package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/entrhq/brainstorm/pkg/llm/openai"
	"github.com/entrhq/brainstorm/pkg/llm/tokenizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every variable config reads for the duration of a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIKey, EnvBaseURL, EnvModel, EnvConfigPath} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoadMissingAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "none.json"))

	_, err := Load("")
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "sk-env")
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "none.json"))

	s, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "sk-env", s.APIKey)
	assert.Equal(t, DefaultModel, s.Model)
	assert.Empty(t, s.BaseURL)
	assert.Empty(t, s.SummarizationModel)
}

func TestLoadReadsDotEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "none.json"))

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("OPENAI_API_KEY=sk-dotenv\nBRAINSTORM_MODEL=gpt-4o\n"), 0600))

	s, err := Load(envPath)
	require.NoError(t, err)
	assert.Equal(t, "sk-dotenv", s.APIKey)
	assert.Equal(t, "gpt-4o", s.Model)
}

func TestLoadDotEnvDoesNotOverrideEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "sk-real")
	t.Setenv(EnvConfigPath, filepath.Join(t.TempDir(), "none.json"))

	envPath := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envPath, []byte("OPENAI_API_KEY=sk-dotenv\n"), 0600))

	s, err := Load(envPath)
	require.NoError(t, err)
	assert.Equal(t, "sk-real", s.APIKey)
}

func TestLoadPrecedence(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `{"version":"1.0","sections":{"llm":{
		"model":"file-model","base_url":"http://file/v1","summarization_model":"small-model"}}}`)
	t.Setenv(EnvConfigPath, path)
	t.Setenv(EnvAPIKey, "sk-env")

	s, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "file-model", s.Model)
	assert.Equal(t, "http://file/v1", s.BaseURL)
	assert.Equal(t, "small-model", s.SummarizationModel)
	assert.Equal(t, path, s.ConfigPath)

	t.Setenv(EnvModel, "env-model")
	t.Setenv(EnvBaseURL, "http://env/v1")

	s, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "env-model", s.Model)
	assert.Equal(t, "http://env/v1", s.BaseURL)
}

func TestLoadInvalidSection(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAPIKey, "sk-env")
	t.Setenv(EnvConfigPath, writeConfig(t, `{"sections":{"llm":{"model":42}}}`))

	_, err := Load("")
	assert.Error(t, err)
}

func TestBuildProvider(t *testing.T) {
	s := &Settings{APIKey: "sk-test", Model: "gpt-4o", BaseURL: "http://localhost:9999/v1"}

	p, err := BuildProvider(s, openai.WithTokenizer(tokenizer.Estimate()))
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", p.GetModel())
	assert.Equal(t, "http://localhost:9999/v1", p.GetBaseURL())
}

func TestSummarizationProvider(t *testing.T) {
	s := &Settings{APIKey: "sk-test", Model: "gpt-4o", BaseURL: "http://localhost:9999/v1"}
	p, err := BuildProvider(s, openai.WithTokenizer(tokenizer.Estimate()))
	require.NoError(t, err)

	assert.Same(t, p, SummarizationProvider(s, p))

	s.SummarizationModel = "gpt-4o-mini"
	summarizer := SummarizationProvider(s, p)
	assert.Equal(t, "gpt-4o-mini", summarizer.GetModel())
	assert.Equal(t, "gpt-4o", p.GetModel())
}
