// Package config resolves the settings a brainstorm session starts with.
//
// Precedence: environment variables > config file > defaults. The API key
// is only read from the environment (after an optional .env file is
// loaded) and its absence is a startup error.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

const (
	EnvAPIKey     = "OPENAI_API_KEY"
	EnvBaseURL    = "OPENAI_BASE_URL"
	EnvModel      = "BRAINSTORM_MODEL"
	EnvConfigPath = "BRAINSTORM_CONFIG"

	// DefaultModel is used when neither environment nor file name a model.
	DefaultModel = "gpt-4o-mini"
)

// ErrMissingAPIKey is returned when OPENAI_API_KEY is not set.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY environment variable is not set. Please set it in your environment or .env file")

// Settings is the resolved startup configuration.
type Settings struct {
	APIKey             string
	BaseURL            string
	Model              string
	SummarizationModel string
	ConfigPath         string
}

// Load reads dotEnvPath (if it exists) into the environment, then the
// config file named by BRAINSTORM_CONFIG (default ~/.brainstorm/config.json),
// and resolves the settings. Variables already set in the environment are
// not overridden by the .env file.
func Load(dotEnvPath string) (*Settings, error) {
	if err := loadDotEnv(dotEnvPath); err != nil {
		return nil, err
	}

	store, err := NewFileStore(os.Getenv(EnvConfigPath))
	if err != nil {
		return nil, err
	}

	return Resolve(store)
}

// Resolve builds Settings from the environment and a config store.
func Resolve(store Store) (*Settings, error) {
	section := NewLLMSection()
	data, err := store.GetSection(SectionIDLLM)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s section: %w", SectionIDLLM, err)
	}
	if err := section.SetData(data); err != nil {
		return nil, fmt.Errorf("invalid %s section: %w", SectionIDLLM, err)
	}

	s := &Settings{
		APIKey:             os.Getenv(EnvAPIKey),
		BaseURL:            firstNonEmpty(os.Getenv(EnvBaseURL), section.BaseURL),
		Model:              firstNonEmpty(os.Getenv(EnvModel), section.Model, DefaultModel),
		SummarizationModel: section.SummarizationModel,
	}
	if fs, ok := store.(*FileStore); ok {
		s.ConfigPath = fs.Path()
	}

	if s.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return s, nil
}

func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
