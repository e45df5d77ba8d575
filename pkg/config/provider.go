package config

import (
	"fmt"

	"github.com/entrhq/brainstorm/pkg/llm"
	"github.com/entrhq/brainstorm/pkg/llm/openai"
)

// BuildProvider creates the completion provider described by s.
func BuildProvider(s *Settings, opts ...openai.ProviderOption) (*openai.Provider, error) {
	providerOpts := []openai.ProviderOption{
		openai.WithModel(s.Model),
	}
	if s.BaseURL != "" {
		providerOpts = append(providerOpts, openai.WithBaseURL(s.BaseURL))
	}
	providerOpts = append(providerOpts, opts...)

	provider, err := openai.NewProvider(s.APIKey, providerOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM provider: %w", err)
	}
	return provider, nil
}

// SummarizationProvider returns the provider summarize should use: a
// clone targeting SummarizationModel when one is configured and the
// provider supports it, otherwise provider itself.
func SummarizationProvider(s *Settings, provider llm.Provider) llm.Provider {
	if s.SummarizationModel == "" || s.SummarizationModel == provider.GetModel() {
		return provider
	}
	if cloner, ok := provider.(llm.ModelCloner); ok {
		return cloner.CloneWithModel(s.SummarizationModel)
	}
	return provider
}
