package config

import "fmt"

const (
	// SectionIDLLM is the identifier for the LLM settings section
	SectionIDLLM = "llm"
)

// LLMSection holds completion service settings from the config file. The
// API key is deliberately absent: it only comes from the environment.
type LLMSection struct {
	Model              string
	BaseURL            string
	SummarizationModel string // optional; if empty, summarize uses Model
}

// NewLLMSection creates an empty LLM section.
func NewLLMSection() *LLMSection {
	return &LLMSection{}
}

// SetData updates the section from stored data. Unknown keys are ignored;
// known keys with a non-string value are an error.
func (s *LLMSection) SetData(data map[string]interface{}) error {
	fields := map[string]*string{
		"model":               &s.Model,
		"base_url":            &s.BaseURL,
		"summarization_model": &s.SummarizationModel,
	}

	for key, target := range fields {
		value, ok := data[key]
		if !ok || value == nil {
			continue
		}
		str, ok := value.(string)
		if !ok {
			return fmt.Errorf("invalid value type for %s: expected string, got %T", key, value)
		}
		*target = str
	}
	return nil
}
