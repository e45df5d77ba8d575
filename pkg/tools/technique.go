package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// SuggestTechnique picks a technique from the built-in catalog for the
// user's stated difficulty. It never fails.
func SuggestTechnique(topic string) string {
	return SuggestTechniqueForLevel(topic, 0)
}

// SuggestTechniqueForLevel is SuggestTechnique with a self-reported stuck
// level (1-5) used when no keyword matches. Other levels are ignored.
func SuggestTechniqueForLevel(topic string, stuckLevel int) string {
	return FormatSuggestion(topic, DefaultCatalog().Suggest(topic, stuckLevel))
}

// FormatSuggestion renders a suggestion for topic.
func FormatSuggestion(topic string, t Technique) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return t.String()
	}
	return fmt.Sprintf("For your topic '%s', you might try: %s", topic, t)
}

// SuggestTechniqueTool exposes technique suggestions to the model.
type SuggestTechniqueTool struct {
	catalog *Catalog
}

// NewSuggestTechniqueTool creates the tool over the built-in catalog.
func NewSuggestTechniqueTool() *SuggestTechniqueTool {
	return &SuggestTechniqueTool{catalog: DefaultCatalog()}
}

func (t *SuggestTechniqueTool) Capability() Capability {
	return CapabilitySuggestTechnique
}

func (t *SuggestTechniqueTool) Description() string {
	return "Suggest a specific brainstorming technique when the user seems stuck. Available techniques: " +
		strings.Join(t.catalog.Names(), ", ") + "."
}

func (t *SuggestTechniqueTool) Schema() map[string]interface{} {
	return BaseToolSchema(map[string]interface{}{
		"topic": map[string]interface{}{
			"type":        "string",
			"description": "The topic being brainstormed or the difficulty the user describes",
		},
		"stuck_level": map[string]interface{}{
			"type":        "integer",
			"minimum":     MinStuckLevel,
			"maximum":     MaxStuckLevel,
			"description": "How stuck the user feels, from 1 (a little) to 5 (completely stuck)",
		},
	}, []string{"topic"})
}

// Execute never fails on content: a missing topic falls back to the
// default technique. Only undecodable arguments are an error.
func (t *SuggestTechniqueTool) Execute(_ context.Context, arguments json.RawMessage) (string, error) {
	var args struct {
		Topic      string `json:"topic"`
		StuckLevel int    `json:"stuck_level"`
	}
	if err := decodeArguments(arguments, &args); err != nil {
		return "", err
	}
	return FormatSuggestion(args.Topic, t.catalog.Suggest(args.Topic, args.StuckLevel)), nil
}
