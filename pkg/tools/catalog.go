package tools

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

const (
	// MinStuckLevel and MaxStuckLevel bound the self-reported stuck level.
	MinStuckLevel = 1
	MaxStuckLevel = 5
)

//go:embed techniques.yaml
var defaultCatalogYAML []byte

var defaultCatalog = mustLoadCatalog(defaultCatalogYAML)

// Technique is a named brainstorming method.
type Technique struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Level       int      `yaml:"level"`
	Default     bool     `yaml:"default"`
	Keywords    []string `yaml:"keywords"`

	matchers []glob.Glob
}

// String renders the technique as "Name: Description".
func (t Technique) String() string {
	return t.Name + ": " + t.Description
}

// Catalog is an ordered, read-only set of techniques with exactly one
// default entry.
type Catalog struct {
	techniques   []Technique
	defaultIndex int
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// LoadCatalog parses and validates a YAML catalog.
func LoadCatalog(data []byte) (*Catalog, error) {
	var doc struct {
		Techniques []Technique `yaml:"techniques"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse technique catalog: %w", err)
	}
	if len(doc.Techniques) == 0 {
		return nil, fmt.Errorf("technique catalog is empty")
	}

	c := &Catalog{defaultIndex: -1}
	names := make(map[string]bool, len(doc.Techniques))
	levels := make(map[int]string)

	for i, t := range doc.Techniques {
		if t.Name == "" {
			return nil, fmt.Errorf("technique %d has no name", i)
		}
		if names[strings.ToLower(t.Name)] {
			return nil, fmt.Errorf("duplicate technique %q", t.Name)
		}
		names[strings.ToLower(t.Name)] = true

		if t.Level != 0 {
			if t.Level < MinStuckLevel || t.Level > MaxStuckLevel {
				return nil, fmt.Errorf("technique %q: level %d out of range", t.Name, t.Level)
			}
			if other, ok := levels[t.Level]; ok {
				return nil, fmt.Errorf("techniques %q and %q share level %d", other, t.Name, t.Level)
			}
			levels[t.Level] = t.Name
		}

		if t.Default {
			if c.defaultIndex >= 0 {
				return nil, fmt.Errorf("more than one default technique")
			}
			c.defaultIndex = i
		}

		for _, pattern := range t.Keywords {
			g, err := glob.Compile(strings.ToLower(pattern))
			if err != nil {
				return nil, fmt.Errorf("technique %q: invalid keyword pattern %q: %w", t.Name, pattern, err)
			}
			t.matchers = append(t.matchers, g)
		}

		c.techniques = append(c.techniques, t)
	}

	if c.defaultIndex < 0 {
		return nil, fmt.Errorf("technique catalog has no default entry")
	}
	return c, nil
}

func mustLoadCatalog(data []byte) *Catalog {
	c, err := LoadCatalog(data)
	if err != nil {
		panic(err)
	}
	return c
}

// Names returns the technique names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.techniques))
	for i, t := range c.techniques {
		names[i] = t.Name
	}
	return names
}

// Default returns the fallback technique.
func (c *Catalog) Default() Technique {
	return c.techniques[c.defaultIndex]
}

// Match returns the first technique whose keywords match topic.
func (c *Catalog) Match(topic string) (Technique, bool) {
	topic = strings.ToLower(strings.TrimSpace(topic))
	if topic == "" {
		return Technique{}, false
	}
	for _, t := range c.techniques {
		for _, m := range t.matchers {
			if m.Match(topic) {
				return t, true
			}
		}
	}
	return Technique{}, false
}

// ByLevel returns the technique assigned to a stuck level.
func (c *Catalog) ByLevel(level int) (Technique, bool) {
	if level < MinStuckLevel || level > MaxStuckLevel {
		return Technique{}, false
	}
	for _, t := range c.techniques {
		if t.Level == level {
			return t, true
		}
	}
	return Technique{}, false
}

// Suggest picks a technique: keyword match first, then stuck level, then
// the default entry. It always returns a catalog entry.
func (c *Catalog) Suggest(topic string, stuckLevel int) Technique {
	if t, ok := c.Match(topic); ok {
		return t
	}
	if t, ok := c.ByLevel(stuckLevel); ok {
		return t
	}
	return c.Default()
}
