package content

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var defaultDocument []byte

var (
	ErrInvalidLevel    = errors.New("skill level out of range")
	ErrDuplicateID     = errors.New("duplicate id")
	ErrUnknownCategory = errors.New("unknown project category")
)

// Default parses the document compiled into the binary.
func Default() (*Content, error) {
	return Parse(defaultDocument)
}

// LoadFile parses a content document from disk. An empty path yields the
// compiled-in document.
func LoadFile(path string) (*Content, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a YAML content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the pages rely on.
func (c *Content) Validate() error {
	for _, cat := range c.Skills {
		for _, s := range cat.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("skill %q level %d: %w", s.Name, s.Level, ErrInvalidLevel)
			}
		}
	}

	categories := make(map[string]bool, len(c.Categories))
	for _, cat := range c.Categories {
		categories[cat.ID] = true
	}

	seen := make(map[int]bool, len(c.Projects))
	for _, p := range c.Projects {
		if seen[p.ID] {
			return fmt.Errorf("project %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
		if p.Category == CategoryAll || !categories[p.Category] {
			return fmt.Errorf("project %d category %q: %w", p.ID, p.Category, ErrUnknownCategory)
		}
	}

	seen = make(map[int]bool, len(c.Services))
	for _, s := range c.Services {
		if seen[s.ID] {
			return fmt.Errorf("service %d: %w", s.ID, ErrDuplicateID)
		}
		seen[s.ID] = true
	}
	return nil
}
