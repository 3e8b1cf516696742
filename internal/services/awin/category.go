package awin

import (
	_ "embed"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

//go:embed categories.yaml
var defaultCategoriesYAML []byte

// CategoryMap resolves Shopify product types to AWIN category paths.
type CategoryMap struct {
	Categories map[string]string `yaml:"categories"`
	// Empty is used when the product has no product type.
	Empty string `yaml:"empty"`
	// Fallback is used for any product type not listed in Categories.
	Fallback string `yaml:"fallback"`
}

// Category configuration errors.
var (
	ErrNoFallback     = errors.New("category map: fallback is required")
	ErrEmptyCategory  = errors.New("category map: mapped path must not be empty")
	ErrUntrimmedLabel = errors.New("category map: labels must not have surrounding whitespace")
)

// DefaultCategoryMap returns the table shipped with the binary.
func DefaultCategoryMap() *CategoryMap {
	m, err := ParseCategoryMap(defaultCategoriesYAML)
	if err != nil {
		panic(errors.Wrap(err, "embedded categories.yaml"))
	}
	return m
}

// LoadCategoryMap reads a YAML table from path. An empty path yields the default table.
func LoadCategoryMap(path string) (*CategoryMap, error) {
	if path == "" {
		return DefaultCategoryMap(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read category map %s", path)
	}
	m, err := ParseCategoryMap(data)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid category map %s", path)
	}
	return m, nil
}

// ParseCategoryMap decodes and validates a YAML category table. When empty is
// omitted it defaults to fallback.
func ParseCategoryMap(data []byte) (*CategoryMap, error) {
	var m CategoryMap
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(err, "failed to parse yaml")
	}
	if m.Empty == "" {
		m.Empty = m.Fallback
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that Resolve can never return an empty path.
func (m *CategoryMap) Validate() error {
	if strings.TrimSpace(m.Fallback) == "" || strings.TrimSpace(m.Empty) == "" {
		return ErrNoFallback
	}
	for label, path := range m.Categories {
		if strings.TrimSpace(path) == "" {
			return errors.Wrapf(ErrEmptyCategory, "label %q", label)
		}
		if label != strings.TrimSpace(label) {
			return errors.Wrapf(ErrUntrimmedLabel, "label %q", label)
		}
	}
	return nil
}

// Resolve maps a product type to its category path. Lookups are exact after
// trimming; anything unknown gets Fallback and the empty string gets Empty.
func (m *CategoryMap) Resolve(productType string) string {
	label := strings.TrimSpace(productType)
	if label == "" {
		return m.Empty
	}
	if path, ok := m.Categories[label]; ok {
		return path
	}
	return m.Fallback
}
