package awin

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryMapResolve(t *testing.T) {
	m := &CategoryMap{
		Categories: map[string]string{"Dresses": "Clothing > Dresses", "Bags": "Accessories > Bags"},
		Empty:      "Clothing",
		Fallback:   "Clothing > Other",
	}

	tests := map[string]string{
		"Dresses":     "Clothing > Dresses",
		"  Dresses\t": "Clothing > Dresses",
		"Bags":        "Accessories > Bags",
		"dresses":     "Clothing > Other",
		"Hats":        "Clothing > Other",
		"":            "Clothing",
		"   ":         "Clothing",
	}
	for in, want := range tests {
		assert.Equal(t, want, m.Resolve(in), "%q", in)
	}
}

func TestParseCategoryMapEmptyDefaultsToFallback(t *testing.T) {
	m, err := ParseCategoryMap([]byte(`
fallback: "Misc"
categories:
  Shoes: "Footwear"
`))
	require.NoError(t, err)
	assert.Equal(t, "Misc", m.Empty)
	assert.Equal(t, "Misc", m.Resolve(""))
	assert.Equal(t, "Misc", m.Resolve("Boats"))
	assert.Equal(t, "Footwear", m.Resolve("Shoes"))
}

func TestParseCategoryMapErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  error
	}{
		{"no fallback", `categories: {Shoes: Footwear}`, ErrNoFallback},
		{"blank path", "fallback: Misc\ncategories: {Shoes: \"  \"}", ErrEmptyCategory},
		{"untrimmed label", "fallback: Misc\ncategories: {\" Shoes\": Footwear}", ErrUntrimmedLabel},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCategoryMap([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), err.Error())
		})
	}

	_, err := ParseCategoryMap([]byte("fallback: [unclosed"))
	assert.Error(t, err)
}

func TestDefaultCategoryMap(t *testing.T) {
	m := DefaultCategoryMap()

	require.NoError(t, m.Validate())
	assert.NotEmpty(t, m.Resolve(""))
	assert.NotEmpty(t, m.Resolve("definitely not a category"))
	assert.NotEqual(t, m.Fallback, m.Resolve("Dresses"))
}

func TestLoadCategoryMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.yaml")
	require.NoError(t, os.WriteFile(path, []byte("empty: E\nfallback: F\ncategories:\n  Tops: T\n"), 0o644))

	m, err := LoadCategoryMap(path)
	require.NoError(t, err)
	assert.Equal(t, "T", m.Resolve("Tops"))
	assert.Equal(t, "E", m.Resolve(""))
	assert.Equal(t, "F", m.Resolve("Other"))

	m, err = LoadCategoryMap("")
	require.NoError(t, err)
	assert.Equal(t, DefaultCategoryMap(), m)

	_, err = LoadCategoryMap(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
