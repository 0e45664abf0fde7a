package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "title", cfg.Analysis.Source)
	assert.Equal(t, "hangul", cfg.Analysis.Script)
	assert.Equal(t, 50, cfg.Analysis.TopN)
	assert.Equal(t, int64(1), cfg.Analysis.MinEdgeWeight)
	assert.True(t, cfg.Analysis.RestrictEdgesToTopTerms)
	assert.Empty(t, cfg.Stopwords.Path)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "issuefinder.yaml", `
stopwords:
  path: korean_stopwords.txt
  extra: ["폭염 특보"]
analysis:
  source: title+description
  top_n: 30
  workers: 4
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "korean_stopwords.txt", cfg.Stopwords.Path)
	assert.Equal(t, []string{"폭염 특보"}, cfg.Stopwords.Extra)
	assert.Equal(t, "title+description", cfg.Analysis.Source)
	assert.Equal(t, 30, cfg.Analysis.TopN)
	assert.Equal(t, 4, cfg.Analysis.Workers)
	// Unset fields keep their defaults
	assert.Equal(t, "hangul", cfg.Analysis.Script)
	assert.Equal(t, int64(1), cfg.Analysis.MinEdgeWeight)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "issuefinder.toml", `
[stopwords]
path = "stop.txt"
allow_extension_only = true

[analysis]
script = "letters"
min_edge_weight = 3
restrict_edges_to_top_terms = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "stop.txt", cfg.Stopwords.Path)
	assert.True(t, cfg.Stopwords.AllowExtensionOnly)
	assert.Equal(t, "letters", cfg.Analysis.Script)
	assert.Equal(t, int64(3), cfg.Analysis.MinEdgeWeight)
	assert.False(t, cfg.Analysis.RestrictEdgesToTopTerms)
	assert.Equal(t, 50, cfg.Analysis.TopN)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(writeFile(t, "issuefinder.json", "{}"))
	assert.ErrorIs(t, err, internalerr.ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "broken.yaml", "analysis: [unclosed"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad source", func(c *Config) { c.Analysis.Source = "body" }},
		{"bad script", func(c *Config) { c.Analysis.Script = "latin" }},
		{"negative top_n", func(c *Config) { c.Analysis.TopN = -1 }},
		{"negative min_edge_weight", func(c *Config) { c.Analysis.MinEdgeWeight = -2 }},
		{"negative min_token_length", func(c *Config) { c.Analysis.MinTokenLength = -1 }},
		{"negative workers", func(c *Config) { c.Analysis.Workers = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), internalerr.ErrInvalidConfig)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("ISSUEFINDER_STOPWORDS", "/data/stop.txt")
	t.Setenv("ISSUEFINDER_SOURCE", "title+description")
	t.Setenv("ISSUEFINDER_TOP_N", "25")
	t.Setenv("ISSUEFINDER_MIN_EDGE_WEIGHT", "2")
	t.Setenv("ISSUEFINDER_WORKERS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnv()

	assert.Equal(t, "/data/stop.txt", cfg.Stopwords.Path)
	assert.Equal(t, "title+description", cfg.Analysis.Source)
	assert.Equal(t, 25, cfg.Analysis.TopN)
	assert.Equal(t, int64(2), cfg.Analysis.MinEdgeWeight)
	assert.Equal(t, 1, cfg.Analysis.Workers, "unparseable values are ignored")
}
