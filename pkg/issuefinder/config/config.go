package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/cognicore/issuefinder/pkg/issuefinder"
	"github.com/cognicore/issuefinder/pkg/issuefinder/cooccur"
	"github.com/cognicore/issuefinder/pkg/issuefinder/ingest"
	"github.com/cognicore/issuefinder/pkg/issuefinder/internalerr"
)

// Config is the full analysis configuration
type Config struct {
	Stopwords StopwordsConfig `yaml:"stopwords" toml:"stopwords"`
	Analysis  AnalysisConfig  `yaml:"analysis" toml:"analysis"`
}

// StopwordsConfig locates the base stopword list
type StopwordsConfig struct {
	Path string `yaml:"path" toml:"path"`
	// Extra phrases appended after stoplist.DomainExtension.
	Extra []string `yaml:"extra" toml:"extra"`
	// SkipDomainExtension leaves stoplist.DomainExtension out.
	SkipDomainExtension bool `yaml:"skip_domain_extension" toml:"skip_domain_extension"`
	// AllowExtensionOnly falls back to the extension phrases when the base
	// list is missing instead of failing.
	AllowExtensionOnly bool `yaml:"allow_extension_only" toml:"allow_extension_only"`
}

// AnalysisConfig holds the pipeline and aggregation policy
type AnalysisConfig struct {
	Source                  string  `yaml:"source" toml:"source"`
	Script                  string  `yaml:"script" toml:"script"`
	TopN                    int     `yaml:"top_n" toml:"top_n"`
	MinEdgeWeight           int64   `yaml:"min_edge_weight" toml:"min_edge_weight"`
	MinTokenLength          int     `yaml:"min_token_length" toml:"min_token_length"`
	RestrictEdgesToTopTerms bool    `yaml:"restrict_edges_to_top_terms" toml:"restrict_edges_to_top_terms"`
	Workers                 int     `yaml:"workers" toml:"workers"`
	Epsilon                 float64 `yaml:"epsilon" toml:"epsilon"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Source:                  string(ingest.SourceTitle),
			Script:                  string(ingest.ScriptHangul),
			TopN:                    issuefinder.DefaultTopN,
			MinEdgeWeight:           cooccur.DefaultMinWeight,
			MinTokenLength:          ingest.DefaultMinTokenLength,
			RestrictEdgesToTopTerms: true,
			Workers:                 1,
			Epsilon:                 cooccur.DefaultEpsilon,
		},
	}
}

// Load reads a YAML or TOML config file over the defaults. The format is
// chosen by file extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("config %s: %w", path, internalerr.ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from ISSUEFINDER_* environment variables,
// reading a .env file first when present. Unparseable values are ignored.
func (c *Config) ApplyEnv() {
	_ = godotenv.Load()

	c.Stopwords.Path = getEnv("ISSUEFINDER_STOPWORDS", c.Stopwords.Path)
	c.Analysis.Source = getEnv("ISSUEFINDER_SOURCE", c.Analysis.Source)
	c.Analysis.Script = getEnv("ISSUEFINDER_SCRIPT", c.Analysis.Script)
	c.Analysis.TopN = getEnvInt("ISSUEFINDER_TOP_N", c.Analysis.TopN)
	c.Analysis.MinEdgeWeight = int64(getEnvInt("ISSUEFINDER_MIN_EDGE_WEIGHT", int(c.Analysis.MinEdgeWeight)))
	c.Analysis.MinTokenLength = getEnvInt("ISSUEFINDER_MIN_TOKEN_LENGTH", c.Analysis.MinTokenLength)
	c.Analysis.Workers = getEnvInt("ISSUEFINDER_WORKERS", c.Analysis.Workers)
}

// Validate checks policy values
func (c *Config) Validate() error {
	if _, err := ingest.ParseSource(c.Analysis.Source); err != nil {
		return err
	}
	if _, err := ingest.ParseScript(c.Analysis.Script); err != nil {
		return err
	}
	if c.Analysis.TopN < 0 {
		return fmt.Errorf("top_n %d: %w", c.Analysis.TopN, internalerr.ErrInvalidConfig)
	}
	if c.Analysis.MinEdgeWeight < 0 {
		return fmt.Errorf("min_edge_weight %d: %w", c.Analysis.MinEdgeWeight, internalerr.ErrInvalidConfig)
	}
	if c.Analysis.MinTokenLength < 0 {
		return fmt.Errorf("min_token_length %d: %w", c.Analysis.MinTokenLength, internalerr.ErrInvalidConfig)
	}
	if c.Analysis.Workers < 0 {
		return fmt.Errorf("workers %d: %w", c.Analysis.Workers, internalerr.ErrInvalidConfig)
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
