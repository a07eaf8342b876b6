package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied after decoding.
const (
	DefaultPostsPerIndex = 3
	DefaultLanguage      = "en"
)

// ErrNotFound is returned by Load when the configuration file does not exist.
var ErrNotFound = errors.New("configuration file not found")

// Site is the site-wide configuration. It is loaded once per build and passed
// explicitly to every component that renders output.
type Site struct {
	Title         string `json:"title" yaml:"title"`
	BaseURL       string `json:"baseUrl" yaml:"baseUrl"`
	Author        string `json:"author" yaml:"author"`
	Description   string `json:"description" yaml:"description"`
	Language      string `json:"language" yaml:"language"`
	PostsPerIndex int    `json:"postsPerIndex" yaml:"postsPerIndex"`

	// IndexSiteTokens also fills {{SITE_TITLE}}, {{BASE_URL}}, {{AUTHOR}} and
	// {{DESCRIPTION}} in the index template. Off unless set.
	IndexSiteTokens bool `json:"indexSiteTokens,omitempty" yaml:"indexSiteTokens,omitempty"`
}

// Load loads the site configuration from configPath.
//
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
// A .env file next to the configuration is loaded first and ${VAR} references
// in the file are expanded from the environment.
func Load(configPath string) (*Site, error) {
	if err := loadEnvFile(filepath.Dir(configPath)); err != nil {
		return nil, err
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, configPath)
	}

	// #nosec G304 - path comes from the CLI
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	expanded := expandEnv(data)

	var site Site
	if isYAML(configPath) {
		if err := yaml.Unmarshal(expanded, &site); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	} else {
		if err := json.Unmarshal(expanded, &site); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config: %w", err)
		}
	}

	site.applyDefaults()
	return &site, nil
}

func (s *Site) applyDefaults() {
	if s.PostsPerIndex <= 0 {
		s.PostsPerIndex = DefaultPostsPerIndex
	}
	if s.Language == "" {
		s.Language = DefaultLanguage
	}
	// Post URLs are built as BaseURL + "/posts/...".
	s.BaseURL = strings.TrimRight(s.BaseURL, "/")
}

var envRef = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv replaces ${VAR} references with environment values. Bare $VAR is
// left alone so prices and shell snippets in descriptions survive.
func expandEnv(data []byte) []byte {
	return envRef.ReplaceAllFunc(data, func(ref []byte) []byte {
		return []byte(os.Getenv(string(ref[2 : len(ref)-1])))
	})
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
