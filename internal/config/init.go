package config

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed scaffold
var scaffold embed.FS

// ErrExists is returned by Init when the configuration file is already
// present and force is not set.
var ErrExists = errors.New("configuration file already exists")

// scaffoldFiles maps embedded scaffold files to their place in a new site.
var scaffoldFiles = []struct {
	source string
	target string
}{
	{"scaffold/post-template.html", PostTemplateFile},
	{"scaffold/index.template.html", IndexTemplateFile},
	{"scaffold/hello-world.md", ContentDir + "/hello-world.md"},
}

// ExampleSite is the configuration written by Init.
func ExampleSite() Site {
	return Site{
		Title:         "My Retro Blog",
		BaseURL:       "https://example.com",
		Author:        "Site Owner",
		Description:   "Notes from the terminal.",
		Language:      DefaultLanguage,
		PostsPerIndex: DefaultPostsPerIndex,

		// The scaffolded index template uses the site tokens.
		IndexSiteTokens: true,
	}
}

// Init scaffolds a new site: the configuration file, both templates, and a
// sample post. Existing files are kept unless force is set. It returns the
// paths that were written.
func Init(layout Layout, force bool) ([]string, error) {
	configPath := layout.ConfigPath()
	if _, err := os.Stat(configPath); err == nil && !force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, configPath)
	}

	data, err := marshalSite(configPath, ExampleSite())
	if err != nil {
		return nil, err
	}
	if err := writeFile(configPath, data); err != nil {
		return nil, err
	}
	written := []string{configPath}

	for _, f := range scaffoldFiles {
		target := layout.join(f.target)
		if _, err := os.Stat(target); err == nil && !force {
			continue
		}
		content, err := scaffold.ReadFile(f.source)
		if err != nil {
			return written, fmt.Errorf("read scaffold %s: %w", f.source, err)
		}
		if err := writeFile(target, content); err != nil {
			return written, err
		}
		written = append(written, target)
	}

	return written, nil
}

func marshalSite(path string, site Site) ([]byte, error) {
	if isYAML(path) {
		data, err := yaml.Marshal(&site)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal config: %w", err)
		}
		return data, nil
	}
	data, err := json.MarshalIndent(&site, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return append(data, '\n'), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	// #nosec G306 - generated site sources are meant to be world-readable
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
