package template

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// Spec names a registered loader and the constructor arguments to
// build it with. A spec without arguments may refer to a
// function-style loader; a spec with arguments must refer to a
// Constructor.
type Spec struct {
	Loader string   `yaml:"loader" json:"loader"`
	Args   []string `yaml:"args" json:"args"`
}

// Config is the serializable configuration surface: the ordered
// loader chain, default search directories, and optional placeholder
// tag overrides for compilation.
type Config struct {
	Loaders []Spec `yaml:"loaders" json:"loaders"`
	// Dirs is the search-directory override applied when a
	// resolution call passes none. Loaders constructed with their
	// own directories only consult those when no default is
	// configured.
	Dirs     []string `yaml:"dirs" json:"dirs"`
	StartTag string   `yaml:"start_tag" json:"start_tag"`
	EndTag   string   `yaml:"end_tag" json:"end_tag"`
}

// LoadConfig reads a configuration file. The extension selects the
// format: .json, or .yaml/.yml.
func LoadConfig(path string) (Config, error) {
	const errCtx = "loading template config"

	raw, err := os.ReadFile(path) //nolint:gosec // path from caller config
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	var cfg Config

	switch ext := filepath.Ext(path); ext {
	case ".json":
		if err := json.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf(
				"%s: decoding json: %w", errCtx, err,
			)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf(
				"%s: decoding yaml: %w", errCtx, err,
			)
		}
	default:
		return Config{}, fmt.Errorf(
			"%s: unsupported config format %q", errCtx, ext,
		)
	}

	return cfg, nil
}

// Configure installs cfg as the process-wide configuration and
// discards any memoized loader chain. The chain itself is rebuilt
// lazily on the next resolution.
func Configure(cfg Config) {
	registryMu.Lock()
	defer registryMu.Unlock()

	specs = cfg.Loaders
	defaultDirs = cfg.Dirs
	startTag = cfg.StartTag
	endTag = cfg.EndTag
	active = nil
	activeSet = false
}
