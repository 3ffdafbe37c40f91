package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/davidoh-dev/licstamp/internal/config"
	"github.com/davidoh-dev/licstamp/internal/engine"
	"github.com/davidoh-dev/licstamp/internal/fsops"
)

// newEngine creates an engine rooted at the current directory, with the
// configuration resolved from --config or the tree's .licstamp.yaml.
func newEngine() (*engine.Engine, *config.Config, string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, "", fmt.Errorf("failed to get current directory: %w", err)
	}

	path := cfgPath
	if path == "" {
		path = filepath.Join(cwd, config.DefaultFileName)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, "", err
	}

	source, err := cfg.Source(filepath.Dir(path))
	if err != nil {
		return nil, nil, "", err
	}

	eng := engine.New(fsops.NewRealFS(), source.HeaderFor, cfg.Exclude)
	return eng, cfg, cwd, nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
