// Package placement saves and restores window positions across runs.
package placement

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads a saved placement from disk. Missing files return false.
func Load(path string) (Placement, bool, error) {
	var p Placement
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, false, nil
		}
		return p, false, err
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Placement{}, false, err
	}
	return p, true, nil
}

// Save writes a placement to disk, creating parent directories as needed.
func Save(path string, p Placement) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
