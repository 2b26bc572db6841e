package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LoadFile merges the configuration file at path into cfg.
// The format is chosen by extension: .toml, .yaml/.yml or .json.
// Keys missing from the file keep their current values.
func LoadFile(path string, cfg *MainConfig) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading config file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return fmt.Errorf("error parsing toml config %s: %w", path, err)
		}
		for _, key := range md.Undecoded() {
			log.Printf("[CONFIG]: ignoring unknown key %q in %s", key.String(), path)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("error parsing yaml config %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("error parsing json config %s: %w", path, err)
		}
	default:
		return fmt.Errorf("unsupported config file extension %q (want .toml, .yaml, .yml or .json)", ext)
	}

	log.Printf("[CONFIG]: loaded %s", path)
	return nil
}
