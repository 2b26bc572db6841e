// Package config provides configuration management for go-pagecatalog.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

var AppVersion = "-unset-" // will be set at build time

const (
	// Default web settings
	DefaultListenPort = 3000
	DefaultPagesDir   = "pages"
	DefaultStaticDir  = "static"
	DefaultLocale     = "ru"

	MinListenPort = 1024
	MaxListenPort = 65535
)

// MainConfig holds the main configuration for go-pagecatalog
type MainConfig struct {
	// Web interface settings
	Web WebConfig `json:"web" toml:"web" yaml:"web"`

	AppVersion string `json:"-" toml:"-" yaml:"-"` // Application version, set at build time
}

// WebConfig holds web interface configuration
type WebConfig struct {
	ListenPort int    `json:"listen_port" toml:"listen_port" yaml:"listen_port"`
	SSL        bool   `json:"ssl" toml:"ssl" yaml:"ssl"`
	CertFile   string `json:"cert_file,omitempty" toml:"cert_file" yaml:"cert_file,omitempty"`
	KeyFile    string `json:"key_file,omitempty" toml:"key_file" yaml:"key_file,omitempty"`
	PagesDir   string `json:"pages_dir" toml:"pages_dir" yaml:"pages_dir"`    // scan root, served under /pages
	StaticDir  string `json:"static_dir" toml:"static_dir" yaml:"static_dir"` // served under /static
	Locale     string `json:"locale" toml:"locale" yaml:"locale"`             // UI language, e.g. "ru" or "en"
	ApacheLog  bool   `json:"apache_log" toml:"apache_log" yaml:"apache_log"` // log requests in Apache combined format
	Debug      bool   `json:"debug" toml:"debug" yaml:"debug"`
}

// NewDefaultConfig returns a configuration with sensible defaults
func NewDefaultConfig() *MainConfig {
	maincfg := &MainConfig{
		AppVersion: AppVersion,
		Web: WebConfig{
			ListenPort: DefaultListenPort,
			SSL:        false,
			PagesDir:   DefaultPagesDir,
			StaticDir:  DefaultStaticDir,
			Locale:     DefaultLocale,
		},
	}
	return maincfg
}

// Validate checks the web configuration and fills in missing defaults
func (c *WebConfig) Validate() error {
	if c.ListenPort < MinListenPort || c.ListenPort > MaxListenPort {
		return fmt.Errorf("invalid port number: %d (must be between %d and %d)", c.ListenPort, MinListenPort, MaxListenPort)
	}
	if c.SSL && (c.CertFile == "" || c.KeyFile == "") {
		return fmt.Errorf("SSL enabled but cert_file or key_file not specified")
	}
	if c.PagesDir == "" {
		c.PagesDir = DefaultPagesDir
	}
	if c.StaticDir == "" {
		c.StaticDir = DefaultStaticDir
	}
	if c.Locale == "" {
		c.Locale = DefaultLocale
	}
	return nil
}

// EnsurePagesDir creates the pages directory if it does not exist yet.
// It reports whether the directory had to be created.
func (c *WebConfig) EnsurePagesDir() (bool, error) {
	info, err := os.Stat(c.PagesDir)
	switch {
	case err == nil && info.IsDir():
		return false, nil
	case err == nil:
		return false, fmt.Errorf("pages path %s exists but is not a directory", c.PagesDir)
	case !os.IsNotExist(err):
		return false, fmt.Errorf("stat pages dir %s: %w", c.PagesDir, err)
	}
	if err := os.MkdirAll(c.PagesDir, 0755); err != nil {
		return false, fmt.Errorf("create pages dir %s: %w", c.PagesDir, err)
	}
	return true, nil
}

// AbsPagesDir returns the absolute path of the pages directory for display
func (c *WebConfig) AbsPagesDir() string {
	abs, err := filepath.Abs(c.PagesDir)
	if err != nil {
		log.Printf("[CONFIG]: cannot resolve %s: %v", c.PagesDir, err)
		return c.PagesDir
	}
	return abs
}
