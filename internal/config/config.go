// Package config provides configuration loading and validation.
// Files may be YAML (.yaml, .yml) or TOML (.toml); ${VAR} references are
// expanded from the environment before parsing, and values not present in
// the file keep their built-in defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dmagro/chainfetch/internal/api"
	"github.com/dmagro/chainfetch/internal/output"
)

// DefaultPath is used when --config is not given. A missing file at this
// path is not an error.
const DefaultPath = "config/chainfetch.yaml"

// Config represents the root configuration structure.
type Config struct {
	API      api.Flavor `yaml:"api" toml:"api"`           // "explorer" or "simple"
	Explorer Endpoints  `yaml:"explorer" toml:"explorer"` // blockchain.info endpoints
	Simple   Endpoints  `yaml:"simple" toml:"simple"`     // api.blockchain.com endpoints
	Defaults Defaults   `yaml:"defaults" toml:"defaults"`
}

// Endpoints holds the URL bases an identifier is appended to.
type Endpoints struct {
	Block       string `yaml:"block" toml:"block"`
	Transaction string `yaml:"transaction" toml:"transaction"`
}

// Defaults contains request and display settings.
type Defaults struct {
	Timeout     time.Duration     `yaml:"timeout" toml:"timeout"`         // HTTP request timeout (e.g. "30s")
	Headers     map[string]string `yaml:"headers" toml:"headers"`         // static request headers
	TxLimit     int               `yaml:"tx_limit" toml:"tx_limit"`       // embedded transactions listed per block
	Concurrency int               `yaml:"concurrency" toml:"concurrency"` // parallel fetches for several identifiers
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		API: api.FlavorExplorer,
		Explorer: Endpoints{
			Block:       "https://blockchain.info/rawblock",
			Transaction: "https://blockchain.info/rawtx",
		},
		Simple: Endpoints{
			Block:       "https://api.blockchain.com/block",
			Transaction: "https://api.blockchain.com/transaction",
		},
		Defaults: Defaults{
			Timeout: 30 * time.Second,
			Headers: map[string]string{
				"User-Agent": api.DefaultUserAgent,
				"Accept":     "application/json",
			},
			TxLimit:     output.DefaultTxLimit,
			Concurrency: 4,
		},
	}
}

// Endpoints returns the endpoints of the active flavor.
func (c *Config) Endpoints() Endpoints {
	if c.API == api.FlavorSimple {
		return c.Simple
	}
	return c.Explorer
}

// ClientConfig builds the api.ClientConfig for the active flavor.
func (c *Config) ClientConfig() api.ClientConfig {
	ep := c.Endpoints()
	return api.ClientConfig{
		Flavor:         c.API,
		BlockURL:       ep.Block,
		TransactionURL: ep.Transaction,
		Timeout:        c.Defaults.Timeout,
		Headers:        c.Defaults.Headers,
	}
}

// Validate checks required fields. It may emit warnings (to stderr) for
// suspicious values but does not fail on warnings.
func (c *Config) Validate() error {
	if !c.API.Valid() {
		return fmt.Errorf("api must be %q or %q, got %q", api.FlavorExplorer, api.FlavorSimple, c.API)
	}
	if c.Defaults.Timeout <= 0 {
		return fmt.Errorf("defaults.timeout must be > 0")
	}
	if c.Defaults.TxLimit < 0 {
		return fmt.Errorf("defaults.tx_limit must be >= 0")
	}
	if c.Defaults.Concurrency <= 0 {
		return fmt.Errorf("defaults.concurrency must be > 0")
	}

	const low = 500 * time.Millisecond
	const high = 2 * time.Minute
	if d := c.Defaults.Timeout; d < low {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very low (%s); requests may fail under normal network jitter\n", d)
	} else if d > high {
		fmt.Fprintf(os.Stderr, "Warning: timeout is very high (%s); failures may take a long time to surface\n", d)
	}

	for _, ep := range []struct {
		name string
		raw  string
	}{
		{string(c.API) + ".block", c.Endpoints().Block},
		{string(c.API) + ".transaction", c.Endpoints().Transaction},
	} {
		if err := validateURL(ep.raw); err != nil {
			return fmt.Errorf("%s: %w", ep.name, err)
		}
	}

	return nil
}

func validateURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("url is required")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid url (missing scheme or host)")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid url scheme %q (expected http or https)", u.Scheme)
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("url must not carry a query or fragment")
	}
	return nil
}

// Load reads a configuration file on top of Default() and validates the result.
//
// Parameters:
//   - path: config file path. The extension picks the syntax: .yaml/.yml is
//     parsed with yaml.v3, .toml with BurntSushi/toml; anything else is rejected.
//
// Returns:
//   - *Config: defaults overlaid with every key the file sets. Maps such as
//     defaults.headers are merged, so the default User-Agent survives a file
//     that only adds X-Api-Key.
//   - error: read, parse or validation failure
//
// Behavior:
//  1. An empty path, or DefaultPath when that file does not exist, yields the
//     defaults. Any other missing file is an error.
//  2. ${VAR} references are expanded from the environment before parsing, so
//     values loaded from .env can be referenced.
//  3. Validate() runs on the merged result; its warnings go to stderr.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && filepath.Clean(path) == filepath.Clean(DefaultPath) {
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Expand environment variables, e.g. block: ${CHAINFETCH_BLOCK_URL}
	expanded := os.ExpandEnv(string(data))

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal([]byte(expanded), cfg)
	case ".toml":
		_, err = toml.Decode(expanded, cfg)
	default:
		return nil, fmt.Errorf("unsupported config format %q (use .yaml, .yml or .toml)", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
