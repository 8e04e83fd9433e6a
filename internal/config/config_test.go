package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmagro/chainfetch/internal/api"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	if cfg.API != api.FlavorExplorer {
		t.Errorf("API = %q, want explorer", cfg.API)
	}
	if cfg.Defaults.TxLimit != 5 {
		t.Errorf("TxLimit = %d, want 5", cfg.Defaults.TxLimit)
	}
	if cfg.Defaults.Headers["Accept"] != "application/json" {
		t.Errorf("Accept header = %q", cfg.Defaults.Headers["Accept"])
	}
}

func TestLoadYAMLAndTOMLAgree(t *testing.T) {
	t.Setenv("CHAINFETCH_TEST_HOST", "http://127.0.0.1:9000")

	yamlPath := writeFile(t, "chainfetch.yaml", `
api: simple
simple:
  block: ${CHAINFETCH_TEST_HOST}/block
  transaction: ${CHAINFETCH_TEST_HOST}/transaction
defaults:
  timeout: 5s
  tx_limit: 3
  concurrency: 2
  headers:
    X-Api-Key: secret
`)
	tomlPath := writeFile(t, "chainfetch.toml", `
api = "simple"

[simple]
block = "${CHAINFETCH_TEST_HOST}/block"
transaction = "${CHAINFETCH_TEST_HOST}/transaction"

[defaults]
timeout = "5s"
tx_limit = 3
concurrency = 2

[defaults.headers]
X-Api-Key = "secret"
`)

	for _, path := range []string{yamlPath, tomlPath} {
		t.Run(filepath.Ext(path), func(t *testing.T) {
			cfg, err := Load(path)
			if err != nil {
				t.Fatalf("Load() error = %v", err)
			}
			if cfg.API != api.FlavorSimple {
				t.Errorf("API = %q, want simple", cfg.API)
			}
			if got := cfg.Endpoints().Block; got != "http://127.0.0.1:9000/block" {
				t.Errorf("Endpoints().Block = %q", got)
			}
			if cfg.Defaults.Timeout != 5*time.Second {
				t.Errorf("Timeout = %s, want 5s", cfg.Defaults.Timeout)
			}
			if cfg.Defaults.TxLimit != 3 || cfg.Defaults.Concurrency != 2 {
				t.Errorf("TxLimit/Concurrency = %d/%d", cfg.Defaults.TxLimit, cfg.Defaults.Concurrency)
			}
			if cfg.Defaults.Headers["X-Api-Key"] != "secret" {
				t.Errorf("X-Api-Key = %q", cfg.Defaults.Headers["X-Api-Key"])
			}
			// Defaults not named in the file survive.
			if cfg.Defaults.Headers["Accept"] != "application/json" {
				t.Errorf("Accept header lost: %v", cfg.Defaults.Headers)
			}
			if cfg.Explorer.Block != "https://blockchain.info/rawblock" {
				t.Errorf("Explorer.Block = %q", cfg.Explorer.Block)
			}

			cc := cfg.ClientConfig()
			if cc.Flavor != api.FlavorSimple || cc.TransactionURL != "http://127.0.0.1:9000/transaction" {
				t.Errorf("ClientConfig() = %+v", cc)
			}
		})
	}
}

func TestLoadMissingFiles(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(DefaultPath)
	if err != nil {
		t.Fatalf("missing default config should fall back, got %v", err)
	}
	if cfg.API != api.FlavorExplorer {
		t.Errorf("API = %q", cfg.API)
	}

	if _, err := Load("elsewhere.yaml"); err == nil {
		t.Error("missing explicit config should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"ok", func(c *Config) {}, ""},
		{"bad api", func(c *Config) { c.API = "etherscan" }, "api must be"},
		{"zero timeout", func(c *Config) { c.Defaults.Timeout = 0 }, "timeout"},
		{"negative limit", func(c *Config) { c.Defaults.TxLimit = -1 }, "tx_limit"},
		{"zero concurrency", func(c *Config) { c.Defaults.Concurrency = 0 }, "concurrency"},
		{"missing url", func(c *Config) { c.Explorer.Block = "" }, "explorer.block"},
		{"bad scheme", func(c *Config) { c.Explorer.Transaction = "ftp://x/rawtx" }, "scheme"},
		{"query", func(c *Config) { c.Explorer.Block = "https://blockchain.info/rawblock?format=hex" }, "query"},
		{"inactive flavor ignored", func(c *Config) { c.Simple.Block = "" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() = %v, want error containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "chainfetch.ini", "api=simple\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("Load(.ini) = %v, want unsupported format error", err)
	}
}
