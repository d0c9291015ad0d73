// internal/platform/config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func newFS() *pflag.FlagSet {
	return pflag.NewFlagSet("test", pflag.ContinueOnError)
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Core.Workers != 4 {
		t.Errorf("Workers = %d, want 4", cfg.Core.Workers)
	}
	if cfg.Output.Dir != "domainlens_out" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	wb, ok := cfg.Providers["wayback"]
	if !ok {
		t.Fatal("expected wayback provider config")
	}
	if !wb.Enabled {
		t.Error("wayback should be enabled by default")
	}
	if av := cfg.Providers["availability"]; av.Enabled {
		t.Error("availability should be opt-in")
	}
}

func TestLoadFromArgs_Flags(t *testing.T) {
	cfg, err := LoadFromArgs(newFS(), []string{
		"--domain", "Example.COM.",
		"--niche", "Finance",
		"-w", "8",
		"--out.xlsx",
		"--providers.availability",
	})
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}

	if cfg.Core.Domain != "example.com" {
		t.Errorf("Domain = %q, want example.com", cfg.Core.Domain)
	}
	if cfg.Core.Niche != "finance" {
		t.Errorf("Niche = %q, want finance", cfg.Core.Niche)
	}
	if cfg.Core.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Core.Workers)
	}
	if !cfg.Output.XLSX {
		t.Error("XLSX flag not applied")
	}
	if !cfg.Providers["availability"].Enabled {
		t.Error("provider toggle flag not applied")
	}
}

func TestLoadFromArgs_Env(t *testing.T) {
	t.Setenv("DOMAINLENS_NICHE", "health")
	t.Setenv("DOMAINLENS_WORKERS", "2")
	t.Setenv("DOMAINLENS_PROVIDERS_WAYBACK_ENABLED", "false")
	t.Setenv("DOMAINLENS_PROVIDERS_WAYBACK_TIMEOUT", "45")

	cfg, err := LoadFromArgs(newFS(), nil)
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}

	if cfg.Core.Niche != "health" {
		t.Errorf("Niche = %q, want health", cfg.Core.Niche)
	}
	if cfg.Core.Workers != 2 {
		t.Errorf("Workers = %d, want 2", cfg.Core.Workers)
	}
	wb := cfg.Providers["wayback"]
	if wb.Enabled {
		t.Error("env disable for wayback not applied")
	}
	if wb.Timeout != 45*time.Second {
		t.Errorf("wayback Timeout = %v, want 45s", wb.Timeout)
	}
}

func TestLoadFromArgs_YAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cfg.yaml")
	data := []byte(`
core:
  niche: travel
  workers: 16
output:
  dir: /tmp/results
  xlsx: true
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromArgs(newFS(), []string{"--config", path})
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}

	if cfg.Core.Niche != "travel" {
		t.Errorf("Niche = %q, want travel", cfg.Core.Niche)
	}
	if cfg.Core.Workers != 16 {
		t.Errorf("Workers = %d, want 16", cfg.Core.Workers)
	}
	if cfg.Output.Dir != "/tmp/results" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if !cfg.Output.XLSX {
		t.Error("xlsx from YAML not applied")
	}
}

func TestLoadFromArgs_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("DOMAINLENS_NICHE", "health")

	cfg, err := LoadFromArgs(newFS(), []string{"--niche", "pets"})
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}
	if cfg.Core.Niche != "pets" {
		t.Errorf("Niche = %q, want pets (flag over env)", cfg.Core.Niche)
	}
}

func TestLoadFromArgs_MissingConfigFile(t *testing.T) {
	_, err := LoadFromArgs(newFS(), []string{"--config", "/no/such/file.yaml"})
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestNormalize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Core.Workers = -3
	cfg.Core.TimeoutS = -1
	cfg.Output.Dir = ""
	normalize(&cfg)

	if cfg.Core.Workers != 1 {
		t.Errorf("Workers = %d, want 1", cfg.Core.Workers)
	}
	if cfg.Core.TimeoutS != 0 {
		t.Errorf("TimeoutS = %d, want 0", cfg.Core.TimeoutS)
	}
	if cfg.Output.Dir == "" {
		t.Error("empty output dir not defaulted")
	}
}

func TestTimeoutHelpers(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Core.TimeoutS = 30
	if cfg.Timeout() != 30*time.Second {
		t.Errorf("Timeout() = %v", cfg.Timeout())
	}
	cfg.Core.TimeoutS = 0
	if cfg.Timeout() != 0 {
		t.Errorf("Timeout() = %v, want 0", cfg.Timeout())
	}

	cfg.Import.InterCallDelayMs = 250
	if cfg.InterCallDelay() != 250*time.Millisecond {
		t.Errorf("InterCallDelay() = %v", cfg.InterCallDelay())
	}
}

func TestLoadFromArgs_ScrapeFlags(t *testing.T) {
	cfg, err := LoadFromArgs(newFS(), []string{
		"--scrape", "https://member.expireddomains.net/domains/expiredcom/",
		"--scrape.limit", "10",
	})
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}
	if cfg.Import.ScrapeURL != "https://member.expireddomains.net/domains/expiredcom/" {
		t.Errorf("ScrapeURL = %q", cfg.Import.ScrapeURL)
	}
	if cfg.Import.ScrapeLimit != 10 {
		t.Errorf("ScrapeLimit = %d, want 10", cfg.Import.ScrapeLimit)
	}

	// Un límite inválido recae en el default
	cfg, err = LoadFromArgs(newFS(), []string{"--scrape.limit", "-3"})
	if err != nil {
		t.Fatalf("LoadFromArgs: %v", err)
	}
	if cfg.Import.ScrapeLimit != 50 {
		t.Errorf("ScrapeLimit = %d, want default 50", cfg.Import.ScrapeLimit)
	}
}
