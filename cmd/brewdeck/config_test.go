package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.BaseURL != "https://api.openbrewerydb.org/v1/breweries" {
		t.Errorf("base-url = %q", cfg.BaseURL)
	}
	if cfg.City != "los_angeles" || cfg.State != "california" || cfg.PerPage != 50 {
		t.Errorf("filters = %q/%q/%d", cfg.City, cfg.State, cfg.PerPage)
	}
	if cfg.RequestTimeout != 0 {
		t.Errorf("request-timeout = %v, want none", cfg.RequestTimeout)
	}
	if !cfg.Animate {
		t.Error("animate defaults to false")
	}
	if cfg.CacheTTL != 0 {
		t.Errorf("cache-ttl = %v, want caching off", cfg.CacheTTL)
	}
	if !strings.HasSuffix(cfg.LogFile, filepath.Join("brewdeck", "brewdeck.log")) {
		t.Errorf("log-file = %q", cfg.LogFile)
	}
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("BREWDECK_PER_PAGE", "10")

	path := filepath.Join(t.TempDir(), "config.yml")
	data := "city: san_diego\nplace: San Diego\nanimate: false\nrequest-timeout: 5s\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.City != "san_diego" || cfg.Place != "San Diego" {
		t.Errorf("city/place = %q/%q", cfg.City, cfg.Place)
	}
	if cfg.PerPage != 10 {
		t.Errorf("per-page = %d, want env override 10", cfg.PerPage)
	}
	if cfg.Animate {
		t.Error("animate = true, want false from file")
	}
	if springFor(cfg) != nil {
		t.Error("springFor returned a spring with animation disabled")
	}
	if cfg.RequestTimeout != 5*time.Second {
		t.Errorf("request-timeout = %v", cfg.RequestTimeout)
	}
	if got := cfg.clientOptions(); got.Timeout != 5*time.Second || got.City != "san_diego" {
		t.Errorf("clientOptions = %+v", got)
	}
}

func TestLoadConfig_MissingExplicitFileIsIgnored(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if _, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml")); err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
}

func TestVersionCommand(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})
	if err := root.Execute(); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out.String(), "Version:    dev") {
		t.Fatalf("version output = %q", out.String())
	}
}
