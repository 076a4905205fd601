package config

import (
	"testing"
)

// TestDefaults Ensure the defaults match the original plotting behavior
func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Loading default config failed : %v", err)
	}
	if cfg.DataFile != "samples.data" {
		t.Errorf("Expected default data file samples.data, got %q", cfg.DataFile)
	}
	if cfg.Distribution != "Zipf" {
		t.Errorf("Expected default distribution Zipf, got %q", cfg.Distribution)
	}
	if cfg.Format != "svg" {
		t.Errorf("Expected default format svg, got %q", cfg.Format)
	}
	if cfg.OutputDir != "." {
		t.Errorf("Expected default output dir ., got %q", cfg.OutputDir)
	}
}

// TestLoad Test for success. The config file overlays the defaults
func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/simplot.yml")
	if err != nil {
		t.Fatalf("Parsing config file failed : %v", err)
	}
	if cfg.DataFile != "other.data" {
		t.Errorf("Expected data file other.data, got %q", cfg.DataFile)
	}
	if cfg.Distribution != "Uniform" {
		t.Errorf("Expected distribution Uniform, got %q", cfg.Distribution)
	}
	if cfg.Format != "png" {
		t.Errorf("Expected format png, got %q", cfg.Format)
	}
	// Fields the file leaves out keep their defaults.
	if cfg.Width != DefaultWidth {
		t.Errorf("Expected default width %d, got %d", DefaultWidth, cfg.Width)
	}
}

// TestLoadBadFormat Testing for failure. Unknown image format
func TestLoadBadFormat(t *testing.T) {
	_, err := Load("testdata/bad-format.yml")
	if err == nil {
		t.Fatal("Parsing config file should have failed but succeeded")
	}
}

// TestLoadMissing Testing for failure. The config file does not exist
func TestLoadMissing(t *testing.T) {
	_, err := Load("testdata/no-such-file.yml")
	if err == nil {
		t.Fatal("Parsing config file should have failed but succeeded")
	}
}

// TestValidate Testing for failure on out of range geometry
func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Width = 0
	if err := Validate(cfg); err == nil {
		t.Fatal("Validation should have failed on zero width but succeeded")
	}
	cfg = Default()
	cfg.Height = -1
	if err := Validate(cfg); err == nil {
		t.Fatal("Validation should have failed on negative height but succeeded")
	}
	cfg = Default()
	cfg.Distribution = ""
	if err := Validate(cfg); err == nil {
		t.Fatal("Validation should have failed on empty distribution but succeeded")
	}
}

// TestExt Ensure the extension tracks the format, lowercased
func TestExt(t *testing.T) {
	cfg := Default()
	cfg.Format = "PNG"
	if cfg.Ext() != "png" {
		t.Errorf("Expected extension png, got %q", cfg.Ext())
	}
}
