package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	Port int `env:"TNL_CALC_TEST_PORT" envDefault:"123"`
}

type prefixedTestConfig struct {
	Port int    `env:"TEST_PORT" envDefault:"123"`
	Name string `env:"TEST_NAME" envDefault:"calc"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 123 {
		t.Fatalf("expected default port 123, got %d", cfg.Port)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("TNL_CALC_TEST_PORT", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvPrefixed(t *testing.T) {
	t.Setenv("TNL_CALC_TEST_PORT", "8081")
	t.Setenv("TEST_NAME", "unprefixed")

	var cfg prefixedTestConfig
	if err := ParseEnvPrefixed(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Port != 8081 {
		t.Fatalf("expected prefixed port 8081, got %d", cfg.Port)
	}
	if cfg.Name != "calc" {
		t.Fatalf("expected unprefixed variable to be ignored, got %q", cfg.Name)
	}
}

func TestParseEnvPrefixedError(t *testing.T) {
	t.Setenv("TNL_CALC_TEST_PORT", "eighty")

	var cfg prefixedTestConfig
	if err := ParseEnvPrefixed(&cfg); err == nil || !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env error, got %v", err)
	}
}
