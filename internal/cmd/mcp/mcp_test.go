package mcp

import (
	"flag"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.StorageDir != "documents" {
		t.Fatalf("expected default storage dir, got %q", cfg.StorageDir)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != "stdio" {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
	if cfg.AuthToken != "" {
		t.Fatalf("expected no default auth token, got %q", cfg.AuthToken)
	}
}

func TestParseConfigEnvOverrides(t *testing.T) {
	t.Setenv("DOCSMITH_STORAGE_DIR", "/var/docs")
	t.Setenv("DOCSMITH_MCP_TRANSPORT", "http")
	t.Setenv("DOCSMITH_MCP_ALLOWED_HOSTS", "a.internal,b.internal")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.StorageDir != "/var/docs" {
		t.Fatalf("expected env storage dir, got %q", cfg.StorageDir)
	}
	if cfg.Transport != "http" {
		t.Fatalf("expected env transport http, got %q", cfg.Transport)
	}
	if len(cfg.AllowedHosts) != 2 || cfg.AllowedHosts[0] != "a.internal" {
		t.Fatalf("expected env allowed hosts, got %v", cfg.AllowedHosts)
	}
}

func TestParseConfigFlagOverrides(t *testing.T) {
	t.Setenv("DOCSMITH_MCP_HTTP_ADDR", "env-http")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	args := []string{
		"-storage-dir", "flag-docs",
		"-http-addr", "flag-http",
		"-transport", "http",
		"-auth-token", "flag-token",
		"-allowed-hosts", "x.internal,y.internal",
	}
	cfg, err := ParseConfig(fs, args)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.StorageDir != "flag-docs" {
		t.Fatalf("expected flag storage dir, got %q", cfg.StorageDir)
	}
	if cfg.HTTPAddr != "flag-http" {
		t.Fatalf("expected flag http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.AuthToken != "flag-token" {
		t.Fatalf("expected flag auth token, got %q", cfg.AuthToken)
	}
	if len(cfg.AllowedHosts) != 2 || cfg.AllowedHosts[1] != "y.internal" {
		t.Fatalf("expected flag allowed hosts, got %v", cfg.AllowedHosts)
	}
}
