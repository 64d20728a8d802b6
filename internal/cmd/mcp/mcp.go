// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"
	"strings"

	"github.com/louisbranch/docsmith/internal/platform/config"
	"github.com/louisbranch/docsmith/internal/platform/otel"
	"github.com/louisbranch/docsmith/internal/platform/timeouts"
	"github.com/louisbranch/docsmith/internal/services/word/service"
)

// Config holds MCP command configuration.
type Config struct {
	StorageDir   string   `env:"DOCSMITH_STORAGE_DIR"      envDefault:"documents"`
	HTTPAddr     string   `env:"DOCSMITH_MCP_HTTP_ADDR"    envDefault:"localhost:8081"`
	Transport    string   `env:"DOCSMITH_MCP_TRANSPORT"    envDefault:"stdio"`
	AuthToken    string   `env:"DOCSMITH_MCP_AUTH_TOKEN"`
	AllowedHosts []string `env:"DOCSMITH_MCP_ALLOWED_HOSTS" envSeparator:","`
}

// ParseConfig parses environment and flags into a Config. Flags override
// environment values.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	var allowedHosts string
	fs.StringVar(&cfg.StorageDir, "storage-dir", cfg.StorageDir, "directory for relative document filenames")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.AuthToken, "auth-token", cfg.AuthToken, "bearer token required for HTTP requests")
	fs.StringVar(&allowedHosts, "allowed-hosts", "", "comma-separated extra hosts allowed over HTTP")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if allowedHosts != "" {
		cfg.AllowedHosts = strings.Split(allowedHosts, ",")
	}
	return cfg, nil
}

// Run starts the MCP document server.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.OtelShutdown)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return service.Run(ctx, service.Config{
		StorageDir:   cfg.StorageDir,
		Transport:    service.TransportKind(cfg.Transport),
		HTTPAddr:     cfg.HTTPAddr,
		AuthToken:    cfg.AuthToken,
		AllowedHosts: cfg.AllowedHosts,
	})
}
