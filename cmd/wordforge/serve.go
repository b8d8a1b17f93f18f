package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mark3labs/mcp-go/server"
	"github.com/wordforge/wordforge/pkg/api"
	"github.com/wordforge/wordforge/pkg/dataset"
	"gopkg.in/yaml.v3"
)

type serveConfig struct {
	Addr        string `yaml:"addr"`
	DatasetsDir string `yaml:"datasets_dir"`
}

// cmdServe loads the exported datasets and serves lookups over HTTP,
// or over MCP stdio with --mcp.
func cmdServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	cfgPath := fs.String("config", "config.yaml", "path to config file")
	mcpMode := fs.Bool("mcp", false, "serve MCP over stdio instead of HTTP")
	fs.Parse(args)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

	cfg := loadServeConfig(*cfgPath, logger)

	reg := dataset.NewRegistry(cfg.DatasetsDir)
	if err := reg.Load(); err != nil {
		logger.Error("failed to load datasets", "error", err)
		os.Exit(1)
	}
	logger.Info("datasets loaded", "count", reg.DatasetCount(), "entries", reg.TotalEntries())

	if *mcpMode {
		srv := server.NewMCPServer("wordforge", "1.0.0")
		api.RegisterMCPTools(srv, reg)
		if err := server.ServeStdio(srv); err != nil {
			logger.Error("mcp server error", "error", err)
			os.Exit(1)
		}
		return
	}

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: api.NewRouter(reg),
	}

	// SIGHUP: hot reload datasets.
	// SIGINT/SIGTERM: graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sighup := make(chan os.Signal, 1)
	signal.Notify(sighup, syscall.SIGHUP)
	go func() {
		for range sighup {
			logger.Info("SIGHUP received, reloading datasets")
			if err := reg.Reload(); err != nil {
				logger.Error("reload failed", "error", err)
			} else {
				logger.Info("datasets reloaded", "count", reg.DatasetCount(), "entries", reg.TotalEntries())
			}
		}
	}()

	go func() {
		logger.Info("wordforge listening", "addr", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	srv.Shutdown(context.Background())
}

func loadServeConfig(path string, logger *slog.Logger) serveConfig {
	cfg := serveConfig{
		Addr:        ":8420",
		DatasetsDir: "exports",
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Info("no config file, using defaults", "path", path)
			return cfg
		}
		logger.Error("read config", "error", err)
		os.Exit(1)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		logger.Error("parse config", "error", err)
		os.Exit(1)
	}
	return cfg
}
