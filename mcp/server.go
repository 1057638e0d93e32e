// Package mcp serves the admin client as Model Context Protocol tools.
package mcp

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/PSchristopher/phoenix-admin/client"
	"github.com/PSchristopher/phoenix-admin/internal/app"
	"github.com/PSchristopher/phoenix-admin/internal/config"
	"github.com/PSchristopher/phoenix-admin/internal/logger"
	"github.com/PSchristopher/phoenix-admin/internal/probe"
	"github.com/PSchristopher/phoenix-admin/mcp/internal/handlers"
	"github.com/PSchristopher/phoenix-admin/session"
)

const (
	ServerName    = "phoenix-admin-mcp"
	ServerVersion = "0.1.0"

	shutdownTimeout  = 10 * time.Second
	httpReadTimeout  = 5 * time.Second
	httpIdleTimeout  = 120 * time.Second
	heartbeatEvery   = 30 * time.Second
	streamableHTTPAt = "/mcp"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

// NewServer builds an MCP server exposing every admin tool. c must be bound
// to store.
func NewServer(c *client.Client, store *session.Store) (*server.MCPServer, error) {
	s := server.NewMCPServer(
		ServerName,
		ServerVersion,
		server.WithToolCapabilities(true),
	)

	registered := []struct {
		name    string
		handler toolRegisterer
	}{
		{"session", handlers.NewSessionHandler(c, store)},
		{"orders", handlers.NewOrderHandler(c)},
		{"products", handlers.NewProductHandler(c)},
		{"customers", handlers.NewCustomerHandler(c)},
		{"vendors", handlers.NewVendorHandler(c)},
	}
	for _, r := range registered {
		if err := r.handler.RegisterTools(s); err != nil {
			return nil, fmt.Errorf("register %s tools: %w", r.name, err)
		}
	}
	return s, nil
}

// NewHTTPHandler wraps s in the streamable HTTP transport at /mcp.
func NewHTTPHandler(s *server.MCPServer) *server.StreamableHTTPServer {
	return server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath(streamableHTTPAt),
		server.WithHeartbeatInterval(heartbeatEvery),
	)
}

// NewHTTPMux mounts the MCP endpoint next to /health and the Prometheus
// /metrics endpoint that exports the client's request counters.
func NewHTTPMux(streamSrv http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(streamableHTTPAt, streamSrv)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return mux
}

// RunMCPServer loads configuration, restores the admin session and serves
// tools over stdio or streamable HTTP until ctx is cancelled.
func RunMCPServer(ctx context.Context) error {
	// stdout belongs to the stdio transport
	log.Logger = logger.NewWithWriter(ServerName, os.Stderr)

	cfg, err := config.New()
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to load configuration")
		return err
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		logger.SetLevel(cfg.LogLevel)
	}

	a, err := app.New(ctx, cfg, log.Logger)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Failed to create client")
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing admin client")
		}
	}()
	log.Info().Str("backend_url", a.Client.BaseURL()).Msg("Admin client created")

	// an unreachable backend is reported, not fatal: tools surface the error
	if attempts, err := probe.WaitReady(ctx, a.Client, "/health", cfg.WaitTimeout); err != nil {
		log.Warn().Err(err).Msg("Admin backend not ready")
	} else {
		log.Debug().Int("attempts", attempts).Msg("Admin backend ready")
	}

	s, err := NewServer(a.Client, a.Store)
	if err != nil {
		return err
	}

	if shouldUseStdio() {
		log.Info().Msg("Starting Phoenix admin MCP server (stdio transport)")
		return server.ServeStdio(s)
	}
	return serveHTTP(ctx, s, cfg.MCPAddr)
}

func serveHTTP(ctx context.Context, s *server.MCPServer, addr string) error {
	log.Info().Str("addr", addr).Msg("Starting Phoenix admin MCP server (Streamable HTTP)")

	streamSrv := NewHTTPHandler(s)
	srv := &http.Server{
		Addr:         addr,
		Handler:      NewHTTPMux(streamSrv),
		ReadTimeout:  httpReadTimeout,
		WriteTimeout: 0, // SSE streams have no deadline
		IdleTimeout:  httpIdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Info().Msg("Received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during HTTP server shutdown")
	}
	if err := streamSrv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Error during MCP server shutdown")
	}
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	if os.Getenv("PHOENIX_MCP_STDIO") == "true" {
		return true
	}
	if os.Getenv("PHOENIX_MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: Use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}
	return false
}
