package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/config"
	"github.com/effective-security/vendrmcp/tools"
	"github.com/effective-security/xlog"
	"github.com/spf13/cobra"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(c *cli) *cobra.Command {
	var transport, addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over stdio or streamable HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.load()
			if err != nil {
				return err
			}
			if transport != "" {
				cfg.Server.Transport = transport
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if err = cfg.Validate(); err != nil {
				return err
			}

			registry, err := c.registry(cfg)
			if err != nil {
				return err
			}

			logger.KV(xlog.INFO,
				"status", "starting",
				"transport", cfg.Server.Transport,
				"tools", len(registry.Names()),
			)

			if cfg.Server.Transport == config.TransportHTTP {
				ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
				defer stop()
				return serveHTTP(ctx, cfg, registry)
			}
			return serveStdio(cfg, registry)
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "", "Transport: stdio or http")
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address of the http transport")
	return cmd
}

func serveStdio(cfg *config.Config, registry *tools.Registry) error {
	server := mcp.NewStdioServer(cfg.Server.Name, Version,
		mcp.WithStdioServerLogger(mcp.GetDefaultLogger()),
	)
	err := registry.RegisterMCP(tools.RegistratorFunc(func(tool *mcp.Tool, handler tools.MCPHandler) {
		server.RegisterTool(tool, handler)
	}))
	if err != nil {
		return err
	}
	return server.Start()
}

func serveHTTP(ctx context.Context, cfg *config.Config, registry *tools.Registry) error {
	server := mcp.NewServer(cfg.Server.Name, Version,
		mcp.WithServerAddress(cfg.Server.Addr),
		mcp.WithServerPath(cfg.Server.Path),
	)
	err := registry.RegisterMCP(tools.RegistratorFunc(func(tool *mcp.Tool, handler tools.MCPHandler) {
		server.RegisterTool(tool, handler)
	}))
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           withUserHeaders(server.HTTPHandler()),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		logger.KV(xlog.INFO, "status", "listening", "addr", cfg.Server.Addr, "path", cfg.Server.Path)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err = <-errs:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "failed to serve")
	case <-ctx.Done():
	}

	logger.KV(xlog.INFO, "status", "shutting_down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// withUserHeaders passes the end user headers of the incoming request to the backend calls
func withUserHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := backend.UserFromHeader(r.Header); user != (backend.UserHeaders{}) {
			r = r.WithContext(backend.ContextWithUser(r.Context(), user))
		}
		next.ServeHTTP(w, r)
	})
}
