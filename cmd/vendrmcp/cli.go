package main

import (
	"io"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/vendrmcp/config"
	"github.com/effective-security/vendrmcp/envelope"
	"github.com/effective-security/vendrmcp/observer"
	"github.com/effective-security/vendrmcp/pricing"
	"github.com/effective-security/vendrmcp/tools"
	"github.com/effective-security/vendrmcp/tools/vendr"
	"github.com/effective-security/xlog"
	"github.com/spf13/cobra"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/vendrmcp", "cmd")

// Version is set at build time
var Version = "dev"

// cli holds the flags and the dependencies of the commands
type cli struct {
	configFile string
	logLevel   string

	stderr io.Writer
	// newClient creates the backend client, replaced in tests
	newClient func(cfg *config.Config) (backend.Client, error)
	// loadConfig loads the configuration, replaced in tests
	loadConfig func(file string) (*config.Config, error)
}

func newCLI() *cli {
	return &cli{
		stderr:     os.Stderr,
		newClient:  newHTTPClient,
		loadConfig: config.Load,
	}
}

func newHTTPClient(cfg *config.Config) (backend.Client, error) {
	c, err := backend.New(cfg.Backend.BaseURL, cfg.Backend.APIKey)
	if err != nil {
		return nil, err
	}
	return c.WithUser(cfg.UserHeaders()), nil
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:           "vendrmcp",
		Short:         "Vendr software pricing tools for MCP clients",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&c.configFile, "config", "c", "", "Configuration file: YAML, JSON or TOML")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "Log level: DEBUG, INFO, WARNING or ERROR")

	root.AddCommand(
		newServeCmd(c),
		newToolsCmd(c),
		newCallCmd(c),
	)
	return root
}

// load returns the configuration with the logging configured
func (c *cli) load() (*config.Config, error) {
	cfg, err := c.loadConfig(c.configFile)
	if err != nil {
		return nil, err
	}
	if c.logLevel != "" {
		cfg.Log.Level = strings.ToUpper(c.logLevel)
	}
	configureLogging(c.stderr, cfg.Log.Level)
	return cfg, nil
}

// registry returns the enabled tools bound to the backend
func (c *cli) registry(cfg *config.Config) (*tools.Registry, error) {
	client, err := c.newClient(cfg)
	if err != nil {
		return nil, errors.WithMessage(err, "failed to create backend client")
	}
	return newRegistry(cfg, client)
}

func newRegistry(cfg *config.Config, client backend.Client) (*tools.Registry, error) {
	obs := observer.NewFanout(
		observer.NewPackageLogger(logger),
		observer.NewMetrics(),
	)
	svc := pricing.New(client, pricing.WithObserver(obs))

	all, err := vendr.NewRegistry(svc,
		vendr.WithObserver(obs),
		vendr.WithBuilder(envelope.WithMaxLength(cfg.Tools.MaxLength)),
	)
	if err != nil {
		return nil, err
	}
	return all.Filter(cfg.Tools.Enabled)
}

var levels = map[string]xlog.LogLevel{
	"DEBUG":   xlog.DEBUG,
	"INFO":    xlog.INFO,
	"WARNING": xlog.WARNING,
	"WARN":    xlog.WARNING,
	"ERROR":   xlog.ERROR,
}

// configureLogging writes the logs to w, stdout belongs to the stdio transport
func configureLogging(w io.Writer, level string) {
	xlog.SetFormatter(xlog.NewStringFormatter(w))
	l, ok := levels[strings.ToUpper(level)]
	if !ok {
		l = xlog.INFO
	}
	xlog.SetGlobalLogLevel(l)
}
