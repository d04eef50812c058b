// Package config loads the server configuration from a file and the environment.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/backend"
	"github.com/effective-security/x/configloader"
	"github.com/effective-security/x/values"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// ErrInvalidConfig is returned when the configuration fails validation
var ErrInvalidConfig = errors.New("invalid configuration")

// Defaults
const (
	DefaultBaseURL    = "https://api.vendr.com"
	DefaultTransport  = TransportStdio
	DefaultHTTPAddr   = ":3000"
	DefaultHTTPPath   = "/mcp"
	DefaultLogLevel   = "INFO"
	DefaultServerName = "vendr-mcp"
)

// Transports
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Environment variables
const (
	EnvAPIKey           = "VENDR_API_KEY"
	EnvBaseURL          = "VENDR_BASE_URL"
	EnvUserID           = "VENDR_USER_ID"
	EnvUserIP           = "VENDR_USER_IP"
	EnvUserEmail        = "VENDR_USER_EMAIL"
	EnvOrganizationName = "VENDR_ORGANIZATION_NAME"
	EnvTransport        = "VENDR_MCP_TRANSPORT"
	EnvAddr             = "VENDR_MCP_ADDR"
	EnvLogLevel         = "VENDR_LOG_LEVEL"
	EnvMaxLength        = "VENDR_MAX_RESPONSE_LENGTH"
)

type Config struct {
	Backend BackendConfig `json:"backend" yaml:"backend" toml:"backend"`
	User    UserConfig    `json:"user" yaml:"user" toml:"user"`
	Server  ServerConfig  `json:"server" yaml:"server" toml:"server"`
	Tools   ToolsConfig   `json:"tools" yaml:"tools" toml:"tools"`
	Log     LogConfig     `json:"log" yaml:"log" toml:"log"`
}

// BackendConfig specifies the pricing backend
type BackendConfig struct {
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" toml:"base_url" validate:"required,url"`
	APIKey  string `json:"api_key,omitempty" yaml:"api_key,omitempty" toml:"api_key" validate:"required"`
}

// UserConfig identifies the end user in the backend calls
type UserConfig struct {
	ID               string `json:"id,omitempty" yaml:"id,omitempty" toml:"id"`
	IP               string `json:"ip,omitempty" yaml:"ip,omitempty" toml:"ip"`
	Email            string `json:"email,omitempty" yaml:"email,omitempty" toml:"email" validate:"required"`
	OrganizationName string `json:"organization_name,omitempty" yaml:"organization_name,omitempty" toml:"organization_name"`
}

// ServerConfig specifies the MCP transport
type ServerConfig struct {
	Name string `json:"name,omitempty" yaml:"name,omitempty" toml:"name"`
	// Transport is stdio or http
	Transport string `json:"transport,omitempty" yaml:"transport,omitempty" toml:"transport" validate:"oneof=stdio http"`
	// Addr is the listen address of the http transport
	Addr string `json:"addr,omitempty" yaml:"addr,omitempty" toml:"addr"`
	// Path is the endpoint of the http transport
	Path string `json:"path,omitempty" yaml:"path,omitempty" toml:"path"`
}

// ToolsConfig specifies the registered tools
type ToolsConfig struct {
	// Enabled is the list of tool names to register, all tools if empty
	Enabled []string `json:"enabled,omitempty" yaml:"enabled,omitempty" toml:"enabled"`
	// MaxLength is the maximum length of the response text
	MaxLength int `json:"max_length,omitempty" yaml:"max_length,omitempty" toml:"max_length" validate:"gte=0"`
}

type LogConfig struct {
	Level string `json:"level,omitempty" yaml:"level,omitempty" toml:"level"`
}

// Load returns the configuration from the optional file,
// overridden by the environment and validated.
// The .env file in the current folder is loaded first, if present.
func Load(file string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := LoadFile(file)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)
	cfg.SetDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile returns the configuration from the file without defaults,
// an empty configuration if file is empty.
func LoadFile(file string) (*Config, error) {
	cfg := new(Config)
	if file == "" {
		return cfg, nil
	}

	var err error
	if strings.EqualFold(filepath.Ext(file), ".toml") {
		var data []byte
		data, err = os.ReadFile(file)
		if err == nil {
			err = toml.Unmarshal([]byte(os.ExpandEnv(string(data))), cfg)
		}
	} else {
		err = configloader.UnmarshalAndExpand(file, cfg)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %s", file)
	}
	return cfg, nil
}

func loadDotEnv(file string) error {
	if _, err := os.Stat(file); err != nil {
		return nil
	}
	// existing variables are not overridden
	if err := godotenv.Load(file); err != nil {
		return errors.Wrapf(err, "failed to load %s", file)
	}
	return nil
}

// ApplyEnv overrides the values with the set environment variables
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	set := func(dst *string, key string) {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	set(&c.Backend.APIKey, EnvAPIKey)
	set(&c.Backend.BaseURL, EnvBaseURL)
	set(&c.User.ID, EnvUserID)
	set(&c.User.IP, EnvUserIP)
	set(&c.User.Email, EnvUserEmail)
	set(&c.User.OrganizationName, EnvOrganizationName)
	set(&c.Server.Transport, EnvTransport)
	set(&c.Server.Addr, EnvAddr)
	set(&c.Log.Level, EnvLogLevel)

	if v, ok := lookup(EnvMaxLength); ok {
		if n, err := strconv.Atoi(v); err == nil {
			c.Tools.MaxLength = n
		}
	}
}

// SetDefaults sets the defaults for empty values
func (c *Config) SetDefaults() {
	c.Backend.BaseURL = values.StringsCoalesce(c.Backend.BaseURL, DefaultBaseURL)
	c.Server.Name = values.StringsCoalesce(c.Server.Name, DefaultServerName)
	c.Server.Transport = strings.ToLower(values.StringsCoalesce(c.Server.Transport, DefaultTransport))
	c.Server.Addr = values.StringsCoalesce(c.Server.Addr, DefaultHTTPAddr)
	c.Server.Path = values.StringsCoalesce(c.Server.Path, DefaultHTTPPath)
	c.Log.Level = strings.ToUpper(values.StringsCoalesce(c.Log.Level, DefaultLogLevel))
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate returns ErrInvalidConfig with the failed fields
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Mark(err, ErrInvalidConfig)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, envHint(fe.Namespace())+" failed on the '"+fe.Tag()+"' validation")
	}
	return errors.Mark(errors.Newf("%s: %s", ErrInvalidConfig.Error(), strings.Join(msgs, "; ")), ErrInvalidConfig)
}

var envHints = map[string]string{
	"Config.Backend.APIKey":   EnvAPIKey,
	"Config.Backend.BaseURL":  EnvBaseURL,
	"Config.User.Email":       EnvUserEmail,
	"Config.Server.Transport": EnvTransport,
}

// envHint names the environment variable of the field, if any
func envHint(ns string) string {
	field := strings.TrimPrefix(ns, "Config.")
	if env, ok := envHints[ns]; ok {
		return field + " (" + env + ")"
	}
	return field
}

// UserHeaders returns the end user headers of the backend calls
func (c *Config) UserHeaders() backend.UserHeaders {
	return backend.UserHeaders{
		Identifier:       c.User.ID,
		IP:               c.User.IP,
		Email:            c.User.Email,
		OrganizationName: c.User.OrganizationName,
	}
}
