// Package encoding decodes and validates tool inputs, and encodes tool outputs,
// in JSON, YAML or TOML.
package encoding

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	jsonenc "github.com/effective-security/vendrmcp/encoding/json"
	tomlenc "github.com/effective-security/vendrmcp/encoding/toml"
	yamlenc "github.com/effective-security/vendrmcp/encoding/yaml"
)

// Codec marshals and unmarshals values in a specific format
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}

// Defaulter is implemented by inputs that have default values,
// SetDefaults is called after decoding and before validation.
type Defaulter interface {
	SetDefaults()
}

type Mode = string

const (
	ModeJSON Mode = "json"
	ModeYAML Mode = "yaml"
	ModeTOML Mode = "toml"
)

// ModeDefault is the mode used when the format is not specified
var ModeDefault = ModeJSON

// Modes returns the supported modes
func Modes() []Mode {
	return []Mode{ModeJSON, ModeYAML, ModeTOML}
}

// New returns the codec for the mode
func New(mode Mode) (Codec, error) {
	switch strings.ToLower(mode) {
	case "", ModeJSON:
		return jsonenc.NewEncoder(), nil
	case ModeYAML, "yml":
		return yamlenc.NewEncoder(), nil
	case ModeTOML:
		return tomlenc.NewEncoder(), nil
	default:
		return nil, errors.Newf("unsupported format: %q", mode)
	}
}

// ModeFromPath returns the mode by the file extension,
// or ModeDefault if the extension is not known
func ModeFromPath(path string) Mode {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ModeYAML
	case ".toml":
		return ModeTOML
	case ".json":
		return ModeJSON
	default:
		return ModeDefault
	}
}

// Decode unmarshals the data into a new value of T,
// sets the defaults and validates it.
func Decode[T any](codec Codec, data []byte) (*T, error) {
	var v T
	if err := codec.Unmarshal(data, &v); err != nil {
		return nil, errors.Wrap(err, "failed to decode input")
	}
	if d, ok := any(&v).(Defaulter); ok {
		d.SetDefaults()
	}
	if err := Validate(&v); err != nil {
		return nil, err
	}
	return &v, nil
}
