// Package schema reflects Go types into JSON schemas used to describe tool inputs and outputs.
package schema

import (
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/utils"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	cache   = make(map[reflect.Type]*Schema)
	cacheMu sync.RWMutex
)

type Schema struct {
	*jsonschema.Schema
	// Parameters is the flattened schema of the type, without $defs
	Parameters *jsonschema.Schema
}

// New creates a new schema from the given type
func New(t reflect.Type) (*Schema, error) {
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	cacheMu.RLock()
	s, ok := cache[t]
	cacheMu.RUnlock()
	if ok {
		return s, nil
	}

	s, err := buildSchema(t)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[t] = s
	cacheMu.Unlock()

	return s, nil
}

// Of returns the schema of T
func Of[T any]() (*Schema, error) {
	return New(reflect.TypeFor[T]())
}

func (s *Schema) String() string {
	return utils.ToJSONIndent(s.Parameters)
}

func buildSchema(t reflect.Type) (*Schema, error) {
	if t.Kind() != reflect.Struct {
		return nil, errors.Newf("expected struct, got %s", t.Kind())
	}
	schema := JSONSchema(t)

	params, err := ToFunctionSchema(schema)
	if err != nil {
		return nil, err
	}
	return &Schema{
		Schema:     schema,
		Parameters: params,
	}, nil
}

// ToFunctionSchema returns the root object of the schema with all references resolved
func ToFunctionSchema(tSchema *jsonschema.Schema) (*jsonschema.Schema, error) {
	refID := strings.TrimPrefix(tSchema.Ref, "#/$defs/")

	root, ok := tSchema.Definitions[refID]
	if !ok {
		return nil, errors.Newf("definition not found: %s", refID)
	}

	res := &jsonschema.Schema{
		Type:        root.Type,
		Description: root.Description,
		Properties:  root.Properties,
		Required:    root.Required,
	}

	if err := resolveRefs(res.Properties, tSchema.Definitions); err != nil {
		return nil, err
	}
	return res, nil
}

func resolveRef(s *jsonschema.Schema, defs jsonschema.Definitions) (*jsonschema.Schema, error) {
	if s == nil || s.Ref == "" {
		return s, nil
	}
	name := strings.TrimPrefix(s.Ref, "#/$defs/")
	def, ok := defs[name]
	if !ok {
		return nil, errors.Newf("definition not found: %s", name)
	}
	res := *def
	if s.Description != "" {
		res.Description = s.Description
	}
	return &res, nil
}

func resolveRefs(props *orderedmap.OrderedMap[string, *jsonschema.Schema], defs jsonschema.Definitions) error {
	if props == nil {
		return nil
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		child, err := resolveRef(pair.Value, defs)
		if err != nil {
			return errors.Wrapf(err, "property %s", pair.Key)
		}
		if child.Items != nil {
			items, err := resolveRef(child.Items, defs)
			if err != nil {
				return errors.Wrapf(err, "items of %s", pair.Key)
			}
			if items != child.Items {
				cp := *child
				cp.Items = items
				child = &cp
			}
			if err := resolveRefs(child.Items.Properties, defs); err != nil {
				return err
			}
		}
		if err := resolveRefs(child.Properties, defs); err != nil {
			return err
		}
		pair.Value = child
	}
	return nil
}

// JSONSchema returns the JSON schema of the type
func JSONSchema(t reflect.Type) *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.RequiredFromJSONSchemaTags = false

	// Types with the same name in different packages, like backend.Product and
	// a request Product, must not share a definition:
	// https://github.com/invopop/jsonschema/issues/42
	r.Namer = func(t reflect.Type) string {
		name := t.Name()
		if t.Kind() == reflect.Struct {
			fullname := t.PkgPath() + "/" + t.Name()
			name = t.Name() + "@" + strconv.FormatUint(xxhash.Sum64String(fullname), 10)
		}
		return name
	}

	return r.ReflectFromType(t)
}
