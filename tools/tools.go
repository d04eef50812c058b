package tools

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/encoding"
	"github.com/effective-security/vendrmcp/envelope"
	"github.com/effective-security/vendrmcp/utils"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

// ErrInvalidInput is returned when the tool arguments fail to decode or validate
var ErrInvalidInput = errors.New("invalid input")

// MCPHandler handles a tool call of the MCP server
type MCPHandler = func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error)

// McpServerRegistrator registers the tools with an MCP server
type McpServerRegistrator interface {
	RegisterTool(tool *mcp.Tool, handler MCPHandler)
}

// RegistratorFunc adapts a function to McpServerRegistrator
type RegistratorFunc func(tool *mcp.Tool, handler MCPHandler)

func (f RegistratorFunc) RegisterTool(tool *mcp.Tool, handler MCPHandler) {
	f(tool, handler)
}

// ITool is a tool exposed to MCP clients.
type ITool interface {
	// Name returns the name of the Tool.
	Name() string
	// Description returns the description of the tool.
	Description() string
	// Parameters returns the JSON schema of the tool input.
	Parameters() any

	// Call executes the tool with the JSON input and returns the envelope text.
	// The error is set when the envelope reports a failure.
	Call(context.Context, string) (string, error)
}

// Annotations are the behavior hints of a tool
type Annotations struct {
	Title           string `json:"title,omitempty" yaml:"title,omitempty"`
	ReadOnlyHint    bool   `json:"readOnlyHint" yaml:"readOnlyHint"`
	DestructiveHint bool   `json:"destructiveHint" yaml:"destructiveHint"`
	IdempotentHint  bool   `json:"idempotentHint" yaml:"idempotentHint"`
	OpenWorldHint   bool   `json:"openWorldHint" yaml:"openWorldHint"`
}

// IMCPTool is an interface that extends ITool to include functionality for
// registering the tool with an MCP server.
type IMCPTool interface {
	ITool
	Annotations() Annotations
	// Execute decodes the input in the format of the codec, runs the tool
	// and returns the envelope. It never panics.
	Execute(ctx context.Context, codec encoding.Codec, input []byte) *envelope.Response
	RegisterMCP(registrator McpServerRegistrator) error
}

// Registry is an ordered set of tools with unique names
type Registry struct {
	tools  []IMCPTool
	byName map[string]IMCPTool
}

// NewRegistry returns a registry with the tools
func NewRegistry(list ...IMCPTool) (*Registry, error) {
	r := &Registry{byName: make(map[string]IMCPTool, len(list))}
	for _, t := range list {
		if err := r.Add(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Add adds the tool, the name must be unique
func (r *Registry) Add(t IMCPTool) error {
	if _, ok := r.byName[t.Name()]; ok {
		return errors.Newf("tool already registered: %s", t.Name())
	}
	r.byName[t.Name()] = t
	r.tools = append(r.tools, t)
	return nil
}

// Get returns the tool by name
func (r *Registry) Get(name string) (IMCPTool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// List returns the tools in the order they were added
func (r *Registry) List() []IMCPTool {
	return slices.Clone(r.tools)
}

// Names returns the tool names in the order they were added
func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name()
	}
	return names
}

// Filter returns a registry with only the enabled tools,
// or the same registry if enabled is empty.
func (r *Registry) Filter(enabled []string) (*Registry, error) {
	if len(enabled) == 0 {
		return r, nil
	}
	res := &Registry{byName: make(map[string]IMCPTool, len(enabled))}
	for _, name := range enabled {
		t, ok := r.byName[name]
		if !ok {
			return nil, errors.Newf("unknown tool: %s", name)
		}
		if err := res.Add(t); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// RegisterMCP registers all tools with the MCP server
func (r *Registry) RegisterMCP(registrator McpServerRegistrator) error {
	for _, t := range r.tools {
		if err := t.RegisterMCP(registrator); err != nil {
			return errors.WithMessagef(err, "failed to register tool %s", t.Name())
		}
	}
	return nil
}

type toolDescription struct {
	Name        string       `json:"Name" yaml:"Name"`
	Description string       `json:"Description" yaml:"Description"`
	Annotations *Annotations `json:"Annotations,omitempty" yaml:"Annotations,omitempty"`
	Parameters  any          `json:"Parameters,omitempty" yaml:"Parameters,omitempty"`
}

type toolsDescription struct {
	Tools []toolDescription `json:"Tools" yaml:"Tools"`
}

// GetDescriptions returns the names and descriptions of the tools as a JSON block
func GetDescriptions(list ...ITool) string {
	return utils.BackticksJSON(utils.ToJSONIndent(describe(false, list...)))
}

// Describe returns the catalog of the tools, with annotations and parameters,
// to be printed as YAML or JSON
func Describe(list ...ITool) any {
	return describe(true, list...)
}

func describe(full bool, list ...ITool) toolsDescription {
	var d toolsDescription
	for _, tool := range list {
		td := toolDescription{
			Name:        tool.Name(),
			Description: tool.Description(),
		}
		if full {
			if mt, ok := tool.(IMCPTool); ok {
				a := mt.Annotations()
				td.Annotations = &a
			}
			td.Parameters = tool.Parameters()
		}
		d.Tools = append(d.Tools, td)
	}
	return d
}

// AsITools returns the tools as ITool
func AsITools(list ...IMCPTool) []ITool {
	res := make([]ITool, len(list))
	for i, t := range list {
		res[i] = t
	}
	return res
}
