package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"reflect"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/vendrmcp/encoding"
	jsonenc "github.com/effective-security/vendrmcp/encoding/json"
	"github.com/effective-security/vendrmcp/envelope"
	"github.com/effective-security/vendrmcp/observer"
	"github.com/effective-security/vendrmcp/pkg/metricskey"
	"github.com/effective-security/vendrmcp/schema"
	"github.com/effective-security/vendrmcp/utils"
	"github.com/effective-security/xlog"
	mcp "trpc.group/trpc-go/trpc-mcp-go"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/vendrmcp", "tools")

// RunFunc is the operation of a tool
type RunFunc[I any, O any] func(ctx context.Context, in *I) (*O, error)

// Output is the structured output of every tool
type Output[O any] struct {
	IsError      bool    `json:"isError" jsonschema:"description=true if the call failed"`
	ErrorMessage *string `json:"errorMessage,omitempty" jsonschema:"description=the reason of the failure"`
	Data         *O      `json:"data,omitempty" jsonschema:"description=the result of the call"`
}

// Tool is a typed tool: the input I is decoded and validated,
// and the output O is wrapped into the envelope.
type Tool[I any, O any] struct {
	name        string
	description string
	annotations Annotations
	params      *schema.Schema
	run         RunFunc[I, O]
	observer    observer.Observer
	builder     *envelope.Builder
	message     func(error) string
}

// ensure Tool implements IMCPTool
var _ IMCPTool = (*Tool[struct{}, struct{}])(nil)

// New returns a tool with the schema of I as parameters
func New[I any, O any](name, description string, run RunFunc[I, O]) (*Tool[I, O], error) {
	if name == "" {
		return nil, errors.New("tool name is required")
	}
	if run == nil {
		return nil, errors.Newf("tool %s: run function is required", name)
	}
	params, err := schema.Of[I]()
	if err != nil {
		return nil, errors.WithMessagef(err, "tool %s: failed to reflect input", name)
	}
	return &Tool[I, O]{
		name:        name,
		description: description,
		params:      params,
		run:         run,
		observer:    observer.NewNoop(),
		builder:     envelope.Default,
		message:     errorMessage,
	}, nil
}

// WithAnnotations sets the behavior hints
func (t *Tool[I, O]) WithAnnotations(a Annotations) *Tool[I, O] {
	t.annotations = a
	return t
}

// WithObserver sets the observer notified about every call
func (t *Tool[I, O]) WithObserver(o observer.Observer) *Tool[I, O] {
	t.observer = observer.OrNoop(o)
	return t
}

// WithBuilder sets the envelope builder
func (t *Tool[I, O]) WithBuilder(b *envelope.Builder) *Tool[I, O] {
	if b != nil {
		t.builder = b
	}
	return t
}

// WithMessage sets the function that produces the error message of a failed run
func (t *Tool[I, O]) WithMessage(fn func(error) string) *Tool[I, O] {
	if fn != nil {
		t.message = fn
	}
	return t
}

func (t *Tool[I, O]) Name() string {
	return t.name
}

func (t *Tool[I, O]) Description() string {
	return t.description
}

func (t *Tool[I, O]) Annotations() Annotations {
	return t.annotations
}

func (t *Tool[I, O]) Parameters() any {
	return t.params.Parameters
}

// InputType returns the type of the tool input
func (t *Tool[I, O]) InputType() reflect.Type {
	return reflect.TypeFor[I]()
}

// Run executes the operation without the envelope.
// A panic is recovered and returned as an error.
func (t *Tool[I, O]) Run(ctx context.Context, in *I) (out *O, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recovered(r)
			logger.ContextKV(ctx, xlog.ERROR,
				"tool", t.name,
				"panic", err.Error(),
			)
		}
	}()
	return t.run(ctx, in)
}

// Call executes the tool with JSON input
func (t *Tool[I, O]) Call(ctx context.Context, input string) (string, error) {
	resp := t.Execute(ctx, jsonenc.NewEncoder(), []byte(input))
	if resp.IsError {
		msg := ""
		if resp.StructuredContent.ErrorMessage != nil {
			msg = *resp.StructuredContent.ErrorMessage
		}
		return resp.Text(), errors.New(msg)
	}
	return resp.Text(), nil
}

// Execute decodes the input, runs the tool and returns the envelope
func (t *Tool[I, O]) Execute(ctx context.Context, codec encoding.Codec, input []byte) *envelope.Response {
	started := time.Now()
	defer metricskey.PerfToolCall.MeasureSince(started, t.name)

	tags := observer.Tags{
		observer.TagKind: observer.KindTool,
		observer.TagTool: t.name,
		observer.TagArgs: string(input),
	}

	in, err := encoding.Decode[I](codec, input)
	if err != nil {
		err = errors.Mark(err, ErrInvalidInput)
		t.observer.OnError(ctx, t.name, err, tags.With(observer.TagReason, observer.ReasonInvalidInput))
		return t.builder.Failure(err.Error())
	}

	out, err := t.Run(ctx, in)
	tags = tags.With(observer.TagDuration, time.Since(started).String())
	if err != nil {
		t.observer.OnError(ctx, t.name, err, tags)
		return t.builder.Failure(t.message(err))
	}

	resp := t.builder.Success(out)
	if resp.IsError {
		t.observer.OnError(ctx, t.name, errors.New(resp.Text()), tags)
		return resp
	}
	t.observer.OnSuccess(ctx, t.name, tags)
	return resp
}

// RegisterMCP registers the tool with the MCP server
func (t *Tool[I, O]) RegisterMCP(registrator McpServerRegistrator) error {
	if registrator == nil {
		return errors.New("registrator is required")
	}
	tool := mcp.NewTool(t.name,
		mcp.WithDescription(t.description),
		mcp.WithInputStruct[I](),
		mcp.WithOutputStruct[Output[O]](),
	)
	registrator.RegisterTool(tool, t.handleMCP)
	return nil
}

func (t *Tool[I, O]) handleMCP(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.Params.Arguments
	if args == nil {
		args = map[string]any{}
	}
	raw, err := json.Marshal(args)
	if err != nil {
		return ToCallToolResult(t.builder.Failure(err.Error())), nil
	}

	logger.ContextKV(ctx, xlog.DEBUG, "tool", t.name, "args", utils.Truncate(string(raw), utils.Serializers.Tracing.MaxLength, utils.TruncationSuffix))
	return ToCallToolResult(t.Execute(ctx, jsonenc.NewEncoder(), raw)), nil
}

// ToCallToolResult converts the envelope response to the MCP result
func ToCallToolResult(resp *envelope.Response) *mcp.CallToolResult {
	content := make([]mcp.Content, 0, len(resp.Content))
	for _, c := range resp.Content {
		content = append(content, mcp.NewTextContent(c.Text))
	}
	return &mcp.CallToolResult{
		Content:           content,
		StructuredContent: resp.StructuredContent,
		IsError:           resp.IsError,
	}
}

func errorMessage(err error) string {
	return err.Error()
}

func recovered(r any) error {
	switch v := r.(type) {
	case error:
		return errors.WithStack(v)
	case string:
		return errors.New(v)
	default:
		return errors.New(fmt.Sprint(v))
	}
}
