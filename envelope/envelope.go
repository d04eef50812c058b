// Package envelope wraps tool results into the uniform {isError, errorMessage, data} contract.
package envelope

import (
	"github.com/effective-security/vendrmcp/utils"
)

// ContentTypeText is the only content type produced
const ContentTypeText = "text"

// Outcome is a domain result: a success value or a failure message.
type Outcome interface {
	IsFailure() bool
	Message() string
	Data() any
}

// Result is the typed Outcome of an operation.
type Result[T any] struct {
	value   T
	message string
	failed  bool
}

// ensure Result implements Outcome
var _ Outcome = Result[int]{}

// Success returns a successful result.
func Success[T any](v T) Result[T] {
	return Result[T]{value: v}
}

// Failure returns a failed result with the message.
func Failure[T any](message string) Result[T] {
	return Result[T]{message: message, failed: true}
}

// IsFailure returns true if the result carries a failure message
func (r Result[T]) IsFailure() bool {
	return r.failed
}

// Message returns the failure message
func (r Result[T]) Message() string {
	return r.message
}

// Value returns the success value
func (r Result[T]) Value() T {
	return r.value
}

// Data returns the success value as any
func (r Result[T]) Data() any {
	if r.failed {
		return nil
	}
	return r.value
}

// Envelope is the structured content of a response.
// Exactly one of ErrorMessage and Data is meaningful, depending on IsError.
type Envelope struct {
	IsError      bool    `json:"isError" yaml:"isError"`
	ErrorMessage *string `json:"errorMessage" yaml:"errorMessage"`
	Data         any     `json:"data" yaml:"data"`
}

// Content is a serialized representation of the envelope.
type Content struct {
	Type string `json:"type" yaml:"type"`
	Text string `json:"text" yaml:"text"`
}

// Response is returned to the transport unchanged.
type Response struct {
	IsError           bool      `json:"isError" yaml:"isError"`
	StructuredContent Envelope  `json:"structuredContent" yaml:"structuredContent"`
	Content           []Content `json:"content" yaml:"content"`
}

// Text returns the text of the first content, if any
func (r *Response) Text() string {
	if r == nil || len(r.Content) == 0 {
		return ""
	}
	return r.Content[0].Text
}

// Builder produces responses with a bounded serializer.
type Builder struct {
	serializer utils.Serializer
}

// Default builder uses the response serializer preset
var Default = NewBuilder(utils.Serializers.Response)

// NewBuilder returns a builder for the serializer
func NewBuilder(s utils.Serializer) *Builder {
	return &Builder{serializer: s}
}

// WithMaxLength returns a builder with the maximum text length
func WithMaxLength(maxLength int) *Builder {
	s := utils.Serializers.Response
	if maxLength > 0 {
		s.MaxLength = maxLength
	}
	return NewBuilder(s)
}

// Build returns the response for the outcome using the Default builder.
func Build(o Outcome) *Response {
	return Default.Build(o)
}

// Build returns the response for the outcome.
// It never panics: a value that cannot be serialized yields a failure
// whose message and text are the serialization diagnostic.
func (b *Builder) Build(o Outcome) *Response {
	if o.IsFailure() {
		return b.Failure(o.Message())
	}
	return b.Success(o.Data())
}

// Success returns the response for the value.
func (b *Builder) Success(v any) *Response {
	data, err := utils.Sanitize(v)
	if err != nil {
		diag := utils.SerializationError(err)
		return &Response{
			IsError: true,
			StructuredContent: Envelope{
				IsError:      true,
				ErrorMessage: &diag,
			},
			Content: []Content{{Type: ContentTypeText, Text: diag}},
		}
	}
	return b.respond(Envelope{Data: data})
}

// Failure returns the response for the message.
func (b *Builder) Failure(message string) *Response {
	msg := utils.SanitizeString(message)
	return b.respond(Envelope{IsError: true, ErrorMessage: &msg})
}

func (b *Builder) respond(env Envelope) *Response {
	return &Response{
		IsError:           env.IsError,
		StructuredContent: env,
		Content: []Content{
			{Type: ContentTypeText, Text: b.serializer.Serialize(env)},
		},
	}
}
