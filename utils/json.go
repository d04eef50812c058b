package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"
)

// TruncationSuffix is appended to serialized text cut at the maximum length
const TruncationSuffix = "... [truncated]"

// DefaultMaxLength is used when Serializer.MaxLength is not set
const DefaultMaxLength = 10000

// SanitizeString rewrites characters that break downstream byte-string transports.
// U+2028 becomes "\n", U+2029 becomes "\n\n", U+0080..U+009F are removed
// and any code point above U+00FF, including invalid UTF-8, is dropped.
func SanitizeString(s string) string {
	clean := true
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			clean = false
			break
		}
	}
	if clean {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == '\u2028':
			b.WriteByte('\n')
		case r == '\u2029':
			b.WriteString("\n\n")
		case r == utf8.RuneError && size == 1:
			// invalid encoding
		case r >= 0x80 && r <= 0x9F:
		case r > 0xFF:
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeValue sanitizes every string and every object key of a decoded JSON value.
// Numbers, booleans and nil are returned as is.
func SanitizeValue(v any) any {
	switch t := v.(type) {
	case string:
		return SanitizeString(t)
	case []any:
		res := make([]any, len(t))
		for i, item := range t {
			res[i] = SanitizeValue(item)
		}
		return res
	case map[string]any:
		res := make(map[string]any, len(t))
		for k, item := range t {
			res[SanitizeString(k)] = SanitizeValue(item)
		}
		return res
	default:
		return v
	}
}

// Sanitize converts the value to its JSON data model and sanitizes it.
// It fails if the value has no JSON representation.
func Sanitize(v any) (any, error) {
	js, err := Marshal(v, false)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(js))
	dec.UseNumber()
	var decoded any
	if err = dec.Decode(&decoded); err != nil {
		return nil, err
	}
	return SanitizeValue(decoded), nil
}

// Marshal returns JSON without HTML escaping.
func Marshal(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Truncate cuts the text so the result, suffix included, has at most maxLength characters.
func Truncate(text string, maxLength int, suffix string) string {
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	keep := maxLength - utf8.RuneCountInString(suffix)
	if keep <= 0 {
		// no room for content, the marker itself is cut to the limit
		text, suffix, keep = suffix, "", max(maxLength, 0)
	}
	n := 0
	for i := range text {
		if n == keep {
			return text[:i] + suffix
		}
		n++
	}
	return text + suffix
}

// SerializationError returns the diagnostic text used when a value cannot be serialized
func SerializationError(err error) string {
	return fmt.Sprintf("[Serialization Error: %s]", err.Error())
}

// Serializer produces bounded JSON text.
type Serializer struct {
	MaxLength        int
	Pretty           bool
	TruncationSuffix string
}

// Serialize returns JSON text of at most MaxLength characters.
// It never fails: unrepresentable values yield a diagnostic string.
func (s Serializer) Serialize(v any) string {
	js, err := Marshal(v, s.Pretty)
	if err != nil {
		return SerializationError(err)
	}

	maxLength := s.MaxLength
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	suffix := s.TruncationSuffix
	if suffix == "" {
		suffix = TruncationSuffix
	}
	return Truncate(string(js), maxLength, suffix)
}

// Serializers are presets for common use cases
var Serializers = struct {
	// Tracing is for arguments in traces
	Tracing Serializer
	// Error is for error details
	Error Serializer
	// Logging is for general logging
	Logging Serializer
	// Response is for tool responses
	Response Serializer
}{
	Tracing:  Serializer{MaxLength: 2000},
	Error:    Serializer{MaxLength: 5000, Pretty: true},
	Logging:  Serializer{MaxLength: 3000},
	Response: Serializer{MaxLength: 15000},
}
