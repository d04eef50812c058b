package json

import (
	"bytes"

	"github.com/bububa/ljson"
	"github.com/effective-security/vendrmcp/utils"
)

// Encoder is a lenient JSON codec:
// text around the JSON document is ignored and quoted numbers are accepted.
type Encoder struct {
	pretty bool
}

func NewEncoder() *Encoder {
	return &Encoder{}
}

// WithPretty enables indented output
func (e *Encoder) WithPretty(pretty bool) *Encoder {
	e.pretty = pretty
	return e
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	return utils.Marshal(v, e.pretty)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := utils.CleanJSON(bs)
	if len(bytes.TrimSpace(data)) == 0 {
		data = []byte("{}")
	}
	return ljson.Unmarshal(data, ret)
}
