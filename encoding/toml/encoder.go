package toml

import (
	"github.com/BurntSushi/toml"
	"github.com/effective-security/vendrmcp/utils"
)

type Encoder struct{}

func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) Marshal(v any) ([]byte, error) {
	return toml.Marshal(v)
}

func (e *Encoder) Unmarshal(bs []byte, ret any) error {
	data := utils.BytesTrimBackticks(bs)
	return toml.Unmarshal(data, ret)
}
