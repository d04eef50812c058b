package toml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToml(t *testing.T) {
	type server struct {
		Transport string `toml:"transport"`
		Address   string `toml:"address"`
	}

	enc := NewEncoder()
	bs, err := enc.Marshal(server{Transport: "http", Address: ":8080"})
	require.NoError(t, err)
	assert.Equal(t, "transport = \"http\"\naddress = \":8080\"\n", string(bs))

	var v server
	require.NoError(t, enc.Unmarshal([]byte("```toml\ntransport = \"stdio\"\n```\n"), &v))
	assert.Equal(t, "stdio", v.Transport)

	assert.Error(t, enc.Unmarshal([]byte("transport = "), &v))
}
