package json

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJson(t *testing.T) {
	type input struct {
		CompanyID string `json:"companyId"`
		Limit     *int   `json:"limit,omitempty"`
	}

	enc := NewEncoder()

	var v input
	require.NoError(t, enc.Unmarshal([]byte("Sure:\n```json\n{\"companyId\": \"c1\", \"limit\": 5}\n```"), &v))
	assert.Equal(t, "c1", v.CompanyID)
	require.NotNil(t, v.Limit)
	assert.Equal(t, 5, *v.Limit)

	var empty input
	require.NoError(t, enc.Unmarshal([]byte("  "), &empty))
	assert.Empty(t, empty.CompanyID)
	assert.Nil(t, empty.Limit)

	bs, err := enc.Marshal(map[string]string{"name": "<b>AT&T</b>"})
	require.NoError(t, err)
	assert.Equal(t, `{"name":"<b>AT&T</b>"}`, string(bs))

	bs, err = enc.WithPretty(true).Marshal(input{CompanyID: "c1"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"companyId\": \"c1\"\n}", string(bs))
}
