package address

import (
	"encoding/json"
	"testing"

	"github.com/snowfork/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const established = "atest1v4ehgw36xvcyyvejgvenxs34g3zygv3jxqunjd6rxyeyys3sxy6rwvfkx4qnj33hg9qnvse4lsfctw"

func TestParse(t *testing.T) {
	a, err := Parse(established)
	require.NoError(t, err)
	assert.Equal(t, established, a.String())
	assert.False(t, a.IsZero())
}

func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "ATEST1ABC", "atest1 abc", "atest1/abc", string(make([]byte, MaxLength+1))} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidAddress, "input %q", in)
	}
}

func TestCompare(t *testing.T) {
	a := MustParse("atest1aaa")
	b := MustParse("atest1bbb")
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 0, a.Compare(MustParse("atest1aaa")))
	assert.Equal(t, 1, b.Compare(a))
}

func TestJSON(t *testing.T) {
	a := MustParse(established)
	raw, err := json.Marshal(a)
	require.NoError(t, err)
	assert.Equal(t, `"`+established+`"`, string(raw))

	var back Address
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, a, back)

	assert.Error(t, json.Unmarshal([]byte(`"Not Valid"`), &back))
}

func TestEncodeDecode(t *testing.T) {
	a := MustParse("atest1abc")
	bz, err := types.EncodeToBytes(a)
	require.NoError(t, err)
	// compact length 9 is encoded as 9<<2
	assert.Equal(t, append([]byte{9 << 2}, []byte("atest1abc")...), bz)

	var back Address
	require.NoError(t, types.DecodeFromBytes(bz, &back))
	assert.Equal(t, a, back)
}
