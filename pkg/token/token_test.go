package token

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/snowfork/go-substrate-rpc-client/v4/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"0", 0},
		{"1", 1_000_000},
		{"0.001", 1_000},
		{"12.5", 12_500_000},
		{"0.000001", 1},
		{"18446744073709.551615", math.MaxUint64},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Micro())
		})
	}
}

func TestParseAmount_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "-1", "0.0000001", "18446744073709.551616"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseAmount(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidAmount))
		})
	}
}

func TestAmount_String(t *testing.T) {
	assert.Equal(t, "0.001000", NewAmount(1_000).String())
	assert.Equal(t, "0.000000", Amount{}.String())
	assert.Equal(t, "12.500000", NewAmount(12_500_000).String())
}

func TestAmount_Add(t *testing.T) {
	sum, err := NewAmount(1).Add(NewAmount(2))
	require.NoError(t, err)
	assert.Equal(t, NewAmount(3), sum)

	_, err = NewAmount(math.MaxUint64).Add(NewAmount(1))
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestAmount_Cmp(t *testing.T) {
	assert.Equal(t, -1, NewAmount(1).Cmp(NewAmount(2)))
	assert.Equal(t, 0, NewAmount(2).Cmp(NewAmount(2)))
	assert.Equal(t, 1, NewAmount(3).Cmp(NewAmount(2)))
}

func TestAmount_JSONRoundTrip(t *testing.T) {
	in := NewAmount(1_234_567)
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Equal(t, `"1.234567"`, string(raw))

	var out Amount
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, in, out)
}

func TestAmount_Encode(t *testing.T) {
	bz, err := types.EncodeToBytes(NewAmount(1_000))
	require.NoError(t, err)
	assert.Equal(t, []byte{0xe8, 0x03, 0, 0, 0, 0, 0, 0}, bz)

	var out Amount
	require.NoError(t, types.DecodeFromBytes(bz, &out))
	assert.Equal(t, NewAmount(1_000), out)
}
