package ethbridge_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chainsafe/ethbridge-events/pkg/address"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge/ethbridgetest"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
	"github.com/chainsafe/ethbridge-events/pkg/token"
)

func mustHash(t *testing.T, ev ethbridge.Event) hash.Hash {
	t.Helper()
	h, err := ethbridge.HashEvent(ev)
	require.NoError(t, err)
	return h
}

// Two validators observing the same log independently must agree on its
// hash, and a different nonce must not collide.
func TestHashEvent_IndependentObservers(t *testing.T) {
	receiver := ethbridgetest.ArbitraryAddress()
	first := ethbridgetest.ArbitrarySingleTransfer(ethbridge.NewUint(123), receiver)
	second := ethbridge.TransfersToNamada{
		Nonce: ethbridge.NewUint(123),
		Transfers: []ethbridge.TransferToNamada{{
			Amount:   token.NewAmount(1000),
			Asset:    ethbridge.MustParseEthAddress(ethbridgetest.DAIChecksummed),
			Receiver: address.MustParse(ethbridgetest.EstablishedAddress),
		}},
	}

	firstBytes, err := ethbridge.EncodeEvent(first)
	require.NoError(t, err)
	secondBytes, err := ethbridge.EncodeEvent(second)
	require.NoError(t, err)
	assert.Equal(t, firstBytes, secondBytes)
	assert.Equal(t, mustHash(t, first), mustHash(t, second))
	assert.True(t, ethbridge.EqualEvents(first, second))

	next := ethbridgetest.ArbitrarySingleTransfer(ethbridge.NewUint(124), receiver)
	assert.NotEqual(t, mustHash(t, first), mustHash(t, next))
	assert.Equal(t, -1, ethbridge.CompareEvents(first, next))
}

func TestEncodeEvent_Layout(t *testing.T) {
	ev := ethbridgetest.ArbitrarySingleTransfer(ethbridgetest.ArbitraryNonce(), ethbridgetest.ArbitraryAddress())
	encoded, err := ethbridge.EncodeEvent(ev)
	require.NoError(t, err)

	var want []byte
	want = append(want, 0)
	nonce := ethbridge.NewUint(123).LittleEndianBytes()
	want = append(want, nonce[:]...)
	want = append(want, 1<<2)
	want = append(want, 0xe8, 0x03, 0, 0, 0, 0, 0, 0)
	want = append(want, ethbridgetest.DAIAddress[:]...)
	// compact length 84 takes two bytes: (84<<2)|1 little-endian
	want = append(want, 0x51, 0x01)
	want = append(want, ethbridgetest.EstablishedAddress...)

	assert.Equal(t, want, encoded)
	assert.Equal(t, hash.Sha256(want), mustHash(t, ev))
}

func TestEncodeEvent_Contract(t *testing.T) {
	encoded, err := ethbridge.EncodeEvent(ethbridge.NewContract{Name: "bridge", Address: ethbridgetest.DAIAddress})
	require.NoError(t, err)

	want := append([]byte{3, 6 << 2}, "bridge"...)
	want = append(want, ethbridgetest.DAIAddress[:]...)
	assert.Equal(t, want, encoded)

	encoded, err = ethbridge.EncodeEvent(ethbridge.UpgradedContract{Name: "bridge", Address: ethbridgetest.DAIAddress})
	require.NoError(t, err)
	assert.Equal(t, byte(4), encoded[0])
	assert.Equal(t, want[1:], encoded[1:])
}

func TestEncodeEvent_PointerVariants(t *testing.T) {
	ev := ethbridgetest.ArbitrarySingleTransfer(ethbridgetest.ArbitraryNonce(), ethbridgetest.ArbitraryAddress())
	assert.Equal(t, mustHash(t, ev), mustHash(t, &ev))
	assert.True(t, ethbridge.EqualEvents(ev, &ev))
}

func TestEncodeEvent_Errors(t *testing.T) {
	var encErr *ethbridge.EncodingError

	_, err := ethbridge.EncodeEvent(nil)
	require.True(t, errors.As(err, &encErr))
	assert.ErrorIs(t, err, ethbridge.ErrNilEvent)

	var nilPtr *ethbridge.NewContract
	_, err = ethbridge.HashEvent(nilPtr)
	assert.ErrorIs(t, err, ethbridge.ErrNilEvent)

	_, err = ethbridge.HashEvent(ethbridge.NewContract{Name: "\xff\xfe", Address: ethbridgetest.DAIAddress})
	assert.True(t, errors.As(err, &encErr))

	// a transfer without a receiver has no canonical form
	_, err = ethbridge.EncodeEvent(ethbridge.TransfersToNamada{
		Transfers: []ethbridge.TransferToNamada{{Asset: ethbridgetest.DAIAddress}},
	})
	assert.True(t, errors.As(err, &encErr))
	assert.ErrorIs(t, err, address.ErrInvalidAddress)
}

func TestHashEvent_FieldSensitivity(t *testing.T) {
	base := ethbridgetest.AllKinds()
	changed := []ethbridge.Event{
		ethbridge.TransfersToNamada{
			Nonce: ethbridgetest.ArbitraryNonce(),
			Transfers: []ethbridge.TransferToNamada{{
				Amount:   token.NewAmount(1001),
				Asset:    ethbridgetest.DAIAddress,
				Receiver: ethbridgetest.ArbitraryAddress(),
			}},
		},
		ethbridge.TransfersToNamada{
			Nonce: ethbridgetest.ArbitraryNonce(),
			Transfers: []ethbridge.TransferToNamada{{
				Amount:   ethbridgetest.ArbitraryAmount(),
				Asset:    ethbridgetest.USDCAddress,
				Receiver: ethbridgetest.ArbitraryAddress(),
			}},
		},
		ethbridgetest.ArbitrarySingleTransfer(ethbridgetest.ArbitraryNonce(), address.MustParse("atest1other")),
		ethbridgetest.ArbitrarySingleTransfer(ethbridgetest.ArbitraryNonce().Next(), ethbridgetest.ArbitraryAddress()),
		ethbridge.TransfersToNamada{Nonce: ethbridgetest.ArbitraryNonce()},
		ethbridge.ValidatorSetUpdate{
			Nonce:                   ethbridgetest.ArbitraryNonce(),
			BridgeValidatorHash:     hash.Keccak256([]byte("governance")),
			GovernanceValidatorHash: hash.Keccak256([]byte("bridge")),
		},
		ethbridge.NewContract{Name: "bridge2", Address: ethbridgetest.DAIAddress},
		ethbridge.NewContract{Name: "bridge", Address: ethbridgetest.USDCAddress},
		ethbridge.UpdateBridgeWhitelist{
			Nonce: ethbridgetest.ArbitraryNonce(),
			Whitelist: []ethbridge.TokenWhitelist{
				{Token: ethbridgetest.USDCAddress, Cap: token.NewAmount(5)},
				{Token: ethbridgetest.DAIAddress, Cap: token.NewAmount(1_000_000)},
			},
		},
	}

	seen := map[hash.Hash]ethbridge.Event{}
	for _, ev := range append(base, changed...) {
		h := mustHash(t, ev)
		prev, dup := seen[h]
		require.False(t, dup, "%#v collides with %#v", ev, prev)
		seen[h] = ev
	}
}

func TestCompareEvents_TagFirst(t *testing.T) {
	toNamada := ethbridge.TransfersToNamada{Nonce: ethbridgetest.ArbitraryNonce()}
	toEthereum := ethbridge.TransfersToEthereum{Nonce: ethbridgetest.ArbitraryNonce()}

	assert.False(t, ethbridge.EqualEvents(toNamada, toEthereum))
	assert.Equal(t, -1, ethbridge.CompareEvents(toNamada, toEthereum))
	assert.Equal(t, 1, ethbridge.CompareEvents(toEthereum, toNamada))

	// a lower tag wins even with a larger nonce
	bigNonce := ethbridge.TransfersToNamada{Nonce: ethbridge.Uint{0, 0, 0, 1}}
	assert.Equal(t, -1, ethbridge.CompareEvents(bigNonce, toEthereum))

	all := ethbridgetest.AllKinds()
	shuffled := slices.Clone(all)
	slices.Reverse(shuffled)
	slices.SortFunc(shuffled, ethbridge.CompareEvents)
	for i := range all {
		assert.Equal(t, all[i].Kind(), shuffled[i].Kind())
	}
}

func TestCompareEvents_Sequences(t *testing.T) {
	one := ethbridgetest.ArbitrarySingleTransfer(ethbridgetest.ArbitraryNonce(), ethbridgetest.ArbitraryAddress())
	two := one
	two.Transfers = append(slices.Clone(one.Transfers), one.Transfers[0])
	empty := ethbridge.TransfersToNamada{Nonce: ethbridgetest.ArbitraryNonce(), Transfers: []ethbridge.TransferToNamada{}}
	nilTransfers := ethbridge.TransfersToNamada{Nonce: ethbridgetest.ArbitraryNonce()}

	assert.Equal(t, -1, ethbridge.CompareEvents(one, two), "prefix sorts first")
	assert.Equal(t, -1, ethbridge.CompareEvents(empty, one))
	assert.True(t, ethbridge.EqualEvents(empty, nilTransfers))
	assert.Equal(t, mustHash(t, empty), mustHash(t, nilTransfers))

	assert.Equal(t, -1, ethbridge.CompareEvents(nil, one))
	assert.Equal(t, 0, ethbridge.CompareEvents(nil, nil))
}

func TestDecodeEvent_RoundTrip(t *testing.T) {
	for _, ev := range ethbridgetest.AllKinds() {
		t.Run(ev.Kind().String(), func(t *testing.T) {
			encoded, err := ethbridge.EncodeEvent(ev)
			require.NoError(t, err)
			assert.Equal(t, byte(ev.Kind()), encoded[0])

			decoded, err := ethbridge.DecodeEvent(encoded)
			require.NoError(t, err)
			assert.True(t, ethbridge.EqualEvents(ev, decoded))

			again, err := ethbridge.EncodeEvent(decoded)
			require.NoError(t, err)
			assert.Equal(t, encoded, again)
		})
	}
}

func TestDecodeEvent_Errors(t *testing.T) {
	valid, err := ethbridge.EncodeEvent(ethbridge.NewContract{Name: "bridge", Address: ethbridgetest.DAIAddress})
	require.NoError(t, err)

	var encErr *ethbridge.EncodingError

	_, err = ethbridge.DecodeEvent(append(slices.Clone(valid), 0))
	require.True(t, errors.As(err, &encErr))
	assert.ErrorIs(t, err, ethbridge.ErrTrailingBytes)

	_, err = ethbridge.DecodeEvent([]byte{6})
	assert.ErrorIs(t, err, ethbridge.ErrUnknownEventKind)

	_, err = ethbridge.DecodeEvent(nil)
	assert.True(t, errors.As(err, &encErr))

	_, err = ethbridge.DecodeEvent(valid[:len(valid)-1])
	assert.True(t, errors.As(err, &encErr))

	// sequence length far beyond the remaining input
	huge := append([]byte{0}, bytes.Repeat([]byte{0}, 32)...)
	huge = append(huge, 0x03, 0xff, 0xff, 0xff, 0xff)
	_, err = ethbridge.DecodeEvent(huge)
	assert.True(t, errors.As(err, &encErr))
}

func TestDecodeEvent_EmptyName(t *testing.T) {
	ev := ethbridge.UpgradedContract{Address: ethbridgetest.USDCAddress}
	encoded, err := ethbridge.EncodeEvent(ev)
	require.NoError(t, err)

	decoded, err := ethbridge.DecodeEvent(encoded)
	require.NoError(t, err)
	assert.Equal(t, ev, decoded)
}

func TestNonceOf(t *testing.T) {
	for _, ev := range ethbridgetest.AllKinds() {
		nonce, ok := ethbridge.NonceOf(ev)
		switch ev.Kind() {
		case ethbridge.KindNewContract, ethbridge.KindUpgradedContract:
			assert.False(t, ok, ev.Kind().String())
		default:
			assert.True(t, ok, ev.Kind().String())
			assert.Equal(t, ethbridgetest.ArbitraryNonce(), nonce)
		}
	}
	_, ok := ethbridge.NonceOf(nil)
	assert.False(t, ok)
}

func TestAssets(t *testing.T) {
	ev := ethbridge.TransfersToEthereum{
		Nonce: ethbridgetest.ArbitraryNonce(),
		Transfers: []ethbridge.TransferToEthereum{
			{Asset: ethbridgetest.USDCAddress, GasPayer: ethbridgetest.ArbitraryAddress()},
			{Asset: ethbridgetest.DAIAddress, GasPayer: ethbridgetest.ArbitraryAddress()},
			{Asset: ethbridgetest.USDCAddress, GasPayer: ethbridgetest.ArbitraryAddress()},
		},
	}
	assert.Equal(t, []ethbridge.EthAddress{ethbridgetest.USDCAddress, ethbridgetest.DAIAddress}, ethbridge.Assets(ev))

	whitelist := ethbridgetest.AllKinds()[5]
	assert.Equal(t, []ethbridge.EthAddress{ethbridgetest.DAIAddress, ethbridgetest.USDCAddress}, ethbridge.Assets(whitelist))

	assert.Empty(t, ethbridge.Assets(ethbridge.NewContract{Name: "bridge", Address: ethbridgetest.DAIAddress}))
}

func TestEventKind(t *testing.T) {
	for i, kind := range ethbridge.EventKinds() {
		assert.Equal(t, ethbridge.EventKind(i), kind)
		parsed, err := ethbridge.ParseEventKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	_, err := ethbridge.ParseEventKind("transfer")
	assert.ErrorIs(t, err, ethbridge.ErrUnknownEventKind)
	assert.False(t, ethbridge.EventKind(6).Valid())
}
