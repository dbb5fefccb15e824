// Package ethbridgetest provides arbitrary but fixed values for tests that
// build Ethereum events.
package ethbridgetest

import (
	"github.com/chainsafe/ethbridge-events/pkg/address"
	"github.com/chainsafe/ethbridge-events/pkg/ethbridge"
	"github.com/chainsafe/ethbridge-events/pkg/hash"
	"github.com/chainsafe/ethbridge-events/pkg/token"
)

var (
	// DAIAddress is the DAI ERC20 contract on mainnet.
	DAIAddress = ethbridge.EthAddress{
		107, 23, 84, 116, 232, 144, 148, 196, 77, 169, 139, 149, 78, 237, 234, 196, 149, 39, 29, 15,
	}
	// USDCAddress is the USDC ERC20 contract on mainnet.
	USDCAddress = ethbridge.EthAddress{
		160, 184, 105, 145, 198, 33, 139, 54, 193, 209, 157, 74, 46, 158, 176, 206, 54, 6, 235, 72,
	}
)

const (
	DAIChecksummed  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	USDCChecksummed = "0xA0b86991c6218b36c1d19D4a2e9Eb0cE3606eB48"

	// EstablishedAddress is a native ledger account.
	EstablishedAddress = "atest1v4ehgw36xvcyyvejgvenxs34g3zygv3jxqunjd6rxyeyys3sxy6rwvfkx4qnj33hg9qnvse4lsfctw"
)

func ArbitraryEthAddress() ethbridge.EthAddress {
	return DAIAddress
}

func ArbitraryNonce() ethbridge.Uint {
	return ethbridge.NewUint(123)
}

func ArbitraryKeccakHash() hash.KeccakHash {
	return hash.KeccakHash{}
}

func ArbitraryAmount() token.Amount {
	return token.NewAmount(1000)
}

func ArbitraryAddress() address.Address {
	return address.MustParse(EstablishedAddress)
}

// ArbitrarySingleTransfer is a TransfersToNamada event carrying one DAI
// transfer to receiver.
func ArbitrarySingleTransfer(nonce ethbridge.Uint, receiver address.Address) ethbridge.TransfersToNamada {
	return ethbridge.TransfersToNamada{
		Nonce: nonce,
		Transfers: []ethbridge.TransferToNamada{{
			Amount:   ArbitraryAmount(),
			Asset:    ArbitraryEthAddress(),
			Receiver: receiver,
		}},
	}
}

// AllKinds returns one event of every variant, in tag order.
func AllKinds() []ethbridge.Event {
	return []ethbridge.Event{
		ArbitrarySingleTransfer(ArbitraryNonce(), ArbitraryAddress()),
		ethbridge.TransfersToEthereum{
			Nonce: ArbitraryNonce(),
			Transfers: []ethbridge.TransferToEthereum{{
				Amount:    ArbitraryAmount(),
				Asset:     USDCAddress,
				Receiver:  DAIAddress,
				GasAmount: token.NewAmount(10),
				GasPayer:  ArbitraryAddress(),
			}},
		},
		ethbridge.ValidatorSetUpdate{
			Nonce:                   ArbitraryNonce(),
			BridgeValidatorHash:     hash.Keccak256([]byte("bridge")),
			GovernanceValidatorHash: hash.Keccak256([]byte("governance")),
		},
		ethbridge.NewContract{Name: "bridge", Address: DAIAddress},
		ethbridge.UpgradedContract{Name: "governance", Address: USDCAddress},
		ethbridge.UpdateBridgeWhitelist{
			Nonce: ArbitraryNonce(),
			Whitelist: []ethbridge.TokenWhitelist{
				{Token: DAIAddress, Cap: token.NewAmount(1_000_000)},
				{Token: USDCAddress, Cap: token.NewAmount(5)},
			},
		},
	}
}
