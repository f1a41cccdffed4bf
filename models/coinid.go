package models

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// CoinGeckoChain is the pseudo-chain prefix for CoinGecko ids, as in "coingecko:ethereum".
const CoinGeckoChain = "coingecko"

// CoinID identifies a token as "{chain}:{address}" or "coingecko:{id}".
type CoinID string

// EVMCoin builds the identifier of an EVM token, with the address in checksum form.
func EVMCoin(chain string, addr common.Address) CoinID {
	return CoinID(chain + ":" + addr.Hex())
}

// GeckoCoin builds the identifier of a token known by its CoinGecko id.
func GeckoCoin(id string) CoinID {
	return CoinID(CoinGeckoChain + ":" + id)
}

// ParseCoin splits an identifier into chain and address/id. ok is false when the
// identifier has no chain prefix.
func ParseCoin(id string) (chain, address string, ok bool) {
	chain, address, ok = strings.Cut(id, ":")
	if !ok || chain == "" || address == "" {
		return "", "", false
	}
	return chain, address, true
}

// Chain returns the chain prefix, or "" if the identifier is malformed.
func (c CoinID) Chain() string {
	chain, _, _ := ParseCoin(string(c))
	return chain
}

// EVMAddress returns the token address when the identifier names an EVM contract.
func (c CoinID) EVMAddress() (common.Address, bool) {
	chain, address, ok := ParseCoin(string(c))
	if !ok || chain == CoinGeckoChain || !common.IsHexAddress(address) {
		return common.Address{}, false
	}
	return common.HexToAddress(address), true
}

// JoinCoins renders coins as the comma-joined path segment the coins API expects.
// Identifiers are kept verbatim.
func JoinCoins[T ~string](coins []T) string {
	parts := make([]string, len(coins))
	for i, c := range coins {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}
