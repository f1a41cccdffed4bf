package models

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

func TestCoinIDs(t *testing.T) {
	addr := common.HexToAddress("0xdf574c24545e5ffecb9a659c229253d4111d87e1")
	id := EVMCoin("ethereum", addr)
	assert.Equal(t, CoinID("ethereum:0xdF574c24545E5FfEcb9a659c229253D4111d87e1"), id)
	assert.Equal(t, "ethereum", id.Chain())

	got, ok := id.EVMAddress()
	assert.True(t, ok)
	assert.Equal(t, addr, got)

	gecko := GeckoCoin("ethereum")
	assert.Equal(t, CoinID("coingecko:ethereum"), gecko)
	_, ok = gecko.EVMAddress()
	assert.False(t, ok)

	_, ok = CoinID("solana:So11111111111111111111111111111111111111112").EVMAddress()
	assert.False(t, ok)
}

func TestParseCoin(t *testing.T) {
	tests := []struct {
		in      string
		chain   string
		address string
		ok      bool
	}{
		{"coingecko:ethereum", "coingecko", "ethereum", true},
		{"bsc:0x762539b45a1dcce3d36d080f74d1aed37844b878", "bsc", "0x762539b45a1dcce3d36d080f74d1aed37844b878", true},
		{"ethereum", "", "", false},
		{":0xabc", "", "", false},
		{"ethereum:", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			chain, address, ok := ParseCoin(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.chain, chain)
			assert.Equal(t, tt.address, address)
		})
	}
}

func TestJoinCoins(t *testing.T) {
	assert.Equal(t, "", JoinCoins([]string{}))
	assert.Equal(t, "coingecko:ethereum,ethereum:0xdF574c24545E5FfEcb9a659c229253D4111d87e1",
		JoinCoins([]CoinID{"coingecko:ethereum", "ethereum:0xdF574c24545E5FfEcb9a659c229253D4111d87e1"}))
}
