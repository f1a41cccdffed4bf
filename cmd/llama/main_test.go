package main

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type upstream struct {
	mu    sync.Mutex
	uris  []string
	hosts *httptest.Server
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}
	r := mux.NewRouter()
	reply := func(path, body string) {
		r.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(body))
		})
	}
	reply("/api/protocols", `[{"id":"1","name":"Aave","symbol":"AAVE","chains":["Ethereum"],"category":"Lending","chainTvls":{"Ethereum":1.5}}]`)
	reply("/api/tvl/{slug}", `12.5`)
	reply("/coins/prices/current/{coins}", `{"coins":{"coingecko:ethereum":{"price":3000.5,"symbol":"ETH","timestamp":1700000000,"confidence":0.99}}}`)
	reply("/yields/pools", `{"status":"success","data":[]}`)

	u.hosts = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		u.mu.Lock()
		u.uris = append(u.uris, req.RequestURI)
		u.mu.Unlock()
		r.ServeHTTP(w, req)
	}))
	t.Cleanup(u.hosts.Close)

	t.Setenv("LLAMA_API_URL", u.hosts.URL+"/api")
	t.Setenv("LLAMA_COINS_URL", u.hosts.URL+"/coins")
	t.Setenv("LLAMA_STABLECOINS_URL", u.hosts.URL+"/stablecoins")
	t.Setenv("LLAMA_YIELDS_URL", u.hosts.URL+"/yields")
	t.Setenv("LLAMA_CONFIG_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FILE", "")
	return u
}

func (u *upstream) requests() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return append([]string(nil), u.uris...)
}

func runLlama(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newCommand(&app{})
	cmd.Writer = &out
	cmd.ErrWriter = &bytes.Buffer{}
	cmd.ExitErrHandler = func(context.Context, *cli.Command, error) {}
	err := cmd.Run(context.Background(), append([]string{"llama"}, args...))
	return out.String(), err
}

func TestProtocolsPrintsJSON(t *testing.T) {
	u := newUpstream(t)

	out, err := runLlama(t, "protocols")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "Aave"`)
	assert.Equal(t, []string{"/api/protocols"}, u.requests())
}

func TestPricesResolvesCoins(t *testing.T) {
	u := newUpstream(t)

	out, err := runLlama(t, "prices", "ethereum")
	require.NoError(t, err)
	assert.Contains(t, out, `"coingecko:ethereum"`)

	_, err = runLlama(t, "prices", "--chain", "arbitrum", "0xdf574c24545e5ffecb9a659c229253d4111d87e1,coingecko:ethereum")
	require.NoError(t, err)

	reqs := u.requests()
	require.Len(t, reqs, 2)
	assert.Equal(t, "/coins/prices/current/coingecko:ethereum", reqs[0])
	assert.Equal(t, "/coins/prices/current/arbitrum:0xdf574c24545e5ffecb9a659c229253d4111d87e1,coingecko:ethereum", reqs[1])
}

func TestPoolsUnwrapsEnvelope(t *testing.T) {
	newUpstream(t)

	out, err := runLlama(t, "pools")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", out)
}

func TestErrorsReportCategory(t *testing.T) {
	u := newUpstream(t)

	_, err := runLlama(t, "tvl")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument error")
	assert.Empty(t, u.requests())

	_, err = runLlama(t, "stablecoin-chains")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http error")

	_, err = runLlama(t, "fees", "--data-type", "dailyNotionalVolume")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument error")
}

func TestCommandsLogThroughContextLogger(t *testing.T) {
	newUpstream(t)
	logFile := filepath.Join(t.TempDir(), "llama.log")
	t.Setenv("LOG_FILE", logFile)
	t.Setenv("LOG_FORMAT", "json")

	_, err := runLlama(t, "--verbose", "tvl", "aave")
	require.NoError(t, err)

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"running command"`)
	assert.Contains(t, string(data), `"command":"tvl"`)
	assert.Contains(t, string(data), `"msg":"http request"`)
}

func TestResolveCoin(t *testing.T) {
	tests := []struct {
		arg   string
		chain string
		want  string
	}{
		{"coingecko:bitcoin", "ethereum", "coingecko:bitcoin"},
		{"bsc:0xabc", "ethereum", "bsc:0xabc"},
		{"bitcoin", "ethereum", "coingecko:bitcoin"},
		{"0xdf574c24545e5ffecb9a659c229253d4111d87e1", "ethereum", "ethereum:0xdf574c24545e5ffecb9a659c229253d4111d87e1"},
		{"0xdF574c24545E5FfEcb9a659c229253D4111d87e1", "polygon", "polygon:0xdF574c24545E5FfEcb9a659c229253D4111d87e1"},
		{"0xabc", "ethereum", "coingecko:0xabc"},
	}

	for _, tt := range tests {
		t.Run(tt.arg+"@"+tt.chain, func(t *testing.T) {
			assert.Equal(t, tt.want, resolveCoin(tt.arg, tt.chain))
		})
	}
}

func TestResolveCoinsSplitsCommas(t *testing.T) {
	got := resolveCoins([]string{"bitcoin, ethereum", "", "coingecko:dai"}, "ethereum")
	assert.Equal(t, []string{"coingecko:bitcoin", "coingecko:ethereum", "coingecko:dai"}, got)
	assert.Empty(t, resolveCoins(nil, "ethereum"))
}

func TestParseTimestamp(t *testing.T) {
	ts, err := parseTimestamp("1700000000")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), ts)

	ts, err = parseTimestamp("2023-11-14T22:13:20Z")
	require.NoError(t, err)
	assert.Equal(t, int64(1700000000), ts)

	_, err = parseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestParseBatch(t *testing.T) {
	batch, err := parseBatch([]string{"bitcoin=1700000000,1700003600", "coingecko:ethereum=2023-11-14T22:13:20Z"}, "ethereum")
	require.NoError(t, err)
	assert.Equal(t, map[string][]int64{
		"coingecko:bitcoin":  {1700000000, 1700003600},
		"coingecko:ethereum": {1700000000},
	}, batch)

	_, err = parseBatch([]string{"bitcoin"}, "ethereum")
	assert.Error(t, err)
	_, err = parseBatch([]string{"bitcoin=soon"}, "ethereum")
	assert.Error(t, err)
}
