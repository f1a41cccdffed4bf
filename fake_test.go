package defillama

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
)

// recordedRequest is what the fake upstream saw of one request.
type recordedRequest struct {
	URI    string
	Path   string
	Query  url.Values
	Header http.Header
}

// fakeLlama serves canned JSON for the four hosts, mounted under /api, /coins,
// /stablecoins and /yields of a single test server.
type fakeLlama struct {
	server *httptest.Server
	router *mux.Router

	mu       sync.Mutex
	requests []recordedRequest
}

func newFakeLlama(t *testing.T) *fakeLlama {
	t.Helper()

	f := &fakeLlama{router: mux.NewRouter()}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		f.requests = append(f.requests, recordedRequest{
			URI:    r.RequestURI,
			Path:   r.URL.EscapedPath(),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
		})
		f.mu.Unlock()
		f.router.ServeHTTP(w, r)
	}))
	t.Cleanup(f.server.Close)
	return f
}

// reply registers a canned response for GET path.
func (f *fakeLlama) reply(path string, status int, body string) {
	f.router.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}).Methods(http.MethodGet)
}

func (f *fakeLlama) json(path, body string) {
	f.reply(path, http.StatusOK, body)
}

func (f *fakeLlama) handle(path string, fn http.HandlerFunc) {
	f.router.HandleFunc(path, fn).Methods(http.MethodGet)
}

func (f *fakeLlama) recorded() []recordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]recordedRequest(nil), f.requests...)
}

func (f *fakeLlama) last(t *testing.T) recordedRequest {
	t.Helper()
	reqs := f.recorded()
	require.NotEmpty(t, reqs, "no request reached the fake upstream")
	return reqs[len(reqs)-1]
}

func (f *fakeLlama) config() *Config {
	cfg := DefaultConfig()
	cfg.BaseURL = f.server.URL + "/api"
	cfg.CoinsURL = f.server.URL + "/coins"
	cfg.StablecoinsURL = f.server.URL + "/stablecoins"
	cfg.YieldsURL = f.server.URL + "/yields/"
	cfg.HTTPClient = f.server.Client()
	return cfg
}

func (f *fakeLlama) client(t *testing.T) *Client {
	t.Helper()
	c, err := NewClient(f.config())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c
}

const (
	protocolsBody = `[
		{"id":"1","name":"Aave","symbol":"AAVE","chains":["Ethereum"],"category":"Lending","tvl":1e10,"chainTvls":{"Ethereum":1e10}},
		{"id":"2","name":"Lido","symbol":"LDO","chains":["Ethereum"],"category":"Liquid Staking","chainTvls":{"Ethereum":2e10}},
		{"id":"3","name":"Uniswap","symbol":"UNI","chains":["Ethereum","Arbitrum"],"category":"Dexes","chainTvls":{}}
	]`

	stablecoinBody = `{"id":"1","name":"Tether","symbol":"USDT","pegType":"peggedUSD","pegMechanism":"fiat-backed",
		"circulating":{"peggedUSD":8.3e10},"circulatingPrevDay":{"ethereum":1000.0},"circulatingPrevWeek":0}`

	poolBody = `{"chain":"Ethereum","project":"lido","symbol":"STETH","tvlUsd":2.1e10,"apy":3.1,
		"pool":"747c1d2a-c668-4682-b9f9-296708a3dd90","stablecoin":false,"rewardTokens":null}`

	husd = "ethereum:0xdF574c24545E5FfEcb9a659c229253D4111d87e1"
)
