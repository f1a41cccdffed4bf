package apierrors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCategory
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), ""},
		{"transport", NewTransportError("Protocols", "https://x", context.DeadlineExceeded), CategoryTransport},
		{"http", NewHTTPError("Protocol", "https://x", 404, []byte("not found")), CategoryHTTP},
		{"validation", NewValidationError("$.id", "string", "number"), CategoryValidation},
		{"argument", NewArgumentError("CurrentPrices", "coins", "must not be empty"), CategoryArgument},
		{"wrapped http", fmt.Errorf("outer: %w", NewHTTPError("Protocol", "https://x", 500, nil)), CategoryHTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Categorize(tt.err))
		})
	}
}

func TestTransportErrorUnwrapsCause(t *testing.T) {
	err := NewTransportError("Pools", "https://yields.llama.fi/pools", context.Canceled)

	assert.True(t, errors.Is(err, context.Canceled))
	assert.True(t, IsTransport(err))
	assert.False(t, IsHTTP(err))
	assert.Contains(t, err.Error(), "Pools")
}

func TestHTTPErrorHelpers(t *testing.T) {
	tests := []struct {
		status   int
		notFound bool
	}{
		{400, true},
		{404, true},
		{429, false},
		{500, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			err := NewHTTPError("Protocol", "https://api.llama.fi/protocol/x", tt.status, []byte("{}"))
			assert.Equal(t, tt.status, StatusCode(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))
			assert.False(t, IsValidation(err))
		})
	}

	assert.Equal(t, 0, StatusCode(errors.New("other")))
}

func TestHTTPErrorTruncatesBodyInMessage(t *testing.T) {
	body := []byte(strings.Repeat("a", 1000))
	err := NewHTTPError("Protocols", "https://api.llama.fi/protocols", 502, body)

	assert.Less(t, len(err.Error()), 400)
	assert.Len(t, err.Body, 1000)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError(`$.coins["coingecko:ethereum"].price`, "number", "string")
	assert.Equal(t, `invalid response at $.coins["coingecko:ethereum"].price: expected number, got string`, err.Error())

	err.Operation = "CurrentPrices"
	assert.True(t, strings.HasPrefix(err.Error(), "CurrentPrices: "))
	assert.True(t, IsValidation(err))
	assert.False(t, IsArgument(err))
}
