package llm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"auth", &ProviderError{StatusCode: 401, Err: errors.New("bad key")}, "authentication"},
		{"forbidden", &ProviderError{StatusCode: 403, Err: errors.New("forbidden")}, "authentication"},
		{"rate limit", &ProviderError{StatusCode: 429, Err: errors.New("slow down")}, "rate_limit"},
		{"server", &ProviderError{StatusCode: 503, Err: errors.New("boom")}, "server"},
		{"no status", &ProviderError{Err: errors.New("timeout")}, "upstream"},
		{"plain error", errors.New("context deadline exceeded"), "upstream"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Classify(tc.err))
		})
	}
}

func TestNewClientRequiresKey(t *testing.T) {
	_, err := NewClient(ProviderOpenAI, "")
	assert.ErrorIs(t, err, ErrNotConfigured)

	_, err = NewClient(ProviderAnthropic, "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
