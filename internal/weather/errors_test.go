package weather

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorMessages(t *testing.T) {
	tests := []struct {
		status int
		want   string
	}{
		{400, "Bad request:\nPlease check your input"},
		{401, "Unauthorized:\nInvalid API key"},
		{402, "Forbidden:\nAccess is denied"},
		{403, "Forbidden:\nAccess is denied"},
		{404, "Not found:\nCity not found"},
		{500, "Internal Server Error:\nPlease try again later"},
		{502, "Bad Gateway:\nInvalid response from the server"},
		{503, "Service Unavailable:\nServer is down"},
		{504, "Gateway Timeout:\nNo-response from the server"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := NewHTTPError(tt.status, "ignored")
			assert.Equal(t, tt.want, err.Message())
			assert.Equal(t, tt.status, err.Status)
		})
	}
}

func TestUnmappedStatusCarriesDetail(t *testing.T) {
	err := NewHTTPError(418, "418 Client Error: I'm a teapot")

	assert.Equal(t, KindOtherHTTP, err.Kind)
	assert.Equal(t, "HTTP error occured:\n418 Client Error: I'm a teapot", err.Message())
}

func TestTransportErrorMessages(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindConnectionFailure, "Connection Error:\nCheck your internet connection"},
		{KindTimeout, "Timeout Error:\nThe request timed out"},
		{KindTooManyRedirects, "Too many Redirects:\nCheck the URL"},
		{KindOtherRequest, "Request Error:\nboom"},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			err := NewRequestError(tt.kind, errors.New("boom"))
			assert.Equal(t, tt.want, err.Message())
		})
	}
}

func TestAsFetchError(t *testing.T) {
	assert.Nil(t, AsFetchError(nil))

	orig := NewHTTPError(404, "")
	wrapped := fmt.Errorf("lookup: %w", orig)
	assert.Same(t, orig, AsFetchError(wrapped))

	cause := errors.New("decode failed")
	fe := AsFetchError(cause)
	require.NotNil(t, fe)
	assert.Equal(t, KindOtherRequest, fe.Kind)
	assert.ErrorIs(t, fe, cause)
}
