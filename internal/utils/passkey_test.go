package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPasskeyRoundTrip(t *testing.T) {
	encoded := EncodePasskey("123456")
	assert.Equal(t, "MTIzNDU2", encoded)

	decoded, err := DecodePasskey(encoded)
	require.NoError(t, err)
	assert.Equal(t, "123456", decoded)
}

func TestDecodePasskeyRejectsInvalidInput(t *testing.T) {
	_, err := DecodePasskey("%%%not-base64%%%")
	assert.Error(t, err)
}
