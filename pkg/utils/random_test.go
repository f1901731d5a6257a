package utils

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionID(t *testing.T) {
	a, b := SessionID(), SessionID()

	assert.Len(t, a, 16)
	_, err := hex.DecodeString(a)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
