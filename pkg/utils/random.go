package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// SessionID создает короткий уникальный идентификатор партии (16 hex-символов).
// Он не зависит от игрового сида: две партии с одним сидом различаются.
func SessionID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		panic("failed to generate session id: " + err.Error())
	}
	return hex.EncodeToString(b)
}
