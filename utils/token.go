package utils

import (
	"crypto/rand"
	"math/big"
)

// GenerateRandomToken returns a random alphanumeric code, used for
// password reset. Falls back to digits-only on the (unlikely) failure
// of the system randomness source.
func GenerateRandomToken(length int) string {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	token := make([]byte, length)
	for i := range token {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			token[i] = '0'
			continue
		}
		token[i] = charset[n.Int64()]
	}
	return string(token)
}
