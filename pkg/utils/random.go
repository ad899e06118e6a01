package utils

import (
	"crypto/rand"
	"math/big"
)

const charset = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

// GenerateRandomID generates a random string of length n.
// Ambiguous glyphs (0/O, 1/I) are left out so codes can be read back over the phone.
func GenerateRandomID(n int) string {
	b := make([]byte, n)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return ""
		}
		b[i] = charset[num.Int64()]
	}
	return string(b)
}
