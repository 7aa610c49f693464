// Package videokey generates the short public keys used in watch URLs.
package videokey

import (
	"crypto/rand"
	"math/big"
)

const (
	Length   = 8
	alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

var alphabetSize = big.NewInt(int64(len(alphabet)))

// Generate returns Length characters drawn uniformly from A-Z, a-z and 0-9.
// Uniqueness is left to the unique index on contents.video_key.
func Generate() string {
	b := make([]byte, Length)
	for i := range b {
		n, err := rand.Int(rand.Reader, alphabetSize)
		if err != nil {
			panic(err)
		}
		b[i] = alphabet[n.Int64()]
	}
	return string(b)
}

// Valid reports whether key is non-empty and alphanumeric. Admin-supplied
// keys may be any length up to 64.
func Valid(key string) bool {
	if key == "" || len(key) > 64 {
		return false
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if !(c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z' || c >= '0' && c <= '9' || c == '-' || c == '_') {
			return false
		}
	}
	return true
}
