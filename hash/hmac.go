package hash

import (
	"crypto/hmac"

	"github.com/propensive/gastronomy/failure"
)

// HMAC authenticates message with key under the algorithm's HMAC variant.
// Algorithms without one (CRC32) fail with an UnsupportedHmac error.
func HMAC(alg Algorithm, key []byte, message []byte) ([]byte, error) {
	if alg.HmacName() == "" {
		return nil, failure.New(UnsupportedHmac, "%s does not define an HMAC variant", alg.Name())
	}
	mac := hmac.New(alg.newHash, key)
	mac.Write(message)
	return mac.Sum(nil), nil
}
