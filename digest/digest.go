package digest

import (
	"fmt"

	"github.com/propensive/gastronomy/codec/hex"
	"github.com/propensive/gastronomy/hash"
)

// Digest is the immutable output of hashing a value under algorithm A.
// Digests compare by content: two digests are equal exactly when their bytes
// are, and Digest values are usable as map keys.
type Digest[A hash.Algorithm] struct {
	sum string
}

// Of hashes a digestible value: it allocates a fresh accumulator for A,
// drives the value's rule over it and finalizes.
func Of[A hash.Algorithm](value Digestible) Digest[A] {
	var alg A
	acc := alg.Init()
	value.AppendTo(acc)
	return Digest[A]{sum: string(acc.Finalize())}
}

// OfBytes hashes a flat byte payload.
func OfBytes[A hash.Algorithm](b []byte) Digest[A] {
	return Of[A](Bytes(b))
}

// FromBytes wraps an existing sum, verifying its length against A.
func FromBytes[A hash.Algorithm](b []byte) (Digest[A], error) {
	var alg A
	if len(b) != alg.Size() {
		return Digest[A]{}, fmt.Errorf("invalid %s digest length: %d wanted: %d", alg.Name(), len(b), alg.Size())
	}
	return Digest[A]{sum: string(b)}, nil
}

func (d Digest[A]) Algorithm() A {
	var alg A
	return alg
}

func (d Digest[A]) Bytes() []byte {
	return []byte(d.sum)
}

func (d Digest[A]) Equal(other Digest[A]) bool {
	return d.sum == other.sum
}

func (d Digest[A]) String() string {
	return d.Algorithm().Name() + ":" + hex.Lower.Encode([]byte(d.sum))
}

// AppendTo appends the raw digest bytes verbatim, so digests can be hashed
// into other values for Merkle-style chaining.
func (d Digest[A]) AppendTo(acc hash.Accumulator) {
	acc.Append([]byte(d.sum))
}

// Hmac is an immutable authentication tag produced under algorithm A's HMAC
// variant. Like Digest it compares by content.
type Hmac[A hash.Algorithm] struct {
	sum string
}

// HmacOf authenticates message with key under A's HMAC variant. Algorithms
// without one (CRC32) fail with an UnsupportedHmac error.
func HmacOf[A hash.Algorithm](key []byte, message []byte) (Hmac[A], error) {
	var alg A
	sum, err := hash.HMAC(alg, key, message)
	if err != nil {
		return Hmac[A]{}, err
	}
	return Hmac[A]{sum: string(sum)}, nil
}

func (h Hmac[A]) Algorithm() A {
	var alg A
	return alg
}

func (h Hmac[A]) Bytes() []byte {
	return []byte(h.sum)
}

func (h Hmac[A]) Equal(other Hmac[A]) bool {
	return h.sum == other.sum
}

func (h Hmac[A]) String() string {
	return h.Algorithm().HmacName() + ":" + hex.Lower.Encode([]byte(h.sum))
}
