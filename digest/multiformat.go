package digest

import (
	"bytes"
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multibase"
	"github.com/multiformats/go-multicodec"
	"github.com/multiformats/go-multihash"
	"github.com/multiformats/go-varint"
	"github.com/propensive/gastronomy/hash"
)

// Code returns the multicodec code registered for the algorithm, when one
// exists.
func Code(alg hash.Algorithm) (multicodec.Code, bool) {
	switch alg.Name() {
	case "MD5":
		return multicodec.Md5, true
	case "SHA1":
		return multicodec.Sha1, true
	case "SHA-256":
		return multicodec.Sha2_256, true
	case "SHA-384":
		return multicodec.Sha2_384, true
	case "SHA-512":
		return multicodec.Sha2_512, true
	case "SHA3-256":
		return multicodec.Sha3_256, true
	case "BLAKE2b-256":
		return multicodec.Blake2b256, true
	case "BLAKE3":
		return multicodec.Blake3, true
	case "CRC32":
		return multicodec.Crc32, true
	}
	return 0, false
}

// Multihash serializes the digest in the self-describing multihash format.
func (d Digest[A]) Multihash() (multihash.Multihash, error) {
	var alg A
	code, ok := Code(alg)
	if !ok {
		return nil, fmt.Errorf("no multicodec code for %s", alg.Name())
	}
	return multihash.Encode(d.Bytes(), uint64(code))
}

// DecodeMultihash reads a multihash back into a Digest, verifying that its
// code matches A's registration and that the digest length matches A.
func DecodeMultihash[A hash.Algorithm](b []byte) (Digest[A], error) {
	var alg A
	code, ok := Code(alg)
	if !ok {
		return Digest[A]{}, fmt.Errorf("no multicodec code for %s", alg.Name())
	}

	tag, err := varint.ReadUvarint(bytes.NewReader(b))
	if err != nil {
		return Digest[A]{}, fmt.Errorf("reading multihash code: %w", err)
	}
	if tag != uint64(code) {
		return Digest[A]{}, fmt.Errorf("expected multihash with 0x%x code instead got 0x%x", uint64(code), tag)
	}

	decoded, err := multihash.Decode(b)
	if err != nil {
		return Digest[A]{}, fmt.Errorf("decoding multihash: %w", err)
	}
	return FromBytes[A](decoded.Digest)
}

// Link wraps the digest as a CIDv1 with the raw codec.
func (d Digest[A]) Link() (cid.Cid, error) {
	mh, err := d.Multihash()
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(uint64(multicodec.Raw), mh), nil
}

// Format renders the raw digest bytes in the given multibase encoding.
func (d Digest[A]) Format(base multibase.Encoding) (string, error) {
	return multibase.Encode(base, d.Bytes())
}

// Link digests a CID by appending its binary form verbatim, so linked
// content participates in chained digests the same way nested Digest values
// do.
type Link cid.Cid

func (l Link) AppendTo(acc hash.Accumulator) {
	acc.Append(cid.Cid(l).Bytes())
}
