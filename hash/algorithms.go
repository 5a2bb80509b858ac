package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	stdhash "hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

type MD5 struct{}

func (MD5) Name() string          { return "MD5" }
func (MD5) HmacName() string      { return "HmacMD5" }
func (MD5) Size() int             { return md5.Size }
func (MD5) Init() Accumulator     { return newAccumulator(md5.New()) }
func (MD5) newHash() stdhash.Hash { return md5.New() }

type SHA1 struct{}

func (SHA1) Name() string          { return "SHA1" }
func (SHA1) HmacName() string      { return "HmacSHA1" }
func (SHA1) Size() int             { return sha1.Size }
func (SHA1) Init() Accumulator     { return newAccumulator(sha1.New()) }
func (SHA1) newHash() stdhash.Hash { return sha1.New() }

type SHA256 struct{}

func (SHA256) Name() string          { return "SHA-256" }
func (SHA256) HmacName() string      { return "HmacSHA256" }
func (SHA256) Size() int             { return sha256.Size }
func (SHA256) Init() Accumulator     { return newAccumulator(sha256.New()) }
func (SHA256) newHash() stdhash.Hash { return sha256.New() }

type SHA384 struct{}

func (SHA384) Name() string          { return "SHA-384" }
func (SHA384) HmacName() string      { return "HmacSHA384" }
func (SHA384) Size() int             { return sha512.Size384 }
func (SHA384) Init() Accumulator     { return newAccumulator(sha512.New384()) }
func (SHA384) newHash() stdhash.Hash { return sha512.New384() }

type SHA512 struct{}

func (SHA512) Name() string          { return "SHA-512" }
func (SHA512) HmacName() string      { return "HmacSHA512" }
func (SHA512) Size() int             { return sha512.Size }
func (SHA512) Init() Accumulator     { return newAccumulator(sha512.New()) }
func (SHA512) newHash() stdhash.Hash { return sha512.New() }

type SHA3_256 struct{}

func (SHA3_256) Name() string          { return "SHA3-256" }
func (SHA3_256) HmacName() string      { return "HmacSHA3-256" }
func (SHA3_256) Size() int             { return 32 }
func (SHA3_256) Init() Accumulator     { return newAccumulator(sha3.New256()) }
func (SHA3_256) newHash() stdhash.Hash { return sha3.New256() }

type BLAKE2b256 struct{}

func (BLAKE2b256) Name() string      { return "BLAKE2b-256" }
func (BLAKE2b256) HmacName() string  { return "HmacBLAKE2b" }
func (BLAKE2b256) Size() int         { return blake2b.Size256 }
func (BLAKE2b256) Init() Accumulator { return newAccumulator(BLAKE2b256{}.newHash()) }
func (BLAKE2b256) newHash() stdhash.Hash {
	// New256 only fails for oversized keys; there is no key here.
	h, _ := blake2b.New256(nil)
	return h
}

type BLAKE3 struct{}

func (BLAKE3) Name() string          { return "BLAKE3" }
func (BLAKE3) HmacName() string      { return "HmacBLAKE3" }
func (BLAKE3) Size() int             { return 32 }
func (BLAKE3) Init() Accumulator     { return newAccumulator(blake3.New()) }
func (BLAKE3) newHash() stdhash.Hash { return blake3.New() }
