package hash

import (
	stdhash "hash"

	"github.com/propensive/gastronomy/failure"
)

// Failure names used by this package.
const (
	InvalidAlgorithmName = "InvalidAlgorithmName"
	UnsupportedHmac      = "UnsupportedHmac"
)

// Algorithm identifies a digest primitive: its canonical name, the name of
// its HMAC variant (empty when none is defined) and its output size in
// bytes. The set of algorithms is closed; descriptors are stateless values.
type Algorithm interface {
	Name() string
	HmacName() string
	Size() int
	// Init allocates a fresh accumulator bound to the algorithm. The
	// accumulator belongs to a single digest computation.
	Init() Accumulator
	// newHash returns a fresh instance of the platform primitive backing
	// the algorithm, or nil when the algorithm streams its own checksum.
	newHash() stdhash.Hash
}

// Accumulator absorbs bytes incrementally before producing a final digest.
// It is single-owner and single-use: Finalize consumes it, and any call
// after that is a programming error and panics.
type Accumulator interface {
	Append(b []byte)
	Finalize() []byte
}

type accumulator struct {
	h    stdhash.Hash
	done bool
}

func newAccumulator(h stdhash.Hash) *accumulator {
	return &accumulator{h: h}
}

func (a *accumulator) Append(b []byte) {
	if a.done {
		panic("hash: append to a finalized accumulator")
	}
	a.h.Write(b)
}

func (a *accumulator) Finalize() []byte {
	if a.done {
		panic("hash: accumulator finalized twice")
	}
	a.done = true
	return a.h.Sum(nil)
}

var algorithms = []Algorithm{
	MD5{}, SHA1{}, SHA256{}, SHA384{}, SHA512{},
	SHA3_256{}, BLAKE2b256{}, BLAKE3{}, CRC32{},
}

// ByName resolves an algorithm descriptor from its canonical name, e.g.
// "SHA-256". Unrecognized names are a configuration error, not a data error.
func ByName(name string) (Algorithm, error) {
	for _, a := range algorithms {
		if a.Name() == name {
			return a, nil
		}
	}
	return nil, failure.New(InvalidAlgorithmName, "unrecognized hash algorithm: %s", name)
}
