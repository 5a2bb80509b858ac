package hash

import (
	"encoding/binary"
	stdhash "hash"
	"hash/crc32"
)

// CRC32 digests to the 4-byte big-endian serialization of the running
// IEEE CRC-32 checksum. It has no HMAC variant.
type CRC32 struct{}

func (CRC32) Name() string          { return "CRC32" }
func (CRC32) HmacName() string      { return "" }
func (CRC32) Size() int             { return 4 }
func (CRC32) Init() Accumulator     { return &crcAccumulator{} }
func (CRC32) newHash() stdhash.Hash { return nil }

var ieeeTable = crc32.MakeTable(crc32.IEEE)

type crcAccumulator struct {
	sum  uint32
	done bool
}

func (a *crcAccumulator) Append(b []byte) {
	if a.done {
		panic("hash: append to a finalized accumulator")
	}
	a.sum = crc32.Update(a.sum, ieeeTable, b)
}

func (a *crcAccumulator) Finalize() []byte {
	if a.done {
		panic("hash: accumulator finalized twice")
	}
	a.done = true
	return binary.BigEndian.AppendUint32(nil, a.sum)
}
