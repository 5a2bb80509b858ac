package digest

import (
	"encoding/binary"
	"math"

	"github.com/propensive/gastronomy/hash"
)

// Digestible is implemented by values that can serialize themselves into an
// accumulator's canonical byte stream. The stream must be a deterministic,
// order-preserving function of the value: two equal values always produce
// identical bytes.
//
// Composite types implement Digestible by listing their parts in declared
// order, typically through Record and Variant.
type Digestible interface {
	AppendTo(acc hash.Accumulator)
}

// Bool encodes as a single byte, 1 for true and 0 for false.
type Bool bool

func (v Bool) AppendTo(acc hash.Accumulator) {
	if v {
		acc.Append([]byte{1})
	} else {
		acc.Append([]byte{0})
	}
}

// Byte encodes as the byte itself.
type Byte byte

func (v Byte) AppendTo(acc hash.Accumulator) {
	acc.Append([]byte{byte(v)})
}

// Integers encode big-endian at their full bit width.

type Int16 int16

func (v Int16) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint16(nil, uint16(v)))
}

type Int32 int32

func (v Int32) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint32(nil, uint32(v)))
}

type Int64 int64

func (v Int64) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint64(nil, uint64(v)))
}

type Uint16 uint16

func (v Uint16) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint16(nil, uint16(v)))
}

type Uint32 uint32

func (v Uint32) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint32(nil, uint32(v)))
}

type Uint64 uint64

func (v Uint64) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint64(nil, uint64(v)))
}

// Char encodes as a 2-byte big-endian code unit.
type Char uint16

func (v Char) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint16(nil, uint16(v)))
}

// Floats encode as the big-endian serialization of their IEEE-754 bit
// pattern. NaN payloads are preserved verbatim, not normalized.

type Float32 float32

func (v Float32) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint32(nil, math.Float32bits(float32(v))))
}

type Float64 float64

func (v Float64) AppendTo(acc hash.Accumulator) {
	acc.Append(binary.BigEndian.AppendUint64(nil, math.Float64bits(float64(v))))
}

// Text encodes as its UTF-8 bytes, verbatim, with no length prefix.
type Text string

func (v Text) AppendTo(acc hash.Accumulator) {
	acc.Append([]byte(v))
}

// Bytes encodes verbatim.
type Bytes []byte

func (v Bytes) AppendTo(acc hash.Accumulator) {
	acc.Append(v)
}

// Optional encodes an absent value as nothing at all and a present value as
// exactly its payload encoding, with no marker byte. None and a present
// zero-length payload therefore produce identical streams; this ambiguity is
// inherent to the format and deliberately preserved.
type Optional[T Digestible] struct {
	value   T
	present bool
}

func Some[T Digestible](value T) Optional[T] {
	return Optional[T]{value: value, present: true}
}

func None[T Digestible]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) AppendTo(acc hash.Accumulator) {
	if o.present {
		o.value.AppendTo(acc)
	}
}

// Sequence encodes each element in order, back to back, with no count or
// separators. Variable-width elements are only unambiguous when the sequence
// is the final part of the stream; fixed-width elements are always safe.
type Sequence[T Digestible] []T

func (s Sequence[T]) AppendTo(acc hash.Accumulator) {
	for _, v := range s {
		v.AppendTo(acc)
	}
}

// Record encodes each field in declared order with no separators. Composite
// types implement Digestible by appending a Record of their fields.
type Record []Digestible

func (r Record) AppendTo(acc hash.Accumulator) {
	for _, f := range r {
		f.AppendTo(acc)
	}
}

// Variant encodes the 4-byte big-endian zero-based ordinal of the chosen
// alternative followed by that alternative's payload encoding. A nil payload
// encodes the ordinal alone.
type Variant struct {
	Ordinal uint32
	Payload Digestible
}

func (v Variant) AppendTo(acc hash.Accumulator) {
	Uint32(v.Ordinal).AppendTo(acc)
	if v.Payload != nil {
		v.Payload.AppendTo(acc)
	}
}
