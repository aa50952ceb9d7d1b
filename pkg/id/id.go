package id

import (
	"bytes"
	"slices"
	"time"
)

const (
	// BinarySize is the length of the binary form.
	BinarySize = 16
	// EncodedSize is the length of the text form.
	EncodedSize = 26
	// RandomSize is the length of the random component.
	RandomSize = 10

	// MaxTimestamp is the largest timestamp an ID can hold (2^48-1 ms).
	MaxTimestamp uint64 = 1<<48 - 1
)

// ID is a 128-bit identifier: [6 bytes ms timestamp][10 bytes randomness],
// big-endian. IDs are comparable with == and usable as map keys.
type ID [BinarySize]byte

// Nil is the zero ID.
var Nil ID

// FromParts packs the low 48 bits of ms and the random bytes into an ID.
func FromParts(ms uint64, random [RandomSize]byte) ID {
	var v ID
	v[0] = byte(ms >> 40)
	v[1] = byte(ms >> 32)
	v[2] = byte(ms >> 24)
	v[3] = byte(ms >> 16)
	v[4] = byte(ms >> 8)
	v[5] = byte(ms)
	copy(v[6:], random[:])
	return v
}

// FromBytes copies a 16-byte binary ID.
func FromBytes(b []byte) (ID, error) {
	var v ID
	if len(b) != BinarySize {
		return v, ErrInvalidBinaryLength
	}
	copy(v[:], b)
	return v, nil
}

// Timestamp returns the timestamp component in milliseconds since the epoch.
func (v ID) Timestamp() uint64 {
	return uint64(v[0])<<40 |
		uint64(v[1])<<32 |
		uint64(v[2])<<24 |
		uint64(v[3])<<16 |
		uint64(v[4])<<8 |
		uint64(v[5])
}

// Time returns the timestamp component as a UTC time.
func (v ID) Time() time.Time {
	return time.UnixMilli(int64(v.Timestamp())).UTC()
}

// Random returns a copy of the random component.
func (v ID) Random() [RandomSize]byte {
	var r [RandomSize]byte
	copy(r[:], v[6:])
	return r
}

// Bytes returns a copy of the 16-byte binary form.
func (v ID) Bytes() []byte {
	b := make([]byte, BinarySize)
	copy(b, v[:])
	return b
}

// IsZero reports whether v is Nil.
func (v ID) IsZero() bool { return v == Nil }

// Compare returns -1, 0 or 1 comparing the unsigned bytes of v and other.
func (v ID) Compare(other ID) int {
	return bytes.Compare(v[:], other[:])
}

// Sort sorts ids in ascending order.
func Sort(ids []ID) {
	slices.SortFunc(ids, ID.Compare)
}
