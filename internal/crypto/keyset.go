package crypto

import (
	"crypto/des"
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// SegmentSize is the size of one DES key segment.
	SegmentSize = 8
	// TripleKeySize is k1 || k2 || k3.
	TripleKeySize = 3 * SegmentSize
	// DoubleKeySize is k1 || k2, expanded to k1, k2, k1.
	DoubleKeySize = 2 * SegmentSize

	checkValueLen = 3
)

// KeySet is the ordered (k1, k2, k3) triple used by EDE.
// It is a value type: segments are copied in and never shared with the caller.
type KeySet struct {
	segments [3][SegmentSize]byte
}

// NewKeySet validates and copies three 8-byte key segments.
func NewKeySet(k1, k2, k3 []byte) (KeySet, error) {
	var ks KeySet
	for i, k := range [][]byte{k1, k2, k3} {
		if len(k) != SegmentSize {
			return KeySet{}, &KeyLengthError{Segment: i + 1, Length: len(k), Want: SegmentSize}
		}
		copy(ks.segments[i][:], k)
	}
	return ks, nil
}

// NewTwoKeySet splits a 16-byte key into (k1, k2, k1).
func NewTwoKeySet(key []byte) (KeySet, error) {
	if len(key) != DoubleKeySize {
		return KeySet{}, &KeyLengthError{Length: len(key), Want: DoubleKeySize}
	}
	return NewKeySet(key[:SegmentSize], key[SegmentSize:], key[:SegmentSize])
}

// NewKeySetFromBytes splits a 24-byte key into (k1, k2, k3).
func NewKeySetFromBytes(key []byte) (KeySet, error) {
	if len(key) != TripleKeySize {
		return KeySet{}, &KeyLengthError{Length: len(key), Want: TripleKeySize}
	}
	return NewKeySet(key[:SegmentSize], key[SegmentSize:DoubleKeySize], key[DoubleKeySize:])
}

// Segment returns a copy of key segment i (1..3).
func (ks KeySet) Segment(i int) []byte {
	if i < 1 || i > 3 {
		panic(fmt.Sprintf("crypto: key segment %d out of range", i))
	}
	out := make([]byte, SegmentSize)
	copy(out, ks.segments[i-1][:])
	return out
}

// Bytes returns k1 || k2 || k3 in a fresh buffer. Caller should clear it after use.
func (ks KeySet) Bytes() []byte {
	out := make([]byte, 0, TripleKeySize)
	for i := range ks.segments {
		out = append(out, ks.segments[i][:]...)
	}
	return out
}

// CheckValue returns the key check value: the first three bytes of EDE(0^8), upper-case hex.
func (ks KeySet) CheckValue() (string, error) {
	key := ks.Bytes()
	defer clear(key)

	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cipher: %w", err)
	}

	out := make([]byte, des.BlockSize)
	block.Encrypt(out, make([]byte, des.BlockSize))
	return strings.ToUpper(hex.EncodeToString(out[:checkValueLen])), nil
}
