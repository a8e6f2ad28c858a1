package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidKeyLength is returned when a key segment has the wrong size.
	ErrInvalidKeyLength = errors.New("invalid key length")
	// ErrInvalidBufferLength is returned when a ciphertext is empty or not block aligned.
	ErrInvalidBufferLength = errors.New("invalid buffer length")
	// ErrInvalidPadding is returned when decrypted padding bytes are malformed.
	ErrInvalidPadding = errors.New("invalid padding")
	// ErrInvalidIVLength is returned when a caller supplied IV is not one block long.
	ErrInvalidIVLength = errors.New("invalid initialization vector length")
	// ErrUnknownAlgorithm is returned by LookupAlgorithm for unregistered names.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// KeyLengthError describes which key segment failed validation.
type KeyLengthError struct {
	Segment int // 1-based, 0 when the key is not segmented
	Length  int
	Want    int
}

func (e *KeyLengthError) Error() string {
	if e.Segment == 0 {
		return fmt.Sprintf("%s: got %d bytes, want %d", ErrInvalidKeyLength, e.Length, e.Want)
	}
	return fmt.Sprintf("%s: key%d is %d bytes, want %d", ErrInvalidKeyLength, e.Segment, e.Length, e.Want)
}

func (e *KeyLengthError) Unwrap() error {
	return ErrInvalidKeyLength
}

// IsKeyLengthError checks if err is (or wraps) a key length failure
func IsKeyLengthError(err error) bool {
	return errors.Is(err, ErrInvalidKeyLength)
}
