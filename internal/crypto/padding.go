package crypto

import (
	"bytes"
	"fmt"

	"github.com/andreburgaud/crypt2go/padding"
)

// pad returns a fresh PKCS#7 padded copy of plain.
// 1..blockSize bytes are always appended, so a block aligned input gains a full block.
func pad(plain []byte, blockSize int) ([]byte, error) {
	// the padder appends in place, never hand it the caller's backing array
	buf := make([]byte, len(plain), len(plain)+blockSize)
	copy(buf, plain)

	padded, err := padding.NewPkcs7Padding(blockSize).Pad(buf)
	if err != nil {
		return nil, fmt.Errorf("failed to pad buffer: %w", err)
	}
	return padded, nil
}

// checkAligned rejects buffers that cannot be a CBC ciphertext.
func checkAligned(buf []byte, blockSize int, allowEmpty bool) error {
	if len(buf) == 0 && !allowEmpty {
		return fmt.Errorf("%w: buffer is empty", ErrInvalidBufferLength)
	}
	if len(buf)%blockSize != 0 {
		return fmt.Errorf("%w: %d bytes is not a multiple of %d", ErrInvalidBufferLength, len(buf), blockSize)
	}
	return nil
}

// unpad strips PKCS#7 padding from a decrypted, block aligned buffer.
func unpad(buf []byte, blockSize int) ([]byte, error) {
	if err := checkAligned(buf, blockSize, false); err != nil {
		return nil, err
	}

	n := int(buf[len(buf)-1])
	if n < 1 || n > blockSize {
		return nil, fmt.Errorf("%w: pad count %d", ErrInvalidPadding, n)
	}
	if !bytes.Equal(buf[len(buf)-n:], bytes.Repeat([]byte{byte(n)}, n)) {
		return nil, fmt.Errorf("%w: pad bytes differ from pad count %d", ErrInvalidPadding, n)
	}

	plain, err := padding.NewPkcs7Padding(blockSize).Unpad(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPadding, err)
	}
	return plain, nil
}
