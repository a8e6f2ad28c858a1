package crypto

import (
	"crypto/cipher"
	"fmt"
)

type options struct {
	iv []byte
}

// Option configures a single encrypt or decrypt call.
type Option func(*options)

// WithIV sets the CBC chaining seed. Without it the IV is all zero,
// which is what the pairing counterpart expects. The IV must be one block long.
func WithIV(iv []byte) Option {
	return func(o *options) {
		o.iv = iv
	}
}

func resolveIV(blockSize int, opts []Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.iv == nil {
		return make([]byte, blockSize), nil
	}
	if len(o.iv) != blockSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidIVLength, len(o.iv), blockSize)
	}
	// cipher.BlockMode keeps its own copy, but keep ownership explicit
	iv := make([]byte, blockSize)
	copy(iv, o.iv)
	return iv, nil
}

// encryptCBC chains block-aligned src through block and returns a fresh buffer.
func encryptCBC(block cipher.Block, iv, src []byte) []byte {
	dst := make([]byte, len(src))
	if len(src) == 0 {
		return dst
	}
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(dst, src)
	return dst
}

// decryptCBC reverses encryptCBC.
func decryptCBC(block cipher.Block, iv, src []byte) []byte {
	dst := make([]byte, len(src))
	if len(src) == 0 {
		return dst
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(dst, src)
	return dst
}

// sealPadded pads plain and encrypts it.
func sealPadded(block cipher.Block, plain []byte, opts []Option) ([]byte, error) {
	iv, err := resolveIV(block.BlockSize(), opts)
	if err != nil {
		return nil, err
	}
	padded, err := pad(plain, block.BlockSize())
	if err != nil {
		return nil, err
	}
	defer clear(padded)

	return encryptCBC(block, iv, padded), nil
}

// openPadded decrypts ciphertext and strips its padding.
func openPadded(block cipher.Block, ciphertext []byte, opts []Option) ([]byte, error) {
	iv, err := resolveIV(block.BlockSize(), opts)
	if err != nil {
		return nil, err
	}
	if err := checkAligned(ciphertext, block.BlockSize(), false); err != nil {
		return nil, err
	}

	decrypted := decryptCBC(block, iv, ciphertext)
	plain, err := unpad(decrypted, block.BlockSize())
	if err != nil {
		clear(decrypted)
		return nil, err
	}
	return plain, nil
}
