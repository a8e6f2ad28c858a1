package crypto

import (
	"crypto/cipher"
	"crypto/des"
	"fmt"
)

// BlockSize is the triple-DES block size.
const BlockSize = des.BlockSize

// newTripleDES builds the EDE primitive: encrypt k1, decrypt k2, encrypt k3.
func newTripleDES(keys KeySet) (cipher.Block, error) {
	key := keys.Bytes()
	defer clear(key)

	block, err := des.NewTripleDESCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return block, nil
}

// TripleDESCBCEncrypt pads plaintext with PKCS#7 and encrypts it with
// triple-DES (EDE) in CBC mode. The result is block aligned and always
// longer than plaintext. The IV is all zero unless WithIV is passed.
func TripleDESCBCEncrypt(plaintext, key1, key2, key3 []byte, opts ...Option) ([]byte, error) {
	keys, err := NewKeySet(key1, key2, key3)
	if err != nil {
		return nil, err
	}
	return EncryptWithKeySet(plaintext, keys, opts...)
}

// TripleDESCBCDecrypt reverses TripleDESCBCEncrypt and returns the original plaintext.
func TripleDESCBCDecrypt(ciphertext, key1, key2, key3 []byte, opts ...Option) ([]byte, error) {
	keys, err := NewKeySet(key1, key2, key3)
	if err != nil {
		return nil, err
	}
	return DecryptWithKeySet(ciphertext, keys, opts...)
}

// EncryptWithKeySet is TripleDESCBCEncrypt for an already validated KeySet.
func EncryptWithKeySet(plaintext []byte, keys KeySet, opts ...Option) ([]byte, error) {
	block, err := newTripleDES(keys)
	if err != nil {
		return nil, err
	}
	return sealPadded(block, plaintext, opts)
}

// DecryptWithKeySet is TripleDESCBCDecrypt for an already validated KeySet.
func DecryptWithKeySet(ciphertext []byte, keys KeySet, opts ...Option) ([]byte, error) {
	block, err := newTripleDES(keys)
	if err != nil {
		return nil, err
	}
	return openPadded(block, ciphertext, opts)
}

// TripleDESCBCEncryptBlocks encrypts block aligned data without padding.
// Output length equals input length; an empty input gives an empty output.
func TripleDESCBCEncryptBlocks(data []byte, keys KeySet, opts ...Option) ([]byte, error) {
	iv, err := resolveIV(BlockSize, opts)
	if err != nil {
		return nil, err
	}
	if err := checkAligned(data, BlockSize, true); err != nil {
		return nil, err
	}
	block, err := newTripleDES(keys)
	if err != nil {
		return nil, err
	}
	return encryptCBC(block, iv, data), nil
}

// TripleDESCBCDecryptBlocks decrypts block aligned data without removing padding.
func TripleDESCBCDecryptBlocks(data []byte, keys KeySet, opts ...Option) ([]byte, error) {
	iv, err := resolveIV(BlockSize, opts)
	if err != nil {
		return nil, err
	}
	if err := checkAligned(data, BlockSize, true); err != nil {
		return nil, err
	}
	block, err := newTripleDES(keys)
	if err != nil {
		return nil, err
	}
	return decryptCBC(block, iv, data), nil
}
