package crypto

import (
	"crypto/cipher"
	"fmt"
	"sort"
	"strings"

	"github.com/dgryski/go-idea"
	"github.com/tjfoc/gmsm/sm4"
	"golang.org/x/crypto/blowfish"
)

const (
	AlgorithmTripleDES = "3des"
	AlgorithmBlowfish  = "blowfish"
	AlgorithmIDEA      = "idea"
	AlgorithmSM4       = "sm4"
)

// Algorithm is a block cipher the CBC adapter can drive.
type Algorithm struct {
	Name      string
	BlockSize int
	KeySize   int

	newBlock func(key []byte) (cipher.Block, error)
}

var registry = map[string]Algorithm{
	AlgorithmTripleDES: {
		Name:      AlgorithmTripleDES,
		BlockSize: BlockSize,
		KeySize:   TripleKeySize,
		newBlock: func(key []byte) (cipher.Block, error) {
			keys, err := NewKeySetFromBytes(key)
			if err != nil {
				return nil, err
			}
			return newTripleDES(keys)
		},
	},
	AlgorithmBlowfish: {
		Name:      AlgorithmBlowfish,
		BlockSize: blowfish.BlockSize,
		KeySize:   16,
		newBlock: func(key []byte) (cipher.Block, error) {
			return blowfish.NewCipher(key)
		},
	},
	AlgorithmIDEA: {
		Name:      AlgorithmIDEA,
		BlockSize: 8,
		KeySize:   16,
		newBlock: func(key []byte) (cipher.Block, error) {
			return idea.NewCipher(key)
		},
	},
	AlgorithmSM4: {
		Name:      AlgorithmSM4,
		BlockSize: sm4.BlockSize,
		KeySize:   16,
		newBlock: func(key []byte) (cipher.Block, error) {
			return sm4.NewCipher(key)
		},
	},
}

// LookupAlgorithm returns the registered algorithm for name (case-insensitive).
func LookupAlgorithm(name string) (Algorithm, error) {
	alg, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Algorithm{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
	return alg, nil
}

// Algorithms lists registered algorithm names in sorted order.
func Algorithms() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewBlock validates the key size and builds the block primitive.
func (a Algorithm) NewBlock(key []byte) (cipher.Block, error) {
	if len(key) != a.KeySize {
		return nil, &KeyLengthError{Length: len(key), Want: a.KeySize}
	}
	block, err := a.newBlock(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s cipher: %w", a.Name, err)
	}
	return block, nil
}

// Encrypt pads and CBC-encrypts plaintext under key.
func (a Algorithm) Encrypt(plaintext, key []byte, opts ...Option) ([]byte, error) {
	block, err := a.NewBlock(key)
	if err != nil {
		return nil, err
	}
	return sealPadded(block, plaintext, opts)
}

// Decrypt CBC-decrypts ciphertext under key and strips its padding.
func (a Algorithm) Decrypt(ciphertext, key []byte, opts ...Option) ([]byte, error) {
	block, err := a.NewBlock(key)
	if err != nil {
		return nil, err
	}
	return openPadded(block, ciphertext, opts)
}
