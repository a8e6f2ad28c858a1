package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/AlexZinkM/pairing-cipher/internal/model"

	"golang.org/x/crypto/scrypt"
)

const (
	saltLen   = 16
	macKeyLen = 32
)

var (
	// ErrInvalidPassphrase is returned when the envelope MAC does not verify.
	ErrInvalidPassphrase = errors.New("invalid passphrase")
	// ErrInvalidEnvelope is returned for envelopes that cannot be parsed.
	ErrInvalidEnvelope = errors.New("invalid envelope")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ScryptParams are the key derivation cost parameters.
type ScryptParams struct {
	N int
	R int
	P int
}

// DefaultScryptParams: N=2^15 (~32MB RAM per derivation).
var DefaultScryptParams = ScryptParams{N: 1 << 15, R: 8, P: 1}

// deriveKeys returns a cipher key of keyLen bytes and a MAC key.
func deriveKeys(passphrase, salt []byte, keyLen int, params ScryptParams) (cipherKey, macKey []byte, err error) {
	material, err := scrypt.Key(passphrase, salt, params.N, params.R, params.P, keyLen+macKeyLen)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to derive key: %w", err)
	}
	return material[:keyLen], material[keyLen:], nil
}

func envelopeMAC(macKey []byte, algorithm string, iv, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, macKey)
	mac.Write([]byte(algorithm))
	mac.Write(iv)
	mac.Write(ciphertext)
	return mac.Sum(nil)
}

// SealEnvelope encrypts plaintext under a key derived from passphrase.
// passphrase must be []byte for security (caller should zero it after use)
func SealEnvelope(plaintext, passphrase []byte, algorithm string, params ScryptParams) (*model.Envelope, error) {
	alg, err := LookupAlgorithm(algorithm)
	if err != nil {
		return nil, err
	}

	// Generate salt and IV
	salt := make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("failed to generate salt: %w", err)
	}
	iv := make([]byte, alg.BlockSize)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("failed to generate iv: %w", err)
	}

	cipherKey, macKey, err := deriveKeys(passphrase, salt, alg.KeySize, params)
	if err != nil {
		return nil, err
	}
	defer clear(cipherKey)
	defer clear(macKey)

	ciphertext, err := alg.Encrypt(plaintext, cipherKey, WithIV(iv))
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt: %w", err)
	}

	return &model.Envelope{
		Algorithm:  alg.Name,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		CipherText: base64.StdEncoding.EncodeToString(ciphertext),
		MAC:        base64.StdEncoding.EncodeToString(envelopeMAC(macKey, alg.Name, iv, ciphertext)),
	}, nil
}

// OpenEnvelope verifies and decrypts env.
// passphrase must be []byte for security (caller should zero it after use)
func OpenEnvelope(env *model.Envelope, passphrase []byte, params ScryptParams) ([]byte, error) {
	if env == nil {
		return nil, fmt.Errorf("%w: envelope is nil", ErrInvalidEnvelope)
	}
	alg, err := LookupAlgorithm(env.Algorithm)
	if err != nil {
		return nil, err
	}

	// Decode salt, iv, ciphertext and mac
	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode salt: %w", ErrInvalidEnvelope, err)
	}
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode iv: %w", ErrInvalidEnvelope, err)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.CipherText)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode ciphertext: %w", ErrInvalidEnvelope, err)
	}
	tag, err := base64.StdEncoding.DecodeString(env.MAC)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode mac: %w", ErrInvalidEnvelope, err)
	}

	cipherKey, macKey, err := deriveKeys(passphrase, salt, alg.KeySize, params)
	if err != nil {
		return nil, err
	}
	defer clear(cipherKey)
	defer clear(macKey)

	if !hmac.Equal(tag, envelopeMAC(macKey, alg.Name, iv, ciphertext)) {
		return nil, ErrInvalidPassphrase
	}

	plaintext, err := alg.Decrypt(ciphertext, cipherKey, WithIV(iv))
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plaintext, nil
}

// MarshalEnvelope serializes env as indented JSON with a UTF-8 BOM for proper display in Windows.
func MarshalEnvelope(env *model.Envelope) ([]byte, error) {
	data, err := json.MarshalIndent(env, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal envelope: %w", err)
	}
	return append(append([]byte{}, utf8BOM...), data...), nil
}

// UnmarshalEnvelope parses envelope JSON, skipping a UTF-8 BOM if present.
func UnmarshalEnvelope(data []byte) (*model.Envelope, error) {
	if len(data) >= 3 && data[0] == 0xEF && data[1] == 0xBB && data[2] == 0xBF {
		data = data[3:]
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: envelope is empty", ErrInvalidEnvelope)
	}

	var env model.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal: %w", ErrInvalidEnvelope, err)
	}
	return &env, nil
}
