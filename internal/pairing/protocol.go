// Package pairing implements the second-factor pairing cryptography between the
// phone and a hardware dongle: ECDH session keys, challenge blobs and
// transaction summaries, all carried by two-key triple-DES in CBC mode with a
// zero IV and no padding.
package pairing

import (
	"fmt"
	"strings"

	"github.com/AlexZinkM/pairing-cipher/internal/common"
	"github.com/AlexZinkM/pairing-cipher/internal/crypto"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

const (
	SessionKeyLen = 16
	PairingKeyLen = 16
	NonceLen      = 8
	ChallengeLen  = 4

	// challenge bytes are rendered as printable characters offset from '0'
	challengeOffset  = '0'
	challengeMaxChar = '~'
)

// ParsePrivateKey parses a raw 32-byte secp256k1 scalar.
func ParsePrivateKey(b []byte) (*secp256k1.PrivateKey, error) {
	if len(b) != secp256k1.PrivKeyBytesLen {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidPrivateKey, len(b), secp256k1.PrivKeyBytesLen)
	}
	priv := secp256k1.PrivKeyFromBytes(b)
	if priv.Key.IsZero() {
		return nil, fmt.Errorf("%w: zero scalar", ErrInvalidPrivateKey)
	}
	return priv, nil
}

// ParsePublicKey parses a SEC1 (compressed or uncompressed) secp256k1 point.
func ParsePublicKey(b []byte) (*secp256k1.PublicKey, error) {
	pub, err := secp256k1.ParsePubKey(b)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPublicKey, err)
	}
	return pub, nil
}

// SessionKey computes the 16-byte session key shared with the dongle:
// the raw ECDH X coordinate folded in half with XOR.
func SessionKey(privateKey, attestationKey []byte) ([]byte, error) {
	priv, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	pub, err := ParsePublicKey(attestationKey)
	if err != nil {
		return nil, err
	}
	return deriveSessionKey(priv, pub)
}

func deriveSessionKey(priv *secp256k1.PrivateKey, pub *secp256k1.PublicKey) ([]byte, error) {
	secret := secp256k1.GenerateSharedSecret(priv, pub)
	defer clear(secret)

	first, second := common.SplitInTwo(secret)
	defer clear(first)
	defer clear(second)

	key, err := common.XORPair(first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to fold shared secret: %w", err)
	}
	return key, nil
}

// EncryptData encrypts block aligned data under a 16-byte session or pairing key.
func EncryptData(data, key []byte) ([]byte, error) {
	keys, err := crypto.NewTwoKeySet(key)
	if err != nil {
		return nil, err
	}
	return crypto.TripleDESCBCEncryptBlocks(data, keys)
}

// DecryptData reverses EncryptData.
func DecryptData(data, key []byte) ([]byte, error) {
	keys, err := crypto.NewTwoKeySet(key)
	if err != nil {
		return nil, err
	}
	return crypto.TripleDESCBCDecryptBlocks(data, keys)
}

func checkBlob(blob []byte) error {
	if len(blob) < NonceLen+crypto.BlockSize {
		return fmt.Errorf("%w: %d bytes is too short", ErrInvalidBlob, len(blob))
	}
	return nil
}

// Nonce returns the leading nonce of a challenge blob.
func Nonce(blob []byte) ([]byte, error) {
	if err := checkBlob(blob); err != nil {
		return nil, err
	}
	return append([]byte{}, blob[:NonceLen]...), nil
}

// EncryptedData returns the encrypted part of a challenge blob.
func EncryptedData(blob []byte) ([]byte, error) {
	if err := checkBlob(blob); err != nil {
		return nil, err
	}
	return append([]byte{}, blob[NonceLen:]...), nil
}

func checkDecrypted(data []byte) error {
	if len(data) < ChallengeLen+PairingKeyLen {
		return fmt.Errorf("%w: decrypted challenge is %d bytes", ErrInvalidBlob, len(data))
	}
	return nil
}

// ChallengeData returns the challenge bytes of a decrypted challenge.
func ChallengeData(decrypted []byte) ([]byte, error) {
	if err := checkDecrypted(decrypted); err != nil {
		return nil, err
	}
	return append([]byte{}, decrypted[:ChallengeLen]...), nil
}

// PairingKey returns the long term pairing key carried by a decrypted challenge.
func PairingKey(decrypted []byte) ([]byte, error) {
	if err := checkDecrypted(decrypted); err != nil {
		return nil, err
	}
	return append([]byte{}, decrypted[ChallengeLen:ChallengeLen+PairingKeyLen]...), nil
}

// ChallengeString renders challenge bytes for display, each byte offset from '0'.
func ChallengeString(data []byte) (string, error) {
	var sb strings.Builder
	for _, b := range data {
		c := int(b) + challengeOffset
		if c > challengeMaxChar {
			return "", fmt.Errorf("%w: byte 0x%02x is not displayable", ErrInvalidChallenge, b)
		}
		sb.WriteByte(byte(c))
	}
	return sb.String(), nil
}

// ChallengeBytes parses the user's answer: one hex digit per byte.
func ChallengeBytes(challenge string) ([]byte, error) {
	if len(challenge) != ChallengeLen {
		return nil, fmt.Errorf("%w: want %d characters, got %d", ErrInvalidChallenge, ChallengeLen, len(challenge))
	}
	out := make([]byte, 0, ChallengeLen)
	for _, r := range strings.ToLower(challenge) {
		switch {
		case r >= '0' && r <= '9':
			out = append(out, byte(r-'0'))
		case r >= 'a' && r <= 'f':
			out = append(out, byte(r-'a'+10))
		default:
			return nil, fmt.Errorf("%w: %q is not a hex digit", ErrInvalidChallenge, r)
		}
	}
	return out, nil
}

// ChallengeResponse builds the encrypted answer nonce || answer || 0x00000000.
func ChallengeResponse(challenge string, nonce, sessionKey []byte) ([]byte, error) {
	if len(nonce) != NonceLen {
		return nil, fmt.Errorf("%w: nonce is %d bytes, want %d", ErrInvalidBlob, len(nonce), NonceLen)
	}
	answer, err := ChallengeBytes(challenge)
	if err != nil {
		return nil, err
	}

	plain := make([]byte, 0, NonceLen+2*ChallengeLen)
	plain = append(plain, nonce...)
	plain = append(plain, answer...)
	plain = append(plain, make([]byte, ChallengeLen)...)
	defer clear(plain)

	return EncryptData(plain, sessionKey)
}
