package pairing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlexZinkM/pairing-cipher/internal/common"
	"github.com/AlexZinkM/pairing-cipher/internal/model"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Context holds the state of one pairing attempt. It is owned by a single
// goroutine and is not safe for concurrent use.
type Context struct {
	PairingID string

	internalKey    *secp256k1.PrivateKey
	attestationKey *secp256k1.PublicKey
	sessionKey     []byte
	nonce          []byte
	pairingKey     []byte
}

// NewContext starts a pairing with a freshly generated internal key.
func NewContext(pairingID string, attestationKey []byte) (*Context, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("failed to generate internal key: %w", err)
	}
	return newContext(pairingID, priv, attestationKey)
}

// NewContextWithKey starts a pairing with a known internal key.
func NewContextWithKey(pairingID string, privateKey, attestationKey []byte) (*Context, error) {
	priv, err := ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return newContext(pairingID, priv, attestationKey)
}

func newContext(pairingID string, priv *secp256k1.PrivateKey, attestationKey []byte) (*Context, error) {
	pub, err := ParsePublicKey(attestationKey)
	if err != nil {
		return nil, err
	}
	sessionKey, err := deriveSessionKey(priv, pub)
	if err != nil {
		return nil, err
	}
	return &Context{
		PairingID:      pairingID,
		internalKey:    priv,
		attestationKey: pub,
		sessionKey:     sessionKey,
	}, nil
}

// PublicKey is the uncompressed internal public key announced to the dongle.
func (c *Context) PublicKey() string {
	return common.Base16FromData(c.internalKey.PubKey().SerializeUncompressed())
}

// SessionKey returns a copy of the session key.
func (c *Context) SessionKey() []byte {
	return append([]byte{}, c.sessionKey...)
}

// PairingKey returns a copy of the pairing key, nil before HandleChallenge succeeds.
func (c *Context) PairingKey() []byte {
	if c.pairingKey == nil {
		return nil
	}
	return append([]byte{}, c.pairingKey...)
}

// HandleChallenge decrypts the dongle's challenge blob, keeps its nonce and
// pairing key, and returns the challenge to show the user.
func (c *Context) HandleChallenge(blob []byte) (string, error) {
	nonce, err := Nonce(blob)
	if err != nil {
		return "", err
	}
	encrypted, err := EncryptedData(blob)
	if err != nil {
		return "", err
	}
	decrypted, err := DecryptData(encrypted, c.sessionKey)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt challenge: %w", err)
	}
	defer clear(decrypted)

	challengeData, err := ChallengeData(decrypted)
	if err != nil {
		return "", err
	}
	pairingKey, err := PairingKey(decrypted)
	if err != nil {
		return "", err
	}
	challenge, err := ChallengeString(challengeData)
	if err != nil {
		return "", err
	}

	c.nonce = nonce
	c.pairingKey = pairingKey
	return challenge, nil
}

// ChallengeResponse encrypts the user's answer with the stored nonce.
func (c *Context) ChallengeResponse(answer string) ([]byte, error) {
	if c.nonce == nil {
		return nil, fmt.Errorf("%w: no challenge received", ErrIncompleteContext)
	}
	return ChallengeResponse(answer, c.nonce, c.sessionKey)
}

// CreatePairingItem returns the completed pairing under a trimmed dongle name.
func (c *Context) CreatePairingItem(name string) (*model.PairingItem, error) {
	if c.PairingID == "" || c.pairingKey == nil {
		return nil, fmt.Errorf("%w: pairing id or pairing key missing", ErrIncompleteContext)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("dongle name cannot be empty")
	}
	return &model.PairingItem{
		PairingID:  c.PairingID,
		PairingKey: common.Base16FromData(c.pairingKey),
		DongleName: name,
	}, nil
}

// Close wipes key material held by the context.
func (c *Context) Close() {
	clear(c.sessionKey)
	clear(c.nonce)
	clear(c.pairingKey)
	c.internalKey.Zero()
}
