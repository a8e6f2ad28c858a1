package pairing

import (
	"bytes"
	"crypto/sha256"
	"fmt"

	"github.com/mr-tron/base58"
)

const (
	addressLen  = 25 // version(1) || hash160(20) || checksum(4)
	checksumLen = 4
)

// mainnet and testnet P2PKH / P2SH version bytes
var addressVersions = map[byte]bool{
	0x00: true,
	0x05: true,
	0x6f: true,
	0xc4: true,
}

// ValidateAddress checks that addr is a base58check legacy Bitcoin address.
func ValidateAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("%w: empty", ErrInvalidAddress)
	}
	decoded, err := base58.Decode(addr)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidAddress, err)
	}
	if len(decoded) != addressLen {
		return fmt.Errorf("%w: decoded length %d", ErrInvalidAddress, len(decoded))
	}
	if !addressVersions[decoded[0]] {
		return fmt.Errorf("%w: unknown version 0x%02x", ErrInvalidAddress, decoded[0])
	}

	payload := decoded[:addressLen-checksumLen]
	first := sha256.Sum256(payload)
	second := sha256.Sum256(first[:])
	if !bytes.Equal(second[:checksumLen], decoded[addressLen-checksumLen:]) {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidAddress)
	}
	return nil
}
