package config

import (
	"crypto/des"
	"errors"
	"fmt"
	"os"

	"github.com/AlexZinkM/pairing-cipher/internal/common"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// DefaultAttestationKey is the dongle attestation public key (uncompressed secp256k1).
const DefaultAttestationKey = "04e69fd3c044865200e66f124b5ea237c918503931bee070edfcab79a00a25d6b5a09afbee902b4b763ecf1f9c25f82d6b0cf72bce3faf98523a1066948f1a395f"

// Config contains all configuration parameters for the application.
// Note: the envelope passphrase is prompted at runtime and kept in memory - use GetPassphraseBytes()
type Config struct {
	Port           string `envconfig:"PORT" default:"8080"`
	CipherIV       string `envconfig:"CIPHER_IV" default:"0000000000000000"`
	ScryptN        int    `envconfig:"SCRYPT_N" default:"32768"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"info"`
	LogDevelopment bool   `envconfig:"LOG_DEVELOPMENT" default:"false"`
	AttestationKey string `envconfig:"PAIRING_ATTESTATION_KEY" default:"04e69fd3c044865200e66f124b5ea237c918503931bee070edfcab79a00a25d6b5a09afbee902b4b763ecf1f9c25f82d6b0cf72bce3faf98523a1066948f1a395f"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return err
	}
	cfg = c
	return nil
}

// Set installs an already built configuration (tests, embedding).
func Set(c *Config) {
	cfg = c
}

// Validate checks values envconfig cannot check by type.
func (c *Config) Validate() error {
	iv, err := common.DataFromBase16(c.CipherIV)
	if err != nil {
		return fmt.Errorf("CIPHER_IV: %w", err)
	}
	if len(iv) != des.BlockSize {
		return fmt.Errorf("CIPHER_IV must be %d bytes, got %d", des.BlockSize, len(iv))
	}
	if c.ScryptN < 2 || c.ScryptN&(c.ScryptN-1) != 0 {
		return fmt.Errorf("SCRYPT_N must be a power of two > 1, got %d", c.ScryptN)
	}
	if _, err := common.DataFromBase16(c.AttestationKey); err != nil {
		return fmt.Errorf("PAIRING_ATTESTATION_KEY: %w", err)
	}
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetCipherIV returns the default CBC IV bytes
func GetCipherIV() []byte {
	iv, _ := common.DataFromBase16(Get().CipherIV) // validated in Init
	return iv
}

// GetScryptN returns the scrypt cost parameter for envelopes
func GetScryptN() int {
	return Get().ScryptN
}

// GetLogLevel returns the zap level name
func GetLogLevel() string {
	return Get().LogLevel
}

// GetLogDevelopment reports whether to use the human readable console logger
func GetLogDevelopment() bool {
	return Get().LogDevelopment
}

// GetAttestationKey returns the dongle attestation public key bytes
func GetAttestationKey() []byte {
	key, _ := common.DataFromBase16(Get().AttestationKey) // validated in Init
	return key
}

var passphraseBytes []byte

// PromptForPassphrase prompts for the envelope passphrase in the terminal.
// The passphrase is read without echoing (hidden input) and stored in memory.
// Call this at startup before the server begins handling requests.
func PromptForPassphrase() error {
	raw, err := ReadSecret("Enter envelope passphrase: ")
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		return errors.New("passphrase cannot be empty")
	}
	SetPassphrase(raw)
	clear(raw)
	return nil
}

// ReadSecret reads one line from the terminal without echo.
func ReadSecret(prompt string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the app interactively to enter secrets")
	}
	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read secret: %w", err)
	}
	return raw, nil
}

// SetPassphrase stores a copy of p as the envelope passphrase.
func SetPassphrase(p []byte) {
	clear(passphraseBytes)
	passphraseBytes = append([]byte{}, p...)
}

// GetPassphraseBytes returns the passphrase stored in memory (from PromptForPassphrase).
// Returns an error if the passphrase was not set.
// Caller must zero the returned slice after use for security.
func GetPassphraseBytes() ([]byte, error) {
	if len(passphraseBytes) == 0 {
		return nil, errors.New("passphrase not set: call PromptForPassphrase at startup")
	}
	out := make([]byte, len(passphraseBytes))
	copy(out, passphraseBytes)
	return out, nil
}
