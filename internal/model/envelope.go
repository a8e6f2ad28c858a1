package model

// Envelope is a passphrase-sealed ciphertext with everything needed to open it
// except the passphrase. Binary fields are base64 (std encoding).
type Envelope struct {
	Algorithm  string `json:"algorithm"`
	Salt       string `json:"salt"`
	IV         string `json:"iv"`
	CipherText string `json:"cipherText"`
	MAC        string `json:"mac"`
}

// EnvelopeSealRequest represents request for POST /envelope/seal
type EnvelopeSealRequest struct {
	Algorithm string `json:"algorithm,omitempty"` // defaults to 3des
	Plaintext string `json:"plaintext"`           // hex
}

// EnvelopeOpenResponse represents response for POST /envelope/open
type EnvelopeOpenResponse struct {
	Plaintext string `json:"plaintext"` // hex
}
