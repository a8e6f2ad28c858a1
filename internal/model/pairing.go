package model

import "time"

// TransactionInfo is a decrypted second-factor transaction summary sent by the dongle
type TransactionInfo struct {
	PinCode          string    `json:"pinCode"`
	RecipientAddress string    `json:"recipientAddress"`
	OutputsAmount    int64     `json:"outputsAmount"` // satoshi
	FeesAmount       int64     `json:"feesAmount"`    // satoshi
	ChangeAmount     int64     `json:"changeAmount"`  // satoshi
	TransactionDate  time.Time `json:"transactionDate"`
	DongleName       string    `json:"dongleName,omitempty"`
}

// PairingItem is a completed pairing. It lives in memory only.
type PairingItem struct {
	PairingID  string `json:"pairingId"`
	PairingKey string `json:"pairingKey"` // hex
	DongleName string `json:"dongleName"`
}

// SessionRequest represents request for POST /pairing/session
type SessionRequest struct {
	PrivateKey     string `json:"privateKey"`               // hex, 32 bytes
	AttestationKey string `json:"attestationKey,omitempty"` // hex SEC1 public key, defaults to the configured dongle key
}

// SessionResponse represents response for POST /pairing/session
type SessionResponse struct {
	PublicKey  string `json:"publicKey"` // uncompressed internal public key
	SessionKey string `json:"sessionKey"`
}

// ChallengeRequest represents request for POST /pairing/challenge
type ChallengeRequest struct {
	SessionKey string `json:"sessionKey"`
	Blob       string `json:"data"`
}

// ChallengeResponse represents response for POST /pairing/challenge
type ChallengeResponse struct {
	Nonce      string `json:"nonce"`
	Challenge  string `json:"challenge"`
	PairingKey string `json:"pairingKey"`
}

// ChallengeAnswerRequest represents request for POST /pairing/response
type ChallengeAnswerRequest struct {
	SessionKey string `json:"sessionKey"`
	Nonce      string `json:"nonce"`
	Challenge  string `json:"challenge"`
}

// ChallengeAnswerResponse represents response for POST /pairing/response
type ChallengeAnswerResponse struct {
	Data string `json:"data"`
}

// TransactionRequest represents request for POST /pairing/transaction
type TransactionRequest struct {
	PairingKey string `json:"pairingKey"`
	Blob       string `json:"data"`
	DongleName string `json:"dongleName,omitempty"`
}

// TransactionResponse represents response for POST /pairing/transaction
type TransactionResponse struct {
	TransactionInfo
	Outputs string `json:"outputs"` // BTC
	Fees    string `json:"fees"`    // BTC
	Change  string `json:"change"`  // BTC
}
