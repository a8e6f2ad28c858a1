package model

// CipherRequest represents request for POST /cipher/encrypt and POST /cipher/decrypt.
// All binary fields are hex. Key1..Key3 are used for 3des; Key is used for other algorithms.
type CipherRequest struct {
	Algorithm string `json:"algorithm,omitempty"` // defaults to 3des
	Data      string `json:"data"`
	Key1      string `json:"key1,omitempty"`
	Key2      string `json:"key2,omitempty"`
	Key3      string `json:"key3,omitempty"`
	Key       string `json:"key,omitempty"`
	IV        string `json:"iv,omitempty"`  // defaults to the server IV (all zero unless configured)
	Raw       bool   `json:"raw,omitempty"` // 3des only: no padding, data must be block aligned
	QR        bool   `json:"qr,omitempty"`  // encrypt only: include QR code of the hex ciphertext
}

// CipherResponse represents response for POST /cipher/encrypt and POST /cipher/decrypt
type CipherResponse struct {
	Algorithm string `json:"algorithm"`
	Data      string `json:"data"`
	QR        string `json:"QR,omitempty"` // base64 PNG
}

// KCVRequest represents request for POST /cipher/kcv
type KCVRequest struct {
	Key1 string `json:"key1"`
	Key2 string `json:"key2"`
	Key3 string `json:"key3"`
}

// KCVResponse represents response for POST /cipher/kcv
type KCVResponse struct {
	KCV string `json:"kcv"`
}

// AlgorithmInfo describes one registered cipher
type AlgorithmInfo struct {
	Name      string `json:"name"`
	BlockSize int    `json:"blockSize"`
	KeySize   int    `json:"keySize"`
}

// AlgorithmsResponse represents response for GET /cipher/algorithms
type AlgorithmsResponse struct {
	Algorithms []AlgorithmInfo `json:"algorithms"`
}
