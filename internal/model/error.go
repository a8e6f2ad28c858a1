package model

// ErrorResponse is the JSON body of every API error.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// Error codes
const (
	CodeInvalidKeyLength    = "INVALID_KEY_LENGTH"
	CodeInvalidBufferLength = "INVALID_BUFFER_LENGTH"
	CodeInvalidPadding      = "INVALID_PADDING"
	CodeInvalidIVLength     = "INVALID_IV_LENGTH"
	CodeUnknownAlgorithm    = "UNKNOWN_ALGORITHM"
	CodeInvalidPassphrase   = "INVALID_PASSPHRASE"
	CodeInvalidEnvelope     = "INVALID_ENVELOPE"
	CodeInvalidBlob         = "INVALID_BLOB"
	CodeInvalidChallenge    = "INVALID_CHALLENGE"
	CodeInvalidKey          = "INVALID_KEY"
	CodeInvalidTransaction  = "INVALID_TRANSACTION"
	CodeBadRequest          = "BAD_REQUEST"
	CodeInternal            = "INTERNAL"
)
