package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/AlexZinkM/pairing-cipher/internal/common"
	"github.com/AlexZinkM/pairing-cipher/internal/crypto"
	"github.com/AlexZinkM/pairing-cipher/internal/model"
	"github.com/AlexZinkM/pairing-cipher/internal/pairing"

	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

// requestError marks a malformed request body or field.
type requestError struct {
	msg string
}

func (e *requestError) Error() string {
	return e.msg
}

func badRequest(format string, args ...any) error {
	return &requestError{msg: fmt.Sprintf(format, args...)}
}

// errorCodes maps domain sentinels to API codes. Order matters: first match wins.
var errorCodes = []struct {
	err  error
	code string
}{
	{crypto.ErrInvalidKeyLength, model.CodeInvalidKeyLength},
	{crypto.ErrInvalidBufferLength, model.CodeInvalidBufferLength},
	{crypto.ErrInvalidPadding, model.CodeInvalidPadding},
	{crypto.ErrInvalidIVLength, model.CodeInvalidIVLength},
	{crypto.ErrUnknownAlgorithm, model.CodeUnknownAlgorithm},
	{crypto.ErrInvalidPassphrase, model.CodeInvalidPassphrase},
	{crypto.ErrInvalidEnvelope, model.CodeInvalidEnvelope},
	{pairing.ErrInvalidBlob, model.CodeInvalidBlob},
	{pairing.ErrInvalidChallenge, model.CodeInvalidChallenge},
	{pairing.ErrInvalidPrivateKey, model.CodeInvalidKey},
	{pairing.ErrInvalidPublicKey, model.CodeInvalidKey},
	{pairing.ErrInvalidTransaction, model.CodeInvalidTransaction},
	{pairing.ErrInvalidAddress, model.CodeInvalidTransaction},
}

// classify returns the HTTP status and API code for err.
func classify(err error) (int, string) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		return http.StatusBadRequest, model.CodeBadRequest
	}
	for _, m := range errorCodes {
		if errors.Is(err, m.err) {
			return http.StatusBadRequest, m.code
		}
	}
	return http.StatusInternalServerError, model.CodeInternal
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError logs err and writes it as model.ErrorResponse.
func writeError(w http.ResponseWriter, log *zap.Logger, r *http.Request, err error) {
	status, code := classify(err)
	fields := []zap.Field{zap.String("path", r.URL.Path), zap.String("code", code), zap.Error(err)}
	if status >= http.StatusInternalServerError {
		log.Error("request failed", fields...)
	} else {
		log.Warn("request rejected", fields...)
	}

	msg := err.Error()
	if status >= http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, status, model.ErrorResponse{Error: msg, Code: code})
}

// allowMethod writes 405 unless r uses method.
func allowMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	http.Error(w, "Method not allowed. Should be "+method, http.StatusMethodNotAllowed)
	return false
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return badRequest("invalid request body: %v", err)
	}
	return nil
}

// decodeHex decodes a required hex field.
func decodeHex(field, value string) ([]byte, error) {
	if value == "" {
		return nil, badRequest("%s is required", field)
	}
	return decodeOptionalHex(field, value)
}

func decodeOptionalHex(field, value string) ([]byte, error) {
	b, err := common.DataFromBase16(value)
	if err != nil {
		return nil, badRequest("%s: invalid hex", field)
	}
	return b, nil
}
