package handler

import (
	"fmt"
	"io"
	"net/http"

	"github.com/AlexZinkM/pairing-cipher/internal/common"
	"github.com/AlexZinkM/pairing-cipher/internal/crypto"
	"github.com/AlexZinkM/pairing-cipher/internal/model"

	"go.uber.org/zap"
)

// PassphraseFunc returns a fresh copy of the envelope passphrase. The caller zeroes it.
type PassphraseFunc func() ([]byte, error)

// EnvelopeHandler seals and opens passphrase envelopes
type EnvelopeHandler struct {
	log        *zap.Logger
	params     crypto.ScryptParams
	passphrase PassphraseFunc
}

// NewEnvelopeHandler creates an EnvelopeHandler
func NewEnvelopeHandler(log *zap.Logger, params crypto.ScryptParams, passphrase PassphraseFunc) *EnvelopeHandler {
	return &EnvelopeHandler{log: log, params: params, passphrase: passphrase}
}

// Seal handles POST /envelope/seal
// @Summary      Seal data
// @Description  Encrypts hex plaintext under the startup passphrase (scrypt key, random salt and IV, HMAC-SHA256). Response is the envelope JSON with a UTF-8 BOM.
// @Tags         envelope
// @Accept       json
// @Produce      json
// @Param        request  body      model.EnvelopeSealRequest  true  "Plaintext"
// @Success      200      {object}  model.Envelope
// @Failure      400      {object}  model.ErrorResponse
// @Router       /envelope/seal [post]
func (h *EnvelopeHandler) Seal(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.EnvelopeSealRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}
	plaintext, err := decodeOptionalHex("plaintext", req.Plaintext)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer clear(plaintext)

	algorithm := req.Algorithm
	if algorithm == "" {
		algorithm = crypto.AlgorithmTripleDES
	}

	// Get passphrase as []byte, use it, then zero it immediately
	passphrase, err := h.passphrase()
	if err != nil {
		writeError(w, h.log, r, fmt.Errorf("failed to get passphrase: %w", err))
		return
	}
	defer clear(passphrase)

	env, err := crypto.SealEnvelope(plaintext, passphrase, algorithm, h.params)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	data, err := crypto.MarshalEnvelope(env)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	h.log.Info("envelope sealed", zap.String("algorithm", env.Algorithm), zap.Int("plaintextLen", len(plaintext)))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// Open handles POST /envelope/open
// @Summary      Open envelope
// @Description  Verifies and decrypts an envelope produced by /envelope/seal. A leading UTF-8 BOM is accepted.
// @Tags         envelope
// @Accept       json
// @Produce      json
// @Param        request  body      model.Envelope  true  "Envelope"
// @Success      200      {object}  model.EnvelopeOpenResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /envelope/open [post]
func (h *EnvelopeHandler) Open(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, h.log, r, badRequest("failed to read body: %v", err))
		return
	}
	env, err := crypto.UnmarshalEnvelope(body)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	passphrase, err := h.passphrase()
	if err != nil {
		writeError(w, h.log, r, fmt.Errorf("failed to get passphrase: %w", err))
		return
	}
	defer clear(passphrase)

	plaintext, err := crypto.OpenEnvelope(env, passphrase, h.params)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer clear(plaintext)

	writeJSON(w, http.StatusOK, model.EnvelopeOpenResponse{Plaintext: common.Base16FromData(plaintext)})
}
