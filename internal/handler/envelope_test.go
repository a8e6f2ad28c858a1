package handler

import (
	"bytes"
	"errors"
	"net/http"
	"testing"

	"github.com/AlexZinkM/pairing-cipher/internal/crypto"
	"github.com/AlexZinkM/pairing-cipher/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testScrypt = crypto.ScryptParams{N: 1 << 10, R: 8, P: 1}

func staticPassphrase(p string) PassphraseFunc {
	return func() ([]byte, error) {
		return []byte(p), nil
	}
}

func TestEnvelopeSealOpen(t *testing.T) {
	for _, alg := range []string{"", "3des", "sm4"} {
		t.Run("alg_"+alg, func(t *testing.T) {
			h := NewEnvelopeHandler(zap.NewNop(), testScrypt, staticPassphrase("dev"))

			rec := call(t, h.Seal, http.MethodPost, "/envelope/seal", model.EnvelopeSealRequest{Algorithm: alg, Plaintext: "cafebabe"})
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF}))

			env := decode[model.Envelope](t, rec)
			assert.NotEmpty(t, env.Salt)
			assert.NotEmpty(t, env.MAC)

			rec = call(t, h.Open, http.MethodPost, "/envelope/open", rec.Body.Bytes())
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, "cafebabe", decode[model.EnvelopeOpenResponse](t, rec).Plaintext)
		})
	}
}

func TestEnvelopeWrongPassphrase(t *testing.T) {
	seal := NewEnvelopeHandler(zap.NewNop(), testScrypt, staticPassphrase("dev"))
	open := NewEnvelopeHandler(zap.NewNop(), testScrypt, staticPassphrase("prod"))

	rec := call(t, seal.Seal, http.MethodPost, "/envelope/seal", model.EnvelopeSealRequest{Plaintext: "00"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = call(t, open.Open, http.MethodPost, "/envelope/open", rec.Body.Bytes())
	requireError(t, rec, http.StatusBadRequest, model.CodeInvalidPassphrase)
}

func TestEnvelopeErrors(t *testing.T) {
	h := NewEnvelopeHandler(zap.NewNop(), testScrypt, staticPassphrase("dev"))

	requireError(t, call(t, h.Seal, http.MethodPost, "/envelope/seal", model.EnvelopeSealRequest{Algorithm: "rot13"}),
		http.StatusBadRequest, model.CodeUnknownAlgorithm)
	requireError(t, call(t, h.Seal, http.MethodPost, "/envelope/seal", model.EnvelopeSealRequest{Plaintext: "0"}),
		http.StatusBadRequest, model.CodeBadRequest)
	requireError(t, call(t, h.Open, http.MethodPost, "/envelope/open", []byte("{not json")),
		http.StatusBadRequest, model.CodeInvalidEnvelope)
	requireError(t, call(t, h.Open, http.MethodPost, "/envelope/open", model.Envelope{Algorithm: "3des", Salt: "%%%"}),
		http.StatusBadRequest, model.CodeInvalidEnvelope)
	assert.Equal(t, http.StatusMethodNotAllowed, call(t, h.Open, http.MethodGet, "/envelope/open", nil).Code)

	missing := NewEnvelopeHandler(zap.NewNop(), testScrypt, func() ([]byte, error) {
		return nil, errors.New("passphrase not set")
	})
	rec := call(t, missing.Seal, http.MethodPost, "/envelope/seal", model.EnvelopeSealRequest{Plaintext: "00"})
	requireError(t, rec, http.StatusInternalServerError, model.CodeInternal)
	assert.Equal(t, "internal error", decode[model.ErrorResponse](t, rec).Error)
}
