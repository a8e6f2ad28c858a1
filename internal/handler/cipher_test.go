package handler

import (
	"bytes"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/AlexZinkM/pairing-cipher/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	testK1 = "0123456789abcdef"
	testK2 = "fedcba9876543210"
	testK3 = "0011223344556677"
)

func newTestCipherHandler() *CipherHandler {
	return NewCipherHandler(zap.NewNop(), nil)
}

func TestCipherRoundTrip(t *testing.T) {
	h := newTestCipherHandler()

	tests := []struct {
		name string
		req  model.CipherRequest
	}{
		{"3des_segments", model.CipherRequest{Data: "48656c6c6f", Key1: testK1, Key2: testK2, Key3: testK3}},
		{"3des_single_key", model.CipherRequest{Data: "48656c6c6f", Key: testK1 + testK2 + testK3}},
		{"3des_two_key", model.CipherRequest{Data: "", Key: testK1 + testK2}},
		{"3des_iv", model.CipherRequest{Data: "00", Key: testK1 + testK2 + testK3, IV: "0102030405060708"}},
		{"blowfish", model.CipherRequest{Algorithm: "blowfish", Data: "48656c6c6f", Key: testK1 + testK2}},
		{"idea", model.CipherRequest{Algorithm: "IDEA", Data: "48656c6c6f", Key: testK1 + testK2}},
		{"sm4", model.CipherRequest{Algorithm: "sm4", Data: "48656c6c6f", Key: testK1 + testK2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := call(t, h.Encrypt, http.MethodPost, "/cipher/encrypt", tt.req)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			enc := decode[model.CipherResponse](t, rec)
			assert.NotEqual(t, tt.req.Data, enc.Data)
			assert.Empty(t, enc.QR)

			dreq := tt.req
			dreq.Data = enc.Data
			rec = call(t, h.Decrypt, http.MethodPost, "/cipher/decrypt", dreq)
			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			dec := decode[model.CipherResponse](t, rec)
			assert.Equal(t, tt.req.Data, dec.Data)
			assert.Equal(t, enc.Algorithm, dec.Algorithm)
		})
	}
}

func TestCipherEmptyPlaintextIsOneBlock(t *testing.T) {
	rec := call(t, newTestCipherHandler().Encrypt, http.MethodPost, "/cipher/encrypt",
		model.CipherRequest{Key1: testK1, Key2: testK2, Key3: testK3})
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[model.CipherResponse](t, rec)
	assert.Equal(t, "3des", resp.Algorithm)
	assert.Len(t, resp.Data, 16)
}

func TestCipherRawPairingVector(t *testing.T) {
	h := newTestCipherHandler()
	req := model.CipherRequest{Key: "75b8ada16eb5f8ea253a1b793a04e03c", Raw: true, Data: "ab5a56a93c1ea864020c000500000000"}

	rec := call(t, h.Encrypt, http.MethodPost, "/cipher/encrypt", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "844f0cf804cc7a3b8ac235e0872a2779", decode[model.CipherResponse](t, rec).Data)

	req.Data = "844f0cf804cc7a3b8ac235e0872a2779"
	rec = call(t, h.Decrypt, http.MethodPost, "/cipher/decrypt", req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "ab5a56a93c1ea864020c000500000000", decode[model.CipherResponse](t, rec).Data)
}

func TestCipherServerIV(t *testing.T) {
	req := model.CipherRequest{Data: "00", Key: testK1 + testK2 + testK3}

	zeroIV := decode[model.CipherResponse](t, call(t, newTestCipherHandler().Encrypt, http.MethodPost, "/cipher/encrypt", req))
	custom := NewCipherHandler(zap.NewNop(), []byte{1, 2, 3, 4, 5, 6, 7, 8})
	customIV := decode[model.CipherResponse](t, call(t, custom.Encrypt, http.MethodPost, "/cipher/encrypt", req))
	assert.NotEqual(t, zeroIV.Data, customIV.Data)

	req.IV = "0102030405060708"
	explicit := decode[model.CipherResponse](t, call(t, newTestCipherHandler().Encrypt, http.MethodPost, "/cipher/encrypt", req))
	assert.Equal(t, customIV.Data, explicit.Data)
}

func TestCipherQR(t *testing.T) {
	rec := call(t, newTestCipherHandler().Encrypt, http.MethodPost, "/cipher/encrypt",
		model.CipherRequest{Data: "01", Key: testK1 + testK2 + testK3, QR: true})
	require.Equal(t, http.StatusOK, rec.Code)

	png, err := base64.StdEncoding.DecodeString(decode[model.CipherResponse](t, rec).QR)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}

func TestCipherErrors(t *testing.T) {
	h := newTestCipherHandler()

	tests := []struct {
		name    string
		decrypt bool
		req     model.CipherRequest
		code    string
	}{
		{"short_segment", false, model.CipherRequest{Key1: testK1, Key2: testK2, Key3: "0011"}, model.CodeInvalidKeyLength},
		{"short_key", false, model.CipherRequest{Key: testK1}, model.CodeInvalidKeyLength},
		{"missing_segment", false, model.CipherRequest{Key1: testK1, Key2: testK2}, model.CodeBadRequest},
		{"bad_hex", false, model.CipherRequest{Data: "xyz", Key: testK1 + testK2}, model.CodeBadRequest},
		{"unknown_algorithm", false, model.CipherRequest{Algorithm: "rot13", Key: testK1}, model.CodeUnknownAlgorithm},
		{"raw_blowfish", false, model.CipherRequest{Algorithm: "blowfish", Raw: true, Key: testK1 + testK2}, model.CodeBadRequest},
		{"bad_iv", false, model.CipherRequest{Key: testK1 + testK2, IV: "0102"}, model.CodeInvalidIVLength},
		{"raw_unaligned", false, model.CipherRequest{Key: testK1 + testK2, Raw: true, Data: "0102"}, model.CodeInvalidBufferLength},
		{"decrypt_empty", true, model.CipherRequest{Key: testK1 + testK2}, model.CodeInvalidBufferLength},
		{"decrypt_unaligned", true, model.CipherRequest{Key: testK1 + testK2, Data: "0102030405"}, model.CodeInvalidBufferLength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := h.Encrypt
			if tt.decrypt {
				fn = h.Decrypt
			}
			requireError(t, call(t, fn, http.MethodPost, "/cipher", tt.req), http.StatusBadRequest, tt.code)
		})
	}

	requireError(t, call(t, h.Encrypt, http.MethodPost, "/cipher/encrypt", []byte("{")), http.StatusBadRequest, model.CodeBadRequest)
	assert.Equal(t, http.StatusMethodNotAllowed, call(t, h.Decrypt, http.MethodGet, "/cipher/decrypt", nil).Code)
}

func TestCipherWrongKeyPadding(t *testing.T) {
	h := newTestCipherHandler()
	enc := decode[model.CipherResponse](t, call(t, h.Encrypt, http.MethodPost, "/cipher/encrypt",
		model.CipherRequest{Data: "48656c6c6f", Key1: testK1, Key2: testK2, Key3: testK3}))

	// Two-key decryption of a three-key ciphertext: padding almost never survives.
	rec := call(t, h.Decrypt, http.MethodPost, "/cipher/decrypt", model.CipherRequest{Data: enc.Data, Key: testK3 + testK2})
	if rec.Code == http.StatusOK {
		assert.NotEqual(t, "48656c6c6f", decode[model.CipherResponse](t, rec).Data)
		return
	}
	requireError(t, rec, http.StatusBadRequest, model.CodeInvalidPadding)
}

func TestKCV(t *testing.T) {
	h := newTestCipherHandler()

	rec := call(t, h.KCV, http.MethodPost, "/cipher/kcv", model.KCVRequest{Key1: testK1, Key2: testK2, Key3: testK3})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CBE6A7", decode[model.KCVResponse](t, rec).KCV)

	rec = call(t, h.KCV, http.MethodPost, "/cipher/kcv", model.KCVRequest{Key1: testK1, Key2: testK2, Key3: "00"})
	requireError(t, rec, http.StatusBadRequest, model.CodeInvalidKeyLength)
}

func TestAlgorithms(t *testing.T) {
	h := newTestCipherHandler()

	rec := call(t, h.Algorithms, http.MethodGet, "/cipher/algorithms", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	resp := decode[model.AlgorithmsResponse](t, rec)
	require.Len(t, resp.Algorithms, 4)
	assert.Equal(t, model.AlgorithmInfo{Name: "3des", BlockSize: 8, KeySize: 24}, resp.Algorithms[0])

	assert.Equal(t, http.StatusMethodNotAllowed, call(t, h.Algorithms, http.MethodPost, "/cipher/algorithms", nil).Code)
}
