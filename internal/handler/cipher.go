package handler

import (
	"encoding/base64"
	"net/http"

	"github.com/AlexZinkM/pairing-cipher/internal/common"
	"github.com/AlexZinkM/pairing-cipher/internal/crypto"
	"github.com/AlexZinkM/pairing-cipher/internal/logger"
	"github.com/AlexZinkM/pairing-cipher/internal/model"

	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

const qrSize = 256

// CipherHandler serves the block cipher endpoints
type CipherHandler struct {
	log *zap.Logger
	iv  []byte
}

// NewCipherHandler creates a CipherHandler. iv is used when a request carries none; nil means all zero.
func NewCipherHandler(log *zap.Logger, iv []byte) *CipherHandler {
	return &CipherHandler{log: log, iv: append([]byte{}, iv...)}
}

// cipherJob is a decoded CipherRequest
type cipherJob struct {
	alg  crypto.Algorithm
	data []byte
	key  []byte
	keys crypto.KeySet
	opts []crypto.Option
	raw  bool
}

func (h *CipherHandler) parse(req *model.CipherRequest) (*cipherJob, error) {
	name := req.Algorithm
	if name == "" {
		name = crypto.AlgorithmTripleDES
	}
	alg, err := crypto.LookupAlgorithm(name)
	if err != nil {
		return nil, err
	}

	data, err := decodeOptionalHex("data", req.Data)
	if err != nil {
		return nil, err
	}
	job := &cipherJob{alg: alg, data: data, raw: req.Raw}

	iv := h.iv
	if req.IV != "" {
		if iv, err = decodeOptionalHex("iv", req.IV); err != nil {
			return nil, err
		}
	}
	if len(iv) > 0 {
		job.opts = append(job.opts, crypto.WithIV(iv))
	}

	if alg.Name != crypto.AlgorithmTripleDES {
		if req.Raw {
			return nil, badRequest("raw mode is only supported for %s", crypto.AlgorithmTripleDES)
		}
		if job.key, err = decodeHex("key", req.Key); err != nil {
			return nil, err
		}
		return job, nil
	}

	job.keys, err = tripleDESKeys(req)
	if err != nil {
		return nil, err
	}
	return job, nil
}

// tripleDESKeys accepts either key (16 or 24 bytes) or key1..key3.
func tripleDESKeys(req *model.CipherRequest) (crypto.KeySet, error) {
	if req.Key != "" {
		key, err := decodeHex("key", req.Key)
		if err != nil {
			return crypto.KeySet{}, err
		}
		defer clear(key)
		if len(key) == crypto.DoubleKeySize {
			return crypto.NewTwoKeySet(key)
		}
		return crypto.NewKeySetFromBytes(key)
	}

	k1, err := decodeHex("key1", req.Key1)
	if err != nil {
		return crypto.KeySet{}, err
	}
	k2, err := decodeHex("key2", req.Key2)
	if err != nil {
		return crypto.KeySet{}, err
	}
	k3, err := decodeHex("key3", req.Key3)
	if err != nil {
		return crypto.KeySet{}, err
	}
	defer clear(k1)
	defer clear(k2)
	defer clear(k3)
	return crypto.NewKeySet(k1, k2, k3)
}

func (j *cipherJob) encrypt() ([]byte, error) {
	switch {
	case j.alg.Name != crypto.AlgorithmTripleDES:
		return j.alg.Encrypt(j.data, j.key, j.opts...)
	case j.raw:
		return crypto.TripleDESCBCEncryptBlocks(j.data, j.keys, j.opts...)
	default:
		return crypto.EncryptWithKeySet(j.data, j.keys, j.opts...)
	}
}

func (j *cipherJob) decrypt() ([]byte, error) {
	switch {
	case j.alg.Name != crypto.AlgorithmTripleDES:
		return j.alg.Decrypt(j.data, j.key, j.opts...)
	case j.raw:
		return crypto.TripleDESCBCDecryptBlocks(j.data, j.keys, j.opts...)
	default:
		return crypto.DecryptWithKeySet(j.data, j.keys, j.opts...)
	}
}

func (j *cipherJob) close() {
	clear(j.key)
}

// Encrypt handles POST /cipher/encrypt
// @Summary      Encrypt data
// @Description  CBC-encrypts hex data with PKCS#7 padding (or raw blocks when raw=true). Default algorithm is 3des with an all-zero IV.
// @Tags         cipher
// @Accept       json
// @Produce      json
// @Param        request  body      model.CipherRequest  true  "Keys and plaintext"
// @Success      200      {object}  model.CipherResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /cipher/encrypt [post]
func (h *CipherHandler) Encrypt(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.CipherRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}
	job, err := h.parse(&req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer job.close()

	ciphertext, err := job.encrypt()
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	resp := model.CipherResponse{Algorithm: job.alg.Name, Data: common.Base16FromData(ciphertext)}
	if req.QR {
		png, err := qrcode.Encode(resp.Data, qrcode.Medium, qrSize)
		if err != nil {
			writeError(w, h.log, r, err)
			return
		}
		resp.QR = base64.StdEncoding.EncodeToString(png)
	}

	h.log.Debug("encrypted", zap.String("algorithm", job.alg.Name), zap.Bool("raw", job.raw),
		zap.Int("plaintextLen", len(job.data)), zap.Int("ciphertextLen", len(ciphertext)))
	writeJSON(w, http.StatusOK, resp)
}

// Decrypt handles POST /cipher/decrypt
// @Summary      Decrypt data
// @Description  CBC-decrypts hex data and strips PKCS#7 padding (kept when raw=true)
// @Tags         cipher
// @Accept       json
// @Produce      json
// @Param        request  body      model.CipherRequest  true  "Keys and ciphertext"
// @Success      200      {object}  model.CipherResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /cipher/decrypt [post]
func (h *CipherHandler) Decrypt(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.CipherRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}
	job, err := h.parse(&req)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer job.close()

	plaintext, err := job.decrypt()
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer clear(plaintext)

	h.log.Debug("decrypted", zap.String("algorithm", job.alg.Name), zap.Bool("raw", job.raw),
		logger.Secret("plaintext", plaintext))
	writeJSON(w, http.StatusOK, model.CipherResponse{Algorithm: job.alg.Name, Data: common.Base16FromData(plaintext)})
}

// KCV handles POST /cipher/kcv
// @Summary      Key check value
// @Description  Returns the first 3 bytes of 3DES-EDE(0000000000000000) as upper-case hex
// @Tags         cipher
// @Accept       json
// @Produce      json
// @Param        request  body      model.KCVRequest  true  "Key segments"
// @Success      200      {object}  model.KCVResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /cipher/kcv [post]
func (h *CipherHandler) KCV(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.KCVRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}
	keys, err := tripleDESKeys(&model.CipherRequest{Key1: req.Key1, Key2: req.Key2, Key3: req.Key3})
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	kcv, err := keys.CheckValue()
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.KCVResponse{KCV: kcv})
}

// Algorithms handles GET /cipher/algorithms
// @Summary      List algorithms
// @Description  Lists the block ciphers available to /cipher/encrypt, /cipher/decrypt and /envelope/seal
// @Tags         cipher
// @Produce      json
// @Success      200  {object}  model.AlgorithmsResponse
// @Router       /cipher/algorithms [get]
func (h *CipherHandler) Algorithms(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodGet) {
		return
	}

	names := crypto.Algorithms()
	resp := model.AlgorithmsResponse{Algorithms: make([]model.AlgorithmInfo, 0, len(names))}
	for _, name := range names {
		alg, err := crypto.LookupAlgorithm(name)
		if err != nil {
			writeError(w, h.log, r, err)
			return
		}
		resp.Algorithms = append(resp.Algorithms, model.AlgorithmInfo{Name: alg.Name, BlockSize: alg.BlockSize, KeySize: alg.KeySize})
	}
	writeJSON(w, http.StatusOK, resp)
}
