package handler

import (
	"net/http"

	"github.com/AlexZinkM/pairing-cipher/internal/common"
	"github.com/AlexZinkM/pairing-cipher/internal/model"
	"github.com/AlexZinkM/pairing-cipher/internal/pairing"

	"go.uber.org/zap"
)

// PairingHandler serves the dongle pairing endpoints. It keeps no pairing state:
// the client carries the session key and nonce between calls.
type PairingHandler struct {
	log            *zap.Logger
	attestationKey []byte
}

// NewPairingHandler creates a PairingHandler. attestationKey is used when a session request carries none.
func NewPairingHandler(log *zap.Logger, attestationKey []byte) *PairingHandler {
	return &PairingHandler{log: log, attestationKey: append([]byte{}, attestationKey...)}
}

// Session handles POST /pairing/session
// @Summary      Derive session key
// @Description  ECDH (secp256k1) between the internal private key and the dongle attestation key. A key pair is generated when privateKey is empty.
// @Tags         pairing
// @Accept       json
// @Produce      json
// @Param        request  body      model.SessionRequest  true  "Keys"
// @Success      200      {object}  model.SessionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /pairing/session [post]
func (h *PairingHandler) Session(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.SessionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}

	attestation := h.attestationKey
	if req.AttestationKey != "" {
		var err error
		if attestation, err = decodeOptionalHex("attestationKey", req.AttestationKey); err != nil {
			writeError(w, h.log, r, err)
			return
		}
	}

	var (
		ctx *pairing.Context
		err error
	)
	if req.PrivateKey == "" {
		ctx, err = pairing.NewContext("", attestation)
	} else {
		var priv []byte
		if priv, err = decodeOptionalHex("privateKey", req.PrivateKey); err == nil {
			ctx, err = pairing.NewContextWithKey("", priv, attestation)
			clear(priv)
		}
	}
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer ctx.Close()

	writeJSON(w, http.StatusOK, model.SessionResponse{
		PublicKey:  ctx.PublicKey(),
		SessionKey: common.Base16FromData(ctx.SessionKey()),
	})
}

// Challenge handles POST /pairing/challenge
// @Summary      Decrypt pairing challenge
// @Description  Splits the dongle blob into nonce and ciphertext, decrypts it with the session key and returns the challenge and pairing key
// @Tags         pairing
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChallengeRequest  true  "Session key and blob"
// @Success      200      {object}  model.ChallengeResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /pairing/challenge [post]
func (h *PairingHandler) Challenge(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.ChallengeRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}
	sessionKey, err := decodeHex("sessionKey", req.SessionKey)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer clear(sessionKey)
	blob, err := decodeOptionalHex("data", req.Blob)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	nonce, err := pairing.Nonce(blob)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	encrypted, err := pairing.EncryptedData(blob)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	decrypted, err := pairing.DecryptData(encrypted, sessionKey)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer clear(decrypted)

	challengeData, err := pairing.ChallengeData(decrypted)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	challenge, err := pairing.ChallengeString(challengeData)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	pairingKey, err := pairing.PairingKey(decrypted)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ChallengeResponse{
		Nonce:      common.Base16FromData(nonce),
		Challenge:  challenge,
		PairingKey: common.Base16FromData(pairingKey),
	})
}

// Response handles POST /pairing/response
// @Summary      Encrypt challenge answer
// @Description  Encrypts nonce || challenge digits || 00000000 with the session key
// @Tags         pairing
// @Accept       json
// @Produce      json
// @Param        request  body      model.ChallengeAnswerRequest  true  "Session key, nonce and 4 hex digit answer"
// @Success      200      {object}  model.ChallengeAnswerResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /pairing/response [post]
func (h *PairingHandler) Response(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.ChallengeAnswerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}
	sessionKey, err := decodeHex("sessionKey", req.SessionKey)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer clear(sessionKey)
	nonce, err := decodeHex("nonce", req.Nonce)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	data, err := pairing.ChallengeResponse(req.Challenge, nonce, sessionKey)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.ChallengeAnswerResponse{Data: common.Base16FromData(data)})
}

// Transaction handles POST /pairing/transaction
// @Summary      Decrypt second factor transaction
// @Description  Decrypts a transaction blob with the pairing key and returns PIN, recipient and amounts
// @Tags         pairing
// @Accept       json
// @Produce      json
// @Param        request  body      model.TransactionRequest  true  "Pairing key and blob"
// @Success      200      {object}  model.TransactionResponse
// @Failure      400      {object}  model.ErrorResponse
// @Router       /pairing/transaction [post]
func (h *PairingHandler) Transaction(w http.ResponseWriter, r *http.Request) {
	if !allowMethod(w, r, http.MethodPost) {
		return
	}

	var req model.TransactionRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, r, err)
		return
	}
	pairingKey, err := decodeHex("pairingKey", req.PairingKey)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	defer clear(pairingKey)
	blob, err := decodeOptionalHex("data", req.Blob)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}

	info, err := pairing.TransactionInfoFromEncryptedBlob(blob, pairingKey)
	if err != nil {
		writeError(w, h.log, r, err)
		return
	}
	info.DongleName = req.DongleName

	h.log.Info("transaction decoded", zap.String("recipient", info.RecipientAddress),
		zap.Int64("outputs", info.OutputsAmount), zap.String("dongle", info.DongleName))
	writeJSON(w, http.StatusOK, model.TransactionResponse{
		TransactionInfo: *info,
		Outputs:         common.SatoshiToBTC(info.OutputsAmount),
		Fees:            common.SatoshiToBTC(info.FeesAmount),
		Change:          common.SatoshiToBTC(info.ChangeAmount),
	})
}
