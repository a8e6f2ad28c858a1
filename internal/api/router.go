package api

import (
	"fmt"
	"net/http"
	"time"

	_ "github.com/AlexZinkM/pairing-cipher/docs"
	"github.com/AlexZinkM/pairing-cipher/internal/config"
	"github.com/AlexZinkM/pairing-cipher/internal/crypto"
	"github.com/AlexZinkM/pairing-cipher/internal/handler"

	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// SetupRouter sets up router with handlers. Config must be initialized.
func SetupRouter(log *zap.Logger) (http.Handler, error) {
	if log == nil {
		return nil, fmt.Errorf("logger is nil")
	}

	params := crypto.DefaultScryptParams
	params.N = config.GetScryptN()

	cipherHandler := handler.NewCipherHandler(log, config.GetCipherIV())
	envelopeHandler := handler.NewEnvelopeHandler(log, params, config.GetPassphraseBytes)
	pairingHandler := handler.NewPairingHandler(log, config.GetAttestationKey())

	mux := http.NewServeMux()

	// Swagger UI
	mux.HandleFunc("/swagger/", httpSwagger.WrapHandler)

	// Cipher endpoints
	mux.HandleFunc("/cipher/encrypt", cipherHandler.Encrypt)
	mux.HandleFunc("/cipher/decrypt", cipherHandler.Decrypt)
	mux.HandleFunc("/cipher/kcv", cipherHandler.KCV)
	mux.HandleFunc("/cipher/algorithms", cipherHandler.Algorithms)

	// Envelope endpoints
	mux.HandleFunc("/envelope/seal", envelopeHandler.Seal)
	mux.HandleFunc("/envelope/open", envelopeHandler.Open)

	// Pairing endpoints
	mux.HandleFunc("/pairing/session", pairingHandler.Session)
	mux.HandleFunc("/pairing/challenge", pairingHandler.Challenge)
	mux.HandleFunc("/pairing/response", pairingHandler.Response)
	mux.HandleFunc("/pairing/transaction", pairingHandler.Transaction)

	return withRequestLog(log, mux), nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRequestLog logs method, path, status and latency of every request.
func withRequestLog(log *zap.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)),
		)
	})
}
