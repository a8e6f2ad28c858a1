package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AlexZinkM/pairing-cipher/internal/config"
	"github.com/AlexZinkM/pairing-cipher/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newTestRouter(t *testing.T) (http.Handler, *observer.ObservedLogs) {
	t.Helper()
	config.Set(&config.Config{
		Port:           "0",
		CipherIV:       "0000000000000000",
		ScryptN:        1 << 10,
		LogLevel:       "debug",
		AttestationKey: config.DefaultAttestationKey,
	})
	config.SetPassphrase([]byte("dev"))

	core, logs := observer.New(zap.InfoLevel)
	router, err := SetupRouter(zap.New(core))
	require.NoError(t, err)
	return router, logs
}

func TestRouterRoutes(t *testing.T) {
	router, logs := newTestRouter(t)

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{http.MethodGet, "/cipher/algorithms", "", http.StatusOK},
		{http.MethodPost, "/cipher/encrypt", `{"key":"0123456789abcdeffedcba9876543210","data":"00"}`, http.StatusOK},
		{http.MethodPost, "/cipher/decrypt", `{"key":"0123456789abcdef","data":"00"}`, http.StatusBadRequest},
		{http.MethodPost, "/cipher/kcv", `{"key1":"0123456789abcdef","key2":"0123456789abcdef","key3":"0123456789abcdef"}`, http.StatusOK},
		{http.MethodPost, "/envelope/seal", `{"plaintext":"00"}`, http.StatusOK},
		{http.MethodPost, "/envelope/open", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/pairing/session", `{}`, http.StatusOK},
		{http.MethodPost, "/pairing/challenge", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/pairing/response", `{}`, http.StatusBadRequest},
		{http.MethodPost, "/pairing/transaction", `{}`, http.StatusBadRequest},
		{http.MethodGet, "/cipher/encrypt", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
		})
	}

	entries := logs.FilterMessage("http request").All()
	require.Len(t, entries, len(tests))
	assert.Equal(t, "/cipher/algorithms", entries[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusNotFound), entries[len(entries)-1].ContextMap()["status"])
}

func TestRouterKCV(t *testing.T) {
	router, _ := newTestRouter(t)

	body, err := json.Marshal(model.KCVRequest{Key1: "0123456789abcdef", Key2: "fedcba9876543210", Key3: "0123456789abcdef"})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/cipher/kcv", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp model.KCVResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "08D7B4", resp.KCV)
}

func TestRouterSwaggerDoc(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	paths, ok := doc["paths"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, paths, "/cipher/encrypt")
	assert.Contains(t, paths, "/pairing/transaction")
}

func TestSetupRouterNilLogger(t *testing.T) {
	_, err := SetupRouter(nil)
	require.Error(t, err)
}
