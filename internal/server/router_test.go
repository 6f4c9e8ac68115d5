package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/textvcard/backend/internal/config"
	"github.com/textvcard/backend/internal/i18n"
	"github.com/textvcard/backend/internal/server/resp"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	require.NoError(t, i18n.Load())
	cfg, err := config.Load()
	require.NoError(t, err)
	return NewRouter(cfg, nil, zap.NewNop())
}

func doJSON(t *testing.T, r http.Handler, method, path, body string, header map[string]string) (*httptest.ResponseRecorder, resp.Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range header {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env resp.Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w, env
}

func TestHealth(t *testing.T) {
	r := newTestRouter(t)
	w, env := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", env.Status)
}

func TestConvert_OK(t *testing.T) {
	r := newTestRouter(t)
	w, env := doJSON(t, r, http.MethodPost, "/v1/convert",
		`{"text":"Azim\n+7 925 198-90-91\n"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := env.Data.(map[string]any)
	assert.Equal(t, float64(1), data["contacts"])
	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nFN:Azim\nTEL;TYPE=CELL:+79251989091\nEND:VCARD", data["vcard"])
	assert.Empty(t, data["warnings"])
}

func TestConvert_WarningsLocalized(t *testing.T) {
	r := newTestRouter(t)

	// default language is Russian
	_, env := doJSON(t, r, http.MethodPost, "/v1/convert", `{"text":"Bob"}`, nil)
	data := env.Data.(map[string]any)
	warnings := data["warnings"].([]any)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].(string), "Bob")
	assert.Contains(t, warnings[0].(string), "пропущена")

	// explicit English
	_, env = doJSON(t, r, http.MethodPost, "/v1/convert", `{"text":"Bob"}`,
		map[string]string{"Accept-Language": "en-US,en;q=0.9"})
	data = env.Data.(map[string]any)
	warnings = data["warnings"].([]any)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0].(string), "skipped")
}

func TestConvert_EmptyTextIsNotAnError(t *testing.T) {
	r := newTestRouter(t)
	w, env := doJSON(t, r, http.MethodPost, "/v1/convert", `{"text":""}`, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, "", data["vcard"])
	assert.Equal(t, float64(0), data["contacts"])
}

func TestConvert_BadBody(t *testing.T) {
	r := newTestRouter(t)
	w, env := doJSON(t, r, http.MethodPost, "/v1/convert", `{"text":`, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", env.Status)
}

func TestNormalize(t *testing.T) {
	r := newTestRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/v1/normalize", `{"phone":"89251989091"}`, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := env.Data.(map[string]any)
	assert.Equal(t, "+79251989091", data["phone"])

	w, env = doJSON(t, r, http.MethodPost, "/v1/normalize", `{"phone":"notaphone"}`, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "error", env.Status)
}

func TestRequestIDEchoed(t *testing.T) {
	r := newTestRouter(t)
	w, _ := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	const rid = "0e0f7a3c-9f1d-4a56-9e54-0d9a2a1c7b10"
	w, _ = doJSON(t, r, http.MethodGet, "/health", "", map[string]string{"X-Request-ID": rid})
	assert.Equal(t, rid, w.Header().Get("X-Request-ID"))
}
