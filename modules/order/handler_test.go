package order

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(store Store) *mux.Router {
	r := mux.NewRouter()
	NewHandler(store).RegisterRoutes(r)
	return r
}

func prepareBody(t *testing.T, imageB64, option string) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(PrepareCheckoutRequest{ImageB64: imageB64, Option: option})
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestPrepareCheckoutAndDownloadRoundtrip(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	router := newTestRouter(store)

	imageData := []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A, 0x01, 0x02, 0x03}
	b64 := "data:image/png;base64," + base64.StdEncoding.EncodeToString(imageData)

	req := httptest.NewRequest("POST", "/api/prepare-checkout", prepareBody(t, b64, "print"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp PrepareCheckoutResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.NotEmpty(t, resp.OrderID)

	// 다운로드 시 스테이징된 바이트와 동일해야 함
	req = httptest.NewRequest("GET", "/api/order/"+resp.OrderID+"/image", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), resp.OrderID)
	assert.Equal(t, imageData, rec.Body.Bytes())
}

func TestPrepareCheckoutMintsFreshID(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	router := newTestRouter(store)
	b64 := base64.StdEncoding.EncodeToString([]byte("img"))

	ids := map[string]bool{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest("POST", "/api/prepare-checkout", prepareBody(t, b64, "download"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp PrepareCheckoutResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.False(t, ids[resp.OrderID], "order ID reused")
		ids[resp.OrderID] = true
	}
}

func TestPrepareCheckoutValidation(t *testing.T) {
	b64 := base64.StdEncoding.EncodeToString([]byte("img"))

	tests := []struct {
		name     string
		imageB64 string
		option   string
		wantMsg  string
	}{
		{"missing image", "", "download", "Image is required."},
		{"bad option", b64, "subscription", "Invalid option. Use download, print, or framed."},
		{"empty option", b64, "", "Invalid option. Use download, print, or framed."},
		{"bad base64", "!!!not-base64!!!", "print", "Image is not valid base64."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore(time.Hour)
			router := newTestRouter(store)

			req := httptest.NewRequest("POST", "/api/prepare-checkout", prepareBody(t, tt.imageB64, tt.option))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tt.wantMsg, resp["error"])

			// 거부된 요청은 주문 ID를 발급하지 않음
			store.mu.RLock()
			assert.Empty(t, store.items)
			store.mu.RUnlock()
		})
	}
}

func TestPrepareCheckoutInvalidJSON(t *testing.T) {
	router := newTestRouter(NewMemoryStore(time.Hour))

	req := httptest.NewRequest("POST", "/api/prepare-checkout", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetOrderImageInvalidVsMissing(t *testing.T) {
	router := newTestRouter(NewMemoryStore(time.Hour))

	// 형식이 틀린 ID는 400
	req := httptest.NewRequest("GET", "/api/order/not-a-uuid/image", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// 형식은 맞지만 없는 ID는 404
	req = httptest.NewRequest("GET", "/api/order/00000000-0000-0000-0000-000000000000/image", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Image not found or expired.", resp["error"])
}

func TestIsValidOption(t *testing.T) {
	assert.True(t, IsValidOption("download"))
	assert.True(t, IsValidOption("print"))
	assert.True(t, IsValidOption("framed"))
	assert.False(t, IsValidOption("Download"))
	assert.False(t, IsValidOption("digital"))
	assert.False(t, IsValidOption(""))
}
