package checkout

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portrait-atelier-server/modules/common/config"
)

func newCheckoutRouter(t *testing.T, stripeKey string) *mux.Router {
	t.Helper()
	config.SetConfigForTest(&config.Config{StripeSecretKey: stripeKey})

	r := mux.NewRouter()
	NewHandler().RegisterRoutes(r)
	return r
}

func checkoutBody(t *testing.T, req CheckoutRequest) *bytes.Buffer {
	t.Helper()
	body, err := json.Marshal(req)
	require.NoError(t, err)
	return bytes.NewBuffer(body)
}

func TestCheckoutWithoutStripeKey(t *testing.T) {
	router := newCheckoutRouter(t, "")

	req := httptest.NewRequest("POST", "/api/checkout",
		checkoutBody(t, CheckoutRequest{OrderID: "abc", Option: "download"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Stripe is not configured.", resp["error"])
}

func TestCheckoutRejectsUnknownProduct(t *testing.T) {
	router := newCheckoutRouter(t, "sk_test_123")

	// orderId도 유효 옵션도 없고 productId도 미지: 400
	req := httptest.NewRequest("POST", "/api/checkout",
		checkoutBody(t, CheckoutRequest{ProductID: "enterprise"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "Invalid product or missing orderId/option.", resp["error"])
}

func TestCheckoutRejectsOrderWithBadOption(t *testing.T) {
	router := newCheckoutRouter(t, "sk_test_123")

	// orderId는 있지만 옵션이 무효: 구형 플로우로 넘어가 400
	req := httptest.NewRequest("POST", "/api/checkout",
		checkoutBody(t, CheckoutRequest{OrderID: "abc", Option: "subscription"}))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutInvalidJSON(t *testing.T) {
	router := newCheckoutRouter(t, "sk_test_123")

	req := httptest.NewRequest("POST", "/api/checkout", bytes.NewBufferString("{broken"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
