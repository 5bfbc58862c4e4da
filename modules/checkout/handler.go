package checkout

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"portrait-atelier-server/modules/common/config"
	"portrait-atelier-server/modules/order"
)

type Handler struct {
	service *Service
}

func NewHandler() *Handler {
	cfg := config.GetConfig()
	return &Handler{service: NewService(cfg.StripeSecretKey)}
}

// RegisterRoutes - 라우터에 Checkout 엔드포인트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/checkout", h.CreateCheckoutSession).Methods("POST", "OPTIONS")
	log.Println("✅ Checkout routes registered: /api/checkout")
}

// CreateCheckoutSession - Stripe 결제 세션 생성
// 새 플로우(orderId+option) 우선, 구형 플로우(productId) 폴백
func (h *Handler) CreateCheckoutSession(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	// 설정 오류는 검증 오류와 구분해 500
	if !h.service.Configured() {
		writeError(w, http.StatusInternalServerError, "Stripe is not configured.")
		return
	}

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	origin := r.Header.Get("Origin")
	if origin == "" {
		origin = config.GetConfig().PublicBaseURL
	}
	if origin == "" {
		origin = "http://localhost:3000"
	}

	// 포트레이트 주문 결제 (결과 화면에서 진입)
	if req.OrderID != "" && order.IsValidOption(req.Option) {
		params, err := BuildSessionParams(req.OrderID, req.Option, req.ReturnURL, origin)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		url, err := h.service.CreateSession(params)
		if err != nil {
			log.Printf("❌ [Checkout] Stripe error: %v", err)
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		log.Printf("💳 [Checkout] Session created for order %s (option: %s)", req.OrderID, req.Option)
		json.NewEncoder(w).Encode(CheckoutResponse{URL: url})
		return
	}

	// 구형: 정액 상품 결제 (pricing 페이지 경유)
	if _, ok := LegacyProducts[req.ProductID]; !ok {
		writeError(w, http.StatusBadRequest, "Invalid product or missing orderId/option.")
		return
	}

	params, err := BuildLegacySessionParams(req.ProductID, origin)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	url, err := h.service.CreateSession(params)
	if err != nil {
		log.Printf("❌ [Checkout] Stripe error: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Printf("💳 [Checkout] Legacy session created for product %s", req.ProductID)
	json.NewEncoder(w).Encode(CheckoutResponse{URL: url})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
