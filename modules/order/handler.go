package order

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"regexp"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"portrait-atelier-server/modules/common/utils"
)

// orderIDPattern - 주문 ID 형식 (소문자 hex + 하이픈, 36자)
var orderIDPattern = regexp.MustCompile(`^[a-f0-9-]{36}$`)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes - 라우터에 Order 엔드포인트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/prepare-checkout", h.PrepareCheckout).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/order/{orderId}/image", h.GetOrderImage).Methods("GET")
	log.Println("✅ Order routes registered: /api/prepare-checkout, /api/order/{orderId}/image")
}

// PrepareCheckout - 생성된 이미지를 새 주문 ID로 스테이징
func (h *Handler) PrepareCheckout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req PrepareCheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request format.")
		return
	}

	if req.ImageB64 == "" {
		writeError(w, http.StatusBadRequest, "Image is required.")
		return
	}
	if !IsValidOption(req.Option) {
		writeError(w, http.StatusBadRequest, "Invalid option. Use download, print, or framed.")
		return
	}

	imageData, err := utils.DecodeBase64Image(req.ImageB64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Image is not valid base64.")
		return
	}

	// 새 주문 ID 발급 - stage는 멱등 아님, 호출마다 새 ID
	orderID := uuid.NewString()

	if err := h.store.Save(r.Context(), orderID, imageData); err != nil {
		log.Printf("❌ [Order] Failed to stage image for %s: %v", orderID, err)
		writeError(w, http.StatusInternalServerError, "Failed to prepare checkout.")
		return
	}

	log.Printf("📦 [Order] Staged image %s (%d bytes, option: %s)", orderID, len(imageData), req.Option)
	json.NewEncoder(w).Encode(PrepareCheckoutResponse{OrderID: orderID})
}

// GetOrderImage - 주문 ID로 스테이징 이미지 다운로드
// 형식 검증(400)이 저장소 조회(404)보다 먼저
func (h *Handler) GetOrderImage(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["orderId"]

	if !orderIDPattern.MatchString(orderID) {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, http.StatusBadRequest, "Invalid order ID.")
		return
	}

	data, err := h.store.Get(r.Context(), orderID)
	if errors.Is(err, ErrNotFound) {
		w.Header().Set("Content-Type", "application/json")
		writeError(w, http.StatusNotFound, "Image not found or expired.")
		return
	}
	if err != nil {
		log.Printf("❌ [Order] Failed to read image for %s: %v", orderID, err)
		w.Header().Set("Content-Type", "application/json")
		writeError(w, http.StatusInternalServerError, "Failed to read order image.")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="portrait-%s.png"`, orderID))
	w.Write(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
