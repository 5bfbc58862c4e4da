package portrait

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"portrait-atelier-server/modules/catalog"
	"portrait-atelier-server/modules/common/openai"
	"portrait-atelier-server/modules/prompt"
)

const authErrorHint = "Invalid or missing OpenAI API key. Check the OPENAI_API_KEY environment variable, restart the server, and run the diagnostic: GET /api/test-openai."

type Handler struct {
	service *Service
}

func NewHandler() *Handler {
	return &Handler{service: NewService()}
}

// NewHandlerWithService - 테스트용 주입 생성자
func NewHandlerWithService(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes - 라우터에 Portrait 엔드포인트 등록
func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate-portrait", h.GeneratePortrait).Methods("POST", "OPTIONS")
	r.HandleFunc("/api/test-openai", h.TestOpenAI).Methods("GET")
	log.Println("✅ Portrait routes registered: /api/generate-portrait, /api/test-openai")
}

// GeneratePortrait - 업로드 사진 + 지시문으로 스타일 변환 이미지 생성
// 지시문은 클라이언트가 보낸 prompt 필드 우선, 없으면 구형 필드로 서버에서 재조립
func (h *Handler) GeneratePortrait(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if !h.service.Configured() {
		writeError(w, http.StatusInternalServerError, "OpenAI API key is not configured.")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data.")
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No image provided.")
		return
	}
	defer file.Close()

	if !strings.HasPrefix(header.Header.Get("Content-Type"), "image/") {
		writeError(w, http.StatusBadRequest, "File must be an image.")
		return
	}

	imageData, err := io.ReadAll(file)
	if err != nil || len(imageData) == 0 {
		writeError(w, http.StatusBadRequest, "No image provided.")
		return
	}

	instruction := strings.TrimSpace(r.FormValue("prompt"))
	if instruction == "" {
		instruction = buildFallbackPrompt(r)
	}

	result, err := h.service.Generate(r.Context(), imageData, instruction)
	if err != nil {
		if errors.Is(err, openai.ErrUnauthorized) {
			log.Printf("❌ [Portrait] Upstream rejected credential: %v", err)
			writeError(w, http.StatusUnauthorized, authErrorHint)
			return
		}
		log.Printf("❌ [Portrait] Generation failed: %v", err)
		writeError(w, http.StatusInternalServerError, openai.MaskKey(err.Error()))
		return
	}

	json.NewEncoder(w).Encode(GenerateResponse{B64: result.B64, URL: result.URL})
}

// buildFallbackPrompt - 구형 클라이언트의 개별 필드에서 지시문 재조립
func buildFallbackPrompt(r *http.Request) string {
	opts := prompt.Options{
		StyleID:    r.FormValue("style"),
		SubStyleID: r.FormValue("subStyle"),
	}

	if categoryRaw := r.FormValue("category"); catalog.IsValidCategory(categoryRaw) {
		opts.CategoryID = catalog.CategoryID(categoryRaw)
	}
	if poseRaw := r.FormValue("petPose"); prompt.IsValidPetPose(poseRaw) {
		opts.PetPose = prompt.PetPose(poseRaw)
	}
	if clothingRaw := r.FormValue("clothingChoices"); clothingRaw != "" {
		var choices map[string]string
		// 깨진 JSON은 무시 (선택 없음으로 처리)
		if err := json.Unmarshal([]byte(clothingRaw), &choices); err == nil {
			opts.ClothingChoices = choices
		}
	}

	return prompt.BuildPortraitPrompt(opts)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
