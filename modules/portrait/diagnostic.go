package portrait

import (
	"encoding/json"
	"log"
	"net/http"
)

// TestOpenAI - OpenAI 키 1회성 진단
// 키 미설정 / 키 거부 / 키 유효를 구분, 항상 200으로 응답
func (h *Handler) TestOpenAI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	status, err := h.service.CheckKey(r.Context())
	if err != nil {
		log.Printf("⚠️  [Portrait] Key diagnostic request failed: %v", err)
		json.NewEncoder(w).Encode(DiagnosticResponse{
			OK:      false,
			Error:   "Request failed.",
			Details: err.Error(),
		})
		return
	}

	if !status.KeyLoaded {
		json.NewEncoder(w).Encode(DiagnosticResponse{
			OK:        false,
			KeyLoaded: false,
			Error:     "OPENAI_API_KEY is not set. Add it to .env in the project root or set it in the host's environment variables, then restart the server.",
		})
		return
	}

	if !status.Valid {
		json.NewEncoder(w).Encode(DiagnosticResponse{
			OK:        false,
			KeyLoaded: true,
			Error:     "OpenAI rejected the key.",
			Details:   status.Details,
		})
		return
	}

	json.NewEncoder(w).Encode(DiagnosticResponse{
		OK:        true,
		KeyLoaded: true,
		Message:   "OpenAI API key is valid. If portrait generation still fails, the key may lack access to image models.",
	})
}
