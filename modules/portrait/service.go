package portrait

import (
	"context"
	"fmt"
	"log"

	"portrait-atelier-server/modules/common/config"
	"portrait-atelier-server/modules/common/openai"
	"portrait-atelier-server/modules/common/utils"
)

// maxImageSize - 업스트림에 보내기 전 긴 변 기준 최대 픽셀
const maxImageSize = 1024

type Service struct {
	client *openai.Client
}

func NewService() *Service {
	cfg := config.GetConfig()
	return &Service{
		client: openai.NewClient(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel),
	}
}

// NewServiceWithClient - 테스트용 주입 생성자
func NewServiceWithClient(client *openai.Client) *Service {
	return &Service{client: client}
}

// Configured - 업스트림 호출 가능 여부
func (s *Service) Configured() bool {
	return s.client.Configured()
}

// Generate - 업로드 이미지 정규화 후 이미지 편집 API 호출
func (s *Service) Generate(ctx context.Context, imageData []byte, prompt string) (*openai.EditResult, error) {
	pngData, err := utils.NormalizeToPNG(imageData, maxImageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to process image: %w", err)
	}

	log.Printf("🎨 [Portrait] Calling image edit API (image: %d bytes, prompt: %d chars)", len(pngData), len(prompt))

	result, err := s.client.EditImage(ctx, pngData, prompt)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ [Portrait] Image generated (b64: %v, url: %v)", result.B64 != "", result.URL != "")
	return result, nil
}

// CheckKey - 업스트림 키 진단 (diagnostic 핸들러 전용)
func (s *Service) CheckKey(ctx context.Context) (*openai.KeyStatus, error) {
	return s.client.CheckKey(ctx)
}
