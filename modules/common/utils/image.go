package utils

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	_ "github.com/gen2brain/webp" // WebP 디코더 등록
	_ "image/jpeg"                // JPEG 디코더 등록
)

// dataURIPrefix - data:image/png;base64, 형태의 접두사
var dataURIPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

// StripDataURI - base64 문자열에서 data-URI 접두사 제거 (없으면 그대로)
func StripDataURI(b64 string) string {
	return dataURIPrefix.ReplaceAllString(strings.TrimSpace(b64), "")
}

// DecodeBase64Image - data-URI 허용 base64 → 이미지 바이너리
func DecodeBase64Image(b64 string) ([]byte, error) {
	raw := StripDataURI(b64)
	if raw == "" {
		return nil, fmt.Errorf("empty image payload")
	}
	data, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid base64 image: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image payload")
	}
	return data, nil
}

// EncodeImageToBase64 - 이미지 바이너리를 base64로 변환
func EncodeImageToBase64(imageData []byte) string {
	return base64.StdEncoding.EncodeToString(imageData)
}

// NormalizeToPNG - 업로드 이미지를 maxSize 안에 맞춰 PNG로 재인코딩
// 비율 유지, 원본이 더 작으면 확대하지 않음 (JPEG/PNG/WebP 자동 감지)
func NormalizeToPNG(data []byte, maxSize int) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxSize || bounds.Dy() > maxSize {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
		log.Printf("🔄 Image resized: %dx%d → fit %dx%d", bounds.Dx(), bounds.Dy(), maxSize, maxSize)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}
