package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"time"
)

// ErrUnauthorized - 업스트림이 자격증명을 거부 (키 미설정과 구분)
var ErrUnauthorized = errors.New("openai rejected the API key")

// Client - OpenAI 이미지 API 클라이언트 (images/edits + 키 진단)
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
}

// NewClient - 클라이언트 생성 (baseURL 비어있으면 공식 엔드포인트)
func NewClient(apiKey, baseURL, model string) *Client {
	if baseURL == "" {
		baseURL = "https://api.openai.com/v1"
	}
	if model == "" {
		model = "gpt-image-1.5"
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		model:   model,
		// 이미지 생성은 수십 초 걸릴 수 있음
		httpClient: &http.Client{Timeout: 180 * time.Second},
	}
}

// Configured - API 키 설정 여부
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// EditResult - 이미지 편집 결과 (b64 또는 url 중 하나)
type EditResult struct {
	B64 string
	URL string
}

type editResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
		URL     string `json:"url"`
	} `json:"data"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
		Code    any    `json:"code"`
	} `json:"error"`
}

// EditImage - images/edits 호출 (multipart: 원본 PNG + 지시문)
// 재시도 없음 - 실패는 즉시 호출자에게 전달
func (c *Client) EditImage(ctx context.Context, pngData []byte, prompt string) (*EditResult, error) {
	if !c.Configured() {
		return nil, fmt.Errorf("OpenAI API key is not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if err := writer.WriteField("model", c.model); err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if err := writer.WriteField("prompt", prompt); err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if err := writer.WriteField("size", "1024x1024"); err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	part, err := writer.CreateFormFile("image", "image.png")
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if _, err := part.Write(pngData); err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/images/edits", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		message := extractErrorMessage(respBody, resp.StatusCode)
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("%w: %s", ErrUnauthorized, message)
		}
		return nil, fmt.Errorf("openai error: %s", message)
	}

	var parsed editResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return nil, fmt.Errorf("unexpected response from OpenAI: %w", err)
	}
	if len(parsed.Data) == 0 {
		return nil, fmt.Errorf("no image was generated")
	}

	first := parsed.Data[0]
	if first.B64JSON != "" {
		return &EditResult{B64: first.B64JSON}, nil
	}
	if first.URL != "" {
		return &EditResult{URL: first.URL}, nil
	}
	return nil, fmt.Errorf("unexpected response from OpenAI")
}

// KeyStatus - 키 진단 결과
type KeyStatus struct {
	KeyLoaded bool
	Valid     bool
	Details   string
}

// CheckKey - models 목록 조회로 키 유효성 확인 (진단 전용)
func (c *Client) CheckKey(ctx context.Context) (*KeyStatus, error) {
	if !c.Configured() {
		return &KeyStatus{KeyLoaded: false}, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return &KeyStatus{
			KeyLoaded: true,
			Valid:     false,
			Details:   MaskKey(extractErrorMessage(respBody, resp.StatusCode)),
		}, nil
	}

	return &KeyStatus{KeyLoaded: true, Valid: true}, nil
}

var keyPattern = regexp.MustCompile(`sk-\S+`)

// MaskKey - 메시지에 섞여 들어온 API 키 마스킹
func MaskKey(s string) string {
	return keyPattern.ReplaceAllString(s, "sk-***")
}

func extractErrorMessage(body []byte, status int) string {
	var parsed errorResponse
	if err := json.Unmarshal(body, &parsed); err == nil && parsed.Error.Message != "" {
		if parsed.Error.Code != nil {
			return fmt.Sprintf("%v: %s", parsed.Error.Code, parsed.Error.Message)
		}
		return parsed.Error.Message
	}
	return fmt.Sprintf("HTTP %d", status)
}
