package portrait

// GenerateResponse - 생성 결과 (b64 또는 url 중 하나)
type GenerateResponse struct {
	B64 string `json:"b64,omitempty"`
	URL string `json:"url,omitempty"`
}

// DiagnosticResponse - /api/test-openai 진단 결과
type DiagnosticResponse struct {
	OK        bool   `json:"ok"`
	KeyLoaded bool   `json:"keyLoaded"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
	Details   string `json:"details,omitempty"`
}
