package order

// FulfillmentOption - 주문 처리 옵션 (고정 3종)
type FulfillmentOption string

const (
	OptionDownload FulfillmentOption = "download"
	OptionPrint    FulfillmentOption = "print"
	OptionFramed   FulfillmentOption = "framed"
)

// IsValidOption - 옵션 값 검증
func IsValidOption(option string) bool {
	switch FulfillmentOption(option) {
	case OptionDownload, OptionPrint, OptionFramed:
		return true
	}
	return false
}

// PrepareCheckoutRequest - 결제 준비 요청 (생성된 이미지 스테이징)
type PrepareCheckoutRequest struct {
	ImageB64 string `json:"imageB64"`
	Option   string `json:"option"`
}

// PrepareCheckoutResponse - 새로 발급된 주문 ID
type PrepareCheckoutResponse struct {
	OrderID string `json:"orderId"`
}
