package checkout

// PortraitPriceGBP - 포트레이트 단일 가격 (£29.90, pence 단위)
const PortraitPriceGBP = 2990

// OptionProduct - 주문 옵션별 결제 라인 아이템 표시 정보
type OptionProduct struct {
	Name        string
	Description string
}

// PortraitOptions - 옵션별 상품 정보
var PortraitOptions = map[string]OptionProduct{
	"download": {
		Name:        "Digital Download",
		Description: "High-resolution digital download of your portrait",
	},
	"print": {
		Name:        "Print",
		Description: "Professional print of your portrait",
	},
	"framed": {
		Name:        "Printed & Framed",
		Description: "Professional print, framed and delivered to your door",
	},
}

// LegacyProduct - 구형 정액 결제 상품 (pricing 페이지 경유)
type LegacyProduct struct {
	Name        string
	Description string
	PriceUSD    int64
}

// LegacyProducts - 구형 상품 정보 (USD cent 단위)
var LegacyProducts = map[string]LegacyProduct{
	"pet": {
		Name:        "Pet Portrait",
		Description: "AI-generated pet portrait - single image upload",
		PriceUSD:    2900,
	},
	"family": {
		Name:        "Family Portrait",
		Description: "AI-generated family portrait - humans & multi-image uploads",
		PriceUSD:    2900,
	},
}

// FramedShippingCountries - framed 옵션 배송 허용 국가
var FramedShippingCountries = []string{
	"GB", "IE", "US", "CA", "AU", "DE", "FR", "ES", "IT", "NL", "BE", "AT", "PT",
}

// CheckoutRequest - 결제 세션 생성 요청
// orderId+option이 새 플로우, productId는 구형 플로우
type CheckoutRequest struct {
	OrderID   string `json:"orderId"`
	Option    string `json:"option"`
	ReturnURL string `json:"returnUrl"`
	ProductID string `json:"productId"`
}

// CheckoutResponse - Stripe 호스팅 결제 페이지 URL
type CheckoutResponse struct {
	URL string `json:"url"`
}
