package checkout

import (
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"

	"portrait-atelier-server/modules/order"
)

type Service struct {
	secretKey string
}

func NewService(secretKey string) *Service {
	return &Service{secretKey: secretKey}
}

// Configured - Stripe 키 설정 여부
func (s *Service) Configured() bool {
	return s.secretKey != ""
}

// BuildSessionParams - 포트레이트 주문 결제 세션 파라미터 조립 (순수 함수)
// success URL에 order_id와 option을 실어 결제 완료 페이지가 컨텍스트를 복원
// cancel URL은 same-origin returnUrl만 허용, 아니면 사이트 루트
func BuildSessionParams(orderID, option, returnURL, origin string) (*stripe.CheckoutSessionParams, error) {
	if !order.IsValidOption(option) {
		return nil, fmt.Errorf("invalid option: %s", option)
	}
	product := PortraitOptions[option]

	cancelURL := origin + "/"
	if returnURL != "" && strings.HasPrefix(returnURL, origin) {
		cancelURL = returnURL
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyGBP)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(product.Name),
						Description: stripe.String(product.Description),
					},
					UnitAmount: stripe.Int64(PortraitPriceGBP),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(fmt.Sprintf("%s/checkout/success?session_id={CHECKOUT_SESSION_ID}&order_id=%s&option=%s", origin, orderID, option)),
		CancelURL:  stripe.String(cancelURL),
	}
	params.AddMetadata("orderId", orderID)
	params.AddMetadata("option", option)

	// framed만 배송 주소 수집
	if option == string(order.OptionFramed) {
		params.ShippingAddressCollection = &stripe.CheckoutSessionShippingAddressCollectionParams{
			AllowedCountries: stripe.StringSlice(FramedShippingCountries),
		}
	}

	return params, nil
}

// BuildLegacySessionParams - 구형 정액 상품 결제 세션 파라미터 조립 (순수 함수)
func BuildLegacySessionParams(productID, origin string) (*stripe.CheckoutSessionParams, error) {
	product, ok := LegacyProducts[productID]
	if !ok {
		return nil, fmt.Errorf("invalid product: %s", productID)
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String(string(stripe.CurrencyUSD)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String(product.Name),
						Description: stripe.String(product.Description),
					},
					UnitAmount: stripe.Int64(product.PriceUSD),
				},
				Quantity: stripe.Int64(1),
			},
		},
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(origin + "/checkout/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(origin + "/pricing"),
	}
	params.AddMetadata("productId", productID)

	return params, nil
}

// CreateSession - Stripe 결제 세션 생성, 호스팅 결제 URL 반환
func (s *Service) CreateSession(params *stripe.CheckoutSessionParams) (string, error) {
	stripe.Key = s.secretKey

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe session creation failed: %w", err)
	}
	return sess.URL, nil
}
