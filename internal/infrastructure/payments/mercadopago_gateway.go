package payments

import (
	"context"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"iblind_pos/internal/domain/entities"
	"iblind_pos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var (
	ErrMissingMercadoPagoAccessToken   = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
	ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")
)

// MercadoPagoGateway charges non-cash settlements through Mercado Pago.
//
// Mock mode (PAYMENT_GATEWAY_MOCK=true/1) approves every charge locally, for
// development and tests without provider credentials.

type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if IsPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

func (g *MercadoPagoGateway) Charge(ctx context.Context, req interfaces.ChargeRequest) (string, string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[payment][gateway] mock charge approved reference=%s amount=%.2f method=%s provider_id=%s",
			req.Reference, req.Amount, req.Method, id)
		return id, "approved", nil
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return "", "", ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] charge start reference=%s amount=%.2f method=%s", req.Reference, req.Amount, req.Method)

	resp, err := g.client.Create(ctx, payment.Request{
		TransactionAmount: req.Amount,
		Description:       req.Description,
		PaymentMethodID:   providerMethodID(req.Method),
		ExternalReference: req.Reference,
	})
	if err != nil {
		log.Printf("[payment][gateway] sdk create failed reference=%s err=%v", req.Reference, err)
		return "", "", err
	}

	id := strconv.Itoa(resp.ID)
	log.Printf("[payment][gateway] charge done reference=%s provider_id=%s status=%s", req.Reference, id, resp.Status)
	return id, resp.Status, nil
}

func providerMethodID(m entities.PaymentMethod) string {
	return strings.ToLower(string(m))
}

// IsPaymentGatewayMockEnabled reports whether PAYMENT_GATEWAY_MOCK requests
// locally-approved charges.
func IsPaymentGatewayMockEnabled() bool {
	v := strings.TrimSpace(strings.ToLower(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	return v == "1" || v == "true" || v == "yes"
}
