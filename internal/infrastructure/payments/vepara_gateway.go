package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"vepara_gateway/internal/infrastructure/circuitbreaker"
	"vepara_gateway/internal/infrastructure/tracing"
	"vepara_gateway/internal/usecase/interfaces"
	"vepara_gateway/pkg/vepara"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/sony/gobreaker/v2"
)

var ErrMissingVeparaMerchantKey = errors.New("missing VEPARA_MERCHANT_KEY")

// VeparaConfig is read from the environment by the router.
type VeparaConfig struct {
	MerchantKey string
	Sandbox     bool
	Timeout     time.Duration
	// Transport is the base round tripper; nil uses a clone of http.DefaultTransport.
	Transport http.RoundTripper
	Logger    zerolog.Logger
}

type VeparaGateway struct {
	client   *vepara.Client
	breaker  *gobreaker.CircuitBreaker[vepara.Outcome]
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*VeparaGateway)(nil)

func NewVeparaGateway(cfg VeparaConfig) (*VeparaGateway, error) {
	if IsPaymentGatewayMockEnabled() {
		cfg.Logger.Warn().Msg("[payment][gateway] mock mode enabled")
		return &VeparaGateway{mockMode: true}, nil
	}

	if strings.TrimSpace(cfg.MerchantKey) == "" {
		cfg.Logger.Error().Msg("[payment][gateway] missing VEPARA_MERCHANT_KEY")
		return nil, ErrMissingVeparaMerchantKey
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = vepara.DefaultTimeout
	}
	hc := &http.Client{
		Timeout:   timeout,
		Transport: tracing.Transport(cfg.Transport),
	}

	builder := vepara.NewOptionsBuilder(cfg.MerchantKey).WithHTTPClient(hc).WithLogger(cfg.Logger)
	if cfg.Sandbox {
		builder.EnableDevMode()
	}
	client := vepara.NewClient(builder.Build())
	cfg.Logger.Info().Str("api_base", client.Options().APIBase()).Msg("[payment][gateway] Vepara client initialized")

	return &VeparaGateway{
		client:  client,
		breaker: circuitbreaker.CreateCircuitBreaker[vepara.Outcome]("vepara", countsAsSuccess),
	}, nil
}

// callerGoneError marks a failure caused by the caller's context ending, not by Vepara.
type callerGoneError struct {
	err error
}

func (e *callerGoneError) Error() string { return e.err.Error() }
func (e *callerGoneError) Unwrap() error { return e.err }

// countsAsSuccess decides what the breaker holds against Vepara. Only transport failures
// count; a decode failure means the gateway answered, and a caller that went away says
// nothing about the gateway.
func countsAsSuccess(err error) bool {
	if err == nil || !errors.Is(err, vepara.ErrTransport) {
		return true
	}
	var gone *callerGoneError
	return errors.As(err, &gone) || errors.Is(err, context.Canceled)
}

func (g *VeparaGateway) Initiate2DPayment(ctx context.Context, req vepara.Payment2DRequest) (vepara.Outcome, error) {
	if g != nil && g.mockMode {
		return mockOutcome(req), nil
	}
	if g == nil || g.client == nil {
		return nil, fmt.Errorf("%w: vepara client not initialized", vepara.ErrTransport)
	}

	outcome, err := g.breaker.Execute(func() (vepara.Outcome, error) {
		outcome, err := g.client.Payment.Initiate2DPayment(ctx, req)
		if err != nil && ctx.Err() != nil {
			return nil, &callerGoneError{err: err}
		}
		return outcome, err
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %w", interfaces.ErrPaymentGatewayCircuitOpen, err)
	}
	return outcome, err
}

// mockOutcome answers like an approved sale without any network I/O.
func mockOutcome(req vepara.Payment2DRequest) vepara.Outcome {
	return &vepara.Success{
		StatusCode:        100,
		StatusDescription: "Payment process successful",
		Data: vepara.SuccessData{
			OrderNo:         uuid.NewString(),
			OrderID:         uuid.NewString(),
			InvoiceID:       req.InvoiceID,
			CreditCardNo:    maskCardNo(req.CCNo),
			TransactionType: "Auth",
			PaymentStatus:   1,
			PaymentMethod:   1,
			AuthCode:        int64(time.Now().UTC().UnixNano() % 1000000),
			HashKey:         req.HashKey,
		},
	}
}

func maskCardNo(ccNo string) string {
	ccNo = strings.ReplaceAll(ccNo, " ", "")
	if len(ccNo) <= 10 {
		return strings.Repeat("*", len(ccNo))
	}
	return ccNo[:6] + strings.Repeat("*", len(ccNo)-10) + ccNo[len(ccNo)-4:]
}

func IsPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
