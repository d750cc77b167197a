package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"vepara_gateway/internal/domain/entities"
	"vepara_gateway/internal/usecase/interfaces"
	"vepara_gateway/pkg/vepara"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidPaymentPayload       = errors.New("invalid payment payload")
	ErrPaymentGatewayNotConfigured = errors.New("payment gateway not configured")
	ErrPaymentGatewayUnavailable   = errors.New("payment gateway unavailable")
	ErrPaymentGatewayBadResponse   = errors.New("payment gateway bad response")
)

// IPaymentUseCase runs a direct (2D) card payment against the gateway and reports the
// classified result as a Payment.
type IPaymentUseCase interface {
	Initiate2D(ctx context.Context, req vepara.Payment2DRequest) (entities.Payment, error)
}

type PaymentUseCase struct {
	gateway     interfaces.IPaymentGateway
	merchantKey string
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

// NewPaymentUseCase builds the use case. merchantKey is sent when a request leaves
// merchant_key empty.
func NewPaymentUseCase(gateway interfaces.IPaymentGateway, merchantKey string) *PaymentUseCase {
	return &PaymentUseCase{gateway: gateway, merchantKey: strings.TrimSpace(merchantKey)}
}

func (u *PaymentUseCase) Initiate2D(ctx context.Context, req vepara.Payment2DRequest) (entities.Payment, error) {
	req.InvoiceID = strings.TrimSpace(req.InvoiceID)
	logger := log.Ctx(ctx).With().Str("invoice_id", req.InvoiceID).Logger()
	logger.Info().Float64("total", req.Total).Str("currency_code", req.CurrencyCode).Msg("[payment][usecase] initiate 2d start")

	if req.InvoiceID == "" {
		logger.Warn().Msg("[payment][usecase] invalid invoice_id (empty)")
		return entities.Payment{}, ErrInvalidPaymentPayload
	}
	if u.gateway == nil {
		logger.Error().Msg("[payment][usecase] gateway not configured")
		return entities.Payment{}, ErrPaymentGatewayNotConfigured
	}
	if strings.TrimSpace(req.MerchantKey) == "" {
		req.MerchantKey = u.merchantKey
	}

	outcome, err := u.gateway.Initiate2DPayment(ctx, req)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][usecase] payment gateway failed")
		switch {
		case errors.Is(err, vepara.ErrDecode):
			return entities.Payment{}, fmt.Errorf("%w: %w", ErrPaymentGatewayBadResponse, err)
		case errors.Is(err, vepara.ErrTransport), errors.Is(err, interfaces.ErrPaymentGatewayCircuitOpen):
			return entities.Payment{}, fmt.Errorf("%w: %w", ErrPaymentGatewayUnavailable, err)
		default:
			return entities.Payment{}, err
		}
	}

	p, err := paymentFromOutcome(req, outcome)
	if err != nil {
		logger.Error().Err(err).Msg("[payment][usecase] unexpected gateway outcome")
		return entities.Payment{}, err
	}
	logger.Info().
		Str("payment_id", p.ID).
		Str("status", string(p.Status)).
		Str("order_no", p.OrderNo).
		Msg("[payment][usecase] initiate 2d done")
	return p, nil
}

func paymentFromOutcome(req vepara.Payment2DRequest, outcome vepara.Outcome) (entities.Payment, error) {
	p := entities.Payment{
		ID:           uuid.NewString(),
		InvoiceID:    req.InvoiceID,
		Date:         time.Now().UTC(),
		Total:        req.Total,
		CurrencyCode: req.CurrencyCode,
	}

	switch o := outcome.(type) {
	case *vepara.Success:
		p.Status = entities.PaymentStatusDeclined
		if o.Approved() {
			p.Status = entities.PaymentStatusApproved
		}
		p.OrderNo = o.Data.OrderNo
		p.OrderID = o.Data.OrderID
		p.MaskedCardNo = o.Data.CreditCardNo
		if o.Data.AuthCode != 0 {
			p.AuthCode = strconv.FormatInt(o.Data.AuthCode, 10)
		}
		p.GatewayStatusCode = o.StatusCode
		p.Message = o.StatusDescription
		if p.Status == entities.PaymentStatusDeclined && o.Data.Error != "" {
			p.Errors = []string{o.Data.Error}
		}
	case *vepara.InvalidHash:
		p.Status = entities.PaymentStatusInvalidHash
		p.OrderNo = o.Data.Data.OrderNo
		p.OrderID = o.Data.Data.OrderID
		p.MaskedCardNo = o.Data.Data.CreditCardNo
		p.AuthCode = o.Data.Data.AuthCode
		p.GatewayStatusCode = o.Data.StatusCode
		p.Message = o.Message
		if o.Data.Data.Error != "" {
			p.Errors = []string{o.Data.Data.Error}
		}
	case *vepara.ValidationError:
		p.Status = entities.PaymentStatusRejected
		p.Message = o.Message
		p.Errors = append([]string(nil), o.Errors.MerchantKey...)
	default:
		return entities.Payment{}, fmt.Errorf("%w: outcome %T", ErrPaymentGatewayBadResponse, outcome)
	}
	return p, nil
}
