package interfaces

import (
	"context"
	"errors"

	"vepara_gateway/pkg/vepara"
)

// ErrPaymentGatewayCircuitOpen is returned instead of calling the provider while it is
// considered down.
var ErrPaymentGatewayCircuitOpen = errors.New("payment gateway circuit open")

// IPaymentGateway abstracts the card-payment provider (Vepara).
//
// A nil error means the provider answered with a recognised outcome, including
// declines and rejections. Errors wrap vepara.ErrTransport, vepara.ErrDecode or
// ErrPaymentGatewayCircuitOpen.
type IPaymentGateway interface {
	Initiate2DPayment(ctx context.Context, req vepara.Payment2DRequest) (vepara.Outcome, error)
}
