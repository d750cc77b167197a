// Package vepara is a client for the Vepara card-payment gateway.
//
// A Client is built once from Options and can be copied and shared between goroutines:
// every copy points at the same read-only Options and the same pooled http.Client.
//
//	opts := vepara.NewOptionsBuilder(merchantKey).EnableDevMode().Build()
//	client := vepara.NewClient(opts)
//	outcome, err := client.Payment.Initiate2DPayment(ctx, req)
//
// Callers check two independent axes: err (ErrTransport or ErrDecode) and, when err is nil,
// the concrete Outcome (*Success, *InvalidHash or *ValidationError).
package vepara

type Client struct {
	options *Options

	Payment *PaymentService
}

func NewClient(options *Options) *Client {
	if options == nil {
		options = NewOptionsBuilder("").Build()
	}
	return &Client{
		options: options,
		Payment: newPaymentService(options),
	}
}

func (c *Client) Options() *Options {
	return c.options
}
