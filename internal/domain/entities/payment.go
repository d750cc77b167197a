package entities

import "time"

// PaymentStatus is the service-level reading of a classified gateway response.
//
//   - approved / declined: the gateway processed the card (payment_status 1 or anything else)
//   - invalid_hash: the request hash_key did not verify
//   - rejected: the gateway refused the request before processing (field validation)

type PaymentStatus string

const (
	PaymentStatusApproved    PaymentStatus = "approved"
	PaymentStatusDeclined    PaymentStatus = "declined"
	PaymentStatusInvalidHash PaymentStatus = "invalid_hash"
	PaymentStatusRejected    PaymentStatus = "rejected"
)

// Settled reports whether the gateway processed the card at all.
func (s PaymentStatus) Settled() bool {
	return s == PaymentStatusApproved || s == PaymentStatusDeclined
}

// Payment is one 2D payment attempt as seen by the service.
//
// Card data is never kept: MaskedCardNo is the gateway's masked echo.

type Payment struct {
	ID           string        `json:"id"`
	InvoiceID    string        `json:"invoice_id"`
	OrderNo      string        `json:"order_no,omitempty"`
	OrderID      string        `json:"order_id,omitempty"`
	Date         time.Time     `json:"date"`
	Status       PaymentStatus `json:"status"`
	Total        float64       `json:"total"`
	CurrencyCode string        `json:"currency_code"`
	MaskedCardNo string        `json:"masked_card_no,omitempty"`
	AuthCode     string        `json:"auth_code,omitempty"`

	GatewayStatusCode int64    `json:"gateway_status_code,omitempty"`
	Message           string   `json:"message,omitempty"`
	Errors            []string `json:"errors,omitempty"`
}
