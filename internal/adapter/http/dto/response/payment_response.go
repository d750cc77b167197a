package response

import (
	"time"

	"vepara_gateway/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID    string    `json:"payment_id"`
	InvoiceID    string    `json:"invoice_id"`
	OrderNo      string    `json:"order_no,omitempty"`
	OrderID      string    `json:"order_id,omitempty"`
	PaymentDate  time.Time `json:"payment_date"`
	Status       string    `json:"status"`
	Total        float64   `json:"total"`
	CurrencyCode string    `json:"currency_code"`
	MaskedCardNo string    `json:"masked_card_no,omitempty"`
	AuthCode     string    `json:"auth_code,omitempty"`

	GatewayStatusCode int64    `json:"gateway_status_code,omitempty"`
	Message           string   `json:"message,omitempty"`
	Errors            []string `json:"errors,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.ID,
		InvoiceID:         p.InvoiceID,
		OrderNo:           p.OrderNo,
		OrderID:           p.OrderID,
		PaymentDate:       p.Date,
		Status:            string(p.Status),
		Total:             p.Total,
		CurrencyCode:      p.CurrencyCode,
		MaskedCardNo:      p.MaskedCardNo,
		AuthCode:          p.AuthCode,
		GatewayStatusCode: p.GatewayStatusCode,
		Message:           p.Message,
		Errors:            p.Errors,
	}
}
