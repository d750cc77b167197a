package vepara

import "encoding/json"

// Item is one line of the invoice sent with a payment.
type Item struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Payment2DRequest is the body of a paySmart2D call. Field names are the gateway's.
//
// Nothing here is validated client side: an out of range month or a total that does not
// match the items is sent as-is and reported back by the gateway.
type Payment2DRequest struct {
	CCHolderName       string  `json:"cc_holder_name"`
	CCNo               string  `json:"cc_no"`
	ExpiryYear         int     `json:"expiry_year"`
	ExpiryMonth        int     `json:"expiry_month"`
	CVV                *int    `json:"cvv,omitempty"`
	CurrencyCode       string  `json:"currency_code"`
	InstallmentsNumber int     `json:"installments_number"`
	InvoiceID          string  `json:"invoice_id"`
	InvoiceDescription string  `json:"invoice_description"`
	Name               string  `json:"name"`
	Surname            string  `json:"surname"`
	Total              float64 `json:"total"`
	MerchantKey        string  `json:"merchant_key"`
	Items              []Item  `json:"items"`
	HashKey            string  `json:"hash_key"`
	VPOSType           *string `json:"vpos_type,omitempty"`
	IdentityNumber     *string `json:"identity_number,omitempty"`
}

// MarshalJSON always emits items as an array.
func (r Payment2DRequest) MarshalJSON() ([]byte, error) {
	type plain Payment2DRequest
	p := plain(r)
	if p.Items == nil {
		p.Items = []Item{}
	}
	return json.Marshal(p)
}

// ItemsTotal sums price*quantity over the items. The gateway, not this package, decides
// whether it has to match Total.
func (r Payment2DRequest) ItemsTotal() float64 {
	var total float64
	for _, it := range r.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}

func Int(v int) *int { return &v }

func String(v string) *string { return &v }
