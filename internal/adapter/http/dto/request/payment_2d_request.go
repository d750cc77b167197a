package request

import "vepara_gateway/pkg/vepara"

type Payment2DItem struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Payment2DCreateRequest is the payload for the "initiate 2D payment" route.
//
// merchant_key is optional: the service sends its configured key when it is empty.
// Range checks on expiry and amounts are left to the gateway, so a zero total or a
// negative item line binds and is forwarded as is.

type Payment2DCreateRequest struct {
	CCHolderName       string          `json:"cc_holder_name" binding:"required"`
	CCNo               string          `json:"cc_no" binding:"required"`
	ExpiryYear         int             `json:"expiry_year" binding:"required"`
	ExpiryMonth        int             `json:"expiry_month" binding:"required"`
	CVV                *int            `json:"cvv"`
	CurrencyCode       string          `json:"currency_code" binding:"required"`
	InstallmentsNumber int             `json:"installments_number"`
	InvoiceID          string          `json:"invoice_id" binding:"required"`
	InvoiceDescription string          `json:"invoice_description"`
	Name               string          `json:"name"`
	Surname            string          `json:"surname"`
	Total              float64         `json:"total"`
	MerchantKey        string          `json:"merchant_key"`
	Items              []Payment2DItem `json:"items" binding:"dive"`
	HashKey            string          `json:"hash_key" binding:"required"`
	VPOSType           *string         `json:"vpos_type"`
	IdentityNumber     *string         `json:"identity_number"`
}

func (r Payment2DCreateRequest) ToSDK() vepara.Payment2DRequest {
	items := make([]vepara.Item, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, vepara.Item{
			Name:        it.Name,
			Quantity:    it.Quantity,
			Price:       it.Price,
			Description: it.Description,
		})
	}

	return vepara.Payment2DRequest{
		CCHolderName:       r.CCHolderName,
		CCNo:               r.CCNo,
		ExpiryYear:         r.ExpiryYear,
		ExpiryMonth:        r.ExpiryMonth,
		CVV:                r.CVV,
		CurrencyCode:       r.CurrencyCode,
		InstallmentsNumber: r.InstallmentsNumber,
		InvoiceID:          r.InvoiceID,
		InvoiceDescription: r.InvoiceDescription,
		Name:               r.Name,
		Surname:            r.Surname,
		Total:              r.Total,
		MerchantKey:        r.MerchantKey,
		Items:              items,
		HashKey:            r.HashKey,
		VPOSType:           r.VPOSType,
		IdentityNumber:     r.IdentityNumber,
	}
}
