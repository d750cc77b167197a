package request

import (
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin/binding"
)

func TestPayment2DCreateRequest_ToSDK(t *testing.T) {
	raw := `{"cc_holder_name":"John Doe","cc_no":"4111111111111111","expiry_year":2030,"expiry_month":12,"cvv":123,
"currency_code":"TRY","installments_number":1,"invoice_id":"INV-1","invoice_description":"Test invoice","name":"John",
"surname":"Doe","total":100.5,"items":[{"name":"Test Item","quantity":2,"price":50.25,"description":"d"}],
"hash_key":"abc","vpos_type":"ziraat"}`

	var req Payment2DCreateRequest
	if err := json.Unmarshal([]byte(raw), &req); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	sdk := req.ToSDK()
	if sdk.CCNo != "4111111111111111" || sdk.InvoiceID != "INV-1" || sdk.HashKey != "abc" {
		t.Fatalf("unexpected fields: %+v", sdk)
	}
	if sdk.CVV == nil || *sdk.CVV != 123 {
		t.Fatalf("unexpected cvv: %v", sdk.CVV)
	}
	if sdk.VPOSType == nil || *sdk.VPOSType != "ziraat" {
		t.Fatalf("unexpected vpos_type: %v", sdk.VPOSType)
	}
	if sdk.IdentityNumber != nil {
		t.Fatalf("expected identity_number to stay unset")
	}
	if sdk.MerchantKey != "" {
		t.Fatalf("expected merchant_key to stay empty, got %q", sdk.MerchantKey)
	}
	if len(sdk.Items) != 1 || sdk.Items[0].Name != "Test Item" || sdk.Items[0].Quantity != 2 || sdk.Items[0].Price != 50.25 {
		t.Fatalf("unexpected items: %+v", sdk.Items)
	}
	if sdk.ItemsTotal() != 100.5 {
		t.Fatalf("unexpected items total: %v", sdk.ItemsTotal())
	}
}

func TestPayment2DCreateRequest_ToSDK_NoItems(t *testing.T) {
	sdk := Payment2DCreateRequest{InvoiceID: "INV-1"}.ToSDK()
	if sdk.Items == nil || len(sdk.Items) != 0 {
		t.Fatalf("expected empty, non-nil items, got %#v", sdk.Items)
	}
}

func TestPayment2DCreateRequest_Binding(t *testing.T) {
	valid := func() Payment2DCreateRequest {
		return Payment2DCreateRequest{
			CCHolderName: "John Doe",
			CCNo:         "4111111111111111",
			ExpiryYear:   2030,
			ExpiryMonth:  12,
			CurrencyCode: "TRY",
			InvoiceID:    "INV-1",
			Total:        100.5,
			HashKey:      "abc",
			Items:        []Payment2DItem{{Name: "Test Item", Quantity: 2, Price: 50.25}},
		}
	}

	t.Run("zero total binds", func(t *testing.T) {
		req := valid()
		req.Total = 0
		req.Items = nil
		if err := binding.Validator.ValidateStruct(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("negative item amounts bind", func(t *testing.T) {
		req := valid()
		req.Items = []Payment2DItem{{Name: "Refund line", Quantity: -1, Price: -10}}
		if err := binding.Validator.ValidateStruct(req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("missing invoice id is rejected", func(t *testing.T) {
		req := valid()
		req.InvoiceID = ""
		if err := binding.Validator.ValidateStruct(req); err == nil {
			t.Fatalf("expected a binding error")
		}
	})

	t.Run("item without name is rejected", func(t *testing.T) {
		req := valid()
		req.Items = []Payment2DItem{{Quantity: 1, Price: 1}}
		if err := binding.Validator.ValidateStruct(req); err == nil {
			t.Fatalf("expected a binding error")
		}
	})
}
