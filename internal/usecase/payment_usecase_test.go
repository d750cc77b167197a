package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"vepara_gateway/internal/domain/entities"
	"vepara_gateway/internal/usecase/interfaces"
	mock_interfaces "vepara_gateway/internal/usecase/interfaces/mocks"
	"vepara_gateway/pkg/vepara"

	"go.uber.org/mock/gomock"
)

func sampleRequest() vepara.Payment2DRequest {
	return vepara.Payment2DRequest{
		CCHolderName:       "John Doe",
		CCNo:               "4111111111111111",
		ExpiryYear:         2030,
		ExpiryMonth:        12,
		CVV:                vepara.Int(123),
		CurrencyCode:       "TRY",
		InstallmentsNumber: 1,
		InvoiceID:          "INV-1",
		InvoiceDescription: "Test invoice",
		Name:               "John",
		Surname:            "Doe",
		Total:              100.5,
		Items:              []vepara.Item{{Name: "Test Item", Quantity: 2, Price: 50.25}},
		HashKey:            "abc",
	}
}

func successOutcome(paymentStatus int64) *vepara.Success {
	return &vepara.Success{
		StatusCode:        100,
		StatusDescription: "approved",
		Data: vepara.SuccessData{
			OrderNo:       "123",
			OrderID:       "456",
			InvoiceID:     "INV-1",
			CreditCardNo:  "411111******1111",
			PaymentStatus: paymentStatus,
			AuthCode:      998877,
			HashKey:       "abc",
		},
	}
}

func TestPaymentUseCase_Initiate2D_Validations(t *testing.T) {
	t.Run("empty invoice id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		req := sampleRequest()
		req.InvoiceID = "  "
		_, err := uc.Initiate2D(context.Background(), req)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, "merchant-key")

		_, err := uc.Initiate2D(context.Background(), sampleRequest())
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})
}

func TestPaymentUseCase_Initiate2D_MerchantKey(t *testing.T) {
	t.Run("filled from config when empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, " merchant-key ")

		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req vepara.Payment2DRequest) (vepara.Outcome, error) {
				if req.MerchantKey != "merchant-key" {
					t.Fatalf("expected configured merchant key, got %q", req.MerchantKey)
				}
				return successOutcome(1), nil
			})

		if _, err := uc.Initiate2D(context.Background(), sampleRequest()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("caller value kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		req := sampleRequest()
		req.MerchantKey = "caller-key"
		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req vepara.Payment2DRequest) (vepara.Outcome, error) {
				if req.MerchantKey != "caller-key" {
					t.Fatalf("expected caller merchant key, got %q", req.MerchantKey)
				}
				return successOutcome(1), nil
			})

		if _, err := uc.Initiate2D(context.Background(), req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Initiate2D_Outcomes(t *testing.T) {
	t.Run("approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).Return(successOutcome(1), nil)

		p, err := uc.Initiate2D(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected approved, got %s", p.Status)
		}
		if p.ID == "" || p.OrderNo != "123" || p.OrderID != "456" || p.InvoiceID != "INV-1" {
			t.Fatalf("unexpected ids: %+v", p)
		}
		if p.AuthCode != "998877" || p.MaskedCardNo != "411111******1111" || p.GatewayStatusCode != 100 {
			t.Fatalf("unexpected gateway fields: %+v", p)
		}
		if p.Total != 100.5 || p.CurrencyCode != "TRY" {
			t.Fatalf("unexpected amount: %+v", p)
		}
	})

	t.Run("declined", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		out := successOutcome(0)
		out.Data.Error = "Insufficient funds"
		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).Return(out, nil)

		p, err := uc.Initiate2D(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusDeclined {
			t.Fatalf("expected declined, got %s", p.Status)
		}
		if len(p.Errors) != 1 || p.Errors[0] != "Insufficient funds" {
			t.Fatalf("unexpected errors: %v", p.Errors)
		}
	})

	t.Run("invalid hash", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		out := &vepara.InvalidHash{
			Message: "Invalid hash key",
			Data: vepara.InvalidHashDetail{
				StatusCode: 69,
				Data:       vepara.InvalidHashData{InvoiceID: "INV-1", OrderNo: "123", Error: "Invalid hash key"},
			},
		}
		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).Return(out, nil)

		p, err := uc.Initiate2D(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusInvalidHash || p.Message != "Invalid hash key" || p.GatewayStatusCode != 69 {
			t.Fatalf("unexpected payment: %+v", p)
		}
	})

	t.Run("rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		out := &vepara.ValidationError{
			Message: "Invalid request",
			Errors:  vepara.ValidationErrors{MerchantKey: []string{"The merchant key field is required."}},
		}
		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).Return(out, nil)

		p, err := uc.Initiate2D(context.Background(), sampleRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.Status != entities.PaymentStatusRejected {
			t.Fatalf("expected rejected, got %s", p.Status)
		}
		if len(p.Errors) != 1 || p.Errors[0] != "The merchant key field is required." {
			t.Fatalf("unexpected errors: %v", p.Errors)
		}
	})

	t.Run("nil outcome", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).Return(nil, nil)

		_, err := uc.Initiate2D(context.Background(), sampleRequest())
		if !errors.Is(err, ErrPaymentGatewayBadResponse) {
			t.Fatalf("expected ErrPaymentGatewayBadResponse, got %v", err)
		}
	})
}

func TestPaymentUseCase_Initiate2D_GatewayErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "decode", err: &vepara.DecodeError{StatusCode: 500, Body: []byte("oops"), Err: errors.New("not json")}, want: ErrPaymentGatewayBadResponse},
		{name: "transport", err: fmt.Errorf("%w: send request: %w", vepara.ErrTransport, errors.New("connection refused")), want: ErrPaymentGatewayUnavailable},
		{name: "circuit open", err: fmt.Errorf("%w: circuit breaker is open", interfaces.ErrPaymentGatewayCircuitOpen), want: ErrPaymentGatewayUnavailable},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewPaymentUseCase(gateway, "merchant-key")

			gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			_, err := uc.Initiate2D(context.Background(), sampleRequest())
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if !errors.Is(err, tc.err) {
				t.Fatalf("expected original error to stay wrapped, got %v", err)
			}
		})
	}

	t.Run("unknown error passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentUseCase(gateway, "merchant-key")

		boom := errors.New("boom")
		gateway.EXPECT().Initiate2DPayment(gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := uc.Initiate2D(context.Background(), sampleRequest())
		if err != boom {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}
