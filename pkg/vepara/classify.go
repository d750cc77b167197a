package vepara

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// paySmart2D responses carry no type tag. Each outcome is recognised by decoding the body
// into a schema whose fields are all pointers and then requiring every one of them, so a
// missing field and a wrongly typed field both reject the schema.
//
// Schemas are tried in order and the first match wins. A new schema must not accept any
// document an existing one accepts; classify_test.go checks this over the sample corpus.

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return v
}

type variant struct {
	kind   OutcomeKind
	decode func(body []byte) (Outcome, error)
}

var variants = []variant{
	{kind: OutcomeSuccess, decode: decodeSuccess},
	{kind: OutcomeInvalidHash, decode: decodeInvalidHash},
	{kind: OutcomeValidationError, decode: decodeValidationError},
}

var (
	utf8BOM    = []byte("\ufeff")
	errNotJSON = errors.New("body is not valid json")
)

// Classify maps a raw paySmart2D response body onto exactly one Outcome. It fails with a
// *DecodeError when the body is not JSON or matches none of the known shapes.
func Classify(body []byte) (Outcome, error) {
	body = bytes.TrimPrefix(body, utf8BOM)
	if !json.Valid(body) {
		return nil, &DecodeError{Body: body, Err: errNotJSON}
	}

	attempts := make([]error, 0, len(variants))
	for _, v := range variants {
		outcome, err := v.decode(body)
		if err == nil {
			return outcome, nil
		}
		attempts = append(attempts, fmt.Errorf("not %s: %w", v.kind, err))
	}
	return nil, &DecodeError{Body: body, Err: errors.Join(attempts...)}
}

func decodeStrict[W any](body []byte) (*W, error) {
	exact, err := exactKeys(body, reflect.TypeFor[W]())
	if err != nil {
		return nil, err
	}
	w := new(W)
	if err := json.Unmarshal(exact, w); err != nil {
		return nil, err
	}
	if err := validate.Struct(w); err != nil {
		return nil, err
	}
	return w, nil
}

// exactKeys keeps only the object keys that spell a field of t exactly, at every nested
// struct level. encoding/json folds key case, the gateway does not.
func exactKeys(raw json.RawMessage, t reflect.Type) (json.RawMessage, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return raw, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil || obj == nil {
		// Not an object: leave it for the typed decode to reject.
		return raw, nil
	}

	kept := make(map[string]json.RawMessage, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		name := jsonName(f)
		if name == "" {
			continue
		}
		v, ok := obj[name]
		if !ok {
			continue
		}
		nested, err := exactKeys(v, f.Type)
		if err != nil {
			return nil, err
		}
		kept[name] = nested
	}
	return json.Marshal(kept)
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}

func val[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

type successDataSchema struct {
	OrderNo                      *string  `json:"order_no" validate:"required"`
	OrderID                      *string  `json:"order_id" validate:"required"`
	InvoiceID                    *string  `json:"invoice_id" validate:"required"`
	CreditCardNo                 *string  `json:"credit_card_no" validate:"required"`
	TransactionType              *string  `json:"transaction_type" validate:"required"`
	PaymentStatus                *int64   `json:"payment_status" validate:"required"`
	PaymentMethod                *int64   `json:"payment_method" validate:"required"`
	ErrorCode                    *int64   `json:"error_code" validate:"required"`
	Error                        *string  `json:"error" validate:"required"`
	AuthCode                     *int64   `json:"auth_code" validate:"required"`
	MerchantCommission           *float64 `json:"merchant_commission" validate:"required"`
	UserCommission               *float64 `json:"user_commission" validate:"required"`
	MerchantCommissionPercentage *float64 `json:"merchant_commission_percentage" validate:"required"`
	MerchantCommissionFixed      *float64 `json:"merchant_commission_fixed" validate:"required"`
	PaymentReasonCode            *string  `json:"payment_reason_code" validate:"required"`
	PaymentReasonCodeDetail      *string  `json:"payment_reason_code_detail" validate:"required"`
	HashKey                      *string  `json:"hash_key" validate:"required"`
	OriginalBankErrorCode        *string  `json:"original_bank_error_code" validate:"required"`
	OriginalBankErrorDescription *string  `json:"original_bank_error_description" validate:"required"`
}

type successSchema struct {
	StatusCode        *int64             `json:"status_code" validate:"required"`
	StatusDescription *string            `json:"status_description" validate:"required"`
	Data              *successDataSchema `json:"data" validate:"required"`
}

func decodeSuccess(body []byte) (Outcome, error) {
	s, err := decodeStrict[successSchema](body)
	if err != nil {
		return nil, err
	}
	d := s.Data
	return &Success{
		StatusCode:        val(s.StatusCode),
		StatusDescription: val(s.StatusDescription),
		Data: SuccessData{
			OrderNo:                      val(d.OrderNo),
			OrderID:                      val(d.OrderID),
			InvoiceID:                    val(d.InvoiceID),
			CreditCardNo:                 val(d.CreditCardNo),
			TransactionType:              val(d.TransactionType),
			PaymentStatus:                val(d.PaymentStatus),
			PaymentMethod:                val(d.PaymentMethod),
			ErrorCode:                    val(d.ErrorCode),
			Error:                        val(d.Error),
			AuthCode:                     val(d.AuthCode),
			MerchantCommission:           val(d.MerchantCommission),
			UserCommission:               val(d.UserCommission),
			MerchantCommissionPercentage: val(d.MerchantCommissionPercentage),
			MerchantCommissionFixed:      val(d.MerchantCommissionFixed),
			PaymentReasonCode:            val(d.PaymentReasonCode),
			PaymentReasonCodeDetail:      val(d.PaymentReasonCodeDetail),
			HashKey:                      val(d.HashKey),
			OriginalBankErrorCode:        val(d.OriginalBankErrorCode),
			OriginalBankErrorDescription: val(d.OriginalBankErrorDescription),
		},
	}, nil
}

type invalidHashDataSchema struct {
	InvoiceID       *string `json:"invoice_id" validate:"required"`
	OrderNo         *string `json:"order_no" validate:"required"`
	OrderID         *string `json:"order_id" validate:"required"`
	CreditCardNo    *string `json:"credit_card_no" validate:"required"`
	TransactionType *string `json:"transaction_type" validate:"required"`
	PaymentStatus   *int64  `json:"payment_status" validate:"required"`
	PaymentMethod   *int64  `json:"payment_method" validate:"required"`
	ErrorCode       *int64  `json:"error_code" validate:"required"`
	Error           *string `json:"error" validate:"required"`
	AuthCode        *string `json:"auth_code" validate:"required"`
	HashKey         *string `json:"hash_key" validate:"required"`
}

type invalidHashDetailSchema struct {
	StatusCode        *int64                 `json:"status_code" validate:"required"`
	StatusDescription *string                `json:"status_description" validate:"required"`
	Data              *invalidHashDataSchema `json:"data" validate:"required"`
}

type invalidHashSchema struct {
	Data    *invalidHashDetailSchema `json:"data" validate:"required"`
	Message *string                  `json:"message" validate:"required"`
}

func decodeInvalidHash(body []byte) (Outcome, error) {
	s, err := decodeStrict[invalidHashSchema](body)
	if err != nil {
		return nil, err
	}
	d := s.Data.Data
	return &InvalidHash{
		Message: val(s.Message),
		Data: InvalidHashDetail{
			StatusCode:        val(s.Data.StatusCode),
			StatusDescription: val(s.Data.StatusDescription),
			Data: InvalidHashData{
				InvoiceID:       val(d.InvoiceID),
				OrderNo:         val(d.OrderNo),
				OrderID:         val(d.OrderID),
				CreditCardNo:    val(d.CreditCardNo),
				TransactionType: val(d.TransactionType),
				PaymentStatus:   val(d.PaymentStatus),
				PaymentMethod:   val(d.PaymentMethod),
				ErrorCode:       val(d.ErrorCode),
				Error:           val(d.Error),
				AuthCode:        val(d.AuthCode),
				HashKey:         val(d.HashKey),
			},
		},
	}, nil
}

type validationErrorsSchema struct {
	MerchantKey []string `json:"merchant_key" validate:"required"`
}

type validationErrorSchema struct {
	Message *string                 `json:"message" validate:"required"`
	Errors  *validationErrorsSchema `json:"errors" validate:"required"`
}

func decodeValidationError(body []byte) (Outcome, error) {
	s, err := decodeStrict[validationErrorSchema](body)
	if err != nil {
		return nil, err
	}
	return &ValidationError{
		Message: val(s.Message),
		Errors:  ValidationErrors{MerchantKey: s.Errors.MerchantKey},
	}, nil
}
