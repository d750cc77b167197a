package vepara

// OutcomeKind names the shape a paySmart2D response was classified as.
type OutcomeKind string

const (
	OutcomeSuccess         OutcomeKind = "success"
	OutcomeInvalidHash     OutcomeKind = "invalid_hash"
	OutcomeValidationError OutcomeKind = "validation_error"
)

// Outcome is one of *Success, *InvalidHash or *ValidationError.
type Outcome interface {
	Kind() OutcomeKind
	isOutcome()
}

type SuccessData struct {
	OrderNo                      string  `json:"order_no"`
	OrderID                      string  `json:"order_id"`
	InvoiceID                    string  `json:"invoice_id"`
	CreditCardNo                 string  `json:"credit_card_no"`
	TransactionType              string  `json:"transaction_type"`
	PaymentStatus                int64   `json:"payment_status"`
	PaymentMethod                int64   `json:"payment_method"`
	ErrorCode                    int64   `json:"error_code"`
	Error                        string  `json:"error"`
	AuthCode                     int64   `json:"auth_code"`
	MerchantCommission           float64 `json:"merchant_commission"`
	UserCommission               float64 `json:"user_commission"`
	MerchantCommissionPercentage float64 `json:"merchant_commission_percentage"`
	MerchantCommissionFixed      float64 `json:"merchant_commission_fixed"`
	PaymentReasonCode            string  `json:"payment_reason_code"`
	PaymentReasonCodeDetail      string  `json:"payment_reason_code_detail"`
	HashKey                      string  `json:"hash_key"`
	OriginalBankErrorCode        string  `json:"original_bank_error_code"`
	OriginalBankErrorDescription string  `json:"original_bank_error_description"`
}

// Success is a processed payment. The bank may still have declined it, see Approved.
type Success struct {
	StatusCode        int64       `json:"status_code"`
	StatusDescription string      `json:"status_description"`
	Data              SuccessData `json:"data"`
}

func (*Success) Kind() OutcomeKind { return OutcomeSuccess }
func (*Success) isOutcome()        {}

// Approved reports payment_status == 1.
func (s *Success) Approved() bool {
	return s.Data.PaymentStatus == 1
}

type InvalidHashData struct {
	InvoiceID       string `json:"invoice_id"`
	OrderNo         string `json:"order_no"`
	OrderID         string `json:"order_id"`
	CreditCardNo    string `json:"credit_card_no"`
	TransactionType string `json:"transaction_type"`
	PaymentStatus   int64  `json:"payment_status"`
	PaymentMethod   int64  `json:"payment_method"`
	ErrorCode       int64  `json:"error_code"`
	Error           string `json:"error"`
	AuthCode        string `json:"auth_code"`
	HashKey         string `json:"hash_key"`
}

type InvalidHashDetail struct {
	StatusCode        int64           `json:"status_code"`
	StatusDescription string          `json:"status_description"`
	Data              InvalidHashData `json:"data"`
}

// InvalidHash is returned when the gateway rejects the request's hash_key.
type InvalidHash struct {
	Data    InvalidHashDetail `json:"data"`
	Message string            `json:"message"`
}

func (*InvalidHash) Kind() OutcomeKind { return OutcomeInvalidHash }
func (*InvalidHash) isOutcome()        {}

type ValidationErrors struct {
	MerchantKey []string `json:"merchant_key"`
}

// ValidationError reports field errors found before any payment attempt.
type ValidationError struct {
	Message string           `json:"message"`
	Errors  ValidationErrors `json:"errors"`
}

func (*ValidationError) Kind() OutcomeKind { return OutcomeValidationError }
func (*ValidationError) isOutcome()        {}
