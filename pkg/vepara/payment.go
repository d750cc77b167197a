package vepara

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"
)

const paySmart2DPath = "/api/paySmart2D"

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 4 << 20

var errResponseTooLarge = errors.New("response body exceeds 4 MiB")

// PaymentService groups the payment endpoints. Obtain it from Client.Payment.
type PaymentService struct {
	options *Options
}

func newPaymentService(options *Options) *PaymentService {
	return &PaymentService{options: options}
}

// Initiate2DPayment submits card details directly (no 3-D Secure redirect) and returns the
// classified gateway response. It makes exactly one HTTP call and never retries.
//
// Gateway-side failures (bad hash, rejected merchant key) come back as an Outcome with a
// nil error. The error is non-nil only for ErrTransport and ErrDecode.
func (s *PaymentService) Initiate2DPayment(ctx context.Context, req Payment2DRequest) (Outcome, error) {
	logger := s.options.logger.With().Str("invoice_id", req.InvoiceID).Logger()
	url := strings.TrimRight(s.options.apiBase, "/") + paySmart2DPath
	startTime := time.Now()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, transportError("marshal request", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, transportError("create request", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	logger.Debug().Str("url", url).Int("payload_len", len(payload)).Msg("sending 2D payment")

	resp, err := s.options.httpClient.Do(httpReq)
	if err != nil {
		logger.Warn().Err(err).Msg("2D payment request failed")
		return nil, transportError("send request", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		logger.Warn().Err(err).Int("status", resp.StatusCode).Msg("reading 2D payment response failed")
		return nil, transportError("read response body", err)
	}
	if len(body) > maxResponseBytes {
		logger.Warn().Int("status", resp.StatusCode).Msg("2D payment response too large")
		return nil, &DecodeError{StatusCode: resp.StatusCode, Err: errResponseTooLarge}
	}

	outcome, err := Classify(body)
	if err != nil {
		var decodeErr *DecodeError
		if errors.As(err, &decodeErr) {
			decodeErr.StatusCode = resp.StatusCode
		}
		logger.Warn().Err(err).Int("status", resp.StatusCode).Msg("2D payment response not recognised")
		return nil, err
	}

	logger.Debug().
		Int("status", resp.StatusCode).
		Str("outcome", string(outcome.Kind())).
		Dur("elapsed", time.Since(startTime)).
		Msg("2D payment response classified")
	return outcome, nil
}
