package handlers

import (
	"errors"
	"net/http"

	"vepara_gateway/internal/adapter/http/dto/request"
	"vepara_gateway/internal/adapter/http/dto/response"
	"vepara_gateway/internal/domain/entities"
	"vepara_gateway/internal/usecase"
	"vepara_gateway/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PaymentHandler handles HTTP requests for card payments.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// Initiate2DPayment godoc
// @Summary      Initiate a 2D card payment
// @Description  Sends the card directly to Vepara (no 3-D Secure) and returns the classified result.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        payment  body      request.Payment2DCreateRequest  true  "2D payment"
// @Success      200      {object}  response.PaymentResponse  "approved or declined"
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  response.PaymentResponse  "invalid_hash or rejected"
// @Failure      502      {object}  pkg.HTTPError
// @Failure      503      {object}  pkg.HTTPError
// @Router       /payments/2d [post]
func (h *PaymentHandler) Initiate2DPayment(c *gin.Context) {
	logger := log.Ctx(c.Request.Context())

	var payload request.Payment2DCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		logger.Warn().Err(err).Msg("[payment][handler] invalid payload")
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.Initiate2D(c.Request.Context(), payload.ToSDK())
	if err != nil {
		logger.Error().Err(err).Str("invoice_id", payload.InvoiceID).Msg("[payment][handler] initiate 2d failed")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	logger.Info().
		Str("invoice_id", payload.InvoiceID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Msg("[payment][handler] initiate 2d done")

	c.JSON(paymentHTTPStatus(created.Status), response.FromPayment(created))
}

func paymentHTTPStatus(status entities.PaymentStatus) int {
	if status.Settled() {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_GATEWAY_NOT_CONFIGURED", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrPaymentGatewayUnavailable):
		return pkg.NewDomainError("PAYMENT_GATEWAY_UNAVAILABLE", "Payment gateway unavailable", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayBadResponse):
		return pkg.NewDomainError("PAYMENT_GATEWAY_BAD_RESPONSE", "Unrecognised payment gateway response", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
