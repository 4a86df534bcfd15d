package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strings"
	response "wardrobe_pricing/internal/adapter/http/dto/response"
	"wardrobe_pricing/internal/usecase"
	"wardrobe_pricing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// PaymentHandler charges confirmed orders through Mercado Pago.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePayment godoc
// @Summary      Pay an order
// @Description  Charges the order's frozen final total. The body is the Mercado Pago payment request, optionally wrapped in {"mp_payload": ...}.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Order id"
// @Param        payload  body      request.PaymentCreateRequest  false "Mercado Pago payload"
// @Success      200      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	orderID := c.Param("id")
	log.Info().Str("order_id", orderID).Msg("[payment][handler] create start")
	mockMode := isPaymentGatewayMockEnabled()
	mpPayload, err := readMPPayload(c)
	if err != nil {
		if mockMode {
			log.Warn().Err(err).Str("order_id", orderID).Msg("[payment][handler] payload invalid in mock mode; fallback to empty payload")
			mpPayload = json.RawMessage("{}")
		} else {
			log.Warn().Err(err).Str("order_id", orderID).Msg("[payment][handler] invalid payload")
			appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	created, err := h.usecase.CreateForOrder(c.Request.Context(), orderID, mpPayload)
	if err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("[payment][handler] create failed")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info().
		Str("order_id", orderID).
		Str("payment_id", created.ID).
		Str("status", string(created.Status)).
		Msg("[payment][handler] create success")

	c.JSON(http.StatusOK, response.FromPayment(created))
}

// ListPayments godoc
// @Summary      List an order's payments
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {array}   response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Router       /orders/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	orderID := c.Param("id")

	payments, err := h.usecase.ListByOrderID(c.Request.Context(), orderID)
	if err != nil {
		log.Warn().Err(err).Str("order_id", orderID).Msg("[payment][handler] list failed")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPayment godoc
// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment id"
// @Success      200  {object}  response.PaymentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id := c.Param("id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("payment_id", id).Msg("[payment][handler] get failed")
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(p))
}

func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidPaymentID), errors.Is(err, usecase.ErrInvalidMPPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotConfirmed):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CONFIRMED", "Order not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func isPaymentGatewayMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("PAYMENT_GATEWAY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	v = strings.ToLower(strings.TrimSpace(os.Getenv("MERCADOPAGO_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}

	return false
}
