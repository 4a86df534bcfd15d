package handlers

import (
	"errors"
	"net/http"
	request "wardrobe_pricing/internal/adapter/http/dto/request"
	response "wardrobe_pricing/internal/adapter/http/dto/response"
	"wardrobe_pricing/internal/usecase"
	"wardrobe_pricing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler confirms orders and serves their frozen snapshots.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder godoc
// @Summary      Confirm an order
// @Description  Recomputes the price server-side and freezes configuration, cut list and adjustments.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      request.OrderRequest  true  "Order"
// @Success      201      {object}  response.OrderResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.Confirm(c.Request.Context(), usecase.ConfirmOrderInput{
		Email:        payload.Email,
		ShippingCity: payload.ShippingCity,
		CustomerTags: request.Tags(payload.CustomerTags),
		Config:       payload.Config.ToConfig(),
		ClientTotal:  payload.ClientTotal,
	})
	if err != nil {
		log.Warn().Err(err).Msg("[order][handler] confirm failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder godoc
// @Summary      Get an order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  response.OrderResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders godoc
// @Summary      List a customer's orders
// @Tags         orders
// @Produce      json
// @Param        email  query     string  true  "Customer email"
// @Success      200    {array}   response.OrderResponse
// @Failure      400    {object}  pkg.HTTPError
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.usecase.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ExportCutList godoc
// @Summary      Download the cut list workbook
// @Tags         orders
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        id   path      string  true  "Order id"
// @Success      200  {file}    file
// @Failure      404  {object}  pkg.HTTPError
// @Router       /orders/{id}/cutlist.xlsx [get]
func (h *OrderHandler) ExportCutList(c *gin.Context) {
	id := c.Param("id")
	data, err := h.usecase.ExportCutList(c.Request.Context(), id)
	if err != nil {
		log.Warn().Err(err).Str("order_id", id).Msg("[order][handler] export failed")
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", `attachment; filename="cutlist-`+id+`.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, data)
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID), errors.Is(err, usecase.ErrInvalidEmail):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderNotConfirmed):
		return pkg.NewDomainErrorSimple("ORDER_NOT_CONFIRMED", "Order not confirmed", http.StatusConflict)
	case errors.Is(err, usecase.ErrExporterNotAvailable):
		return pkg.NewDomainErrorSimple("EXPORT_NOT_AVAILABLE", "Cut list export not available", http.StatusServiceUnavailable)
	default:
		return mapPricingError(err)
	}
}
