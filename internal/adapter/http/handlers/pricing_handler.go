package handlers

import (
	"errors"
	"net/http"
	request "wardrobe_pricing/internal/adapter/http/dto/request"
	response "wardrobe_pricing/internal/adapter/http/dto/response"
	"wardrobe_pricing/internal/domain/cutlist"
	"wardrobe_pricing/internal/usecase"
	"wardrobe_pricing/pkg"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

var (
	errInvalidWardrobePayload = pkg.NewDomainErrorSimple("INVALID_WARDROBE_INPUT", "Invalid wardrobe payload", http.StatusBadRequest)
)

// PricingHandler serves layout previews and server-side quotes.

type PricingHandler struct {
	usecase usecase.IPricingUseCase
}

func NewPricingHandler(uc usecase.IPricingUseCase) *PricingHandler {
	return &PricingHandler{usecase: uc}
}

// Layout godoc
// @Summary      Resolve wardrobe layout
// @Description  Returns the columns and compartments of a wardrobe snapshot.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.WardrobeRequest  true  "Wardrobe snapshot"
// @Success      200      {object}  response.LayoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /layouts [post]
func (h *PricingHandler) Layout(c *gin.Context) {
	var payload request.WardrobeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWardrobePayload.HTTPStatus, errInvalidWardrobePayload.ToHTTPError())
		return
	}

	layout, err := h.usecase.Layout(payload.ToConfig())
	if err != nil {
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromLayout(layout))
}

// Quote godoc
// @Summary      Price a wardrobe
// @Description  Builds the cut list and applies the enabled pricing rules. Internal adjustments are included in the totals but not listed.
// @Tags         pricing
// @Accept       json
// @Produce      json
// @Param        payload  body      request.QuoteRequest  true  "Quote request"
// @Success      200      {object}  response.QuoteResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      422      {object}  pkg.HTTPError
// @Router       /quotes [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWardrobePayload.HTTPStatus, errInvalidWardrobePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.Quote(c.Request.Context(), usecase.QuoteInput{
		Config:       payload.Config.ToConfig(),
		Email:        payload.Email,
		CustomerTags: request.Tags(payload.CustomerTags),
		ShippingCity: payload.ShippingCity,
	})
	if err != nil {
		log.Warn().Err(err).Msg("[pricing][handler] quote failed")
		appErr := mapPricingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func mapPricingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidWardrobeConfig):
		return pkg.NewDomainErrorSimple("INVALID_WARDROBE_INPUT", "Invalid wardrobe payload", http.StatusBadRequest)
	case errors.Is(err, cutlist.ErrMaterialNotFound), errors.Is(err, cutlist.ErrHandleNotFound):
		return pkg.NewDomainErrorSimple("CATALOG_ITEM_NOT_FOUND", "Selected material or handle does not exist", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrPriceCalculationFailed):
		return pkg.NewDomainErrorSimple("PRICE_CALCULATION_FAILED", "Price calculation failed, try again", http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
