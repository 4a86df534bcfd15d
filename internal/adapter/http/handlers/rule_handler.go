package handlers

import (
	"errors"
	"net/http"
	request "wardrobe_pricing/internal/adapter/http/dto/request"
	response "wardrobe_pricing/internal/adapter/http/dto/response"
	"wardrobe_pricing/internal/domain/rules"
	"wardrobe_pricing/internal/usecase"
	"wardrobe_pricing/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidRulePayload = pkg.NewDomainErrorSimple("INVALID_RULE_INPUT", "Invalid rule payload", http.StatusBadRequest)
)

// RuleHandler administers pricing rules.

type RuleHandler struct {
	usecase usecase.IRuleUseCase
}

func NewRuleHandler(uc usecase.IRuleUseCase) *RuleHandler {
	return &RuleHandler{usecase: uc}
}

// CreateRule godoc
// @Summary      Create a pricing rule
// @Tags         rules
// @Accept       json
// @Produce      json
// @Param        payload  body      request.RuleRequest  true  "Rule"
// @Success      201      {object}  response.RuleResponse
// @Failure      400      {object}  pkg.HTTPError
// @Router       /rules [post]
func (h *RuleHandler) CreateRule(c *gin.Context) {
	var payload request.RuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.Create(c.Request.Context(), payload.ToRule())
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromRule(rule))
}

// UpdateRule godoc
// @Summary      Replace a pricing rule
// @Tags         rules
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Rule id"
// @Param        payload  body      request.RuleRequest  true  "Rule"
// @Success      200      {object}  response.RuleResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      404      {object}  pkg.HTTPError
// @Router       /rules/{id} [put]
func (h *RuleHandler) UpdateRule(c *gin.Context) {
	var payload request.RuleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRulePayload.HTTPStatus, errInvalidRulePayload.ToHTTPError())
		return
	}

	rule, err := h.usecase.Update(c.Request.Context(), c.Param("id"), payload.ToRule())
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRule(rule))
}

// GetRule godoc
// @Summary      Get a pricing rule
// @Tags         rules
// @Produce      json
// @Param        id   path      string  true  "Rule id"
// @Success      200  {object}  response.RuleResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /rules/{id} [get]
func (h *RuleHandler) GetRule(c *gin.Context) {
	rule, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRule(rule))
}

// ListRules godoc
// @Summary      List pricing rules
// @Tags         rules
// @Produce      json
// @Success      200  {array}  response.RuleResponse
// @Router       /rules [get]
func (h *RuleHandler) ListRules(c *gin.Context) {
	list, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapRuleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRules(list))
}

func mapRuleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRuleID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, rules.ErrInvalidFormula):
		return pkg.NewDomainError("INVALID_QUANTITY_FORMULA", "Invalid quantity formula", err, http.StatusBadRequest)
	case errors.Is(err, rules.ErrUnknownField), errors.Is(err, rules.ErrUnknownOperator), errors.Is(err, rules.ErrUnknownAction), errors.Is(err, rules.ErrInvalidRule):
		return pkg.NewDomainError("INVALID_RULE_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRuleNotFound):
		return pkg.NewDomainErrorSimple("RULE_NOT_FOUND", "Rule not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
