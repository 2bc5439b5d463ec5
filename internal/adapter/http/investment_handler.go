package http

import (
	"net/http"

	investmentUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/investment"

	"github.com/labstack/echo/v4"
)

type InvestmentHandler struct{ uc *investmentUC.Usecase }

func NewInvestmentHandler(uc *investmentUC.Usecase) *InvestmentHandler {
	return &InvestmentHandler{uc: uc}
}

type investReq struct {
	InvestorID string  `json:"investor_id" validate:"required,hex32"`
	Amount     float64 `json:"amount"      validate:"required,gt=0,dec2"`
}

func (h *InvestmentHandler) Invest(c echo.Context) error {
	bundleID := c.Param("bundle_id")
	if bundleID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing bundle_id path param"})
	}
	var req investReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Invest(c.Request().Context(), investmentUC.InvestInput{
		InvestorID: req.InvestorID,
		BundleID:   bundleID,
		Amount:     req.Amount,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

// FundBundle is the explicit admin funding action.
func (h *InvestmentHandler) FundBundle(c echo.Context) error {
	dto, err := h.uc.FundBundle(c.Request().Context(), c.Param("bundle_id"))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *InvestmentHandler) ListInvestableBundles(c echo.Context) error {
	dtos, err := h.uc.ListInvestableBundles(c.Request().Context())
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *InvestmentHandler) ListInvestorPositions(c echo.Context) error {
	dtos, err := h.uc.ListInvestorPositions(c.Request().Context(), c.Param("investor_id"))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dtos)
}
