package http

import (
	"net/http"

	bundleUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/bundle"

	"github.com/labstack/echo/v4"
)

type BundleHandler struct{ uc *bundleUC.Usecase }

func NewBundleHandler(uc *bundleUC.Usecase) *BundleHandler { return &BundleHandler{uc: uc} }

type createBundleReq struct {
	AdminID       string   `json:"admin_id"       validate:"required,hex32"`
	Name          string   `json:"name"           validate:"required"`
	Description   string   `json:"description"`
	LoanIDs       []string `json:"loan_ids"       validate:"required,min=1,dive,hex32"`
	Margin        float64  `json:"margin"         validate:"ratio"`
	MinInvestment float64  `json:"min_investment" validate:"gte=0,dec2"`
}

func (h *BundleHandler) CreateBundle(c echo.Context) error {
	var req createBundleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.CreateBundle(c.Request().Context(), bundleUC.CreateBundleInput(req))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *BundleHandler) GetBundle(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("bundle_id"))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

// ListEligibleLoans exposes the bundling candidate pool. Read-only: nothing
// is reserved until CreateBundle commits.
func (h *BundleHandler) ListEligibleLoans(c echo.Context) error {
	loans, err := h.uc.SelectEligibleLoans(c.Request().Context())
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, loans)
}
