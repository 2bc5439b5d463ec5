package http

import (
	"net/http"

	loanUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/loan"

	"github.com/labstack/echo/v4"
)

type LoanHandler struct{ uc *loanUC.Usecase }

func NewLoanHandler(uc *loanUC.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	BorrowerID        string  `json:"borrower_id"          validate:"required,hex32"`
	Amount            float64 `json:"amount"               validate:"required,gt=0,dec2"`
	InterestRate      float64 `json:"interest_rate"        validate:"gte=0"`
	TermMonths        int     `json:"term_months"          validate:"required,gt=0"`
	Purpose           string  `json:"purpose"`
	MonthlyIncome     float64 `json:"monthly_income"       validate:"gte=0,dec2"`
	DebtToIncomeRatio float64 `json:"debt_to_income_ratio" validate:"ratio"`
	EmploymentStatus  string  `json:"employment_status"`
}

type approveLoanReq struct {
	CreditScore float64 `json:"credit_score" validate:"gte=0"`
	DefaultRate float64 `json:"default_rate" validate:"ratio"`
}

func (h *LoanHandler) CreateLoan(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), loanUC.CreateLoanInput(req))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) GetLoan(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

// ApproveLoan records the external scoring service's verdict.
func (h *LoanHandler) ApproveLoan(c echo.Context) error {
	loanID := c.Param("loan_id")
	if loanID == "" {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing loan_id path param"})
	}
	var req approveLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Approve(c.Request().Context(), loanUC.ApproveLoanInput{
		LoanID:      loanID,
		CreditScore: req.CreditScore,
		DefaultRate: req.DefaultRate,
	})
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) RejectLoan(c echo.Context) error {
	dto, err := h.uc.Reject(c.Request().Context(), c.Param("loan_id"))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
