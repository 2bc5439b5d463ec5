package http

import (
	"net/http"

	userUC "github.com/xhcarina/HackPrinceton25-Spring-Bundle/internal/usecase/user"

	"github.com/labstack/echo/v4"
)

type UserHandler struct{ uc *userUC.Usecase }

func NewUserHandler(uc *userUC.Usecase) *UserHandler { return &UserHandler{uc: uc} }

type createUserReq struct {
	Email       string   `json:"email"        validate:"required,email"`
	Role        string   `json:"role"         validate:"required,oneof=borrower admin investor"`
	FullName    string   `json:"full_name"    validate:"required"`
	CreditScore *float64 `json:"credit_score" validate:"omitempty,gte=0,lte=850"`
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), userUC.CreateUserInput(req))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		return c.JSON(errStatus(err), ErrorResponse{Error: err.Error()})
	}
	return c.JSON(http.StatusOK, dto)
}
