package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pasinduJDJ/lonex-investments/internal/usecase/capital"
)

type CapitalHandler struct{ uc *capital.Usecase }

func NewCapitalHandler(uc *capital.Usecase) *CapitalHandler { return &CapitalHandler{uc: uc} }

func (h *CapitalHandler) Balance(c echo.Context) error {
	dto, err := h.uc.Balance(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type adjustReq struct {
	Amount float64 `json:"amount" validate:"required,gt=0,dec2"`
	Remark string  `json:"remark"`
}

func (h *CapitalHandler) Adjust(c echo.Context) error {
	var req adjustReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Adjust(c.Request().Context(), req.Amount, req.Remark)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type expenseReq struct {
	Amount      float64 `json:"amount" validate:"required,gt=0,dec2"`
	Remark      string  `json:"remark"`
	ExpenseDate string  `json:"expense_date" validate:"required"`
}

func (h *CapitalHandler) RecordExpense(c echo.Context) error {
	var req expenseReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	day, err := parseDate(req.ExpenseDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "expense_date must be YYYY-MM-DD"})
	}
	dto, err := h.uc.RecordExpense(c.Request().Context(), capital.ExpenseInput{
		Amount:      req.Amount,
		Remark:      req.Remark,
		ExpenseDate: day,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *CapitalHandler) ListExpenses(c echo.Context) error {
	from, to, err := dateRangeQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}
	out, err := h.uc.ListExpenses(c.Request().Context(), from, to)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CapitalHandler) ListInvestments(c echo.Context) error {
	out, err := h.uc.ListInvestments(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// dateRangeQuery reads start/end query params, defaulting to the current
// month when absent.
func dateRangeQuery(c echo.Context) (time.Time, time.Time, error) {
	now := time.Now().UTC()
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to := now
	var err error
	if s := c.QueryParam("start"); s != "" {
		if from, err = parseDate(s); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	if s := c.QueryParam("end"); s != "" {
		if to, err = parseDate(s); err != nil {
			return time.Time{}, time.Time{}, err
		}
	}
	return from, to, nil
}
