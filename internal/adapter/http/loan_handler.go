package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	"github.com/pasinduJDJ/lonex-investments/internal/usecase/loan"
)

type LoanHandler struct{ uc *loan.Usecase }

func NewLoanHandler(uc *loan.Usecase) *LoanHandler { return &LoanHandler{uc: uc} }

type createLoanReq struct {
	NICNumber       string  `json:"nic_number" validate:"required,nic"`
	LoanType        string  `json:"loan_type" validate:"required,loantype"`
	PrincipalAmount float64 `json:"principal_amount" validate:"required,gt=0,dec2"`
	InterestRate    float64 `json:"interest_rate" validate:"gte=0,lte=100"`
	DocumentCharge  float64 `json:"document_charge" validate:"gte=0,dec2"`
	StartDate       string  `json:"start_date" validate:"required"`
	EndDate         string  `json:"end_date" validate:"required"`
}

func (h *LoanHandler) Create(c echo.Context) error {
	var req createLoanReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start_date must be YYYY-MM-DD"})
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "end_date must be YYYY-MM-DD"})
	}

	dto, err := h.uc.Create(c.Request().Context(), loan.CreateLoanInput{
		NICNumber:       req.NICNumber,
		Type:            loanDomain.Type(req.LoanType),
		PrincipalAmount: req.PrincipalAmount,
		InterestRate:    req.InterestRate,
		DocumentCharge:  req.DocumentCharge,
		StartDate:       start,
		EndDate:         end,
	})
	if err != nil {
		// the loan may be committed even though the capital debit failed;
		// report it as created, with a warning the caller can act on
		if fault.IsPartialFailure(err) {
			return c.JSON(http.StatusCreated, map[string]any{
				"loan":    dto,
				"warning": err.Error(),
			})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *LoanHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *LoanHandler) GetByNumber(c echo.Context) error {
	dto, err := h.uc.GetByNumber(c.Request().Context(), c.Param("loan_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) InstallmentStats(c echo.Context) error {
	st, err := h.uc.InstallmentStats(c.Request().Context(), c.Param("loan_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, st)
}

func (h *LoanHandler) Close(c echo.Context) error {
	dto, err := h.uc.Close(c.Request().Context(), c.Param("loan_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *LoanHandler) DeleteByRegNumber(c echo.Context) error {
	reg, err := strconv.Atoi(c.Param("reg_number"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "reg_number must be an integer"})
	}
	if err := h.uc.DeleteByRegNumber(c.Request().Context(), reg); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
