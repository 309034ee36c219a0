package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	"github.com/pasinduJDJ/lonex-investments/internal/usecase/payment"
)

type PaymentHandler struct{ uc *payment.Usecase }

func NewPaymentHandler(uc *payment.Usecase) *PaymentHandler { return &PaymentHandler{uc: uc} }

type recordPaymentReq struct {
	LoanNumber string  `json:"loan_number" validate:"required,loannumber"`
	PaidAmount float64 `json:"paid_amount" validate:"required,gt=0,dec2"`
	PaidDate   string  `json:"paid_date" validate:"required"`
	Remark     string  `json:"remark"`
}

func (h *PaymentHandler) Record(c echo.Context) error {
	var req recordPaymentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	paidDate, err := parseDate(req.PaidDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "paid_date must be YYYY-MM-DD"})
	}

	res, err := h.uc.Record(c.Request().Context(), payment.RecordInput{
		LoanNumber: req.LoanNumber,
		PaidAmount: req.PaidAmount,
		PaidDate:   paidDate,
		Remark:     req.Remark,
	})
	if err != nil {
		// payment and loan update are committed; only the capital credit
		// failed. Not a silent success and not a rollback.
		if fault.IsPartialFailure(err) {
			return c.JSON(http.StatusCreated, map[string]any{
				"result":  res,
				"warning": err.Error(),
			})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, res)
}

func (h *PaymentHandler) ListForLoan(c echo.Context) error {
	out, err := h.uc.ListForLoan(c.Request().Context(), c.Param("loan_number"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
