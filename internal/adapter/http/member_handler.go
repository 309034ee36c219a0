package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pasinduJDJ/lonex-investments/internal/usecase/member"
)

type MemberHandler struct{ uc *member.Usecase }

func NewMemberHandler(uc *member.Usecase) *MemberHandler { return &MemberHandler{uc: uc} }

type guarantorReq struct {
	Name    string `json:"name"`
	NIC     string `json:"nic"`
	TP      string `json:"tp"`
	Address string `json:"address"`
}

type registerMemberReq struct {
	FirstName     string `json:"first_name" validate:"required"`
	LastName      string `json:"last_name" validate:"required"`
	NICNumber     string `json:"nic_number" validate:"required,nic"`
	MobileNumber  string `json:"mobile_number"`
	HomeNumber    string `json:"home_number" validate:"required"`
	StreetAddress string `json:"street_address"`
	TownOne       string `json:"town_one"`
	TownTwo       string `json:"town_two"`
	Group         string `json:"group"`
	IsMember      bool   `json:"is_member"`

	FirstGuarantor  guarantorReq `json:"first_guarantor"`
	SecondGuarantor guarantorReq `json:"second_guarantor"`
}

func (h *MemberHandler) Register(c echo.Context) error {
	var req registerMemberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "validation failed", Details: ToFieldErrors(err)})
	}
	dto, err := h.uc.Register(c.Request().Context(), member.RegisterInput{
		FirstName:       req.FirstName,
		LastName:        req.LastName,
		NICNumber:       req.NICNumber,
		MobileNumber:    req.MobileNumber,
		HomeNumber:      req.HomeNumber,
		StreetAddress:   req.StreetAddress,
		TownOne:         req.TownOne,
		TownTwo:         req.TownTwo,
		Group:           req.Group,
		IsMember:        req.IsMember,
		FirstGuarantor:  member.Guarantor(req.FirstGuarantor),
		SecondGuarantor: member.Guarantor(req.SecondGuarantor),
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *MemberHandler) List(c echo.Context) error {
	membersOnly := c.QueryParam("members") == "true"
	out, err := h.uc.List(c.Request().Context(), membersOnly)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *MemberHandler) GetByNIC(c echo.Context) error {
	dto, err := h.uc.GetByNIC(c.Request().Context(), c.Param("nic"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *MemberHandler) Profile(c echo.Context) error {
	dto, err := h.uc.Profile(c.Request().Context(), c.Param("nic"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
