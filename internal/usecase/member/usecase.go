// Package member covers registration and lookup of clients: NIC validation,
// the guarantor pairing rule and register number minting.
package member

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/pasinduJDJ/lonex-investments/internal/codes"
	clientDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/client"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	loanDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/loan"
	paymentDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/payment"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/uow"
	"github.com/pasinduJDJ/lonex-investments/pkg/id"

	"gorm.io/gorm"
)

// Sri Lankan NIC: 9 digits + V/X, or 12 digits.
var reNIC = regexp.MustCompile(`^\d{9}[vVxX]$|^\d{12}$`)

var reMobile = regexp.MustCompile(`^\d{10}$`)

type Usecase struct {
	clients  clientDomain.Repository
	loans    loanDomain.Repository
	payments paymentDomain.Repository
	uow      uow.UnitOfWork
}

func NewUsecase(clients clientDomain.Repository, loans loanDomain.Repository, payments paymentDomain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{clients: clients, loans: loans, payments: payments, uow: tx}
}

type Guarantor struct {
	Name    string `json:"name"`
	NIC     string `json:"nic"`
	TP      string `json:"tp"`
	Address string `json:"address"`
}

type RegisterInput struct {
	FirstName     string `json:"first_name"`
	LastName      string `json:"last_name"`
	NICNumber     string `json:"nic_number"`
	MobileNumber  string `json:"mobile_number"`
	HomeNumber    string `json:"home_number"`
	StreetAddress string `json:"street_address"`
	TownOne       string `json:"town_one"`
	TownTwo       string `json:"town_two"`
	Group         string `json:"group"`
	IsMember      bool   `json:"is_member"`

	FirstGuarantor  Guarantor `json:"first_guarantor"`
	SecondGuarantor Guarantor `json:"second_guarantor"`
}

type MemberDTO struct {
	ClientID         string    `json:"client_id"`
	RegisterNumber   int       `json:"register_number"`
	RegisterNumberID string    `json:"register_number_id"` // zero-padded display form
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	NICNumber        string    `json:"nic_number"`
	Group            string    `json:"group,omitempty"`
	TownTwo          string    `json:"town_two,omitempty"`
	IsMember         bool      `json:"is_member"`
	CreatedAt        time.Time `json:"created_at"`
}

type ProfileDTO struct {
	Member   MemberDTO               `json:"member"`
	Loans    []loanDomain.Loan       `json:"loans"`
	Payments []paymentDomain.Payment `json:"payments"`
}

// Register validates the input, checks NIC uniqueness and creates the
// client with the next register number, all inside one transaction so two
// concurrent registrations cannot commit the same sequence value.
func (u *Usecase) Register(ctx context.Context, in RegisterInput) (*MemberDTO, error) {
	if err := validateRegister(&in); err != nil {
		return nil, err
	}

	// Uniqueness pre-check gives a friendly error; the unique index is the
	// real guarantee.
	_, err := u.clients.GetByNIC(ctx, in.NICNumber)
	switch {
	case err == nil:
		return nil, fault.NewConflict("a client with NIC " + in.NICNumber + " is already registered")
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fault.WrapDataAccess("client NIC lookup", err)
	}

	c := &clientDomain.Client{
		ClientID:      id.NewID32(),
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		NICNumber:     in.NICNumber,
		MobileNumber:  optional(in.MobileNumber),
		HomeNumber:    optional(in.HomeNumber),
		StreetAddress: optional(in.StreetAddress),
		TownOne:       optional(in.TownOne),
		TownTwo:       optional(in.TownTwo),
		Group:         optional(in.Group),
		IsMember:      in.IsMember,

		FirstGuarantorName:     optional(in.FirstGuarantor.Name),
		FirstGuarantorNIC:      optional(in.FirstGuarantor.NIC),
		FirstGuarantorTP:       optional(in.FirstGuarantor.TP),
		FirstGuarantorAddress:  optional(in.FirstGuarantor.Address),
		SecondGuarantorName:    optional(in.SecondGuarantor.Name),
		SecondGuarantorNIC:     optional(in.SecondGuarantor.NIC),
		SecondGuarantorTP:      optional(in.SecondGuarantor.TP),
		SecondGuarantorAddress: optional(in.SecondGuarantor.Address),
	}

	err = u.uow.WithinTx(ctx, func(r uow.Repos) error {
		max, err := r.Clients.MaxRegisterNumber(ctx)
		if err != nil {
			return fault.WrapDataAccess("register number lookup", err)
		}
		c.RegisterNumber = max + 1
		return r.Clients.Create(ctx, c)
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fault.NewConflict("client already registered, retry")
		}
		if fault.IsValidation(err) || fault.IsConflict(err) {
			return nil, err
		}
		var da *fault.DataAccess
		if errors.As(err, &da) {
			return nil, err
		}
		return nil, fault.WrapDataAccess("client insert", err)
	}

	dto := toDTO(c)
	return &dto, nil
}

// NextRegisterNumber previews the register number the next registration
// would receive. Informational only; the committed value is assigned
// inside the registration transaction.
func (u *Usecase) NextRegisterNumber(ctx context.Context) (int, error) {
	max, err := u.clients.MaxRegisterNumber(ctx)
	if err != nil {
		return 0, fault.WrapDataAccess("register number lookup", err)
	}
	return max + 1, nil
}

func (u *Usecase) GetByNIC(ctx context.Context, nic string) (*MemberDTO, error) {
	c, err := u.clients.GetByNIC(ctx, nic)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("client", nic)
		}
		return nil, fault.WrapDataAccess("client NIC lookup", err)
	}
	dto := toDTO(c)
	return &dto, nil
}

// List returns all clients, or only those holding membership when
// membersOnly is set.
func (u *Usecase) List(ctx context.Context, membersOnly bool) ([]MemberDTO, error) {
	var (
		cs  []clientDomain.Client
		err error
	)
	if membersOnly {
		cs, err = u.clients.ListMembers(ctx)
	} else {
		cs, err = u.clients.List(ctx)
	}
	if err != nil {
		return nil, fault.WrapDataAccess("client list", err)
	}
	out := make([]MemberDTO, 0, len(cs))
	for i := range cs {
		out = append(out, toDTO(&cs[i]))
	}
	return out, nil
}

// Profile returns the client together with all their loans and every
// payment recorded against those loans.
func (u *Usecase) Profile(ctx context.Context, nic string) (*ProfileDTO, error) {
	c, err := u.clients.GetByNIC(ctx, nic)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NewNotFound("client", nic)
		}
		return nil, fault.WrapDataAccess("client NIC lookup", err)
	}
	loans, err := u.loans.ListByClient(ctx, c.ID)
	if err != nil {
		return nil, fault.WrapDataAccess("client loans", err)
	}
	var pays []paymentDomain.Payment
	for i := range loans {
		ps, err := u.payments.ListByLoan(ctx, loans[i].ID)
		if err != nil {
			return nil, fault.WrapDataAccess("client payments", err)
		}
		pays = append(pays, ps...)
	}
	return &ProfileDTO{Member: toDTO(c), Loans: loans, Payments: pays}, nil
}

func validateRegister(in *RegisterInput) error {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.NICNumber = strings.TrimSpace(in.NICNumber)
	in.MobileNumber = strings.TrimSpace(in.MobileNumber)
	in.HomeNumber = strings.TrimSpace(in.HomeNumber)

	if in.FirstName == "" {
		return fault.NewValidation("first_name", "is required")
	}
	if in.LastName == "" {
		return fault.NewValidation("last_name", "is required")
	}
	if !reNIC.MatchString(in.NICNumber) {
		return fault.NewValidation("nic_number", "must be 9 digits + V/X or 12 digits")
	}
	if in.MobileNumber != "" && !reMobile.MatchString(in.MobileNumber) {
		return fault.NewValidation("mobile_number", "must be 10 digits")
	}
	if in.HomeNumber == "" {
		return fault.NewValidation("home_number", "is required")
	}
	if err := validateGuarantor("first_guarantor", in.FirstGuarantor); err != nil {
		return err
	}
	return validateGuarantor("second_guarantor", in.SecondGuarantor)
}

// Guarantors are optional, but name and NIC come together or not at all.
func validateGuarantor(field string, g Guarantor) error {
	name := strings.TrimSpace(g.Name)
	nic := strings.TrimSpace(g.NIC)
	if name != "" && nic == "" {
		return fault.NewValidation(field, "NIC is required when name is provided")
	}
	if nic != "" && name == "" {
		return fault.NewValidation(field, "name is required when NIC is provided")
	}
	if nic != "" && !reNIC.MatchString(nic) {
		return fault.NewValidation(field, "NIC must be 9 digits + V/X or 12 digits")
	}
	return nil
}

func toDTO(c *clientDomain.Client) MemberDTO {
	dto := MemberDTO{
		ClientID:       c.ClientID,
		RegisterNumber: c.RegisterNumber,
		FirstName:      c.FirstName,
		LastName:       c.LastName,
		NICNumber:      c.NICNumber,
		IsMember:       c.IsMember,
		CreatedAt:      c.CreatedAt,
	}
	dto.RegisterNumberID = codes.FormatRegisterNumber(c.RegisterNumber)
	if c.Group != nil {
		dto.Group = *c.Group
	}
	if c.TownTwo != nil {
		dto.TownTwo = *c.TownTwo
	}
	return dto
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
