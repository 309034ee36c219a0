package member

import (
	"context"
	"testing"

	clientDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/client"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/fault"
	"github.com/pasinduJDJ/lonex-investments/internal/domain/uow"
	"github.com/pasinduJDJ/lonex-investments/internal/testutil/clientmock"
	"github.com/pasinduJDJ/lonex-investments/internal/testutil/loanmock"
	"github.com/pasinduJDJ/lonex-investments/internal/testutil/paymentmock"
	"github.com/pasinduJDJ/lonex-investments/internal/testutil/uowmock"

	"gorm.io/gorm"
)

func validInput() RegisterInput {
	return RegisterInput{
		FirstName:    "Nimal",
		LastName:     "Perera",
		NICNumber:    "941234567V",
		MobileNumber: "0771234567",
		HomeNumber:   "0412223344",
		TownTwo:      "Deniyaya",
		Group:        "Group 2",
		IsMember:     true,
	}
}

func newUsecase(clients *clientmock.Repo) *Usecase {
	tx := uowmock.Passthrough(uow.Repos{Clients: clients}, nil)
	return NewUsecase(clients, &loanmock.Repo{}, &paymentmock.Repo{}, tx)
}

func TestRegister_FirstMemberGetsNumberOne(t *testing.T) {
	var created *clientDomain.Client
	clients := &clientmock.Repo{
		GetByNICFn: func(ctx context.Context, nic string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, c *clientDomain.Client) error {
			created = c
			return nil
		},
	}

	dto, err := newUsecase(clients).Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if created == nil {
		t.Fatal("Create never reached the repository")
	}
	if dto.RegisterNumber != 1 || dto.RegisterNumberID != "000001" {
		t.Errorf("register number = %d / %q", dto.RegisterNumber, dto.RegisterNumberID)
	}
	if len(dto.ClientID) != 32 {
		t.Errorf("client id = %q", dto.ClientID)
	}
	if created.TownTwo == nil || *created.TownTwo != "Deniyaya" {
		t.Errorf("town = %v", created.TownTwo)
	}
}

func TestRegister_SequenceContinuesFromMax(t *testing.T) {
	clients := &clientmock.Repo{
		GetByNICFn: func(ctx context.Context, nic string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
		MaxRegisterNumberFn: func(ctx context.Context) (int, error) { return 41, nil },
	}

	dto, err := newUsecase(clients).Register(context.Background(), validInput())
	if err != nil {
		t.Fatalf("Register err: %v", err)
	}
	if dto.RegisterNumber != 42 || dto.RegisterNumberID != "000042" {
		t.Errorf("register number = %d / %q", dto.RegisterNumber, dto.RegisterNumberID)
	}
}

func TestRegister_DuplicateNICIsConflict(t *testing.T) {
	clients := &clientmock.Repo{
		GetByNICFn: func(ctx context.Context, nic string) (*clientDomain.Client, error) {
			return &clientDomain.Client{ID: 1, NICNumber: nic}, nil
		},
		CreateFn: func(ctx context.Context, c *clientDomain.Client) error {
			t.Fatalf("Create must not be called")
			return nil
		},
	}

	_, err := newUsecase(clients).Register(context.Background(), validInput())
	if !fault.IsConflict(err) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestRegister_UniqueIndexRaceIsConflict(t *testing.T) {
	clients := &clientmock.Repo{
		GetByNICFn: func(ctx context.Context, nic string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
		CreateFn: func(ctx context.Context, c *clientDomain.Client) error {
			return gorm.ErrDuplicatedKey
		},
	}

	_, err := newUsecase(clients).Register(context.Background(), validInput())
	if !fault.IsConflict(err) {
		t.Fatalf("want conflict, got %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*RegisterInput)
	}{
		{"missing first name", func(in *RegisterInput) { in.FirstName = "  " }},
		{"missing last name", func(in *RegisterInput) { in.LastName = "" }},
		{"short NIC", func(in *RegisterInput) { in.NICNumber = "12345678V" }},
		{"NIC bad suffix", func(in *RegisterInput) { in.NICNumber = "123456789Z" }},
		{"NIC eleven digits", func(in *RegisterInput) { in.NICNumber = "12345678901" }},
		{"mobile too short", func(in *RegisterInput) { in.MobileNumber = "077123456" }},
		{"mobile not digits", func(in *RegisterInput) { in.MobileNumber = "07712345ab" }},
		{"missing home number", func(in *RegisterInput) { in.HomeNumber = "" }},
		{"guarantor name without NIC", func(in *RegisterInput) {
			in.FirstGuarantor = Guarantor{Name: "Kamal Silva"}
		}},
		{"guarantor NIC without name", func(in *RegisterInput) {
			in.SecondGuarantor = Guarantor{NIC: "851234567V"}
		}},
		{"guarantor NIC malformed", func(in *RegisterInput) {
			in.FirstGuarantor = Guarantor{Name: "Kamal Silva", NIC: "nope"}
		}},
	}

	clients := &clientmock.Repo{
		GetByNICFn: func(ctx context.Context, nic string) (*clientDomain.Client, error) {
			t.Fatalf("lookup must not run on invalid input")
			return nil, nil
		},
	}
	uc := newUsecase(clients)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput()
			tc.mutate(&in)
			if _, err := uc.Register(context.Background(), in); !fault.IsValidation(err) {
				t.Fatalf("want validation error, got %v", err)
			}
		})
	}
}

func TestRegister_AcceptsTwelveDigitNICAndGuarantorPair(t *testing.T) {
	clients := &clientmock.Repo{
		GetByNICFn: func(ctx context.Context, nic string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	in := validInput()
	in.NICNumber = "200012345678"
	in.FirstGuarantor = Guarantor{Name: "Kamal Silva", NIC: "851234567X", TP: "0712345678"}

	if _, err := newUsecase(clients).Register(context.Background(), in); err != nil {
		t.Fatalf("Register err: %v", err)
	}
}

func TestNextRegisterNumber(t *testing.T) {
	clients := &clientmock.Repo{
		MaxRegisterNumberFn: func(ctx context.Context) (int, error) { return 7, nil },
	}
	uc := NewUsecase(clients, &loanmock.Repo{}, &paymentmock.Repo{}, uowmock.New())
	n, err := uc.NextRegisterNumber(context.Background())
	if err != nil {
		t.Fatalf("NextRegisterNumber err: %v", err)
	}
	if n != 8 {
		t.Fatalf("next = %d, want 8", n)
	}
}

func TestGetByNIC_NotFound(t *testing.T) {
	clients := &clientmock.Repo{
		GetByNICFn: func(ctx context.Context, nic string) (*clientDomain.Client, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	uc := NewUsecase(clients, &loanmock.Repo{}, &paymentmock.Repo{}, uowmock.New())
	if _, err := uc.GetByNIC(context.Background(), "941234567V"); !fault.IsNotFound(err) {
		t.Fatalf("want not found, got %v", err)
	}
}

func TestList_MembersOnlyUsesMembershipFilter(t *testing.T) {
	member := clientDomain.Client{ClientID: "a", RegisterNumber: 1, NICNumber: "941234567V", IsMember: true}
	guest := clientDomain.Client{ClientID: "b", RegisterNumber: 2, NICNumber: "851234567X", IsMember: false}

	clients := &clientmock.Repo{
		ListFn: func(ctx context.Context) ([]clientDomain.Client, error) {
			return []clientDomain.Client{member, guest}, nil
		},
		ListMembersFn: func(ctx context.Context) ([]clientDomain.Client, error) {
			return []clientDomain.Client{member}, nil
		},
	}
	uc := newUsecase(clients)

	all, err := uc.List(context.Background(), false)
	if err != nil {
		t.Fatalf("List all err: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("all = %d entries, want 2", len(all))
	}

	got, err := uc.List(context.Background(), true)
	if err != nil {
		t.Fatalf("List members err: %v", err)
	}
	if len(got) != 1 || got[0].NICNumber != "941234567V" || !got[0].IsMember {
		t.Fatalf("members = %+v", got)
	}
}
