package clientmock

import (
	"context"

	domain "github.com/pasinduJDJ/lonex-investments/internal/domain/client"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies client.Repository.
type Repo struct {
	CreateFn            func(ctx context.Context, c *domain.Client) error
	GetByClientIDFn     func(ctx context.Context, clientID string) (*domain.Client, error)
	GetByNICFn          func(ctx context.Context, nicNumber string) (*domain.Client, error)
	MaxRegisterNumberFn func(ctx context.Context) (int, error)
	ListFn              func(ctx context.Context) ([]domain.Client, error)
	ListMembersFn       func(ctx context.Context) ([]domain.Client, error)
}

func (m *Repo) Create(ctx context.Context, c *domain.Client) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, c)
	}
	return nil
}

func (m *Repo) GetByClientID(ctx context.Context, clientID string) (*domain.Client, error) {
	if m.GetByClientIDFn != nil {
		return m.GetByClientIDFn(ctx, clientID)
	}
	return nil, context.Canceled
}

func (m *Repo) GetByNIC(ctx context.Context, nicNumber string) (*domain.Client, error) {
	if m.GetByNICFn != nil {
		return m.GetByNICFn(ctx, nicNumber)
	}
	return nil, context.Canceled
}

func (m *Repo) MaxRegisterNumber(ctx context.Context) (int, error) {
	if m.MaxRegisterNumberFn != nil {
		return m.MaxRegisterNumberFn(ctx)
	}
	return 0, nil
}

func (m *Repo) List(ctx context.Context) ([]domain.Client, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, nil
}

func (m *Repo) ListMembers(ctx context.Context) ([]domain.Client, error) {
	if m.ListMembersFn != nil {
		return m.ListMembersFn(ctx)
	}
	return nil, nil
}
