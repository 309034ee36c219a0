package client

import "context"

type Repository interface {
	Create(ctx context.Context, c *Client) error
	GetByClientID(ctx context.Context, clientID string) (*Client, error)
	GetByNIC(ctx context.Context, nicNumber string) (*Client, error)
	// MaxRegisterNumber returns 0 when no clients exist.
	MaxRegisterNumber(ctx context.Context) (int, error)
	List(ctx context.Context) ([]Client, error)
	ListMembers(ctx context.Context) ([]Client, error)
}
