package mysql

import (
	"context"

	clientDomain "github.com/pasinduJDJ/lonex-investments/internal/domain/client"

	"gorm.io/gorm"
)

type ClientRepository struct{ db *gorm.DB }

func NewClientRepository(db *gorm.DB) *ClientRepository { return &ClientRepository{db: db} }

func (r *ClientRepository) Create(ctx context.Context, c *clientDomain.Client) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *ClientRepository) GetByClientID(ctx context.Context, clientID string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("client_id = ?", clientID).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) GetByNIC(ctx context.Context, nicNumber string) (*clientDomain.Client, error) {
	var out clientDomain.Client
	res := r.db.WithContext(ctx).Where("nic_number = ?", nicNumber).First(&out)
	return &out, res.Error
}

func (r *ClientRepository) MaxRegisterNumber(ctx context.Context) (int, error) {
	var max *int
	res := r.db.WithContext(ctx).
		Model(&clientDomain.Client{}).
		Select("MAX(register_number)").
		Scan(&max)
	if res.Error != nil {
		return 0, res.Error
	}
	if max == nil {
		return 0, nil
	}
	return *max, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]clientDomain.Client, error) {
	var out []clientDomain.Client
	res := r.db.WithContext(ctx).Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *ClientRepository) ListMembers(ctx context.Context) ([]clientDomain.Client, error) {
	var out []clientDomain.Client
	res := r.db.WithContext(ctx).Where("is_member = ?", true).Order("created_at DESC").Find(&out)
	return out, res.Error
}
