package client

import (
	"time"
)

// Table: clients. Register numbers form a dense positive sequence assigned
// at creation and never reassigned.
type Client struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Public identifier (32-char lowercase hex)
	ClientID       string `gorm:"column:client_id;type:char(32);not null;uniqueIndex:ux_clients_client_id"`
	RegisterNumber int    `gorm:"column:register_number;not null;uniqueIndex:ux_clients_register_number"`
	FirstName      string `gorm:"column:first_name;size:100;not null"`
	LastName       string `gorm:"column:last_name;size:100;not null"`
	// National identity card number, unique across all clients
	NICNumber     string  `gorm:"column:nic_number;size:12;not null;uniqueIndex:ux_clients_nic_number"`
	MobileNumber  *string `gorm:"column:mobile_number;size:10"`
	HomeNumber    *string `gorm:"column:home_number;size:20"`
	StreetAddress *string `gorm:"column:street_address;type:text"`
	TownOne       *string `gorm:"column:town_one;size:100"`
	TownTwo       *string `gorm:"column:town_two;size:100"`
	Group         *string `gorm:"column:member_group;size:50"`
	// No column default: gorm drops zero-value fields that carry one, which
	// would turn every stored false into true.
	IsMember bool `gorm:"column:is_member;not null"`

	FirstGuarantorName     *string `gorm:"column:first_guarantor_name;size:200"`
	FirstGuarantorNIC      *string `gorm:"column:first_guarantor_nic;size:12"`
	FirstGuarantorTP       *string `gorm:"column:first_guarantor_tp;size:10"`
	FirstGuarantorAddress  *string `gorm:"column:first_guarantor_address;type:text"`
	SecondGuarantorName    *string `gorm:"column:second_guarantor_name;size:200"`
	SecondGuarantorNIC     *string `gorm:"column:second_guarantor_nic;size:12"`
	SecondGuarantorTP      *string `gorm:"column:second_guarantor_tp;size:10"`
	SecondGuarantorAddress *string `gorm:"column:second_guarantor_address;type:text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Client) TableName() string { return "clients" }

// FullName is the display name used on documents and reports.
func (c *Client) FullName() string { return c.FirstName + " " + c.LastName }
