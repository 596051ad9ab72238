// Package domain contains the invoice record model consumed by CRUD paths
// and by the reporting layer.
package domain

import (
	"time"

	"github.com/bwmarrin/snowflake"
	"gorm.io/datatypes"
)

// Status represents invoice lifecycle states.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusSent      Status = "sent"
	StatusPaid      Status = "paid"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSent, StatusPaid, StatusOverdue, StatusCancelled:
		return true
	default:
		return false
	}
}

// Invoice represents a single invoice record. Amount is the canonical value
// field; the repository folds historical column aliases into it before a
// record leaves the persistence boundary, so consumers never pick between
// aliases themselves.
type Invoice struct {
	ID        snowflake.ID  `gorm:"primaryKey" json:"id"`
	OwnerID   snowflake.ID  `gorm:"not null;index" json:"owner_id"`
	ClientID  *snowflake.ID `gorm:"index" json:"client_id,omitempty"`
	Number    string        `gorm:"type:text" json:"number"`
	Status    Status        `gorm:"type:text;not null;default:'draft'" json:"status"`
	Amount    float64       `gorm:"not null;default:0" json:"amount"`
	Currency  string        `gorm:"type:text;not null;default:'EUR'" json:"currency"`
	IssueDate time.Time     `gorm:"not null;index" json:"issue_date"`
	DueDate   *time.Time    `json:"due_date,omitempty"`
	PaidDate  *time.Time    `gorm:"index" json:"paid_date,omitempty"`

	// Amount aliases written by earlier schema generations. Never read by
	// consumers; FindByOwner folds them into Amount.
	LegacyTotalAmount *float64 `gorm:"column:total_amount" json:"-"`
	LegacyTotal       *float64 `gorm:"column:total" json:"-"`

	Metadata  datatypes.JSONMap `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time         `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// TableName sets the database table name.
func (Invoice) TableName() string { return "invoices" }
