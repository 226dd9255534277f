package domain

import "github.com/google/uuid"

// Transaction represents a financial record (tithe, offering, pledge)
// attributed to a member.
type Transaction struct {
	Model
	Reference   string    `gorm:"column:reference;size:64;uniqueIndex;not null" json:"reference"`
	Kind        string    `gorm:"column:kind;size:32;not null" json:"kind"`
	Currency    string    `gorm:"column:currency;size:8;not null;default:GHS" json:"currency"`
	AmountCents int64     `gorm:"column:amount_cents;not null" json:"amount_cents"`
	MemberID    uuid.UUID `gorm:"column:member_id;type:uuid;not null" json:"member_id"`

	Member *Member `gorm:"foreignKey:MemberID" json:"member,omitempty"`
}

// TableName sets the table name for Transaction.
func (Transaction) TableName() string { return "transactions" }
