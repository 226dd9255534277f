package domain

import "time"

// Member represents a registered congregation member.
type Member struct {
	Model
	FullName       string     `gorm:"column:full_name;size:255;not null" json:"full_name"`
	PhoneNumber    *string    `gorm:"column:phone_number;size:32;uniqueIndex" json:"phone_number,omitempty"`
	Email          *string    `gorm:"column:email;size:255;uniqueIndex" json:"email,omitempty"`
	PictureURL     *string    `gorm:"column:picture_url;size:512" json:"picture_url,omitempty"`
	JoinedDate     *time.Time `gorm:"column:joined_date" json:"joined_date,omitempty"`
	ApprovalStatus string     `gorm:"column:approval_status;size:32;not null;default:pending" json:"approval_status"`

	Groups       []Group       `gorm:"many2many:group_members" json:"groups,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:MemberID" json:"transactions,omitempty"`
}

// TableName sets the table name for Member.
func (Member) TableName() string { return "members" }
