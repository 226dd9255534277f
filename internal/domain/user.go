package domain

import "github.com/google/uuid"

// User represents an administrative account in the system.
type User struct {
	Model
	Name         string     `gorm:"column:name;size:100;not null" json:"name"`
	Email        string     `gorm:"column:email;size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"column:password_hash;size:255" json:"-"`
	RoleID       *uuid.UUID `gorm:"column:role_id;type:uuid" json:"role_id,omitempty"`

	Role *Role `gorm:"foreignKey:RoleID" json:"role,omitempty"`
}

// TableName sets the table name for User.
func (User) TableName() string { return "users" }

// Role represents an administrative role assignable to users.
type Role struct {
	Model
	Name string `gorm:"column:name;size:64;uniqueIndex;not null" json:"name"`

	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

// TableName sets the table name for Role.
func (Role) TableName() string { return "roles" }
