package auth

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
	"github.com/jakpabi/churchbase/internal/repository"
)

// UserRepository defines the data access the auth service needs for users.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, name, email, passwordHash string, roleID uuid.UUID) (*domain.User, error)
}

// RoleRepository defines the data access the auth service needs for roles.
type RoleRepository interface {
	GetOrCreate(ctx context.Context, name string) (*domain.Role, error)
}

type userRepository struct {
	users *repository.Repository[domain.User]
}

// NewUserRepository creates a UserRepository backed by the shared engine.
func NewUserRepository(db *gorm.DB) (UserRepository, error) {
	users, err := repository.New[domain.User](db, nil)
	if err != nil {
		return nil, err
	}
	return &userRepository{users: users}, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := r.users.GetByField(ctx, "email", email, false)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) Create(ctx context.Context, name, email, passwordHash string, roleID uuid.UUID) (*domain.User, error) {
	fields := domain.Fields{
		"name":          name,
		"email":         email,
		"password_hash": passwordHash,
	}
	if roleID != uuid.Nil {
		fields["role_id"] = roleID
	}
	return r.users.Create(ctx, fields, "email")
}

type roleRepository struct {
	roles *repository.Repository[domain.Role]
}

// NewRoleRepository creates a RoleRepository backed by the shared engine.
func NewRoleRepository(db *gorm.DB) (RoleRepository, error) {
	roles, err := repository.New[domain.Role](db, nil)
	if err != nil {
		return nil, err
	}
	return &roleRepository{roles: roles}, nil
}

func (r *roleRepository) GetOrCreate(ctx context.Context, name string) (*domain.Role, error) {
	return r.roles.GetOrCreate(ctx, domain.Fields{"name": name}, "name")
}
