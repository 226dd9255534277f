package driver

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jakpabi/churchbase/internal/domain"
	"github.com/jakpabi/churchbase/internal/repository"
)

// uniqueFields are probed before every driver write.
var uniqueFields = []string{"phone_number", "license_number"}

// DriverRepository defines the data access the driver service needs.
type DriverRepository interface {
	Create(ctx context.Context, data domain.Payload) (*domain.Driver, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	GetByLicense(ctx context.Context, license string) (*domain.Driver, error)
	Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Driver, error)
	Delete(ctx context.Context, id uuid.UUID, soft bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
	GetAll(ctx context.Context, q domain.ListQuery) ([]domain.Driver, error)
	GetByFilters(ctx context.Context, filters map[string]any, q domain.ListQuery) ([]domain.Driver, error)
	SearchByName(ctx context.Context, term string, q domain.ListQuery) ([]domain.Driver, error)
}

type driverRepository struct {
	drivers *repository.Repository[domain.Driver]
}

// NewRepository creates a DriverRepository backed by the shared engine.
func NewRepository(db *gorm.DB) (DriverRepository, error) {
	drivers, err := repository.New[domain.Driver](db, nil)
	if err != nil {
		return nil, err
	}
	return &driverRepository{drivers: drivers}, nil
}

func (r *driverRepository) Create(ctx context.Context, data domain.Payload) (*domain.Driver, error) {
	return r.drivers.Create(ctx, data, uniqueFields...)
}

func (r *driverRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	return r.drivers.GetByID(ctx, id, false)
}

func (r *driverRepository) GetByLicense(ctx context.Context, license string) (*domain.Driver, error) {
	return r.drivers.GetByField(ctx, "license_number", license, false)
}

func (r *driverRepository) Update(ctx context.Context, id uuid.UUID, data domain.Payload) (*domain.Driver, error) {
	return r.drivers.Update(ctx, id, data, uniqueFields...)
}

func (r *driverRepository) Delete(ctx context.Context, id uuid.UUID, soft bool) error {
	return r.drivers.Delete(ctx, id, soft)
}

func (r *driverRepository) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	return r.drivers.Reactivate(ctx, id)
}

func (r *driverRepository) BulkHardDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return r.drivers.BulkHardDelete(ctx, ids)
}

func (r *driverRepository) GetAll(ctx context.Context, q domain.ListQuery) ([]domain.Driver, error) {
	return r.drivers.GetAll(ctx, q)
}

func (r *driverRepository) GetByFilters(ctx context.Context, filters map[string]any, q domain.ListQuery) ([]domain.Driver, error) {
	return r.drivers.GetByFilters(ctx, filters, q)
}

func (r *driverRepository) SearchByName(ctx context.Context, term string, q domain.ListQuery) ([]domain.Driver, error) {
	return r.drivers.GetByPattern(ctx, map[string]any{"full_name": term}, q)
}
