package driver

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// ListFilters holds the optional equality filters a driver list accepts.
type ListFilters struct {
	PhoneNumber   string
	LicenseNumber string
	VehicleNumber string
	NameSearch    string
}

func (f ListFilters) empty() bool {
	return f.PhoneNumber == "" && f.LicenseNumber == "" && f.VehicleNumber == "" && f.NameSearch == ""
}

// Service defines the driver operations.
type Service interface {
	Create(ctx context.Context, req *CreateDriverRequest) (*domain.Driver, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	GetByLicense(ctx context.Context, license string) (*domain.Driver, error)
	List(ctx context.Context, filters ListFilters, q domain.ListQuery) ([]domain.Driver, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateDriverRequest) (*domain.Driver, error)
	Delete(ctx context.Context, id uuid.UUID, hard bool) error
	Reactivate(ctx context.Context, id uuid.UUID) (*domain.Driver, error)
	BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error)
}

type driverService struct {
	repo DriverRepository
}

// NewService creates a new driver Service.
func NewService(repo DriverRepository) Service {
	return &driverService{repo: repo}
}

func (s *driverService) Create(ctx context.Context, req *CreateDriverRequest) (*domain.Driver, error) {
	req.FullName = strings.TrimSpace(req.FullName)
	if req.FullName == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "full_name is required", nil)
	}
	req.LicenseNumber = strings.TrimSpace(req.LicenseNumber)
	if req.LicenseNumber == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "license_number is required", nil)
	}
	return s.repo.Create(ctx, req)
}

func (s *driverService) Get(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *driverService) GetByLicense(ctx context.Context, license string) (*domain.Driver, error) {
	return s.repo.GetByLicense(ctx, license)
}

// List dispatches to the read that satisfies the request: a name search when
// one is given, an equality filter when any filter is set, and a plain paged
// read otherwise. A name search takes precedence over equality filters.
func (s *driverService) List(ctx context.Context, filters ListFilters, q domain.ListQuery) ([]domain.Driver, error) {
	if filters.NameSearch != "" {
		return s.repo.SearchByName(ctx, filters.NameSearch, q)
	}
	if filters.empty() {
		return s.repo.GetAll(ctx, q)
	}
	eq := map[string]any{}
	if filters.PhoneNumber != "" {
		eq["phone_number"] = filters.PhoneNumber
	}
	if filters.LicenseNumber != "" {
		eq["license_number"] = filters.LicenseNumber
	}
	if filters.VehicleNumber != "" {
		eq["vehicle_number"] = filters.VehicleNumber
	}
	return s.repo.GetByFilters(ctx, eq, q)
}

func (s *driverService) Update(ctx context.Context, id uuid.UUID, req *UpdateDriverRequest) (*domain.Driver, error) {
	if req.FullName != nil {
		trimmed := strings.TrimSpace(*req.FullName)
		if trimmed == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "full_name must not be blank", nil)
		}
		req.FullName = &trimmed
	}
	return s.repo.Update(ctx, id, req)
}

func (s *driverService) Delete(ctx context.Context, id uuid.UUID, hard bool) error {
	return s.repo.Delete(ctx, id, !hard)
}

func (s *driverService) Reactivate(ctx context.Context, id uuid.UUID) (*domain.Driver, error) {
	return s.repo.Reactivate(ctx, id)
}

func (s *driverService) BulkDelete(ctx context.Context, ids []uuid.UUID) (int64, error) {
	return s.repo.BulkHardDelete(ctx, ids)
}
