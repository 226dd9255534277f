package driver

import (
	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// CreateDriverRequest represents the input for creating a driver.
type CreateDriverRequest struct {
	FullName      string  `json:"full_name" binding:"required,max=255"`
	PhoneNumber   *string `json:"phone_number" binding:"omitempty,min=3,max=32"`
	LicenseNumber string  `json:"license_number" binding:"required,max=64"`
	VehicleNumber *string `json:"vehicle_number" binding:"omitempty,max=32"`
}

// Columns implements domain.Payload.
func (r *CreateDriverRequest) Columns() map[string]any {
	cols := map[string]any{
		"full_name":      r.FullName,
		"license_number": r.LicenseNumber,
	}
	if r.PhoneNumber != nil {
		cols["phone_number"] = *r.PhoneNumber
	}
	if r.VehicleNumber != nil {
		cols["vehicle_number"] = *r.VehicleNumber
	}
	return cols
}

// UpdateDriverRequest represents a partial update of a driver.
type UpdateDriverRequest struct {
	FullName      *string `json:"full_name" binding:"omitempty,max=255"`
	PhoneNumber   *string `json:"phone_number" binding:"omitempty,min=3,max=32"`
	LicenseNumber *string `json:"license_number" binding:"omitempty,max=64"`
	VehicleNumber *string `json:"vehicle_number" binding:"omitempty,max=32"`
}

// Columns implements domain.Payload.
func (r *UpdateDriverRequest) Columns() map[string]any {
	cols := map[string]any{}
	if r.FullName != nil {
		cols["full_name"] = *r.FullName
	}
	if r.PhoneNumber != nil {
		cols["phone_number"] = *r.PhoneNumber
	}
	if r.LicenseNumber != nil {
		cols["license_number"] = *r.LicenseNumber
	}
	if r.VehicleNumber != nil {
		cols["vehicle_number"] = *r.VehicleNumber
	}
	return cols
}

// BulkDeleteRequest carries the ids for a bulk hard delete.
type BulkDeleteRequest struct {
	IDs []uuid.UUID `json:"ids" binding:"required,min=1"`
}

// BulkDeleteResponse reports how many rows a bulk delete removed.
type BulkDeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

var _ domain.Payload = (*CreateDriverRequest)(nil)
var _ domain.Payload = (*UpdateDriverRequest)(nil)
