package driver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakpabi/churchbase/internal/pkg"
)

// DriverHandler handles REST API requests for drivers.
type DriverHandler struct {
	svc Service
}

// NewHandler creates a new DriverHandler with the given service.
func NewHandler(svc Service) *DriverHandler {
	return &DriverHandler{svc: svc}
}

// Create handles POST /api/v1/drivers.
func (h *DriverHandler) Create(c *gin.Context) {
	var req CreateDriverRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	driver, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "driver created successfully",
		Data:    driver,
	})
}

// Get handles GET /api/v1/drivers/:id.
func (h *DriverHandler) Get(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	driver, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, driver)
}

// GetByLicense handles GET /api/v1/drivers/by-license/:license.
func (h *DriverHandler) GetByLicense(c *gin.Context) {
	driver, err := h.svc.GetByLicense(c.Request.Context(), c.Param("license"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, driver)
}

// List handles GET /api/v1/drivers. Pagination comes from skip/limit with
// order_by/order_direction; name/phone_number/license_number/vehicle_number
// narrow the result.
func (h *DriverHandler) List(c *gin.Context) {
	q, err := pkg.ParseListQuery(c)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	filters := ListFilters{
		NameSearch:    c.Query("name"),
		PhoneNumber:   c.Query("phone_number"),
		LicenseNumber: c.Query("license_number"),
		VehicleNumber: c.Query("vehicle_number"),
	}

	drivers, err := h.svc.List(c.Request.Context(), filters, q)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, drivers)
}

// Update handles PUT /api/v1/drivers/:id.
func (h *DriverHandler) Update(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateDriverRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	driver, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, driver)
}

// Delete handles DELETE /api/v1/drivers/:id. Soft by default; ?hard=true
// removes the row permanently.
func (h *DriverHandler) Delete(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	hard := c.Query("hard") == "true"
	if err := h.svc.Delete(c.Request.Context(), id, hard); err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, nil)
}

// Reactivate handles POST /api/v1/drivers/:id/reactivate.
func (h *DriverHandler) Reactivate(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	driver, err := h.svc.Reactivate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, driver)
}

// BulkDelete handles POST /api/v1/drivers/bulk-delete.
func (h *DriverHandler) BulkDelete(c *gin.Context) {
	var req BulkDeleteRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	deleted, err := h.svc.BulkDelete(c.Request.Context(), req.IDs)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, BulkDeleteResponse{Deleted: deleted})
}
