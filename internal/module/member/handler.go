package member

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakpabi/churchbase/internal/pkg"
)

// MemberHandler handles REST API requests for members.
type MemberHandler struct {
	svc Service
}

// NewHandler creates a new MemberHandler with the given service.
func NewHandler(svc Service) *MemberHandler {
	return &MemberHandler{svc: svc}
}

// Create handles POST /api/v1/members.
func (h *MemberHandler) Create(c *gin.Context) {
	var req CreateMemberRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	member, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "member created successfully",
		Data:    member,
	})
}

// Get handles GET /api/v1/members/:id.
func (h *MemberHandler) Get(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	member, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, member)
}

// List handles GET /api/v1/members. Filtering, search, projection, sorting
// and pagination are all driven by query params.
func (h *MemberHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/members/:id.
func (h *MemberHandler) Update(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateMemberRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	member, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, member)
}

// Delete handles DELETE /api/v1/members/:id. Soft by default; ?hard=true
// removes the row permanently.
func (h *MemberHandler) Delete(c *gin.Context) {
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

// Reactivate handles POST /api/v1/members/:id/reactivate.
func (h *MemberHandler) Reactivate(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	member, err := h.svc.Reactivate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, member)
}

// BulkDelete handles POST /api/v1/members/bulk-delete.
func (h *MemberHandler) BulkDelete(c *gin.Context) {
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

// Transactions handles GET /api/v1/members/:id/transactions.
func (h *MemberHandler) Transactions(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.Transactions(c.Request.Context(), id, c.Request.URL.Query())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
