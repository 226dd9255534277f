package group

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakpabi/churchbase/internal/pkg"
)

// GroupHandler handles REST API requests for groups.
type GroupHandler struct {
	svc Service
}

// NewHandler creates a new GroupHandler with the given service.
func NewHandler(svc Service) *GroupHandler {
	return &GroupHandler{svc: svc}
}

// Create handles POST /api/v1/groups.
func (h *GroupHandler) Create(c *gin.Context) {
	var req CreateGroupRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	group, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "group created successfully",
		Data:    group,
	})
}

// Get handles GET /api/v1/groups/:id.
func (h *GroupHandler) Get(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	group, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, group)
}

// List handles GET /api/v1/groups.
func (h *GroupHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/groups/:id.
func (h *GroupHandler) Update(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateGroupRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	group, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, group)
}

// Delete handles DELETE /api/v1/groups/:id. Soft by default; ?hard=true
// removes the row permanently.
func (h *GroupHandler) Delete(c *gin.Context) {
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

// Reactivate handles POST /api/v1/groups/:id/reactivate.
func (h *GroupHandler) Reactivate(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	group, err := h.svc.Reactivate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, group)
}

// BulkDelete handles POST /api/v1/groups/bulk-delete.
func (h *GroupHandler) BulkDelete(c *gin.Context) {
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

// AddMembers handles POST /api/v1/groups/:id/members.
func (h *GroupHandler) AddMembers(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req AddMembersRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	members, err := h.svc.AddMembers(c.Request.Context(), id, &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, members)
}

// Members handles GET /api/v1/groups/:id/members.
func (h *GroupHandler) Members(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	result, err := h.svc.Members(c.Request.Context(), id, c.Request.URL.Query())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}
