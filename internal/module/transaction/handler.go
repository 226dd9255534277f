package transaction

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakpabi/churchbase/internal/pkg"
)

// TransactionHandler handles REST API requests for transactions.
type TransactionHandler struct {
	svc Service
}

// NewHandler creates a new TransactionHandler with the given service.
func NewHandler(svc Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

// Create handles POST /api/v1/transactions.
func (h *TransactionHandler) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tx, err := h.svc.Create(c.Request.Context(), &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, pkg.Response{
		Code:    http.StatusCreated,
		Message: "transaction recorded successfully",
		Data:    tx,
	})
}

// Get handles GET /api/v1/transactions/:id.
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	tx, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tx)
}

// GetByReference handles GET /api/v1/transactions/by-reference/:reference.
func (h *TransactionHandler) GetByReference(c *gin.Context) {
	tx, err := h.svc.GetByReference(c.Request.Context(), c.Param("reference"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tx)
}

// List handles GET /api/v1/transactions. Besides the dynamic query params,
// ?member_name= joins through the member relation and filters on the
// member's full name.
func (h *TransactionHandler) List(c *gin.Context) {
	result, err := h.svc.List(c.Request.Context(), c.Request.URL.Query(), c.Query("member_name"))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.List(c, result)
}

// Update handles PUT /api/v1/transactions/:id.
func (h *TransactionHandler) Update(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateTransactionRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tx, err := h.svc.Update(c.Request.Context(), id, &req)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tx)
}

// Delete handles DELETE /api/v1/transactions/:id. Soft by default;
// ?hard=true removes the row permanently.
func (h *TransactionHandler) Delete(c *gin.Context) {
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

// Reactivate handles POST /api/v1/transactions/:id/reactivate.
func (h *TransactionHandler) Reactivate(c *gin.Context) {
	id, err := pkg.ParseUUIDParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	tx, err := h.svc.Reactivate(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, tx)
}

// BulkDelete handles POST /api/v1/transactions/bulk-delete.
func (h *TransactionHandler) BulkDelete(c *gin.Context) {
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
