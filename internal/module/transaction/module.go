package transaction

import "github.com/gin-gonic/gin"

// TransactionModule implements the app.Module interface for the transaction
// domain.
type TransactionModule struct {
	handler *TransactionHandler
}

// NewModule creates a new TransactionModule with the given handler.
// Panics if h is nil.
func NewModule(h *TransactionHandler) *TransactionModule {
	if h == nil {
		panic("transaction.NewModule: handler must not be nil")
	}
	return &TransactionModule{handler: h}
}

// RegisterRoutes registers transaction API routes.
func (m *TransactionModule) RegisterRoutes(api *gin.RouterGroup) {
	transactions := api.Group("/transactions")
	transactions.POST("", m.handler.Create)
	transactions.GET("", m.handler.List)
	transactions.POST("/bulk-delete", m.handler.BulkDelete)
	transactions.GET("/by-reference/:reference", m.handler.GetByReference)
	transactions.GET("/:id", m.handler.Get)
	transactions.PUT("/:id", m.handler.Update)
	transactions.DELETE("/:id", m.handler.Delete)
	transactions.POST("/:id/reactivate", m.handler.Reactivate)
}
