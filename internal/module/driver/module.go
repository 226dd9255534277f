package driver

import "github.com/gin-gonic/gin"

// DriverModule implements the app.Module interface for the driver domain.
type DriverModule struct {
	handler *DriverHandler
}

// NewModule creates a new DriverModule with the given handler.
// Panics if h is nil.
func NewModule(h *DriverHandler) *DriverModule {
	if h == nil {
		panic("driver.NewModule: handler must not be nil")
	}
	return &DriverModule{handler: h}
}

// RegisterRoutes registers driver API routes.
func (m *DriverModule) RegisterRoutes(api *gin.RouterGroup) {
	drivers := api.Group("/drivers")
	drivers.POST("", m.handler.Create)
	drivers.GET("", m.handler.List)
	drivers.POST("/bulk-delete", m.handler.BulkDelete)
	drivers.GET("/by-license/:license", m.handler.GetByLicense)
	drivers.GET("/:id", m.handler.Get)
	drivers.PUT("/:id", m.handler.Update)
	drivers.DELETE("/:id", m.handler.Delete)
	drivers.POST("/:id/reactivate", m.handler.Reactivate)
}
