package group

import "github.com/gin-gonic/gin"

// GroupModule implements the app.Module interface for the group domain.
type GroupModule struct {
	handler *GroupHandler
}

// NewModule creates a new GroupModule with the given handler.
// Panics if h is nil.
func NewModule(h *GroupHandler) *GroupModule {
	if h == nil {
		panic("group.NewModule: handler must not be nil")
	}
	return &GroupModule{handler: h}
}

// RegisterRoutes registers group API routes.
func (m *GroupModule) RegisterRoutes(api *gin.RouterGroup) {
	groups := api.Group("/groups")
	groups.POST("", m.handler.Create)
	groups.GET("", m.handler.List)
	groups.POST("/bulk-delete", m.handler.BulkDelete)
	groups.GET("/:id", m.handler.Get)
	groups.PUT("/:id", m.handler.Update)
	groups.DELETE("/:id", m.handler.Delete)
	groups.POST("/:id/reactivate", m.handler.Reactivate)
	groups.GET("/:id/members", m.handler.Members)
	groups.POST("/:id/members", m.handler.AddMembers)
}
