package pkg

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jakpabi/churchbase/internal/domain"
)

// ParseUUIDParam parses a UUID path parameter. A malformed value fails
// InvalidArgument before it can reach a query.
func ParseUUIDParam(c *gin.Context, name string) (uuid.UUID, error) {
	raw := c.Param(name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.NewAppError(domain.CodeInvalidArgument,
			fmt.Sprintf("invalid %s %q", name, raw), err)
	}
	return id, nil
}
