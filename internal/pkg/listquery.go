package pkg

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jakpabi/churchbase/internal/domain"
)

// ParseListQuery extracts the shared list parameters (skip, limit, order_by,
// order_direction) from the request query. Malformed numbers fail
// InvalidArgument; field validation happens later against the entity
// registry.
func ParseListQuery(c *gin.Context) (domain.ListQuery, error) {
	q := domain.ListQuery{
		OrderBy:        c.Query("order_by"),
		OrderDirection: c.Query("order_direction"),
	}

	var err error
	if q.Skip, err = intQuery(c, "skip", 0); err != nil {
		return domain.ListQuery{}, err
	}
	if q.Limit, err = intQuery(c, "limit", 0); err != nil {
		return domain.ListQuery{}, err
	}
	return q, nil
}

func intQuery(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewAppError(domain.CodeInvalidArgument,
			fmt.Sprintf("invalid %s %q", key, raw), err)
	}
	return n, nil
}
