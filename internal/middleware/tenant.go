package middleware

import (
	"net/http"
	"regexp"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/simp-lee/logger"
)

const tenantContextKey = "tenant"

// Tenant identifiers must be strict lowercase identifiers before they are
// used anywhere.
var tenantPattern = regexp.MustCompile(`^[a-z][a-z0-9_]{0,62}$`)

// TenantConfig controls tenant selection.
type TenantConfig struct {
	// Header carries the tenant identifier; defaults to X-Subdomain.
	Header string
	// Default is the tenant assumed when the header is absent; defaults to
	// "public".
	Default string
	// Allowed is the tenant allow-list. The default tenant is always
	// accepted.
	Allowed []string
}

// Tenant returns a gin middleware that resolves the request's tenant from
// the configured header, falling back to the default when the header is
// absent. Identifiers that fail the strict pattern or are not on the
// allow-list are rejected with 400 before any handler runs.
//
// The resolved tenant is:
//   - Stored in gin.Context under the key "tenant"
//   - Attached to the Go context for structured logging
func Tenant(cfg TenantConfig) gin.HandlerFunc {
	header := cfg.Header
	if header == "" {
		header = "X-Subdomain"
	}
	def := cfg.Default
	if def == "" {
		def = "public"
	}
	allowed := make(map[string]struct{}, len(cfg.Allowed)+1)
	allowed[def] = struct{}{}
	for _, name := range cfg.Allowed {
		allowed[name] = struct{}{}
	}

	return func(c *gin.Context) {
		tenant := c.GetHeader(header)
		if tenant == "" {
			tenant = def
		}

		if !tenantPattern.MatchString(tenant) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "invalid tenant identifier",
			})
			return
		}
		if _, ok := allowed[tenant]; !ok {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{
				"code":    http.StatusBadRequest,
				"message": "unknown tenant",
			})
			return
		}

		c.Set(tenantContextKey, tenant)

		ctx := logger.WithContextAttrs(c.Request.Context(), slog.String("tenant", tenant))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// GetTenant extracts the resolved tenant from the gin.Context.
// Returns an empty string if no tenant is set.
func GetTenant(c *gin.Context) string {
	if v, exists := c.Get(tenantContextKey); exists {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
