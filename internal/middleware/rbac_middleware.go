package middleware

import (
	"net/http"

	"go-workforce/internal/domain"
	"go-workforce/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by anything that can enforce a domain.EnforceRequest.
type RBACService interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		memberID := c.GetString(CtxMemberID)
		orgID := c.GetString(CtxOrgID)
		if memberID == "" || orgID == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(domain.EnforceRequest{
			MemberID: memberID,
			OrgID:    orgID,
			Resource: resource,
			Action:   action,
		})
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "authorization check failed", nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource",
				gin.H{"required": resource + ":" + action})
			c.Abort()
			return
		}

		c.Set("perm_"+resource+"_"+action, true)
		c.Next()
	}
}

// HasPermission checks an extra permission without aborting, for handlers
// whose behavior (not access) depends on it.
func HasPermission(c *gin.Context, service RBACService, resource, action string) bool {
	allowed, err := service.Enforce(domain.EnforceRequest{
		MemberID: c.GetString(CtxMemberID),
		OrgID:    c.GetString(CtxOrgID),
		Resource: resource,
		Action:   action,
	})
	return err == nil && allowed
}
