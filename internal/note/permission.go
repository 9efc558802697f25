package note

import (
	"github.com/gin-gonic/gin"

	"notehub/internal/middlewares"
	"notehub/internal/models"
)

// CanView is the single view-permission truth table:
//
//   - private: only the authenticated owner
//   - limited, protected: any authenticated caller, ownership irrelevant
//   - everything else (freely, editable, locked, unset): everyone
//
// Both call shapes below route through this function; there is deliberately
// no second implementation to drift from.
func CanView(permission models.NotePermission, isAuthenticated bool, userID uint, ownerID *uint) bool {
	switch permission {
	case models.PermissionPrivate:
		return isAuthenticated && ownerID != nil && *ownerID == userID
	case models.PermissionLimited, models.PermissionProtected:
		return isAuthenticated
	default:
		return true
	}
}

// CanViewRequest adapts a live request session to CanView. The creation-time
// pre-check uses CanView directly with the prospective owner as viewer.
func CanViewRequest(c *gin.Context, n *models.Note) bool {
	userID, isAuthenticated := middlewares.SessionUserID(c)
	return CanView(n.Permission, isAuthenticated, userID, n.OwnerID)
}
