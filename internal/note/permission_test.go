package note_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"notehub/internal/middlewares"
	"notehub/internal/models"
	"notehub/internal/note"
)

func uintPtr(v uint) *uint {
	return &v
}

type permissionCase struct {
	name            string
	permission      models.NotePermission
	isAuthenticated bool
	userID          uint
	ownerID         *uint
	want            bool
}

func permissionCases() []permissionCase {
	return []permissionCase{
		{"private owner", models.PermissionPrivate, true, 7, uintPtr(7), true},
		{"private other user", models.PermissionPrivate, true, 8, uintPtr(7), false},
		{"private anonymous", models.PermissionPrivate, false, 0, uintPtr(7), false},
		{"private without owner", models.PermissionPrivate, true, 7, nil, false},

		{"limited authenticated non-owner", models.PermissionLimited, true, 8, uintPtr(7), true},
		{"limited anonymous", models.PermissionLimited, false, 0, uintPtr(7), false},
		{"protected authenticated non-owner", models.PermissionProtected, true, 8, uintPtr(7), true},
		{"protected anonymous", models.PermissionProtected, false, 0, uintPtr(7), false},

		{"freely anonymous", models.PermissionFreely, false, 0, uintPtr(7), true},
		{"editable anonymous", models.PermissionEditable, false, 0, uintPtr(7), true},
		{"locked anonymous", models.PermissionLocked, false, 0, uintPtr(7), true},
		{"unset permission anonymous", models.NotePermission(""), false, 0, nil, true},
	}
}

// ####################### valid behavior tests
func TestCanView(t *testing.T) {
	for _, tt := range permissionCases() {
		got := note.CanView(tt.permission, tt.isAuthenticated, tt.userID, tt.ownerID)

		if got != tt.want {
			t.Errorf("%s: CanView = %v; want %v", tt.name, got, tt.want)
			return
		}
	}
}

// CanViewRequest must agree with CanView on every row of the table; the
// request shape only supplies the session identity.
func TestCanViewRequest_MatchesCanView(t *testing.T) {
	for _, tt := range permissionCases() {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/features", nil)

		if tt.isAuthenticated {
			middlewares.SetSessionUser(c, tt.userID, "tester")
		}

		n := models.Note{Permission: tt.permission, OwnerID: tt.ownerID}

		got := note.CanViewRequest(c, &n)

		if got != tt.want {
			t.Errorf("%s: CanViewRequest = %v; want %v", tt.name, got, tt.want)
			return
		}
	}
}
