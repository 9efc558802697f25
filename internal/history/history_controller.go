package history

import (
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/logging"
	"notehub/internal/middlewares"
	"notehub/internal/models"
)

// Api defines the history endpoints exposed to authenticated users.
type Api interface {

	// GetHistory lists the caller's history entries.
	GetHistory(c *gin.Context)

	// DeleteHistory removes the caller's entry for one note.
	DeleteHistory(c *gin.Context)
}

// Controller serves the per-user history API.
type Controller struct {
	*environment.Env
	Responder api.Responder

	// SortLanguage picks the collation used when ordering entries by title.
	// A collator is built per request; collate.Collator is not safe for
	// concurrent use.
	SortLanguage language.Tag
}

// ensure Controller implements Api
var _ Api = &Controller{}

// GetHistory returns the caller's history entries ordered by title with
// locale-aware collation, the way file browsers sort.
//
// @ID getHistory
// @Summary List the caller's note history
// @Tags history
// @Router /history [get]
// @Success 200 {object} api.RestJsonResponse{data=[]models.HistoryEntry}
// @Failure 500
func (hc *Controller) GetHistory(c *gin.Context) {
	userID, ok := middlewares.SessionUserID(c)
	if !ok {
		hc.Responder.Forbidden(c, false)
		return
	}

	var entries []models.HistoryEntry
	if err := hc.FindHistoryEntriesByUserID(c.Request.Context(), userID, &entries); err != nil {
		hc.LogError(logging.GetLogTypeHistory(), err.Error())
		hc.Responder.InternalError(c)
		return
	}

	collator := collate.New(hc.SortLanguage)
	sort.SliceStable(entries, func(i, j int) bool {
		return collator.CompareString(entries[i].Title, entries[j].Title) < 0
	})

	c.JSON(http.StatusOK, gin.H{"history": entries})
}

// DeleteHistory removes the caller's history entry for the note named by the
// URL token. Deleting an entry that does not exist is not an error.
//
// @ID deleteHistory
// @Summary Delete one history entry
// @Tags history
// @Router /history/{noteId} [delete]
// @Success 204
// @Failure 500
func (hc *Controller) DeleteHistory(c *gin.Context) {
	userID, ok := middlewares.SessionUserID(c)
	if !ok {
		hc.Responder.Forbidden(c, false)
		return
	}

	noteRef := c.Param("noteId")
	if err := hc.DeleteHistoryEntry(c.Request.Context(), userID, noteRef); err != nil {
		hc.LogError(logging.GetLogTypeHistory(), err.Error())
		hc.Responder.InternalError(c)
		return
	}

	c.Status(http.StatusNoContent)
}
