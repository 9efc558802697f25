package note

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"notehub/internal/api"
	"notehub/internal/environment"
	"notehub/internal/logging"
	"notehub/internal/middlewares"
	"notehub/internal/models"
	"notehub/internal/utils"
)

// FreeNoteCreator starts the note-creation flow for an unused URL token.
// The implementation writes the response itself.
type FreeNoteCreator interface {
	CreateFreeNote(c *gin.Context, alias string)
}

// ResolverConfig is the immutable policy handed to a Resolver at
// construction. Core logic performs no ambient configuration lookups.
type ResolverConfig struct {
	// AllowFreeURL turns a miss on an unused token into an implicit
	// note-creation request at that alias.
	AllowFreeURL bool

	// ForbiddenNoteIDs lists tokens that may never become aliases.
	ForbiddenNoteIDs []string

	// DecodeErrorsAsBadRequest reports malformed tokens as 400 instead of
	// the historical 500. Flipping it changes client-visible status codes.
	DecodeErrorsAsBadRequest bool
}

// Resolver maps a raw URL token to a note record and runs the view
// permission check before handing the note to the caller.
type Resolver struct {
	*environment.Env
	Responder api.Responder
	Config    ResolverConfig
	Creator   FreeNoteCreator

	forbidden map[string]struct{}
}

// NewResolver builds a Resolver with the forbidden-token set precomputed;
// the set is read-only at request time.
func NewResolver(env *environment.Env, responder api.Responder, cfg ResolverConfig, creator FreeNoteCreator) *Resolver {
	return &Resolver{
		Env:       env,
		Responder: responder,
		Config:    cfg,
		Creator:   creator,
		forbidden: utils.SliceToSet(cfg.ForbiddenNoteIDs),
	}
}

// Resolve reads the :noteId URL token, decodes it, loads the note and checks
// view permission. It returns (note, true) on success; on every other
// outcome the response has already been written and it returns (nil, false).
//
// A malformed token and a missing note are distinct outcomes: both are
// logged before responding, but only decode failures surface as an internal
// error (or 400 when so configured).
func (r *Resolver) Resolve(c *gin.Context, includeUsers bool) (*models.Note, bool) {
	token := c.Param("noteId")

	ref, err := models.ParseNoteToken(token)
	if err != nil {
		r.LogErrorf(logging.GetLogTypeNote(token), "parsing note token failed: %v", err)
		if r.Config.DecodeErrorsAsBadRequest {
			r.Responder.BadRequest(c)
		} else {
			r.Responder.InternalError(c)
		}
		return nil, false
	}

	var found models.Note
	err = r.FindNoteByRef(c.Request.Context(), ref, includeUsers, &found)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		if r.Config.AllowFreeURL && token != "" && !r.isForbidden(token) && r.Creator != nil {
			r.Creator.CreateFreeNote(c, token)
			return nil, false
		}
		r.LogWarnf(logging.GetLogTypeNote(token), "note not found")
		r.Responder.NotFound(c)
		return nil, false
	}
	if err != nil {
		r.LogErrorf(logging.GetLogTypeNote(token), "looking up note failed: %v", err)
		r.Responder.InternalError(c)
		return nil, false
	}

	if !CanViewRequest(c, &found) {
		r.Responder.Forbidden(c, middlewares.IsAuthenticated(c))
		return nil, false
	}
	return &found, true
}

func (r *Resolver) isForbidden(token string) bool {
	_, ok := r.forbidden[token]
	return ok
}
