package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
)

// ErrUserIDMissing is returned when a session is created without a user id.
var ErrUserIDMissing = errors.New("the X-User-ID header must be set")

// RegisterSessionRoutes registers the routes for sessions with
// the RouterGroup that is passed.
func (co Controller) RegisterSessionRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSession)
	r.POST("", co.CreateSession)
	r.DELETE("", co.DeleteSession)
}

type SessionResponse struct {
	Data SessionData `json:"data"`
}

type SessionData struct {
	UserID string `json:"userId"` // The opaque user id the session is bound to
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Sessions
// @Success		204
// @Router			/v1/sessions [options]
func OptionsSession(c *gin.Context) {
	httputil.OptionsPostDelete(c)
}

// @Summary		Log in
// @Description	Binds the session to a user. The user's remote snapshot
// @Description	replaces the in-memory state before any further action is
// @Description	applied. The user id is opaque, credentials are handled by
// @Description	the authentication provider in front of this API.
// @Tags			Sessions
// @Produce		json
// @Success		201	{object}	SessionResponse
// @Failure		400	{object}	httperror.Error
// @Failure		503	{object}	httperror.Error
// @Param			X-User-ID	header	string	true	"Opaque user id"
// @Router			/v1/sessions [post]
func (co Controller) CreateSession(c *gin.Context) {
	if co.Session == nil {
		c.JSON(http.StatusServiceUnavailable, httperror.New(ErrSyncUnavailable))
		return
	}

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusBadRequest, httperror.New(ErrUserIDMissing))
		return
	}

	co.Session.Login(c.Request.Context(), userID)
	c.JSON(http.StatusCreated, SessionResponse{Data: SessionData{UserID: userID}})
}

// @Summary		Log out
// @Description	Unbinds the session. A pending remote save is cancelled.
// @Tags			Sessions
// @Success		204
// @Failure		503	{object}	httperror.Error
// @Router			/v1/sessions [delete]
func (co Controller) DeleteSession(c *gin.Context) {
	if co.Session == nil {
		c.JSON(http.StatusServiceUnavailable, httperror.New(ErrSyncUnavailable))
		return
	}

	co.Session.Logout()
	c.Status(http.StatusNoContent)
}
