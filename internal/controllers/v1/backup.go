package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbook/backend/internal/backup"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
	"github.com/spendbook/backend/internal/state"
)

// ErrConfirmRequired is returned when a backup restore is attempted
// without the confirmation parameter.
var ErrConfirmRequired = errors.New("restoring a backup replaces all data, set confirm=true to proceed")

// RegisterBackupRoutes registers the routes for backups with
// the RouterGroup that is passed.
func (co Controller) RegisterBackupRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBackup)
	r.GET("", co.GetBackup)
	r.POST("", co.RestoreBackup)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Backup
// @Success		204
// @Router			/v1/backup [options]
func OptionsBackup(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Export backup
// @Description	Exports the whole state as a downloadable JSON document
// @Tags			Backup
// @Produce		json
// @Success		200
// @Failure		500	{object}	httperror.Error
// @Router			/v1/backup [get]
func (co Controller) GetBackup(c *gin.Context) {
	data, err := backup.Export(co.Store.Snapshot())
	if err != nil {
		c.JSON(http.StatusInternalServerError, httperror.New(err))
		return
	}

	filename := backup.Filename(co.Clock.Now())
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/json", data)
}

// @Summary		Restore backup
// @Description	Validates a backup document and replaces the whole state
// @Description	with it. This is destructive and requires confirm=true.
// @Tags			Backup
// @Accept			json
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Param			confirm	query	string	true	"Must be \"true\""
// @Router			/v1/backup [post]
func (co Controller) RestoreBackup(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, httperror.New(ErrConfirmRequired))
		return
	}

	raw, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	next, err := backup.Import(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	co.Store.Dispatch(state.ReplaceState{Next: next})
	c.Status(http.StatusNoContent)
}
