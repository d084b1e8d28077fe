// Package healthz implements the liveness endpoint.
package healthz

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
	"gorm.io/gorm"
)

// RegisterRoutes registers the health endpoint with the RouterGroup that
// is passed. The database may be nil when remote sync is disabled.
func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	r.OPTIONS("", Options)
	r.GET("", Get(db))
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			General
// @Success		204
// @Router			/healthz [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get health
// @Description	Returns the application health and, if not healthy, an error
// @Tags			General
// @Produce		json
// @Success		204
// @Failure		500	{object}	httperror.Error
// @Router			/healthz [get]
func Get(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if db != nil {
			sqlDB, err := db.DB()
			if err != nil {
				c.JSON(http.StatusInternalServerError, httperror.New(err))
				return
			}

			if err := sqlDB.Ping(); err != nil {
				c.JSON(http.StatusInternalServerError, httperror.New(err))
				return
			}
		}

		c.Status(http.StatusNoContent)
	}
}
