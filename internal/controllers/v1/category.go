package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spendbook/backend/internal/httperror"
	"github.com/spendbook/backend/internal/httputil"
	"github.com/spendbook/backend/internal/models"
	"github.com/spendbook/backend/internal/state"
)

// RegisterCategoryRoutes registers the routes for categories with
// the RouterGroup that is passed.
func (co Controller) RegisterCategoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:month/categories", OptionsCategoryList)
	r.POST("/:month/categories", co.CreateCategory)

	r.OPTIONS("/:month/categories/:id", OptionsCategoryDetail)
	r.PATCH("/:month/categories/:id", co.UpdateCategory)
	r.DELETE("/:month/categories/:id", co.DeleteCategory)
}

type CategoryEditable struct {
	Name    string `json:"name" example:"groceries"` // Name of the category
	Planned string `json:"planned" example:"15000"`  // Amount planned for the month
}

type CategoryResponse struct {
	Data models.Category `json:"data"`
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/months/{month}/categories [options]
func OptionsCategoryList(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Categories
// @Success		204
// @Router			/v1/months/{month}/categories/{id} [options]
func OptionsCategoryDetail(c *gin.Context) {
	httputil.OptionsPatchDelete(c)
}

// @Summary		Add category
// @Description	Adds a spending category to the month
// @Tags			Categories
// @Accept			json
// @Produce		json
// @Success		201			{object}	CategoryResponse
// @Failure		400			{object}	httperror.Error
// @Param			month		path		string				true	"The month in YYYY-MM format"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/months/{month}/categories [post]
func (co Controller) CreateCategory(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(ErrNameEmpty))
		return
	}

	if editable.Planned == "" {
		editable.Planned = "0"
	}
	planned, ok := parseAmount(c, editable.Planned)
	if !ok {
		return
	}

	s := co.Store.Dispatch(state.AddCategory{
		Month:   month,
		Name:    editable.Name,
		Planned: planned,
	})

	c.JSON(http.StatusCreated, CategoryResponse{Data: s.Months[month].Categories[0]})
}

// @Summary		Update category
// @Description	Renames and replans a category. Updating an id that does not exist is not an error.
// @Tags			Categories
// @Accept			json
// @Success		204
// @Failure		400			{object}	httperror.Error
// @Param			month		path		string				true	"The month in YYYY-MM format"
// @Param			id			path		string				true	"ID of the category"
// @Param			category	body		CategoryEditable	true	"Category"
// @Router			/v1/months/{month}/categories/{id} [patch]
func (co Controller) UpdateCategory(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	var editable CategoryEditable
	if err := httputil.BindData(c, &editable); err != nil {
		c.JSON(http.StatusBadRequest, httperror.New(err))
		return
	}

	if strings.TrimSpace(editable.Name) == "" {
		c.JSON(http.StatusBadRequest, httperror.New(ErrNameEmpty))
		return
	}

	if editable.Planned == "" {
		editable.Planned = "0"
	}
	planned, ok := parseAmount(c, editable.Planned)
	if !ok {
		return
	}

	co.Store.Dispatch(state.UpdateCategory{
		Month:   month,
		ID:      c.Param("id"),
		Name:    editable.Name,
		Planned: planned,
	})

	c.Status(http.StatusNoContent)
}

// @Summary		Delete category
// @Description	Removes a category and every expense of the month that
// @Description	references it. Deleting an id that does not exist is not an error.
// @Tags			Categories
// @Success		204
// @Failure		400	{object}	httperror.Error
// @Param			month	path	string	true	"The month in YYYY-MM format"
// @Param			id		path	string	true	"ID of the category"
// @Router			/v1/months/{month}/categories/{id} [delete]
func (co Controller) DeleteCategory(c *gin.Context) {
	month, ok := monthParam(c)
	if !ok {
		return
	}

	co.Store.Dispatch(state.DeleteCategory{Month: month, ID: c.Param("id")})
	c.Status(http.StatusNoContent)
}
