package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Categories handles GET /api/v1/categories
// @Summary Get all categories
// @Description Retrieves all categories ordered by name
// @Tags categories
// @Produce json
// @Success 200 {array} rest.Category
// @Failure 500 {object} map[string]string
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.manager.Categories(c.Request().Context())
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategories(categories))
}

// CategoryByID handles GET /api/v1/categories/:id
// @Summary Get category by ID
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.Category
// @Failure 400,404,500 {object} map[string]string
// @Router /api/v1/categories/{id} [get]
func (h *Handler) CategoryByID(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category id")
	}

	category, err := h.manager.CategoryByID(c.Request().Context(), id)
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// CategoryBySlug handles GET /api/v1/categories/slug/:slug
// @Summary Get category by slug
// @Tags categories
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} rest.Category
// @Failure 404,500 {object} map[string]string
// @Router /api/v1/categories/slug/{slug} [get]
func (h *Handler) CategoryBySlug(c echo.Context) error {
	category, err := h.manager.CategoryBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create category
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param category body rest.CategoryRequest true "Category"
// @Success 201 {object} rest.Category
// @Failure 400,401,403,409,500 {object} map[string]string
// @Router /api/v1/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.manager.CreateCategory(c.Request().Context(), req.input())
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusCreated, NewCategory(*category))
}

// UpdateCategory handles PUT /api/v1/categories/:id
// @Summary Update category
// @Description Replaces name and description
// @Tags categories
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param category body rest.CategoryRequest true "Category"
// @Success 200 {object} rest.Category
// @Failure 400,401,403,404,409,500 {object} map[string]string
// @Router /api/v1/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category id")
	}

	var req CategoryRequest
	if err := c.Bind(&req); err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.manager.UpdateCategory(c.Request().Context(), id, req.input())
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewCategory(*category))
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete category
// @Description Refused while posts still use the category
// @Tags categories
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Success 200 {object} map[string]string
// @Failure 400,401,403,404,500 {object} map[string]string
// @Router /api/v1/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, err := categoryID(c)
	if err != nil {
		return h.handleError(c, err, http.StatusBadRequest, "invalid category id")
	}

	if err := h.manager.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, map[string]string{"message": "category deleted"})
}

// Tags handles GET /api/v1/tags
// @Summary Get all tags
// @Description Retrieves all tags ordered by name
// @Tags tags
// @Produce json
// @Success 200 {array} rest.Tag
// @Failure 500 {object} map[string]string
// @Router /api/v1/tags [get]
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.manager.Tags(c.Request().Context())
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewTags(tags))
}

// DashboardStats handles GET /api/v1/admin/dashboard/stats
// @Summary Dashboard counters
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} rest.Stats
// @Failure 401,403,500 {object} map[string]string
// @Router /api/v1/admin/dashboard/stats [get]
func (h *Handler) DashboardStats(c echo.Context) error {
	stats, err := h.manager.Stats(c.Request().Context())
	if err != nil {
		return h.handleBlogError(c, err)
	}

	return c.JSON(http.StatusOK, NewStats(*stats))
}
