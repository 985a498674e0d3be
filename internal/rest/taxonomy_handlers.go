package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type NameRequest struct {
	Name string `json:"name"`
}

// Categories handles GET /api/v1/categories
// @Summary List categories
// @Description Retrieves all blog categories ordered by name
// @Tags taxonomy
// @Produce json
// @Success 200 {object} rest.Response
// @Failure 500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/categories [get]
func (h *Handler) Categories(c echo.Context) error {
	categories, err := h.uc.Categories(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, Map(categories, NewCategory))
}

// CreateCategory handles POST /api/v1/categories
// @Summary Create category
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param request body rest.NameRequest true "Category name"
// @Success 201 {object} rest.Response
// @Failure 400,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/categories [post]
func (h *Handler) CreateCategory(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.uc.CreateCategory(c.Request().Context(), req.Name)
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewCategory(*category))
}

// UpdateCategory handles PUT /api/v1/categories/:id
// @Summary Rename category
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param request body rest.NameRequest true "Category name"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/categories/{id} [put]
func (h *Handler) UpdateCategory(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	category, err := h.uc.UpdateCategory(c.Request().Context(), id, req.Name)
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewCategory(*category))
}

// DeleteCategory handles DELETE /api/v1/categories/:id
// @Summary Delete category
// @Description Deletes a category. Categories still referenced by blog posts answer 409.
// @Tags taxonomy
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/categories/{id} [delete]
func (h *Handler) DeleteCategory(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteCategory(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "category deleted")
}

// Tags handles GET /api/v1/tags
// @Summary List tags
// @Description Retrieves all blog tags ordered by name
// @Tags taxonomy
// @Produce json
// @Success 200 {object} rest.Response
// @Failure 500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/tags [get]
func (h *Handler) Tags(c echo.Context) error {
	tags, err := h.uc.Tags(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, Map(tags, NewTag))
}

// CreateTag handles POST /api/v1/tags
// @Summary Create tag
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param request body rest.NameRequest true "Tag name"
// @Success 201 {object} rest.Response
// @Failure 400,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/tags [post]
func (h *Handler) CreateTag(c echo.Context) error {
	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	tag, err := h.uc.CreateTag(c.Request().Context(), req.Name)
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewTag(*tag))
}

// UpdateTag handles PUT /api/v1/tags/:id
// @Summary Rename tag
// @Tags taxonomy
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param request body rest.NameRequest true "Tag name"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/tags/{id} [put]
func (h *Handler) UpdateTag(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req NameRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	tag, err := h.uc.UpdateTag(c.Request().Context(), id, req.Name)
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewTag(*tag))
}

// DeleteTag handles DELETE /api/v1/tags/:id
// @Summary Delete tag
// @Tags taxonomy
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/tags/{id} [delete]
func (h *Handler) DeleteTag(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteTag(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "tag deleted")
}
