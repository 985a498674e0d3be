package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

type ServiceRequest struct {
	Name        string  `json:"name"`
	Slug        string  `json:"slug"`
	Description *string `json:"description"`
	Icon        *string `json:"icon"`
	Active      bool    `json:"active"`
}

func (r ServiceRequest) draft() siteadmin.ServiceDraft {
	return siteadmin.ServiceDraft{
		Name:        r.Name,
		Slug:        r.Slug,
		Description: r.Description,
		Icon:        r.Icon,
		Active:      r.Active,
	}
}

// Services handles GET /api/v1/services
// @Summary List services
// @Description Retrieves services ordered by name. Pass active=true to hide inactive ones.
// @Tags services
// @Produce json
// @Param active query bool false "Only active services"
// @Success 200 {object} rest.Response
// @Failure 500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/services [get]
func (h *Handler) Services(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"

	services, err := h.uc.Services(c.Request().Context(), activeOnly)
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, Map(services, NewService))
}

// ServiceByID handles GET /api/v1/services/:id
// @Summary Get service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/services/{id} [get]
func (h *Handler) ServiceByID(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	service, err := h.uc.ServiceByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	if service == nil {
		return fail(c, http.StatusNotFound, "service not found")
	}

	return ok(c, NewService(*service))
}

// CreateService handles POST /api/v1/services
// @Summary Create service
// @Tags services
// @Accept json
// @Produce json
// @Param request body rest.ServiceRequest true "Service payload"
// @Success 201 {object} rest.Response
// @Failure 400,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/services [post]
func (h *Handler) CreateService(c echo.Context) error {
	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	service, err := h.uc.CreateService(c.Request().Context(), req.draft())
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewService(*service))
}

// UpdateService handles PUT /api/v1/services/:id
// @Summary Update service
// @Tags services
// @Accept json
// @Produce json
// @Param id path int true "Service ID"
// @Param request body rest.ServiceRequest true "Service payload"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/services/{id} [put]
func (h *Handler) UpdateService(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req ServiceRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	service, err := h.uc.UpdateService(c.Request().Context(), id, req.draft())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewService(*service))
}

// DeleteService handles DELETE /api/v1/services/:id
// @Summary Delete service
// @Tags services
// @Produce json
// @Param id path int true "Service ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/services/{id} [delete]
func (h *Handler) DeleteService(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteService(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "service deleted")
}
