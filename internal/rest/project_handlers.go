package rest

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

type ProjectRequest struct {
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	CoverImage    *string   `json:"coverImage"`
	Logo          *string   `json:"logo"`
	Description   string    `json:"description"`
	ClientName    string    `json:"clientName"`
	ServiceIDs    IntList   `json:"serviceIds"`
	CompletedDate time.Time `json:"completedDate"`
	Location      string    `json:"location"`
	Content       string    `json:"content"`
}

func (r ProjectRequest) draft() siteadmin.ProjectDraft {
	return siteadmin.ProjectDraft{
		Title:         r.Title,
		Slug:          r.Slug,
		CoverImage:    r.CoverImage,
		Logo:          r.Logo,
		Description:   r.Description,
		ClientName:    r.ClientName,
		ServiceIDs:    r.ServiceIDs,
		CompletedDate: r.CompletedDate,
		Location:      r.Location,
		Content:       r.Content,
	}
}

// Projects handles GET /api/v1/projects
// @Summary List projects
// @Description Retrieves portfolio projects sorted by createdAt DESC with resolved services
// @Tags projects
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/projects [get]
func (h *Handler) Projects(c echo.Context) error {
	var req PageRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request parameters")
	}

	page, limit := siteadmin.NormalizePage(req.Page, req.Limit)

	ctx := c.Request().Context()
	projects, err := h.uc.Projects(ctx, page, limit)
	if err != nil {
		return h.handleError(c, err)
	}

	total, err := h.uc.ProjectsCount(ctx)
	if err != nil {
		return h.handleError(c, err)
	}

	return paged(c, Map(projects, NewProject), NewPagination(page, limit, total))
}

// ProjectByID handles GET /api/v1/projects/:id
// @Summary Get project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/projects/{id} [get]
func (h *Handler) ProjectByID(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	project, err := h.uc.ProjectByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	if project == nil {
		return fail(c, http.StatusNotFound, "project not found")
	}

	return ok(c, NewProject(*project))
}

// CreateProject handles POST /api/v1/projects
// @Summary Create project
// @Tags projects
// @Accept json
// @Produce json
// @Param request body rest.ProjectRequest true "Project payload"
// @Success 201 {object} rest.Response
// @Failure 400,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/projects [post]
func (h *Handler) CreateProject(c echo.Context) error {
	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	project, err := h.uc.CreateProject(c.Request().Context(), req.draft())
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewProject(*project))
}

// UpdateProject handles PUT /api/v1/projects/:id
// @Summary Update project
// @Tags projects
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body rest.ProjectRequest true "Project payload"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/projects/{id} [put]
func (h *Handler) UpdateProject(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req ProjectRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	project, err := h.uc.UpdateProject(c.Request().Context(), id, req.draft())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewProject(*project))
}

// DeleteProject handles DELETE /api/v1/projects/:id
// @Summary Delete project
// @Tags projects
// @Produce json
// @Param id path int true "Project ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/projects/{id} [delete]
func (h *Handler) DeleteProject(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteProject(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "project deleted")
}
