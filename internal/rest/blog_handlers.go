package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/db"
	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

type BlogPostListRequest struct {
	PageRequest
	Status   string `query:"status"`
	Category int    `query:"category"`
	Search   string `query:"search"`
}

type BlogPostRequest struct {
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         string     `json:"excerpt"`
	CoverImage      *string    `json:"coverImage"`
	Published       bool       `json:"published"`
	Status          string     `json:"status"`
	CategoryID      int        `json:"categoryId"`
	TagIDs          IntList    `json:"tagIds"`
	MetaTitle       *string    `json:"metaTitle"`
	MetaDescription *string    `json:"metaDescription"`
	SeoKeywords     StringList `json:"seoKeywords"`
}

func (r BlogPostRequest) draft() siteadmin.BlogPostDraft {
	return siteadmin.BlogPostDraft{
		Title:           r.Title,
		Slug:            r.Slug,
		Content:         r.Content,
		Excerpt:         r.Excerpt,
		CoverImage:      r.CoverImage,
		Published:       r.Published,
		Status:          r.Status,
		CategoryID:      r.CategoryID,
		TagIDs:          r.TagIDs,
		MetaTitle:       r.MetaTitle,
		MetaDescription: r.MetaDescription,
		SeoKeywords:     r.SeoKeywords,
	}
}

// BlogPosts handles GET /api/v1/blogposts
// @Summary List blog posts
// @Description Retrieves blog posts with optional status, category and search filters, sorted by createdAt DESC. List items omit content.
// @Tags blogposts
// @Produce json
// @Param status query string false "Filter by status (draft, published, archived)"
// @Param category query int false "Filter by category ID"
// @Param search query string false "Case-insensitive search in title and content"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/blogposts [get]
func (h *Handler) BlogPosts(c echo.Context) error {
	var req BlogPostListRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request parameters")
	}

	page, limit := siteadmin.NormalizePage(req.Page, req.Limit)
	filter := db.BlogPostFilter{Status: req.Status, Category: req.Category, Search: req.Search}

	ctx := c.Request().Context()
	posts, err := h.uc.BlogPosts(ctx, filter, page, limit)
	if err != nil {
		return h.handleError(c, err)
	}

	total, err := h.uc.BlogPostsCount(ctx, filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return paged(c, Map(posts, NewBlogPostSummary), NewPagination(page, limit, total))
}

// BlogPostByID handles GET /api/v1/blogposts/:id
// @Summary Get blog post
// @Description Retrieves a single blog post with full content, category and tags
// @Tags blogposts
// @Produce json
// @Param id path int true "Blog post ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/blogposts/{id} [get]
func (h *Handler) BlogPostByID(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	post, err := h.uc.BlogPostByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	if post == nil {
		return fail(c, http.StatusNotFound, "blog post not found")
	}

	return ok(c, NewBlogPost(*post))
}

// CreateBlogPost handles POST /api/v1/blogposts
// @Summary Create blog post
// @Description Creates a blog post. Slug is derived from the title and excerpt from the content when not provided.
// @Tags blogposts
// @Accept json
// @Produce json
// @Param request body rest.BlogPostRequest true "Blog post payload"
// @Success 201 {object} rest.Response
// @Failure 400,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/blogposts [post]
func (h *Handler) CreateBlogPost(c echo.Context) error {
	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.uc.CreateBlogPost(c.Request().Context(), req.draft())
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewBlogPost(*post))
}

// UpdateBlogPost handles PUT /api/v1/blogposts/:id
// @Summary Update blog post
// @Description Replaces the writable fields of a blog post. publishedAt is set on the first publish and kept afterwards.
// @Tags blogposts
// @Accept json
// @Produce json
// @Param id path int true "Blog post ID"
// @Param request body rest.BlogPostRequest true "Blog post payload"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/blogposts/{id} [put]
func (h *Handler) UpdateBlogPost(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req BlogPostRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	post, err := h.uc.UpdateBlogPost(c.Request().Context(), id, req.draft())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewBlogPost(*post))
}

// TogglePublish handles PATCH /api/v1/blogposts/:id/publish
// @Summary Toggle publish state
// @Description Flips a post between published and draft
// @Tags blogposts
// @Produce json
// @Param id path int true "Blog post ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/blogposts/{id}/publish [patch]
func (h *Handler) TogglePublish(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	post, err := h.uc.TogglePublish(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewBlogPost(*post))
}

// DeleteBlogPost handles DELETE /api/v1/blogposts/:id
// @Summary Delete blog post
// @Tags blogposts
// @Produce json
// @Param id path int true "Blog post ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/blogposts/{id} [delete]
func (h *Handler) DeleteBlogPost(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteBlogPost(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "blog post deleted")
}

// BlogPostStats handles GET /api/v1/blogposts/stats
// @Summary Blog post statistics
// @Description Returns totals, published and draft counts and the view sum
// @Tags blogposts
// @Produce json
// @Success 200 {object} rest.Response
// @Failure 500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/blogposts/stats [get]
func (h *Handler) BlogPostStats(c echo.Context) error {
	stats, err := h.uc.BlogPostStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewBlogPostStats(*stats))
}
