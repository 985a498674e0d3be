package rest

import (
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/db"
	"github.com/daniilsolovey/site-admin/internal/metrics"
	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

type SubscriberListRequest struct {
	PageRequest
	Status string `query:"status"`
	Source string `query:"source"`
	Search string `query:"search"`
}

type SubscribeRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type SubscriberRequest struct {
	Email  string     `json:"email"`
	Name   string     `json:"name"`
	Status string     `json:"status"`
	Tags   StringList `json:"tags"`
}

type ImportRequest struct {
	Subscribers []SubscribeRequest `json:"subscribers"`
}

type BulkSubscribersRequest struct {
	Action string     `json:"action"`
	Emails StringList `json:"emails"`
	Status *string    `json:"status"`
	Name   *string    `json:"name"`
	Tags   StringList `json:"tags"`
}

type CampaignRequest struct {
	Subject       string  `json:"subject"`
	HTML          string  `json:"html"`
	Status        string  `json:"status"`
	SubscriberIDs IntList `json:"subscriberIds"`
}

func requestMetadata(c echo.Context) *db.RequestMetadata {
	return &db.RequestMetadata{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
		Referrer:  c.Request().Referer(),
	}
}

// Subscribers handles GET /api/v1/newsletter
// @Summary List subscribers
// @Description Retrieves subscribers with optional status, source and search filters, sorted by subscribedAt DESC
// @Tags newsletter
// @Produce json
// @Param status query string false "Filter by status (active, unsubscribed, bounced)"
// @Param source query string false "Filter by source (website, admin, import)"
// @Param search query string false "Case-insensitive search in email and name"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter [get]
func (h *Handler) Subscribers(c echo.Context) error {
	var req SubscriberListRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request parameters")
	}

	page, limit := siteadmin.NormalizePage(req.Page, req.Limit)
	filter := db.SubscriberFilter{Status: req.Status, Source: req.Source, Search: req.Search}

	ctx := c.Request().Context()
	subscribers, err := h.uc.Subscribers(ctx, filter, page, limit)
	if err != nil {
		return h.handleError(c, err)
	}

	total, err := h.uc.SubscribersCount(ctx, filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return paged(c, Map(subscribers, NewSubscriber), NewPagination(page, limit, total))
}

// Subscribe handles POST /api/v1/newsletter
// @Summary Subscribe to the newsletter
// @Description Public signup. A previously unsubscribed address is reactivated; an active one answers 409.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body rest.SubscribeRequest true "Email and optional name"
// @Success 201 {object} rest.Response
// @Failure 400,409,500 {object} rest.Response
// @Router /api/v1/newsletter [post]
func (h *Handler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	subscriber, err := h.uc.Subscribe(c.Request().Context(), req.Email, req.Name, requestMetadata(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewSubscriber(*subscriber))
}

// CreateSubscriber handles POST /api/v1/newsletter/subscribers
// @Summary Add subscriber
// @Description Adds a subscriber from the admin panel with source "admin"
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body rest.SubscriberRequest true "Subscriber payload"
// @Success 201 {object} rest.Response
// @Failure 400,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/subscribers [post]
func (h *Handler) CreateSubscriber(c echo.Context) error {
	var req SubscriberRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	subscriber, err := h.uc.CreateSubscriber(c.Request().Context(), siteadmin.SubscriberDraft{
		Email:  req.Email,
		Name:   req.Name,
		Status: req.Status,
		Tags:   req.Tags,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewSubscriber(*subscriber))
}

// UpdateSubscriber handles PUT /api/v1/newsletter/subscribers/:id
// @Summary Update subscriber
// @Description Updates a subscriber. Moving to unsubscribed stamps unsubscribedAt once.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param id path int true "Subscriber ID"
// @Param request body rest.SubscriberRequest true "Subscriber payload"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/subscribers/{id} [put]
func (h *Handler) UpdateSubscriber(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req SubscriberRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	subscriber, err := h.uc.UpdateSubscriber(c.Request().Context(), id, siteadmin.SubscriberDraft{
		Email:  req.Email,
		Name:   req.Name,
		Status: req.Status,
		Tags:   req.Tags,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewSubscriber(*subscriber))
}

// DeleteSubscriber handles DELETE /api/v1/newsletter/subscribers/:id
// @Summary Delete subscriber
// @Tags newsletter
// @Produce json
// @Param id path int true "Subscriber ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/subscribers/{id} [delete]
func (h *Handler) DeleteSubscriber(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteSubscriber(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "subscriber deleted")
}

// ImportSubscribers handles POST /api/v1/newsletter/import
// @Summary Import subscribers
// @Description Bulk inserts subscribers with source "import". Existing emails and invalid rows are skipped.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body rest.ImportRequest true "Subscribers to import"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/import [post]
func (h *Handler) ImportSubscribers(c echo.Context) error {
	var req ImportRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if len(req.Subscribers) == 0 {
		return fail(c, http.StatusBadRequest, "subscribers list is empty")
	}

	entries := Map(req.Subscribers, func(s SubscribeRequest) siteadmin.SubscriberImport {
		return siteadmin.SubscriberImport{Email: s.Email, Name: s.Name}
	})

	added, skipped, err := h.uc.ImportSubscribers(c.Request().Context(), entries)
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, ImportResult{Added: added, Skipped: skipped})
}

// BulkSubscribers handles POST /api/v1/newsletter/bulk
// @Summary Bulk subscriber operation
// @Description Applies one action (subscribe, unsubscribe, update or delete) to the given emails. The update action takes status, name and tags; delete requires the admin role.
// @Tags newsletter
// @Accept json
// @Produce json
// @Param request body rest.BulkSubscribersRequest true "Action and emails"
// @Success 200 {object} rest.Response
// @Failure 400,403,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/bulk [post]
func (h *Handler) BulkSubscribers(c echo.Context) error {
	var req BulkSubscribersRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if len(req.Emails) == 0 {
		return fail(c, http.StatusBadRequest, "emails list is empty")
	}

	ctx := c.Request().Context()

	var affected int
	var err error
	switch req.Action {
	case "subscribe":
		affected, err = h.uc.BulkSubscribe(ctx, req.Emails)
	case "unsubscribe":
		affected, err = h.uc.BulkUnsubscribe(ctx, req.Emails)
	case "update":
		patch := db.SubscriberPatch{Status: req.Status, Name: req.Name}
		if req.Tags != nil {
			patch.Tags = req.Tags
		}
		affected, err = h.uc.BulkUpdateSubscribers(ctx, req.Emails, patch)
	case "delete":
		if sessionRole(c) != db.RoleAdmin {
			return fail(c, http.StatusForbidden, "admin role required")
		}
		affected, err = h.uc.BulkDeleteSubscribers(ctx, req.Emails)
	default:
		return fail(c, http.StatusBadRequest, "unknown bulk action")
	}
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, BulkResult{Affected: affected})
}

// SubscriberStats handles GET /api/v1/newsletter/stats
// @Summary Subscriber statistics
// @Description Returns totals by status and source plus the latest signups
// @Tags newsletter
// @Produce json
// @Success 200 {object} rest.Response
// @Failure 500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/stats [get]
func (h *Handler) SubscriberStats(c echo.Context) error {
	stats, err := h.uc.SubscriberStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewSubscriberStats(*stats))
}

// ExportSubscribers handles GET /api/v1/newsletter/export
// @Summary Export subscribers
// @Description Streams every subscriber matching the filters as a CSV attachment
// @Tags newsletter
// @Produce text/csv
// @Param status query string false "Filter by status"
// @Param source query string false "Filter by source"
// @Param search query string false "Search in email and name"
// @Param format query string false "csv (default) or json"
// @Success 200 {string} string "CSV document"
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/export [get]
func (h *Handler) ExportSubscribers(c echo.Context) error {
	var req SubscriberListRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request parameters")
	}

	filter := db.SubscriberFilter{Status: req.Status, Source: req.Source, Search: req.Search}

	if c.QueryParam("format") == "json" {
		subscribers, err := h.uc.AllSubscribers(c.Request().Context(), filter)
		if err != nil {
			return h.handleError(c, err)
		}
		return ok(c, Map(subscribers, NewSubscriber))
	}

	data, err := h.uc.ExportSubscribers(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, exportFilename("subscribers"))
	return c.Blob(http.StatusOK, "text/csv", data)
}

// SendCampaign handles POST /api/v1/newsletter/send
// @Summary Send a newsletter campaign
// @Description Sends an HTML email to the selected subscribers, or to every subscriber with the requested status (default active) when no ids are given. Accepts JSON or a multipart form carrying the HTML inline or as an "html" file.
// @Tags newsletter
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body rest.CampaignRequest true "Campaign payload"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/newsletter/send [post]
func (h *Handler) SendCampaign(c echo.Context) error {
	campaign, err := h.bindCampaign(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, err.Error())
	}

	result, err := h.uc.SendCampaign(c.Request().Context(), *campaign)
	if err != nil {
		if result != nil {
			// Cancelled mid-run: report what was delivered so far.
			metrics.RecordCampaignResult(result.Sent, len(result.Failed))
		}
		return h.handleError(c, err)
	}

	metrics.RecordCampaignResult(result.Sent, len(result.Failed))

	return ok(c, NewCampaignResult(*result))
}

// bindCampaign reads a campaign from a JSON body, or from a multipart
// form where the HTML document arrives as a file upload.
func (h *Handler) bindCampaign(c echo.Context) (*siteadmin.Campaign, error) {
	contentType := c.Request().Header.Get(echo.HeaderContentType)

	if !isMultipart(contentType) {
		var req CampaignRequest
		if err := c.Bind(&req); err != nil {
			return nil, errors.New("invalid request body")
		}
		return &siteadmin.Campaign{
			Subject:       req.Subject,
			HTML:          req.HTML,
			Status:        req.Status,
			SubscriberIDs: req.SubscriberIDs,
		}, nil
	}

	// The HTML document may arrive as a file upload or as an inline
	// form value; the file wins when both are present.
	html := c.FormValue("html")
	if file, err := c.FormFile("html"); err == nil {
		if file.Size > h.campaign.MaxHTMLBytes() {
			return nil, errors.New("html file too large")
		}

		src, err := file.Open()
		if err != nil {
			return nil, errors.New("cannot read html file")
		}
		defer src.Close()

		data, err := io.ReadAll(io.LimitReader(src, h.campaign.MaxHTMLBytes()))
		if err != nil {
			return nil, errors.New("cannot read html file")
		}
		html = string(data)
	} else if html == "" {
		return nil, errors.New("html content is required")
	}

	var ids IntList
	if raw := c.FormValue("subscriberIds"); raw != "" {
		if err := ids.UnmarshalJSON([]byte(`"` + raw + `"`)); err != nil {
			return nil, errors.New("invalid subscriberIds")
		}
	}

	return &siteadmin.Campaign{
		Subject:       c.FormValue("subject"),
		HTML:          html,
		Status:        c.FormValue("status"),
		SubscriberIDs: ids,
	}, nil
}

func isMultipart(contentType string) bool {
	return len(contentType) >= 19 && contentType[:19] == "multipart/form-data"
}
