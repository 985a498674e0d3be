package rest

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/db"
	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

type MessageListRequest struct {
	PageRequest
	Status   string `query:"status"`
	Priority string `query:"priority"`
	Source   string `query:"source"`
	Search   string `query:"search"`
}

type SubmitMessageRequest struct {
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Company  *string `json:"company"`
	Subject  string  `json:"subject"`
	Body     string  `json:"body"`
	Priority string  `json:"priority"`
	Source   string  `json:"source"`
}

type MessagePatchRequest struct {
	Status       *string `json:"status"`
	Priority     *string `json:"priority"`
	AssignedToID *int    `json:"assignedToId"`
}

type ReplyRequest struct {
	ReplyContent string `json:"replyContent"`
}

type BulkMessagesRequest struct {
	Action string  `json:"action"`
	IDs    IntList `json:"ids"`
	UserID int     `json:"userId"`
}

// Messages handles GET /api/v1/messages
// @Summary List contact messages
// @Description Retrieves messages with optional status, priority, source and search filters, sorted by createdAt DESC
// @Tags messages
// @Produce json
// @Param status query string false "Filter by status (unread, read, replied, archived)"
// @Param priority query string false "Filter by priority (low, medium, high)"
// @Param source query string false "Filter by source (contact, quote, support, general)"
// @Param search query string false "Case-insensitive search in name, email, subject and body"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Page size (default: 10, max: 100)"
// @Success 200 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages [get]
func (h *Handler) Messages(c echo.Context) error {
	var req MessageListRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request parameters")
	}

	page, limit := siteadmin.NormalizePage(req.Page, req.Limit)
	filter := db.MessageFilter{
		Status: req.Status, Priority: req.Priority,
		Source: req.Source, Search: req.Search,
	}

	ctx := c.Request().Context()
	messages, err := h.uc.Messages(ctx, filter, page, limit)
	if err != nil {
		return h.handleError(c, err)
	}

	total, err := h.uc.MessagesCount(ctx, filter)
	if err != nil {
		return h.handleError(c, err)
	}

	return paged(c, Map(messages, NewMessage), NewPagination(page, limit, total))
}

// MessageByID handles GET /api/v1/messages/:id
// @Summary Get message
// @Description Retrieves a single message with its assignee and replier loaded. Fetching never changes the message.
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages/{id} [get]
func (h *Handler) MessageByID(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	message, err := h.uc.MessageByID(c.Request().Context(), id)
	if err != nil {
		return h.handleError(c, err)
	}
	if message == nil {
		return fail(c, http.StatusNotFound, "message not found")
	}

	return ok(c, NewMessage(*message))
}

// SubmitMessage handles POST /api/v1/messages
// @Summary Submit a contact message
// @Description Public contact form endpoint. Stores the message and notifies the configured admin address.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body rest.SubmitMessageRequest true "Message payload"
// @Success 201 {object} rest.Response
// @Failure 400,500 {object} rest.Response
// @Router /api/v1/messages [post]
func (h *Handler) SubmitMessage(c echo.Context) error {
	var req SubmitMessageRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	message, err := h.uc.SubmitMessage(c.Request().Context(), siteadmin.MessageSubmission{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Company:  req.Company,
		Subject:  req.Subject,
		Body:     req.Body,
		Priority: req.Priority,
		Source:   req.Source,
		Metadata: requestMetadata(c),
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return created(c, NewMessage(*message))
}

// UpdateMessage handles PATCH /api/v1/messages/:id
// @Summary Update message
// @Description Partially updates status, priority and assignee. assignedToId 0 clears the assignee.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param request body rest.MessagePatchRequest true "Fields to change"
// @Success 200 {object} rest.Response
// @Failure 400,404,409,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages/{id} [patch]
func (h *Handler) UpdateMessage(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req MessagePatchRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	message, err := h.uc.UpdateMessage(c.Request().Context(), id, siteadmin.MessagePatch{
		Status:       req.Status,
		Priority:     req.Priority,
		AssignedToID: req.AssignedToID,
	})
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewMessage(*message))
}

// ReplyToMessage handles POST /api/v1/messages/:id/reply
// @Summary Reply to a message
// @Description Records the reply, emails it to the sender and moves the message to status "replied". A failed email delivery does not undo the reply.
// @Tags messages
// @Accept json
// @Produce json
// @Param id path int true "Message ID"
// @Param request body rest.ReplyRequest true "Reply content"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages/{id}/reply [post]
func (h *Handler) ReplyToMessage(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	var req ReplyRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}

	message, err := h.uc.ReplyToMessage(c.Request().Context(), id, req.ReplyContent, sessionUserID(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewMessage(*message))
}

// DeleteMessage handles DELETE /api/v1/messages/:id
// @Summary Delete message
// @Tags messages
// @Produce json
// @Param id path int true "Message ID"
// @Success 200 {object} rest.Response
// @Failure 400,404,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages/{id} [delete]
func (h *Handler) DeleteMessage(c echo.Context) error {
	id, valid := pathID(c)
	if !valid {
		return fail(c, http.StatusBadRequest, "invalid id")
	}

	if err := h.uc.DeleteMessage(c.Request().Context(), id); err != nil {
		return h.handleError(c, err)
	}

	return okMessage(c, nil, "message deleted")
}

// BulkMessages handles POST /api/v1/messages/bulk
// @Summary Bulk message operation
// @Description Applies one action (markRead, markUnread, archive, assign or delete) to the given message ids. The delete action requires the admin role; assign takes the assignee in userId.
// @Tags messages
// @Accept json
// @Produce json
// @Param request body rest.BulkMessagesRequest true "Action and message ids"
// @Success 200 {object} rest.Response
// @Failure 400,403,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages/bulk [post]
func (h *Handler) BulkMessages(c echo.Context) error {
	var req BulkMessagesRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request body")
	}
	if len(req.IDs) == 0 {
		return fail(c, http.StatusBadRequest, "ids list is empty")
	}

	ctx := c.Request().Context()

	var affected int
	var err error
	switch req.Action {
	case "markRead":
		affected, err = h.uc.BulkSetMessageStatus(ctx, req.IDs, db.MessageStatusRead)
	case "markUnread":
		affected, err = h.uc.BulkSetMessageStatus(ctx, req.IDs, db.MessageStatusUnread)
	case "archive":
		affected, err = h.uc.BulkSetMessageStatus(ctx, req.IDs, db.MessageStatusArchived)
	case "assign":
		affected, err = h.uc.BulkAssignMessages(ctx, req.IDs, req.UserID)
	case "delete":
		if sessionRole(c) != db.RoleAdmin {
			return fail(c, http.StatusForbidden, "admin role required")
		}
		affected, err = h.uc.BulkDeleteMessages(ctx, req.IDs)
	default:
		return fail(c, http.StatusBadRequest, "unknown bulk action")
	}
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, BulkResult{Affected: affected})
}

// MessageStats handles GET /api/v1/messages/stats
// @Summary Message statistics
// @Description Returns totals by status, priority and source plus the latest messages
// @Tags messages
// @Produce json
// @Success 200 {object} rest.Response
// @Failure 500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages/stats [get]
func (h *Handler) MessageStats(c echo.Context) error {
	stats, err := h.uc.MessageStats(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewMessageStats(*stats))
}

// ExportMessages handles GET /api/v1/messages/export
// @Summary Export messages
// @Description Streams every message matching the filters as a CSV attachment
// @Tags messages
// @Produce text/csv
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param source query string false "Filter by source"
// @Param search query string false "Search in name, email, subject and body"
// @Param format query string false "csv (default) or json"
// @Success 200 {string} string "CSV document"
// @Failure 400,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/messages/export [get]
func (h *Handler) ExportMessages(c echo.Context) error {
	var req MessageListRequest
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid request parameters")
	}

	filter := db.MessageFilter{
		Status: req.Status, Priority: req.Priority,
		Source: req.Source, Search: req.Search,
	}

	if c.QueryParam("format") == "json" {
		messages, err := h.uc.AllMessages(c.Request().Context(), filter)
		if err != nil {
			return h.handleError(c, err)
		}
		return ok(c, Map(messages, NewMessage))
	}

	data, err := h.uc.ExportMessages(c.Request().Context(), filter)
	if err != nil {
		return h.handleError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, exportFilename("messages"))
	return c.Blob(http.StatusOK, "text/csv", data)
}
