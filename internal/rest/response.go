package rest

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/site-admin/internal/siteadmin"
)

// Response is the envelope every JSON endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

func NewPagination(page, limit, total int) *Pagination {
	return &Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: siteadmin.TotalPages(total, limit),
	}
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data})
}

func okMessage(c echo.Context, data interface{}, message string) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Message: message})
}

func created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, Response{Success: true, Data: data})
}

func paged(c echo.Context, data interface{}, p *Pagination) error {
	return c.JSON(http.StatusOK, Response{Success: true, Data: data, Pagination: p})
}

func fail(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{Success: false, Error: message})
}

// exportFilename builds the attachment disposition for a dated CSV export.
func exportFilename(resource string) string {
	return fmt.Sprintf(`attachment; filename="%s-%s.csv"`,
		resource, time.Now().Format("2006-01-02"))
}

// handleError maps domain errors onto HTTP statuses. Unexpected errors
// are logged and answered with a generic 500.
func (h *Handler) handleError(c echo.Context, err error) error {
	var validation siteadmin.ValidationError

	switch {
	case errors.As(err, &validation):
		return fail(c, http.StatusBadRequest, validation.Error())
	case errors.Is(err, siteadmin.ErrNotFound):
		return fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, siteadmin.ErrConflict):
		return fail(c, http.StatusConflict, "conflicts with existing data")
	case errors.Is(err, siteadmin.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "invalid email or password")
	case errors.Is(err, siteadmin.ErrNoRecipients):
		return fail(c, http.StatusBadRequest, "no active subscribers to send to")
	}

	h.log.Error("request failed",
		"error", err, "method", c.Request().Method, "path", c.Path())

	return fail(c, http.StatusInternalServerError, "internal error")
}
