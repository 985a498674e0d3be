package rest

import (
	"github.com/labstack/echo/v4"
)

// AnalyticsOverview handles GET /api/v1/analytics/overview
// @Summary Dashboard analytics overview
// @Description Combines subscriber and message aggregations with derived engagement, response and growth rates over the selected time range. Admin only.
// @Tags analytics
// @Produce json
// @Param timeRange query string false "7d, 30d (default), 90d or 1y"
// @Success 200 {object} rest.Response
// @Failure 401,403,500 {object} rest.Response
// @Security BearerAuth
// @Router /api/v1/analytics/overview [get]
func (h *Handler) AnalyticsOverview(c echo.Context) error {
	overview, err := h.uc.AnalyticsOverview(c.Request().Context(), c.QueryParam("timeRange"))
	if err != nil {
		return h.handleError(c, err)
	}

	return ok(c, NewAnalyticsOverview(*overview))
}
