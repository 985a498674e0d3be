package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"method", "path", "status"},
	)

	CampaignEmailCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "campaign_email_count",
			Help: "Total number of campaign emails attempted",
		},
		[]string{"status"}, // status: sent, failed
	)

	UploadCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "image_upload_count",
			Help: "Total number of image uploads",
		},
		[]string{"status"}, // status: success, failed
	)
)

// RecordCampaignResult bumps the campaign counters after a run.
func RecordCampaignResult(sent, failed int) {
	CampaignEmailCount.WithLabelValues("sent").Add(float64(sent))
	CampaignEmailCount.WithLabelValues("failed").Add(float64(failed))
}

func RecordUpload(success bool) {
	status := "success"
	if !success {
		status = "failed"
	}
	UploadCount.WithLabelValues(status).Inc()
}

// Middleware records request durations per route. The route template is
// used as the path label so ids do not explode cardinality.
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if httpErr, ok := err.(*echo.HTTPError); ok {
					status = httpErr.Code
				} else {
					status = http.StatusInternalServerError
				}
			}

			path := c.Path()
			if path == "" {
				path = c.Request().URL.Path
			}

			HTTPRequestDuration.
				WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())

			return err
		}
	}
}

// Handler exposes the Prometheus scrape endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
