package siteadmin

import (
	"context"
	"math"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

// NewsletterAnalytics is the subscriber side of the dashboard overview.
type NewsletterAnalytics struct {
	SubscriberStats
	NewSubscribers int
}

// MessageAnalytics is the inbox side of the dashboard overview.
type MessageAnalytics struct {
	MessageStats
	NewMessages int
}

// AnalyticsMetrics are the derived dashboard ratios, in percent.
type AnalyticsMetrics struct {
	EngagementRate    float64
	ResponseRate      float64
	TotalInteractions int
	GrowthRate        float64
}

// AnalyticsOverview combines subscriber and message aggregations for the
// dashboard. The "new" counters cover the selected time range.
type AnalyticsOverview struct {
	TimeRange   string
	Newsletter  NewsletterAnalytics
	Messages    MessageAnalytics
	Metrics     AnalyticsMetrics
	LastUpdated time.Time
}

// analyticsWindow maps a time range name onto its duration. Unknown
// values fall back to 30 days.
func analyticsWindow(timeRange string) (string, time.Duration) {
	const day = 24 * time.Hour

	switch timeRange {
	case "7d":
		return "7d", 7 * day
	case "90d":
		return "90d", 90 * day
	case "1y":
		return "1y", 365 * day
	default:
		return "30d", 30 * day
	}
}

// AnalyticsOverview builds the dashboard overview for the given time
// range ("7d", "30d", "90d" or "1y").
func (m *Manager) AnalyticsOverview(ctx context.Context, timeRange string) (*AnalyticsOverview, error) {
	window, span := analyticsWindow(timeRange)
	since := time.Now().Add(-span)

	subscriberStats, err := m.SubscriberStats(ctx)
	if err != nil {
		return nil, err
	}
	messageStats, err := m.MessageStats(ctx)
	if err != nil {
		return nil, err
	}

	newSubscribers, err := m.db.SubscribersCountSince(ctx, since)
	if err != nil {
		return nil, err
	}
	newMessages, err := m.db.MessagesCountSince(ctx, since)
	if err != nil {
		return nil, err
	}

	metrics := AnalyticsMetrics{
		TotalInteractions: subscriberStats.Total + messageStats.Total,
	}
	if subscriberStats.Total > 0 {
		metrics.EngagementRate = ratePercent(
			subscriberStats.ByStatus[db.SubscriberStatusActive], subscriberStats.Total)
	}
	if messageStats.Total > 0 {
		metrics.ResponseRate = ratePercent(
			messageStats.ByStatus[db.MessageStatusReplied], messageStats.Total)
	}
	if newSubscribers > 0 {
		base := subscriberStats.Total - newSubscribers
		if base < 1 {
			base = 1
		}
		metrics.GrowthRate = ratePercent(newSubscribers, base)
	}

	return &AnalyticsOverview{
		TimeRange:   window,
		Newsletter:  NewsletterAnalytics{SubscriberStats: *subscriberStats, NewSubscribers: newSubscribers},
		Messages:    MessageAnalytics{MessageStats: *messageStats, NewMessages: newMessages},
		Metrics:     metrics,
		LastUpdated: time.Now(),
	}, nil
}

// ratePercent is part/whole as a percentage with one decimal place.
func ratePercent(part, whole int) float64 {
	return math.Round(float64(part)/float64(whole)*1000) / 10
}
