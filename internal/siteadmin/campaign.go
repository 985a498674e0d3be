package siteadmin

import (
	"context"
	"log/slog"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
	"github.com/daniilsolovey/site-admin/internal/mailer"
)

// SubscriberSource resolves a campaign audience. Implemented by the
// repository.
type SubscriberSource interface {
	SubscribersByAudience(ctx context.Context, ids []int, status string) ([]db.Subscriber, error)
}

// Campaign is one newsletter send. An empty SubscriberIDs list addresses
// every subscriber with the requested status; an empty Status means
// active.
type Campaign struct {
	Subject       string
	HTML          string
	Status        string
	SubscriberIDs []int
}

// Recipient identifies one subscriber the campaign was delivered to.
type Recipient struct {
	ID    int
	Email string
}

// SendFailure records one recipient that could not be delivered to.
type SendFailure struct {
	Email string
	Error string
}

// CampaignResult summarizes a finished campaign.
type CampaignResult struct {
	Total   int
	Sent    int
	Results []Recipient
	Failed  []SendFailure
}

// Dispatcher sends campaign emails one at a time with a pause between
// sends so the SMTP server is never flooded.
type Dispatcher struct {
	source SubscriberSource
	mailer mailer.Mailer
	delay  time.Duration
	log    *slog.Logger
}

func NewDispatcher(source SubscriberSource, sender mailer.Mailer, delay time.Duration, log *slog.Logger) *Dispatcher {
	return &Dispatcher{
		source: source,
		mailer: sender,
		delay:  delay,
		log:    log,
	}
}

// Send resolves the audience and delivers the campaign sequentially.
// Individual delivery errors are collected, not fatal; cancelling the
// context stops the run after the in-flight send.
func (d *Dispatcher) Send(ctx context.Context, campaign Campaign) (*CampaignResult, error) {
	if err := required("subject", campaign.Subject); err != nil {
		return nil, err
	}
	if err := required("html", campaign.HTML); err != nil {
		return nil, err
	}

	status := campaign.Status
	switch status {
	case "":
		status = db.SubscriberStatusActive
	case db.SubscriberStatusActive, db.SubscriberStatusUnsubscribed, db.SubscriberStatusBounced:
	default:
		return nil, ValidationError{Field: "status", Reason: "must be active, unsubscribed or bounced"}
	}

	subscribers, err := d.source.SubscribersByAudience(ctx, campaign.SubscriberIDs, status)
	if err != nil {
		return nil, err
	}
	if len(subscribers) == 0 {
		return nil, ErrNoRecipients
	}

	text := mailer.StripHTML(campaign.HTML)
	result := &CampaignResult{Total: len(subscribers)}

	for i, subscriber := range subscribers {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		err := d.mailer.Send(ctx, mailer.Email{
			To:      subscriber.Email,
			Subject: campaign.Subject,
			HTML:    campaign.HTML,
			Text:    text,
		})
		if err != nil {
			d.log.Error("campaign send failed", "email", subscriber.Email, "error", err)
			result.Failed = append(result.Failed, SendFailure{
				Email: subscriber.Email,
				Error: err.Error(),
			})
		} else {
			result.Sent++
			result.Results = append(result.Results, Recipient{
				ID:    subscriber.ID,
				Email: subscriber.Email,
			})
		}

		if i < len(subscribers)-1 {
			select {
			case <-time.After(d.delay):
			case <-ctx.Done():
				return result, ctx.Err()
			}
		}
	}

	d.log.Info("campaign finished",
		"subject", campaign.Subject, "total", result.Total,
		"sent", result.Sent, "failed", len(result.Failed))

	return result, nil
}

// SendCampaign runs a campaign through the manager's dispatcher.
func (m *Manager) SendCampaign(ctx context.Context, campaign Campaign) (*CampaignResult, error) {
	return m.dispatcher.Send(ctx, campaign)
}
