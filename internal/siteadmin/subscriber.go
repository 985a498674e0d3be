package siteadmin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}

func (m *Manager) Subscribers(ctx context.Context, filter db.SubscriberFilter, page, limit int) ([]Subscriber, error) {
	list, err := m.db.Subscribers(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("db get subscribers: %w", err)
	}

	return NewSubscriberList(list), nil
}

func (m *Manager) SubscribersCount(ctx context.Context, filter db.SubscriberFilter) (int, error) {
	count, err := m.db.SubscribersCount(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("db get subscribers count: %w", err)
	}

	return count, nil
}

func (m *Manager) SubscriberByID(ctx context.Context, id int) (*Subscriber, error) {
	subscriber, err := m.db.SubscriberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get subscriber by id: %w", err)
	} else if subscriber == nil {
		return nil, nil
	}

	result := NewSubscriber(subscriber)
	return &result, nil
}

// Subscribe handles the public newsletter signup. A previously
// unsubscribed or bounced address is reactivated instead of rejected.
func (m *Manager) Subscribe(ctx context.Context, email, name string, meta *db.RequestMetadata) (*Subscriber, error) {
	email = normalizeEmail(email)
	if !validEmail(email) {
		return nil, ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	existing, err := m.db.SubscriberByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("db get subscriber by email: %w", err)
	}

	now := time.Now()

	if existing != nil {
		if existing.Status == db.SubscriberStatusActive {
			return nil, ErrConflict
		}

		existing.Status = db.SubscriberStatusActive
		existing.SubscribedAt = now
		existing.UnsubscribedAt = nil
		existing.UpdatedAt = &now
		if name != "" {
			existing.Name = name
		}

		if err := m.db.UpdateSubscriber(ctx, existing); err != nil {
			return nil, err
		}

		m.log.Info("subscriber reactivated", "email", email)

		result := NewSubscriber(existing)
		return &result, nil
	}

	subscriber := &db.Subscriber{
		Email:        email,
		Name:         name,
		Status:       db.SubscriberStatusActive,
		Source:       db.SubscriberSourceWebsite,
		SubscribedAt: now,
		Tags:         []string{},
		Metadata:     meta,
		CreatedAt:    now,
	}

	if err := m.db.AddSubscriber(ctx, subscriber); err != nil {
		return nil, asConflict(err)
	}

	m.log.Info("subscriber added", "email", email)

	result := NewSubscriber(subscriber)
	return &result, nil
}

// CreateSubscriber adds a subscriber from the admin panel.
func (m *Manager) CreateSubscriber(ctx context.Context, draft SubscriberDraft) (*Subscriber, error) {
	email := normalizeEmail(draft.Email)
	if !validEmail(email) {
		return nil, ValidationError{Field: "email", Reason: "must be a valid email address"}
	}

	status := draft.Status
	if status == "" {
		status = db.SubscriberStatusActive
	}

	now := time.Now()
	subscriber := &db.Subscriber{
		Email:        email,
		Name:         draft.Name,
		Status:       status,
		Source:       db.SubscriberSourceAdmin,
		SubscribedAt: now,
		Tags:         draft.Tags,
		CreatedAt:    now,
	}
	if subscriber.Tags == nil {
		subscriber.Tags = []string{}
	}

	if err := m.db.AddSubscriber(ctx, subscriber); err != nil {
		return nil, asConflict(err)
	}

	result := NewSubscriber(subscriber)
	return &result, nil
}

// UpdateSubscriber applies a full update. Moving a subscriber to
// unsubscribed stamps unsubscribedAt once.
func (m *Manager) UpdateSubscriber(ctx context.Context, id int, draft SubscriberDraft) (*Subscriber, error) {
	existing, err := m.db.SubscriberByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get subscriber by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()

	if draft.Email != "" {
		email := normalizeEmail(draft.Email)
		if !validEmail(email) {
			return nil, ValidationError{Field: "email", Reason: "must be a valid email address"}
		}
		existing.Email = email
	}
	if draft.Name != "" {
		existing.Name = draft.Name
	}
	if draft.Tags != nil {
		existing.Tags = draft.Tags
	}

	if draft.Status != "" && draft.Status != existing.Status {
		existing.Status = draft.Status
		if draft.Status == db.SubscriberStatusUnsubscribed && existing.UnsubscribedAt == nil {
			existing.UnsubscribedAt = &now
		}
	}
	existing.UpdatedAt = &now

	if err := m.db.UpdateSubscriber(ctx, existing); err != nil {
		return nil, asConflict(err)
	}

	result := NewSubscriber(existing)
	return &result, nil
}

func (m *Manager) DeleteSubscriber(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteSubscriber(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

// ImportSubscribers inserts a batch of subscribers with source "import".
// Invalid addresses are dropped, duplicates inside the batch and in the
// table are skipped. Returns (added, skipped).
func (m *Manager) ImportSubscribers(ctx context.Context, entries []SubscriberImport) (int, int, error) {
	now := time.Now()
	seen := make(map[string]struct{}, len(entries))
	rows := make([]db.Subscriber, 0, len(entries))
	skipped := 0

	for _, entry := range entries {
		email := normalizeEmail(entry.Email)
		if !validEmail(email) {
			skipped++
			continue
		}
		if _, ok := seen[email]; ok {
			skipped++
			continue
		}
		seen[email] = struct{}{}

		rows = append(rows, db.Subscriber{
			Email:        email,
			Name:         entry.Name,
			Status:       db.SubscriberStatusActive,
			Source:       db.SubscriberSourceImport,
			SubscribedAt: now,
			Tags:         []string{},
			CreatedAt:    now,
		})
	}

	added, err := m.db.InsertSubscribers(ctx, rows)
	if err != nil {
		return 0, 0, err
	}

	skipped += len(rows) - added

	m.log.Info("subscribers imported", "added", added, "skipped", skipped)

	return added, skipped, nil
}

// BulkSubscribe adds the given emails as active subscribers with source
// "admin". Invalid addresses and emails already on the list are skipped.
func (m *Manager) BulkSubscribe(ctx context.Context, emails []string) (int, error) {
	now := time.Now()
	seen := make(map[string]struct{}, len(emails))
	rows := make([]db.Subscriber, 0, len(emails))

	for _, email := range emails {
		normalized := normalizeEmail(email)
		if !validEmail(normalized) {
			continue
		}
		if _, ok := seen[normalized]; ok {
			continue
		}
		seen[normalized] = struct{}{}

		rows = append(rows, db.Subscriber{
			Email:        normalized,
			Status:       db.SubscriberStatusActive,
			Source:       db.SubscriberSourceAdmin,
			SubscribedAt: now,
			Tags:         []string{},
			CreatedAt:    now,
		})
	}

	return m.db.InsertSubscribers(ctx, rows)
}

// BulkUnsubscribe marks the given emails unsubscribed in one statement.
func (m *Manager) BulkUnsubscribe(ctx context.Context, emails []string) (int, error) {
	return m.db.UnsubscribeByEmails(ctx, normalizeEmails(emails), time.Now())
}

func (m *Manager) BulkDeleteSubscribers(ctx context.Context, emails []string) (int, error) {
	return m.db.DeleteSubscribersByEmails(ctx, normalizeEmails(emails))
}

func (m *Manager) BulkUpdateSubscribers(ctx context.Context, emails []string, patch db.SubscriberPatch) (int, error) {
	if patch.Status != nil {
		switch *patch.Status {
		case db.SubscriberStatusActive, db.SubscriberStatusUnsubscribed, db.SubscriberStatusBounced:
		default:
			return 0, ValidationError{Field: "status", Reason: "must be active, unsubscribed or bounced"}
		}
	}

	return m.db.UpdateSubscribersByEmails(ctx, normalizeEmails(emails), patch, time.Now())
}

func normalizeEmails(emails []string) []string {
	out := make([]string, 0, len(emails))
	for _, email := range emails {
		if normalized := normalizeEmail(email); normalized != "" {
			out = append(out, normalized)
		}
	}
	return out
}

func (m *Manager) SubscriberStats(ctx context.Context) (*SubscriberStats, error) {
	byStatus, err := m.db.SubscriberStatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get subscriber status counts: %w", err)
	}

	bySource, err := m.db.SubscriberSourceCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get subscriber source counts: %w", err)
	}

	recent, err := m.db.RecentSubscribers(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get recent subscribers: %w", err)
	}

	stats := &SubscriberStats{
		ByStatus: make(map[string]int, len(byStatus)),
		BySource: make(map[string]int, len(bySource)),
		Recent:   NewSubscriberList(recent),
	}
	for _, c := range byStatus {
		stats.ByStatus[c.Value] = c.Count
		stats.Total += c.Count
	}
	for _, c := range bySource {
		stats.BySource[c.Value] = c.Count
	}

	return stats, nil
}
