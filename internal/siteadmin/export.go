package siteadmin

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
)

func csvTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func csvTimePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return csvTime(*t)
}

// SubscribersCSV renders subscribers as a CSV document with a header row.
func SubscribersCSV(subscribers []Subscriber) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Email", "Name", "Status", "Source", "Subscribed At", "Unsubscribed At", "Tags"},
	}
	for _, s := range subscribers {
		records = append(records, []string{
			s.Email, s.Name, s.Status, s.Source,
			csvTime(s.SubscribedAt), csvTimePtr(s.UnsubscribedAt),
			strings.Join(s.Tags, ";"),
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write subscribers csv: %w", err)
	}

	return buf.Bytes(), nil
}

// MessagesCSV renders contact messages as a CSV document with a header row.
func MessagesCSV(messages []Message) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	records := [][]string{
		{"Name", "Email", "Phone", "Company", "Subject", "Status", "Priority", "Source", "Submitted At", "Assigned To"},
	}
	for _, m := range messages {
		phone, company, assignedTo := "", "", ""
		if m.Phone != nil {
			phone = *m.Phone
		}
		if m.Company != nil {
			company = *m.Company
		}
		if m.AssignedTo != nil {
			assignedTo = m.AssignedTo.Name
		}

		records = append(records, []string{
			m.Name, m.Email, phone, company, m.Subject,
			m.Status, m.Priority, m.Source,
			csvTime(m.SubmittedAt), assignedTo,
		})
	}

	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("failed to write messages csv: %w", err)
	}

	return buf.Bytes(), nil
}

// AllSubscribers returns every subscriber matching the filter, unbounded
// by pagination. Backs the export endpoints.
func (m *Manager) AllSubscribers(ctx context.Context, filter db.SubscriberFilter) ([]Subscriber, error) {
	subscribers, err := m.db.AllSubscribers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get subscribers for export: %w", err)
	}

	return NewSubscriberList(subscribers), nil
}

// AllMessages returns every message matching the filter, unbounded by
// pagination. Backs the export endpoints.
func (m *Manager) AllMessages(ctx context.Context, filter db.MessageFilter) ([]Message, error) {
	messages, err := m.db.AllMessages(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("db get messages for export: %w", err)
	}

	return NewMessageList(messages), nil
}

// ExportSubscribers renders every subscriber matching the filter as CSV.
func (m *Manager) ExportSubscribers(ctx context.Context, filter db.SubscriberFilter) ([]byte, error) {
	subscribers, err := m.AllSubscribers(ctx, filter)
	if err != nil {
		return nil, err
	}

	return SubscribersCSV(subscribers)
}

// ExportMessages renders every message matching the filter as CSV.
func (m *Manager) ExportMessages(ctx context.Context, filter db.MessageFilter) ([]byte, error) {
	messages, err := m.AllMessages(ctx, filter)
	if err != nil {
		return nil, err
	}

	return MessagesCSV(messages)
}
