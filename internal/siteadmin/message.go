package siteadmin

import (
	"context"
	"fmt"
	"time"

	"github.com/daniilsolovey/site-admin/internal/db"
	"github.com/daniilsolovey/site-admin/internal/mailer"
)

func (m *Manager) Messages(ctx context.Context, filter db.MessageFilter, page, limit int) ([]Message, error) {
	list, err := m.db.Messages(ctx, filter, page, limit)
	if err != nil {
		return nil, fmt.Errorf("db get messages: %w", err)
	}

	return NewMessageList(list), nil
}

func (m *Manager) MessagesCount(ctx context.Context, filter db.MessageFilter) (int, error) {
	count, err := m.db.MessagesCount(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("db get messages count: %w", err)
	}

	return count, nil
}

// MessageByID returns a message for the admin detail view. Fetching
// never changes the message; marking read goes through UpdateMessage.
func (m *Manager) MessageByID(ctx context.Context, id int) (*Message, error) {
	message, err := m.db.MessageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get message by id: %w", err)
	} else if message == nil {
		return nil, nil
	}

	result := NewMessage(message)
	return &result, nil
}

func (s MessageSubmission) validate() error {
	for field, value := range map[string]string{
		"name":    s.Name,
		"subject": s.Subject,
		"body":    s.Body,
	} {
		if err := required(field, value); err != nil {
			return err
		}
	}
	if !validEmail(normalizeEmail(s.Email)) {
		return ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// SubmitMessage stores a public contact form submission and notifies the
// configured admin address. A failed notification never fails the
// submission.
func (m *Manager) SubmitMessage(ctx context.Context, submission MessageSubmission) (*Message, error) {
	if err := submission.validate(); err != nil {
		return nil, err
	}

	priority := submission.Priority
	if priority == "" {
		priority = db.MessagePriorityMedium
	}
	source := submission.Source
	if source == "" {
		source = db.MessageSourceContact
	}

	now := time.Now()
	message := &db.Message{
		Name:        submission.Name,
		Email:       normalizeEmail(submission.Email),
		Phone:       submission.Phone,
		Company:     submission.Company,
		Subject:     submission.Subject,
		Body:        submission.Body,
		Status:      db.MessageStatusUnread,
		Priority:    priority,
		Source:      source,
		SubmittedAt: now,
		Metadata:    submission.Metadata,
		CreatedAt:   now,
	}

	if err := m.db.AddMessage(ctx, message); err != nil {
		return nil, err
	}

	m.notifyAdmin(ctx, message)

	result := NewMessage(message)
	return &result, nil
}

func (m *Manager) notifyAdmin(ctx context.Context, message *db.Message) {
	if m.adminEmail == "" {
		return
	}

	data := mailer.NotificationData{
		Name:        message.Name,
		Email:       message.Email,
		Subject:     message.Subject,
		Body:        message.Body,
		Priority:    message.Priority,
		Source:      message.Source,
		SubmittedAt: message.SubmittedAt,
	}
	if message.Phone != nil {
		data.Phone = *message.Phone
	}
	if message.Company != nil {
		data.Company = *message.Company
	}

	email, err := mailer.AdminNotification(m.adminEmail, data)
	if err != nil {
		m.log.Error("failed to build admin notification", "error", err)
		return
	}

	if err := m.mailer.Send(ctx, email); err != nil {
		m.log.Error("failed to send admin notification", "error", err, "messageId", message.ID)
	}
}

// UpdateMessage applies a partial update of status, priority and assignee.
func (m *Manager) UpdateMessage(ctx context.Context, id int, patch MessagePatch) (*Message, error) {
	existing, err := m.db.MessageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get message by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	if patch.Status != nil {
		if !validMessageStatus(*patch.Status) {
			return nil, ValidationError{Field: "status", Reason: "must be unread, read, replied or archived"}
		}
		existing.Status = *patch.Status
	}
	if patch.Priority != nil {
		if !validMessagePriority(*patch.Priority) {
			return nil, ValidationError{Field: "priority", Reason: "must be low, medium or high"}
		}
		existing.Priority = *patch.Priority
	}
	if patch.AssignedToID != nil {
		if *patch.AssignedToID == 0 {
			existing.AssignedToID = nil
		} else {
			existing.AssignedToID = patch.AssignedToID
		}
	}
	existing.UpdatedAt = &now
	existing.AssignedTo = nil
	existing.RepliedBy = nil

	if err := m.db.UpdateMessage(ctx, existing); err != nil {
		return nil, asConflict(err)
	}

	return m.MessageByID(ctx, id)
}

// ReplyToMessage records a reply and emails it to the sender. The message
// moves to status "replied" even when the email cannot be delivered.
func (m *Manager) ReplyToMessage(ctx context.Context, id int, replyContent string, userID int) (*Message, error) {
	if err := required("replyContent", replyContent); err != nil {
		return nil, err
	}

	existing, err := m.db.MessageByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("db get message by id: %w", err)
	} else if existing == nil {
		return nil, ErrNotFound
	}

	now := time.Now()
	existing.ReplyContent = &replyContent
	existing.RepliedByID = &userID
	existing.RepliedAt = &now
	existing.Status = db.MessageStatusReplied
	existing.UpdatedAt = &now
	existing.AssignedTo = nil
	existing.RepliedBy = nil

	if err := m.db.UpdateMessage(ctx, existing); err != nil {
		return nil, err
	}

	email, err := mailer.ReplyEmail(existing.Email, existing.Name, replyContent, existing.Subject)
	if err != nil {
		m.log.Error("failed to build reply email", "error", err, "messageId", id)
	} else if err := m.mailer.Send(ctx, email); err != nil {
		m.log.Error("failed to send reply email", "error", err, "messageId", id)
	}

	return m.MessageByID(ctx, id)
}

func (m *Manager) DeleteMessage(ctx context.Context, id int) error {
	deleted, err := m.db.DeleteMessage(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	return nil
}

func (m *Manager) BulkSetMessageStatus(ctx context.Context, ids []int, status string) (int, error) {
	if !validMessageStatus(status) {
		return 0, ValidationError{Field: "status", Reason: "must be unread, read, replied or archived"}
	}

	return m.db.SetMessagesStatus(ctx, ids, status, time.Now())
}

func validMessageStatus(status string) bool {
	switch status {
	case db.MessageStatusUnread, db.MessageStatusRead, db.MessageStatusReplied, db.MessageStatusArchived:
		return true
	}
	return false
}

func validMessagePriority(priority string) bool {
	switch priority {
	case db.MessagePriorityLow, db.MessagePriorityMedium, db.MessagePriorityHigh:
		return true
	}
	return false
}

func (m *Manager) BulkAssignMessages(ctx context.Context, ids []int, userID int) (int, error) {
	user, err := m.db.UserByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("db get user by id: %w", err)
	} else if user == nil {
		return 0, ValidationError{Field: "userId", Reason: "must reference an existing user"}
	}

	return m.db.AssignMessages(ctx, ids, userID, time.Now())
}

func (m *Manager) BulkDeleteMessages(ctx context.Context, ids []int) (int, error) {
	return m.db.DeleteMessages(ctx, ids)
}

func (m *Manager) MessageStats(ctx context.Context) (*MessageStats, error) {
	byStatus, err := m.db.MessageStatusCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get message status counts: %w", err)
	}

	byPriority, err := m.db.MessagePriorityCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get message priority counts: %w", err)
	}

	bySource, err := m.db.MessageSourceCounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get message source counts: %w", err)
	}

	recent, err := m.db.RecentMessages(ctx)
	if err != nil {
		return nil, fmt.Errorf("db get recent messages: %w", err)
	}

	stats := &MessageStats{
		ByStatus:   make(map[string]int, len(byStatus)),
		ByPriority: make(map[string]int, len(byPriority)),
		BySource:   make(map[string]int, len(bySource)),
		Recent:     NewMessageList(recent),
	}
	for _, c := range byStatus {
		stats.ByStatus[c.Value] = c.Count
		stats.Total += c.Count
	}
	for _, c := range byPriority {
		stats.ByPriority[c.Value] = c.Count
	}
	for _, c := range bySource {
		stats.BySource[c.Value] = c.Count
	}

	return stats, nil
}
