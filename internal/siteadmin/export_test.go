package siteadmin

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daniilsolovey/site-admin/internal/db"
)

func TestSubscribersCSV(t *testing.T) {
	subscribedAt := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	unsubscribedAt := subscribedAt.Add(24 * time.Hour)

	subscribers := []Subscriber{
		{Subscriber: db.Subscriber{
			Email: "alice@example.com", Name: "Alice",
			Status: db.SubscriberStatusActive, Source: db.SubscriberSourceWebsite,
			SubscribedAt: subscribedAt, Tags: []string{"vip", "beta"},
		}},
		{Subscriber: db.Subscriber{
			Email: "bob@example.com", Name: "Bob",
			Status: db.SubscriberStatusUnsubscribed, Source: db.SubscriberSourceImport,
			SubscribedAt: subscribedAt, UnsubscribedAt: &unsubscribedAt,
		}},
	}

	data, err := SubscribersCSV(subscribers)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Email", "Name", "Status", "Source", "Subscribed At", "Unsubscribed At", "Tags"}, records[0])
	assert.Equal(t, []string{"alice@example.com", "Alice", "active", "website", "2025-03-10T12:00:00Z", "", "vip;beta"}, records[1])
	assert.Equal(t, []string{"bob@example.com", "Bob", "unsubscribed", "import", "2025-03-10T12:00:00Z", "2025-03-11T12:00:00Z", ""}, records[2])
}

func TestSubscribersCSV_Empty(t *testing.T) {
	data, err := SubscribersCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
}

func TestMessagesCSV(t *testing.T) {
	submittedAt := time.Date(2025, 3, 10, 9, 30, 0, 0, time.UTC)
	phone := "+123456"

	messages := []Message{
		{
			Message: db.Message{
				Name: "Frank", Email: "frank@example.com", Phone: &phone,
				Subject: "Quote request", Status: db.MessageStatusUnread,
				Priority: db.MessagePriorityHigh, Source: db.MessageSourceQuote,
				SubmittedAt: submittedAt,
			},
			AssignedTo: &User{User: db.User{Name: "Admin"}},
		},
		{
			Message: db.Message{
				Name: "Grace", Email: "grace@example.com",
				Subject: "Hello", Status: db.MessageStatusRead,
				Priority: db.MessagePriorityLow, Source: db.MessageSourceContact,
				SubmittedAt: submittedAt,
			},
		},
	}

	data, err := MessagesCSV(messages)
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, []string{"Name", "Email", "Phone", "Company", "Subject", "Status", "Priority", "Source", "Submitted At", "Assigned To"}, records[0])
	assert.Equal(t, []string{"Frank", "frank@example.com", "+123456", "", "Quote request", "unread", "high", "quote", "2025-03-10T09:30:00Z", "Admin"}, records[1])
	assert.Equal(t, []string{"Grace", "grace@example.com", "", "", "Hello", "read", "low", "contact", "2025-03-10T09:30:00Z", ""}, records[2])
}
