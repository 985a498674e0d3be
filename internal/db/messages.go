package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// MessageFilter narrows message list, count and export queries.
// Empty or "all" values do not filter.
type MessageFilter struct {
	Status   string
	Priority string
	Source   string
	Search   string
}

func (f MessageFilter) apply(q *orm.Query) *orm.Query {
	if f.Status != "" && f.Status != "all" {
		q = q.Where(`"t"."status" = ?`, f.Status)
	}
	if f.Priority != "" && f.Priority != "all" {
		q = q.Where(`"t"."priority" = ?`, f.Priority)
	}
	if f.Source != "" && f.Source != "all" {
		q = q.Where(`"t"."source" = ?`, f.Source)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."name" ILIKE ?`, pattern).
				WhereOr(`"t"."email" ILIKE ?`, pattern).
				WhereOr(`"t"."subject" ILIKE ?`, pattern).
				WhereOr(`"t"."body" ILIKE ?`, pattern)
			return q, nil
		})
	}
	return q
}

// Messages retrieves contact messages sorted by createdAt DESC with the
// assignee and replier relations loaded.
func (r *Repository) Messages(ctx context.Context, filter MessageFilter, page, limit int) ([]Message, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("page and limit must be greater than 0: page=%d, limit=%d", page, limit)
	}

	var messages []Message
	q := filter.apply(r.db.ModelContext(ctx, &messages).
		Relation("AssignedTo").
		Relation("RepliedBy"))

	err := paginate(q.OrderExpr(`"t"."createdAt" DESC`), page, limit).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}

	return messages, nil
}

func (r *Repository) MessagesCount(ctx context.Context, filter MessageFilter) (int, error) {
	count, err := filter.apply(r.db.ModelContext(ctx, (*Message)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count messages: %w", err)
	}

	return count, nil
}

// AllMessages returns every message matching the filter, unbounded by
// pagination. Used by the CSV export.
func (r *Repository) AllMessages(ctx context.Context, filter MessageFilter) ([]Message, error) {
	var messages []Message
	err := filter.apply(r.db.ModelContext(ctx, &messages).Relation("AssignedTo")).
		OrderExpr(`"t"."createdAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query messages for export: %w", err)
	}

	return messages, nil
}

func (r *Repository) MessageByID(ctx context.Context, id int) (*Message, error) {
	message := &Message{}
	err := r.db.ModelContext(ctx, message).
		Relation("AssignedTo").
		Relation("RepliedBy").
		Where(`"t"."messageId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get message by id: %w", err)
	}

	return message, nil
}

func (r *Repository) AddMessage(ctx context.Context, message *Message) error {
	if _, err := r.db.ModelContext(ctx, message).Insert(); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}

	return nil
}

func (r *Repository) UpdateMessage(ctx context.Context, message *Message) error {
	if _, err := r.db.ModelContext(ctx, message).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update message: %w", err)
	}

	return nil
}

func (r *Repository) DeleteMessage(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Message)(nil)).
		Where(`"messageId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete message: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// SetMessagesStatus applies one status to all given ids in a single
// set-based update.
func (r *Repository) SetMessagesStatus(ctx context.Context, ids []int, status string, now time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*Message)(nil)).
		Set(`"status" = ?`, status).
		Set(`"updatedAt" = ?`, now).
		Where(`"messageId" IN (?)`, pg.In(ids)).
		Update()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk set message status: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) AssignMessages(ctx context.Context, ids []int, userID int, now time.Time) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*Message)(nil)).
		Set(`"assignedToId" = ?`, userID).
		Set(`"updatedAt" = ?`, now).
		Where(`"messageId" IN (?)`, pg.In(ids)).
		Update()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk assign messages: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) DeleteMessages(ctx context.Context, ids []int) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*Message)(nil)).
		Where(`"messageId" IN (?)`, pg.In(ids)).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete messages: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) MessageStatusCounts(ctx context.Context) ([]EnumCount, error) {
	counts, err := countByColumn(ctx, r.db.ModelContext(ctx, (*Message)(nil)), "status")
	if err != nil {
		return nil, fmt.Errorf("failed to count messages by status: %w", err)
	}

	return counts, nil
}

func (r *Repository) MessagePriorityCounts(ctx context.Context) ([]EnumCount, error) {
	counts, err := countByColumn(ctx, r.db.ModelContext(ctx, (*Message)(nil)), "priority")
	if err != nil {
		return nil, fmt.Errorf("failed to count messages by priority: %w", err)
	}

	return counts, nil
}

func (r *Repository) MessageSourceCounts(ctx context.Context) ([]EnumCount, error) {
	counts, err := countByColumn(ctx, r.db.ModelContext(ctx, (*Message)(nil)), "source")
	if err != nil {
		return nil, fmt.Errorf("failed to count messages by source: %w", err)
	}

	return counts, nil
}

// MessagesCountSince counts messages submitted on or after the given
// time.
func (r *Repository) MessagesCountSince(ctx context.Context, since time.Time) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Message)(nil)).
		Where(`"t"."submittedAt" >= ?`, since).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count new messages: %w", err)
	}

	return count, nil
}

func (r *Repository) RecentMessages(ctx context.Context) ([]Message, error) {
	var messages []Message
	err := r.db.ModelContext(ctx, &messages).
		Relation("AssignedTo").
		OrderExpr(`"t"."createdAt" DESC`).
		Limit(RecentLimit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent messages: %w", err)
	}

	return messages, nil
}
