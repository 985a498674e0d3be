package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// SubscriberFilter narrows subscriber list, count and export queries.
// Empty or "all" values do not filter.
type SubscriberFilter struct {
	Status string
	Source string
	Search string
}

func (f SubscriberFilter) apply(q *orm.Query) *orm.Query {
	if f.Status != "" && f.Status != "all" {
		q = q.Where(`"t"."status" = ?`, f.Status)
	}
	if f.Source != "" && f.Source != "all" {
		q = q.Where(`"t"."source" = ?`, f.Source)
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		q = q.WhereGroup(func(q *orm.Query) (*orm.Query, error) {
			q = q.WhereOr(`"t"."email" ILIKE ?`, pattern).
				WhereOr(`"t"."name" ILIKE ?`, pattern)
			return q, nil
		})
	}
	return q
}

// Subscribers retrieves newsletter subscribers sorted by subscribedAt DESC.
func (r *Repository) Subscribers(ctx context.Context, filter SubscriberFilter, page, limit int) ([]Subscriber, error) {
	if page < 1 || limit < 1 {
		return nil, fmt.Errorf("page and limit must be greater than 0: page=%d, limit=%d", page, limit)
	}

	var subscribers []Subscriber
	q := filter.apply(r.db.ModelContext(ctx, &subscribers))

	err := paginate(q.OrderExpr(`"t"."subscribedAt" DESC`), page, limit).Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers: %w", err)
	}

	return subscribers, nil
}

func (r *Repository) SubscribersCount(ctx context.Context, filter SubscriberFilter) (int, error) {
	count, err := filter.apply(r.db.ModelContext(ctx, (*Subscriber)(nil))).Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count subscribers: %w", err)
	}

	return count, nil
}

// AllSubscribers returns every subscriber matching the filter, unbounded
// by pagination. Used by the CSV export.
func (r *Repository) AllSubscribers(ctx context.Context, filter SubscriberFilter) ([]Subscriber, error) {
	var subscribers []Subscriber
	err := filter.apply(r.db.ModelContext(ctx, &subscribers)).
		OrderExpr(`"t"."subscribedAt" DESC`).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query subscribers for export: %w", err)
	}

	return subscribers, nil
}

func (r *Repository) SubscriberByID(ctx context.Context, id int) (*Subscriber, error) {
	subscriber := &Subscriber{}
	err := r.db.ModelContext(ctx, subscriber).
		Where(`"subscriberId" = ?`, id).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get subscriber by id: %w", err)
	}

	return subscriber, nil
}

func (r *Repository) SubscriberByEmail(ctx context.Context, email string) (*Subscriber, error) {
	subscriber := &Subscriber{}
	err := r.db.ModelContext(ctx, subscriber).
		Where(`"email" = ?`, email).
		Select()

	if errors.Is(err, pg.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get subscriber by email: %w", err)
	}

	return subscriber, nil
}

func (r *Repository) AddSubscriber(ctx context.Context, subscriber *Subscriber) error {
	if _, err := r.db.ModelContext(ctx, subscriber).Insert(); err != nil {
		return fmt.Errorf("failed to insert subscriber: %w", err)
	}

	return nil
}

func (r *Repository) UpdateSubscriber(ctx context.Context, subscriber *Subscriber) error {
	if _, err := r.db.ModelContext(ctx, subscriber).WherePK().Update(); err != nil {
		return fmt.Errorf("failed to update subscriber: %w", err)
	}

	return nil
}

func (r *Repository) DeleteSubscriber(ctx context.Context, id int) (bool, error) {
	res, err := r.db.ModelContext(ctx, (*Subscriber)(nil)).
		Where(`"subscriberId" = ?`, id).
		Delete()
	if err != nil {
		return false, fmt.Errorf("failed to delete subscriber: %w", err)
	}

	return res.RowsAffected() > 0, nil
}

// SubscribersByAudience resolves a campaign audience in one query:
// subscribers with the given status, optionally restricted to explicit ids.
func (r *Repository) SubscribersByAudience(ctx context.Context, ids []int, status string) ([]Subscriber, error) {
	var subscribers []Subscriber
	q := r.db.ModelContext(ctx, &subscribers)

	if len(ids) > 0 {
		q = q.Where(`"subscriberId" IN (?)`, pg.In(ids))
	}
	if status != "" {
		q = q.Where(`"status" = ?`, status)
	}

	if err := q.OrderExpr(`"subscriberId" ASC`).Select(); err != nil {
		return nil, fmt.Errorf("failed to resolve campaign audience: %w", err)
	}

	return subscribers, nil
}

// InsertSubscribers inserts a batch in one statement, skipping emails that
// already exist. Returns the number of rows actually inserted.
func (r *Repository) InsertSubscribers(ctx context.Context, subscribers []Subscriber) (int, error) {
	if len(subscribers) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, &subscribers).
		OnConflict(`("email") DO NOTHING`).
		Insert()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk insert subscribers: %w", err)
	}

	return res.RowsAffected(), nil
}

// UnsubscribeByEmails sets status and unsubscribedAt for the given emails
// in one set-based update. Rows already unsubscribed keep their original
// unsubscribedAt.
func (r *Repository) UnsubscribeByEmails(ctx context.Context, emails []string, now time.Time) (int, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*Subscriber)(nil)).
		Set(`"status" = ?`, SubscriberStatusUnsubscribed).
		Set(`"unsubscribedAt" = COALESCE("unsubscribedAt", ?)`, now).
		Set(`"updatedAt" = ?`, now).
		Where(`"email" IN (?)`, pg.In(emails)).
		Update()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk unsubscribe: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) DeleteSubscribersByEmails(ctx context.Context, emails []string) (int, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	res, err := r.db.ModelContext(ctx, (*Subscriber)(nil)).
		Where(`"email" IN (?)`, pg.In(emails)).
		Delete()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete subscribers: %w", err)
	}

	return res.RowsAffected(), nil
}

// SubscriberPatch carries the fields a bulk update may set.
type SubscriberPatch struct {
	Status *string
	Name   *string
	Tags   []string
}

func (r *Repository) UpdateSubscribersByEmails(ctx context.Context, emails []string, patch SubscriberPatch, now time.Time) (int, error) {
	if len(emails) == 0 {
		return 0, nil
	}

	q := r.db.ModelContext(ctx, (*Subscriber)(nil)).
		Set(`"updatedAt" = ?`, now).
		Where(`"email" IN (?)`, pg.In(emails))

	if patch.Status != nil {
		q = q.Set(`"status" = ?`, *patch.Status)
		if *patch.Status == SubscriberStatusUnsubscribed {
			q = q.Set(`"unsubscribedAt" = COALESCE("unsubscribedAt", ?)`, now)
		}
	}
	if patch.Name != nil {
		q = q.Set(`"name" = ?`, *patch.Name)
	}
	if patch.Tags != nil {
		q = q.Set(`"tags" = ?`, pg.Array(patch.Tags))
	}

	res, err := q.Update()
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update subscribers: %w", err)
	}

	return res.RowsAffected(), nil
}

func (r *Repository) SubscriberStatusCounts(ctx context.Context) ([]EnumCount, error) {
	counts, err := countByColumn(ctx, r.db.ModelContext(ctx, (*Subscriber)(nil)), "status")
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribers by status: %w", err)
	}

	return counts, nil
}

func (r *Repository) SubscriberSourceCounts(ctx context.Context) ([]EnumCount, error) {
	counts, err := countByColumn(ctx, r.db.ModelContext(ctx, (*Subscriber)(nil)), "source")
	if err != nil {
		return nil, fmt.Errorf("failed to count subscribers by source: %w", err)
	}

	return counts, nil
}

// SubscribersCountSince counts signups on or after the given time.
func (r *Repository) SubscribersCountSince(ctx context.Context, since time.Time) (int, error) {
	count, err := r.db.ModelContext(ctx, (*Subscriber)(nil)).
		Where(`"t"."subscribedAt" >= ?`, since).
		Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count new subscribers: %w", err)
	}

	return count, nil
}

func (r *Repository) RecentSubscribers(ctx context.Context) ([]Subscriber, error) {
	var subscribers []Subscriber
	err := r.db.ModelContext(ctx, &subscribers).
		OrderExpr(`"subscribedAt" DESC`).
		Limit(RecentLimit).
		Select()
	if err != nil {
		return nil, fmt.Errorf("failed to query recent subscribers: %w", err)
	}

	return subscribers, nil
}
