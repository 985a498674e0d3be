package db

import (
	"context"
	"errors"

	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

// Statuses and enum values shared by the repository and the domain layer.
const (
	BlogStatusDraft     = "draft"
	BlogStatusPublished = "published"
	BlogStatusArchived  = "archived"

	SubscriberStatusActive       = "active"
	SubscriberStatusUnsubscribed = "unsubscribed"
	SubscriberStatusBounced      = "bounced"

	SubscriberSourceWebsite = "website"
	SubscriberSourceAdmin   = "admin"
	SubscriberSourceImport  = "import"

	MessageStatusUnread   = "unread"
	MessageStatusRead     = "read"
	MessageStatusReplied  = "replied"
	MessageStatusArchived = "archived"

	MessagePriorityLow    = "low"
	MessagePriorityMedium = "medium"
	MessagePriorityHigh   = "high"

	MessageSourceContact = "contact"
	MessageSourceQuote   = "quote"
	MessageSourceSupport = "support"
	MessageSourceGeneral = "general"

	RoleAdmin  = "admin"
	RoleEditor = "editor"
)

const RecentLimit = 5

type Repository struct {
	db pg.DBI
}

func New(db pg.DBI) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) Ping(ctx context.Context) error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Ping(ctx); err != nil {
			return err
		}
		return nil
	}

	return nil
}

func (r *Repository) Close() error {
	if db, ok := r.db.(*pg.DB); ok {
		if err := db.Close(); err != nil {
			return err
		}
		return nil
	}

	return nil
}

// EnumCount is one bucket of a group-by aggregation over an enum column.
type EnumCount struct {
	Value string `pg:"value"`
	Count int    `pg:"count"`
}

// paginate applies page/limit to a query. Callers validate page and limit
// beforehand; the repository only translates them into LIMIT/OFFSET.
func paginate(q *orm.Query, page, limit int) *orm.Query {
	return q.Limit(limit).Offset((page - 1) * limit)
}

// countByColumn groups the given model query by one enum column.
func countByColumn(ctx context.Context, q *orm.Query, column string) ([]EnumCount, error) {
	var counts []EnumCount
	err := q.
		ColumnExpr(`"t".? AS value`, pg.Ident(column)).
		ColumnExpr(`count(*) AS count`).
		GroupExpr(`"t".?`, pg.Ident(column)).
		Select(&counts)
	if err != nil {
		return nil, err
	}

	return counts, nil
}

// IsIntegrityViolation reports whether err is a unique or foreign key
// violation, used to surface duplicate slugs and emails as conflicts.
func IsIntegrityViolation(err error) bool {
	var pgErr pg.Error
	return errors.As(err, &pgErr) && pgErr.IntegrityViolation()
}
