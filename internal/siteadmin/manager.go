package siteadmin

import (
	"log/slog"

	"github.com/daniilsolovey/site-admin/config"
	"github.com/daniilsolovey/site-admin/internal/db"
	"github.com/daniilsolovey/site-admin/internal/mailer"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Manager implements the admin panel use cases on top of the repository,
// the mail transport and the campaign dispatcher.
type Manager struct {
	db         *db.Repository
	mailer     mailer.Mailer
	dispatcher *Dispatcher
	adminEmail string
	log        *slog.Logger
}

func NewManager(repo *db.Repository, sender mailer.Mailer, campaign config.Campaign, adminEmail string, log *slog.Logger) *Manager {
	return &Manager{
		db:         repo,
		mailer:     sender,
		dispatcher: NewDispatcher(repo, sender, campaign.Delay(), log),
		adminEmail: adminEmail,
		log:        log,
	}
}

// NormalizePage clamps page and limit to sane bounds.
func NormalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}

// TotalPages is the page count for a given total and limit.
func TotalPages(total, limit int) int {
	if limit < 1 {
		return 0
	}
	return (total + limit - 1) / limit
}

// asConflict maps unique and foreign key violations onto ErrConflict so
// handlers can answer 409 instead of 500.
func asConflict(err error) error {
	if db.IsIntegrityViolation(err) {
		return ErrConflict
	}
	return err
}
