package rest

import (
	"log/slog"

	"github.com/daniilsolovey/site-admin/config"
	"github.com/daniilsolovey/site-admin/internal/siteadmin"
	"github.com/daniilsolovey/site-admin/internal/upload"
)

// Handler serves the admin panel REST API.
type Handler struct {
	uc        *siteadmin.Manager
	upload    *upload.Processor
	auth      config.Auth
	uploadCfg config.Upload
	campaign  config.Campaign
	log       *slog.Logger
}

func NewHandler(uc *siteadmin.Manager, processor *upload.Processor, cfg *config.Config, log *slog.Logger) *Handler {
	return &Handler{
		uc:        uc,
		upload:    processor,
		auth:      cfg.Auth,
		uploadCfg: cfg.Upload,
		campaign:  cfg.Campaign,
		log:       log,
	}
}
