package config

import (
	"time"

	"github.com/go-pg/pg/v10"
)

type Config struct {
	Database pg.Options
	App      struct {
		Host string
		Port int
	}
	Auth     Auth
	Email    Email
	Upload   Upload
	Campaign Campaign
	Sentry   struct {
		DSN string
	}
}

// Auth configures the JWT gate in front of the admin routes.
type Auth struct {
	Secret            string
	TokenTTLHours     int
	AllowRegistration bool
}

// Email configures the SMTP transport used for campaigns, reply emails
// and admin notifications.
type Email struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	AdminEmail string
}

// Upload configures the image upload pipeline.
type Upload struct {
	Dir       string
	MaxSizeMB int
	MaxWidth  int
	MaxHeight int
	Quality   int
}

// Campaign configures the newsletter campaign dispatcher.
type Campaign struct {
	DelayMS       int
	MaxHTMLSizeMB int
}

func (a Auth) TokenTTL() int {
	if a.TokenTTLHours <= 0 {
		return 24
	}
	return a.TokenTTLHours
}

func (u Upload) MaxBytes() int64 {
	mb := u.MaxSizeMB
	if mb <= 0 {
		mb = 5
	}
	return int64(mb) << 20
}

// Delay is the pause between consecutive campaign emails.
func (c Campaign) Delay() time.Duration {
	ms := c.DelayMS
	if ms <= 0 {
		ms = 100
	}
	return time.Duration(ms) * time.Millisecond
}

func (c Campaign) MaxHTMLBytes() int64 {
	mb := c.MaxHTMLSizeMB
	if mb <= 0 {
		mb = 10
	}
	return int64(mb) << 20
}
