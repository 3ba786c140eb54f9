package ports

import (
	"context"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// MailSettingsInput carries a partial mail settings update; nil fields are
// left untouched upstream.
type MailSettingsInput struct {
	MailDriver      *string
	MailHost        *string
	MailPort        *string
	MailUsername    *string
	MailPassword    *string
	MailEncryption  *string
	MailFromAddress *string
	MailFromName    *string
}

// SettingsAPI covers the admin-only mail forwarding settings.
type SettingsAPI interface {
	MailSettings(ctx context.Context, token string) (*domain.MailSettings, error)
	UpdateMailSettings(ctx context.Context, token string, in MailSettingsInput) (*domain.MailSettings, error)
}
