package upstream

import (
	"context"
	"net/http"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type mailSettingsBody struct {
	MailDriver      *string `json:"mail_driver,omitempty"`
	MailHost        *string `json:"mail_host,omitempty"`
	MailPort        *string `json:"mail_port,omitempty"`
	MailUsername    *string `json:"mail_username,omitempty"`
	MailPassword    *string `json:"mail_password,omitempty"`
	MailEncryption  *string `json:"mail_encryption,omitempty"`
	MailFromAddress *string `json:"mail_from_address,omitempty"`
	MailFromName    *string `json:"mail_from_name,omitempty"`
}

// MailSettings fetches the outbound mail configuration.
func (c *Client) MailSettings(ctx context.Context, token string) (*domain.MailSettings, error) {
	var settings domain.MailSettings
	err := c.do(ctx, call{
		op:     "get_mail_settings",
		method: http.MethodGet,
		path:   "/api/settings/mail",
		token:  token,
		out:    &settings,
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateMailSettings applies a partial mail configuration update.
func (c *Client) UpdateMailSettings(ctx context.Context, token string, in ports.MailSettingsInput) (*domain.MailSettings, error) {
	var settings domain.MailSettings
	err := c.do(ctx, call{
		op:     "update_mail_settings",
		method: http.MethodPut,
		path:   "/api/settings/mail",
		token:  token,
		body: mailSettingsBody{
			MailDriver:      in.MailDriver,
			MailHost:        in.MailHost,
			MailPort:        in.MailPort,
			MailUsername:    in.MailUsername,
			MailPassword:    in.MailPassword,
			MailEncryption:  in.MailEncryption,
			MailFromAddress: in.MailFromAddress,
			MailFromName:    in.MailFromName,
		},
		out: &settings,
	})
	if err != nil {
		return nil, err
	}
	return &settings, nil
}
