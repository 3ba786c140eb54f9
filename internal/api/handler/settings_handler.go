package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// SettingsHandler serves the admin mail forwarding settings page.
type SettingsHandler struct {
	settings ports.SettingsAPI
}

func NewSettingsHandler(settings ports.SettingsAPI) *SettingsHandler {
	return &SettingsHandler{settings: settings}
}

type mailSettingsRequest struct {
	MailDriver      *string `json:"mail_driver"`
	MailHost        *string `json:"mail_host"`
	MailPort        *string `json:"mail_port"`
	MailUsername    *string `json:"mail_username"`
	MailPassword    *string `json:"mail_password"`
	MailEncryption  *string `json:"mail_encryption"`
	MailFromAddress *string `json:"mail_from_address"`
	MailFromName    *string `json:"mail_from_name"`
}

func (h *SettingsHandler) GetMail(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	settings, err := h.settings.MailSettings(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}

func (h *SettingsHandler) UpdateMail(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req mailSettingsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	settings, err := h.settings.UpdateMailSettings(c.Request().Context(), session.Token, ports.MailSettingsInput{
		MailDriver:      req.MailDriver,
		MailHost:        req.MailHost,
		MailPort:        req.MailPort,
		MailUsername:    req.MailUsername,
		MailPassword:    req.MailPassword,
		MailEncryption:  req.MailEncryption,
		MailFromAddress: req.MailFromAddress,
		MailFromName:    req.MailFromName,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, settings)
}
