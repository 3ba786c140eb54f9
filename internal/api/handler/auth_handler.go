package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// CookieConfig describes the session cookie the gateway issues.
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type AuthHandler struct {
	sessions ports.SessionService
	cookie   CookieConfig
}

func NewAuthHandler(sessions ports.SessionService, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{sessions: sessions, cookie: cookie}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name                 string `json:"name" validate:"required"`
	Email                string `json:"email" validate:"required,email"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// sessionResponse tells the front end who is signed in and which area to
// navigate to.
type sessionResponse struct {
	User *domain.User `json:"user"`
	Area domain.Area  `json:"area"`
}

// Login authenticates against the upstream API and starts a portal session.
//
// @Summary      Sign in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	started, err := h.sessions.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setSessionCookie(c, started.Cookie)
	return c.JSON(http.StatusOK, sessionResponse{User: started.User, Area: started.Area})
}

// Register creates an investor account and starts a session; fresh accounts
// land on the pending area.
//
// @Summary      Register
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  sessionResponse
// @Failure      422   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	started, err := h.sessions.Register(c.Request().Context(), ports.RegisterInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return err
	}

	h.setSessionCookie(c, started.Cookie)
	return c.JSON(http.StatusCreated, sessionResponse{User: started.User, Area: started.Area})
}

// Logout ends the session. It succeeds for signed-out browsers too, and an
// upstream failure never prevents the local sign-out.
func (h *AuthHandler) Logout(c echo.Context) error {
	if id, session, err := ctxSession(c); err == nil {
		if err := h.sessions.Logout(c.Request().Context(), id, session); err != nil {
			return err
		}
	}
	h.clearSessionCookie(c)
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// Current reports the cached session's user and authorized area. Serves the
// session probe and the pending page.
func (h *AuthHandler) Current(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sessionResponse{
		User: session.User,
		Area: domain.AuthorizedAreaFor(session.User),
	})
}

func (h *AuthHandler) setSessionCookie(c echo.Context, value string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.cookie.TTL / time.Second),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cookie.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}
