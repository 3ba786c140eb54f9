package middleware

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/api/metrics"
	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

const (
	// ContextSession is the echo context key holding the *domain.Session.
	ContextSession = "session"
	// ContextSessionID is the echo context key holding the session id.
	ContextSessionID = "session_id"
)

// Session resolves the browser's session cookie into a stored session and
// injects it into the context. Requests without a usable session are
// redirected to the login area before any upstream call can happen.
func Session(store ports.SessionStore, secret, cookieName string) echo.MiddlewareFunc {
	return loader(store, secret, cookieName, true)
}

// OptionalSession resolves the session when present but never redirects.
// Logout and the session probe must serve signed-out browsers too.
func OptionalSession(store ports.SessionStore, secret, cookieName string) echo.MiddlewareFunc {
	return loader(store, secret, cookieName, false)
}

func loader(store ports.SessionStore, secret, cookieName string, required bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, session, err := resolve(c, store, secret, cookieName)
			if err != nil {
				return err
			}
			if session == nil {
				if required {
					metrics.GateDecisionsTotal.WithLabelValues("redirect_login").Inc()
					return c.Redirect(http.StatusSeeOther, "/login")
				}
				return next(c)
			}

			c.Set(ContextSessionID, id)
			c.Set(ContextSession, session)
			return next(c)
		}
	}
}

// resolve returns (id, session) or (_, nil) for "no session". An invalid or
// forged cookie is the same as no cookie; only store infrastructure
// failures surface as errors.
func resolve(c echo.Context, store ports.SessionStore, secret, cookieName string) (string, *domain.Session, error) {
	cookie, err := c.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", nil, nil
	}

	id := parseSessionID(secret, cookie.Value)
	if id == "" {
		return "", nil, nil
	}

	session, err := store.Read(c.Request().Context(), id)
	if err != nil {
		return "", nil, err
	}
	if !session.Valid() {
		return "", nil, nil
	}
	return id, session, nil
}

// parseSessionID validates the cookie JWT and extracts the session id.
func parseSessionID(secret, raw string) string {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		return ""
	}

	id, _ := claims["sid"].(string)
	return id
}
