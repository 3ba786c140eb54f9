package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/api/metrics"
	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// HeaderSessionStale marks responses served from a cached user snapshot
// after a failed reconciliation attempt.
const HeaderSessionStale = "X-Session-Stale"

// Gate enforces that the session's authorized area matches the area the
// route group belongs to, redirecting to the correct one otherwise. It runs
// after Session and gates on the cached snapshot.
func Gate(area domain.Area) echo.MiddlewareFunc {
	return gate(area, nil)
}

// ReconcilingGate refreshes the cached user from upstream before gating, for
// routes where acting on a stale snapshot matters (an investor approved
// after their browser cached "pending" gets in without re-signing-in).
// Refresh failure is soft: the request continues on the cached snapshot with
// HeaderSessionStale set, so a transient upstream blip never bounces a
// legitimately signed-in user to the login page.
func ReconcilingGate(area domain.Area, sessions ports.SessionService) echo.MiddlewareFunc {
	return gate(area, sessions)
}

func gate(area domain.Area, sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, ok := c.Get(ContextSession).(*domain.Session)
			if !ok || !session.Valid() {
				metrics.GateDecisionsTotal.WithLabelValues("redirect_login").Inc()
				return c.Redirect(http.StatusSeeOther, "/login")
			}

			user := session.User
			if sessions != nil {
				id, _ := c.Get(ContextSessionID).(string)
				fresh, err := sessions.Reconcile(c.Request().Context(), id, session)
				if err != nil {
					c.Response().Header().Set(HeaderSessionStale, "true")
				} else {
					user = fresh
				}
			}

			if authorized := domain.AuthorizedAreaFor(user); authorized != area {
				metrics.GateDecisionsTotal.WithLabelValues("redirect_area").Inc()
				return c.Redirect(http.StatusSeeOther, authorized.Path())
			}

			metrics.GateDecisionsTotal.WithLabelValues("authorized").Inc()
			return next(c)
		}
	}
}
