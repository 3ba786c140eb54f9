package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/api/middleware"
	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

// ctxSession extracts the session injected by the Session middleware.
// Presence proves the gate ran; a handler reached without one reports
// ErrNoSession rather than calling upstream with an empty token.
func ctxSession(c echo.Context) (id string, session *domain.Session, err error) {
	session, ok := c.Get(middleware.ContextSession).(*domain.Session)
	if !ok || !session.Valid() {
		return "", nil, domain.ErrNoSession
	}
	id, _ = c.Get(middleware.ContextSessionID).(string)
	return id, session, nil
}

// pathID parses the :id route parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// queryPage parses the 1-based page query parameter, defaulting to 1.
func queryPage(c echo.Context) int {
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
