package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
)

const testSecret = "test-secret"

type stubStore struct {
	sessions map[string]*domain.Session
	reads    int
	readErr  error
}

func (s *stubStore) Read(_ context.Context, id string) (*domain.Session, error) {
	s.reads++
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.sessions[id], nil
}

func (s *stubStore) Write(_ context.Context, id string, session *domain.Session) error {
	if s.sessions == nil {
		s.sessions = make(map[string]*domain.Session)
	}
	s.sessions[id] = session
	return nil
}

func (s *stubStore) Clear(_ context.Context, id string) error {
	delete(s.sessions, id)
	return nil
}

func signedCookie(t *testing.T, secret, sid string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"sid": sid,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign cookie: %v", err)
	}
	return raw
}

func runMiddleware(t *testing.T, mw echo.MiddlewareFunc, req *http.Request) (*httptest.ResponseRecorder, echo.Context, bool) {
	t.Helper()
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	return rec, c, called
}

func TestSession_NoCookieRedirectsToLogin(t *testing.T) {
	store := &stubStore{}
	mw := Session(store, testSecret, "portal_session")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rec, _, called := runMiddleware(t, mw, req)

	if called {
		t.Fatal("handler must not run without a session")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected /login redirect, got %q", loc)
	}
	if store.reads != 0 {
		t.Fatalf("store must not be consulted without a cookie, got %d reads", store.reads)
	}
}

func TestSession_ForgedCookieIsNoCookie(t *testing.T) {
	store := &stubStore{}
	mw := Session(store, testSecret, "portal_session")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: signedCookie(t, "wrong-secret", "s1")})
	rec, _, called := runMiddleware(t, mw, req)

	if called {
		t.Fatal("handler must not run with a forged cookie")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
	if store.reads != 0 {
		t.Fatalf("forged cookie must not reach the store, got %d reads", store.reads)
	}
}

func TestSession_ValidCookieWithoutStoredSessionRedirects(t *testing.T) {
	store := &stubStore{sessions: map[string]*domain.Session{}}
	mw := Session(store, testSecret, "portal_session")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: signedCookie(t, testSecret, "gone")})
	rec, _, called := runMiddleware(t, mw, req)

	if called {
		t.Fatal("handler must not run for a revoked session")
	}
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", rec.Code)
	}
}

func TestSession_InjectsStoredSession(t *testing.T) {
	session := &domain.Session{
		Token: "tok",
		User:  &domain.User{ID: 1, Role: domain.RoleAdmin, Status: domain.StatusApproved},
	}
	store := &stubStore{sessions: map[string]*domain.Session{"s1": session}}
	mw := Session(store, testSecret, "portal_session")

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "portal_session", Value: signedCookie(t, testSecret, "s1")})
	_, c, called := runMiddleware(t, mw, req)

	if !called {
		t.Fatal("handler must run for a valid session")
	}
	got, ok := c.Get(ContextSession).(*domain.Session)
	if !ok || got.Token != "tok" {
		t.Fatalf("expected session in context, got %+v", c.Get(ContextSession))
	}
	if id, _ := c.Get(ContextSessionID).(string); id != "s1" {
		t.Fatalf("expected session id in context, got %q", id)
	}
}

func TestOptionalSession_SignedOutPassesThrough(t *testing.T) {
	store := &stubStore{}
	mw := OptionalSession(store, testSecret, "portal_session")

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec, c, called := runMiddleware(t, mw, req)

	if !called {
		t.Fatal("optional session must not block signed-out requests")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if c.Get(ContextSession) != nil {
		t.Fatal("no session must be injected")
	}
}
