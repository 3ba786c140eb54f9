package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ravokstudios/investor-portal/internal/api/middleware"
	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type stubSessionService struct {
	loginFn    func(ctx context.Context, email, password string) (*ports.StartedSession, error)
	registerFn func(ctx context.Context, in ports.RegisterInput) (*ports.StartedSession, error)
	logoutFn   func(ctx context.Context, sessionID string, session *domain.Session) error
}

func (s *stubSessionService) Login(ctx context.Context, email, password string) (*ports.StartedSession, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubSessionService) Register(ctx context.Context, in ports.RegisterInput) (*ports.StartedSession, error) {
	return s.registerFn(ctx, in)
}

func (s *stubSessionService) Logout(ctx context.Context, sessionID string, session *domain.Session) error {
	return s.logoutFn(ctx, sessionID, session)
}

func (s *stubSessionService) Reconcile(context.Context, string, *domain.Session) (*domain.User, error) {
	panic("not used")
}

func testCookieConfig() CookieConfig {
	return CookieConfig{Name: "portal_session", Secure: false, TTL: 24 * time.Hour}
}

func newTestContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()
	res := rec.Result()
	for _, cookie := range res.Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)
	return nil
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*ports.StartedSession, error) {
			if email != "alice@example.com" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &ports.StartedSession{
				ID:     "s1",
				Cookie: "signed-cookie",
				User:   &domain.User{ID: 1, Name: "Alice", Role: domain.RoleAdmin, Status: domain.StatusApproved},
				Area:   domain.AreaAdmin,
			}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookieConfig())

	c, rec := newTestContext(t, http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	cookie := sessionCookie(t, rec, "portal_session")
	if cookie.Value != "signed-cookie" {
		t.Fatalf("unexpected cookie value: %q", cookie.Value)
	}
	if !cookie.HttpOnly {
		t.Fatal("session cookie must be http-only")
	}
	if cookie.SameSite != http.SameSiteLaxMode {
		t.Fatalf("expected lax same-site, got %v", cookie.SameSite)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["area"] != "admin" {
		t.Fatalf("expected admin area, got %v", resp["area"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok || user["name"] != "Alice" {
		t.Fatalf("unexpected user payload: %+v", resp["user"])
	}
}

func TestAuthHandler_Login_MissingEmailIsRejected(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*ports.StartedSession, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, testCookieConfig())

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", `{"password":"secret"}`)
	err := handler.Login(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubSessionService{
		loginFn: func(ctx context.Context, email, password string) (*ports.StartedSession, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, testCookieConfig())

	c, _ := newTestContext(t, http.MethodPost, "/auth/login", "{")
	err := handler.Login(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Register_Success(t *testing.T) {
	stub := &stubSessionService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.StartedSession, error) {
			if in.Name != "Bob" || in.PasswordConfirmation != "longenough" {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &ports.StartedSession{
				ID:     "s2",
				Cookie: "signed-cookie",
				User:   &domain.User{ID: 2, Name: "Bob", Role: domain.RoleInvestor, Status: domain.StatusPending},
				Area:   domain.AreaPending,
			}, nil
		},
	}
	handler := NewAuthHandler(stub, testCookieConfig())

	body := `{"name":"Bob","email":"bob@example.com","password":"longenough","password_confirmation":"longenough"}`
	c, rec := newTestContext(t, http.MethodPost, "/auth/register", body)
	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["area"] != "pending" {
		t.Fatalf("fresh registration must land on pending, got %v", resp["area"])
	}
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	stub := &stubSessionService{
		registerFn: func(ctx context.Context, in ports.RegisterInput) (*ports.StartedSession, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, testCookieConfig())

	body := `{"name":"Bob","email":"bob@example.com","password":"longenough","password_confirmation":"different1"}`
	c, _ := newTestContext(t, http.MethodPost, "/auth/register", body)
	err := handler.Register(c)

	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Logout_SignedOutStillSucceeds(t *testing.T) {
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, sessionID string, session *domain.Session) error {
			t.Fatal("should not be called without a session")
			return nil
		},
	}
	handler := NewAuthHandler(stub, testCookieConfig())

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	cookie := sessionCookie(t, rec, "portal_session")
	if cookie.MaxAge >= 0 || cookie.Value != "" {
		t.Fatalf("expected cleared cookie, got %+v", cookie)
	}
}

func TestAuthHandler_Logout_ClearsSession(t *testing.T) {
	cleared := false
	stub := &stubSessionService{
		logoutFn: func(ctx context.Context, sessionID string, session *domain.Session) error {
			if sessionID != "s1" {
				t.Fatalf("unexpected session id: %q", sessionID)
			}
			cleared = true
			return nil
		},
	}
	handler := NewAuthHandler(stub, testCookieConfig())

	c, rec := newTestContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.ContextSessionID, "s1")
	c.Set(middleware.ContextSession, &domain.Session{Token: "t", User: &domain.User{ID: 1}})

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !cleared {
		t.Fatal("expected logout to clear the stored session")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Current_NoSession(t *testing.T) {
	handler := NewAuthHandler(&stubSessionService{}, testCookieConfig())

	c, _ := newTestContext(t, http.MethodGet, "/auth/session", "")
	if err := handler.Current(c); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession, got %v", err)
	}
}

func TestAuthHandler_Current_ReportsAreaFromSnapshot(t *testing.T) {
	handler := NewAuthHandler(&stubSessionService{}, testCookieConfig())

	c, rec := newTestContext(t, http.MethodGet, "/auth/session", "")
	c.Set(middleware.ContextSessionID, "s1")
	c.Set(middleware.ContextSession, &domain.Session{
		Token: "t",
		User:  &domain.User{ID: 3, Role: domain.RoleInvestor, Status: domain.StatusApproved},
	})

	if err := handler.Current(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["area"] != "investor" {
		t.Fatalf("expected investor area, got %v", resp["area"])
	}
}
