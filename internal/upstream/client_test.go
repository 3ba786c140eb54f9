package upstream

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, zerolog.Nop()), srv
}

func TestClient_SendsAuthHeaders(t *testing.T) {
	var gotAuth, gotAccept, gotRequestedWith string
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotRequestedWith = r.Header.Get("X-Requested-With")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":1,"name":"Alice"}`))
	})

	if _, err := client.Me(context.Background(), "token123"); err != nil {
		t.Fatalf("me: %v", err)
	}

	if gotAuth != "Bearer token123" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
	if gotAccept != "application/json" {
		t.Fatalf("expected json accept header, got %q", gotAccept)
	}
	if gotRequestedWith != "XMLHttpRequest" {
		t.Fatalf("expected XMLHttpRequest header, got %q", gotRequestedWith)
	}
}

func TestClient_PublicCallsCarryNoAuthorization(t *testing.T) {
	var sawAuth bool
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		sawAuth = r.Header.Get("Authorization") != ""
		_, _ = w.Write([]byte(`[]`))
	})

	if _, err := client.PublicCategories(context.Background()); err != nil {
		t.Fatalf("public categories: %v", err)
	}
	if sawAuth {
		t.Fatal("public endpoints must not send an Authorization header")
	}
}

func TestClient_ErrorMessageFromString(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Invalid credentials"}`))
	})

	_, err := client.Login(context.Background(), "a@example.com", "bad")
	var upErr *Error
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if upErr.Status != http.StatusUnauthorized || upErr.Message != "Invalid credentials" {
		t.Fatalf("unexpected error: %+v", upErr)
	}
}

func TestClient_ErrorMessageFromArray(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"message":["Name is required","Email is required"]}`))
	})

	_, err := client.Register(context.Background(), ports.RegisterInput{})
	var upErr *Error
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if upErr.Message != "Name is required" {
		t.Fatalf("expected first message of the array, got %q", upErr.Message)
	}
}

func TestClient_ErrorMessageFallsBackToStatusText(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>gateway error</html>`))
	})

	_, err := client.Me(context.Background(), "t")
	var upErr *Error
	if !errors.As(err, &upErr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if upErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Fatalf("expected status text fallback, got %q", upErr.Message)
	}
}

func TestClient_TransportFailureIsUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on
	client := New(srv.URL, zerolog.Nop())

	_, err := client.Me(context.Background(), "t")
	if !errors.Is(err, ErrUnreachable) {
		t.Fatalf("expected ErrUnreachable, got %v", err)
	}
	if err.Error() != UnreachableMessage {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestClient_NoContentSuccess(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("expected DELETE, got %s", r.Method)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	if err := client.DeleteCategory(context.Background(), "t", 5); err != nil {
		t.Fatalf("delete: %v", err)
	}
}

func TestClient_PaginationEnvelopePassthrough(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("role"); got != "investor" {
			t.Fatalf("expected role filter, got %q", got)
		}
		if got := r.URL.Query().Get("status"); got != "pending" {
			t.Fatalf("expected status filter, got %q", got)
		}
		if got := r.URL.Query().Get("page"); got != "2" {
			t.Fatalf("expected page filter, got %q", got)
		}
		_, _ = w.Write([]byte(`{
			"data":[{"id":1,"name":"Alice"},{"id":2,"name":"Bob"}],
			"current_page":2,"last_page":4,"per_page":2,"total":8
		}`))
	})

	page, err := client.Users(context.Background(), "t", ports.UserFilter{
		Role:   "investor",
		Status: "pending",
		Page:   2,
	})
	if err != nil {
		t.Fatalf("users: %v", err)
	}
	if len(page.Data) != 2 || page.CurrentPage != 2 || page.LastPage != 4 || page.Total != 8 {
		t.Fatalf("unexpected page: %+v", page)
	}
	if page.Data[0].Name != "Alice" {
		t.Fatalf("unexpected first row: %+v", page.Data[0])
	}
}

func TestClient_EmptyBodySuccess(t *testing.T) {
	client, _ := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	if err := client.Logout(context.Background(), "t"); err != nil {
		t.Fatalf("logout with empty body must succeed, got %v", err)
	}
}
