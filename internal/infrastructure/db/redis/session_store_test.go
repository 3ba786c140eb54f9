package redis

import "testing"

func TestDecodeSession(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		wantNil bool
	}{
		{"complete session", `{"token":"abc","user":{"id":1,"name":"Alice","role":"investor","status":"approved"}}`, false},
		{"not json", `{{{`, true},
		{"missing token", `{"user":{"id":1}}`, true},
		{"missing user", `{"token":"abc"}`, true},
		{"empty object", `{}`, true},
		{"wrong shape", `[1,2,3]`, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := DecodeSession([]byte(tc.raw))
			if tc.wantNil && got != nil {
				t.Fatalf("expected nil, got %+v", got)
			}
			if !tc.wantNil && got == nil {
				t.Fatal("expected a session, got nil")
			}
		})
	}
}

func TestDecodeSession_PreservesFields(t *testing.T) {
	raw := `{"token":"tok-1","user":{"id":42,"name":"Bob","email":"b@example.com","role":"admin","status":"approved"}}`

	got := DecodeSession([]byte(raw))
	if got == nil {
		t.Fatal("expected session")
	}
	if got.Token != "tok-1" || got.User.ID != 42 || got.User.Role != "admin" {
		t.Fatalf("unexpected decode: %+v", got)
	}
}
