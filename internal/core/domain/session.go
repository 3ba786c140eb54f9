package domain

// Session pairs the upstream bearer token with the cached user snapshot.
// One session exists per signed-in browser; the store applies last-write-wins
// with no cross-tab reconciliation.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Valid reports whether the session carries both a token and a user snapshot.
// Anything less is treated as "no session" rather than an error.
func (s *Session) Valid() bool {
	return s != nil && s.Token != "" && s.User != nil
}

// Credentials is the upstream response to a successful login or registration.
type Credentials struct {
	User      *User  `json:"user"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}
