package upstream

import (
	"context"
	"net/http"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type loginBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerBody struct {
	Name                 string `json:"name"`
	Email                string `json:"email"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Login exchanges credentials for a bearer token and user snapshot.
func (c *Client) Login(ctx context.Context, email, password string) (*domain.Credentials, error) {
	var creds domain.Credentials
	err := c.do(ctx, call{
		op:     "login",
		method: http.MethodPost,
		path:   "/api/login",
		body:   loginBody{Email: email, Password: password},
		out:    &creds,
	})
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// Register creates a new investor account; new registrations come back with
// pending status.
func (c *Client) Register(ctx context.Context, in ports.RegisterInput) (*domain.Credentials, error) {
	var creds domain.Credentials
	err := c.do(ctx, call{
		op:     "register",
		method: http.MethodPost,
		path:   "/api/register",
		body: registerBody{
			Name:                 in.Name,
			Email:                in.Email,
			Password:             in.Password,
			PasswordConfirmation: in.PasswordConfirmation,
		},
		out: &creds,
	})
	if err != nil {
		return nil, err
	}
	return &creds, nil
}

// Logout revokes the token upstream.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, call{
		op:     "logout",
		method: http.MethodPost,
		path:   "/api/logout",
		token:  token,
	})
}

// Me fetches the canonical user record for the token's owner.
func (c *Client) Me(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, call{
		op:     "me",
		method: http.MethodGet,
		path:   "/api/me",
		token:  token,
		out:    &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}
