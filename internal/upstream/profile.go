package upstream

import (
	"context"
	"mime/multipart"
	"net/http"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

type profileBody struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

type passwordBody struct {
	CurrentPassword      string `json:"current_password"`
	Password             string `json:"password"`
	PasswordConfirmation string `json:"password_confirmation"`
}

// Profile fetches the current user's record including the profile sub-record.
func (c *Client) Profile(ctx context.Context, token string) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, call{
		op:     "get_profile",
		method: http.MethodGet,
		path:   "/api/profile",
		token:  token,
		out:    &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfile applies a JSON profile edit.
func (c *Client) UpdateProfile(ctx context.Context, token string, in ports.ProfileInput) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, call{
		op:     "update_profile",
		method: http.MethodPut,
		path:   "/api/profile",
		token:  token,
		body:   profileBody{Name: in.Name, Phone: in.Phone, Bio: in.Bio},
		out:    &user,
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateProfileWithAvatar applies a profile edit carrying an avatar file.
// The upstream API takes file-bearing updates as a POST with a _method=PUT
// override, so the edit goes out as multipart form data.
func (c *Client) UpdateProfileWithAvatar(ctx context.Context, token string, in ports.ProfileInput, avatar ports.Upload) (*domain.User, error) {
	var user domain.User
	err := c.doMultipart(ctx, "update_profile_avatar", "/api/profile", token, func(w *multipart.Writer) error {
		if err := w.WriteField("_method", "PUT"); err != nil {
			return err
		}
		if in.Name != nil {
			if err := w.WriteField("name", *in.Name); err != nil {
				return err
			}
		}
		if err := w.WriteField("phone", stringOrEmpty(in.Phone)); err != nil {
			return err
		}
		if err := w.WriteField("bio", stringOrEmpty(in.Bio)); err != nil {
			return err
		}
		return writeUpload(w, "avatar", avatar)
	}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword rotates the current user's password.
func (c *Client) ChangePassword(ctx context.Context, token string, in ports.PasswordInput) error {
	return c.do(ctx, call{
		op:     "change_password",
		method: http.MethodPut,
		path:   "/api/profile/password",
		token:  token,
		body: passwordBody{
			CurrentPassword:      in.CurrentPassword,
			Password:             in.Password,
			PasswordConfirmation: in.PasswordConfirmation,
		},
	})
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
