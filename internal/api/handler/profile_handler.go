package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// ProfileHandler serves the signed-in user's own profile. Edits refresh the
// cached session snapshot so the next gate decision sees the new data.
type ProfileHandler struct {
	profiles ports.ProfileAPI
	store    ports.SessionStore
	log      zerolog.Logger
}

func NewProfileHandler(profiles ports.ProfileAPI, store ports.SessionStore, log zerolog.Logger) *ProfileHandler {
	return &ProfileHandler{profiles: profiles, store: store, log: log}
}

type profileRequest struct {
	Name  *string `json:"name" validate:"required"`
	Phone *string `json:"phone"`
	Bio   *string `json:"bio"`
}

type passwordRequest struct {
	CurrentPassword      string `json:"current_password" validate:"required"`
	Password             string `json:"password" validate:"required,min=8"`
	PasswordConfirmation string `json:"password_confirmation" validate:"required,eqfield=Password"`
}

// Get serves GET /profile from upstream, not from the cached snapshot, so
// the page always shows the current profile.
func (h *ProfileHandler) Get(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	user, err := h.profiles.Profile(c.Request().Context(), session.Token)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update serves PUT /profile for plain JSON edits.
func (h *ProfileHandler) Update(c echo.Context) error {
	id, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req profileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	user, err := h.profiles.UpdateProfile(c.Request().Context(), session.Token, ports.ProfileInput{
		Name:  req.Name,
		Phone: req.Phone,
		Bio:   req.Bio,
	})
	if err != nil {
		return err
	}

	h.refreshSnapshot(c, id, session, user)
	return c.JSON(http.StatusOK, user)
}

// UpdateWithAvatar serves POST /profile for multipart edits. When no avatar
// file is attached the edit falls back to the JSON update path.
func (h *ProfileHandler) UpdateWithAvatar(c echo.Context) error {
	id, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	in := ports.ProfileInput{
		Name:  formValue(c, "name"),
		Phone: formValue(c, "phone"),
		Bio:   formValue(c, "bio"),
	}
	if in.Name == nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "name is required")
	}

	var user *domain.User
	fh, err := c.FormFile("avatar")
	if err != nil {
		user, err = h.profiles.UpdateProfile(c.Request().Context(), session.Token, in)
		if err != nil {
			return err
		}
		h.refreshSnapshot(c, id, session, user)
		return c.JSON(http.StatusOK, user)
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read avatar upload")
	}
	defer src.Close()

	user, err = h.profiles.UpdateProfileWithAvatar(c.Request().Context(), session.Token, in, ports.Upload{
		FileName:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Reader:      src,
	})
	if err != nil {
		return err
	}

	h.refreshSnapshot(c, id, session, user)
	return c.JSON(http.StatusOK, user)
}

// ChangePassword serves PUT /profile/password.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	_, session, err := ctxSession(c)
	if err != nil {
		return err
	}

	var req passwordRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.profiles.ChangePassword(c.Request().Context(), session.Token, ports.PasswordInput{
		CurrentPassword:      req.CurrentPassword,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// refreshSnapshot overwrites the stored session with the updated user. A
// store failure only leaves the snapshot briefly behind upstream; the next
// reconciliation catches up.
func (h *ProfileHandler) refreshSnapshot(c echo.Context, id string, session *domain.Session, user *domain.User) {
	session.User = user
	if err := h.store.Write(c.Request().Context(), id, session); err != nil {
		h.log.Warn().Err(err).Str("session_id", id).Msg("profile update: session snapshot not refreshed")
	}
}

func formValue(c echo.Context, name string) *string {
	values, err := c.FormParams()
	if err != nil {
		return nil
	}
	if vs, ok := values[name]; ok && len(vs) > 0 {
		return &vs[0]
	}
	return nil
}
