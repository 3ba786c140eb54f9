package domain

import "errors"

const (
	RoleAdmin    = "admin"
	RoleInvestor = "investor"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Area identifies one of the portal's landing sections. Every signed-in user
// has exactly one authorized area at any point in time.
type Area string

const (
	AreaAdmin    Area = "admin"
	AreaInvestor Area = "investor"
	AreaPending  Area = "pending"
)

// Path returns the URL prefix the area is served under.
func (a Area) Path() string {
	switch a {
	case AreaAdmin:
		return "/admin"
	case AreaInvestor:
		return "/investor"
	default:
		return "/pending"
	}
}

var (
	ErrNoSession = errors.New("no active session")
	ErrForbidden = errors.New("access forbidden")
)

// Profile holds the optional contact sub-record attached to a user.
type Profile struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Phone  *string `json:"phone"`
	Avatar *string `json:"avatar"`
	Bio    *string `json:"bio"`
}

// User is the point-in-time snapshot of an account as last reported by the
// upstream API. The cached copy can drift from server truth (an admin may
// approve an investor while their session is live) until it is reconciled
// through the "me" endpoint.
type User struct {
	ID      int64    `json:"id"`
	Name    string   `json:"name"`
	Email   string   `json:"email"`
	Role    string   `json:"role"`
	Status  string   `json:"status"`
	Profile *Profile `json:"profile,omitempty"`
}

// AuthorizedAreaFor maps a user snapshot to the single area it may land on:
// admins land on the admin area regardless of status, approved investors on
// the investor dashboard, and everyone else on the pending page. This is the
// only place the role/status mapping lives; every gate goes through it.
func AuthorizedAreaFor(u *User) Area {
	if u.Role == RoleAdmin {
		return AreaAdmin
	}
	if u.Status == StatusApproved {
		return AreaInvestor
	}
	return AreaPending
}
