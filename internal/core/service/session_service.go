package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/ravokstudios/investor-portal/internal/api/metrics"
	"github.com/ravokstudios/investor-portal/internal/core/domain"
	"github.com/ravokstudios/investor-portal/internal/core/ports"
)

// SessionService implements the session lifecycle: exchanging credentials
// with the upstream API, persisting the resulting session, and minting the
// signed cookie that references it.
type SessionService struct {
	api    ports.AuthAPI
	store  ports.SessionStore
	secret string
	ttl    time.Duration
	log    zerolog.Logger
}

func NewSessionService(api ports.AuthAPI, store ports.SessionStore, secret string, ttl time.Duration, log zerolog.Logger) *SessionService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &SessionService{
		api:    api,
		store:  store,
		secret: secret,
		ttl:    ttl,
		log:    log.With().Str("component", "sessions").Logger(),
	}
}

// Login authenticates against upstream and starts a session.
func (s *SessionService) Login(ctx context.Context, email, password string) (*ports.StartedSession, error) {
	creds, err := s.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	metrics.SessionsStartedTotal.WithLabelValues("login").Inc()
	return s.start(ctx, creds)
}

// Register creates an upstream account and starts a session; fresh investor
// accounts land on the pending area until approved.
func (s *SessionService) Register(ctx context.Context, in ports.RegisterInput) (*ports.StartedSession, error) {
	creds, err := s.api.Register(ctx, in)
	if err != nil {
		return nil, err
	}
	metrics.SessionsStartedTotal.WithLabelValues("register").Inc()
	return s.start(ctx, creds)
}

// Logout notifies upstream on a best-effort basis; the local session is
// cleared regardless of that call's outcome.
func (s *SessionService) Logout(ctx context.Context, sessionID string, session *domain.Session) error {
	if session.Valid() {
		if err := s.api.Logout(ctx, session.Token); err != nil {
			s.log.Debug().Err(err).Msg("upstream logout failed, clearing session anyway")
		}
	}
	if sessionID == "" {
		return nil
	}
	if err := s.store.Clear(ctx, sessionID); err != nil {
		return err
	}
	metrics.SessionsEndedTotal.Inc()
	return nil
}

// Reconcile overwrites the cached user snapshot with the server's canonical
// record and returns the fresh copy. A failed store write is logged but not
// fatal: the caller still gets server truth for this request.
func (s *SessionService) Reconcile(ctx context.Context, sessionID string, session *domain.Session) (*domain.User, error) {
	fresh, err := s.api.Me(ctx, session.Token)
	if err != nil {
		metrics.ReconciliationsTotal.WithLabelValues("stale").Inc()
		return nil, err
	}
	metrics.ReconciliationsTotal.WithLabelValues("refreshed").Inc()

	session.User = fresh
	if err := s.store.Write(ctx, sessionID, session); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist reconciled session")
	}
	return fresh, nil
}

func (s *SessionService) start(ctx context.Context, creds *domain.Credentials) (*ports.StartedSession, error) {
	id := uuid.NewString()
	session := &domain.Session{Token: creds.Token, User: creds.User}
	if err := s.store.Write(ctx, id, session); err != nil {
		return nil, err
	}

	cookie, err := s.signCookie(id)
	if err != nil {
		return nil, err
	}

	return &ports.StartedSession{
		ID:     id,
		Cookie: cookie,
		User:   creds.User,
		Area:   domain.AuthorizedAreaFor(creds.User),
	}, nil
}

// signCookie mints the HS256 JWT the browser holds. It carries only the
// session id and expiry; everything else lives server-side so a session can
// be revoked by deleting its store entry.
func (s *SessionService) signCookie(id string) (string, error) {
	claims := jwt.MapClaims{
		"sid": id,
		"exp": time.Now().Add(s.ttl).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.secret))
}
