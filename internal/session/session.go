// Package session tracks the authenticated user. The backend issues a
// bearer token on login; the client keeps it in the preference store, reads
// the identity claims out of it, and publishes the identity as a broadcast
// cell consumed by the review aggregation.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"storefront-client/internal/domain"
	"storefront-client/internal/observe"
	"storefront-client/internal/remote"
)

// ErrBadCredentials indicates the backend rejected the login.
var ErrBadCredentials = errors.New("bad credentials")

type authClient interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type tokenStore interface {
	SessionToken() string
	SetSessionToken(token string) error
	ClearSessionToken() error
}

// Store owns the authenticated identity. Nil identity means no user is
// signed in.
type Store struct {
	remote   authClient
	prefs    tokenStore
	logger   *zap.Logger
	identity *observe.Cell[*domain.Identity]
}

func NewStore(remote authClient, prefs tokenStore, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		remote:   remote,
		prefs:    prefs,
		logger:   logger,
		identity: observe.NewCell[*domain.Identity](nil),
	}
}

// Identity is the reactive authenticated identity, nil when signed out.
func (s *Store) Identity() *observe.Cell[*domain.Identity] {
	return s.identity
}

// Restore signs the user back in from a persisted, still-valid token. An
// absent, unparsable or expired token leaves the store signed out.
func (s *Store) Restore() {
	token := s.prefs.SessionToken()
	if token == "" {
		return
	}
	ident, err := identityFromToken(token)
	if err != nil {
		s.logger.Info("discarding persisted session token", zap.Error(err))
		if err := s.prefs.ClearSessionToken(); err != nil {
			s.logger.Warn("clear session token", zap.Error(err))
		}
		return
	}
	s.identity.Set(ident)
	s.logger.Info("session restored", zap.String("email", ident.Email))
}

// Login exchanges credentials for a backend token and signs the user in.
func (s *Store) Login(ctx context.Context, email, password string) error {
	token, err := s.remote.Login(ctx, email, password)
	if err != nil {
		if isAuthRejection(err) {
			return ErrBadCredentials
		}
		return fmt.Errorf("login: %w", err)
	}
	ident, err := identityFromToken(token)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err := s.prefs.SetSessionToken(token); err != nil {
		s.logger.Warn("persist session token", zap.Error(err))
	}
	s.identity.Set(ident)
	s.logger.Info("signed in", zap.String("email", ident.Email))
	return nil
}

// Logout clears the persisted token and the identity.
func (s *Store) Logout() {
	if err := s.prefs.ClearSessionToken(); err != nil {
		s.logger.Warn("clear session token", zap.Error(err))
	}
	s.identity.Set(nil)
	s.logger.Info("signed out")
}

func isAuthRejection(err error) bool {
	var srvErr *remote.ServerError
	if !errors.As(err, &srvErr) {
		return false
	}
	return srvErr.Status == 401 || srvErr.Status == 403
}

// identityFromToken reads the identity claims out of the backend-issued
// token. The client has no verification key; the token is trusted as issued
// and only checked for shape and expiry.
func identityFromToken(token string) (*domain.Identity, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("token expiry claim: %w", err)
	}
	if exp != nil && exp.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	email := stringClaim(claims, "email")
	if email == "" {
		email, err = claims.GetSubject()
		if err != nil || email == "" {
			return nil, errors.New("token carries no identity")
		}
	}
	return &domain.Identity{
		Email: email,
		Name:  stringClaim(claims, "name"),
	}, nil
}

func stringClaim(claims jwt.MapClaims, key string) string {
	if v, ok := claims[key].(string); ok {
		return v
	}
	return ""
}
