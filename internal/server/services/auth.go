// Package services contains server-side business logic: password login and
// token issuance (AuthService) and access to the sales records (SalesService).
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/logging"
	"github.com/dmitrijs2005/salesinsight/internal/server/auth"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
	"github.com/dmitrijs2005/salesinsight/internal/server/repositories/users"
)

// dummyHash is compared against when the username is unknown, so that a
// failed login costs one bcrypt comparison either way.
var dummyHash = sync.OnceValue(func() string {
	h, err := auth.HashPassword("salesinsight-dummy-password", 0)
	if err != nil {
		panic(err)
	}
	return h
})

// AuthService checks credentials against the credential store, issues access
// tokens and resolves verified tokens back to users.
type AuthService struct {
	users    users.Repository
	issuer   *auth.Issuer
	verifier *auth.Verifier
	logger   logging.Logger
}

func NewAuthService(repo users.Repository, issuer *auth.Issuer, verifier *auth.Verifier, logger logging.Logger) *AuthService {
	return &AuthService{
		users:    repo,
		issuer:   issuer,
		verifier: verifier,
		logger:   logger.With("module", "auth_service"),
	}
}

// Authenticate verifies username and password and returns a fresh access
// token. Unknown users and wrong passwords both yield common.ErrorUnauthorized.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*models.Token, error) {
	user, err := s.users.GetUserByLogin(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			_ = auth.ComparePasswordAndHash(password, dummyHash())
			s.logger.Info(ctx, "login failed", "username", username, "reason", "unknown user")
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "credential store lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	if err := auth.ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrMismatchedHashAndPassword) {
			s.logger.Info(ctx, "login failed", "username", username, "reason", "wrong password")
			return nil, common.ErrorUnauthorized
		}
		s.logger.Error(ctx, "stored password hash is unusable", "username", username, "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	token, err := s.issuer.Issue(user.UserName)
	if err != nil {
		s.logger.Error(ctx, "token issue failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}

	s.logger.Info(ctx, "token issued", "username", user.UserName, "expires_at", token.ExpiresAt)
	return token, nil
}

// VerifyToken checks token and returns the user it was issued for.
func (s *AuthService) VerifyToken(ctx context.Context, token string) (*models.User, error) {
	identity, err := s.verifier.Verify(token)
	if err != nil {
		return nil, err
	}
	return s.CurrentUser(ctx, identity)
}

// CurrentUser resolves a verified identity against the credential store. A
// username that is no longer present is treated as an invalid token.
func (s *AuthService) CurrentUser(ctx context.Context, identity *models.Identity) (*models.User, error) {
	user, err := s.users.GetUserByLogin(ctx, identity.UserName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, fmt.Errorf("%w: %w: unknown subject %q", common.ErrUnauthenticated, common.ErrInvalidToken, identity.UserName)
		}
		s.logger.Error(ctx, "credential store lookup failed", "error", err)
		return nil, fmt.Errorf("%w: %w", common.ErrorInternal, err)
	}
	return user, nil
}
