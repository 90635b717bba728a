// Package auth mints and verifies the HS256 access tokens used by the sales
// data server, and hashes passwords for the credential store.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/salesinsight/internal/common"
	"github.com/dmitrijs2005/salesinsight/internal/server/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenConfig is the signing state shared by Issuer and Verifier. It is
// built once at startup from the server configuration.
type TokenConfig struct {
	SecretKey []byte
	Lifetime  time.Duration
	Issuer    string
}

func (c TokenConfig) validate() error {
	if len(c.SecretKey) == 0 {
		return errors.New("token config: empty secret key")
	}
	if c.Lifetime <= 0 {
		return errors.New("token config: lifetime must be positive")
	}
	return nil
}

// Claims are the registered JWT claims carried by an access token: sub is the
// username, jti a random id.
type Claims struct {
	jwt.RegisteredClaims
}

// Option customises an Issuer or Verifier.
type Option func(*clock)

type clock struct {
	now func() time.Time
}

// WithClock replaces time.Now. Tests use it to pin issue and verify times.
func WithClock(now func() time.Time) Option {
	return func(c *clock) { c.now = now }
}

func newClock(opts []Option) clock {
	c := clock{now: time.Now}
	for _, o := range opts {
		o(&c)
	}
	return c
}

// Issuer signs access tokens.
type Issuer struct {
	cfg   TokenConfig
	clock clock
}

func NewIssuer(cfg TokenConfig, opts ...Option) (*Issuer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Issuer{cfg: cfg, clock: newClock(opts)}, nil
}

// Issue returns a bearer token for subject valid for the configured lifetime.
func (i *Issuer) Issue(subject string) (*models.Token, error) {
	if subject == "" {
		return nil, errors.New("issue token: empty subject")
	}

	now := i.clock.now()
	expiresAt := now.Add(i.cfg.Lifetime)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    i.cfg.Issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(i.cfg.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &models.Token{
		AccessToken: signed,
		TokenType:   common.TokenTypeBearer,
		ExpiresAt:   expiresAt,
	}, nil
}

// Verifier checks access tokens. It holds no mutable state, so one instance
// serves all requests.
type Verifier struct {
	cfg    TokenConfig
	clock  clock
	parser *jwt.Parser
}

func NewVerifier(cfg TokenConfig, opts ...Option) (*Verifier, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	v := &Verifier{cfg: cfg, clock: newClock(opts)}

	parserOpts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return v.clock.now() }),
	}
	if cfg.Issuer != "" {
		parserOpts = append(parserOpts, jwt.WithIssuer(cfg.Issuer))
	}
	v.parser = jwt.NewParser(parserOpts...)

	return v, nil
}

// Verify resolves tokenString to the identity it was issued for. Every
// failure matches common.ErrUnauthenticated plus one of ErrMissingToken,
// ErrTokenExpired or ErrInvalidToken.
func (v *Verifier) Verify(tokenString string) (*models.Identity, error) {
	if tokenString == "" {
		return nil, unauthenticated(common.ErrMissingToken)
	}

	claims := &Claims{}
	token, err := v.parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return v.cfg.SecretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, unauthenticated(common.ErrTokenExpired)
		}
		return nil, fmt.Errorf("%w: %w: %v", common.ErrUnauthenticated, common.ErrInvalidToken, err)
	}

	if !token.Valid || claims.Subject == "" {
		return nil, unauthenticated(common.ErrInvalidToken)
	}

	return &models.Identity{UserName: claims.Subject}, nil
}

func unauthenticated(reason error) error {
	return fmt.Errorf("%w: %w", common.ErrUnauthenticated, reason)
}
