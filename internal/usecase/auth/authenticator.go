package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/pkg/jwt"
)

// TokenVerifier validates an ID token and returns its claims
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*jwt.FirebaseClaims, error)
}

// RevocationChecker reports disabled accounts and revoked sessions
type RevocationChecker interface {
	CheckRevoked(ctx context.Context, uid string, issuedAt time.Time) error
}

// Authenticator turns a bearer token into an allowlisted user
type Authenticator struct {
	verifier   TokenVerifier
	revocation RevocationChecker
	allowlist  map[string]struct{}
	logger     *zap.Logger
}

// NewAuthenticator creates a new authenticator. revocation may be nil,
// in which case tokens are only checked offline.
func NewAuthenticator(verifier TokenVerifier, revocation RevocationChecker, allowlist []string, logger *zap.Logger) *Authenticator {
	if logger == nil {
		logger = zap.NewNop()
	}
	allowed := make(map[string]struct{}, len(allowlist))
	for _, email := range allowlist {
		if email = strings.TrimSpace(email); email != "" {
			allowed[email] = struct{}{}
		}
	}
	return &Authenticator{
		verifier:   verifier,
		revocation: revocation,
		allowlist:  allowed,
		logger:     logger,
	}
}

// Authenticate verifies token and checks the caller against the allowlist
func (a *Authenticator) Authenticate(ctx context.Context, token string) (*entities.User, error) {
	if token == "" {
		return nil, entities.ErrMissingToken
	}

	claims, err := a.verifier.Verify(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entities.ErrInvalidToken, err)
	}

	if claims.Email == "" || !a.IsAllowed(claims.Email) {
		a.logger.Warn("user not in allowlist",
			zap.String("uid", claims.Subject),
			zap.String("email", claims.Email),
		)
		return nil, entities.ErrNotAllowlisted
	}

	// Only allowlisted callers reach the revocation lookup
	if a.revocation != nil {
		var issuedAt time.Time
		if claims.IssuedAt != nil {
			issuedAt = claims.IssuedAt.Time
		}
		if err := a.revocation.CheckRevoked(ctx, claims.Subject, issuedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", entities.ErrInvalidToken, err)
		}
	}

	return &entities.User{UID: claims.Subject, Email: claims.Email}, nil
}

// IsAllowed reports whether email is on the allowlist. Comparison is exact.
func (a *Authenticator) IsAllowed(email string) bool {
	_, ok := a.allowlist[email]
	return ok
}
