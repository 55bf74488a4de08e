package jwt

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	issuerPrefix  = "https://securetoken.google.com/"
	maxSubjectLen = 128
)

// KeySource resolves the public key a token was signed with
type KeySource interface {
	PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error)
}

// Verifier checks Firebase ID tokens for a single project
type Verifier struct {
	projectID string
	issuer    string
	keys      KeySource
	leeway    time.Duration
	now       func() time.Time
}

// NewVerifier creates a new ID token verifier
func NewVerifier(projectID string, keys KeySource) *Verifier {
	return &Verifier{
		projectID: projectID,
		issuer:    issuerPrefix + projectID,
		keys:      keys,
		leeway:    5 * time.Second,
		now:       time.Now,
	}
}

// Verify validates the signature and the standard Firebase claims and
// returns the parsed claims
func (v *Verifier) Verify(ctx context.Context, tokenString string) (*FirebaseClaims, error) {
	if tokenString == "" {
		return nil, errors.New("token is empty")
	}

	claims := &FirebaseClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, errors.New("token has no kid header")
		}
		return v.keys.PublicKey(ctx, kid)
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithAudience(v.projectID),
		jwt.WithIssuer(v.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token has an empty subject")
	}
	if len(claims.Subject) > maxSubjectLen {
		return nil, fmt.Errorf("token subject is longer than %d characters", maxSubjectLen)
	}
	if claims.AuthTime > v.now().Add(v.leeway).Unix() {
		return nil, errors.New("token auth_time is in the future")
	}

	return claims, nil
}
