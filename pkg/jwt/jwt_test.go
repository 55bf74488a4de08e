package jwt

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProject = "mom-test"

type staticKeys map[string]*rsa.PublicKey

func (s staticKeys) PublicKey(_ context.Context, kid string) (*rsa.PublicKey, error) {
	key, ok := s[kid]
	if !ok {
		return nil, errors.New("unknown kid")
	}
	return key, nil
}

var testNow = time.Date(2024, time.July, 15, 12, 0, 0, 0, time.UTC)

func newKey(t *testing.T) *rsa.PrivateKey {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return key
}

func validClaims() *FirebaseClaims {
	return &FirebaseClaims{
		Email:         "user@example.com",
		EmailVerified: true,
		AuthTime:      testNow.Add(-time.Hour).Unix(),
		Firebase:      FirebaseInfo{SignInProvider: "google.com"},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuerPrefix + testProject,
			Audience:  jwt.ClaimStrings{testProject},
			Subject:   "uid-123",
			IssuedAt:  jwt.NewNumericDate(testNow.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(testNow.Add(time.Hour)),
		},
	}
}

func sign(t *testing.T, key *rsa.PrivateKey, kid string, claims *FirebaseClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	if kid != "" {
		token.Header["kid"] = kid
	}
	s, err := token.SignedString(key)
	require.NoError(t, err)
	return s
}

func newTestVerifier(key *rsa.PrivateKey) *Verifier {
	v := NewVerifier(testProject, staticKeys{"k1": &key.PublicKey})
	v.now = func() time.Time { return testNow }
	return v
}

func TestVerify_Valid(t *testing.T) {
	key := newKey(t)
	claims, err := newTestVerifier(key).Verify(context.Background(), sign(t, key, "k1", validClaims()))
	require.NoError(t, err)

	assert.Equal(t, "uid-123", claims.Subject)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.Equal(t, "google.com", claims.Firebase.SignInProvider)
}

func TestVerify_Rejects(t *testing.T) {
	key := newKey(t)
	other := newKey(t)

	cases := []struct {
		name  string
		token func() string
	}{
		{"empty", func() string { return "" }},
		{"garbage", func() string { return "not.a.token" }},
		{"missing kid", func() string { return sign(t, key, "", validClaims()) }},
		{"unknown kid", func() string { return sign(t, key, "k2", validClaims()) }},
		{"wrong key", func() string { return sign(t, other, "k1", validClaims()) }},
		{"wrong audience", func() string {
			c := validClaims()
			c.Audience = jwt.ClaimStrings{"other-project"}
			return sign(t, key, "k1", c)
		}},
		{"wrong issuer", func() string {
			c := validClaims()
			c.Issuer = "https://accounts.google.com"
			return sign(t, key, "k1", c)
		}},
		{"expired", func() string {
			c := validClaims()
			c.ExpiresAt = jwt.NewNumericDate(testNow.Add(-time.Hour))
			return sign(t, key, "k1", c)
		}},
		{"no expiry", func() string {
			c := validClaims()
			c.ExpiresAt = nil
			return sign(t, key, "k1", c)
		}},
		{"issued in future", func() string {
			c := validClaims()
			c.IssuedAt = jwt.NewNumericDate(testNow.Add(time.Hour))
			return sign(t, key, "k1", c)
		}},
		{"auth in future", func() string {
			c := validClaims()
			c.AuthTime = testNow.Add(time.Hour).Unix()
			return sign(t, key, "k1", c)
		}},
		{"empty subject", func() string {
			c := validClaims()
			c.Subject = ""
			return sign(t, key, "k1", c)
		}},
		{"long subject", func() string {
			c := validClaims()
			c.Subject = strings.Repeat("a", 129)
			return sign(t, key, "k1", c)
		}},
	}

	v := newTestVerifier(key)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := v.Verify(context.Background(), tc.token())
			assert.Error(t, err)
		})
	}
}

func TestVerify_RejectsHS256(t *testing.T) {
	key := newKey(t)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, validClaims())
	token.Header["kid"] = "k1"
	s, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = newTestVerifier(key).Verify(context.Background(), s)
	assert.Error(t, err)
}
