package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// FirebaseClaims represents the claims of a Firebase ID token
type FirebaseClaims struct {
	Email         string       `json:"email"`
	EmailVerified bool         `json:"email_verified"`
	AuthTime      int64        `json:"auth_time"`
	Firebase      FirebaseInfo `json:"firebase"`
	jwt.RegisteredClaims
}

// FirebaseInfo is the provider block Firebase nests under "firebase"
type FirebaseInfo struct {
	SignInProvider string              `json:"sign_in_provider"`
	Identities     map[string][]string `json:"identities,omitempty"`
}
