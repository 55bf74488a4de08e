package firebase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2/google"
	oauth2jwt "golang.org/x/oauth2/jwt"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
)

// IdentityToolkitURL is the base of the Firebase Auth admin REST API
const IdentityToolkitURL = "https://identitytoolkit.googleapis.com/v1"

var accountScopes = []string{
	"https://www.googleapis.com/auth/identitytoolkit",
	"https://www.googleapis.com/auth/cloud-platform",
}

// Account is the subset of a Firebase user record used for revocation checks
type Account struct {
	UID        string
	Email      string
	Disabled   bool
	ValidSince time.Time
}

type lookupResponse struct {
	Users []struct {
		LocalID    string `json:"localId"`
		Email      string `json:"email"`
		Disabled   bool   `json:"disabled"`
		ValidSince string `json:"validSince"`
	} `json:"users"`
}

// AccountChecker looks accounts up with service account credentials
type AccountChecker struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewAccountChecker creates a checker authenticated as the given service account
func NewAccountChecker(ctx context.Context, projectID, clientEmail, privateKey string, logger *zap.Logger) *AccountChecker {
	conf := &oauth2jwt.Config{
		Email:      clientEmail,
		PrivateKey: []byte(privateKey),
		Scopes:     accountScopes,
		TokenURL:   google.JWTTokenURL,
	}
	return newAccountChecker(IdentityToolkitURL, projectID, conf.Client(ctx), logger)
}

func newAccountChecker(baseURL, projectID string, client *http.Client, logger *zap.Logger) *AccountChecker {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountChecker{
		endpoint: fmt.Sprintf("%s/projects/%s/accounts:lookup", baseURL, projectID),
		client:   client,
		logger:   logger,
	}
}

// Lookup fetches the account record for uid
func (a *AccountChecker) Lookup(ctx context.Context, uid string) (*Account, error) {
	payload, err := json.Marshal(map[string][]string{"localId": {uid}})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal lookup request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("account lookup failed: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var out lookupResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal lookup response: %w", err)
	}
	if len(out.Users) == 0 {
		return nil, fmt.Errorf("no account for uid %q", uid)
	}

	u := out.Users[0]
	account := &Account{UID: u.LocalID, Email: u.Email, Disabled: u.Disabled}
	if u.ValidSince != "" {
		secs, err := strconv.ParseInt(u.ValidSince, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid validSince %q: %w", u.ValidSince, err)
		}
		account.ValidSince = time.Unix(secs, 0)
	}
	return account, nil
}

// CheckRevoked fails when the account is disabled or its sessions were
// revoked after the token was issued
func (a *AccountChecker) CheckRevoked(ctx context.Context, uid string, issuedAt time.Time) error {
	account, err := a.Lookup(ctx, uid)
	if err != nil {
		return err
	}
	if account.Disabled {
		return entities.ErrUserDisabled
	}
	if !account.ValidSince.IsZero() && issuedAt.Before(account.ValidSince) {
		a.logger.Info("rejected revoked token",
			zap.String("uid", uid),
			zap.Time("issued_at", issuedAt),
			zap.Time("valid_since", account.ValidSince),
		)
		return entities.ErrTokenRevoked
	}
	return nil
}
