package firebase

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/johnquangdev/mom-generator/internal/infrastructure/cache"
)

// DefaultCertsURL publishes the x509 certificates Firebase signs ID tokens with
const DefaultCertsURL = "https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"

const (
	certKeyPrefix   = "firebase:cert:"
	defaultCertTTL  = time.Hour
	minRefreshDelay = time.Minute
)

// CertSource resolves signing keys from Google's published certificates.
// Certificates are cached for the max-age the endpoint advertises.
type CertSource struct {
	url    string
	client *http.Client
	store  *cache.MemoryStore
	logger *zap.Logger

	mu         sync.Mutex
	lastFetch  time.Time
	maxElapsed time.Duration
	now        func() time.Time
}

// NewCertSource creates a new certificate source
func NewCertSource(url string, store *cache.MemoryStore, logger *zap.Logger) *CertSource {
	if url == "" {
		url = DefaultCertsURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CertSource{
		url:        url,
		client:     &http.Client{Timeout: 10 * time.Second},
		store:      store,
		logger:     logger,
		maxElapsed: 15 * time.Second,
		now:        time.Now,
	}
}

// PublicKey returns the RSA key for kid, refreshing the certificate set
// when kid is not cached
func (s *CertSource) PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if pem, ok := s.store.Get(certKeyPrefix + kid); ok {
		return jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// another caller may have refreshed while we waited
	if pem, ok := s.store.Get(certKeyPrefix + kid); ok {
		return jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
	}
	if !s.lastFetch.IsZero() && s.now().Sub(s.lastFetch) < minRefreshDelay {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}

	certs, ttl, err := s.fetchWithRetry(ctx)
	if err != nil {
		return nil, err
	}
	s.lastFetch = s.now()
	for id, pem := range certs {
		s.store.Set(certKeyPrefix+id, pem, ttl)
	}
	s.logger.Debug("firebase certificates refreshed", zap.Int("count", len(certs)), zap.Duration("ttl", ttl))

	pem, ok := certs[kid]
	if !ok {
		return nil, fmt.Errorf("unknown key id %q", kid)
	}
	return jwt.ParseRSAPublicKeyFromPEM([]byte(pem))
}

func (s *CertSource) fetchWithRetry(ctx context.Context) (map[string]string, time.Duration, error) {
	var (
		certs map[string]string
		ttl   time.Duration
	)
	fetchFn := func() error {
		var err error
		certs, ttl, err = s.fetch(ctx)
		if err != nil {
			s.logger.Warn("failed to fetch firebase certificates", zap.String("url", s.url), zap.Error(err))
		}
		return err
	}

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 200 * time.Millisecond
	bo.MaxInterval = 2 * time.Second
	bo.MaxElapsedTime = s.maxElapsed

	if err := backoff.Retry(fetchFn, backoff.WithContext(bo, ctx)); err != nil {
		return nil, 0, fmt.Errorf("failed to fetch signing certificates: %w", err)
	}
	return certs, ttl, nil
}

func (s *CertSource) fetch(ctx context.Context) (map[string]string, time.Duration, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, 0, backoff.Permanent(fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("status=%d, body=%s", resp.StatusCode, string(body))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, 0, backoff.Permanent(err)
		}
		return nil, 0, err
	}

	var certs map[string]string
	if err := json.Unmarshal(body, &certs); err != nil {
		return nil, 0, backoff.Permanent(fmt.Errorf("failed to unmarshal certificates: %w", err))
	}

	return certs, parseMaxAge(resp.Header.Get("Cache-Control")), nil
}

// parseMaxAge extracts max-age from a Cache-Control header
func parseMaxAge(header string) time.Duration {
	for _, directive := range strings.Split(header, ",") {
		directive = strings.TrimSpace(directive)
		value, ok := strings.CutPrefix(directive, "max-age=")
		if !ok {
			continue
		}
		if secs, err := strconv.Atoi(value); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return defaultCertTTL
}
