package firebase

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/json"
	"encoding/pem"
	"io"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johnquangdev/mom-generator/internal/domain/entities"
	"github.com/johnquangdev/mom-generator/internal/infrastructure/cache"
)

func selfSignedPEM(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	tmpl := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject:      pkix.Name{CommonName: "securetoken.system.gserviceaccount.com"},
		NotBefore:    time.Now().Add(-time.Hour),
		NotAfter:     time.Now().Add(time.Hour),
	}
	der, err := x509.CreateCertificate(rand.Reader, tmpl, tmpl, &key.PublicKey, key)
	require.NoError(t, err)
	return key, string(pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: der}))
}

func newCertServer(t *testing.T, certs map[string]string, hits *int32) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(hits, 1)
		w.Header().Set("Cache-Control", "public, max-age=19000, must-revalidate, no-transform")
		_ = json.NewEncoder(w).Encode(certs)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestCertSource_FetchesAndCaches(t *testing.T) {
	key, certPEM := selfSignedPEM(t)
	var hits int32
	srv := newCertServer(t, map[string]string{"k1": certPEM}, &hits)

	store := cache.NewMemoryStore()
	defer store.Close()
	src := NewCertSource(srv.URL, store, nil)

	got, err := src.PublicKey(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, key.PublicKey.N, got.N)

	_, err = src.PublicKey(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCertSource_UnknownKidThrottled(t *testing.T) {
	_, certPEM := selfSignedPEM(t)
	var hits int32
	srv := newCertServer(t, map[string]string{"k1": certPEM}, &hits)

	store := cache.NewMemoryStore()
	defer store.Close()
	src := NewCertSource(srv.URL, store, nil)

	_, err := src.PublicKey(context.Background(), "nope")
	assert.Error(t, err)
	_, err = src.PublicKey(context.Background(), "nope")
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCertSource_ClientErrorIsPermanent(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	defer store.Close()
	src := NewCertSource(srv.URL, store, nil)

	_, err := src.PublicKey(context.Background(), "k1")
	assert.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestCertSource_RetriesServerErrors(t *testing.T) {
	_, certPEM := selfSignedPEM(t)
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"k1": certPEM})
	}))
	defer srv.Close()

	store := cache.NewMemoryStore()
	defer store.Close()
	src := NewCertSource(srv.URL, store, nil)

	_, err := src.PublicKey(context.Background(), "k1")
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&hits))
}

func TestParseMaxAge(t *testing.T) {
	assert.Equal(t, 19000*time.Second, parseMaxAge("public, max-age=19000, must-revalidate"))
	assert.Equal(t, defaultCertTTL, parseMaxAge("no-cache"))
	assert.Equal(t, defaultCertTTL, parseMaxAge("max-age=abc"))
	assert.Equal(t, defaultCertTTL, parseMaxAge(""))
}

func newLookupServer(t *testing.T, user map[string]interface{}) (*httptest.Server, *[]byte) {
	t.Helper()
	var body []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects/mom-test/accounts:lookup", r.URL.Path)
		body, _ = io.ReadAll(r.Body)
		resp := map[string]interface{}{}
		if user != nil {
			resp["users"] = []interface{}{user}
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(srv.Close)
	return srv, &body
}

func TestAccountChecker_Lookup(t *testing.T) {
	srv, body := newLookupServer(t, map[string]interface{}{
		"localId":    "uid-1",
		"email":      "a@example.com",
		"validSince": "1700000000",
	})

	checker := newAccountChecker(srv.URL, "mom-test", srv.Client(), nil)
	account, err := checker.Lookup(context.Background(), "uid-1")
	require.NoError(t, err)

	assert.JSONEq(t, `{"localId":["uid-1"]}`, string(*body))
	assert.Equal(t, "a@example.com", account.Email)
	assert.False(t, account.Disabled)
	assert.Equal(t, time.Unix(1700000000, 0), account.ValidSince)
}

func TestAccountChecker_CheckRevoked(t *testing.T) {
	validSince := time.Unix(1700000000, 0)

	cases := []struct {
		name     string
		user     map[string]interface{}
		issuedAt time.Time
		want     error
	}{
		{"active", map[string]interface{}{"localId": "u", "validSince": "1700000000"}, validSince.Add(time.Minute), nil},
		{"disabled", map[string]interface{}{"localId": "u", "disabled": true}, validSince, entities.ErrUserDisabled},
		{"revoked", map[string]interface{}{"localId": "u", "validSince": "1700000000"}, validSince.Add(-time.Minute), entities.ErrTokenRevoked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := newLookupServer(t, tc.user)
			err := newAccountChecker(srv.URL, "mom-test", srv.Client(), nil).CheckRevoked(context.Background(), "u", tc.issuedAt)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestAccountChecker_UnknownUser(t *testing.T) {
	srv, _ := newLookupServer(t, nil)
	_, err := newAccountChecker(srv.URL, "mom-test", srv.Client(), nil).Lookup(context.Background(), "ghost")
	assert.Error(t, err)
}
