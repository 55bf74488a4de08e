package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DefaultAllowlistEmail is used when ALLOWLIST_EMAILS is not set
const DefaultAllowlistEmail = "wsnwrdna2@gmail.com"

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	LLM      LLMConfig
	Firebase FirebaseConfig
	Auth     AuthConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string        `envconfig:"PORT" default:"8081"`
	Host            string        `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string        `envconfig:"ENVIRONMENT"`
	AllowedOrigins  []string      `envconfig:"CORS_ORIGIN" default:"*"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	BodyLimit       string        `envconfig:"BODY_LIMIT" default:"10M"`
	WebDistDir      string        `envconfig:"WEB_DIST_DIR"`
	// MetricsToken, when set, is required as a bearer key on /metrics
	MetricsToken    string        `envconfig:"METRICS_TOKEN"`
}

// LLMConfig holds the chat model configuration
type LLMConfig struct {
	Provider    string        `envconfig:"LLM_PROVIDER" default:"openai"`
	APIKey      string        `envconfig:"OPENAI_API_KEY"`
	BaseURL     string        `envconfig:"LLM_BASE_URL"`
	Model       string        `envconfig:"MODEL_ID" default:"gpt-4o-mini"`
	MaxTokens   int           `envconfig:"MAX_TOKENS" default:"700"`
	Temperature float32       `envconfig:"TEMPERATURE" default:"0.2"`
	Timeout     time.Duration `envconfig:"LLM_TIMEOUT" default:"0s"`
}

// FirebaseConfig holds the identity provider configuration
type FirebaseConfig struct {
	ProjectID    string `envconfig:"FIREBASE_PROJECT_ID"`
	ClientEmail  string `envconfig:"FIREBASE_CLIENT_EMAIL"`
	PrivateKey   string `envconfig:"FIREBASE_PRIVATE_KEY"`
	CheckRevoked bool   `envconfig:"FIREBASE_CHECK_REVOKED" default:"false"`
	CertsURL     string `envconfig:"FIREBASE_CERTS_URL" default:"https://www.googleapis.com/robot/v1/metadata/x509/securetoken@system.gserviceaccount.com"`
}

// AuthConfig holds authorization configuration
type AuthConfig struct {
	AllowlistEmails []string `envconfig:"ALLOWLIST_EMAILS"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	return FromEnv()
}

// FromEnv builds and validates the configuration from the process environment
func FromEnv() (*Config, error) {
	var config Config
	for _, section := range []interface{}{&config.Server, &config.LLM, &config.Firebase, &config.Auth} {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process env: %w", err)
		}
	}

	config.normalize()

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) normalize() {
	if c.Server.Environment == "" {
		c.Server.Environment = getEnv("NODE_ENV", "production")
	}
	c.Server.AllowedOrigins = trimList(c.Server.AllowedOrigins)

	// Keys pasted into a single env line carry literal "\n" sequences
	c.Firebase.PrivateKey = strings.ReplaceAll(c.Firebase.PrivateKey, `\n`, "\n")

	c.Auth.AllowlistEmails = trimList(c.Auth.AllowlistEmails)
	if len(c.Auth.AllowlistEmails) == 0 {
		c.Auth.AllowlistEmails = []string{DefaultAllowlistEmail}
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}
	if c.Firebase.CheckRevoked && (c.Firebase.ClientEmail == "" || c.Firebase.PrivateKey == "") {
		return fmt.Errorf("FIREBASE_CLIENT_EMAIL and FIREBASE_PRIVATE_KEY are required when FIREBASE_CHECK_REVOKED is enabled")
	}
	if c.LLM.APIKey == "" {
		return fmt.Errorf("OPENAI_API_KEY is required")
	}
	if c.LLM.MaxTokens <= 0 {
		return fmt.Errorf("MAX_TOKENS must be positive, got %d", c.LLM.MaxTokens)
	}
	if c.LLM.Temperature < 0 || c.LLM.Temperature > 2 {
		return fmt.Errorf("TEMPERATURE must be between 0 and 2, got %v", c.LLM.Temperature)
	}
	return nil
}

// IsProduction reports whether internal error details must be hidden
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether internal error details may be exposed
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

// GetServerAddr returns the listen address
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%s", c.Server.Host, c.Server.Port)
}

// Helper functions

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func trimList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
