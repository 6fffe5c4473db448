package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fernet/fernet-go"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server  ServerConfig
	Sheets  SheetsConfig
	Pricing PricingConfig
	Audit   AuditConfig
	CORS    CORSConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port string
	Host string
	Addr string // Combined host:port for convenience
}

// SheetsConfig identifies the backing Google Sheet. Both fields may be
// empty: the server still starts, and store operations report a connection
// failure instead.
type SheetsConfig struct {
	SpreadsheetID   string
	CredentialsJSON []byte
}

// PricingConfig holds market-data configuration
type PricingConfig struct {
	// FallbackUSDKRW is used when the live USD/KRW rate cannot be fetched.
	FallbackUSDKRW float64
}

// AuditConfig holds audit-log configuration
type AuditConfig struct {
	DBPath        string
	RetentionDays int
}

// CORSConfig holds CORS-specific configuration
type CORSConfig struct {
	AllowedOrigins []string
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5000"),
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
		},
		Sheets: SheetsConfig{
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_ID"),
			CredentialsJSON: loadCredentials(),
		},
		Pricing: PricingConfig{
			FallbackUSDKRW: getEnvFloat("FALLBACK_USD_KRW", 1450.0),
		},
		Audit: AuditConfig{
			DBPath:        getEnv("AUDIT_DB_PATH", "./data/audit.db"),
			RetentionDays: getEnvInt("AUDIT_RETENTION_DAYS", 30),
		},
		CORS: CORSConfig{
			AllowedOrigins: strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "*"), ","),
		},
	}

	// Combine host and port
	config.Server.Addr = fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port)

	return config, nil
}

// loadCredentials resolves the Google service account credentials.
// GOOGLE_CREDENTIALS_JSON takes precedence; otherwise
// GOOGLE_CREDENTIALS_JSON_ENC is decrypted with CREDENTIALS_FERNET_KEY.
// Missing or undecryptable credentials degrade store operations to a
// connection failure rather than failing startup.
func loadCredentials() []byte {
	if plain := os.Getenv("GOOGLE_CREDENTIALS_JSON"); plain != "" {
		return []byte(plain)
	}

	encrypted := os.Getenv("GOOGLE_CREDENTIALS_JSON_ENC")
	key := os.Getenv("CREDENTIALS_FERNET_KEY")
	if encrypted == "" || key == "" {
		return nil
	}

	creds, err := decryptCredentials(encrypted, key)
	if err != nil {
		log.Printf("ignoring encrypted credentials: %v", err)
		return nil
	}
	return creds
}

// decryptCredentials decrypts a fernet token with the given base64 key.
func decryptCredentials(token, key string) ([]byte, error) {
	fernetKey, err := fernet.DecodeKey(key)
	if err != nil {
		return nil, fmt.Errorf("invalid fernet key: %w", err)
	}

	// TTL 0 disables token expiry: credentials are long-lived.
	creds := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{fernetKey})
	if creds == nil {
		return nil, fmt.Errorf("credential token failed verification")
	}
	return creds, nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvFloat gets a float environment variable or returns a default value
func getEnvFloat(key string, defaultValue float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("invalid %s %q, using default %v", key, raw, defaultValue)
		return defaultValue
	}
	return value
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("invalid %s %q, using default %v", key, raw, defaultValue)
		return defaultValue
	}
	return value
}
