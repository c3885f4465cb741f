package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Hearing identity modes. remarks-hash keeps one hearing row per distinct
// remarks text; case-date keys the hearing on (case, listing date) so edited
// remarks update the existing row instead of creating a new one.
const (
	HearingIdentityRemarksHash = "remarks-hash"
	HearingIdentityCaseDate    = "case-date"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	TimeZone    string
	// Email (Resend)
	ResendAPIKey  string
	EmailFrom     string
	EmailFromName string
	EmailTestMode bool // When true, emails are logged to console instead of sent
	// SMS gateway
	SMSGatewayURL      string
	SMSGatewayUsername string
	SMSGatewayPassword string
	SMSDeviceID        string
	SMSDefaultRegion   string
	SMSTestMode        bool
	// Push gateway (FCM HTTP endpoint)
	PushGatewayURL string
	PushServerKey  string
	PushTestMode   bool
	// Ingestion
	SchedulerEnabled    bool
	HearingIdentityMode string
	ReferenceDataPath   string // optional override for the embedded lookup tables
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		DBPath:              getEnv("DB_PATH", "db/app.db"),
		Environment:         getEnv("ENVIRONMENT", "development"),
		TimeZone:            getEnv("TIME_ZONE", "Asia/Kolkata"),
		ResendAPIKey:        getEnv("RESEND_API_KEY", ""),
		EmailFrom:           getEnv("EMAIL_FROM", "alerts@courtwatch.app"),
		EmailFromName:       getEnv("EMAIL_FROM_NAME", "CourtWatch Alerts"),
		EmailTestMode:       getEnvBool("EMAIL_TEST_MODE", true), // Default true for safety
		SMSGatewayURL:       getEnv("SMS_GATEWAY_URL", "https://api.sms-gate.app"),
		SMSGatewayUsername:  getEnv("SMS_GATEWAY_USERNAME", ""),
		SMSGatewayPassword:  getEnv("SMS_GATEWAY_PASSWORD", ""),
		SMSDeviceID:         getEnv("SMS_DEVICE_ID", ""),
		SMSDefaultRegion:    getEnv("SMS_DEFAULT_REGION", "IN"),
		SMSTestMode:         getEnvBool("SMS_TEST_MODE", true),
		PushGatewayURL:      getEnv("PUSH_GATEWAY_URL", "https://fcm.googleapis.com/fcm/send"),
		PushServerKey:       getEnv("PUSH_SERVER_KEY", ""),
		PushTestMode:        getEnvBool("PUSH_TEST_MODE", true),
		SchedulerEnabled:    getEnvBool("SCHEDULER_ENABLED", true),
		HearingIdentityMode: getEnv("HEARING_IDENTITY_MODE", HearingIdentityRemarksHash),
		ReferenceDataPath:   getEnv("REFERENCE_DATA_PATH", ""),
	}

	if cfg.HearingIdentityMode != HearingIdentityRemarksHash && cfg.HearingIdentityMode != HearingIdentityCaseDate {
		log.Printf("[WARNING] Unknown HEARING_IDENTITY_MODE %q, falling back to %s", cfg.HearingIdentityMode, HearingIdentityRemarksHash)
		cfg.HearingIdentityMode = HearingIdentityRemarksHash
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
