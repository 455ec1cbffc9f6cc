package models

import "time"

// Config represents application configuration
type Config struct {
	App       AppConfig
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	NSQ       NSQConfig
	JWT       JWTConfig
	Partner   PartnerConfig
	Admin     AdminConfig
	SMS       SMSConfig
	Links     LinksConfig
	RateLimit RateLimitConfig
	Pricing   PricingConfig
	NewRelic  NewRelicConfig
	Logger    LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NSQConfig contains the notification queue configuration.
// An empty Address means notifications are dispatched in-process.
type NSQConfig struct {
	Address      string
	LookupdAddrs []string
	Topic        string
	Channel      string
	MaxInFlight  int
}

// JWTConfig contains admin session token configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PartnerConfig holds the shared secret partners present as a bearer token
type PartnerConfig struct {
	APISecret string
}

// AdminConfig holds the console bootstrap secret and OTP policy
type AdminConfig struct {
	Secret          string
	OTPLength       int
	OTPTTL          time.Duration
	OTPResendWindow time.Duration
	OTPMaxAttempts  int
}

// SMSConfig selects and configures the SMS provider
type SMSConfig struct {
	Provider         string // smsir, twilio or log
	Timeout          time.Duration
	SendTimeout      time.Duration
	SmsIRBaseURL     string
	SmsIRAPIKey      string
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFrom       string
	Templates        SMSTemplates
}

// SMSTemplates maps each notification to its provider template id
type SMSTemplates struct {
	PassengerTripCreated int
	DriverAssigned       int
	DriverLocationAdded  int
	DriverTripCanceled   int
	AdminOTP             int
}

// LinksConfig holds the public URLs embedded in messages
type LinksConfig struct {
	PassengerBaseURL string
	DriverBaseURL    string
}

// RateLimitConfig bounds partner request rates per client
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// PricingConfig drives the trip estimate
type PricingConfig struct {
	RatePerKm         float64
	MinutesPerKm      float64
	Currency          string
	ComfortMultiplier float64
	PremiumMultiplier float64
}

// NewRelicConfig contains APM configuration
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	ForwardLogs bool
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
