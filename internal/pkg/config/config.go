package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mrshoofer/mrshoofer/internal/pkg/models"
)

// InitConfig loads the .env file at configPath when running locally and
// builds the configuration from the environment.
func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" && configPath != "" {
		if err := godotenv.Load(configPath); err != nil {
			log.Println("error loading config from file", err)
		}
	}
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "mrshoofer")
	configs.App.Environment = GetEnv("APP_ENV", "local")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 8080)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 15)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 15)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// NSQ config
	configs.NSQ.Address = GetEnv("NSQ_ADDRESS", "")
	configs.NSQ.LookupdAddrs = GetEnvAsSlice("NSQ_LOOKUPD_ADDRESSES", nil)
	configs.NSQ.Topic = GetEnv("NSQ_TOPIC", "mrshoofer.notifications")
	configs.NSQ.Channel = GetEnv("NSQ_CHANNEL", "sms")
	configs.NSQ.MaxInFlight = GetEnvAsInt("NSQ_MAX_IN_FLIGHT", 10)

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 720)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "mrshoofer")

	// Partner config
	configs.Partner.APISecret = GetEnv("PARTNER_API_SECRET", "")

	// Admin config
	configs.Admin.Secret = GetEnv("ADMIN_SECRET", "")
	configs.Admin.OTPLength = GetEnvAsInt("ADMIN_OTP_LENGTH", 5)
	configs.Admin.OTPTTL = GetEnvAsDuration("ADMIN_OTP_TTL", 5*time.Minute)
	configs.Admin.OTPResendWindow = GetEnvAsDuration("ADMIN_OTP_RESEND_WINDOW", 60*time.Second)
	configs.Admin.OTPMaxAttempts = GetEnvAsInt("ADMIN_OTP_MAX_ATTEMPTS", 5)

	// SMS config
	configs.SMS.Provider = GetEnv("SMS_PROVIDER", "log")
	configs.SMS.Timeout = GetEnvAsDuration("SMS_HTTP_TIMEOUT", 10*time.Second)
	configs.SMS.SendTimeout = GetEnvAsDuration("SMS_SEND_TIMEOUT", 15*time.Second)
	configs.SMS.SmsIRBaseURL = GetEnv("SMSIR_BASE_URL", "https://api.sms.ir/v1")
	configs.SMS.SmsIRAPIKey = GetEnv("SMSIR_API_KEY", "")
	configs.SMS.TwilioAccountSID = GetEnv("TWILIO_ACCOUNT_SID", "")
	configs.SMS.TwilioAuthToken = GetEnv("TWILIO_AUTH_TOKEN", "")
	configs.SMS.TwilioFrom = GetEnv("TWILIO_FROM_NUMBER", "")
	configs.SMS.Templates.PassengerTripCreated = GetEnvAsInt("SMS_TEMPLATE_PASSENGER", 388906)
	configs.SMS.Templates.DriverAssigned = GetEnvAsInt("SMS_TEMPLATE_DRIVER_ASSIGNED", 993093)
	configs.SMS.Templates.DriverLocationAdded = GetEnvAsInt("SMS_TEMPLATE_DRIVER_LOCATION", 809560)
	configs.SMS.Templates.DriverTripCanceled = GetEnvAsInt("SMS_TEMPLATE_DRIVER_CANCELED", 486412)
	configs.SMS.Templates.AdminOTP = GetEnvAsInt("SMS_TEMPLATE_ADMIN_OTP", 0)

	// Links config
	configs.Links.PassengerBaseURL = GetEnv("PASSENGER_BASE_URL", "")
	configs.Links.DriverBaseURL = GetEnv("DRIVER_BASE_URL", "")

	// Rate limit config
	configs.RateLimit.Enabled = GetEnvAsBool("RATE_LIMIT_ENABLED", true)
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT_REQUESTS", 120)
	configs.RateLimit.Period = GetEnvAsDuration("RATE_LIMIT_PERIOD", time.Minute)

	// Pricing config
	configs.Pricing.RatePerKm = GetEnvAsFloat("PRICING_RATE_PER_KM", 5000)
	configs.Pricing.MinutesPerKm = GetEnvAsFloat("PRICING_MINUTES_PER_KM", 3)
	configs.Pricing.Currency = GetEnv("PRICING_CURRENCY", "IRR")
	configs.Pricing.ComfortMultiplier = GetEnvAsFloat("PRICING_COMFORT_MULTIPLIER", 1.3)
	configs.Pricing.PremiumMultiplier = GetEnvAsFloat("PRICING_PREMIUM_MULTIPLIER", 1.8)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "mrshoofer")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Validate fails when a secret the process cannot run without is missing.
// There are no built-in fallbacks for any of them.
func Validate(cfg *models.Config) error {
	var errs []error
	if cfg.Database.Host == "" {
		errs = append(errs, errors.New("DB_HOST is required"))
	}
	if cfg.Partner.APISecret == "" {
		errs = append(errs, errors.New("PARTNER_API_SECRET is required"))
	}
	if cfg.JWT.Secret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if cfg.Admin.Secret == "" {
		errs = append(errs, errors.New("ADMIN_SECRET is required"))
	}
	switch cfg.SMS.Provider {
	case "smsir":
		if cfg.SMS.SmsIRAPIKey == "" {
			errs = append(errs, errors.New("SMSIR_API_KEY is required for the smsir provider"))
		}
	case "twilio":
		if cfg.SMS.TwilioAccountSID == "" || cfg.SMS.TwilioAuthToken == "" {
			errs = append(errs, errors.New("TWILIO_ACCOUNT_SID and TWILIO_AUTH_TOKEN are required for the twilio provider"))
		}
	case "log":
	default:
		errs = append(errs, fmt.Errorf("unknown SMS_PROVIDER %q", cfg.SMS.Provider))
	}
	return errors.Join(errs...)
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("90s") or plain seconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsSlice splits a comma separated value, dropping blanks
func GetEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
