package constants

// Redis key formats
const (
	// Admin console
	KeyAdminOTP         = "admin:otp:%s"          // Format: admin:otp:{phone}
	KeyAdminOTPAttempts = "admin:otp:attempts:%s" // Format: admin:otp:attempts:{phone}
	KeyAdminOTPCooldown = "admin:otp:cooldown:%s" // Format: admin:otp:cooldown:{phone}

	// Rate Limiting
	KeyRateLimit = "rate:%s" // Format: rate:{prefix}, suffixed with route and client ip
)
