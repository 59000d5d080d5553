package utils

import "strings"

// MaskEmail masks an email address for safe logging.
// Example: "admin@example.com" -> "a***@example.com"
func MaskEmail(email string) string {
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "***"
	}
	local := parts[0]
	if len(local) <= 1 {
		return local + "***@" + parts[1]
	}
	return string(local[0]) + "***@" + parts[1]
}

// MaskSecret hides all but the last two characters of a secret.
// Empty input stays empty so unset values remain recognisable.
func MaskSecret(secret string) string {
	if secret == "" {
		return ""
	}
	if len(secret) <= 2 {
		return "***"
	}
	return "***" + secret[len(secret)-2:]
}
