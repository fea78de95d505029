package validation

import (
	"fmt"
	"strings"
	"unicode"
)

// commonPasswords is a short denylist of the most frequently breached
// passwords. Matching is case-insensitive.
var commonPasswords = map[string]struct{}{
	"password":    {},
	"password1":   {},
	"password123": {},
	"12345678":    {},
	"123456789":   {},
	"1234567890":  {},
	"qwerty123":   {},
	"qwertyuiop":  {},
	"iloveyou":    {},
	"sunshine":    {},
	"princess":    {},
	"football":    {},
	"baseball":    {},
	"welcome1":    {},
	"admin123":    {},
	"letmein1":    {},
	"trustno1":    {},
	"dragon123":   {},
	"monkey123":   {},
	"abc12345":    {},
}

// ValidatePassword checks if a password meets security requirements:
// minimum length, not entirely numeric, and not a well-known password.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}

	if len(password) > 128 {
		return fmt.Errorf("password must not exceed 128 characters")
	}

	allDigits := true
	for _, r := range password {
		if !unicode.IsDigit(r) {
			allDigits = false
			break
		}
	}
	if allDigits {
		return fmt.Errorf("password cannot be entirely numeric")
	}

	if _, found := commonPasswords[strings.ToLower(password)]; found {
		return fmt.Errorf("password is too common")
	}

	return nil
}

// ValidatePasswordForUser additionally rejects passwords too similar to
// the user's username or email local part.
func ValidatePasswordForUser(password, username, email string) error {
	if err := ValidatePassword(password); err != nil {
		return err
	}

	lower := strings.ToLower(password)
	if username != "" && tooSimilar(lower, strings.ToLower(username)) {
		return fmt.Errorf("password is too similar to your username")
	}
	if email != "" {
		local := strings.ToLower(strings.SplitN(email, "@", 2)[0])
		if tooSimilar(lower, local) {
			return fmt.Errorf("password is too similar to your email")
		}
	}

	return nil
}

// tooSimilar reports whether one string contains the other, ignoring
// attributes shorter than 4 characters.
func tooSimilar(password, attribute string) bool {
	if len(attribute) < 4 {
		return false
	}
	return strings.Contains(password, attribute) || strings.Contains(attribute, password)
}
