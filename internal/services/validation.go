package services

import (
	"regexp"
	"strings"
)

var (
	mobileRegex = regexp.MustCompile(`^[6-9]\d{9}$`)
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	nameRegex   = regexp.MustCompile(`^[a-zA-Z\s.\-']+$`)

	hasUpper   = regexp.MustCompile(`[A-Z]`)
	hasLower   = regexp.MustCompile(`[a-z]`)
	hasDigit   = regexp.MustCompile(`[0-9]`)
	hasSpecial = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
	hasSpace   = regexp.MustCompile(`\s`)
)

// cleanMobile strips whitespace and hyphens from a mobile number.
func cleanMobile(mobile string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(mobile)
}

// validMobile reports whether mobile is a 10-digit Indian number starting 6-9.
func validMobile(mobile string) bool {
	return mobileRegex.MatchString(cleanMobile(mobile))
}

// digitsOnly keeps only the digit characters of s.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func validateName(name string) string {
	trimmed := strings.TrimSpace(name)
	if len(trimmed) < 2 {
		return "Name must be at least 2 characters long"
	}
	if len(trimmed) > 100 {
		return "Name must not exceed 100 characters"
	}
	if !nameRegex.MatchString(trimmed) {
		return "Name can only contain letters, spaces, dots, and hyphens"
	}
	return ""
}

func validateEmail(email string) string {
	if email == "" {
		return "Email is required"
	}
	if !emailRegex.MatchString(strings.TrimSpace(email)) {
		return "Please enter a valid email address"
	}
	return ""
}

func validateMobileNumber(mobile string) string {
	if mobile == "" {
		return "Mobile number is required"
	}
	if !mobileRegex.MatchString(digitsOnly(mobile)) {
		return "Please enter a valid 10-digit mobile number starting with 6-9"
	}
	return ""
}

func validatePassword(password string) string {
	if len(password) < 8 {
		return "Password must be at least 8 characters long"
	}
	if len(password) > 128 {
		return "Password must not exceed 128 characters"
	}
	if hasSpace.MatchString(password) {
		return "Password cannot contain spaces"
	}
	if !hasUpper.MatchString(password) {
		return "Password must contain at least one uppercase letter"
	}
	if !hasLower.MatchString(password) {
		return "Password must contain at least one lowercase letter"
	}
	if !hasDigit.MatchString(password) {
		return "Password must contain at least one number"
	}
	if !hasSpecial.MatchString(password) {
		return "Password must contain at least one special character"
	}
	return ""
}

// validateField applies the generic 2-100 character length rule.
func validateField(value, fieldName string) string {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < 2 {
		return fieldName + " must be at least 2 characters long"
	}
	if len(trimmed) > 100 {
		return fieldName + " must not exceed 100 characters"
	}
	return ""
}
