// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

// CountryCode is stripped from every phone number before it is used as a
// customer key.
const CountryCode = "+91"

var phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// CanonicalPhone turns a hand-typed phone number into the customer key:
// whitespace, the country code and dashes are removed. An empty result means
// the row has no usable phone.
func CanonicalPhone(phone string) string {
	cleaned := strings.Join(strings.Fields(phone), "")
	cleaned = strings.ReplaceAll(cleaned, CountryCode, "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	return strings.TrimSpace(cleaned)
}

// ValidatePhone checks if a phone number is in a valid international format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	return phoneRegex.MatchString(cleaned)
}
