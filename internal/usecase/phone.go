package usecase

import (
	"regexp"
	"strings"
)

const defaultCountryCode = "91"

var nonDigit = regexp.MustCompile(`\D`)

// ParseWhatsAppNumbers splits the comma separated notification target.
// Blank entries are dropped, so "" and " , " both yield no numbers.
func ParseWhatsAppNumbers(raw string) []string {
	var numbers []string
	for _, part := range strings.Split(raw, ",") {
		if n := strings.TrimSpace(part); n != "" {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// NormalizePhone keeps digits only and adds the Indian country code to bare
// 10 digit numbers. Anything else passes through as digits.
func NormalizePhone(phone string) string {
	cleaned := nonDigit.ReplaceAllString(phone, "")

	if len(cleaned) == 10 && !strings.HasPrefix(cleaned, defaultCountryCode) {
		return defaultCountryCode + cleaned
	}
	return cleaned
}
