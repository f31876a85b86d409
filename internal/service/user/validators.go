package user

import (
	"regexp"
	"strings"
)

// Phone numbers are local mobile numbers: 10-11 digits starting with one
// of the 01x area codes.
var validAreaCodes = []string{
	"010", "011", "012", "013", "014", "015", "016", "017", "018", "019",
}

var (
	customerIDPattern = regexp.MustCompile(`^C\d{3}$`)
	staffIDPattern    = regexp.MustCompile(`^S\d{3}$`)
	digitsPattern     = regexp.MustCompile(`^\d{10,11}$`)
)

func isValidEmail(email string) bool {
	trimmed := strings.TrimSpace(email)
	if len(trimmed) < 5 {
		return false
	}
	return strings.Contains(trimmed, "@") &&
		strings.Contains(trimmed, ".") &&
		strings.Index(trimmed, "@") < strings.LastIndex(trimmed, ".")
}

func isValidPhone(phone string) bool {
	cleaned := stripPhone(phone)
	if !digitsPattern.MatchString(cleaned) {
		return false
	}

	areaCode := cleaned[:3]
	for _, code := range validAreaCodes {
		if areaCode == code {
			return true
		}
	}
	return false
}

func stripPhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, " ", "")
	return strings.ReplaceAll(cleaned, "-", "")
}

// formatPhone renders a cleaned number as xxx-xxx-xxxx or xxx-xxxx-xxxx.
// Anything of unexpected length is returned as given.
func formatPhone(phone string) string {
	cleaned := stripPhone(phone)
	switch len(cleaned) {
	case 10:
		return cleaned[:3] + "-" + cleaned[3:6] + "-" + cleaned[6:]
	case 11:
		return cleaned[:3] + "-" + cleaned[3:7] + "-" + cleaned[7:]
	default:
		return phone
	}
}

func isValidName(name string) bool {
	trimmed := strings.TrimSpace(name)
	return len(trimmed) >= 2 && len(trimmed) <= 50
}

func isValidPassword(password string) bool {
	return len(password) >= 6
}

func isValidAddress(address string) bool {
	return len(strings.TrimSpace(address)) >= 10
}

func isValidCustomerID(id string) bool {
	return customerIDPattern.MatchString(id)
}

func isValidStaffID(id string) bool {
	return staffIDPattern.MatchString(id)
}
