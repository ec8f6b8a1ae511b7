package helpers

import (
	"regexp"
	"strings"
)

var bdMobileRegex = regexp.MustCompile(`^(?:\+?88)?01[3-9]\d{8}$`)

// NormalizePhone strips spaces and dashes from a phone number
func NormalizePhone(phone string) string {
	r := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "")
	return r.Replace(strings.TrimSpace(phone))
}

// IsValidBDPhone reports whether phone is a Bangladeshi mobile number,
// with or without the 88 country prefix.
func IsValidBDPhone(phone string) bool {
	return bdMobileRegex.MatchString(NormalizePhone(phone))
}

// NormalizeCouponCode upper-cases and trims a coupon code
func NormalizeCouponCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
