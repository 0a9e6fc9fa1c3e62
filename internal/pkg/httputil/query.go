// Package httputil contains helpers for reading HTTP request input.
package httputil

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spf13/cast"
)

// decimalPattern admits an optional minus sign followed by decimal digits only.
var decimalPattern = regexp.MustCompile(`^-?[0-9]+$`)

// ConvertToInt converts a base-10 path or query value to an int.
// Leading zeros are insignificant ("010" is 10); hex, octal and binary prefixes are rejected.
func ConvertToInt(value string) (int, error) {
	if !decimalPattern.MatchString(value) {
		return 0, fmt.Errorf("invalid integer %q: expected decimal digits", value)
	}

	// cast reads a leading 0 as an octal prefix
	sign, digits := "", value
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return 0, nil
	}

	converted, err := cast.ToIntE(sign + digits)
	if err != nil {
		return 0, fmt.Errorf("invalid integer %q: %w", value, err)
	}
	return converted, nil
}
