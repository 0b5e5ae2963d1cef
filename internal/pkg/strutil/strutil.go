// Package strutil holds small string conversion helpers shared by the API
// and the domain layer.
package strutil

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// decimalPattern accepts plain decimal notation with an optional exponent.
// Hexadecimal floats, underscores, NaN and Inf are rejected.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)([eE][+-]?\d+)?$`)

// ParseDecimal reports whether s is a finite decimal number and returns it.
// Surrounding whitespace is ignored.
func ParseDecimal(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if !decimalPattern.MatchString(s) {
		return 0, false
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, false
	}
	return value, true
}

// ConvertToInt parses s as a base 10 int.
func ConvertToInt(s string) (int, error) {
	return strconv.Atoi(strings.TrimSpace(s))
}

// ValueOrEmpty dereferences s, returning "" for nil.
func ValueOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// PtrOrNil returns a pointer to s, or nil when s is blank.
func PtrOrNil(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}
