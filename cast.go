package envcast

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// DefaultSeparator is used by Split when no separator is given.
const DefaultSeparator string = ","

// Accepted boolean literals, in the order they are listed in error messages.
var (
	boolLiterals = []string{"0", "1", "false", "true", "False", "True", "FALSE", "TRUE"}
	trueLiterals = []string{"1", "true", "True", "TRUE"}
)

// ParseNumber parses raw as a finite decimal float64.
// Surrounding whitespace is ignored. Empty input, Inf, NaN, digit
// separators ("1_000") and hex forms ("0x1p4") are rejected.
func ParseNumber(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	notANumber := &castError{reason: "not a number", err: ErrNotANumber}
	if !isDecimal(s) {
		return 0, notANumber
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, notANumber
	}
	return f, nil
}

// isDecimal rejects the parts of Go's float literal syntax that
// strconv.ParseFloat accepts but a decimal number does not have.
func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}

// ParseInt parses raw as a number that has no fractional part and fits an int.
// Anything ParseNumber accepts qualifies when it is integral, so "42.0" and
// "1e3" yield 42 and 1000.
func ParseInt(raw string) (int, error) {
	s := strings.TrimSpace(raw)
	// Exact path first; the float path below loses precision past 2^53.
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}

	notAnInt := &castError{reason: "not an int", err: ErrNotAnInt}
	f, err := ParseNumber(s)
	if err != nil {
		return 0, notAnInt
	}
	if f != math.Trunc(f) || f < math.MinInt || f >= -math.MinInt {
		return 0, notAnInt
	}
	return int(f), nil
}

// CheckEnum returns raw as T when it is one of allowed.
func CheckEnum[T ~string](raw string, allowed []T) (T, error) {
	if slices.Contains(allowed, T(raw)) {
		return T(raw), nil
	}
	names := make([]string, len(allowed))
	for i, a := range allowed {
		names[i] = string(a)
	}
	return "", &castError{
		reason: "must be one of [" + strings.Join(names, ", ") + "].",
		err:    ErrNotAllowed,
	}
}

// ParseBool accepts exactly "0", "1", "false", "true", "False", "True",
// "FALSE" and "TRUE". Unlike strconv.ParseBool it rejects "t", "F" and friends.
func ParseBool(raw string) (bool, error) {
	v, err := CheckEnum(raw, boolLiterals)
	if err != nil {
		return false, err
	}
	return slices.Contains(trueLiterals, v), nil
}

// Split cuts raw around sep. An empty sep means DefaultSeparator.
// A value without sep yields a single element.
func Split(raw, sep string) []string {
	if sep == "" {
		sep = DefaultSeparator
	}
	return strings.Split(raw, sep)
}
