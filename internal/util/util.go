package util

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidLimit is returned by ParseLimit for non-numeric or non-positive values.
var ErrInvalidLimit = errors.New("limit must be a positive integer")

// ParseLimit parses a page size query value. An empty value yields fallback.
func ParseLimit(raw string, fallback int) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback, nil
	}

	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidLimit, "parse %q", raw)
	}
	if limit <= 0 {
		return 0, errors.WithStack(ErrInvalidLimit)
	}

	return limit, nil
}

// MaskCode hides all but the first and last two characters of a redemption code (e.g. "K7****XA").
func MaskCode(code string) string {
	const visible = 2

	if len(code) <= 2*visible {
		return strings.Repeat("*", len(code))
	}

	return code[:visible] + strings.Repeat("*", len(code)-2*visible) + code[len(code)-visible:]
}
