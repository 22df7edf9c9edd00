package appupdate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// DefaultVersion is assumed when no prior record exists or a store could not be resolved.
const DefaultVersion = "1.0.0"

var ErrInvalidVersion = errors.New("invalid version")

// ParseVersion splits a dotted version into its numeric components.
// Components must be unsigned decimal integers; one bad component rejects the whole string.
func ParseVersion(text string) ([]int, error) {
	parts := strings.Split(text, ".")
	nums := make([]int, 0, len(parts))
	for _, part := range parts {
		if part == "" || part[0] < '0' || part[0] > '9' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, text)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// IsNewer reports whether candidate is strictly newer than baseline.
// Only overlapping components are compared, so "1.2" is not newer than "1.2.0"
// and vice versa. Unparseable input is never newer.
func IsNewer(candidate, baseline string) bool {
	cand, err := ParseVersion(candidate)
	if err != nil {
		return false
	}
	base, err := ParseVersion(baseline)
	if err != nil {
		return false
	}
	for i := 0; i < min(len(cand), len(base)); i++ {
		if cand[i] != base[i] {
			return cand[i] > base[i]
		}
	}
	return false
}
