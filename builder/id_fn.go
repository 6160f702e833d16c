package builder

import "strconv"

// IDFn maps a zero-based vertex index to its ID. It must be deterministic.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal index: 0→"0", 42→"42".
func DefaultIDFn(idx int) string { return strconv.Itoa(idx) }

// WithPrefixedIDs names vertices prefix+index ("v0", "v1", ...).
func WithPrefixedIDs(prefix string) BuilderOption {
	return WithIDScheme(func(idx int) string { return prefix + strconv.Itoa(idx) })
}
