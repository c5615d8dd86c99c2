package jddf

// DefaultMaxDepth is the max_depth value the JDDF reference test corpus
// exercises against cyclic schemas (spec.md §8, scenario 3). It is a
// convenience for callers who want a safe non-zero default; Limits{} (both
// fields zero) still means "unlimited" per spec.
const DefaultMaxDepth = 32

// Limits bounds a single Validate call. The zero value disables both
// limits.
type Limits struct {
	// MaxDepth caps the number of currently-active schema-path frames: the
	// root frame plus one per ref being followed, so at most MaxDepth-1 refs
	// can be active at once. 0 disables the limit.
	MaxDepth int

	// MaxErrors stops validation as soon as this many errors have been
	// produced. 0 disables the limit.
	MaxErrors int
}

// LimitsOption configures a Limits value via NewLimits.
type LimitsOption func(*Limits)

// WithMaxDepth sets MaxDepth.
func WithMaxDepth(n int) LimitsOption {
	return func(l *Limits) { l.MaxDepth = n }
}

// WithMaxErrors sets MaxErrors.
func WithMaxErrors(n int) LimitsOption {
	return func(l *Limits) { l.MaxErrors = n }
}

// NewLimits builds a Limits value from options, both defaulting to 0
// (unlimited).
func NewLimits(opts ...LimitsOption) Limits {
	var l Limits
	for _, opt := range opts {
		opt(&l)
	}
	return l
}
