package toml

// Version selects which TOML language revision a document is parsed
// against. It gates a small number of language features and
// diagnostics; it never changes the shape of the value model.
type Version int

const (
	// V0_4_0 is the oldest supported revision. Dotted keys are not
	// part of the grammar at this version.
	V0_4_0 Version = iota
	// V0_5_0 adds dotted keys but still requires array elements to
	// share a single type.
	V0_5_0
	// V1_0_0 is the default: dotted keys, heterogeneous arrays, and a
	// raw tab accepted inside a basic string.
	V1_0_0
)

func (v Version) String() string {
	switch v {
	case V0_4_0:
		return "0.4.0"
	case V0_5_0:
		return "0.5.0"
	case V1_0_0:
		return "1.0.0"
	default:
		return "unknown"
	}
}

// supportsDottedKeys reports whether dotted keys are part of the
// grammar at v (>= 0.5.0).
func (v Version) supportsDottedKeys() bool {
	return v >= V0_5_0
}

// supportsHeterogeneousArrays reports whether an array literal may mix
// value kinds at v (>= 1.0.0).
func (v Version) supportsHeterogeneousArrays() bool {
	return v >= V1_0_0
}

// acceptsRawTab reports whether a raw tab character is accepted
// unescaped inside a basic (non-literal) string at v (>= 1.0.0).
func (v Version) acceptsRawTab() bool {
	return v >= V1_0_0
}

// Option configures a parse. The only option today is WithVersion; the
// type exists so more can be added without breaking callers.
type Option func(*config)

type config struct {
	version Version
}

func newConfig(opts []Option) config {
	cfg := config{version: V1_0_0}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithVersion selects the TOML revision a document is parsed against.
// The default, when no Option is given, is V1_0_0.
func WithVersion(v Version) Option {
	return func(c *config) { c.version = v }
}
