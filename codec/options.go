package codec

// Option adjusts decoding behavior.
type Option func(*options)

type options struct {
	strictLength bool
}

// WithStrictLength rejects input whose digit count is not a multiple of
// GroupSize instead of parsing the short trailing group.
func WithStrictLength() Option {
	return func(o *options) {
		o.strictLength = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
