package strmatch

type options struct {
	cache *Cache
	eager bool
}

// Option configures a rule set built with [NewWithOptions].
type Option func(*options)

// WithCache makes the rule set compile its patterns through c, rebinding rules
// that were built against another cache. Without it, each rule keeps the cache
// it was built with. A nil c is ignored.
func WithCache(c *Cache) Option {
	return func(o *options) {
		o.cache = c
	}
}

// WithEager compiles every pattern while the rule set is built, so an invalid
// pattern panics at construction rather than on the first match.
func WithEager() Option {
	return func(o *options) {
		o.eager = true
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
