package regexp

import (
	"sync"
	"time"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// Engine identifies the backend that executes a compiled [Regexp].
type Engine uint8

const (
	// EngineCore is coregex, used for RE2-compatible patterns.
	EngineCore Engine = iota
	// EnginePCRE is regexp2, used for patterns with PCRE-only syntax.
	EnginePCRE
)

// String returns the engine name.
func (e Engine) String() string {
	switch e {
	case EngineCore:
		return "coregex"
	case EnginePCRE:
		return "regexp2"
	default:
		return "unknown"
	}
}

// Regexp is a compiled regular expression backed by either coregex or
// regexp2.
//
// A Regexp is safe for concurrent use. coregex updates its prefilter
// statistics without synchronisation, so matches on that engine are
// serialised; regexp2 keeps per-call state in pooled runners and needs no
// lock.
type Regexp struct {
	pattern string
	pcre    *regexp2.Regexp

	mu   sync.Mutex
	core *coregex.Regex
}

// Compile parses a regular expression and returns a compiled Regexp.
func Compile(pattern string, opts ...Option) (*Regexp, error) {
	o := newOptions(opts)

	if RequiresPCRE(pattern) {
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, err
		}
		if o.matchTimeout > 0 {
			re.MatchTimeout = o.matchTimeout
		}

		return &Regexp{pattern: pattern, pcre: re}, nil
	}

	re, err := coregex.Compile(pattern)
	if err != nil {
		return nil, err
	}

	return &Regexp{pattern: pattern, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(pattern string, opts ...Option) *Regexp {
	re, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}

	return re
}

// String returns the source pattern used to compile the Regexp.
func (r *Regexp) String() string {
	return r.pattern
}

// Engine reports which backend executes r.
func (r *Regexp) Engine() Engine {
	if r.core != nil {
		return EngineCore
	}

	return EnginePCRE
}

// MatchString reports whether s contains any match of r.
//
// A regexp2 match that exceeds its timeout is reported as no match; see
// [WithMatchTimeout].
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// Match reports whether b contains any match of r.
func (r *Regexp) Match(b []byte) bool {
	if r.core != nil {
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.core.Match(b)
	}

	return r.MatchString(string(b))
}

type options struct {
	matchTimeout time.Duration
}

// Option configures [Compile].
type Option func(*options)

// WithMatchTimeout bounds the time a regexp2 match may spend backtracking.
// coregex runs in linear time and ignores it. Non-positive values leave the
// regexp2 default in place, which never times out.
//
// A match that times out is reported as no match, so whether such a pattern
// matches a pathological input can depend on machine load. Leave it unset
// where results must be deterministic.
func WithMatchTimeout(d time.Duration) Option {
	return func(o *options) {
		o.matchTimeout = d
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
