package strmatch

import "fmt"

// Rule pairs a pattern with the producer evaluated when that pattern is the
// first to match.
type Rule[T any] struct {
	cell *cell
	then func() T
}

// When returns a rule for pattern bound to [DefaultCache]. The pattern is not
// compiled until the rule is first tried.
//
// It panics with [ErrNilProducer] if then is nil.
func When[T any](pattern string, then func() T) Rule[T] {
	return WhenIn(defaultCache, pattern, then)
}

// WhenIn is like [When] but binds the rule to c. A nil c means
// [DefaultCache].
func WhenIn[T any](c *Cache, pattern string, then func() T) Rule[T] {
	if c == nil {
		c = defaultCache
	}
	if then == nil {
		panic(fmt.Errorf("%w for pattern %q", ErrNilProducer, pattern))
	}

	return Rule[T]{cell: c.cell(pattern), then: then}
}

// Pattern returns the rule's pattern source.
func (r Rule[T]) Pattern() string {
	return r.cell.pattern
}

// Then returns a producer that yields v.
func Then[T any](v T) func() T {
	return func() T { return v }
}

// Set is an ordered, immutable list of rules plus a default producer.
//
// A Set is safe for concurrent use.
type Set[T any] struct {
	rules     []Rule[T]
	otherwise func() T
}

// New returns a rule set that tries rules in the given order and falls back to
// otherwise.
//
// It panics with [ErrNoDefault] if otherwise is nil.
func New[T any](otherwise func() T, rules ...Rule[T]) *Set[T] {
	return NewWithOptions(otherwise, rules)
}

// NewWithOptions is like [New] but accepts options.
func NewWithOptions[T any](otherwise func() T, rules []Rule[T], opts ...Option) *Set[T] {
	if otherwise == nil {
		panic(ErrNoDefault)
	}

	o := newOptions(opts)

	s := &Set[T]{
		rules:     make([]Rule[T], len(rules)),
		otherwise: otherwise,
	}
	checkRules(rules)
	for i, r := range rules {
		if o.cache != nil && r.cell.owner != o.cache {
			r.cell = o.cache.cell(r.cell.pattern)
		}
		s.rules[i] = r
	}

	if o.eager {
		s.Compile()
	}

	return s
}

// Match returns the value of the first rule whose pattern matches anywhere in
// input, or the default value if none does. Exactly one producer is evaluated.
func (s *Set[T]) Match(input string) T {
	return dispatch(s.rules, s.otherwise, func(c *cell) bool {
		return c.compiled().MatchString(input)
	})
}

// MatchBytes is like [Set.Match] but matches against b.
func (s *Set[T]) MatchBytes(b []byte) T {
	return dispatch(s.rules, s.otherwise, func(c *cell) bool {
		return c.compiled().Match(b)
	})
}

// Index returns the position of the first rule whose pattern matches input,
// or -1 if the default would be chosen. No producer is evaluated.
func (s *Set[T]) Index(input string) int {
	return first(s.rules, func(c *cell) bool {
		return c.compiled().MatchString(input)
	})
}

// Compile compiles every pattern in s that is not compiled yet.
//
// It panics with an error wrapping [ErrInvalidPattern] on the first pattern,
// in rule order, that fails to compile.
func (s *Set[T]) Compile() {
	for _, r := range s.rules {
		r.cell.compiled()
	}
}

// Len returns the number of rules in s, not counting the default.
func (s *Set[T]) Len() int {
	return len(s.rules)
}

// Patterns returns the patterns of s in rule order.
func (s *Set[T]) Patterns() []string {
	patterns := make([]string, len(s.rules))
	for i, r := range s.rules {
		patterns[i] = r.cell.pattern
	}

	return patterns
}

// Match tries rules in order against input and returns the value of the first
// match, or of otherwise if none matches. Patterns are shared through the
// caches the rules are bound to, so repeated calls do not recompile them.
//
// It panics with [ErrNoDefault] if otherwise is nil and with [ErrNilProducer]
// if any rule was not built with [When] or [WhenIn].
func Match[T any](input string, otherwise func() T, rules ...Rule[T]) T {
	if otherwise == nil {
		panic(ErrNoDefault)
	}
	checkRules(rules)

	return dispatch(rules, otherwise, func(c *cell) bool {
		return c.compiled().MatchString(input)
	})
}

func checkRules[T any](rules []Rule[T]) {
	for i, r := range rules {
		if r.then == nil || r.cell == nil {
			panic(fmt.Errorf("%w at rule %d", ErrNilProducer, i))
		}
	}
}

func dispatch[T any](rules []Rule[T], otherwise func() T, matches func(*cell) bool) T {
	if i := first(rules, matches); i >= 0 {
		return rules[i].then()
	}

	return otherwise()
}

func first[T any](rules []Rule[T], matches func(*cell) bool) int {
	for i, r := range rules {
		if matches(r.cell) {
			return i
		}
	}

	return -1
}
