// Package strmatch dispatches on a string by testing it against an ordered
// list of regular expressions.
//
// The value produced by the first pattern that matches anywhere in the input
// is returned; when none matches, the default producer runs instead. Only the
// selected producer is ever evaluated.
//
//	kind := strmatch.New(strmatch.Then(Others),
//		strmatch.When(`(\d{4})-(\d{2})-(\d{2})`, strmatch.Then(Phone)),
//		strmatch.When(`^([a-zA-Z0-9._%-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6})*$`, strmatch.Then(Email)),
//	)
//	kind.Match("example@example.com") // Email
//
// Producers may also be blocks:
//
//	strmatch.When(`^\d+$`, func() int {
//		n, _ := strconv.Atoi(s)
//		return n * 2
//	})
//
// # Pattern cache
//
// Each distinct pattern is compiled at most once per [Cache], on first use,
// and reused for the lifetime of the cache. Rules built with [When] share the
// process-wide [DefaultCache]. Compilation goes through the [regexp] package,
// which picks coregex for RE2-compatible patterns and regexp2 for PCRE-only
// syntax.
//
// # Invalid patterns
//
// Patterns are expected to be static and valid. A pattern that fails to
// compile panics with an error wrapping [ErrInvalidPattern]; there is no
// recoverable path. Use [Set.Compile] or [WithEager] to surface such panics
// at startup instead of on the first match.
package strmatch
