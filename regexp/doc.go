// Package regexp compiles patterns for the dispatcher with the fastest engine
// that can run them.
//
// Patterns are compiled with coregex (an accelerated RE2-compatible engine) by
// default. When a pattern uses PCRE/Perl syntax that RE2 cannot execute, such
// as lookaround or backreferences, it is compiled with [regexp2] instead.
//
// regexp2 runs with its default (.NET) semantics rather than RE2's: `$` also
// matches before a trailing newline and `\d` matches any Unicode digit. A
// pattern therefore gets a different dialect depending on whether it contains
// PCRE-only syntax; [RequiresPCRE] reports which one applies.
//
// Only the matching surface the dispatcher needs is exposed: a compiled
// [Regexp] reports whether it matches anywhere in its input.
package regexp
