package regexp

import "strings"

// pcreSyntax lists substrings that only PCRE-style engines understand, grouped
// by the feature they introduce.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreSyntax = []struct {
	feature string
	tokens  []string
}{
	{"lookaround", []string{
		"(?=", "(?!", "(?<=", "(?<!",
		"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
		"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
		"(?*", "(*napla:", "(*non_atomic_positive_lookahead:",
		"(?<*", "(*naplb:", "(*non_atomic_positive_lookbehind:",
	}},
	{"substring scan", []string{"(*scan_substring:", "(*scs:"}},
	{"script run", []string{"(*script_run:", "(*sr:", "(*atomic_script_run:", "(*asr:"}},
	{"backtracking verb", []string{
		"(*ACCEPT)", "(*FAIL)", "(*F)", "(*MARK:", "(*:", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	}},
	{"start option", []string{
		"(*LIMIT_DEPTH=", "(*LIMIT_HEAP=", "(*LIMIT_MATCH=", "(*CASELESS_RESTRICT)",
		"(*NOTEMPTY)", "(*NOTEMPTY_ATSTART)", "(*NO_AUTO_POSSESS)", "(*NO_DOTSTAR_ANCHOR)",
		"(*NO_JIT)", "(*NO_START_OPT)", "(*TURKISH_CASING)", "(*UTF)", "(*UCP)",
		"(*CR)", "(*LF)", "(*CRLF)", "(*ANYCRLF)", "(*ANY)", "(*NUL)",
		"(*BSR_ANYCRLF)", "(*BSR_UNICODE)",
	}},
	{"atomic group", []string{"(?>", "(*atomic:"}},
	{"branch reset", []string{"(?|"}},
	{"conditional", []string{"(?(DEFINE)", "(?("}},
	{"comment", []string{"(?#"}},
	{"recursion", []string{"(?R)", "(?P>", "(?&", "(?[", `(?C`}},
	{"escape", []string{
		`\C`, `\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\N`, `\K`,
		`\e`, `\f`, `\a`, `\o{`, `\x{`, `\p{`, `\P{`,
	}},
	{"named backreference", []string{`\g`, `\k<`, `\k'`, `\k{`, `(?P=`}},
	{"anchor", []string{`\A`, `\Z`, `\z`, `\G`}},
}

// RequiresPCRE reports whether pattern uses syntax that RE2 cannot execute
// and therefore has to be compiled with regexp2.
func RequiresPCRE(pattern string) bool {
	_, ok := pcreFeature(pattern)
	return ok
}

// pcreFeature returns the first PCRE-only feature found in pattern.
func pcreFeature(pattern string) (string, bool) {
	for _, group := range pcreSyntax {
		for _, tok := range group.tokens {
			if strings.Contains(pattern, tok) {
				return group.feature, true
			}
		}
	}

	if hasNumericBackref(pattern) {
		return "backreference", true
	}

	// RE2 spells named groups (?P<name>...). A pattern mixing both styles
	// is left to RE2 so it reports the error.
	if !strings.Contains(pattern, "(?P<") &&
		(strings.Contains(pattern, "(?<") || strings.Contains(pattern, "(?'")) {
		return "named group", true
	}

	return "", false
}

// hasNumericBackref reports whether pattern contains an unescaped \1..\9.
func hasNumericBackref(pattern string) bool {
	escaped := false
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '\\' {
			escaped = false
			continue
		}

		if !escaped && i+1 < len(pattern) {
			if next := pattern[i+1]; next >= '1' && next <= '9' {
				return true
			}
		}
		escaped = !escaped
	}

	return false
}
