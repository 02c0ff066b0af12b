// Package regexp compiles patterns with the fastest engine able to run them.
//
// Patterns compile with coregex (an accelerated RE2-compatible engine) unless
// they use constructs RE2 cannot execute, such as lookahead or
// backreferences. Those fall back to [regexp2], a backtracking engine with
// PCRE-style semantics.
//
// A [Regexp] also carries JavaScript-style [Flags]. [Global] decides whether
// replacements and highlighting touch every match or only the first one;
// the remaining flags map onto the native options of whichever engine was
// selected.
//
// All offsets reported by this package are byte offsets into the input,
// whichever engine produced them.
package regexp
