package regexp

import "errors"

// ErrCompile indicates that a pattern could not be compiled by the selected
// engine.
//
// The engine's own error is wrapped alongside it and remains reachable with
// [errors.As].
var ErrCompile = errors.New("cannot compile pattern")

// ErrUnknownFlag indicates that a flag letter passed to [ParseFlags] is not
// one of g, i, m or s.
var ErrUnknownFlag = errors.New("unknown regexp flag")

// ErrDuplicateFlag indicates that a flag letter was given more than once.
var ErrDuplicateFlag = errors.New("duplicate regexp flag")
