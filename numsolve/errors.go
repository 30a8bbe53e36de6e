package numsolve

import "errors"

var (
	// ErrInvalidBracket is returned by Brent when f(a) and f(b) share a
	// sign, so no bracketed root is guaranteed to exist in [a,b].
	ErrInvalidBracket = errors.New("numsolve: f(a) and f(b) must have opposite signs")
)
