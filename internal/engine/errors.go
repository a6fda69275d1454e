package engine

import "errors"

// Engine errors abort a single computation; the engine is pure, so retrying
// with the same inputs can never change the outcome. Anything not covered by
// these is absorbed as a nil percentage or zero count instead of failing.
var (
	ErrInvalidPolicy      = errors.New("invalid grading policy")
	ErrInvalidGradeItem   = errors.New("invalid grade item")
	ErrUnknownGradeLetter = errors.New("unknown grade letter")
)
