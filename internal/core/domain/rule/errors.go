package rule

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern indicates a match or notMatch value that is not a valid regular expression.
var ErrInvalidPattern = errors.New("invalid pattern")

// InvalidPatternError identifies the rule whose pattern failed to compile.
type InvalidPatternError struct {
	Index   int    // position of the rule in Config.Commands
	Field   string // "match" or "notMatch"
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("%s in commands[%d].%s %q: %v", ErrInvalidPattern, e.Index, e.Field, e.Pattern, e.Err)
}

// Unwrap returns the underlying compile error.
func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Is reports ErrInvalidPattern as a match so callers can test with errors.Is.
func (e *InvalidPatternError) Is(target error) bool {
	return target == ErrInvalidPattern
}
