package pair

import (
	"errors"
	"regexp"
	"regexp/syntax"
	"strings"
)

// checkRegex compiles pattern and discards the result. Matching is left to
// whoever evaluates the pair.
func checkRegex(name, pattern string) error {
	_, err := regexp.Compile(pattern)
	if err == nil {
		return nil
	}

	rerr := &RegexError{Name: name, Reason: err.Error(), Err: err}

	var serr *syntax.Error
	if errors.As(err, &serr) {
		rerr.Reason = serr.Code.String()
		if i := strings.Index(pattern, serr.Expr); i >= 0 {
			rerr.Offset = i
		}
	}

	return rerr
}
