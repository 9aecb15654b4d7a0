package pair

import (
	"errors"
	"fmt"
)

var (
	ErrGroupNotSupported = errors.New("attributes of type 'group' are not supported")
	ErrHasValue          = errors.New("pair already has a value")
	ErrUnknownAttribute  = errors.New("unknown attribute")
	ErrExpectingOperator = errors.New("expecting operator")
	ErrNoRelativeAnchor  = errors.New("relative attributes can only be used immediately after an attribute of type 'group'")
	ErrNameTooLong       = errors.New("attribute name too long")
	ErrGroupStart        = errors.New("group list must start with '{'")
	ErrUnterminatedGroup = errors.New("failed to end group list with '}'")
	ErrTooDeep           = errors.New("group nesting too deep")
	ErrNoValue           = errors.New("failed to get value")
	ErrExpectedValue     = errors.New("failed to find expected value on right hand side")
	ErrExpectedComma     = errors.New("expected ','")
	ErrFormat            = errors.New("invalid format")
	ErrNilList           = errors.New("nil pair list")
)

// ParseError reports a failure at a byte offset of the parsed line.
type ParseError struct {
	Offset int
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("offset %d: %v", e.Offset, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// RegexError reports a regular expression that does not compile.
// Offset is the position of the offending fragment within the expression.
type RegexError struct {
	Name   string
	Offset int
	Reason string
	Err    error
}

func (e *RegexError) Error() string {
	return fmt.Sprintf("error at offset %d compiling regex for %s: %s", e.Offset, e.Name, e.Reason)
}

func (e *RegexError) Unwrap() error {
	return e.Err
}
