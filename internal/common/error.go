// Package common defines shared sentinel errors used across the liftlog
// server, CLI and storage layers. Callers should use errors.Is to match these
// values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")
	ErrorStorage  = errors.New("storage error")

	// Input errors.
	ErrorValidation = errors.New("validation error")
	ErrorParse      = errors.New("parse error")

	// Session token errors (invalid, expired or malformed).
	ErrInvalidToken = errors.New("invalid token")
)

// ParseError describes a serial specification segment that could not be
// expanded. It matches ErrorParse via errors.Is.
type ParseError struct {
	Segment string
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse serial segment %q: %s", e.Segment, e.Reason)
}

func (e *ParseError) Is(target error) bool {
	return target == ErrorParse
}
