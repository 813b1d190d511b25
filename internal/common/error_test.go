package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseError_MatchesSentinel(t *testing.T) {
	var err error = &ParseError{Segment: "a-b", Reason: "bad start"}

	assert.True(t, errors.Is(err, ErrorParse))
	assert.False(t, errors.Is(err, ErrorValidation))
	assert.Equal(t, `cannot parse serial segment "a-b": bad start`, err.Error())
}

func TestParseError_WrappedStillMatches(t *testing.T) {
	err := fmt.Errorf("create: %w", &ParseError{Segment: "x", Reason: "y"})

	var pe *ParseError
	assert.True(t, errors.As(err, &pe))
	assert.Equal(t, "x", pe.Segment)
	assert.ErrorIs(t, err, ErrorParse)
}
