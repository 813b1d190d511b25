// Package serials expands compact serial-number specifications such as
// "152-155,172-175" into the discrete serial tokens they describe.
package serials

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/dmitrijs2005/liftlog/internal/common"
)

// MaxSerials caps the number of tokens a single specification may expand to.
const MaxSerials = 10000

// ParseRanges expands text into an ordered list of serial tokens.
//
// The input is a comma-separated list. Each segment is either a bare token,
// passed through unchanged, or a "start-end" range of integer literals that
// expands to every integer from start to end inclusive. Whitespace anywhere in
// the input is ignored. A range whose start is greater than its end expands to
// nothing. Duplicates across segments are kept.
//
// Blank input and empty segments ("1,,2", trailing commas) contribute no
// tokens, so ParseRanges("") returns an empty slice.
//
// A malformed range, or an expansion longer than MaxSerials, is reported as a
// *common.ParseError.
func ParseRanges(text string) ([]string, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)

	result := []string{}
	if compact == "" {
		return result, nil
	}

	for _, segment := range strings.Split(compact, ",") {
		if segment == "" {
			continue
		}
		if !strings.Contains(segment, "-") {
			result = append(result, segment)
			if len(result) > MaxSerials {
				return nil, tooMany(segment)
			}
			continue
		}

		start, end, err := parseBounds(segment)
		if err != nil {
			return nil, err
		}
		if start > end {
			continue
		}
		if end-start >= int64(MaxSerials-len(result)) {
			return nil, tooMany(segment)
		}
		// Count down the remaining span so end == MaxInt64 cannot wrap.
		for n := end - start; ; n-- {
			result = append(result, strconv.FormatInt(end-n, 10))
			if n == 0 {
				break
			}
		}
	}

	return result, nil
}

func parseBounds(segment string) (int64, int64, error) {
	parts := strings.Split(segment, "-")
	if len(parts) != 2 {
		return 0, 0, &common.ParseError{Segment: segment, Reason: "expected exactly one '-' between start and end"}
	}

	start, err := strconv.ParseInt(parts[0], 10, 64)
	if err != nil {
		return 0, 0, &common.ParseError{Segment: segment, Reason: "start is not an integer"}
	}
	end, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, 0, &common.ParseError{Segment: segment, Reason: "end is not an integer"}
	}

	return start, end, nil
}

func tooMany(segment string) error {
	return &common.ParseError{Segment: segment, Reason: "expands to more than " + strconv.Itoa(MaxSerials) + " serials"}
}
