// Package validation checks user-typed medication queries.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/giygas/medicamentos-bot/interfaces"
	"github.com/giygas/medicamentos-bot/textutil"
)

// Query limits
const (
	MinQueryLength = 3
	MaxQueryLength = 100
	MaxQueryWords  = 8
)

var (
	ErrQueryTooShort = errors.New("query too short")
	ErrQueryTooLong  = errors.New("query too long")
	ErrQueryInvalid  = errors.New("query contains invalid content")
)

var (
	// Letters in any script, digits, spaces and the punctuation found in drug names
	inputRegex = regexp.MustCompile(`^[\p{L}\p{N}\s\-\.\+'/(),&]+$`)

	// Path traversal; the query ends up in source URL paths
	traversalPatterns = []string{"../", "/.."}
)

// QueryValidatorImpl implements the interfaces.QueryValidator interface
type QueryValidatorImpl struct{}

// NewQueryValidator creates a new query validator
func NewQueryValidator() interfaces.QueryValidator {
	return &QueryValidatorImpl{}
}

// ValidateQuery trims query and checks its length and content
func (v *QueryValidatorImpl) ValidateQuery(query string) (string, error) {
	query = strings.TrimSpace(query)

	length := textutil.Len(query)
	if length < MinQueryLength {
		return "", fmt.Errorf("%w: minimum %d characters", ErrQueryTooShort, MinQueryLength)
	}
	if length > MaxQueryLength {
		return "", fmt.Errorf("%w: maximum %d characters", ErrQueryTooLong, MaxQueryLength)
	}

	if len(strings.Fields(query)) > MaxQueryWords {
		return "", fmt.Errorf("%w: maximum %d words allowed", ErrQueryInvalid, MaxQueryWords)
	}

	if !inputRegex.MatchString(query) {
		return "", fmt.Errorf("%w: only letters, numbers, spaces and - . + ' / ( ) , & are allowed", ErrQueryInvalid)
	}

	for _, pattern := range traversalPatterns {
		if strings.Contains(query, pattern) {
			return "", fmt.Errorf("%w: path traversal", ErrQueryInvalid)
		}
	}

	if hasExcessiveRepetition(query) {
		return "", fmt.Errorf("%w: excessive character repetition", ErrQueryInvalid)
	}

	return query, nil
}

// hasExcessiveRepetition reports the same character repeated more than 10 times in a row
func hasExcessiveRepetition(input string) bool {
	var last rune
	run := 0
	for _, r := range input {
		if r == last {
			run++
		} else {
			last, run = r, 1
		}
		if run > 10 {
			return true
		}
	}
	return false
}
