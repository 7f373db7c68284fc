package validation

import (
	"errors"
	"strings"
	"testing"
)

func TestValidateQuery_Valid(t *testing.T) {
	validator := NewQueryValidator()

	testCases := []struct {
		name  string
		input string
		want  string
	}{
		{"English name", "aspirin", "aspirin"},
		{"Spanish accents", "ácido fólico", "ácido fólico"},
		{"Surrounding spaces", "  ibuprofen  ", "ibuprofen"},
		{"Combination", "amoxicillin/clavulanate", "amoxicillin/clavulanate"},
		{"Dosage", "paracetamol 500 mg", "paracetamol 500 mg"},
		{"Exactly three characters", "abc", "abc"},
		{"Ampersand", "acetaminophen & codeine", "acetaminophen & codeine"},
		{"Double hyphen", "co--trimoxazole", "co--trimoxazole"},
		{"Words that look like SQL", "insert into drop table", "insert into drop table"},
		{"Apostrophe before or", "st john's wort or valerian", "st john's wort or valerian"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := validator.ValidateQuery(tc.input)
			if err != nil {
				t.Fatalf("Unexpected error for %q: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestValidateQuery_Errors(t *testing.T) {
	validator := NewQueryValidator()

	testCases := []struct {
		name  string
		input string
		want  error
	}{
		{"Empty", "", ErrQueryTooShort},
		{"Only spaces", "     ", ErrQueryTooShort},
		{"Two letters", "ab", ErrQueryTooShort},
		{"Two accented letters", "éé", ErrQueryTooShort},
		{"Too long", strings.Repeat("ab ", 40), ErrQueryTooLong},
		{"Too many words", "a1 b2 c3 d4 e5 f6 g7 h8 i9", ErrQueryInvalid},
		{"Script tag", "<script>alert(1)</script>", ErrQueryInvalid},
		{"Comparison operator", "aspirin' or 1=1", ErrQueryInvalid},
		{"Semicolon", "aspirin; ibuprofen", ErrQueryInvalid},
		{"Path traversal", "../../etc/passwd", ErrQueryInvalid},
		{"Special characters", "!@#$%^&*", ErrQueryInvalid},
		{"Emoji", "aspirin 💊", ErrQueryInvalid},
		{"Null byte", "abc\x00def", ErrQueryInvalid},
		{"Repetition", "aaaaaaaaaaaaaaa", ErrQueryInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := validator.ValidateQuery(tc.input)
			if !errors.Is(err, tc.want) {
				t.Errorf("Expected %v for %q, got %v", tc.want, tc.input, err)
			}
		})
	}
}

func TestHasExcessiveRepetition(t *testing.T) {
	if hasExcessiveRepetition("aaaaaaaaaa") {
		t.Error("Ten repeated characters should be allowed")
	}
	if !hasExcessiveRepetition("xaaaaaaaaaaa") {
		t.Error("Eleven repeated characters should be rejected")
	}
	if !hasExcessiveRepetition("ñññññññññññ") {
		t.Error("Repetition should be counted in characters, not bytes")
	}
}
