package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"task-tracker/internal/config"
	apperrors "task-tracker/internal/errors"
)

// DueDateInputFormat is the only accepted input format for due dates.
// It is part of the external contract and must not change.
const DueDateInputFormat = "MM/DD/YYYY"

// Validator provides common validation utilities
type Validator struct {
	controlChars *regexp.Regexp
	config       *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		controlChars: regexp.MustCompile(`[\x00-\x1f]`),
		config:       nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	v := NewValidator()
	v.config = cfg
	return v
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidTitleLength checks if a title length is within configured limits
func (v *Validator) IsValidTitleLength(title string) bool {
	length := len(strings.TrimSpace(title))
	return length >= v.titleMinLength() && length <= v.titleMaxLength()
}

// HasControlCharacters reports whether a string contains control characters
func (v *Validator) HasControlCharacters(s string) bool {
	return v.controlChars.MatchString(s)
}

// IsValidID checks if a record ID is valid (positive)
func (v *Validator) IsValidID(id int64) bool {
	return id > 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// ParseDueDate parses a due date in MM/DD/YYYY form into local midnight of
// that day. The input must split into exactly three numeric components that
// name a real calendar date. Failures are invalid-input errors, which the
// interaction layer treats as re-promptable.
func (v *Validator) ParseDueDate(input string) (time.Time, error) {
	trimmed := strings.TrimSpace(input)
	parts := strings.Split(trimmed, "/")
	if len(parts) != 3 {
		return time.Time{}, apperrors.NewInvalidInputError("due_date", input, "expected "+DueDateInputFormat)
	}

	month, err := strconv.Atoi(parts[0])
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("due_date", input, "month is not a number")
	}
	day, err := strconv.Atoi(parts[1])
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("due_date", input, "day is not a number")
	}
	year, err := strconv.Atoi(parts[2])
	if err != nil {
		return time.Time{}, apperrors.NewInvalidInputError("due_date", input, "year is not a number")
	}

	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.Local)
	// time.Date normalizes out-of-range components (02/30 becomes 03/02),
	// so a changed component means the input named no real calendar day.
	if date.Year() != year || date.Month() != time.Month(month) || date.Day() != day {
		return time.Time{}, apperrors.NewInvalidInputError("due_date", input, "no such calendar date")
	}

	return date, nil
}

// titleMinLength returns configured minimum title length or default
func (v *Validator) titleMinLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMinLength
	}
	return 1
}

// titleMaxLength returns configured maximum title length or default
func (v *Validator) titleMaxLength() int {
	if v.config != nil {
		return v.config.Validation.TitleMaxLength
	}
	return 255
}
