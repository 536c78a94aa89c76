// Package timer implements the countdown core: a validated time
// configuration and a reactive state machine driven by discrete
// one-second ticks. It owns no clock, no goroutines, and no I/O; the
// surrounding application delivers input and ticks and renders the
// snapshots it emits.
package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Field identifies one component of a time configuration.
type Field int

const (
	FieldHours Field = iota
	FieldMinutes
	FieldSeconds
)

func (f Field) String() string {
	switch f {
	case FieldHours:
		return "hours"
	case FieldMinutes:
		return "minutes"
	case FieldSeconds:
		return "seconds"
	}
	return "unknown"
}

// Max returns the inclusive upper bound for the field. Minimum is
// always zero.
func (f Field) Max() int {
	if f == FieldHours {
		return 23
	}
	return 59
}

// ErrorKind distinguishes a value that parsed but fell outside its
// range from input that never was a usable number. The two warrant
// different inline messages in an edit field.
type ErrorKind int

const (
	KindOutOfRange ErrorKind = iota
	KindMalformed
)

func (k ErrorKind) String() string {
	if k == KindMalformed {
		return "malformed"
	}
	return "out of range"
}

// ValidationError reports a single offending field. Multiple offending
// fields are joined; errors.As surfaces the first.
type ValidationError struct {
	Field Field
	Kind  ErrorKind
	Value string
}

func (e *ValidationError) Error() string {
	if e.Kind == KindMalformed {
		return fmt.Sprintf("%s: not a valid number: %q", e.Field, e.Value)
	}
	return fmt.Sprintf("%s must be between 0 and %d, got %s", e.Field, e.Field.Max(), e.Value)
}

// Spec is a validated hours/minutes/seconds configuration. Construct
// through Validate; a zero Spec (0h 0m 0s) is range-valid but cannot be
// started.
type Spec struct {
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds converts the spec to its countdown length.
func (s Spec) TotalSeconds() int {
	return s.Hours*3600 + s.Minutes*60 + s.Seconds
}

// IsZero reports whether the spec describes an empty countdown.
func (s Spec) IsZero() bool {
	return s.Hours == 0 && s.Minutes == 0 && s.Seconds == 0
}

// Validate checks a candidate triple against the field bounds
// (hours 0-23, minutes 0-59, seconds 0-59) and returns the resulting
// Spec. Negative values are treated as malformed input rather than a
// range miss: they can only reach this point when an upstream parse or
// clamp was skipped. Every offending field is reported.
func Validate(hours, minutes, seconds int) (Spec, error) {
	var errs []error
	for _, c := range []struct {
		field Field
		value int
	}{
		{FieldHours, hours},
		{FieldMinutes, minutes},
		{FieldSeconds, seconds},
	} {
		switch {
		case c.value < 0:
			errs = append(errs, &ValidationError{Field: c.field, Kind: KindMalformed, Value: strconv.Itoa(c.value)})
		case c.value > c.field.Max():
			errs = append(errs, &ValidationError{Field: c.field, Kind: KindOutOfRange, Value: strconv.Itoa(c.value)})
		}
	}
	if len(errs) > 0 {
		return Spec{}, errors.Join(errs...)
	}
	return Spec{Hours: hours, Minutes: minutes, Seconds: seconds}, nil
}

// ParseField converts raw edit-field text to an integer candidate for
// Validate. Blank input means zero (an empty field in the UI).
// Anything that is not a plain non-negative integer — text, floats,
// infinities, negatives — is malformed. Range checking stays with
// Validate so a parsed-but-too-large value reports as out of range.
func ParseField(raw string, field Field) (int, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil || v < 0 {
		return 0, &ValidationError{Field: field, Kind: KindMalformed, Value: trimmed}
	}
	return v, nil
}
