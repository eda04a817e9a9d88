// Package daterange resolves relative and absolute date-range specifiers
// into concrete calendar-date windows. Resolution is pure: it depends only
// on the spec and the reference instant passed in, which keeps it trivially
// testable and keeps validation ahead of any store fetch.
package daterange

import (
	"errors"
	"fmt"
	"time"
)

// Layout is the calendar-date format used throughout the advisor.
const Layout = "2006-01-02"

// defaultTrailingDays is the window applied when no range is specified.
const defaultTrailingDays = 7

// Kind selects how a Spec is interpreted.
type Kind string

// Supported range kinds.
const (
	KindDays   Kind = "days"
	KindWeeks  Kind = "weeks"
	KindMonths Kind = "months"
	KindCustom Kind = "custom"
)

// Validation errors. All wrap ErrInvalidRange so callers can classify the
// whole family with a single errors.Is check.
var (
	ErrInvalidRange = errors.New("invalid date range")
	ErrInvalidDate  = fmt.Errorf("%w: malformed date", ErrInvalidRange)
	ErrInvalidKind  = fmt.Errorf("%w: unknown kind", ErrInvalidRange)
	ErrInvalidValue = fmt.Errorf("%w: negative value", ErrInvalidRange)
)

// Spec is the caller-supplied range specifier. A zero Spec (or a nil
// pointer) means the default trailing window.
type Spec struct {
	Kind      Kind   `json:"kind,omitempty"`
	Value     int    `json:"value,omitempty"`
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`
}

// Range is a resolved window of calendar dates, end inclusive.
type Range struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Resolve turns spec into a concrete Range relative to the reference
// instant. Rules:
//
//   - nil spec or empty kind: trailing window of defaultTrailingDays.
//   - custom: start/end taken verbatim; a missing side defaults to the
//     reference date. Explicit dates must be real YYYY-MM-DD dates.
//   - days/weeks/months with value N (default 1): end is the reference
//     date, start is N units earlier. Months subtract calendar months,
//     not a fixed day count.
func Resolve(spec *Spec, ref time.Time) (Range, error) {
	refDate := ref.Format(Layout)

	if spec == nil || spec.Kind == "" {
		return Range{
			Start: ref.AddDate(0, 0, -defaultTrailingDays).Format(Layout),
			End:   refDate,
		}, nil
	}

	if spec.Kind == KindCustom {
		return resolveCustom(spec, refDate)
	}

	value := spec.Value
	if value == 0 {
		value = 1
	}
	if value < 0 {
		return Range{}, fmt.Errorf("%w: %d", ErrInvalidValue, spec.Value)
	}

	var start time.Time
	switch spec.Kind {
	case KindDays:
		start = ref.AddDate(0, 0, -value)
	case KindWeeks:
		start = ref.AddDate(0, 0, -7*value)
	case KindMonths:
		start = ref.AddDate(0, -value, 0)
	default:
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidKind, spec.Kind)
	}

	return Range{Start: start.Format(Layout), End: refDate}, nil
}

func resolveCustom(spec *Spec, refDate string) (Range, error) {
	start := spec.StartDate
	if start == "" {
		start = refDate
	} else if err := validateDate(start); err != nil {
		return Range{}, err
	}

	end := spec.EndDate
	if end == "" {
		end = refDate
	} else if err := validateDate(end); err != nil {
		return Range{}, err
	}

	return Range{Start: start, End: end}, nil
}

// validateDate rejects anything that is not a real calendar date in
// YYYY-MM-DD form. time.Parse is strict about both the shape and the
// calendar (2026-02-30 fails).
func validateDate(s string) error {
	if _, err := time.Parse(Layout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}
