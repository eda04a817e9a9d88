package recommend

import (
	"errors"
	"fmt"
)

// Sentinel errors for the generation pipeline. Callers classify them with
// errors.Is, never by message inspection.
var (
	// ErrUpstream indicates the generative service call failed. The wrapped
	// cause carries the original message.
	ErrUpstream = errors.New("generative service failure")

	// ErrEmptyResponse indicates the upstream call succeeded but returned no
	// usable candidates. It wraps ErrUpstream because every caller treats
	// the two identically.
	ErrEmptyResponse = fmt.Errorf("%w: empty response", ErrUpstream)

	// ErrNoData indicates a task requiring transactional evidence was asked
	// to run against an empty transaction window. The executor refuses to
	// call upstream in that case.
	ErrNoData = errors.New("no transaction data for task")

	// ErrUnknownTaskType indicates the caller named a task type that has no
	// registered spec.
	ErrUnknownTaskType = errors.New("unknown task type")
)

// IsDegradable reports whether the error is one the single-entity path
// recovers from by serving the deterministic fallback set.
func IsDegradable(err error) bool {
	return errors.Is(err, ErrUpstream) || errors.Is(err, ErrNoData)
}
