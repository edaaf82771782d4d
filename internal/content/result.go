package content

import "fmt"

// Warning codes for records that loaded in a degraded state.
const (
	WarnMalformedRecord = "MALFORMED_RECORD"
	WarnInvalidField    = "INVALID_FIELD"
	WarnUnreadableFile  = "UNREADABLE_FILE"
	WarnOutsideRoot     = "OUTSIDE_ROOT"
)

// Warning describes a file that was skipped or loaded with degraded data.
type Warning struct {
	Kind    Kind   `json:"kind"`
	Path    string `json:"path"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s (%s)", w.Path, w.Message, w.Code)
}

// Result is a loaded collection together with the warnings raised while loading it.
//
// A Result with no warnings loaded cleanly. A Result with warnings recovered
// from malformed or unreadable input. Hard failures are reported as errors
// alongside an empty Result.
type Result[T any] struct {
	Items    []T
	Warnings []Warning
}

// Degraded reports whether any record was skipped or recovered from bad input.
func (r Result[T]) Degraded() bool {
	return len(r.Warnings) > 0
}

// Len returns the number of loaded items.
func (r Result[T]) Len() int {
	return len(r.Items)
}

func newWarning(kind Kind, path, code string, err error) Warning {
	return Warning{
		Kind:    kind,
		Path:    path,
		Code:    code,
		Message: err.Error(),
		Err:     err,
	}
}
