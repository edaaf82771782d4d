package cli

// Error codes for structured error responses.
// These codes are stable and can be relied upon by scripts.
const (
	ErrConfigInvalid = "CONFIG_INVALID"

	// Content errors
	ErrUnknownKind       = "UNKNOWN_KIND"
	ErrContentLoadFailed = "CONTENT_LOAD_FAILED"
	ErrRecordNotFound    = "RECORD_NOT_FOUND"

	// Input errors
	ErrInvalidInput = "INVALID_INPUT"

	// General errors
	ErrInternal = "INTERNAL_ERROR"
)

// Issue codes reported by `awchub check` in addition to content warning codes.
const (
	IssueNonSlugID         = "NON_SLUG_ID"
	IssueUnknownTournament = "UNKNOWN_TOURNAMENT"
	IssueMissingTitle      = "MISSING_TITLE"
	IssueUnsortableDate    = "UNSORTABLE_DATE"
)
