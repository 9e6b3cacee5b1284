package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"

	// Auth error messages
	ErrMsgMissingBearerToken = "Missing bearer token"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgLoggedOutSuccess = "Logged out"
)
