// Package handlers defines HTTP-layer error codes used across all API endpoints.
//
// This file centralizes the symbolic error code constants carried in the
// response envelope (via the `fail()` helper in this package). The codes are
// the API's stable error taxonomy: clients are expected to branch on them,
// and each code maps to exactly one HTTP status.
//
// Taxonomy:
//   - BAD_JSON (400):       request body is not parseable JSON
//   - INVALID_BODY (400):   JSON is well-formed but a field is missing,
//     mistyped, or fails validation
//   - USER_NOT_FOUND (404): user_id does not reference a submitted profile
//   - TOO_FREQUENT (429):   draw attempted within the cooldown window
//   - EMPTY_POOL (200):     no eligible candidate right now; success:false
//     with HTTP 200, a deliberate "try later" shape distinct from an error
//   - DB_ERROR (500):       a store access failed; retryable by the caller
//   - UNKNOWN (500):        unclassified server fault
//
// NOT_FOUND and METHOD_NOT_ALLOWED are transport-level codes for unmatched
// routes and verbs; they never originate from the application services.
package handlers

const (
	CodeBadJSON          = "BAD_JSON"
	CodeInvalidBody      = "INVALID_BODY"
	CodeUserNotFound     = "USER_NOT_FOUND"
	CodeTooFrequent      = "TOO_FREQUENT"
	CodeEmptyPool        = "EMPTY_POOL"
	CodeDBError          = "DB_ERROR"
	CodeUnknown          = "UNKNOWN"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
)
