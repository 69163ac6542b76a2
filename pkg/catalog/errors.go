package catalog

import "errors"

var (
	// ErrDuplicateID is returned when two records share an identifier.
	ErrDuplicateID = errors.New("duplicate api id")
	// ErrInvalidRecord is returned when a record fails validation.
	ErrInvalidRecord = errors.New("invalid api record")
)

// ErrorCode is one row of the shared error-code table.
type ErrorCode struct {
	Code        int    `json:"code"`
	Status      string `json:"status"`
	Description string `json:"description"`
}

var errorCodes = []ErrorCode{
	{400, "Bad Request", "The request body or query parameters failed validation."},
	{401, "Unauthorized", "Credentials are missing or no longer valid."},
	{403, "Forbidden", "The caller is authenticated but lacks the required scope."},
	{404, "Not Found", "The requested resource does not exist."},
	{409, "Conflict", "The resource was modified concurrently; refetch and retry."},
	{422, "Unprocessable Entity", "The payload is well formed but violates a business rule."},
	{429, "Too Many Requests", "The rate limit was exceeded; honour the Retry-After header."},
	{500, "Internal Server Error", "An unexpected failure occurred on the server."},
	{503, "Service Unavailable", "The service is temporarily down for maintenance."},
}

// ErrorCodes returns the error-code table shared by every record.
// The table does not depend on the catalog contents.
func ErrorCodes() []ErrorCode {
	return append([]ErrorCode(nil), errorCodes...)
}
