// Package errors provides structured error handling with error codes for simple-notes.
//
// Every failure that can reach a user or cross the session API boundary is an
// *Error carrying a typed ErrorCode, a human-readable Message and, optionally,
// the wrapped cause.
//
// # Basic Usage
//
//	err := errors.New(errors.ErrCodeInvalidEmail, "Invalid email")
//
//	// Keep the transport cause for logs, show only the message
//	err := errors.Wrap(netErr, errors.ErrCodeInvalidCredentials, "Incorrect user or password")
//
// # Error Inspection
//
//	if errors.IsCode(err, errors.ErrCodeUserAlreadyExists) {
//		// duplicate account
//	}
//	code := errors.GetCode(err)
//
// # HTTP Status Code Mapping
//
//	var e *errors.Error
//	if errors.As(err, &e) {
//		render.Status(r, e.HTTPStatusCode())
//	}
//
// Error code to HTTP status mapping:
//   - form and input errors → 400 Bad Request
//   - ErrCodeInvalidCredentials, ErrCodeUnauthorized, ErrCodeTokenInvalid → 401 Unauthorized
//   - ErrCodeUserAlreadyExists → 409 Conflict
//   - ErrCodeUnavailable → 503 Service Unavailable
//   - anything else → 500 Internal Server Error
package errors
