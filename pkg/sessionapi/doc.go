// Package sessionapi is the client side of the remote session API.
//
// The screens only need two operations, Login and Register, both of which
// either succeed or fail. HTTPClient speaks JSON over HTTP:
//
//	POST {base}{prefix}/login     {"email": "...", "password": "..."}
//	POST {base}{prefix}/register  {"email": "...", "password": "..."}
//
// Any 2xx response is success. Other responses are returned as
// *errors.Error built from the {"error", "code"} body, or from the status
// code when the body carries none. Transport failures are wrapped with
// ErrCodeUnavailable.
package sessionapi
