// Package api provides the HTTP core of the BHExpress client. It assembles
// request URLs under the versioned API root, attaches the authentication and
// content-type headers, encodes request bodies and normalizes every failure
// into an [apierrors.Error].
//
// # URL Assembly
//
// Requests go to {base URL}/api/{version}{resource}. The base URL and the API
// path are joined with exactly one slash whether or not the base URL ends
// with one. The version and the resource are inserted verbatim.
//
// # Headers
//
// Every request starts from the default headers:
//
//   - User-Agent: [UserAgent]
//   - Accept: application/json
//   - Content-Type: application/json
//   - Authorization: Token {token}
//
// Caller headers are laid over the defaults by exact key, so a caller header
// replaces a default with the same name and the remaining defaults still
// apply.
//
// # Error Handling
//
// Transport failures become "Connection error: ...", "Timeout error: ..." or
// "Request error: ..." errors and are never retried. When RaiseForStatus is
// set, any status other than 200 becomes an "HTTP Error: ..." error whose
// message is taken from the "message" or "exception" field of the JSON body.
// 201 and 204 are errors too; callers of such endpoints turn RaiseForStatus
// off and inspect the [Response] themselves.
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. Multiple goroutines may call
// methods on a single Client simultaneously.
package api
