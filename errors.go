package bhexpress

import (
	"github.com/bhexpress/client-go/internal/apierrors"
)

// Error is returned for every client failure: missing configuration,
// transport failures and HTTP error statuses. Use errors.As to inspect it and
// errors.Is with the sentinels below to tell the categories apart.
type Error = apierrors.Error

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingToken is returned when no API token could be resolved.
	ErrMissingToken = apierrors.ErrMissingToken

	// ErrConfig is returned when a .env or config file cannot be read.
	ErrConfig = apierrors.ErrConfig

	// ErrConnection is returned when the API could not be reached.
	ErrConnection = apierrors.ErrConnection

	// ErrTimeout is returned when a request exceeded its deadline.
	ErrTimeout = apierrors.ErrTimeout

	// ErrRequest is returned for any other transport failure.
	ErrRequest = apierrors.ErrRequest

	// ErrHTTP is returned for responses with a status other than 200 while
	// raise-for-status is enabled.
	ErrHTTP = apierrors.ErrHTTP
)

// AsError extracts the client *Error from err.
func AsError(err error) (*Error, bool) {
	return apierrors.As(err)
}
