package api

import (
	"encoding/json"
	"strconv"

	"github.com/bhexpress/client-go/internal/apierrors"
)

const unknownErrorMessage = "Unknown error."

// mapTransportError converts a transport failure into the client error type.
func mapTransportError(err error) error {
	te := ClassifyTransportError(err)
	switch te.Kind {
	case TransportConnection:
		return apierrors.Wrap(apierrors.KindConnection, "Connection error: "+te.Error(), te.Err)
	case TransportTimeout:
		return apierrors.Wrap(apierrors.KindTimeout, "Timeout error: "+te.Error(), te.Err)
	default:
		return apierrors.Wrap(apierrors.KindRequest, "Request error: "+te.Error(), te.Err)
	}
}

// newHTTPError builds the error for a response whose status is not 200.
func newHTTPError(resp *Response) error {
	return &apierrors.Error{
		Kind:       apierrors.KindHTTP,
		Message:    "HTTP Error: " + errorMessage(resp.Body),
		StatusCode: resp.StatusCode,
		Body:       resp.Body,
	}
}

// errorMessage extracts the message from an error response body.
func errorMessage(body []byte) string {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return "Error decoding JSON data: " + string(body)
	}

	obj, ok := payload.(map[string]any)
	if !ok {
		return unknownErrorMessage
	}
	if msg := fieldText(obj["message"]); msg != "" {
		return msg
	}
	if msg := fieldText(obj["exception"]); msg != "" {
		return msg
	}
	return unknownErrorMessage
}

// fieldText renders a decoded JSON value as message text. Empty and zero
// values yield "".
func fieldText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if !x {
			return ""
		}
		return "true"
	case float64:
		if x == 0 {
			return ""
		}
		return strconv.FormatFloat(x, 'f', -1, 64)
	case []any:
		if len(x) == 0 {
			return ""
		}
	case map[string]any:
		if len(x) == 0 {
			return ""
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
