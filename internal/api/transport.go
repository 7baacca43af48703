package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// Transport performs a single HTTP round trip.
//
// Failures should be reported as *TransportError. Any other error is
// classified by inspecting its chain for net and context errors.
type Transport interface {
	Do(ctx context.Context, req *Request) (*Response, error)
}

// TransportErrorKind is the category of a transport failure.
type TransportErrorKind int

const (
	// TransportRequest is any failure that is neither a connection nor a timeout failure.
	TransportRequest TransportErrorKind = iota
	// TransportConnection means the server could not be reached.
	TransportConnection
	// TransportTimeout means the request exceeded its deadline.
	TransportTimeout
)

func (k TransportErrorKind) String() string {
	switch k {
	case TransportConnection:
		return "connection"
	case TransportTimeout:
		return "timeout"
	default:
		return "request"
	}
}

// TransportError is a categorized transport failure.
type TransportError struct {
	Kind TransportErrorKind
	Err  error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Kind.String() + " failure"
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// ClassifyTransportError categorizes err. A *TransportError anywhere in the
// chain is returned as is.
func ClassifyTransportError(err error) *TransportError {
	var te *TransportError
	if errors.As(err, &te) {
		return te
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return &TransportError{Kind: TransportTimeout, Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return &TransportError{Kind: TransportTimeout, Err: err}
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	switch {
	case errors.As(err, &opErr),
		errors.As(err, &dnsErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF):
		return &TransportError{Kind: TransportConnection, Err: err}
	}

	return &TransportError{Kind: TransportRequest, Err: err}
}

// RestyTransport is the default Transport, backed by resty.
type RestyTransport struct {
	client *resty.Client
}

// NewRestyTransport creates a resty-backed transport. httpClient may be nil;
// when given it is copied, so the caller's client is never modified. A
// positive timeout is applied to the copy.
//
// Without httpClient no cookie jar is installed: every request carries only
// the headers it was built with.
func NewRestyTransport(httpClient *http.Client, timeout time.Duration, logger *zap.Logger) *RestyTransport {
	hc := &http.Client{}
	if httpClient != nil {
		c := *httpClient
		hc = &c
	}
	rc := resty.NewWithClient(hc)
	if logger == nil {
		logger = zap.NewNop()
	}

	rc.SetRetryCount(0).
		SetDisableWarn(true).
		SetLogger(logger.Sugar())
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}

	return &RestyTransport{client: rc}
}

// Do executes req.
func (t *RestyTransport) Do(ctx context.Context, req *Request) (*Response, error) {
	r := t.client.R().SetContext(ctx)
	for k, v := range req.Header {
		r.Header[k] = []string{v}
	}
	if req.Body != nil {
		r.SetBody(req.Body)
	}

	res, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, ClassifyTransportError(err)
	}
	if res.RawResponse == nil {
		return nil, &TransportError{Kind: TransportRequest, Err: fmt.Errorf("%s %s: no response", req.Method, req.URL)}
	}

	return &Response{
		StatusCode: res.StatusCode(),
		Status:     res.Status(),
		Header:     res.Header(),
		Body:       res.Body(),
	}, nil
}
