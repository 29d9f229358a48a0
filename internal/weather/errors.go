package weather

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorKind classifies a failed fetch.
type ErrorKind int

const (
	KindOtherRequest ErrorKind = iota
	KindBadRequest
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindServerError
	KindBadGateway
	KindServiceUnavailable
	KindGatewayTimeout
	KindConnectionFailure
	KindTimeout
	KindTooManyRedirects
	KindOtherHTTP
)

var kindNames = map[ErrorKind]string{
	KindOtherRequest:       "other_request",
	KindBadRequest:         "bad_request",
	KindUnauthorized:       "unauthorized",
	KindForbidden:          "forbidden",
	KindNotFound:           "not_found",
	KindServerError:        "server_error",
	KindBadGateway:         "bad_gateway",
	KindServiceUnavailable: "service_unavailable",
	KindGatewayTimeout:     "gateway_timeout",
	KindConnectionFailure:  "connection_failure",
	KindTimeout:            "timeout",
	KindTooManyRedirects:   "too_many_redirects",
	KindOtherHTTP:          "other_http",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// statusKinds maps upstream HTTP status codes to error kinds.
// Any status not listed here is KindOtherHTTP.
var statusKinds = map[int]ErrorKind{
	http.StatusBadRequest:          KindBadRequest,
	http.StatusUnauthorized:        KindUnauthorized,
	http.StatusPaymentRequired:     KindForbidden,
	http.StatusForbidden:           KindForbidden,
	http.StatusNotFound:            KindNotFound,
	http.StatusInternalServerError: KindServerError,
	http.StatusBadGateway:          KindBadGateway,
	http.StatusServiceUnavailable:  KindServiceUnavailable,
	http.StatusGatewayTimeout:      KindGatewayTimeout,
}

// KindForStatus returns the error kind for a non-2xx HTTP status.
func KindForStatus(status int) ErrorKind {
	if k, ok := statusKinds[status]; ok {
		return k
	}
	return KindOtherHTTP
}

// fixedMessages holds the user-facing text for kinds that carry no detail.
var fixedMessages = map[ErrorKind]string{
	KindBadRequest:         "Bad request:\nPlease check your input",
	KindUnauthorized:       "Unauthorized:\nInvalid API key",
	KindForbidden:          "Forbidden:\nAccess is denied",
	KindNotFound:           "Not found:\nCity not found",
	KindServerError:        "Internal Server Error:\nPlease try again later",
	KindBadGateway:         "Bad Gateway:\nInvalid response from the server",
	KindServiceUnavailable: "Service Unavailable:\nServer is down",
	KindGatewayTimeout:     "Gateway Timeout:\nNo-response from the server",
	KindConnectionFailure:  "Connection Error:\nCheck your internet connection",
	KindTimeout:            "Timeout Error:\nThe request timed out",
	KindTooManyRedirects:   "Too many Redirects:\nCheck the URL",
}

// detailPrefixes is used for kinds whose message embeds the raw error text.
var detailPrefixes = map[ErrorKind]string{
	KindOtherHTTP:    "HTTP error occured",
	KindOtherRequest: "Request Error",
}

// FetchError is the only error type a Fetcher hands back to its caller.
type FetchError struct {
	Kind   ErrorKind
	Status int    // upstream HTTP status, 0 for transport failures
	Detail string // raw error text
	Err    error  // underlying cause, if any
}

// NewHTTPError builds a FetchError from a non-2xx upstream status.
func NewHTTPError(status int, detail string) *FetchError {
	return &FetchError{Kind: KindForStatus(status), Status: status, Detail: detail}
}

// NewRequestError builds a FetchError for a failure that happened before
// or instead of a usable HTTP response.
func NewRequestError(kind ErrorKind, err error) *FetchError {
	fe := &FetchError{Kind: kind, Err: err}
	if err != nil {
		fe.Detail = err.Error()
	}
	return fe
}

func (e *FetchError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("weather fetch failed (%s, status %d): %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("weather fetch failed (%s): %s", e.Kind, e.Detail)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Message returns the user-facing text for the error.
func (e *FetchError) Message() string {
	if msg, ok := fixedMessages[e.Kind]; ok {
		return msg
	}
	prefix, ok := detailPrefixes[e.Kind]
	if !ok {
		prefix = detailPrefixes[KindOtherRequest]
	}
	return prefix + ":\n" + e.Detail
}

// AsFetchError normalizes any error into a *FetchError. Errors that are
// not already classified become KindOtherRequest.
func AsFetchError(err error) *FetchError {
	if err == nil {
		return nil
	}
	var fe *FetchError
	if errors.As(err, &fe) {
		return fe
	}
	return NewRequestError(KindOtherRequest, err)
}
