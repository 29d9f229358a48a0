package providers

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"syscall"

	"github.com/go-resty/resty/v2"

	"github.com/i474232898/weather-app/internal/weather"
)

// maxRedirects matches net/http's default limit.
const maxRedirects = 10

var (
	errTooManyRedirects = errors.New("too many redirects")
	errNoHTTPClient     = errors.New("http client not configured")
	errNoAPIKey         = errors.New("openweather api key is not configured")
)

// redirectLimit stops after max redirects with an error that classifyTransportError
// can recognise.
func redirectLimit(max int) resty.RedirectPolicy {
	return resty.RedirectPolicyFunc(func(_ *http.Request, via []*http.Request) error {
		if len(via) >= max {
			return fmt.Errorf("%w: stopped after %d redirects", errTooManyRedirects, max)
		}
		return nil
	})
}

// classifyTransportError maps an error returned before any HTTP response
// was available onto a weather.ErrorKind. Order matters: dial timeouts are
// also *net.OpError values.
func classifyTransportError(err error) weather.ErrorKind {
	var (
		netErr net.Error
		dnsErr *net.DNSError
		opErr  *net.OpError
	)

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return weather.KindTimeout
	case errors.As(err, &netErr) && netErr.Timeout():
		return weather.KindTimeout
	case errors.Is(err, errTooManyRedirects):
		return weather.KindTooManyRedirects
	case errors.As(err, &dnsErr),
		errors.As(err, &opErr),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNRESET):
		return weather.KindConnectionFailure
	default:
		return weather.KindOtherRequest
	}
}

// httpErrorDetail renders a non-2xx status the way the raw error text is shown
// for unmapped codes. The request URL is left out since it carries the API key.
func httpErrorDetail(status int) string {
	class := "Client"
	if status >= 500 {
		class = "Server"
	}
	reason := http.StatusText(status)
	if reason == "" {
		reason = "Unknown"
	}
	return fmt.Sprintf("%d %s Error: %s", status, class, reason)
}

// redactedError hides the API key in a client error message while keeping
// the cause reachable through errors.Is/As.
type redactedError struct {
	msg string
	err error
}

func (e *redactedError) Error() string { return e.msg }
func (e *redactedError) Unwrap() error { return e.err }

// scrubTransportError drops the request URL, which carries appid, from a
// client error and masks any remaining occurrence of secret.
func scrubTransportError(err error, secret string) error {
	var ue *url.Error
	if errors.As(err, &ue) && ue.Err != nil {
		err = ue.Err
	}
	if secret != "" && strings.Contains(err.Error(), secret) {
		return &redactedError{msg: strings.ReplaceAll(err.Error(), secret, "***"), err: err}
	}
	return err
}
