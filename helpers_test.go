package renamed

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// testLogger records every debug line for assertions.
type testLogger struct {
	lines []string
}

func (l *testLogger) Logf(format string, args ...any) {
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
}

// flakyTransport fails the first n round trips with a transport error, then
// delegates to the real transport. calls counts every attempt.
type flakyTransport struct {
	failures int
	calls    int
	next     http.RoundTripper
}

func (t *flakyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	t.calls++
	if t.calls <= t.failures {
		return nil, errors.New("connection reset by peer")
	}
	if t.next == nil {
		return http.DefaultTransport.RoundTrip(req)
	}
	return t.next.RoundTrip(req)
}

func newTestClient(baseURL string, opts ...Option) *client {
	all := append([]Option{WithBaseURL(baseURL)}, opts...)
	return NewClient("rt_test123", all...).(*client)
}

func withTransport(rt http.RoundTripper) Option {
	return WithRestyClient(resty.New().SetTransport(rt))
}
