package renamed

import (
	"context"
	"errors"
	"net"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// send issues a single HTTP attempt. It never interprets status codes; the
// raw response is returned for classification upstream. Failures that
// prevented any response from arriving are mapped to network or timeout
// errors, except the caller's own cancellation which propagates unchanged.
func (c *client) send(ctx context.Context, method, url string, body []byte, contentType string) (*resty.Response, error) {
	req := c.restyClient.R().SetContext(ctx)
	if contentType != "" {
		req.SetHeader("Content-Type", contentType)
	}
	if body != nil {
		req.SetBody(body)
	}

	start := time.Now()
	resp, err := req.Execute(method, url)
	elapsed := time.Since(start)

	if err != nil {
		tagged := classifyTransportError(ctx, err)
		c.logf("%s %s -> %s (%dms)", method, extractPath(url), errTag(tagged), elapsed.Milliseconds())
		return nil, tagged
	}

	c.logf("%s %s -> %d (%dms)", method, extractPath(url), resp.StatusCode(), elapsed.Milliseconds())
	return resp, nil
}

func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) && ctx.Err() == nil {
		// The per-request timeout fired, not the caller's deadline.
		return newTimeoutError(err.Error())
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return ctx.Err()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return newTimeoutError(err.Error())
	}
	return newNetworkError(err.Error())
}

func errTag(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return string(apiErr.Kind)
	}
	return "cancelled"
}

// extractPath strips scheme, host and query from a URL so log lines never
// carry more than the request path.
func extractPath(fullURL string) string {
	rest := fullURL
	if idx := strings.Index(rest, "://"); idx != -1 {
		rest = rest[idx+3:]
		if pathIdx := strings.Index(rest, "/"); pathIdx != -1 {
			rest = rest[pathIdx:]
		} else {
			rest = "/"
		}
	}
	if idx := strings.Index(rest, "?"); idx != -1 {
		rest = rest[:idx]
	}
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return rest
}
