package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	maxAttempts     = 4
	initialBackoff  = 200 * time.Millisecond
	maxRetryAfter   = 5 * time.Second
	maxErrorBodyLen = 64 << 10
	redactedKey     = "REDACTED"
)

// httpStatusError is a non-2xx Google API response. Message and Status come
// from the {"error": {...}} envelope when the body carries one.
type httpStatusError struct {
	Code       int
	Status     string
	Message    string
	RetryAfter time.Duration
}

func (e *httpStatusError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("google api: http %d %s: %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("google api: http %d: %s", e.Code, e.Message)
}

func (e *httpStatusError) transient() bool {
	switch e.Code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

type errorEnvelope struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (g *GoogleProvider) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", g.redact(err))
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return req, nil
}

// do sends req and turns error responses into *httpStatusError. Transport
// errors never carry the api key.
func (g *GoogleProvider) do(req *http.Request) (*http.Response, error) {
	resp, err := g.session.Do(req)
	if err != nil {
		return nil, g.redact(err)
	}
	if resp.StatusCode < 400 {
		return resp, nil
	}

	defer resp.Body.Close()
	return nil, readStatusError(resp)
}

func readStatusError(resp *http.Response) *httpStatusError {
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLen))

	se := &httpStatusError{
		Code:       resp.StatusCode,
		RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), time.Now()),
	}

	var env errorEnvelope
	if json.Unmarshal(b, &env) == nil && env.Error.Message != "" {
		se.Message = env.Error.Message
		se.Status = env.Error.Status
		return se
	}

	se.Message = strings.TrimSpace(string(b))
	if se.Message == "" {
		se.Message = http.StatusText(resp.StatusCode)
	}
	return se
}

// parseRetryAfter accepts both delta-seconds and HTTP-date forms.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if t, err := http.ParseTime(v); err == nil && t.After(now) {
		return t.Sub(now)
	}
	return 0
}

// redact masks the key query parameter in URLs quoted by *url.Error.
func (g *GoogleProvider) redact(err error) error {
	var ue *url.Error
	if !errors.As(err, &ue) {
		return err
	}

	masked := "[unparseable url]"
	if u, perr := url.Parse(ue.URL); perr == nil {
		q := u.Query()
		if q.Has("key") {
			q.Set("key", redactedKey)
			u.RawQuery = q.Encode()
		}
		masked = u.String()
	}
	if g.apiKey != "" {
		masked = strings.ReplaceAll(masked, g.apiKey, redactedKey)
	}

	return &url.Error{Op: ue.Op, URL: masked, Err: ue.Err}
}

// retryDelay reports whether err is worth another attempt and how long to
// wait first. A 429 Retry-After overrides the exponential backoff.
func retryDelay(err error, backoff time.Duration) (time.Duration, bool) {
	var se *httpStatusError
	if errors.As(err, &se) {
		if !se.transient() {
			return 0, false
		}
		if se.Code == http.StatusTooManyRequests && se.RetryAfter > 0 {
			return min(se.RetryAfter, maxRetryAfter), true
		}
		return backoff, true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return backoff, true
	}
	return 0, false
}

// doWithRetry retries network errors, 429 and 5xx responses with
// exponential backoff until ctx is done or attempts run out.
func (g *GoogleProvider) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	backoff := initialBackoff

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := g.do(req)
		if err == nil {
			return resp, nil
		}

		wait, retry := retryDelay(err, backoff)
		if !retry || attempt == maxAttempts {
			return nil, err
		}

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
}
