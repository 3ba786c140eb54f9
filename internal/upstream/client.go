// Package upstream is the typed client for the remote CMS API the portal
// fronts. It attaches bearer auth, normalizes error responses to a single
// message string, and maps transport failures to a fixed user-facing error
// so raw network exception text never reaches a browser.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/ravokstudios/investor-portal/internal/api/metrics"
)

// UnreachableMessage is shown verbatim when no response was received at all,
// as opposed to an error response.
const UnreachableMessage = "Cannot connect to server. Please check your connection and try again later."

// ErrUnreachable replaces every transport-level failure (DNS, refused
// connection, reset). The underlying cause is logged, never surfaced.
var ErrUnreachable = errors.New(UnreachableMessage)

// Error is a failure reported by the upstream API itself: a non-2xx response
// whose message has already been normalized to a single string.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Client performs requests against the upstream CMS API. It holds no session
// state; the bearer token is an argument on every authenticated call because
// one client serves every portal session.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

// New returns a Client for the given base URL. No client-side timeout is
// set; cancellation flows in from the caller's context, and the blast radius
// of a slow upstream call is the single request awaiting it.
func New(baseURL string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     log.With().Str("component", "upstream").Logger(),
	}
}

// Ping reports whether the upstream API is reachable at the transport level.
// Any HTTP response counts as reachable, error statuses included.
func (c *Client) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/public/categories", nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	res, err := c.http.Do(req)
	if err != nil {
		return ErrUnreachable
	}
	defer res.Body.Close()
	_, _ = io.Copy(io.Discard, res.Body)
	return nil
}

// call describes one upstream request. out, query and body may be nil.
type call struct {
	op     string
	method string
	path   string
	token  string
	query  url.Values
	body   any
	out    any
}

func (c *Client) do(ctx context.Context, cl call) error {
	var reqBody io.Reader
	if cl.body != nil {
		payload, err := json.Marshal(cl.body)
		if err != nil {
			return fmt.Errorf("upstream %s: encode request: %w", cl.op, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, c.endpoint(cl.path, cl.query), reqBody)
	if err != nil {
		return fmt.Errorf("upstream %s: build request: %w", cl.op, err)
	}
	c.setHeaders(req, cl.token)
	if cl.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.execute(req, cl.op, cl.out)
}

// execute runs the request and applies the shared success/failure contract.
func (c *Client) execute(req *http.Request, op string, out any) error {
	start := time.Now()
	res, err := c.http.Do(req)
	metrics.UpstreamRequestDuration.WithLabelValues(op).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues(op, "unreachable").Inc()
		c.log.Warn().Err(err).Str("op", op).Msg("upstream unreachable")
		return ErrUnreachable
	}
	defer res.Body.Close()
	metrics.UpstreamRequestsTotal.WithLabelValues(op, strconv.Itoa(res.StatusCode)).Inc()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		c.log.Warn().Err(err).Str("op", op).Msg("upstream response truncated")
		return ErrUnreachable
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &Error{Status: res.StatusCode, Message: errorMessage(raw, res)}
	}

	// 204 and other empty successes carry no body to decode.
	if out == nil || res.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("upstream %s: decode response: %w", op, err)
	}
	return nil
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// setHeaders applies the headers every call shares. Content-Type is left to
// the caller: JSON bodies set it explicitly, multipart writers bring their
// own boundary.
func (c *Client) setHeaders(req *http.Request, token string) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// errorBody is the upstream error envelope. The message field arrives either
// as a string or as an array of strings; messageText normalizes both.
type errorBody struct {
	Message messageText `json:"message"`
}

type messageText string

func (m *messageText) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*m = messageText(s)
		return nil
	}
	var list []string
	if err := json.Unmarshal(b, &list); err == nil && len(list) > 0 {
		*m = messageText(list[0])
	}
	// Unknown shapes fall through to the status text fallback.
	return nil
}

func errorMessage(raw []byte, res *http.Response) string {
	var body errorBody
	if err := json.Unmarshal(raw, &body); err == nil && body.Message != "" {
		return string(body.Message)
	}
	return http.StatusText(res.StatusCode)
}
