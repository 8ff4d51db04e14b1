package rapidshyp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"serviceability-relay/internal/domain"
	"serviceability-relay/internal/logx"
)

const (
	serviceabilityPath = "/rest/v1/serviceability"
	tokenHeader        = "rapidshyp-token"

	bodyLimit = 1 << 20
)

// CallKind discriminates the three observable outcomes of an upstream call.
type CallKind int

// Possible upstream call outcomes.
const (
	CallOK CallKind = iota
	CallClientError
	CallServerError
)

// CallResult is the outcome of a single upstream call. Exactly one shape is
// populated per kind: Status+Body for CallOK and CallClientError, Err for
// CallServerError. Failures are values, not raised errors, so callers
// branch on Kind instead of unwrapping.
type CallResult struct {
	Kind   CallKind
	Status int
	Body   json.RawMessage
	Err    error
}

func callOK(status int, body []byte) CallResult {
	return CallResult{Kind: CallOK, Status: status, Body: body}
}

func callClientError(status int, body []byte) CallResult {
	return CallResult{Kind: CallClientError, Status: status, Body: body}
}

func callServerError(err error) CallResult {
	return CallResult{Kind: CallServerError, Err: err}
}

// Client is the RapidShyp serviceability gateway. One HTTP POST per check,
// no retries: an auth rejection is terminal for the request and everything
// else maps straight onto a CallResult.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  logx.Logger
	calls   *prometheus.CounterVec
}

// NewClient creates a RapidShyp gateway. The calls counter may be nil.
func NewClient(baseURL, apiKey string, httpClient *http.Client, logger logx.Logger, calls *prometheus.CounterVec) *Client {
	if httpClient == nil {
		return nil
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		http:    httpClient,
		logger:  logger,
		calls:   calls,
	}
}

// CheckServiceability posts the payload to the RapidShyp serviceability
// endpoint and classifies the response: 2xx → CallOK, 4xx → CallClientError,
// anything else (network failure, unreadable body, 5xx) → CallServerError.
func (c *Client) CheckServiceability(ctx context.Context, p domain.Payload) CallResult {
	body, err := json.Marshal(p)
	if err != nil {
		return c.done(callServerError(fmt.Errorf("rapidshyp gateway: encode payload: %w", err)))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+serviceabilityPath, bytes.NewReader(body))
	if err != nil {
		return c.done(callServerError(fmt.Errorf("rapidshyp gateway: build request: %w", err)))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(tokenHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.done(callServerError(fmt.Errorf("rapidshyp gateway: post serviceability: %w", err)))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, bodyLimit))
	if err != nil {
		return c.done(callServerError(fmt.Errorf("rapidshyp gateway: read response: %w", err)))
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Success bodies are relayed verbatim, so they must be valid JSON.
		if len(raw) > 0 && !json.Valid(raw) {
			return c.done(callServerError(fmt.Errorf("rapidshyp gateway: malformed response body")))
		}
		return c.done(callOK(resp.StatusCode, raw))
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		if len(raw) > 0 && !json.Valid(raw) {
			raw = nil
		}
		return c.done(callClientError(resp.StatusCode, raw))
	default:
		return c.done(callServerError(fmt.Errorf("rapidshyp gateway: upstream status %d", resp.StatusCode)))
	}
}

func (c *Client) done(res CallResult) CallResult {
	switch res.Kind {
	case CallOK:
		c.count("ok")
	case CallClientError:
		c.count("client_error")
		c.logger.Warn("rapidshyp upstream rejected request",
			logx.Int("status", res.Status),
		)
	case CallServerError:
		c.count("server_error")
		c.logger.Error("rapidshyp upstream call failed",
			logx.Any("err", res.Err),
		)
	}
	return res
}

func (c *Client) count(outcome string) {
	if c.calls != nil {
		c.calls.WithLabelValues(outcome).Inc()
	}
}
