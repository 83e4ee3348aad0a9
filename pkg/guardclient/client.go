// Package guardclient is the client side of the analysis pipeline: a thin
// HTTP client for the analysis service plus an offline indicator extractor
// and a coordinator that falls back to a preliminary verdict whenever the
// service cannot answer.
package guardclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"phishguard/pkg/domain"
	"phishguard/pkg/serrors"
)

// Client talks to the analysis service's REST API. It is safe for concurrent
// use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to the service
	baseURL    string       // baseURL is the service root, e.g. http://localhost:8080
}

// NewClient constructs a Client that uses the provided http.Client to reach
// the analysis service at baseURL.
func NewClient(httpClient *http.Client, baseURL string) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// Analyze submits the URL to the service and decodes the analysis result.
// Transport problems, non-success statuses and malformed bodies are all
// reported as ErrTransportFailure so callers can treat them uniformly.
func (c *Client) Analyze(ctx context.Context, URL string) (*domain.AnalysisResult, error) {
	type analyzeReq struct {
		URL string `json:"url"`
	}
	bodyBytes, err := json.Marshal(analyzeReq{URL: URL})
	if err != nil {
		return nil, fmt.Errorf("could not marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx,
		http.MethodPost,
		c.baseURL+"/v1/analyze",
		strings.NewReader(string(bodyBytes)))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportFailure, err, "could not reach analysis service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportFailure, err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.With(serrors.ErrTransportFailure,
			"analysis failed with status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	var result domain.AnalysisResult
	if err := json.Unmarshal(b, &result); err != nil {
		return nil, serrors.Wrap(serrors.ErrTransportFailure, err, "could not decode response")
	}
	if result.Verdict == "" {
		return nil, serrors.With(serrors.ErrTransportFailure, "response is missing a verdict")
	}

	return &result, nil
}

// Health reports whether the service is up and its classifier is loaded.
func (c *Client) Health(ctx context.Context) (bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/health", nil)
	if err != nil {
		return false, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrTransportFailure, err, "could not reach analysis service")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, serrors.Wrap(serrors.ErrTransportFailure, err, "could not read response body")
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, serrors.With(serrors.ErrTransportFailure,
			"health check failed with status %d", resp.StatusCode)
	}

	var health struct {
		ClassifierAvailable bool `json:"classifierAvailable"`
	}
	if err := json.Unmarshal(b, &health); err != nil {
		return false, serrors.Wrap(serrors.ErrTransportFailure, err, "could not decode response")
	}

	return health.ClassifierAvailable, nil
}
