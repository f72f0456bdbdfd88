package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	http "github.com/bogdanfinn/fhttp"
	"github.com/tidwall/gjson"

	apierrors "github.com/praveen/legalbot/internal/errors"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 1 << 20

// askRequest is the JSON body posted to the answer service.
type askRequest struct {
	Question string `json:"question"`
}

// Ask sends a single question to the answer service and returns the raw
// answer text. The call is made exactly once; retries and timeouts belong
// to the transport layer. An empty answer with a nil error signals a
// reachable service that returned nothing useful.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	if c.IsClosed() {
		return "", fmt.Errorf("client is closed")
	}

	payload, err := json.Marshal(askRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("failed to marshal question: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(string(payload)))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apierrors.NewNetworkError(c.endpoint, err)
	}
	defer func() {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
	}()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", apierrors.NewNetworkError(c.endpoint, err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", apierrors.NewServiceError(resp.StatusCode, c.endpoint, "query failed")
	}

	parsed := gjson.ParseBytes(body)
	if !parsed.IsObject() {
		return "", apierrors.NewParseError("response is not a JSON object")
	}

	answer := parsed.Get("answer")
	if !answer.Exists() {
		// Reachable service, nothing useful: the caller substitutes a
		// fallback display text rather than treating this as a failure.
		return "", nil
	}

	return answer.String(), nil
}
