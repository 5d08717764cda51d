// Package facades wraps the three dashboard backends (rates, analytics,
// profile) behind thin HTTP call wrappers. Each method reports failures
// through the shared taxonomy: request/connection problems surface as
// *models.TransportError, undecodable bodies as *models.FormatError and
// backend-reported errors as *models.UpstreamError.
package facades

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// HTTPDoer is the minimal client surface the facades call through.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// upstreamBody is the error envelope used by the backends: the rates and
// analytics services report via "error", the profile service via "detail".
type upstreamBody struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func (b upstreamBody) message() string {
	if b.Error != "" {
		return b.Error
	}
	return b.Detail
}

// getJSON performs a GET and decodes the body into out.
func getJSON(ctx context.Context, client HTTPDoer, op, rawURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}
	return doJSON(client, op, req, out)
}

// postJSON performs a POST with a JSON body and decodes the response into out.
func postJSON(ctx context.Context, client HTTPDoer, op, rawURL string, in, out interface{}) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &models.FormatError{Op: op, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawURL, bytes.NewReader(body))
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	return doJSON(client, op, req, out)
}

// newRequest builds a bodyless request, wrapping construction failures as
// transport errors.
func newRequest(ctx context.Context, method, rawURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return nil, &models.TransportError{Op: method + " " + rawURL, Err: err}
	}
	return req, nil
}

func doJSON(client HTTPDoer, op string, req *http.Request, out interface{}) error {
	resp, err := client.Do(req)
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &models.TransportError{Op: op, Err: err}
	}

	if resp.StatusCode >= http.StatusBadRequest {
		var eb upstreamBody
		if err := json.Unmarshal(data, &eb); err == nil && eb.message() != "" {
			return &models.UpstreamError{Message: eb.message()}
		}
		return &models.UpstreamError{Message: fmt.Sprintf("%s: backend returned %d", op, resp.StatusCode)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &models.FormatError{Op: op, Err: err}
	}
	return nil
}
