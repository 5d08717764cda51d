package facades

import (
	"context"
	"fmt"
	"net/http"
)

// HealthFacade probes arbitrary base URLs. Unlike the other facades it is not
// bound to the stored settings: configuration testing probes whatever bases
// the user just typed in.
type HealthFacade struct {
	client HTTPDoer
}

// NewHealthFacade creates a facade over the given HTTP client.
func NewHealthFacade(client HTTPDoer) *HealthFacade {
	return &HealthFacade{client: client}
}

// Health probes {base}/health and reports any non-200 answer as an error.
func (f *HealthFacade) Health(ctx context.Context, baseURL string) error {
	req, err := newRequest(ctx, http.MethodGet, baseURL+"/health")
	if err != nil {
		return err
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := doJSON(f.client, "health probe", req, &body); err != nil {
		return err
	}
	if body.Status != "" && body.Status != "ok" {
		return fmt.Errorf("health probe: status %q", body.Status)
	}
	return nil
}
