package services

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/sbilibin2017/gw-rates-dashboard/internal/models"
)

// HealthProber checks a single backend base URL.
type HealthProber interface {
	Health(ctx context.Context, baseURL string) error
}

// HealthService runs best-effort health probes over the configured bases.
type HealthService struct {
	prober   HealthProber
	settings SettingsReader
}

// NewHealthService creates a new health aggregation service.
func NewHealthService(prober HealthProber, settings SettingsReader) *HealthService {
	return &HealthService{prober: prober, settings: settings}
}

// TestConnections probes the stored settings.
func (h *HealthService) TestConnections(ctx context.Context) (*models.HealthReport, error) {
	s, err := h.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	return h.TestSettings(ctx, s), nil
}

// TestSettings probes the given settings, which may not be saved yet. All
// probes run concurrently and a failure in one never aborts the others; the
// report is assembled only after every probe has settled.
func (h *HealthService) TestSettings(ctx context.Context, s models.Settings) *models.HealthReport {
	type target struct {
		name string
		base string
	}
	var targets []target
	if s.RatesURL != "" {
		targets = append(targets, target{"rates", s.RatesURL})
	}
	if s.AnalyticsURL != "" {
		targets = append(targets, target{"analytics", s.AnalyticsURL})
	}
	if s.ProfileURL != "" {
		targets = append(targets, target{"profile", s.ProfileURL})
	}

	probes := make([]models.ProbeResult, len(targets))
	var g errgroup.Group
	for i, t := range targets {
		i, t := i, t
		g.Go(func() error {
			res := models.ProbeResult{Service: t.name, BaseURL: t.base, OK: true}
			if err := h.prober.Health(ctx, t.base); err != nil {
				res.OK = false
				res.Error = err.Error()
			}
			probes[i] = res
			// probe outcomes are carried in the result slice, never as an
			// error that would cancel sibling probes
			return nil
		})
	}
	_ = g.Wait()

	ok := 0
	var down []string
	for _, p := range probes {
		if p.OK {
			ok++
		} else {
			down = append(down, p.Service)
		}
	}

	report := &models.HealthReport{
		Summary: fmt.Sprintf("OK: %d/%d", ok, len(probes)),
		OK:      ok,
		Total:   len(probes),
		Probes:  probes,
	}
	if len(down) > 0 {
		report.Warning = "unreachable: " + strings.Join(down, ", ")
	}
	return report
}
