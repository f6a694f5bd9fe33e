// Package schema tracks whether the live database matches the columns the
// application reads, and tells the operator how to fix it when it does not.
//
// The running process never changes the schema. Drift is inferred from
// the failure of an ordinary zero-row read, or reported by a data path
// through Observe.
package schema

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bookhive/bookhive-backend/internal/config"
	"github.com/bookhive/bookhive-backend/internal/domain"
)

type prober interface {
	Probe(ctx context.Context) ([]string, error)
}

// Detector holds the per-process schema state. Healthy is sticky for the
// life of the process; every restart starts again from Unknown.
type Detector struct {
	probe   prober
	timeout time.Duration
	log     *slog.Logger
	now     func() time.Time

	mu        sync.Mutex
	state     domain.SchemaState
	missing   []string
	checkedAt time.Time
}

const defaultProbeTimeout = 2 * time.Second

// NewDetector creates a Detector in the Unknown state.
func NewDetector(log *slog.Logger, probe prober, cfg config.SchemaConfig) *Detector {
	timeout := cfg.ProbeTimeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}
	return &Detector{
		probe:   probe,
		timeout: timeout,
		log:     log.With("service", "schema"),
		now:     time.Now,
		state:   domain.SchemaStateUnknown,
	}
}

// CheckSchemaHealth probes the schema unless it is already known healthy.
// A store that cannot be reached returns domain.ErrTransientUnavailable
// and leaves the state unchanged.
func (d *Detector) CheckSchemaHealth(ctx context.Context) (domain.SchemaHealth, error) {
	if d.State() == domain.SchemaStateHealthy {
		return d.Health(), nil
	}

	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	missing, err := d.probe.Probe(probeCtx)
	if err != nil {
		d.log.WarnContext(ctx, "schema probe failed", slog.String("error", err.Error()))
		if !errors.Is(err, domain.ErrTransientUnavailable) {
			err = fmt.Errorf("%w: %w", domain.ErrTransientUnavailable, err)
		}
		return domain.SchemaHealth{}, fmt.Errorf("schema.CheckSchemaHealth: %w", err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.checkedAt = d.now()
	if len(missing) == 0 {
		d.markHealthy(ctx)
	} else {
		d.markDrift(ctx, missing)
	}
	return d.healthLocked(), nil
}

// Observe feeds the outcome of an ordinary operation on the drift-sensitive
// columns into the detector. A nil error proves the columns exist. A
// drift error while Healthy means the schema regressed under a running
// process; this is logged but the state stays Healthy until restart.
// Other errors say nothing about the schema and are ignored.
//
// The first drift reported before any check carries no column list, so
// the probe runs to name the missing columns in the notice.
func (d *Detector) Observe(ctx context.Context, err error) {
	var missing []string
	if errors.Is(err, domain.ErrSchemaDrift) {
		missing = d.missingFor(ctx)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	switch {
	case err == nil:
		d.markHealthy(ctx)
	case !errors.Is(err, domain.ErrSchemaDrift):
	case d.state == domain.SchemaStateHealthy:
		d.log.ErrorContext(ctx, "schema drift observed after healthy check; restart to re-probe",
			slog.String("error", err.Error()),
		)
	default:
		if len(missing) == 0 {
			missing = d.missing
		}
		d.markDrift(ctx, missing)
	}
}

// missingFor returns the known missing columns, probing when none are
// known yet. A failed probe yields nil; the notice still carries the SQL.
func (d *Detector) missingFor(ctx context.Context) []string {
	d.mu.Lock()
	skip := d.state == domain.SchemaStateHealthy || len(d.missing) > 0
	known := d.missing
	d.mu.Unlock()
	if skip {
		return known
	}

	probeCtx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	missing, err := d.probe.Probe(probeCtx)
	if err != nil {
		d.log.WarnContext(ctx, "schema probe after observed drift failed", slog.String("error", err.Error()))
		return nil
	}

	d.mu.Lock()
	d.checkedAt = d.now()
	d.mu.Unlock()
	return missing
}

// State returns the current state without probing.
func (d *Detector) State() domain.SchemaState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Health returns the current state and, on drift, the remediation notice.
func (d *Detector) Health() domain.SchemaHealth {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.healthLocked()
}

func (d *Detector) healthLocked() domain.SchemaHealth {
	h := domain.SchemaHealth{State: d.state, CheckedAt: d.checkedAt}
	if d.state == domain.SchemaStateDriftDetected {
		h.Notice = newNotice(d.missing)
	}
	return h
}

func (d *Detector) markHealthy(ctx context.Context) {
	if d.state == domain.SchemaStateHealthy {
		return
	}
	prev := d.state
	d.state = domain.SchemaStateHealthy
	d.missing = nil
	d.log.InfoContext(ctx, "schema healthy", slog.String("previous", prev.String()))
}

func (d *Detector) markDrift(ctx context.Context, missing []string) {
	transition := d.state != domain.SchemaStateDriftDetected
	d.state = domain.SchemaStateDriftDetected
	d.missing = missing
	if transition {
		d.log.WarnContext(ctx, "schema drift detected",
			slog.Any("missing", missing),
			slog.String("remediation", "bookhive schema-check"),
		)
	}
}
