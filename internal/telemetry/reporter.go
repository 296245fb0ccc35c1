package telemetry

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nguyenqkhai/Estimate-Price-House-v3/internal/artifacts"
)

// StatusReporter periodically logs the artifact load state and republishes it
// as the model_loaded gauge.
type StatusReporter struct {
	cronRunner *cron.Cron
	spec       string
	bundle     *artifacts.Bundle
	metrics    *Metrics
}

// NewStatusReporter creates a reporter for the given cron spec. An empty spec
// disables periodic reports. metrics may be nil.
func NewStatusReporter(spec string, bundle *artifacts.Bundle, metrics *Metrics) *StatusReporter {
	return &StatusReporter{
		spec:    spec,
		bundle:  bundle,
		metrics: metrics,
		cronRunner: cron.New(
			cron.WithChain(
				cron.SkipIfStillRunning(cron.DefaultLogger),
				cron.Recover(cron.DefaultLogger),
			),
		),
	}
}

// Start reports once and schedules further reports.
func (r *StatusReporter) Start() error {
	r.Report()
	if r.spec == "" {
		log.Println("Status reporter disabled (STATUS_REPORT_CRON is empty).")
		return nil
	}

	entryID, err := r.cronRunner.AddFunc(r.spec, r.Report)
	if err != nil {
		return fmt.Errorf("invalid status report schedule %q: %w", r.spec, err)
	}
	r.cronRunner.Start()
	log.Printf("Status reporter scheduled, EntryID: %d, Cron: '%s'", entryID, r.spec)
	return nil
}

// Report logs the current status once.
func (r *StatusReporter) Report() {
	loaded := r.bundle.Loaded()
	if r.metrics != nil {
		r.metrics.SetModelLoaded(loaded)
	}
	if loaded {
		log.Printf("Model status: loaded (model=%s, encoder=%s)", r.bundle.ModelFile(), r.bundle.EncoderFile())
		return
	}
	log.Printf("Warning: model status: not loaded: %v", r.bundle.Err())
}

// Stop waits for a running report to finish.
func (r *StatusReporter) Stop() {
	ctx := r.cronRunner.Stop()
	select {
	case <-ctx.Done():
		log.Println("Status reporter stopped.")
	case <-time.After(5 * time.Second):
		log.Println("Status reporter shutdown timed out.")
	}
}

// entries is the number of scheduled jobs.
func (r *StatusReporter) entries() int {
	return len(r.cronRunner.Entries())
}
