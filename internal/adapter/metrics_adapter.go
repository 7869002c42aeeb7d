package adapter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/prometheus/client_golang/prometheus"

	m "rulesnap.dev/pkg/rulesnap/internal/model"
)

const (
	metricsNamespace = "rulesnap"
	checkSubsystem   = "check"
)

var reportedStatuses = []m.GroupStatus{m.GroupUnchanged, m.GroupChanged, m.GroupNew, m.GroupRemoved}

// CheckMetrics holds the gauges exported after a drift check, in the format
// read by the node_exporter textfile collector.
type CheckMetrics struct {
	registry *prometheus.Registry

	Groups   *prometheus.GaugeVec
	Changes  *prometheus.GaugeVec
	Skipped  prometheus.Gauge
	Drifting prometheus.Gauge
}

// NewCheckMetrics creates the gauges on a private registry.
func NewCheckMetrics() *CheckMetrics {
	reg := prometheus.NewRegistry()

	metrics := &CheckMetrics{
		registry: reg,
		Groups: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: checkSubsystem,
				Name:      "groups",
				Help:      "Number of groups by comparison status",
			},
			[]string{"status"},
		),
		Changes: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Subsystem: checkSubsystem,
				Name:      "changes",
				Help:      "Number of rule and membership changes per drifted group",
			},
			[]string{"group", "kind"},
		),
		Skipped: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: checkSubsystem,
			Name:      "skipped_workspaces",
			Help:      "Workspaces skipped in tolerant mode",
		}),
		Drifting: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: checkSubsystem,
			Name:      "drift",
			Help:      "1 when any group drifted from its baseline, otherwise 0",
		}),
	}

	reg.MustRegister(metrics.Groups, metrics.Changes, metrics.Skipped, metrics.Drifting)

	return metrics
}

// Registry exposes the registry the gauges live on.
func (c *CheckMetrics) Registry() *prometheus.Registry {
	return c.registry
}

// Observe replaces the gauge values with the outcome of report.
func (c *CheckMetrics) Observe(report m.CheckReport) {
	c.Groups.Reset()
	c.Changes.Reset()

	for _, status := range reportedStatuses {
		c.Groups.WithLabelValues(string(status)).Set(0)
	}

	for _, group := range report.Groups {
		c.Groups.WithLabelValues(string(group.Status)).Inc()

		if group.Status == m.GroupUnchanged {
			continue
		}

		diff := group.Diff
		c.Changes.WithLabelValues(group.GroupID, "introduced").Set(float64(len(diff.IntroducedRules)))
		c.Changes.WithLabelValues(group.GroupID, "removed").Set(float64(len(diff.RemovedRules)))
		c.Changes.WithLabelValues(group.GroupID, "severity").Set(float64(len(diff.SeverityChanges)))
		c.Changes.WithLabelValues(group.GroupID, "options").Set(float64(len(diff.OptionChanges)))
		membership := len(diff.WorkspaceMembershipChanges.Added) + len(diff.WorkspaceMembershipChanges.Removed)
		c.Changes.WithLabelValues(group.GroupID, "membership").Set(float64(membership))
	}

	c.Skipped.Set(float64(len(report.Skipped)))

	if report.HasDrift() {
		c.Drifting.Set(1)
	} else {
		c.Drifting.Set(0)
	}
}

// WriteTextfile atomically writes the current values to path.
func (c *CheckMetrics) WriteTextfile(path m.Path) error {
	if dir := filepath.Dir(string(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			slog.Error("Failed to create metrics directory", "path", dir, "error", err)
			return fmt.Errorf("create metrics directory: %w", err)
		}
	}

	if err := prometheus.WriteToTextfile(string(path), c.registry); err != nil {
		slog.Error("Failed to write metrics", "path", path, "error", err)
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	slog.Debug("Wrote check metrics", "path", path)

	return nil
}
