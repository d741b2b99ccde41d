// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package monitoring

type NoopMonitor struct{}

// NewNoopMonitor returns a monitor that discards every metric.
func NewNoopMonitor() *NoopMonitor {
	return &NoopMonitor{}
}

func (m *NoopMonitor) GetService() string {
	return "noop"
}

func (m *NoopMonitor) SetResponseTimeMetric(map[string]string, float64) error {
	return nil
}

func (m *NoopMonitor) SetDependencyAvailability(map[string]string, float64) error {
	return nil
}
