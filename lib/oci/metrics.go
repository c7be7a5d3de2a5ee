//
// (C) Copyright 2024 Intel Corporation.
//
// SPDX-License-Identifier: BSD-2-Clause-Patent
//

package oci

import (
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "oci"

// Metrics counts library loads, symbol resolutions and forwarded calls.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	loads       *prometheus.CounterVec
	resolutions *prometheus.CounterVec
	calls       *prometheus.CounterVec
}

// NewMetrics creates the counters and registers them with reg, if
// reg is non-nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		loads: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "loader",
				Name:      "loads_total",
				Help:      "Client library load attempts by result.",
			},
			[]string{"result"},
		),
		resolutions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "loader",
				Name:      "symbol_resolutions_total",
				Help:      "Native symbol lookups by symbol and result.",
			},
			[]string{"symbol", "result"},
		),
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: "forward",
				Name:      "calls_total",
				Help:      "Forwarded native calls by symbol and status.",
			},
			[]string{"symbol", "result"},
		),
	}

	if reg != nil {
		for _, c := range []prometheus.Collector{m.loads, m.resolutions, m.calls} {
			if err := reg.Register(c); err != nil {
				return nil, errors.Wrap(err, "failed to register client metrics")
			}
		}
	}

	return m, nil
}

func (m *Metrics) recordLoad(err error) {
	if m == nil {
		return
	}
	result := "success"
	if err != nil {
		result = "failure"
	}
	m.loads.WithLabelValues(result).Inc()
}

func (m *Metrics) recordResolution(symbol string, found bool) {
	if m == nil {
		return
	}
	result := "found"
	if !found {
		result = "not_found"
	}
	m.resolutions.WithLabelValues(symbol, result).Inc()
}

func (m *Metrics) recordCall(symbol string, status Sword) {
	if m == nil {
		return
	}
	m.calls.WithLabelValues(symbol, StatusString(status)).Inc()
}
