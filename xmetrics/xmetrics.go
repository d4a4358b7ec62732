// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package xmetrics

import (
	"github.com/go-kit/kit/metrics"
	gokitprometheus "github.com/go-kit/kit/metrics/prometheus"
	"github.com/prometheus/client_golang/prometheus"
)

// Adder represents a metric to which deltas can be added.  Go-kit's
// metrics.Counter, metrics.Gauge, and several prometheus interfaces implement
// this interface.
type Adder interface {
	Add(float64)
}

// Setter represents a metric that can receive updates, e.g. a gauge.  Go-kit's
// metrics.Gauge and prometheus gauges implement this interface.
type Setter interface {
	Set(float64)
}

// AddSetter represents a metric that can both have deltas applied and receive
// new values.  Gauges most commonly implement this interface.
type AddSetter interface {
	Adder
	Setter
}

// NewCounter creates a go-kit counter registered with the given prometheus
// registerer.  If r is nil, prometheus.DefaultRegisterer is used.
func NewCounter(r prometheus.Registerer, o prometheus.CounterOpts) (metrics.Counter, error) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}

	cv := prometheus.NewCounterVec(o, nil)
	if err := r.Register(cv); err != nil {
		return nil, err
	}

	return gokitprometheus.NewCounter(cv), nil
}

// NewGauge creates a go-kit gauge registered with the given prometheus
// registerer.  If r is nil, prometheus.DefaultRegisterer is used.
func NewGauge(r prometheus.Registerer, o prometheus.GaugeOpts) (metrics.Gauge, error) {
	if r == nil {
		r = prometheus.DefaultRegisterer
	}

	gv := prometheus.NewGaugeVec(o, nil)
	if err := r.Register(gv); err != nil {
		return nil, err
	}

	return gokitprometheus.NewGauge(gv), nil
}
