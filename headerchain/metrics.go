// Copyright (C) 2019-2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package headerchain

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	numLinksVerified prometheus.Counter
	numChainsValid   prometheus.Counter
	numChainsInvalid prometheus.Counter
	tipHeight        prometheus.Gauge
}

func newMetrics(namespace string, registerer prometheus.Registerer) (*metrics, error) {
	if registerer == nil {
		return nil, nil
	}

	m := &metrics{
		numLinksVerified: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "links_verified",
			Help:      "Number of parent/height links checked successfully",
		}),
		numChainsValid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chains_valid",
			Help:      "Number of sub-chain verifications that passed",
		}),
		numChainsInvalid: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chains_invalid",
			Help:      "Number of sub-chain verifications that failed",
		}),
		tipHeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tip_height",
			Help:      "Height of the most recently appended header",
		}),
	}

	collectors := []prometheus.Collector{
		m.numLinksVerified,
		m.numChainsValid,
		m.numChainsInvalid,
		m.tipHeight,
	}
	for _, collector := range collectors {
		if err := registerer.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register %s statistics: %w", namespace, err)
		}
	}
	return m, nil
}

func (m *metrics) linkVerified() {
	if m != nil {
		m.numLinksVerified.Inc()
	}
}

func (m *metrics) chainValid() {
	if m != nil {
		m.numChainsValid.Inc()
	}
}

func (m *metrics) chainInvalid() {
	if m != nil {
		m.numChainsInvalid.Inc()
	}
}

func (m *metrics) observeTip(height uint64) {
	if m != nil {
		m.tipHeight.Set(float64(height))
	}
}
