// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-records-sync/internal/logger"
)

const defaultProbeInterval = 15 * time.Second

type probe struct {
	checker  Checker
	interval time.Duration
	logger   *logger.Logger
}

// NewProbe returns a Worker that runs checker right away and then every
// interval. Check failures are logged and never stop the worker.
func NewProbe(checker Checker, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultProbeInterval
	}
	return &probe{checker: checker, interval: interval, logger: logger}
}

func (p *probe) Run(ctx context.Context) error {
	t := time.NewTicker(p.interval)
	defer t.Stop()

	for {
		if err := p.checker.Check(ctx); err != nil && ctx.Err() == nil {
			p.logger.Warn().Err(err).Str("func", "probe.Run").Msg("health check failed")
		}

		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
		}
	}
}
