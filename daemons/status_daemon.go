// Copyright (C) 2025 the modelward contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package daemons

import (
	"log/slog"
	"time"

	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/shared"
)

// DaemonRunner periodically recomputes every model's approval status so
// compliance states that depend only on the passage of time (grace period
// expiry, interim expiry) get journaled without any user interaction.
type DaemonRunner struct {
	complianceService shared.ComplianceService
	reportService     shared.ReportService

	interval time.Duration
}

func NewDaemonRunner(complianceService shared.ComplianceService, reportService shared.ReportService) *DaemonRunner {
	return &DaemonRunner{
		complianceService: complianceService,
		reportService:     reportService,

		interval: 6 * time.Hour,
	}
}

func (runner *DaemonRunner) RecalculateStatuses() error {
	start := time.Now()

	changed, err := runner.complianceService.RefreshAll(dtos.TriggerScheduledRecalculation)
	if err != nil {
		return err
	}
	slog.Info("scheduled status recalculation finished", "changed", changed, "duration", time.Since(start))

	// rebuild the report so the exported gauges reflect the new statuses
	runner.reportService.InvalidateCache()
	_, err = runner.reportService.KPIReport(time.Now())
	return err
}

func (runner *DaemonRunner) Start() {
	go func() {
		for {
			if err := runner.RecalculateStatuses(); err != nil {
				slog.Error("scheduled status recalculation failed", "err", err)
			}
			time.Sleep(runner.interval)
		}
	}()
}
