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

package commands

import (
	"log/slog"
	"time"

	"github.com/modelward-dev/modelward/database/repositories"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/services"
	"github.com/modelward-dev/modelward/shared"
	"github.com/spf13/cobra"
)

// newComplianceService wires the compliance service by hand. The cli runs
// outside the fx application, so there is no container to resolve it from.
func newComplianceService(db shared.DB) shared.ComplianceService {
	modelRepository := repositories.NewInventoryModelRepository(db)
	policyRepository := repositories.NewValidationPolicyRepository(db)
	requestRepository := repositories.NewValidationRequestRepository(db)
	bucketRepository := repositories.NewPastDueBucketRepository(db)
	matrixRepository := repositories.NewResidualRiskMatrixRepository(db)
	historyRepository := repositories.NewStatusHistoryRepository(db)

	return services.NewComplianceService(modelRepository, policyRepository, requestRepository, bucketRepository, matrixRepository, historyRepository)
}

func NewStatusesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recalculate-statuses",
		Short: "Recomputes and journals the approval status of every active model",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint: errcheck

			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			start := time.Now()
			changed, err := newComplianceService(db).RefreshAll(dtos.TriggerScheduledRecalculation)
			if err != nil {
				return err
			}

			slog.Info("status recalculation finished", "changed", changed, "duration", time.Since(start))
			return nil
		},
	}
}
