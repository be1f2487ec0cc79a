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
	"encoding/json"
	"os"
	"time"

	"github.com/modelward-dev/modelward/database/repositories"
	"github.com/modelward-dev/modelward/services"
	"github.com/modelward-dev/modelward/shared"
	"github.com/spf13/cobra"
)

func NewReportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Prints the compliance kpi report as json",
		RunE: func(cmd *cobra.Command, args []string) error {
			shared.LoadConfig() // nolint: errcheck

			db, err := shared.DatabaseFactory()
			if err != nil {
				return err
			}

			modelRepository := repositories.NewInventoryModelRepository(db)
			reportService := services.NewReportService(modelRepository, newComplianceService(db))

			report, err := reportService.KPIReport(time.Now())
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(os.Stdout)
			encoder.SetIndent("", "  ")
			return encoder.Encode(report)
		},
	}
}
