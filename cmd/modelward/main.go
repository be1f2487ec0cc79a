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

package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/modelward-dev/modelward/cmd/modelward/api"
	"github.com/modelward-dev/modelward/controllers"
	"github.com/modelward-dev/modelward/daemons"
	"github.com/modelward-dev/modelward/database"
	"github.com/modelward-dev/modelward/database/repositories"
	"github.com/modelward-dev/modelward/router"
	"github.com/modelward-dev/modelward/services"
	"github.com/modelward-dev/modelward/shared"
	"go.uber.org/fx"

	_ "github.com/lib/pq"
)

func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	cfg := database.GetPoolConfigFromEnv()
	pool := database.NewPgxConnPool(cfg)
	db := database.NewGormDB(pool)

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		if err := database.RunMigrations(db); err != nil {
			slog.Error("failed to run database migrations", "err", err)
			panic(errors.New("failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db),
		fx.Supply(pool),
		fx.Provide(api.NewServer),
		repositories.Module,
		services.Module,
		controllers.ControllerModule,
		router.RouterModule,
		daemons.Module,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(modelRouter router.ModelRouter) {}),
		fx.Invoke(func(requestRouter router.RequestRouter) {}),
		fx.Invoke(func(configRouter router.ConfigRouter) {}),
		fx.Invoke(func(reportRouter router.ReportRouter) {}),
	).Run()
}
