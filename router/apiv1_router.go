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

package router

import (
	"os"
	"runtime"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/modelward-dev/modelward/cmd/modelward/api"
	"github.com/modelward-dev/modelward/shared"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type APIV1Router struct {
	*echo.Group
}

func NewAPIV1Router(srv api.Server, db shared.DB, pool *pgxpool.Pool) APIV1Router {
	apiV1Router := srv.Echo.Group("/api/v1")

	apiV1Router.GET("/health/", health)
	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))

	apiV1Router.GET("/info/", func(c echo.Context) error {
		var mem runtime.MemStats
		runtime.ReadMemStats(&mem)

		resp := InfoResponse{
			Runtime: RuntimeInfo{
				GoVersion:     runtime.Version(),
				NumGoroutines: runtime.NumGoroutine(),
				HeapAlloc:     mem.HeapAlloc,
			},
			Process: ProcessInfo{
				PID:           os.Getpid(),
				UptimeSeconds: int(time.Since(api.StartedAt).Seconds()),
			},
		}

		host, _ := os.Hostname()
		resp.Process.Hostname = host

		resp.Database = DatabaseInfo{Status: "healthy"}
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			resp.Database.Status = "unhealthy"
		}
		if pool != nil {
			stats := pool.Stat()
			resp.Database.TotalConns = stats.TotalConns()
			resp.Database.IdleConns = stats.IdleConns()
		}

		return c.JSON(200, resp)
	})

	return APIV1Router{Group: apiV1Router}
}

func health(c echo.Context) error {
	return c.String(200, "ok")
}
