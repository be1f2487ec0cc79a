package services

import (
	"github.com/modelward-dev/modelward/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewComplianceService, fx.As(new(shared.ComplianceService)))),
	fx.Provide(fx.Annotate(NewAssessmentService, fx.As(new(shared.AssessmentService)))),
	fx.Provide(fx.Annotate(NewReportService, fx.As(new(shared.ReportService)))),
)
