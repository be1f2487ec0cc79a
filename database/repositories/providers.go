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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/modelward-dev/modelward/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewInventoryModelRepository, fx.As(new(shared.InventoryModelRepository)))),
	fx.Provide(fx.Annotate(NewValidationPolicyRepository, fx.As(new(shared.ValidationPolicyRepository)))),
	fx.Provide(fx.Annotate(NewValidationRequestRepository, fx.As(new(shared.ValidationRequestRepository)))),
	fx.Provide(fx.Annotate(NewApprovalRecordRepository, fx.As(new(shared.ApprovalRecordRepository)))),
	fx.Provide(fx.Annotate(NewPastDueBucketRepository, fx.As(new(shared.PastDueBucketRepository)))),
	fx.Provide(fx.Annotate(NewResidualRiskMatrixRepository, fx.As(new(shared.ResidualRiskMatrixRepository)))),
	fx.Provide(fx.Annotate(NewQualitativeFactorRepository, fx.As(new(shared.QualitativeFactorRepository)))),
	fx.Provide(fx.Annotate(NewRiskAssessmentRepository, fx.As(new(shared.RiskAssessmentRepository)))),
	fx.Provide(fx.Annotate(NewStatusHistoryRepository, fx.As(new(shared.StatusHistoryRepository)))),
)
