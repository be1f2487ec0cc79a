package services

import (
	"github.com/google/uuid"
	"github.com/modelward-dev/modelward/database/models"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/riskrating"
	"github.com/modelward-dev/modelward/shared"
	"github.com/modelward-dev/modelward/transformer"
	"github.com/pkg/errors"
)

type AssessmentService struct {
	assessmentRepository shared.RiskAssessmentRepository
	factorRepository     shared.QualitativeFactorRepository
}

func NewAssessmentService(assessmentRepository shared.RiskAssessmentRepository, factorRepository shared.QualitativeFactorRepository) *AssessmentService {
	return &AssessmentService{
		assessmentRepository: assessmentRepository,
		factorRepository:     factorRepository,
	}
}

// SaveAssessment snapshots the current factor weights onto new factor rows,
// recomputes the derived columns and persists the assessment. Existing factor
// rows keep the weight they were created with.
func (s *AssessmentService) SaveAssessment(assessment *models.RiskAssessment) (dtos.EffectiveRiskDTO, error) {
	factors, err := s.factorRepository.All()
	if err != nil {
		return dtos.EffectiveRiskDTO{}, err
	}

	weightByFactor := make(map[uuid.UUID]float64, len(factors))
	for _, factor := range factors {
		weightByFactor[factor.ID] = factor.Weight
	}

	for i := range assessment.FactorAssessments {
		factorAssessment := &assessment.FactorAssessments[i]
		if factorAssessment.ID != uuid.Nil {
			continue
		}
		weight, ok := weightByFactor[factorAssessment.FactorID]
		if !ok {
			return dtos.EffectiveRiskDTO{}, errors.Errorf("unknown qualitative factor %s", factorAssessment.FactorID)
		}
		factorAssessment.WeightSnapshot = weight
	}

	eff := riskrating.Effective(*assessment)
	assessment.QualitativeScore = eff.QualitativeScore
	assessment.QualitativeLevel = eff.QualitativeLevel
	assessment.DerivedTier = eff.DerivedTier
	assessment.FinalTier = eff.Tier

	if err := s.assessmentRepository.Save(nil, assessment); err != nil {
		return dtos.EffectiveRiskDTO{}, err
	}

	return transformer.EffectiveRiskToDTO(eff), nil
}

func (s *AssessmentService) EffectiveByModel(modelID uuid.UUID) ([]dtos.EffectiveRiskDTO, error) {
	assessments, err := s.assessmentRepository.ListByModelID(modelID)
	if err != nil {
		return nil, err
	}

	results := make([]dtos.EffectiveRiskDTO, 0, len(assessments))
	for _, assessment := range assessments {
		results = append(results, transformer.EffectiveRiskToDTO(riskrating.Effective(assessment)))
	}
	return results, nil
}
