package services

import (
	"math"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/modelward-dev/modelward/dtos"
	"github.com/modelward-dev/modelward/monitoring"
	"github.com/modelward-dev/modelward/shared"
)

type ReportService struct {
	modelRepository   shared.InventoryModelRepository
	complianceService shared.ComplianceService

	reportCache *expirable.LRU[string, dtos.KPIReportDTO]
}

func NewReportService(modelRepository shared.InventoryModelRepository, complianceService shared.ComplianceService) *ReportService {
	return &ReportService{
		modelRepository:   modelRepository,
		complianceService: complianceService,

		reportCache: expirable.NewLRU[string, dtos.KPIReportDTO](4, nil, 10*time.Minute),
	}
}

func (s *ReportService) InvalidateCache() {
	s.reportCache.Purge()
}

// KPIReport evaluates the whole active inventory for one date. Models without
// a policy for their tier are excluded from the overdue percentage base.
func (s *ReportService) KPIReport(today time.Time) (dtos.KPIReportDTO, error) {
	key := today.Format("2006-01-02")
	if report, ok := s.reportCache.Get(key); ok {
		return report, nil
	}

	ms, err := s.modelRepository.AllActive()
	if err != nil {
		return dtos.KPIReportDTO{}, err
	}

	report := dtos.KPIReportDTO{
		EvaluatedAt: today,
		TotalModels: len(ms),

		CountsByComplianceStatus: make(map[dtos.ComplianceStatus]int),
		CountsByApprovalStatus:   make(map[dtos.ApprovalStatus]int),
	}

	for _, model := range ms {
		result, err := s.complianceService.EvaluateModel(model, today)
		if err != nil {
			return dtos.KPIReportDTO{}, err
		}

		report.CountsByComplianceStatus[result.ComplianceStatus]++
		report.CountsByApprovalStatus[result.ApprovalStatus]++

		switch result.ComplianceStatus {
		case dtos.ComplianceStatusNoPolicyConfigured:
			report.NoPolicyCount++
		case dtos.ComplianceStatusNeverValidated:
			report.NeverValidatedCount++
			report.EvaluatedCount++
		default:
			report.EvaluatedCount++
		}

		if result.Detail.IsOverdue {
			report.OverdueCount++
		}
	}

	if report.EvaluatedCount > 0 {
		report.OverduePercent = math.Round(float64(report.OverdueCount)/float64(report.EvaluatedCount)*10000) / 100
	}

	publishReportMetrics(report)
	s.reportCache.Add(key, report)
	return report, nil
}

func publishReportMetrics(report dtos.KPIReportDTO) {
	monitoring.OverdueModels.Set(float64(report.OverdueCount))
	for status, count := range report.CountsByComplianceStatus {
		monitoring.ModelsByComplianceStatus.WithLabelValues(string(status)).Set(float64(count))
	}
	for status, count := range report.CountsByApprovalStatus {
		monitoring.ModelsByApprovalStatus.WithLabelValues(string(status)).Set(float64(count))
	}
}
