package dtos

import "time"

// KPIReportDTO aggregates compliance across all active models for one
// evaluation date. Models without a configured policy are excluded from the
// percentage base.
type KPIReportDTO struct {
	EvaluatedAt time.Time `json:"evaluatedAt"`

	TotalModels    int `json:"totalModels"`
	EvaluatedCount int `json:"evaluatedCount"`
	// NoPolicyCount counts models excluded because no policy exists for their
	// tier.
	NoPolicyCount       int `json:"noPolicyCount"`
	NeverValidatedCount int `json:"neverValidatedCount"`
	OverdueCount        int `json:"overdueCount"`

	OverduePercent float64 `json:"overduePercent"`

	CountsByComplianceStatus map[ComplianceStatus]int `json:"countsByComplianceStatus"`
	CountsByApprovalStatus   map[ApprovalStatus]int   `json:"countsByApprovalStatus"`
}

// BucketDTO is the admin representation of one past-due bucket.
type BucketDTO struct {
	Label            string `json:"label"`
	MinDays          *int   `json:"minDays"`
	MaxDays          *int   `json:"maxDays"`
	DowngradeNotches int    `json:"downgradeNotches"`
}
