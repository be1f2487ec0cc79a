package models

// ValidationPolicy configures the revalidation cadence for one risk tier.
// Absence of a policy for a model's tier means the model cannot be evaluated
// at all ("no policy configured"), it is never defaulted.
type ValidationPolicy struct {
	Model
	TierLabel string `json:"tierLabel" gorm:"uniqueIndex;not null;"`

	FrequencyMonths   int `json:"frequencyMonths" gorm:"not null;"`
	GracePeriodMonths int `json:"gracePeriodMonths" gorm:"not null;"`
	// SubmissionLeadTimeDays is how long a validation is allowed to take once
	// the submission has been received.
	SubmissionLeadTimeDays int `json:"submissionLeadTimeDays" gorm:"not null;"`
}

func (p ValidationPolicy) TableName() string {
	return "validation_policies"
}
