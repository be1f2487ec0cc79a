package models

// PastDueBucket is one admin-configured day range mapping overdue severity to
// downgrade notches. Nil bounds are only legal at the extremes: the lowest
// bucket has a nil minimum, the highest a nil maximum, and a single bucket
// covering everything has both nil.
type PastDueBucket struct {
	Model
	Label string `json:"label" gorm:"not null;uniqueIndex;"`

	MinDays *int `json:"minDays"`
	MaxDays *int `json:"maxDays"`

	DowngradeNotches int `json:"downgradeNotches" gorm:"not null;"`
}

func (b PastDueBucket) TableName() string {
	return "past_due_buckets"
}

// Contains reports whether the bucket covers the given days-overdue value.
func (b PastDueBucket) Contains(days int) bool {
	if b.MinDays != nil && days < *b.MinDays {
		return false
	}
	if b.MaxDays != nil && days > *b.MaxDays {
		return false
	}
	return true
}
