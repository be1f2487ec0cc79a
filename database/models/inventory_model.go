package models

import (
	"time"
)

// InventoryModel is one entry of the model inventory: a quantitative model
// subject to periodic validation. It owns one current risk assessment per
// region (region null = global).
type InventoryModel struct {
	Model
	Name string `json:"name" gorm:"not null;"`
	Slug string `json:"slug" gorm:"uniqueIndex;not null;"`

	// TierLabel references the risk tier the validation policy is keyed by.
	// It is a free-form label normalized at calculation time, not a foreign
	// key.
	TierLabel string `json:"tierLabel"`
	Active    bool   `json:"active" gorm:"default:true;"`

	// UseApprovalDate is set when the business formally approves the model
	// for use. Required for approval completeness whenever a conditional
	// approver is involved.
	UseApprovalDate *time.Time `json:"useApprovalDate"`

	ValidationRequests []ValidationRequest `json:"validationRequests,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE;"`
	RiskAssessments    []RiskAssessment    `json:"riskAssessments,omitempty" gorm:"foreignKey:ModelID;constraint:OnDelete:CASCADE;"`
}

func (m InventoryModel) TableName() string {
	return "inventory_models"
}
