package dbmodels

import "time"

// PipelinePlan is a persisted result of a reverse funnel calculation.
type PipelinePlan struct {
	BaseModel
	PipelineID          string `gorm:"type:varchar(36);index"`
	Pipeline            *TalentPipeline
	TargetCount         int
	TargetDate          *time.Time
	SafetyBufferPercent float64
	TotalTatDays        int
	OverallConversion   float64           // percent, product of chain stage rates
	CreatedBy           string            `gorm:"type:varchar(255)"`
	Rows                []PipelinePlanRow `gorm:"foreignKey:PlanID"`
}

type PipelinePlanRow struct {
	BaseModel
	PlanID         string `gorm:"type:varchar(36);index"`
	StageID        string `gorm:"type:varchar(36)"`
	StageName      string `gorm:"type:varchar(255)"`
	StageOrder     int
	ConversionRate float64
	TatDays        int
	IsSpecial      bool
	RequiredCount  *int       // nil for special stages
	NeededByDate   *time.Time // nil when the plan has no target date
}
