package dbmodels

import "wfp-backend/models"

type PipelineStage struct {
	BaseModel
	PipelineID     string `gorm:"type:varchar(36);index"`
	Name           string `gorm:"type:varchar(255)"`
	StageOrder     int
	ConversionRate float64 // percent of entrants advancing to the next stage
	TatDays        int
	Description    string                 `gorm:"type:varchar(1000)"`
	IsSpecial      bool                   // exits/holds outside the sequential chain
	MapsToStatus   models.CandidateStatus `gorm:"type:varchar(50)"`
}

const (
	SourcedStage   string = "Sourced"
	ScreeningStage string = "Screening"
	InterviewStage string = "Interview"
	SelectedStage  string = "Selected"
	OfferStage     string = "Offer"
	OnBoardedStage string = "On Boarded"
	DroppedStage   string = "Dropped"
	RejectedStage  string = "Rejected"
	OnHoldStage    string = "On Hold"
)

var DefaultChainStages = []string{SourcedStage, ScreeningStage, InterviewStage, SelectedStage, OfferStage, OnBoardedStage}

var SpecialStageNames = []string{DroppedStage, RejectedStage, OnHoldStage}
