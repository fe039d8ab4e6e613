package pipelineapimodels

import (
	"time"

	"github.com/pkg/errors"
	apimodels "wfp-backend/models/api"
	dbmodels "wfp-backend/models/db"
)

type CalcRequest struct {
	PipelineID          string     `json:"pipeline_id"`
	TargetCount         int        `json:"target_count"`
	TargetDate          *time.Time `json:"target_date,omitempty"`
	SafetyBufferPercent float64    `json:"safety_buffer_percent"`
	Save                bool       `json:"save"` // persist the computed plan
	CreatedBy           string     `json:"created_by"`
}

func (r CalcRequest) Validate() error {
	if r.PipelineID == "" {
		return errors.New("pipeline id is required")
	}
	if r.TargetCount <= 0 {
		return errors.New("target count must be positive")
	}
	return nil
}

type PlanRowView struct {
	StageID        string     `json:"stage_id,omitempty"`
	StageName      string     `json:"stage_name"`
	StageOrder     int        `json:"stage_order"`
	ConversionRate float64    `json:"conversion_rate"`
	TatDays        int        `json:"tat_days"`
	IsSpecial      bool       `json:"is_special"`
	RequiredCount  *int       `json:"required_count,omitempty"`
	NeededByDate   *time.Time `json:"needed_by_date,omitempty"`
}

type PlanMetricsView struct {
	TotalTatDays          int     `json:"total_tat_days"`
	AverageConversionRate float64 `json:"average_conversion_rate"`
	OverallConversionRate float64 `json:"overall_conversion_rate"`
	StageCount            int     `json:"stage_count"`
	EfficiencyScore       float64 `json:"efficiency_score"`
}

type PlanView struct {
	ID                  string          `json:"id,omitempty"`
	PipelineID          string          `json:"pipeline_id"`
	PipelineName        string          `json:"pipeline_name,omitempty"`
	TargetCount         int             `json:"target_count"`
	TargetDate          *time.Time      `json:"target_date,omitempty"`
	SafetyBufferPercent float64         `json:"safety_buffer_percent"`
	CreatedBy           string          `json:"created_by,omitempty"`
	CreatedAt           *time.Time      `json:"created_at,omitempty"`
	Metrics             PlanMetricsView `json:"metrics"`
	Rows                []PlanRowView   `json:"rows"`
}

type PlanFind struct {
	apimodels.Pagination
	PipelineID string `json:"pipeline_id"`
}

func PlanConvert(rec dbmodels.PipelinePlan) PlanView {
	createdAt := rec.CreatedAt
	view := PlanView{
		ID:                  rec.ID,
		PipelineID:          rec.PipelineID,
		TargetCount:         rec.TargetCount,
		TargetDate:          rec.TargetDate,
		SafetyBufferPercent: rec.SafetyBufferPercent,
		CreatedBy:           rec.CreatedBy,
		CreatedAt:           &createdAt,
		Metrics: PlanMetricsView{
			TotalTatDays:          rec.TotalTatDays,
			OverallConversionRate: rec.OverallConversion,
		},
	}
	if rec.Pipeline != nil {
		view.PipelineName = rec.Pipeline.Name
	}
	for _, row := range rec.Rows {
		view.Rows = append(view.Rows, PlanRowView{
			StageID:        row.StageID,
			StageName:      row.StageName,
			StageOrder:     row.StageOrder,
			ConversionRate: row.ConversionRate,
			TatDays:        row.TatDays,
			IsSpecial:      row.IsSpecial,
			RequiredCount:  row.RequiredCount,
			NeededByDate:   row.NeededByDate,
		})
	}
	return view
}
