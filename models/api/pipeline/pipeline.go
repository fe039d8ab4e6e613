package pipelineapimodels

import (
	"github.com/pkg/errors"
	"wfp-backend/models"
	apimodels "wfp-backend/models/api"
	dbmodels "wfp-backend/models/db"
)

type PipelineData struct {
	Name        string   `json:"name"`
	ClientID    string   `json:"client_id"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	IsActive    bool     `json:"is_active"`
	IsInternal  bool     `json:"is_internal"`
	CreatedBy   string   `json:"created_by"`
}

func (p PipelineData) Validate() error {
	if p.Name == "" {
		return errors.New("pipeline name is required")
	}
	return nil
}

type PipelineView struct {
	PipelineData
	ID         string      `json:"id"`
	ClientName string      `json:"client_name,omitempty"`
	StageCount int         `json:"stage_count"`
	Stages     []StageView `json:"stages,omitempty"`
}

type PipelineFind struct {
	apimodels.Pagination
	Name       string `json:"name"`
	ClientID   string `json:"client_id"`
	OnlyActive bool   `json:"only_active"`
}

type StageData struct {
	Name           string                 `json:"name"`
	StageOrder     int                    `json:"stage_order"`
	ConversionRate float64                `json:"conversion_rate"`
	TatDays        int                    `json:"tat_days"`
	Description    string                 `json:"description"`
	IsSpecial      bool                   `json:"is_special"`
	MapsToStatus   models.CandidateStatus `json:"maps_to_status"`
}

func (s StageData) Validate() error {
	if s.Name == "" {
		return errors.New("stage name is required")
	}
	if s.IsSpecial {
		return nil
	}
	if s.ConversionRate <= 0 || s.ConversionRate > 100 {
		return errors.New("conversion rate must be in (0,100]")
	}
	if s.TatDays < 0 {
		return errors.New("turnaround time must not be negative")
	}
	if s.StageOrder <= 0 {
		return errors.New("stage order must be positive")
	}
	return nil
}

type StageView struct {
	StageData
	ID         string `json:"id"`
	PipelineID string `json:"pipeline_id"`
}

func PipelineConvert(rec dbmodels.TalentPipeline) PipelineView {
	view := PipelineView{
		PipelineData: PipelineData{
			Name:        rec.Name,
			ClientID:    rec.ClientID,
			Description: rec.Description,
			Tags:        rec.Tags,
			IsActive:    rec.IsActive,
			IsInternal:  rec.IsInternal,
			CreatedBy:   rec.CreatedBy,
		},
		ID:         rec.ID,
		StageCount: len(rec.Stages),
	}
	if rec.Client != nil {
		view.ClientName = rec.Client.Name
	}
	for _, stage := range rec.Stages {
		view.Stages = append(view.Stages, StageConvert(stage))
	}
	return view
}

func StageConvert(rec dbmodels.PipelineStage) StageView {
	return StageView{
		StageData: StageData{
			Name:           rec.Name,
			StageOrder:     rec.StageOrder,
			ConversionRate: rec.ConversionRate,
			TatDays:        rec.TatDays,
			Description:    rec.Description,
			IsSpecial:      rec.IsSpecial,
			MapsToStatus:   rec.MapsToStatus,
		},
		ID:         rec.ID,
		PipelineID: rec.PipelineID,
	}
}
