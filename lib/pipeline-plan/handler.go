package planprovider

import (
	"github.com/pkg/errors"
	"wfp-backend/db"
	pipelinecalc "wfp-backend/lib/pipeline-calc"
	planstore "wfp-backend/lib/pipeline-plan/store"
	pipelinestore "wfp-backend/lib/pipeline/store"
	initchecker "wfp-backend/lib/utils/init-checker"
	pipelineapimodels "wfp-backend/models/api/pipeline"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	Calculate(request pipelineapimodels.CalcRequest) (plan pipelineapimodels.PlanView, err error)
	Get(id string) (plan pipelineapimodels.PlanView, err error)
	Find(request pipelineapimodels.PlanFind) (list []pipelineapimodels.PlanView, rowCount int64, err error)
	Delete(id string) error
}

var Instance Provider

func NewHandler() {
	instance := impl{
		store:         planstore.NewInstance(db.DB),
		pipelineStore: pipelinestore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"store", instance.store,
		"pipelineStore", instance.pipelineStore,
	)
	Instance = instance
}

type impl struct {
	store         planstore.Provider
	pipelineStore pipelinestore.Provider
}

// Calculate runs the reverse funnel calculation over the stored stage set
// and optionally persists the result.
func (i impl) Calculate(request pipelineapimodels.CalcRequest) (pipelineapimodels.PlanView, error) {
	if err := request.Validate(); err != nil {
		return pipelineapimodels.PlanView{}, err
	}
	pipeline, err := i.pipelineStore.GetByID(request.PipelineID)
	if err != nil {
		return pipelineapimodels.PlanView{}, err
	}
	if pipeline == nil {
		return pipelineapimodels.PlanView{}, errors.New("pipeline not found")
	}

	calcStages := make([]pipelinecalc.Stage, 0, len(pipeline.Stages))
	for _, stage := range pipeline.Stages {
		calcStages = append(calcStages, pipelinecalc.Stage{
			ID:             stage.ID,
			Name:           stage.Name,
			Order:          stage.StageOrder,
			ConversionRate: stage.ConversionRate,
			TatDays:        stage.TatDays,
			IsSpecial:      stage.IsSpecial,
			MapsToStatus:   string(stage.MapsToStatus),
		})
	}
	result, err := pipelinecalc.Calculate(pipelinecalc.Request{
		Stages:              calcStages,
		TargetCount:         request.TargetCount,
		TargetDate:          request.TargetDate,
		SafetyBufferPercent: request.SafetyBufferPercent,
	})
	if err != nil {
		return pipelineapimodels.PlanView{}, err
	}

	view := pipelineapimodels.PlanView{
		PipelineID:          pipeline.ID,
		PipelineName:        pipeline.Name,
		TargetCount:         request.TargetCount,
		TargetDate:          request.TargetDate,
		SafetyBufferPercent: request.SafetyBufferPercent,
		CreatedBy:           request.CreatedBy,
		Metrics: pipelineapimodels.PlanMetricsView{
			TotalTatDays:          result.Metrics.TotalTatDays,
			AverageConversionRate: result.Metrics.AverageConversionRate,
			OverallConversionRate: result.Metrics.OverallConversionRate,
			StageCount:            result.Metrics.StageCount,
			EfficiencyScore:       result.Metrics.EfficiencyScore,
		},
	}
	for _, row := range result.Stages {
		view.Rows = append(view.Rows, pipelineapimodels.PlanRowView{
			StageID:        row.ID,
			StageName:      row.Name,
			StageOrder:     row.Order,
			ConversionRate: row.ConversionRate,
			TatDays:        row.TatDays,
			IsSpecial:      row.IsSpecial,
			RequiredCount:  row.RequiredCount,
			NeededByDate:   row.NeededByDate,
		})
	}

	if request.Save {
		rec := dbmodels.PipelinePlan{
			PipelineID:          pipeline.ID,
			TargetCount:         request.TargetCount,
			TargetDate:          request.TargetDate,
			SafetyBufferPercent: request.SafetyBufferPercent,
			TotalTatDays:        result.Metrics.TotalTatDays,
			OverallConversion:   result.Metrics.OverallConversionRate,
			CreatedBy:           request.CreatedBy,
		}
		for _, row := range result.Stages {
			rec.Rows = append(rec.Rows, dbmodels.PipelinePlanRow{
				StageID:        row.ID,
				StageName:      row.Name,
				StageOrder:     row.Order,
				ConversionRate: row.ConversionRate,
				TatDays:        row.TatDays,
				IsSpecial:      row.IsSpecial,
				RequiredCount:  row.RequiredCount,
				NeededByDate:   row.NeededByDate,
			})
		}
		id, err := i.store.Create(rec)
		if err != nil {
			return pipelineapimodels.PlanView{}, err
		}
		view.ID = id
	}

	return view, nil
}

func (i impl) Get(id string) (pipelineapimodels.PlanView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return pipelineapimodels.PlanView{}, err
	}
	if rec == nil {
		return pipelineapimodels.PlanView{}, errors.New("plan not found")
	}
	return pipelineapimodels.PlanConvert(*rec), nil
}

func (i impl) Find(request pipelineapimodels.PlanFind) ([]pipelineapimodels.PlanView, int64, error) {
	page, limit := request.GetPage()
	recList, rowCount, err := i.store.Find(request.PipelineID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]pipelineapimodels.PlanView, 0, len(recList))
	for _, rec := range recList {
		result = append(result, pipelineapimodels.PlanConvert(rec))
	}
	return result, rowCount, nil
}

func (i impl) Delete(id string) error {
	return i.store.Delete(id)
}
