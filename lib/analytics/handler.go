package analytics

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"wfp-backend/db"
	candidatestore "wfp-backend/lib/candidate/store"
	pipelinecalc "wfp-backend/lib/pipeline-calc"
	planstore "wfp-backend/lib/pipeline-plan/store"
	pipelinestore "wfp-backend/lib/pipeline/store"
	staffingstore "wfp-backend/lib/staffing/store"
	initchecker "wfp-backend/lib/utils/init-checker"
	"wfp-backend/models"
	analyticsapimodels "wfp-backend/models/api/analytics"
	dbmodels "wfp-backend/models/db"
)

type Provider interface {
	FunnelMetrics(pipelineID string) (analyticsapimodels.FunnelMetricsView, error)
	Reconcile(planID string) (analyticsapimodels.ReconcileView, error)
	DemandSupply() ([]analyticsapimodels.DemandSupplyRow, error)
	Benchmarks() []analyticsapimodels.BenchmarkView
}

var Instance Provider

func NewHandler() {
	instance := impl{
		db:             db.DB,
		pipelineStore:  pipelinestore.NewInstance(db.DB),
		planStore:      planstore.NewInstance(db.DB),
		candidateStore: candidatestore.NewInstance(db.DB),
		staffingStore:  staffingstore.NewInstance(db.DB),
	}
	initchecker.CheckInit(
		"pipelineStore", instance.pipelineStore,
		"planStore", instance.planStore,
		"candidateStore", instance.candidateStore,
		"staffingStore", instance.staffingStore,
	)
	Instance = instance
}

type impl struct {
	db             *gorm.DB
	pipelineStore  pipelinestore.Provider
	planStore      planstore.Provider
	candidateStore candidatestore.Provider
	staffingStore  staffingstore.Provider
}

// FunnelMetrics reuses the calculator's metric derivation over the stored
// stage set without running the count chain.
func (i impl) FunnelMetrics(pipelineID string) (analyticsapimodels.FunnelMetricsView, error) {
	pipeline, err := i.pipelineStore.GetByID(pipelineID)
	if err != nil {
		return analyticsapimodels.FunnelMetricsView{}, err
	}
	if pipeline == nil {
		return analyticsapimodels.FunnelMetricsView{}, errors.New("pipeline not found")
	}
	calcStages := make([]pipelinecalc.Stage, 0, len(pipeline.Stages))
	for _, stage := range pipeline.Stages {
		calcStages = append(calcStages, pipelinecalc.Stage{
			Name:           stage.Name,
			Order:          stage.StageOrder,
			ConversionRate: stage.ConversionRate,
			TatDays:        stage.TatDays,
			IsSpecial:      stage.IsSpecial,
		})
	}
	result, err := pipelinecalc.Calculate(pipelinecalc.Request{Stages: calcStages, TargetCount: 1})
	if err != nil {
		return analyticsapimodels.FunnelMetricsView{}, err
	}
	return analyticsapimodels.FunnelMetricsView{
		PipelineID:            pipeline.ID,
		PipelineName:          pipeline.Name,
		TotalTatDays:          result.Metrics.TotalTatDays,
		AverageConversionRate: result.Metrics.AverageConversionRate,
		OverallConversionRate: result.Metrics.OverallConversionRate,
		StageCount:            result.Metrics.StageCount,
		EfficiencyScore:       result.Metrics.EfficiencyScore,
	}, nil
}

// Reconcile matches a saved plan's stage targets against the actual number
// of candidates sitting in each mapped tracking status.
func (i impl) Reconcile(planID string) (analyticsapimodels.ReconcileView, error) {
	plan, err := i.planStore.GetByID(planID)
	if err != nil {
		return analyticsapimodels.ReconcileView{}, err
	}
	if plan == nil {
		return analyticsapimodels.ReconcileView{}, errors.New("plan not found")
	}
	stages, err := i.pipelineStore.GetStages(plan.PipelineID)
	if err != nil {
		return analyticsapimodels.ReconcileView{}, err
	}
	statusCounts, err := i.candidateStore.CountByStatus(plan.PipelineID)
	if err != nil {
		return analyticsapimodels.ReconcileView{}, err
	}
	return analyticsapimodels.ReconcileView{
		PlanID: planID,
		Rows:   BuildReconcileRows(plan.Rows, stages, statusCounts),
	}, nil
}

// BuildReconcileRows is the pure part of Reconcile, split out for tests.
func BuildReconcileRows(planRows []dbmodels.PipelinePlanRow, stages []dbmodels.PipelineStage, statusCounts map[string]int64) []analyticsapimodels.ReconcileRow {
	statusByStage := make(map[string]models.CandidateStatus, len(stages))
	for _, stage := range stages {
		statusByStage[stage.ID] = stage.MapsToStatus
	}
	rows := make([]analyticsapimodels.ReconcileRow, 0, len(planRows))
	for _, planRow := range planRows {
		status := statusByStage[planRow.StageID]
		row := analyticsapimodels.ReconcileRow{
			StageName:     planRow.StageName,
			MappedStatus:  string(status),
			RequiredCount: planRow.RequiredCount,
			ActualCount:   statusCounts[string(status)],
		}
		if planRow.RequiredCount != nil {
			gap := int64(*planRow.RequiredCount) - row.ActualCount
			row.Gap = &gap
		}
		rows = append(rows, row)
	}
	return rows
}

func (i impl) DemandSupply() ([]analyticsapimodels.DemandSupplyRow, error) {
	demand, err := i.staffingStore.DemandByClient()
	if err != nil {
		return nil, err
	}
	supply, err := i.supplyByClient()
	if err != nil {
		return nil, err
	}
	rows := make([]analyticsapimodels.DemandSupplyRow, 0, len(demand))
	for _, d := range demand {
		row := analyticsapimodels.DemandSupplyRow{
			ClientID:        d.ClientID,
			ClientName:      d.ClientName,
			DemandHeadcount: d.Headcount,
		}
		if s, ok := supply[d.ClientID]; ok {
			row.SupplyInFunnel = s.inFunnel
			row.OnBoarded = s.onBoarded
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type clientSupply struct {
	inFunnel  int64
	onBoarded int64
}

func (i impl) supplyByClient() (map[string]clientSupply, error) {
	var rows []struct {
		ClientID string
		Status   string
		Count    int64
	}
	err := i.db.
		Model(dbmodels.Candidate{}).
		Select("talent_pipelines.client_id, candidates.status, COUNT(*) as count").
		Joins("JOIN talent_pipelines ON talent_pipelines.id = candidates.pipeline_id").
		Group("talent_pipelines.client_id, candidates.status").
		Scan(&rows).
		Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate supply by client")
	}
	result := make(map[string]clientSupply)
	for _, row := range rows {
		s := result[row.ClientID]
		status := models.CandidateStatus(row.Status)
		switch {
		case status == models.CandidateStatusOnBoarded:
			s.onBoarded += row.Count
		case !status.IsTerminalExit():
			s.inFunnel += row.Count
		}
		result[row.ClientID] = s
	}
	return result, nil
}

// Benchmarks is reference data for the dashboard, per practice area.
func (i impl) Benchmarks() []analyticsapimodels.BenchmarkView {
	return []analyticsapimodels.BenchmarkView{
		{Practice: "Software Engineering", AvgTatDays: 32, AvgConversionRate: 65, TypicalStages: 4},
		{Practice: "Data Science", AvgTatDays: 28, AvgConversionRate: 58, TypicalStages: 5},
		{Practice: "Sales", AvgTatDays: 25, AvgConversionRate: 72, TypicalStages: 3},
		{Practice: "Marketing", AvgTatDays: 30, AvgConversionRate: 68, TypicalStages: 4},
		{Practice: "Product Management", AvgTatDays: 35, AvgConversionRate: 62, TypicalStages: 4},
	}
}
