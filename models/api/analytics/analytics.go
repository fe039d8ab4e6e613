package analyticsapimodels

type FunnelMetricsView struct {
	PipelineID            string  `json:"pipeline_id"`
	PipelineName          string  `json:"pipeline_name"`
	TotalTatDays          int     `json:"total_tat_days"`
	AverageConversionRate float64 `json:"average_conversion_rate"`
	OverallConversionRate float64 `json:"overall_conversion_rate"`
	StageCount            int     `json:"stage_count"`
	EfficiencyScore       float64 `json:"efficiency_score"`
}

// ReconcileRow matches a computed stage target against the actual number of
// candidates currently sitting in the mapped tracking status.
type ReconcileRow struct {
	StageName     string `json:"stage_name"`
	MappedStatus  string `json:"mapped_status"`
	RequiredCount *int   `json:"required_count,omitempty"`
	ActualCount   int64  `json:"actual_count"`
	Gap           *int64 `json:"gap,omitempty"` // required - actual, nil for special stages
}

type ReconcileView struct {
	PlanID string         `json:"plan_id"`
	Rows   []ReconcileRow `json:"rows"`
}

type BenchmarkView struct {
	Practice          string  `json:"practice"`
	AvgTatDays        int     `json:"avg_tat_days"`
	AvgConversionRate float64 `json:"avg_conversion_rate"`
	TypicalStages     int     `json:"typical_stages"`
}

type DemandSupplyRow struct {
	ClientID        string `json:"client_id"`
	ClientName      string `json:"client_name"`
	DemandHeadcount int64  `json:"demand_headcount"`
	SupplyInFunnel  int64  `json:"supply_in_funnel"`
	OnBoarded       int64  `json:"on_boarded"`
}
