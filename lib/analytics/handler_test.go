package analytics

import (
	"testing"

	"github.com/stretchr/testify/require"
	"wfp-backend/models"
	dbmodels "wfp-backend/models/db"
)

func TestBuildReconcileRows(t *testing.T) {
	required := func(v int) *int { return &v }

	stages := []dbmodels.PipelineStage{
		{BaseModel: dbmodels.BaseModel{ID: "s1"}, Name: "Sourced", MapsToStatus: models.CandidateStatusSourced},
		{BaseModel: dbmodels.BaseModel{ID: "s2"}, Name: "On Boarded", MapsToStatus: models.CandidateStatusOnBoarded},
		{BaseModel: dbmodels.BaseModel{ID: "s3"}, Name: "Dropped", IsSpecial: true, MapsToStatus: models.CandidateStatusDropped},
	}
	planRows := []dbmodels.PipelinePlanRow{
		{StageID: "s1", StageName: "Sourced", RequiredCount: required(30)},
		{StageID: "s2", StageName: "On Boarded", RequiredCount: required(4)},
		{StageID: "s3", StageName: "Dropped", IsSpecial: true},
	}
	statusCounts := map[string]int64{
		"Sourced":    12,
		"On Boarded": 4,
		"Dropped":    7,
	}

	rows := BuildReconcileRows(planRows, stages, statusCounts)
	require.Equal(t, 3, len(rows))

	require.Equal(t, "Sourced", rows[0].StageName)
	require.Equal(t, int64(12), rows[0].ActualCount)
	require.NotNil(t, rows[0].Gap)
	require.Equal(t, int64(18), *rows[0].Gap)

	require.Equal(t, int64(4), rows[1].ActualCount)
	require.Equal(t, int64(0), *rows[1].Gap)

	// special stages report actuals but carry no target or gap
	require.Nil(t, rows[2].RequiredCount)
	require.Nil(t, rows[2].Gap)
	require.Equal(t, int64(7), rows[2].ActualCount)
}

func TestBuildReconcileRowsUnmappedStage(t *testing.T) {
	required := func(v int) *int { return &v }
	planRows := []dbmodels.PipelinePlanRow{
		{StageID: "missing", StageName: "Screening", RequiredCount: required(10)},
	}
	rows := BuildReconcileRows(planRows, nil, map[string]int64{"Screening": 3})
	require.Equal(t, 1, len(rows))
	require.Equal(t, "", rows[0].MappedStatus)
	require.Equal(t, int64(0), rows[0].ActualCount)
	require.Equal(t, int64(10), *rows[0].Gap)
}
