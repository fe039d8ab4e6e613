package xlsimport

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStageRows(t *testing.T) {
	rows := [][]string{
		{"Name", "Order", "Conversion", "TAT", "Special", "Status", "Description"},
		{"Sourced", "1", "50", "5", "", "Sourced", "Profiles added"},
		{"On Boarded", "2", "90.5", "10", "0", "On Boarded", ""},
		{"Dropped", "-1", "0", "0", "1", "Dropped", "Left the process"},
		{"", "", "", ""},
	}
	stages, err := ParseStageRows(rows)
	require.Nil(t, err)
	require.Equal(t, 3, len(stages))

	require.Equal(t, "Sourced", stages[0].Name)
	require.Equal(t, 1, stages[0].StageOrder)
	require.Equal(t, 50.0, stages[0].ConversionRate)
	require.Equal(t, 5, stages[0].TatDays)
	require.Equal(t, false, stages[0].IsSpecial)

	require.Equal(t, 90.5, stages[1].ConversionRate)

	require.Equal(t, true, stages[2].IsSpecial)
}

func TestParseStageRowsErrors(t *testing.T) {
	t.Run(`bad order`, func(t *testing.T) {
		rows := [][]string{
			{"Name", "Order", "Conversion", "TAT"},
			{"Sourced", "first", "50", "5"},
		}
		_, err := ParseStageRows(rows)
		require.NotNil(t, err)
	})

	t.Run(`rate out of range`, func(t *testing.T) {
		rows := [][]string{
			{"Name", "Order", "Conversion", "TAT"},
			{"Sourced", "1", "120", "5"},
		}
		_, err := ParseStageRows(rows)
		require.NotNil(t, err)
	})

	t.Run(`short row`, func(t *testing.T) {
		rows := [][]string{
			{"Name", "Order", "Conversion", "TAT"},
			{"Sourced", "1"},
		}
		_, err := ParseStageRows(rows)
		require.NotNil(t, err)
	})
}

func TestParseStaffingRows(t *testing.T) {
	rows := [][]string{
		{"Client", "Role", "Headcount", "NeedBy", "Priority", "Notes"},
		{"client-1", "Go Engineer", "4", "2025-06-30", "1", "urgent"},
		{"client-2", "Data Analyst", "2", "2025-09-15", "", ""},
	}
	plans, err := ParseStaffingRows(rows)
	require.Nil(t, err)
	require.Equal(t, 2, len(plans))
	require.Equal(t, "Go Engineer", plans[0].RoleTitle)
	require.Equal(t, 4, plans[0].Headcount)
	require.Equal(t, 1, plans[0].Priority)
	require.Equal(t, 2025, plans[1].NeedByDate.Year())
	require.Equal(t, 0, plans[1].Priority)
}

func TestParseStaffingRowsErrors(t *testing.T) {
	t.Run(`bad date`, func(t *testing.T) {
		rows := [][]string{
			{"Client", "Role", "Headcount", "NeedBy"},
			{"client-1", "Go Engineer", "4", "30.06.2025"},
		}
		_, err := ParseStaffingRows(rows)
		require.NotNil(t, err)
	})

	t.Run(`zero headcount`, func(t *testing.T) {
		rows := [][]string{
			{"Client", "Role", "Headcount", "NeedBy"},
			{"client-1", "Go Engineer", "0", "2025-06-30"},
		}
		_, err := ParseStaffingRows(rows)
		require.NotNil(t, err)
	})
}
