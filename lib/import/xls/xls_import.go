package xlsimport

import (
	"bytes"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	filestorage "wfp-backend/lib/file-storage"
	pipelineprovider "wfp-backend/lib/pipeline"
	staffingprovider "wfp-backend/lib/staffing"
	"wfp-backend/lib/utils/helpers"
	initchecker "wfp-backend/lib/utils/init-checker"
	"wfp-backend/models"
	pipelineapimodels "wfp-backend/models/api/pipeline"
	staffingapimodels "wfp-backend/models/api/staffing"
)

type Provider interface {
	ImportStages(ctx context.Context, pipelineID, fileName string, file []byte) (imported int, err error)
	ImportStaffing(ctx context.Context, fileName string, file []byte) (imported int, err error)
}

var Instance Provider

func NewHandler() {
	instance := impl{}
	initchecker.CheckInit(
		"pipeline provider", pipelineprovider.Instance,
		"staffing provider", staffingprovider.Instance,
	)
	Instance = instance
}

type impl struct{}

// Stage workbook layout: Name | Order | Conversion % | TAT days | Special | Maps to status | Description.
// First row is the header.
func (i impl) ImportStages(ctx context.Context, pipelineID, fileName string, file []byte) (int, error) {
	rows, err := readFirstSheet(file)
	if err != nil {
		return 0, err
	}
	stages, err := ParseStageRows(rows)
	if err != nil {
		return 0, err
	}
	for _, stage := range stages {
		if helpers.IsContextDone(ctx) {
			return 0, errors.New("import cancelled")
		}
		if _, err := pipelineprovider.Instance.AddStage(pipelineID, stage); err != nil {
			return 0, errors.Wrapf(err, "row with stage %q", stage.Name)
		}
	}
	archive(ctx, "import-stages", fileName, file)
	return len(stages), nil
}

// Staffing workbook layout: Client ID | Role | Headcount | Need-by date | Priority | Notes.
func (i impl) ImportStaffing(ctx context.Context, fileName string, file []byte) (int, error) {
	rows, err := readFirstSheet(file)
	if err != nil {
		return 0, err
	}
	plans, err := ParseStaffingRows(rows)
	if err != nil {
		return 0, err
	}
	for _, plan := range plans {
		if helpers.IsContextDone(ctx) {
			return 0, errors.New("import cancelled")
		}
		if _, err := staffingprovider.Instance.Create(plan); err != nil {
			return 0, errors.Wrapf(err, "row with role %q", plan.RoleTitle)
		}
	}
	archive(ctx, "import-staffing", fileName, file)
	return len(plans), nil
}

func readFirstSheet(file []byte) ([][]string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(file))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open the workbook")
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the workbook")
		}
	}()
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("the workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, errors.Wrap(err, "failed to read the sheet")
	}
	return rows, nil
}

func ParseStageRows(rows [][]string) ([]pipelineapimodels.StageData, error) {
	result := make([]pipelineapimodels.StageData, 0, len(rows))
	for k, row := range rows {
		if k == 0 || isEmptyRow(row) {
			continue
		}
		if len(row) < 4 {
			return nil, errors.Errorf("row %d: expected at least 4 columns, got %d", k+1, len(row))
		}
		order, err := strconv.Atoi(strings.TrimSpace(row[1]))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad stage order", k+1)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(row[2]), 64)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad conversion rate", k+1)
		}
		tat, err := strconv.Atoi(strings.TrimSpace(row[3]))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad turnaround time", k+1)
		}
		stage := pipelineapimodels.StageData{
			Name:           strings.TrimSpace(row[0]),
			StageOrder:     order,
			ConversionRate: rate,
			TatDays:        tat,
		}
		if len(row) > 4 {
			stage.IsSpecial = parseBoolCell(row[4])
		}
		if len(row) > 5 {
			stage.MapsToStatus = models.CandidateStatus(strings.TrimSpace(row[5]))
		}
		if len(row) > 6 {
			stage.Description = strings.TrimSpace(row[6])
		}
		if err := stage.Validate(); err != nil {
			return nil, errors.Wrapf(err, "row %d", k+1)
		}
		result = append(result, stage)
	}
	return result, nil
}

func ParseStaffingRows(rows [][]string) ([]staffingapimodels.StaffingPlanData, error) {
	result := make([]staffingapimodels.StaffingPlanData, 0, len(rows))
	for k, row := range rows {
		if k == 0 || isEmptyRow(row) {
			continue
		}
		if len(row) < 4 {
			return nil, errors.Errorf("row %d: expected at least 4 columns, got %d", k+1, len(row))
		}
		headcount, err := strconv.Atoi(strings.TrimSpace(row[2]))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad headcount", k+1)
		}
		needBy, err := time.Parse("2006-01-02", strings.TrimSpace(row[3]))
		if err != nil {
			return nil, errors.Wrapf(err, "row %d: bad need-by date", k+1)
		}
		plan := staffingapimodels.StaffingPlanData{
			ClientID:   strings.TrimSpace(row[0]),
			RoleTitle:  strings.TrimSpace(row[1]),
			Headcount:  headcount,
			NeedByDate: needBy,
		}
		if len(row) > 4 && strings.TrimSpace(row[4]) != "" {
			priority, err := strconv.Atoi(strings.TrimSpace(row[4]))
			if err != nil {
				return nil, errors.Wrapf(err, "row %d: bad priority", k+1)
			}
			plan.Priority = priority
		}
		if len(row) > 5 {
			plan.Notes = strings.TrimSpace(row[5])
		}
		if err := plan.Validate(); err != nil {
			return nil, errors.Wrapf(err, "row %d", k+1)
		}
		result = append(result, plan)
	}
	return result, nil
}

func parseBoolCell(cell string) bool {
	switch strings.ToLower(strings.TrimSpace(cell)) {
	case "1", "true", "yes", "y":
		return true
	}
	return false
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// archive keeps the uploaded workbook for audit, failures are logged only.
func archive(ctx context.Context, kind, fileName string, file []byte) {
	if filestorage.Instance == nil {
		return
	}
	if _, err := filestorage.Instance.UploadImportFile(ctx, kind, fileName, file); err != nil {
		log.WithError(err).WithField("file", fileName).Warn("failed to archive the import file")
	}
}
