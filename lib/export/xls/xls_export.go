package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
	pipelineapimodels "wfp-backend/models/api/pipeline"
)

type Provider interface {
	ExportPlan(plan pipelineapimodels.PlanView) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var planHeaders = []string{"Stage", "Order", "Conversion %", "TAT days", "Required candidates", "Needed by"}

func (i impl) ExportPlan(plan pipelineapimodels.PlanView) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the workbook")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, planHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the header")
	}
	for _, item := range plan.Rows {
		row++
		// "Stage"
		col := 1
		if err := writeColumn(f, sheet, col, row, item.StageName); err != nil {
			return nil, err
		}

		// "Order"
		col++
		if !item.IsSpecial {
			if err := writeColumn(f, sheet, col, row, item.StageOrder); err != nil {
				return nil, err
			}
		}

		// "Conversion %"
		col++
		if err := writeColumn(f, sheet, col, row, item.ConversionRate); err != nil {
			return nil, err
		}

		// "TAT days"
		col++
		if err := writeColumn(f, sheet, col, row, item.TatDays); err != nil {
			return nil, err
		}

		// "Required candidates"
		col++
		if item.RequiredCount != nil {
			if err := writeColumn(f, sheet, col, row, *item.RequiredCount); err != nil {
				return nil, err
			}
		}

		// "Needed by"
		col++
		if item.NeededByDate != nil {
			if err := writeColumn(f, sheet, col, row, item.NeededByDate.Format("02.01.2006")); err != nil {
				return nil, err
			}
		}
	}
	f.SetSheetName(sheet, "Pipeline plan")
	return f.WriteToBuffer()
}
