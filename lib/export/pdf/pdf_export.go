package pdfexport

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
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

func (i impl) ExportPlan(plan pipelineapimodels.PlanView) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 14)
	title := "Pipeline plan"
	if plan.PipelineName != "" {
		title = fmt.Sprintf("Pipeline plan: %s", plan.PipelineName)
	}
	pdf.CellFormat(0, 10, title, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Target: %d", plan.TargetCount), "", 1, "L", false, 0, "")
	if plan.TargetDate != nil {
		pdf.CellFormat(0, 6, fmt.Sprintf("Target date: %s", plan.TargetDate.Format("02.01.2006")), "", 1, "L", false, 0, "")
	}
	pdf.CellFormat(0, 6, fmt.Sprintf("Total TAT: %d days, overall conversion: %.2f%%",
		plan.Metrics.TotalTatDays, plan.Metrics.OverallConversionRate), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	widths := []float64{55, 25, 30, 25, 30, 25}
	headers := []string{"Stage", "Order", "Conversion %", "TAT days", "Required", "Needed by"}
	pdf.SetFont("Helvetica", "B", 9)
	for k, header := range headers {
		pdf.CellFormat(widths[k], 7, header, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range plan.Rows {
		order := ""
		if !row.IsSpecial {
			order = fmt.Sprintf("%d", row.StageOrder)
		}
		required := ""
		if row.RequiredCount != nil {
			required = fmt.Sprintf("%d", *row.RequiredCount)
		}
		neededBy := ""
		if row.NeededByDate != nil {
			neededBy = row.NeededByDate.Format("02.01.2006")
		}
		cells := []string{
			row.StageName,
			order,
			fmt.Sprintf("%.1f", row.ConversionRate),
			fmt.Sprintf("%d", row.TatDays),
			required,
			neededBy,
		}
		for k, cell := range cells {
			pdf.CellFormat(widths[k], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to render the pdf")
	}
	return &buf, nil
}
