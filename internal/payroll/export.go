package payroll

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	payrollerrors "go-workforce/internal/payroll/errors"
	"go-workforce/internal/shared/apperror"

	"github.com/xuri/excelize/v2"
)

const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatXLSX = "xlsx"
	FormatPDF  = "pdf"
)

type ExportFile struct {
	Filename    string
	ContentType string
	Body        []byte
}

var exportHeader = []string{
	"member_id", "member_name", "currency", "base_salary",
	"worked_minutes", "scheduled_minutes", "extra_minutes", "short_minutes", "rate_basis_minutes",
	"overtime_amount", "short_deduction", "fines_total", "adjustments_total", "net_salary",
	"negative_net", "approved",
}

func exportRow(l LineResponse) []string {
	return []string{
		l.MemberID, l.MemberName, l.Currency, l.BaseSalary,
		strconv.Itoa(l.WorkedMinutes), strconv.Itoa(l.ScheduledMinutes),
		strconv.Itoa(l.ExtraMinutes), strconv.Itoa(l.ShortMinutes), strconv.Itoa(l.RateBasisMinutes),
		l.OvertimeAmount, l.ShortDeduction, l.FinesTotal, l.AdjustmentsTotal, l.NetSalary,
		strconv.FormatBool(l.NegativeNet), strconv.FormatBool(l.Approved),
	}
}

// Export renders the period's lines. It is a read-only projection.
func (s *service) Export(ctx context.Context, orgID, periodID, format string) (ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatCSV
	}

	period, err := s.GetPeriod(ctx, orgID, periodID)
	if err != nil {
		return ExportFile{}, err
	}
	lines, err := s.ListLines(ctx, orgID, periodID, ListLinesQuery{})
	if err != nil {
		return ExportFile{}, err
	}

	var (
		body        []byte
		contentType string
	)
	switch format {
	case FormatCSV:
		body, err = renderCSV(lines)
		contentType = "text/csv"
	case FormatJSON:
		body, err = json.MarshalIndent(struct {
			Period PeriodResponse `json:"period"`
			Lines  []LineResponse `json:"lines"`
		}{period, lines}, "", "  ")
		contentType = "application/json"
	case FormatXLSX:
		body, err = renderXLSX(period, lines)
		contentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case FormatPDF:
		body, err = renderPDF(period, lines)
		contentType = "application/pdf"
	default:
		return ExportFile{}, payrollerrors.ErrUnsupportedExportFormat
	}
	if err != nil {
		return ExportFile{}, apperror.Integrity(err)
	}

	return ExportFile{
		Filename:    fmt.Sprintf("%s.%s", period.Code, format),
		ContentType: contentType,
		Body:        body,
	}, nil
}

func renderCSV(lines []LineResponse) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for _, l := range lines {
		if err := w.Write(exportRow(l)); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

func renderXLSX(period PeriodResponse, lines []LineResponse) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := period.Code
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, err
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("%s  %s to %s  (%s)", period.Code, period.PeriodStart, period.PeriodEnd, period.Status)
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return nil, err
	}
	for i, h := range exportHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 2)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(exportHeader), 2)
	if err := f.SetCellStyle(sheet, "A2", last, headerStyle); err != nil {
		return nil, err
	}

	for r, l := range lines {
		for c, v := range exportRow(l) {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+3)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderPDF(period PeriodResponse, lines []LineResponse) ([]byte, error) {
	text := []string{
		fmt.Sprintf("Payroll %s", period.Code),
		fmt.Sprintf("Period %s to %s, status %s", period.PeriodStart, period.PeriodEnd, period.Status),
		"",
	}
	for _, l := range lines {
		name := l.MemberName
		if name == "" {
			name = l.MemberID
		}
		text = append(text, fmt.Sprintf("%s  base %s  overtime %s  short %s  fines %s  adj %s  net %s %s",
			name, l.BaseSalary, l.OvertimeAmount, l.ShortDeduction,
			l.FinesTotal, l.AdjustmentsTotal, l.NetSalary, l.Currency))
	}
	return buildTextPDF(text, linesPerPage)
}
