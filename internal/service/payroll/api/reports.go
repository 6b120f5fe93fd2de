/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"k8s.io/utils/ptr"

	"github.com/epms-project/epms/internal/service/common/api/middleware"
	"github.com/epms-project/epms/internal/service/payroll/api/types"
	"github.com/epms-project/epms/internal/service/payroll/db/models"
)

// Content types of the exported spreadsheets
const (
	csvContentType  = "text/csv; charset=utf-8"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// reportSheet is the name of the worksheet holding the exported report
const reportSheet = "Payroll"

var reportHeader = []string{"First Name", "Last Name", "Position", "Department", "Net Salary", "Month"}

// monthParam returns the optional month query parameter.  ok is false when a malformed value was given, in which case
// the response has already been written.
func monthParam(w http.ResponseWriter, r *http.Request) (month *string, ok bool) {
	value := r.URL.Query().Get("month")
	if value == "" {
		return nil, true
	}
	if !monthPattern.MatchString(value) {
		badRequest(w, fmt.Sprintf("month '%s' must use the YYYY-MM format", value))
		return nil, false
	}
	return ptr.To(value), true
}

// GetPayrollReport receives the API request to this endpoint, executes the request, and responds appropriately
func (s *PayrollServer) GetPayrollReport(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}

	records, err := s.Repo.GetPayrollReport(r.Context(), month)
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to get payroll report: %w", err), "report")
		return
	}

	objects := make([]types.ReportRow, len(records))
	for i, record := range records {
		objects[i] = models.ReportRowToModel(&record)
	}
	writeJSON(w, r, http.StatusOK, objects)
}

// ExportPayrollReport receives the API request to this endpoint, executes the request, and responds with the report
// as a CSV or XLSX attachment that ends with the total net salary
func (s *PayrollServer) ExportPayrollReport(w http.ResponseWriter, r *http.Request) {
	month, ok := monthParam(w, r)
	if !ok {
		return
	}
	format := types.ExportFormat(r.URL.Query().Get("format"))
	if format == "" {
		format = types.Xlsx
	}
	if format != types.Xlsx && format != types.Csv {
		badRequest(w, fmt.Sprintf("unsupported export format '%s'", format))
		return
	}

	records, err := s.Repo.GetPayrollReport(r.Context(), month)
	if err != nil {
		respondError(w, r, fmt.Errorf("failed to get payroll report: %w", err), "report")
		return
	}

	var (
		buffer      bytes.Buffer
		contentType string
	)
	switch format {
	case types.Csv:
		contentType = csvContentType
		err = writeReportCSV(&buffer, records)
	default:
		contentType = xlsxContentType
		err = writeReportXLSX(&buffer, records)
	}
	if err != nil {
		slog.ErrorContext(r.Context(), "failed to render report", "format", format, "error", err)
		middleware.ProblemDetails(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	period := "all"
	if month != nil {
		period = *month
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="payroll-report-%s.%s"`, period, format))
	w.Header().Set("Content-Length", strconv.Itoa(buffer.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buffer.WriteTo(w); err != nil {
		slog.WarnContext(r.Context(), "failed to write report", "error", err)
	}
}

// totalNetSalary sums the net salary of the rows
func totalNetSalary(records []models.ReportRow) float64 {
	var total float64
	for _, record := range records {
		total += record.NetSalary
	}
	return roundCents(total)
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// csvText quotes text that spreadsheet programs would otherwise evaluate as a formula
func csvText(value string) string {
	if value != "" && strings.ContainsRune("=+-@\t\r", rune(value[0])) {
		return "'" + value
	}
	return value
}

func writeReportCSV(buffer *bytes.Buffer, records []models.ReportRow) error {
	writer := csv.NewWriter(buffer)
	if err := writer.Write(reportHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write([]string{
			csvText(record.FirstName), csvText(record.LastName), csvText(record.Position),
			csvText(record.DepartmentName), formatAmount(record.NetSalary), record.Month,
		}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}
	if err := writer.Write([]string{"Total", "", "", "", formatAmount(totalNetSalary(records)), ""}); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}
	writer.Flush()
	return writer.Error() //nolint:wrapcheck
}

func writeReportXLSX(buffer *bytes.Buffer, records []models.ReportRow) (err error) {
	file := excelize.NewFile()
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close workbook: %w", closeErr)
		}
	}()

	if err = file.SetSheetName("Sheet1", reportSheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]any, len(reportHeader))
	for i, title := range reportHeader {
		header[i] = title
	}
	if err = file.SetSheetRow(reportSheet, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, record := range records {
		cell, cellErr := excelize.CoordinatesToCellName(1, i+2)
		if cellErr != nil {
			return fmt.Errorf("failed to compute cell name: %w", cellErr)
		}
		row := []any{
			record.FirstName, record.LastName, record.Position, record.DepartmentName,
			record.NetSalary, record.Month,
		}
		if err = file.SetSheetRow(reportSheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	totalRow := len(records) + 2
	totalCell, err := excelize.CoordinatesToCellName(1, totalRow)
	if err != nil {
		return fmt.Errorf("failed to compute cell name: %w", err)
	}
	total := []any{"Total", nil, nil, nil, totalNetSalary(records)}
	if err = file.SetSheetRow(reportSheet, totalCell, &total); err != nil {
		return fmt.Errorf("failed to write total: %w", err)
	}

	bold, err := file.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err = file.SetRowStyle(reportSheet, 1, 1, bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err = file.SetRowStyle(reportSheet, totalRow, totalRow, bold); err != nil {
		return fmt.Errorf("failed to style total: %w", err)
	}
	amount, err := file.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err = file.SetCellStyle(reportSheet, "E2", fmt.Sprintf("E%d", totalRow), amount); err != nil {
		return fmt.Errorf("failed to style amounts: %w", err)
	}
	if err = file.SetColWidth(reportSheet, "A", "F", 18); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	if _, err = file.WriteTo(buffer); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
