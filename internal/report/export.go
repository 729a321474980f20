// Package report turns report datasets into styled, protected xlsx workbooks.
package report

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"memorial-park-svc/internal/models"
)

// Workbook layout
const (
	BannerRows = 3
	HeaderRow  = 5
	FirstRow   = 6

	currencyFormat = `"₱"#,##0.00`
	totalLabel     = "TOTAL"
	inventoryKind  = "inventory"
)

// Options carries the banner text
type Options struct {
	CompanyName string
	Filters     string
	GeneratedAt time.Time
}

type styles struct {
	company, title, meta    int
	header                  int
	text, number, currency  int
	totalText, totalNumber  int
	totalCurrency, totalPct int
}

// Export builds the workbook and returns its bytes and download filename
func Export(ds models.ReportDataset, opts Options) ([]byte, string, error) {
	if len(ds.Headers) == 0 {
		return nil, "", fmt.Errorf("report %q has no columns", ds.Kind)
	}
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := SheetName(ds.Title)
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if f.GetSheetName(0) == "Sheet1" && sheet != "Sheet1" {
		if err := f.DeleteSheet("Sheet1"); err != nil {
			return nil, "", fmt.Errorf("failed to delete default sheet: %w", err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		return nil, "", err
	}

	cols := len(ds.Headers)
	lastCol, _ := excelize.ColumnNumberToName(cols)

	if err := writeBanner(f, sheet, lastCol, ds, opts, st); err != nil {
		return nil, "", err
	}
	if err := writeHeaders(f, sheet, ds.Headers, st); err != nil {
		return nil, "", err
	}
	if err := writeRows(f, sheet, ds, st); err != nil {
		return nil, "", err
	}
	if len(ds.Rows) > 0 {
		if err := writeTotals(f, sheet, ds, st); err != nil {
			return nil, "", err
		}
	}

	for i, h := range ds.Headers {
		col, _ := excelize.ColumnNumberToName(i + 1)
		width := float64(len(h) + 4)
		if width < 14 {
			width = 14
		}
		if width > 40 {
			width = 40
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return nil, "", fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := f.ProtectSheet(sheet, &excelize.SheetProtectionOptions{
		SelectLockedCells:   true,
		SelectUnlockedCells: true,
	}); err != nil {
		return nil, "", fmt.Errorf("failed to protect sheet: %w", err)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to write Excel file: %w", err)
	}
	return buffer.Bytes(), Filename(ds.Kind, opts.GeneratedAt), nil
}

// Filename returns <kind>_report_<timestamp>.xlsx
func Filename(kind string, at time.Time) string {
	if kind == "" {
		kind = "custom"
	}
	return fmt.Sprintf("%s_report_%s.xlsx", kind, at.Format("20060102_150405"))
}

var invalidSheetChars = regexp.MustCompile(`[\\/?*\[\]:]`)

// SheetName makes a report title usable as a sheet name
func SheetName(title string) string {
	name := strings.Join(strings.Fields(invalidSheetChars.ReplaceAllString(title, " ")), " ")
	if name == "" {
		return "Report"
	}
	if r := []rune(name); len(r) > 31 {
		name = string(r[:31])
	}
	return name
}

// DescribeFilters renders the banner's filter summary
func DescribeFilters(filter models.ReportFilter) string {
	parts := make([]string, 0, 5)
	add := func(label, v string) {
		if v != "" {
			parts = append(parts, label+": "+v)
		}
	}
	add("From", filter.From)
	add("To", filter.To)
	add("Garden", filter.Garden)
	add("Section", filter.Section)
	add("Granularity", filter.Granularity)
	if len(parts) == 0 {
		return "All records"
	}
	return strings.Join(parts, ", ")
}

func newStyles(f *excelize.File) (styles, error) {
	var st styles
	currency := currencyFormat
	border := []excelize.Border{
		{Type: "left", Color: "#BFBFBF", Style: 1},
		{Type: "right", Color: "#BFBFBF", Style: 1},
		{Type: "top", Color: "#BFBFBF", Style: 1},
		{Type: "bottom", Color: "#BFBFBF", Style: 1},
	}
	totalBorder := append([]excelize.Border{}, border...)
	totalBorder[2] = excelize.Border{Type: "top", Color: "#000000", Style: 2}

	defs := []struct {
		dst   *int
		style *excelize.Style
	}{
		{&st.company, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}, Alignment: &excelize.Alignment{Horizontal: "center"}}},
		{&st.title, &excelize.Style{Font: &excelize.Font{Bold: true, Size: 13}, Alignment: &excelize.Alignment{Horizontal: "center"}}},
		{&st.meta, &excelize.Style{Font: &excelize.Font{Italic: true, Size: 10, Color: "#595959"}, Alignment: &excelize.Alignment{Horizontal: "center"}}},
		{&st.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#D3D3D3"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    border,
		}},
		{&st.text, &excelize.Style{Alignment: &excelize.Alignment{Horizontal: "left"}, Border: border}},
		{&st.number, &excelize.Style{NumFmt: 3, Alignment: &excelize.Alignment{Horizontal: "right"}, Border: border}},
		{&st.currency, &excelize.Style{CustomNumFmt: &currency, Alignment: &excelize.Alignment{Horizontal: "right"}, Border: border}},
		{&st.totalText, &excelize.Style{Font: &excelize.Font{Bold: true}, Alignment: &excelize.Alignment{Horizontal: "left"}, Border: totalBorder}},
		{&st.totalNumber, &excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 3, Alignment: &excelize.Alignment{Horizontal: "right"}, Border: totalBorder}},
		{&st.totalCurrency, &excelize.Style{Font: &excelize.Font{Bold: true}, CustomNumFmt: &currency, Alignment: &excelize.Alignment{Horizontal: "right"}, Border: totalBorder}},
		{&st.totalPct, &excelize.Style{Font: &excelize.Font{Bold: true}, NumFmt: 10, Alignment: &excelize.Alignment{Horizontal: "right"}, Border: totalBorder}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return st, fmt.Errorf("failed to create style: %w", err)
		}
		*d.dst = id
	}
	return st, nil
}

func writeBanner(f *excelize.File, sheet, lastCol string, ds models.ReportDataset, opts Options, st styles) error {
	title := ds.Title
	if title == "" && ds.Kind != "" {
		title = strings.ToUpper(ds.Kind[:1]) + ds.Kind[1:] + " Report"
	}
	lines := []struct {
		text  string
		style int
	}{
		{opts.CompanyName, st.company},
		{title, st.title},
		{fmt.Sprintf("Filters: %s | Generated: %s", opts.Filters, opts.GeneratedAt.Format("Jan 02, 2006 03:04 PM")), st.meta},
	}
	for i, l := range lines {
		row := i + 1
		first := fmt.Sprintf("A%d", row)
		last := fmt.Sprintf("%s%d", lastCol, row)
		if err := f.SetCellValue(sheet, first, l.text); err != nil {
			return fmt.Errorf("failed to write banner: %w", err)
		}
		if first != last {
			if err := f.MergeCell(sheet, first, last); err != nil {
				return fmt.Errorf("failed to merge banner: %w", err)
			}
		}
		if err := f.SetCellStyle(sheet, first, last, l.style); err != nil {
			return fmt.Errorf("failed to style banner: %w", err)
		}
	}
	return nil
}

func writeHeaders(f *excelize.File, sheet string, headers []string, st styles) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, HeaderRow)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}
	first, _ := excelize.CoordinatesToCellName(1, HeaderRow)
	last, _ := excelize.CoordinatesToCellName(len(headers), HeaderRow)
	if err := f.SetCellStyle(sheet, first, last, st.header); err != nil {
		return fmt.Errorf("failed to style headers: %w", err)
	}
	return nil
}

func writeRows(f *excelize.File, sheet string, ds models.ReportDataset, st styles) error {
	for r, row := range ds.Rows {
		for c, h := range ds.Headers {
			cell, _ := excelize.CoordinatesToCellName(c+1, FirstRow+r)

			var v interface{}
			if c < len(row) {
				v = row[c]
			}
			num, isNum := numeric(v, IsSummable(h) || IsCurrency(h))

			style := st.text
			switch {
			case isNum && IsCurrency(h):
				style = st.currency
			case isNum:
				style = st.number
			}

			var err error
			if isNum {
				err = f.SetCellValue(sheet, cell, num)
			} else if v != nil {
				err = f.SetCellValue(sheet, cell, fmt.Sprint(v))
			}
			if err != nil {
				return fmt.Errorf("failed to write cell %s: %w", cell, err)
			}
			if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
				return fmt.Errorf("failed to style cell %s: %w", cell, err)
			}
		}
	}
	return nil
}

func writeTotals(f *excelize.File, sheet string, ds models.ReportDataset, st styles) error {
	totalRow := FirstRow + len(ds.Rows)
	lastData := totalRow - 1

	cellAt := func(col int) string {
		cell, _ := excelize.CoordinatesToCellName(col+1, totalRow)
		return cell
	}

	if err := f.SetCellValue(sheet, cellAt(0), totalLabel); err != nil {
		return fmt.Errorf("failed to write totals label: %w", err)
	}
	if err := f.SetCellStyle(sheet, cellAt(0), cellAt(0), st.totalText); err != nil {
		return err
	}

	for c, h := range ds.Headers {
		if c == 0 {
			continue
		}
		cell := cellAt(c)
		style := st.totalText
		if IsSummable(h) {
			col, _ := excelize.ColumnNumberToName(c + 1)
			formula := fmt.Sprintf("SUM(%s%d:%s%d)", col, FirstRow, col, lastData)
			if err := f.SetCellFormula(sheet, cell, formula); err != nil {
				return fmt.Errorf("failed to write total formula: %w", err)
			}
			style = st.totalNumber
			if IsCurrency(h) {
				style = st.totalCurrency
			}
		}
		if err := f.SetCellStyle(sheet, cell, cell, style); err != nil {
			return err
		}
	}

	if strings.EqualFold(ds.Kind, inventoryKind) {
		rate, num, den := occupancyColumns(ds.Headers)
		if rate > 0 && num >= 0 && den >= 0 {
			numCell, denCell := cellAt(num), cellAt(den)
			formula := fmt.Sprintf("IF(%s=0,0,%s/%s)", denCell, numCell, denCell)
			if err := f.SetCellFormula(sheet, cellAt(rate), formula); err != nil {
				return fmt.Errorf("failed to write occupancy formula: %w", err)
			}
			if err := f.SetCellStyle(sheet, cellAt(rate), cellAt(rate), st.totalPct); err != nil {
				return err
			}
		}
	}
	return nil
}

// numeric converts JSON numbers, and numeric strings in numeric columns, to float64
func numeric(v interface{}, parseStrings bool) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		if !parseStrings {
			return 0, false
		}
		f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", ""), 64)
		return f, err == nil
	}
	return 0, false
}
