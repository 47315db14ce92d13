package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names of the room book workbook.
const (
	SheetRooms          = "Raumbuch"
	SheetSummary        = "Zusammenfassung"
	SheetAreas          = "Bereiche"
	SheetCleaningGroups = "Reinigungsgruppen"
)

// firstDataRow is the row of the first room on the Raumbuch sheet.
const firstDataRow = 6

type excelColumn struct {
	header string
	width  float64
	value  func(i int, r Row) any
	number bool
}

var roomColumns = []excelColumn{
	{"#", 6, func(i int, _ Row) any { return i + 1 }, false},
	{"Bereich", 16, func(_ int, r Row) any { return sanitizeExcelCell(r.Area) }, false},
	{"Gebäudeteil", 14, func(_ int, r Row) any { return sanitizeExcelCell(r.BuildingPart) }, false},
	{"Etage", 10, func(_ int, r Row) any { return sanitizeExcelCell(r.Floor) }, false},
	{"Bezeichnung", 24, func(_ int, r Row) any { return sanitizeExcelCell(r.Designation) }, false},
	{"Reinigungsgruppe", 18, func(_ int, r Row) any { return sanitizeExcelCell(r.CleaningGroup) }, false},
	{"Intervall", 12, func(_ int, r Row) any { return sanitizeExcelCell(r.CleaningInterval) }, false},
	{"Menge (m²)", 12, func(_ int, r Row) any { return r.Quantity }, true},
	{"Anzahl", 8, func(_ int, r Row) any { return r.UnitCount }, true},
	{"RT/Jahr", 10, func(_ int, r Row) any { return r.CleaningDaysPerYear }, true},
	{"RT/Monat", 10, func(_ int, r Row) any { return r.CleaningDaysPerMonth }, true},
	{"Leistung (qm/h)", 14, func(_ int, r Row) any { return r.PerformancePerHour }, true},
	{"Std./Tag", 10, func(_ int, r Row) any { return r.HoursPerDay }, true},
	{"Std./Monat", 11, func(_ int, r Row) any { return r.HoursPerMonth }, true},
	{"Menge aktiv/Monat", 16, func(_ int, r Row) any { return r.ActiveQuantityPerMonth }, true},
	{"Umsatz netto/Monat", 17, func(_ int, r Row) any { return r.NetSalesValuePerMonth }, true},
	{"Umsatz brutto/Monat", 17, func(_ int, r Row) any { return r.GrossSalesValuePerMonth }, true},
	{"Rechnung netto/Monat", 18, func(_ int, r Row) any { return r.NetInvoiceValuePerMonth }, true},
	{"Rechnung brutto/Monat", 18, func(_ int, r Row) any { return r.GrossInvoiceValuePerMonth }, true},
	{"Bemerkung", 24, func(_ int, r Row) any { return sanitizeExcelCell(r.Remark) }, false},
}

type excelStyles struct {
	title, subtitle, header, text, number, label, total int
}

// GenerateRaumbuchExcel renders the analysis into an XLSX workbook with one
// row per room plus summary, area and cleaning group sheets.
func GenerateRaumbuchExcel(data ReportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetRooms); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	for _, name := range []string{SheetSummary, SheetAreas, SheetCleaningGroups} {
		if _, err := f.NewSheet(name); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", name, err)
		}
	}

	styles, err := newExcelStyles(f)
	if err != nil {
		return nil, err
	}

	if err := writeRoomSheet(f, styles, data); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, styles, data); err != nil {
		return nil, err
	}

	areaRows := make([][]any, 0, len(data.Analysis.Summary.AreaStats))
	for _, s := range data.Analysis.Summary.AreaStats {
		areaRows = append(areaRows, groupStatCells(s.Area, s.GroupMetrics))
	}
	if err := writeGroupSheet(f, styles, data, SheetAreas, DimensionArea.Label(), areaRows); err != nil {
		return nil, err
	}

	groupRows := make([][]any, 0, len(data.Analysis.Summary.CleaningGroupStats))
	for _, s := range data.Analysis.Summary.CleaningGroupStats {
		groupRows = append(groupRows, groupStatCells(s.CleaningGroup, s.GroupMetrics))
	}
	if err := writeGroupSheet(f, styles, data, SheetCleaningGroups, DimensionCleaningGroup.Label(), groupRows); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

func newExcelStyles(f *excelize.File) (excelStyles, error) {
	var s excelStyles
	var err error

	// Built-in number format 4 is "#,##0.00".
	defs := []struct {
		dst   *int
		name  string
		style *excelize.Style
	}{
		{&s.title, "title", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 16}}},
		{&s.subtitle, "subtitle", &excelize.Style{Font: &excelize.Font{Size: 11}}},
		{&s.header, "header", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 10},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#333333"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
			Border:    thinBorders(),
		}},
		{&s.text, "text", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}},
		{&s.number, "number", &excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders(), NumFmt: 4}},
		{&s.label, "label", &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{&s.total, "total", &excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, NumFmt: 4}},
	}
	for _, d := range defs {
		if *d.dst, err = f.NewStyle(d.style); err != nil {
			return s, fmt.Errorf("create %s style: %w", d.name, err)
		}
	}
	return s, nil
}

func cellName(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func writeTitle(f *excelize.File, st excelStyles, sheet string, lastCol int, data ReportData) error {
	if err := f.MergeCell(sheet, cellName(1, 1), cellName(lastCol, 1)); err != nil {
		return fmt.Errorf("merge title on %s: %w", sheet, err)
	}
	f.SetCellValue(sheet, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(sheet, "A1", cellName(lastCol, 1), st.title)

	subtitle := data.Building.Location.Name
	if data.Building.Address != "" {
		subtitle = data.Building.Address + " · " + subtitle
	}
	f.SetCellValue(sheet, "A2", sanitizeExcelCell(subtitle))
	f.SetCellStyle(sheet, "A2", "A2", st.subtitle)

	f.SetCellValue(sheet, "A3", "Stand: "+data.CreatedDate)
	f.SetCellStyle(sheet, "A3", "A3", st.subtitle)
	return nil
}

func writeRoomSheet(f *excelize.File, st excelStyles, data ReportData) error {
	lastCol := len(roomColumns)
	if err := writeTitle(f, st, SheetRooms, lastCol, data); err != nil {
		return err
	}

	for i, c := range roomColumns {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(SheetRooms, colName, colName, c.width); err != nil {
			return fmt.Errorf("set col width %s: %w", colName, err)
		}
		f.SetCellValue(SheetRooms, cellName(i+1, firstDataRow-1), c.header)
	}
	f.SetCellStyle(SheetRooms, cellName(1, firstDataRow-1), cellName(lastCol, firstDataRow-1), st.header)

	row := firstDataRow
	for i, r := range data.Analysis.Rows {
		for j, c := range roomColumns {
			cell := cellName(j+1, row)
			f.SetCellValue(SheetRooms, cell, excelValue(c.value(i, r)))
			style := st.text
			if c.number {
				style = st.number
			}
			f.SetCellStyle(SheetRooms, cell, cell, style)
		}
		row++
	}

	if err := f.SetPanes(SheetRooms, &excelize.Panes{
		Freeze:      true,
		YSplit:      firstDataRow - 1,
		TopLeftCell: cellName(1, firstDataRow),
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freeze header: %w", err)
	}

	// Totals below the table, aligned with their columns.
	row++
	s := data.Analysis.Summary
	f.SetCellValue(SheetRooms, cellName(7, row), "Summe:")
	f.SetCellStyle(SheetRooms, cellName(7, row), cellName(7, row), st.label)
	totals := map[int]float64{
		8:  s.TotalQuantity,
		14: s.TotalHoursPerMonth,
		15: s.TotalActiveQuantityPerMonth,
		16: s.TotalNetSalesValuePerMonth,
		17: s.TotalGrossSalesValuePerMonth,
		18: s.TotalNetInvoiceValuePerMonth,
		19: s.TotalGrossInvoiceValuePerMonth,
	}
	for col, v := range totals {
		f.SetCellValue(SheetRooms, cellName(col, row), v)
		f.SetCellStyle(SheetRooms, cellName(col, row), cellName(col, row), st.total)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, st excelStyles, data ReportData) error {
	if err := writeTitle(f, st, SheetSummary, 2, data); err != nil {
		return err
	}
	f.SetColWidth(SheetSummary, "A", "A", 34)
	f.SetColWidth(SheetSummary, "B", "B", 18)

	s := data.Analysis.Summary
	lines := []struct {
		label string
		value float64
	}{
		{"Anzahl Räume", float64(s.TotalRooms)},
		{"Menge gesamt (m²)", s.TotalQuantity},
		{"Menge aktiv pro Monat", s.TotalActiveQuantityPerMonth},
		{"Stunden pro Monat", s.TotalHoursPerMonth},
		{"Umsatz netto pro Monat", s.TotalNetSalesValuePerMonth},
		{"Umsatz brutto pro Monat", s.TotalGrossSalesValuePerMonth},
		{"Rechnung netto pro Monat", s.TotalNetInvoiceValuePerMonth},
		{"Rechnung brutto pro Monat", s.TotalGrossInvoiceValuePerMonth},
		{"Umsatz netto pro Jahr", s.TotalNetSalesValuePerYear},
		{"Umsatz brutto pro Jahr", s.TotalGrossSalesValuePerYear},
		{"Rechnung netto pro Jahr", s.TotalNetInvoiceValuePerYear},
		{"Rechnung brutto pro Jahr", s.TotalGrossInvoiceValuePerYear},
	}
	row := 5
	for _, l := range lines {
		f.SetCellValue(SheetSummary, cellName(1, row), l.label)
		f.SetCellStyle(SheetSummary, cellName(1, row), cellName(1, row), st.text)
		f.SetCellValue(SheetSummary, cellName(2, row), l.value)
		f.SetCellStyle(SheetSummary, cellName(2, row), cellName(2, row), st.number)
		row++
	}
	return nil
}

var groupHeaders = []string{"Räume", "Menge (m²)", "Menge aktiv/Monat", "Umsatz netto/Monat", "Umsatz brutto/Monat", "Std./Monat"}

func groupStatCells(key string, m GroupMetrics) []any {
	return []any{
		sanitizeExcelCell(key),
		m.Count,
		m.Quantity,
		m.ActiveQuantityPerMonth,
		m.NetSalesValuePerMonth,
		m.GrossSalesValuePerMonth,
		m.HoursPerMonth,
	}
}

func writeGroupSheet(f *excelize.File, st excelStyles, data ReportData, sheet, keyHeader string, rows [][]any) error {
	headers := append([]string{keyHeader}, groupHeaders...)
	if err := writeTitle(f, st, sheet, len(headers), data); err != nil {
		return err
	}
	f.SetColWidth(sheet, "A", "A", 24)
	lastColName, _ := excelize.ColumnNumberToName(len(headers))
	f.SetColWidth(sheet, "B", lastColName, 18)

	for i, h := range headers {
		f.SetCellValue(sheet, cellName(i+1, 5), h)
	}
	f.SetCellStyle(sheet, cellName(1, 5), cellName(len(headers), 5), st.header)

	for i, cells := range rows {
		row := 6 + i
		for j, v := range cells {
			cell := cellName(j+1, row)
			f.SetCellValue(sheet, cell, v)
			style := st.number
			if j == 0 {
				style = st.text
			}
			f.SetCellStyle(sheet, cell, cell, style)
		}
	}
	return nil
}

// excelValue keeps non-finite numbers out of the workbook, which cannot
// store them.
func excelValue(v any) any {
	if x, ok := v.(float64); ok && x != num(x) {
		return "n. v."
	}
	return v
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// unsanitizeExcelCell reverses sanitizeExcelCell so exported workbooks
// import with their original text. A quote before any other character is kept.
func unsanitizeExcelCell(s string) string {
	if len(s) < 2 || s[0] != '\'' {
		return s
	}
	switch s[1] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return s[1:]
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
