package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/xuri/excelize/v2"
)

// ImportWarning is a validation message for one line of an uploaded file.
type ImportWarning struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// ImportResult is returned after parsing an uploaded room list.
type ImportResult struct {
	FileName     string          `json:"fileName"`
	TotalRows    int             `json:"totalRows"`
	Imported     int             `json:"imported"`
	Unrecognized []string        `json:"unrecognized"`
	Warnings     []ImportWarning `json:"warnings"`

	rows  []RawRow
	lines []int
}

// Rows returns the parsed entries in file order.
func (r *ImportResult) Rows() []RawRow {
	return r.rows
}

// importHeaderLabels maps the column headers of the Excel export (and a few
// common spellings) to field keys, so an exported workbook imports again.
var importHeaderLabels = map[string]string{
	"bereich":               "area",
	"gebäudeteil":           "buildingPart",
	"etage":                 "floor",
	"geschoss":              "floor",
	"bezeichnung":           "designation",
	"raum":                  "designation",
	"reinigungsgruppe":      "cleaningGroup",
	"intervall":             "cleaningInterval",
	"reinigungsintervall":   "cleaningInterval",
	"menge":                 "quantity",
	"menge (m²)":            "quantity",
	"anzahl":                "unitCount",
	"rt/jahr":               "cleaningDaysPerYear",
	"rt/monat":              "cleaningDaysPerMonth",
	"leistung":              "performancePerHour",
	"leistung (qm/h)":       "performancePerHour",
	"std./tag":              "hoursPerDay",
	"std./monat":            "hoursPerMonth",
	"menge aktiv/monat":     "activeQuantityPerMonth",
	"umsatz netto/monat":    "netSalesValuePerMonth",
	"umsatz brutto/monat":   "grossSalesValuePerMonth",
	"rechnung netto/monat":  "netInvoiceValuePerMonth",
	"rechnung brutto/monat": "grossInvoiceValuePerMonth",
	"bemerkung":             "remark",
	"minderung":             "reduction",
	"#":                     "",
}

// headerKey resolves a column header to a field key. JSON keys and store
// columns are accepted as well as the German labels.
func headerKey(h string) (string, bool) {
	norm := strings.ToLower(strings.TrimSpace(h))
	norm = strings.TrimSpace(strings.TrimSuffix(norm, " *"))
	if key, ok := importHeaderLabels[norm]; ok {
		return key, true
	}
	for _, f := range textFields {
		if norm == strings.ToLower(f.Key) || norm == f.Column {
			return f.Key, true
		}
	}
	for _, f := range numericFields {
		if norm == strings.ToLower(f.Key) || norm == f.Column {
			return f.Key, true
		}
	}
	return "", false
}

// ParseRoomFile reads a CSV or XLSX room list. The header row is the first
// row with at least two recognised columns, so title rows above it (as in
// the Excel export) are skipped. Rows without any classification or
// designation, such as a totals line, are ignored.
func ParseRoomFile(r io.Reader, fileName string) (*ImportResult, error) {
	var (
		rows [][]string
		err  error
	)
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".csv":
		rows, err = parseCSV(r)
	case ".xlsx":
		rows, err = parseExcel(r)
	default:
		return nil, fmt.Errorf("unsupported file type %q: expected .csv or .xlsx", filepath.Ext(fileName))
	}
	if err != nil {
		return nil, err
	}

	headerIdx := -1
	var keys []string
	for i, row := range rows {
		mapped, matches := mapHeaders(row)
		if matches >= 2 {
			headerIdx, keys = i, mapped
			break
		}
	}
	if headerIdx < 0 {
		return nil, fmt.Errorf("no header row found: expected columns such as Bereich, Etage, Menge")
	}

	result := &ImportResult{
		FileName:     fileName,
		Unrecognized: []string{},
		Warnings:     []ImportWarning{},
	}
	for i, h := range rows[headerIdx] {
		if _, ok := headerKey(h); !ok && strings.TrimSpace(h) != "" {
			result.Unrecognized = append(result.Unrecognized, rows[headerIdx][i])
		}
	}

	for i, cells := range rows[headerIdx+1:] {
		line := headerIdx + i + 2
		m := make(map[string]any, len(keys))
		for col, key := range keys {
			if key == "" || col >= len(cells) {
				continue
			}
			m[key] = unsanitizeExcelCell(cells[col])
		}
		raw := RawRowFromMap(m)
		if isBlankRow(raw) {
			continue
		}
		result.rows = append(result.rows, raw)
		result.lines = append(result.lines, line)
		for _, msg := range ValidateRow(raw) {
			result.Warnings = append(result.Warnings, ImportWarning{Line: line, Message: msg})
		}
	}
	result.TotalRows = len(result.rows)
	if result.TotalRows == 0 {
		return nil, fmt.Errorf("file must contain a header row and at least one room")
	}
	return result, nil
}

func mapHeaders(headers []string) ([]string, int) {
	mapped := make([]string, len(headers))
	matches := 0
	for i, h := range headers {
		if key, ok := headerKey(h); ok && key != "" {
			mapped[i] = key
			matches++
		}
	}
	return mapped, matches
}

func isBlankRow(r RawRow) bool {
	for _, s := range []string{r.Area, r.BuildingPart, r.Floor, r.Designation, r.CleaningGroup} {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}

// ImportRooms stores every parsed room of result in the building.
// Validation warnings were collected while parsing and do not block the
// import; a failed save stops it.
func ImportRooms(app *pocketbase.PocketBase, buildingID string, result *ImportResult) error {
	if _, err := FetchBuilding(app, buildingID); err != nil {
		return err
	}
	for i, raw := range result.rows {
		if _, _, _, err := SaveRoom(app, buildingID, raw); err != nil {
			return fmt.Errorf("import line %d: %w", result.lines[i], err)
		}
		result.Imported++
	}
	return nil
}

// parseCSV reads a CSV file. Semicolon separated files, as written by a
// German spreadsheet, are detected from the first line.
func parseCSV(file io.Reader) ([][]string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	firstLine, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		reader.Comma = ';'
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return rows, nil
}

// parseExcel reads the rows of the first sheet of an xlsx file.
func parseExcel(file io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	// Raw values: the formatted ones carry thousands separators.
	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	return rows, nil
}
