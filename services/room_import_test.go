package services

import (
	"strings"
	"testing"
)

func TestParseRoomFile_CommaCSV(t *testing.T) {
	csv := "\xef\xbb\xbfBereich,Gebäudeteil,Etage,Bezeichnung,Reinigungsgruppe,Intervall,Menge,Anzahl,RT/Jahr,Leistung,Farbe\n" +
		"Büro,Haus A,EG,Büro 1,Unterhalt,5x wöchentlich,25,5,250,50,blau\n" +
		",,,,,,,,,,\n" +
		"Flur,Haus A,EG,Flur EG,,5x wöchentlich,40,5,250,0,\n"

	result, err := ParseRoomFile(strings.NewReader(csv), "rooms.CSV")
	if err != nil {
		t.Fatalf("ParseRoomFile: %v", err)
	}

	if result.TotalRows != 2 || len(result.Rows()) != 2 {
		t.Fatalf("totalRows = %d, want 2", result.TotalRows)
	}
	first := result.Rows()[0]
	if first.Area != "Büro" || first.Designation != "Büro 1" || first.Quantity != "25" || first.PerformancePerHour != "50" {
		t.Errorf("first row = %+v", first)
	}
	if len(result.Unrecognized) != 1 || result.Unrecognized[0] != "Farbe" {
		t.Errorf("unrecognized = %v", result.Unrecognized)
	}

	// The blank line is skipped but still counts for line numbers.
	wantWarnings := []ImportWarning{
		{Line: 4, Message: "performancePerHour must be greater than zero to derive hours"},
		{Line: 4, Message: "cleaningGroup is required"},
	}
	if len(result.Warnings) != len(wantWarnings) {
		t.Fatalf("warnings = %+v", result.Warnings)
	}
	for i, w := range wantWarnings {
		if result.Warnings[i] != w {
			t.Errorf("warning %d = %+v, want %+v", i, result.Warnings[i], w)
		}
	}
}

func TestParseRoomFile_Errors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		fileName string
		wantErr  string
	}{
		{"unsupported type", "a,b", "rooms.txt", "unsupported file type"},
		{"no header", "foo,bar\n1,2\n", "rooms.csv", "no header row"},
		{"header only", "Bereich,Etage,Menge\n", "rooms.csv", "at least one room"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRoomFile(strings.NewReader(tt.content), tt.fileName)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseRoomFile_ExcelExportRoundTrip(t *testing.T) {
	data := sampleReportData()
	data.Analysis.Rows[0].Floor = "-1"
	data.Analysis.Rows[1].Designation = "=SUMME(A1)"
	data.Analysis.Rows[2].Remark = "+49 30 123"
	xlsx, err := GenerateRaumbuchExcel(data)
	if err != nil {
		t.Fatalf("GenerateRaumbuchExcel: %v", err)
	}

	result, err := ParseRoomFile(bytesReader(xlsx), "export.xlsx")
	if err != nil {
		t.Fatalf("ParseRoomFile: %v", err)
	}
	if result.TotalRows != len(data.Analysis.Rows) {
		t.Fatalf("totalRows = %d, want %d", result.TotalRows, len(data.Analysis.Rows))
	}

	for i, raw := range result.Rows() {
		want := data.Analysis.Rows[i]
		got := NormalizeRow(raw)
		if got.Area != want.Area || got.Floor != want.Floor || got.Designation != want.Designation ||
			got.CleaningGroup != want.CleaningGroup || got.Remark != want.Remark {
			t.Errorf("row %d text = %+v, want %+v", i, got, want)
		}
		if got.Quantity != want.Quantity || got.PerformancePerHour != want.PerformancePerHour || got.UnitCount != want.UnitCount {
			t.Errorf("row %d numbers = %v/%v/%v, want %v/%v/%v", i,
				got.Quantity, got.PerformancePerHour, got.UnitCount,
				want.Quantity, want.PerformancePerHour, want.UnitCount)
		}
	}
}

func TestHeaderKey(t *testing.T) {
	tests := []struct {
		header string
		key    string
		ok     bool
	}{
		{"Bereich", "area", true},
		{"  ETAGE ", "floor", true},
		{"Menge (m²)", "quantity", true},
		{"performancePerHour", "performancePerHour", true},
		{"net_sales_value_per_month", "netSalesValuePerMonth", true},
		{"#", "", true},
		{"Farbe", "", false},
	}
	for _, tt := range tests {
		key, ok := headerKey(tt.header)
		if key != tt.key || ok != tt.ok {
			t.Errorf("headerKey(%q) = %q, %v; want %q, %v", tt.header, key, ok, tt.key, tt.ok)
		}
	}
}
