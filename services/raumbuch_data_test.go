package services_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"raumbuch/services"
	"raumbuch/testhelpers"
)

func TestSaveRoom(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Berlin", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus", loc.Id)

	rec, row, warnings, err := services.SaveRoom(app, building.Id, testhelpers.Room("Büro", "EG", "Unterhalt", 50, 100))
	if err != nil {
		t.Fatalf("SaveRoom: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	if row.ID != rec.Id || row.BuildingID != building.Id || row.LocationID != loc.Id {
		t.Errorf("ids = %q/%q/%q", row.ID, row.BuildingID, row.LocationID)
	}
	if row.NetSalesValuePerMonth != 125 {
		t.Errorf("netSalesValuePerMonth = %v, want 125", row.NetSalesValuePerMonth)
	}
	if got := rec.GetFloat("net_sales_value_per_month"); got != 125 {
		t.Errorf("stored net sales = %v, want 125", got)
	}
	if got := rec.GetFloat("hours_per_day"); got != 0.5 {
		t.Errorf("stored hours per day = %v, want 0.5", got)
	}
	if rec.GetString("area") != "Büro" || rec.GetInt("sort_order") != 1 {
		t.Errorf("stored area=%q sort_order=%d", rec.GetString("area"), rec.GetInt("sort_order"))
	}
}

func TestSaveRoom_ZeroPerformanceStoresZeros(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Berlin", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus", loc.Id)

	rec, row, warnings, err := services.SaveRoom(app, building.Id, testhelpers.Room("Büro", "EG", "Unterhalt", 50, 0))
	if err != nil {
		t.Fatalf("SaveRoom: %v", err)
	}
	if len(warnings) != 1 || !strings.Contains(warnings[0], "performancePerHour") {
		t.Errorf("warnings = %v", warnings)
	}
	if row.HoursPerDay != 0 || row.NetSalesValuePerMonth != 0 {
		t.Errorf("returned row not finite: %+v", row)
	}
	if rec.GetFloat("hours_per_day") != 0 {
		t.Errorf("stored hours_per_day = %v", rec.GetFloat("hours_per_day"))
	}
}

func TestSaveRoom_BuildingWithoutLocation(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	building := testhelpers.CreateTestBuilding(t, app, "Ohne Preise", "")

	_, row, _, err := services.SaveRoom(app, building.Id, testhelpers.Room("Büro", "EG", "Unterhalt", 50, 100))
	if err != nil {
		t.Fatalf("SaveRoom: %v", err)
	}
	if row.NetSalesValuePerMonth != 0 || row.HoursPerDay != 0.5 {
		t.Errorf("row = %+v, want zero sales and 0.5 hours", row)
	}
}

func TestSaveRoom_UnknownBuilding(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	_, _, _, err := services.SaveRoom(app, "missing", testhelpers.Room("Büro", "EG", "Unterhalt", 50, 100))
	if !errors.Is(err, services.ErrBuildingNotFound) {
		t.Errorf("err = %v, want ErrBuildingNotFound", err)
	}
}

func TestFetchRawRows_StoredOrder(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Berlin", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus", loc.Id)
	other := testhelpers.CreateTestBuilding(t, app, "Nebenhaus", loc.Id)

	for _, area := range []string{"Zentrale", "Archiv", "Küche"} {
		testhelpers.CreateTestRoom(t, app, building.Id, testhelpers.Room(area, "EG", "Unterhalt", 10, 100))
	}
	testhelpers.CreateTestRoom(t, app, other.Id, testhelpers.Room("Fremd", "EG", "Unterhalt", 10, 100))

	raw, err := services.FetchRawRows(app, building.Id)
	if err != nil {
		t.Fatalf("FetchRawRows: %v", err)
	}
	if len(raw) != 3 {
		t.Fatalf("got %d rows, want 3", len(raw))
	}
	for i, want := range []string{"Zentrale", "Archiv", "Küche"} {
		if raw[i].Area != want {
			t.Errorf("row %d area = %q, want %q", i, raw[i].Area, want)
		}
		if raw[i].BuildingID != building.Id {
			t.Errorf("row %d building = %q", i, raw[i].BuildingID)
		}
	}

	if _, err := services.FetchRawRows(app, "missing"); !errors.Is(err, services.ErrBuildingNotFound) {
		t.Errorf("err = %v, want ErrBuildingNotFound", err)
	}
}

func TestFetchBuilding(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Berlin", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus", loc.Id)

	b, err := services.FetchBuilding(app, building.Id)
	if err != nil {
		t.Fatalf("FetchBuilding: %v", err)
	}
	if b.Name != "Testhaus" || b.Address != "Teststraße 1" {
		t.Errorf("building = %+v", b)
	}
	if b.Location.ID != loc.Id || b.Location.PricePerHour != 12 || b.Location.PricePerHour7Days != 15 {
		t.Errorf("location = %+v", b.Location)
	}

	if _, err := services.FetchLocation(app, "missing"); !errors.Is(err, services.ErrLocationNotFound) {
		t.Errorf("err = %v, want ErrLocationNotFound", err)
	}
}

func TestRecalculateRoom(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Berlin", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus", loc.Id)
	rec := testhelpers.CreateTestRoom(t, app, building.Id, testhelpers.Room("Büro", "EG", "Unterhalt", 50, 100))

	loc.Set("price_per_hour", 24)
	if err := app.Save(loc); err != nil {
		t.Fatalf("update location: %v", err)
	}

	row, warnings, err := services.RecalculateRoom(app, rec.Id)
	if err != nil {
		t.Fatalf("RecalculateRoom: %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v", warnings)
	}
	if row.NetSalesValuePerMonth != 250 {
		t.Errorf("netSalesValuePerMonth = %v, want 250", row.NetSalesValuePerMonth)
	}

	stored, err := app.FindRecordById(services.EntriesCollection, rec.Id)
	if err != nil {
		t.Fatalf("reload entry: %v", err)
	}
	if got := stored.GetFloat("net_sales_value_per_month"); got != 250 {
		t.Errorf("stored net sales = %v, want 250", got)
	}

	if _, _, err := services.RecalculateRoom(app, "missing"); !errors.Is(err, services.ErrRoomNotFound) {
		t.Errorf("err = %v, want ErrRoomNotFound", err)
	}
}

func TestRecalculateRoom_StoreFailureIsNotNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	entries, err := app.FindCollectionByNameOrId(services.EntriesCollection)
	if err != nil {
		t.Fatalf("find entries collection: %v", err)
	}
	if err := app.Delete(entries); err != nil {
		t.Fatalf("delete entries collection: %v", err)
	}

	_, _, err = services.RecalculateRoom(app, "missing")
	if err == nil {
		t.Fatal("expected an error without the entries collection")
	}
	if errors.Is(err, services.ErrRoomNotFound) {
		t.Errorf("store failure reported as not found: %v", err)
	}
	if !strings.Contains(err.Error(), services.EntriesCollection) {
		t.Errorf("err = %v, want the collection named", err)
	}
}

func TestBuildReportData(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Berlin", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus", loc.Id)
	testhelpers.CreateTestRoom(t, app, building.Id, testhelpers.Room("Büro", "EG", "Unterhalt", 50, 100))
	testhelpers.CreateTestRoom(t, app, building.Id, testhelpers.Room("Sanitär", "1. OG", "Sanitär", 20, 50))

	now := time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)
	data, err := services.BuildReportData(app, building.Id, services.RowFilter{Area: "Sanitär"}, now)
	if err != nil {
		t.Fatalf("BuildReportData: %v", err)
	}

	if data.Title != "Raumbuch Testhaus" || data.CreatedDate != "15.10.2026" {
		t.Errorf("title=%q date=%q", data.Title, data.CreatedDate)
	}
	if len(data.Analysis.Rows) != 1 || data.Analysis.Rows[0].Area != "Sanitär" {
		t.Errorf("rows = %+v", data.Analysis.Rows)
	}
	if data.Analysis.Summary.TotalNetSalesValuePerMonth != 100 {
		t.Errorf("net = %v, want 100", data.Analysis.Summary.TotalNetSalesValuePerMonth)
	}
	if len(data.Analysis.FilterOptions.Areas) != 2 {
		t.Errorf("filter options = %v", data.Analysis.FilterOptions.Areas)
	}

	if _, err := services.BuildReportData(app, "missing", services.RowFilter{}, now); !errors.Is(err, services.ErrBuildingNotFound) {
		t.Errorf("err = %v, want ErrBuildingNotFound", err)
	}
}

func TestImportRooms(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	loc := testhelpers.CreateTestLocation(t, app, "Berlin", 12, 15)
	building := testhelpers.CreateTestBuilding(t, app, "Testhaus", loc.Id)

	csv := "Bereich;Gebäudeteil;Etage;Bezeichnung;Reinigungsgruppe;Intervall;Menge;Anzahl;RT/Jahr;Leistung\n" +
		"Büro;Haus A;EG;Büro 1;Unterhalt;5x wöchentlich;50;5;250;100\n" +
		"Lager;Haus A;UG;Lager 1;Unterhalt;1x wöchentlich;12,5;1;52;100\n"

	result, err := services.ParseRoomFile(strings.NewReader(csv), "rooms.csv")
	if err != nil {
		t.Fatalf("ParseRoomFile: %v", err)
	}
	if err := services.ImportRooms(app, building.Id, result); err != nil {
		t.Fatalf("ImportRooms: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("imported = %d, want 2", result.Imported)
	}

	raw, err := services.FetchRawRows(app, building.Id)
	if err != nil {
		t.Fatalf("FetchRawRows: %v", err)
	}
	rows := services.Preprocess(raw)
	if len(rows) != 2 || rows[0].NetSalesValuePerMonth != 125 || rows[1].Quantity != 12.5 {
		t.Errorf("imported rows = %+v", rows)
	}

	if err := services.ImportRooms(app, "missing", result); !errors.Is(err, services.ErrBuildingNotFound) {
		t.Errorf("err = %v, want ErrBuildingNotFound", err)
	}
}
