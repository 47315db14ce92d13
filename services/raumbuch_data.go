package services

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

// Collection names of the room book store.
const (
	LocationsCollection = "locations"
	BuildingsCollection = "buildings"
	EntriesCollection   = "raumbuch_entries"
)

var (
	ErrBuildingNotFound = errors.New("building not found")
	ErrLocationNotFound = errors.New("location not found")
	ErrRoomNotFound     = errors.New("room not found")
)

// Building is a building together with the location that prices it.
type Building struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Address  string   `json:"address"`
	Location Location `json:"location"`
}

// RawRowFromRecord copies a stored entry without interpreting its numbers.
func RawRowFromRecord(rec *core.Record) RawRow {
	raw := RawRow{
		ID:         rec.Id,
		LocationID: rec.GetString("location"),
		BuildingID: rec.GetString("building"),
	}
	for _, f := range textFields {
		*f.raw(&raw) = rec.GetString(f.Column)
	}
	for _, f := range numericFields {
		*f.raw(&raw) = rec.Get(f.Column)
	}
	return raw
}

// applyRowToRecord writes every field of row onto rec. Non-finite numbers are
// stored as 0 since the store rejects them.
func applyRowToRecord(rec *core.Record, row Row) {
	rec.Set("building", row.BuildingID)
	rec.Set("location", row.LocationID)
	for _, f := range textFields {
		rec.Set(f.Column, *f.norm(&row))
	}
	for _, f := range numericFields {
		rec.Set(f.Column, num(*f.norm(&row)))
	}
}

// findRecord loads a record by id. Only a missing row becomes notFound; any
// other store failure is returned wrapped as it is.
func findRecord(app core.App, collection, id string, notFound error) (*core.Record, error) {
	rec, err := app.FindRecordById(collection, id)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return nil, fmt.Errorf("%w: %s", notFound, id)
	case err != nil:
		return nil, fmt.Errorf("find %s %s: %w", collection, id, err)
	}
	return rec, nil
}

// LocationFromRecord reads the pricing of a location record.
func LocationFromRecord(rec *core.Record) Location {
	return Location{
		ID:                 rec.Id,
		Name:               rec.GetString("name"),
		PricePerHour:       ToNumber(rec.Get("price_per_hour"), 0),
		PricePerHour7Days:  ToNumber(rec.Get("price_per_hour_7_days"), 0),
		PricePerHourSunday: ToNumber(rec.Get("price_per_hour_sunday"), 0),
	}
}

// FetchBuilding loads a building and its location.
func FetchBuilding(app core.App, buildingID string) (Building, error) {
	rec, err := findRecord(app, BuildingsCollection, buildingID, ErrBuildingNotFound)
	if err != nil {
		return Building{}, err
	}

	b := Building{
		ID:      rec.Id,
		Name:    rec.GetString("name"),
		Address: rec.GetString("address"),
	}
	if locID := rec.GetString("location"); locID != "" {
		loc, err := FetchLocation(app, locID)
		if err != nil {
			return Building{}, fmt.Errorf("building %s: %w", buildingID, err)
		}
		b.Location = loc
	}
	return b, nil
}

// FetchLocation loads the prices of a location.
func FetchLocation(app core.App, locationID string) (Location, error) {
	rec, err := findRecord(app, LocationsCollection, locationID, ErrLocationNotFound)
	if err != nil {
		return Location{}, err
	}
	return LocationFromRecord(rec), nil
}

// FetchRawRows returns all entries of a building in their stored order.
func FetchRawRows(app core.App, buildingID string) ([]RawRow, error) {
	if _, err := findRecord(app, BuildingsCollection, buildingID, ErrBuildingNotFound); err != nil {
		return nil, err
	}

	records, err := app.FindRecordsByFilter(
		EntriesCollection,
		"building = {:buildingId}",
		"sort_order",
		0,
		0,
		map[string]any{"buildingId": buildingID},
	)
	if err != nil {
		return nil, fmt.Errorf("query entries of building %s: %w", buildingID, err)
	}

	raw := make([]RawRow, 0, len(records))
	for _, rec := range records {
		raw = append(raw, RawRowFromRecord(rec))
	}
	return raw, nil
}

// nextSortOrder returns the sort_order for a new entry of the building.
func nextSortOrder(app core.App, buildingID string) int {
	existing, err := app.FindRecordsByFilter(
		EntriesCollection,
		"building = {:buildingId}",
		"-sort_order",
		1,
		0,
		map[string]any{"buildingId": buildingID},
	)
	if err != nil || len(existing) == 0 {
		return 1
	}
	return existing[0].GetInt("sort_order") + 1
}

// SaveRoom creates a new entry for a building. Derived values are computed
// from the building's location prices and the validation messages are
// returned alongside; they do not prevent the save.
func SaveRoom(app core.App, buildingID string, in RawRow) (*core.Record, Row, []string, error) {
	building, err := FetchBuilding(app, buildingID)
	if err != nil {
		return nil, Row{}, nil, err
	}

	col, err := app.FindCollectionByNameOrId(EntriesCollection)
	if err != nil {
		return nil, Row{}, nil, fmt.Errorf("find %s collection: %w", EntriesCollection, err)
	}

	warnings := ValidateRow(in)

	in.ID = ""
	in.BuildingID = building.ID
	in.LocationID = building.Location.ID
	row := CalculateForLocation(in, building.Location)

	rec := core.NewRecord(col)
	applyRowToRecord(rec, row)
	rec.Set("sort_order", nextSortOrder(app, buildingID))
	if err := app.Save(rec); err != nil {
		return nil, Row{}, warnings, fmt.Errorf("save entry: %w", err)
	}
	row = row.finite()
	row.ID = rec.Id

	if len(warnings) > 0 {
		log.Printf("raumbuch: entry %s saved with %d warning(s): %v", rec.Id, len(warnings), warnings)
	}
	return rec, row, warnings, nil
}

// RecalculateRoom recomputes and stores the derived values of an entry using
// the current prices of its location.
func RecalculateRoom(app core.App, roomID string) (Row, []string, error) {
	rec, err := findRecord(app, EntriesCollection, roomID, ErrRoomNotFound)
	if err != nil {
		return Row{}, nil, err
	}

	building, err := FetchBuilding(app, rec.GetString("building"))
	if err != nil {
		return Row{}, nil, err
	}

	raw := RawRowFromRecord(rec)
	warnings := ValidateRow(raw)
	raw.LocationID = building.Location.ID
	row := CalculateForLocation(raw, building.Location)

	applyRowToRecord(rec, row)
	if err := app.Save(rec); err != nil {
		return Row{}, warnings, fmt.Errorf("save entry %s: %w", roomID, err)
	}
	return row.finite(), warnings, nil
}

// ReportData is everything the table view and the exports render.
type ReportData struct {
	Title       string
	CompanyName string
	Building    Building
	CreatedDate string
	Analysis    Analysis

	// PDFRowLimit caps the rooms listed in the PDF; 0 lists all of them.
	PDFRowLimit int
}

// BuildReportData fetches a building's entries and analyses them.
func BuildReportData(app core.App, buildingID string, filter RowFilter, now time.Time) (ReportData, error) {
	building, err := FetchBuilding(app, buildingID)
	if err != nil {
		return ReportData{}, err
	}
	raw, err := FetchRawRows(app, buildingID)
	if err != nil {
		return ReportData{}, err
	}

	return ReportData{
		Title:       "Raumbuch " + building.Name,
		Building:    building,
		CreatedDate: now.Format("02.01.2006"),
		Analysis:    Analyze(raw, filter),
	}, nil
}
