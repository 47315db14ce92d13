// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/collections"
	"raumbuch/services"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestLocation creates a location with the given hourly prices.
func CreateTestLocation(t *testing.T, app *pocketbase.PocketBase, name string, pricePerHour, pricePerHour7Days float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(services.LocationsCollection)
	if err != nil {
		t.Fatalf("failed to find locations collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("price_per_hour", pricePerHour)
	record.Set("price_per_hour_7_days", pricePerHour7Days)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test location: %v", err)
	}

	return record
}

// CreateTestBuilding creates a building priced by locationID. An empty
// locationID leaves the building without prices.
func CreateTestBuilding(t *testing.T, app *pocketbase.PocketBase, name, locationID string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId(services.BuildingsCollection)
	if err != nil {
		t.Fatalf("failed to find buildings collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("address", "Teststraße 1")
	if locationID != "" {
		record.Set("location", locationID)
	}

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test building: %v", err)
	}

	return record
}

// CreateTestRoom stores a room book entry through services.SaveRoom so the
// derived values are filled in.
func CreateTestRoom(t *testing.T, app *pocketbase.PocketBase, buildingID string, raw services.RawRow) *core.Record {
	t.Helper()

	record, _, _, err := services.SaveRoom(app, buildingID, raw)
	if err != nil {
		t.Fatalf("failed to save test room: %v", err)
	}

	return record
}

// Room returns a valid entry with the given classification and sizing.
func Room(area, floor, cleaningGroup string, quantity, performance float64) services.RawRow {
	return services.RawRow{
		Area:                area,
		BuildingPart:        "Haus A",
		Floor:               floor,
		Designation:         area + " " + floor,
		CleaningGroup:       cleaningGroup,
		CleaningInterval:    "5x wöchentlich",
		Quantity:            quantity,
		UnitCount:           5,
		CleaningDaysPerYear: 250,
		PerformancePerHour:  performance,
	}
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
