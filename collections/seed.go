package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/services"
)

// ── Definition structs ───────────────────────────────────────────────────

type roomDef struct {
	area             string
	buildingPart     string
	floor            string
	designation      string
	cleaningGroup    string
	cleaningInterval string
	quantity         float64
	unitCount        float64
	daysPerYear      float64
	performance      float64
	remark           string
}

func (d roomDef) rawRow() services.RawRow {
	return services.RawRow{
		Area:                d.area,
		BuildingPart:        d.buildingPart,
		Floor:               d.floor,
		Designation:         d.designation,
		CleaningGroup:       d.cleaningGroup,
		CleaningInterval:    d.cleaningInterval,
		Quantity:            d.quantity,
		ActiveQuantity:      d.quantity,
		UnitCount:           d.unitCount,
		CleaningDaysPerYear: d.daysPerYear,
		PerformancePerHour:  d.performance,
		Remark:              d.remark,
	}
}

const (
	seedLocationName = "Niederlassung Berlin"
	seedBuildingName = "Verwaltungsgebäude Nord"
)

var seedRooms = []roomDef{
	{"Büro", "Haus A", "EG", "Empfang", "Unterhaltsreinigung", "5x wöchentlich", 48, 5, 250, 120, ""},
	{"Büro", "Haus A", "EG", "Büro 0.12", "Unterhaltsreinigung", "5x wöchentlich", 22.5, 5, 250, 120, ""},
	{"Büro", "Haus A", "1. OG", "Büro 1.04", "Unterhaltsreinigung", "3x wöchentlich", 24, 3, 150, 120, ""},
	{"Besprechung", "Haus A", "1. OG", "Konferenzraum 1.10", "Unterhaltsreinigung", "5x wöchentlich", 40, 5, 250, 100, ""},
	{"Sanitär", "Haus A", "EG", "WC Damen", "Sanitärreinigung", "täglich", 14, 7, 365, 40, "inkl. Verbrauchsmaterial"},
	{"Sanitär", "Haus A", "1. OG", "WC Herren", "Sanitärreinigung", "täglich", 12, 7, 365, 40, ""},
	{"Verkehrsfläche", "Haus B", "EG", "Treppenhaus", "Unterhaltsreinigung", "2x wöchentlich", 65, 2, 104, 180, ""},
	{"Verkehrsfläche", "Haus B", "UG", "Flur Technik", "Grundreinigung", "monatlich", 80, 1, 12, 150, "nur nach Absprache"},
}

// Seed creates a demo location, one building and its room book entries.
// It is safe to call on every startup because it returns early if any
// building already exists. All records are written in one transaction, so a
// failed seed leaves nothing behind and is retried on the next start.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if buildings already exist ─────────────────
	buildingsCol, err := app.FindCollectionByNameOrId(services.BuildingsCollection)
	if err != nil {
		return fmt.Errorf("seed: could not find buildings collection: %w", err)
	}
	existing, err := app.FindAllRecords(buildingsCol)
	if err != nil {
		return fmt.Errorf("seed: could not query buildings: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: buildings collection is empty – inserting demo room book …")

	var buildingID string
	err = app.RunInTransaction(func(txApp core.App) error {
		locationsCol, err := txApp.FindCollectionByNameOrId(services.LocationsCollection)
		if err != nil {
			return fmt.Errorf("seed: could not find locations collection: %w", err)
		}

		location := core.NewRecord(locationsCol)
		location.Set("name", seedLocationName)
		location.Set("price_per_hour", 24.5)
		location.Set("price_per_hour_7_days", 27.9)
		location.Set("price_per_hour_sunday", 36.75)
		if err := txApp.Save(location); err != nil {
			return fmt.Errorf("seed: create location: %w", err)
		}

		building := core.NewRecord(buildingsCol)
		building.Set("name", seedBuildingName)
		building.Set("address", "Invalidenstraße 12, 10115 Berlin")
		building.Set("location", location.Id)
		if err := txApp.Save(building); err != nil {
			return fmt.Errorf("seed: create building: %w", err)
		}

		for _, d := range seedRooms {
			if _, _, _, err := services.SaveRoom(txApp, building.Id, d.rawRow()); err != nil {
				return fmt.Errorf("seed: create room %q: %w", d.designation, err)
			}
		}
		buildingID = building.Id
		return nil
	})
	if err != nil {
		return err
	}

	log.Printf("seed: created building %q (%s) with %d rooms\n", seedBuildingName, buildingID, len(seedRooms))
	return nil
}
