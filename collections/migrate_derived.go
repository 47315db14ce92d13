package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"

	"raumbuch/services"
)

// MigrateMissingDerivedValues finds entries that carry a quantity and a
// performance rate but no derived hours, typically rows imported straight
// into the store, and recalculates them with their building's prices.
// Safe to call on every startup -- returns early if nothing to migrate.
func MigrateMissingDerivedValues(app *pocketbase.PocketBase) error {
	entriesCol, err := app.FindCollectionByNameOrId(services.EntriesCollection)
	if err != nil {
		return fmt.Errorf("migrate: could not find %s collection: %w", services.EntriesCollection, err)
	}

	stale, err := app.FindRecordsByFilter(
		entriesCol,
		"quantity > 0 && performance_per_hour > 0 && hours_per_day = 0",
		"",
		0,
		0,
		nil,
	)
	if err != nil {
		return fmt.Errorf("migrate: could not query entries without derived values: %w", err)
	}

	if len(stale) == 0 {
		return nil
	}

	log.Printf("migrate: found %d entr(ies) without derived values -- recalculating...\n", len(stale))

	for _, rec := range stale {
		if _, _, err := services.RecalculateRoom(app, rec.Id); err != nil {
			log.Printf("migrate: failed to recalculate entry %s: %v\n", rec.Id, err)
			continue
		}
	}

	log.Println("migrate: derived value migration complete.")
	return nil
}
