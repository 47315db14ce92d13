package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/services"
)

// Setup programmatically creates/ensures the locations, buildings and
// raumbuch_entries collections exist.
func Setup(app *pocketbase.PocketBase) {
	locations := ensureCollection(app, services.LocationsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "price_per_hour"})
		c.Fields.Add(&core.NumberField{Name: "price_per_hour_7_days"})
		c.Fields.Add(&core.NumberField{Name: "price_per_hour_sunday"})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	buildings := ensureCollection(app, services.BuildingsCollection, func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "address"})
		c.Fields.Add(&core.RelationField{
			Name:         "location",
			Required:     false,
			CollectionId: locations.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, services.EntriesCollection, func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "building",
			Required:      true,
			CollectionId:  buildings.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.RelationField{
			Name:         "location",
			Required:     false,
			CollectionId: locations.Id,
			MaxSelect:    1,
		})
		c.Fields.Add(&core.NumberField{Name: "sort_order"})
		for _, name := range services.TextColumns() {
			c.Fields.Add(&core.TextField{Name: name})
		}
		// Number fields stay optional: Required would reject legitimate zeros.
		for _, name := range services.NumericColumns() {
			c.Fields.Add(&core.NumberField{Name: name})
		}
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
