package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/collections"
	"raumbuch/config"
	"raumbuch/handlers"
	"raumbuch/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	app := pocketbase.New()

	// Create collections and seed data on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		collections.Setup(app)
		if cfg.SeedDemo {
			if err := collections.Seed(app); err != nil {
				log.Printf("Warning: seed data failed: %v", err)
			}
		}
		if err := collections.MigrateMissingDerivedValues(app); err != nil {
			log.Printf("Warning: derived value migration failed: %v", err)
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.GET("/static/{path...}", apis.Static(os.DirFS("./static"), false))

		// ── JSON API ─────────────────────────────────────────────
		se.Router.GET("/api/buildings/{buildingId}/raumbuch", handlers.HandleRaumbuchAnalysis(app, cfg))
		se.Router.POST("/api/buildings/{buildingId}/raumbuch", handlers.HandleRoomCreate(app))
		se.Router.POST("/api/raumbuch/validate", handlers.HandleRoomValidate())
		se.Router.POST("/api/raumbuch/{id}/recalculate", handlers.HandleRoomRecalculate(app))

		// ── Room book page and exports ───────────────────────────
		se.Router.GET("/buildings/{buildingId}/raumbuch", handlers.HandleRaumbuchView(app, cfg))
		se.Router.GET("/buildings/{buildingId}/raumbuch/export/excel", handlers.HandleRaumbuchExportExcel(app, cfg))
		se.Router.GET("/buildings/{buildingId}/raumbuch/export/pdf", handlers.HandleRaumbuchExportPDF(app, cfg))
		se.Router.POST("/buildings/{buildingId}/raumbuch/import", handlers.HandleRaumbuchImport(app))

		// Redirect home to the first building's room book
		se.Router.GET("/", func(e *core.RequestEvent) error {
			buildings, err := app.FindRecordsByFilter(services.BuildingsCollection, "id != ''", "name", 1, 0, nil)
			if err != nil || len(buildings) == 0 {
				return e.String(http.StatusNotFound, "No buildings yet")
			}
			return e.Redirect(http.StatusFound, fmt.Sprintf("/buildings/%s/raumbuch", buildings[0].Id))
		})

		return se.Next()
	})

	if err := app.Start(); err != nil {
		log.Fatal(err)
	}
}
