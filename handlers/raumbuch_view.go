package handlers

import (
	"log"
	"net/http"

	"github.com/a-h/templ"
	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/config"
	"raumbuch/templates"
)

// HandleRaumbuchView returns a handler that renders the room book table of
// a building.
func HandleRaumbuchView(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		buildingID := e.Request.PathValue("buildingId")
		if buildingID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing building ID")
		}

		data, err := buildReport(app, cfg, buildingID, e.Request)
		if err != nil {
			log.Printf("raumbuch_view: %v", err)
			status := statusFor(err)
			if status == http.StatusNotFound {
				return ErrorToast(e, status, "Gebäude nicht gefunden")
			}
			return ErrorToast(e, status, "Raumbuch konnte nicht geladen werden")
		}

		view := templates.RaumbuchViewData{
			Report:   data,
			BasePath: "/buildings/" + buildingID + "/raumbuch",
		}

		var component templ.Component
		if e.Request.Header.Get("HX-Request") == "true" {
			component = templates.RaumbuchContent(view)
		} else {
			component = templates.RaumbuchPage(view)
		}
		return component.Render(e.Request.Context(), e.Response)
	}
}
