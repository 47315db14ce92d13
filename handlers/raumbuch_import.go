package handlers

import (
	"fmt"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/services"
)

// HandleRaumbuchImport receives a CSV or XLSX room list and adds every room
// to the building. Validation warnings are reported per line; they do not
// stop the import.
// Route: POST /buildings/{buildingId}/raumbuch/import
func HandleRaumbuchImport(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		buildingID := e.Request.PathValue("buildingId")
		if buildingID == "" {
			return ErrorToast(e, http.StatusBadRequest, "Missing building ID")
		}

		// Parse multipart form (max 10MB)
		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return ErrorToast(e, http.StatusBadRequest, "File too large or invalid form data")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return ErrorToast(e, http.StatusBadRequest, "Bitte eine Datei auswählen")
		}
		defer file.Close()

		result, err := services.ParseRoomFile(file, header.Filename)
		if err != nil {
			log.Printf("raumbuch_import: %v", err)
			return ErrorToast(e, http.StatusBadRequest, err.Error())
		}

		if err := services.ImportRooms(app, buildingID, result); err != nil {
			log.Printf("raumbuch_import: building %s: %v", buildingID, err)
			if statusFor(err) == http.StatusNotFound {
				return ErrorToast(e, http.StatusNotFound, "Gebäude nicht gefunden")
			}
			return ErrorToast(e, http.StatusInternalServerError, fmt.Sprintf("Import nach %d Räumen abgebrochen", result.Imported))
		}

		log.Printf("raumbuch_import: %s imported %d rooms into %s (%d warnings)",
			result.FileName, result.Imported, buildingID, len(result.Warnings))
		SetToast(e, "success", fmt.Sprintf("%d Räume importiert", result.Imported))
		return e.JSON(http.StatusOK, result)
	}
}
