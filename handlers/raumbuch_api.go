package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/config"
	"raumbuch/services"
)

// buildReport loads a building's room book, applies the query filter from
// the request and ranks the breakdowns with the configured top count.
func buildReport(app *pocketbase.PocketBase, cfg config.Config, buildingID string, r *http.Request) (services.ReportData, error) {
	filter := services.RowFilterFromQuery(r.URL.Query())
	data, err := services.BuildReportData(app, buildingID, filter, time.Now())
	if err != nil {
		return services.ReportData{}, err
	}
	data.CompanyName = cfg.CompanyName
	data.PDFRowLimit = cfg.PDFRowsLimit
	data.Analysis.Rank(cfg.TopCount)
	return data, nil
}

// statusFor maps store errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrBuildingNotFound),
		errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrLocationNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// reportError answers a failed buildReport.
func reportError(e *core.RequestEvent, err error) error {
	if status := statusFor(err); status == http.StatusNotFound {
		return e.String(status, "Building not found")
	}
	return e.String(http.StatusInternalServerError, "Failed to load room book")
}

// decodeRawRow reads a JSON object with either camelCase or snake_case keys.
func decodeRawRow(e *core.RequestEvent) (services.RawRow, error) {
	var body map[string]any
	if err := json.NewDecoder(e.Request.Body).Decode(&body); err != nil {
		return services.RawRow{}, err
	}
	if body == nil {
		return services.RawRow{}, errors.New("body is not a JSON object")
	}
	return services.RawRowFromMap(body), nil
}

// HandleRaumbuchAnalysis returns a handler that serves the analysis of a
// building's room book as JSON.
func HandleRaumbuchAnalysis(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		buildingID := e.Request.PathValue("buildingId")
		if buildingID == "" {
			return e.String(http.StatusBadRequest, "Missing building ID")
		}

		data, err := buildReport(app, cfg, buildingID, e.Request)
		if err != nil {
			log.Printf("raumbuch_api: %v", err)
			return reportError(e, err)
		}

		return e.JSON(http.StatusOK, data.Analysis)
	}
}

// HandleRoomCreate returns a handler that adds a room to a building. The
// validation messages are returned with the saved row; they never block it.
func HandleRoomCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		buildingID := e.Request.PathValue("buildingId")
		if buildingID == "" {
			return e.String(http.StatusBadRequest, "Missing building ID")
		}

		raw, err := decodeRawRow(e)
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}

		_, row, warnings, err := services.SaveRoom(app, buildingID, raw)
		if err != nil {
			log.Printf("raumbuch_api: create room in %s: %v", buildingID, err)
			status := statusFor(err)
			if status == http.StatusNotFound {
				return e.String(status, "Building not found")
			}
			return e.String(status, "Failed to save room")
		}

		SetRoomWarnings(e, warnings)
		return e.JSON(http.StatusCreated, map[string]any{
			"row":      row,
			"warnings": warnings,
		})
	}
}

// HandleRoomRecalculate returns a handler that recomputes a stored room with
// the current prices of its location.
func HandleRoomRecalculate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		roomID := e.Request.PathValue("id")
		if roomID == "" {
			return e.String(http.StatusBadRequest, "Missing room ID")
		}

		row, warnings, err := services.RecalculateRoom(app, roomID)
		if err != nil {
			log.Printf("raumbuch_api: recalculate %s: %v", roomID, err)
			status := statusFor(err)
			if status == http.StatusNotFound {
				return e.String(status, "Room not found")
			}
			return e.String(status, "Failed to recalculate room")
		}

		if len(warnings) > 0 {
			SetRoomWarnings(e, warnings)
		} else {
			SetToast(e, "success", "Raum neu berechnet")
		}
		return e.JSON(http.StatusOK, map[string]any{
			"row":      row,
			"warnings": warnings,
		})
	}
}

// HandleRoomValidate returns a handler that checks a room entry without
// storing it.
func HandleRoomValidate() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		raw, err := decodeRawRow(e)
		if err != nil {
			return e.String(http.StatusBadRequest, "Invalid request body")
		}
		return e.JSON(http.StatusOK, map[string]any{
			"warnings": services.ValidateRow(raw),
		})
	}
}
