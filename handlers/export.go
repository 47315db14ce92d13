package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"raumbuch/config"
	"raumbuch/services"
)

// sanitizeFilename removes characters that are unsafe for filenames.
func sanitizeFilename(s string) string {
	s = strings.ReplaceAll(s, " ", "-")
	s = strings.ReplaceAll(s, "/", "-")
	s = strings.ReplaceAll(s, "\\", "-")
	s = strings.ReplaceAll(s, ":", "-")
	return s
}

// exportFilename names a download after the building and today's date.
func exportFilename(data services.ReportData, ext string) string {
	return fmt.Sprintf("Raumbuch_%s_%s.%s", sanitizeFilename(data.Building.Name), time.Now().Format("2006-01-02"), ext)
}

// HandleRaumbuchExportExcel returns a handler that generates and downloads
// the room book of a building as an Excel file. The view filter applies.
func HandleRaumbuchExportExcel(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		buildingID := e.Request.PathValue("buildingId")
		if buildingID == "" {
			return e.String(http.StatusBadRequest, "Missing building ID")
		}

		data, err := buildReport(app, cfg, buildingID, e.Request)
		if err != nil {
			log.Printf("export_excel: %v", err)
			return reportError(e, err)
		}

		xlsxBytes, err := services.GenerateRaumbuchExcel(data)
		if err != nil {
			log.Printf("export_excel: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, "xlsx")))
		e.Response.Write(xlsxBytes)
		return nil
	}
}

// HandleRaumbuchExportPDF returns a handler that generates and downloads the
// room book of a building as a PDF file.
func HandleRaumbuchExportPDF(app *pocketbase.PocketBase, cfg config.Config) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		buildingID := e.Request.PathValue("buildingId")
		if buildingID == "" {
			return e.String(http.StatusBadRequest, "Missing building ID")
		}

		data, err := buildReport(app, cfg, buildingID, e.Request)
		if err != nil {
			log.Printf("export_pdf: %v", err)
			return reportError(e, err)
		}

		pdfBytes, err := services.GenerateRaumbuchPDF(data)
		if err != nil {
			log.Printf("export_pdf: failed to generate: %v", err)
			return e.String(http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, exportFilename(data, "pdf")))
		e.Response.Write(pdfBytes)
		return nil
	}
}
