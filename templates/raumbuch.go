// Package templates renders the HTML views of the room book. The components
// live in raumbuch.templ; run `templ generate` after editing it.
package templates

import (
	"strconv"

	"raumbuch/services"
)

// RaumbuchViewData is what the room book page needs to render.
type RaumbuchViewData struct {
	Report services.ReportData
	// BasePath is the page URL without query, e.g. /buildings/{id}/raumbuch.
	BasePath string
}

// ExportURL returns the download link for kind ("excel" or "pdf") with the
// active filter carried over.
func (d RaumbuchViewData) ExportURL(kind string) string {
	u := d.BasePath + "/export/" + kind
	if q := d.Report.Analysis.AppliedFilter.Query(); len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

type roomColumn struct {
	header  string
	numeric bool
	value   func(r services.Row) string
}

var roomColumns = []roomColumn{
	{"Bereich", false, func(r services.Row) string { return r.Area }},
	{"Gebäudeteil", false, func(r services.Row) string { return r.BuildingPart }},
	{"Etage", false, func(r services.Row) string { return r.Floor }},
	{"Bezeichnung", false, func(r services.Row) string { return r.Designation }},
	{"Reinigungsgruppe", false, func(r services.Row) string { return r.CleaningGroup }},
	{"Intervall", false, func(r services.Row) string { return r.CleaningInterval }},
	{"Menge (m²)", true, func(r services.Row) string { return services.FormatNumber(r.Quantity, 2) }},
	{"Anzahl", true, func(r services.Row) string { return services.FormatNumber(r.UnitCount, 0) }},
	{"Tage/Jahr", true, func(r services.Row) string { return services.FormatNumber(r.CleaningDaysPerYear, 0) }},
	{"Leistung/Std.", true, func(r services.Row) string { return services.FormatNumber(r.PerformancePerHour, 2) }},
	{"Std./Tag", true, func(r services.Row) string { return services.FormatNumber(r.HoursPerDay, 3) }},
	{"Std./Monat", true, func(r services.Row) string { return services.FormatNumber(r.HoursPerMonth, 2) }},
	{"Umsatz netto/Monat", true, func(r services.Row) string { return services.FormatEUR(r.NetSalesValuePerMonth) }},
	{"Bemerkung", false, func(r services.Row) string { return r.Remark }},
}

type summaryLine struct {
	label, value string
}

func summaryLines(s services.Summary) []summaryLine {
	return []summaryLine{
		{"Anzahl Räume", strconv.Itoa(s.TotalRooms)},
		{"Menge gesamt (m²)", services.FormatNumber(s.TotalQuantity, 2)},
		{"Aktive Menge pro Monat", services.FormatNumber(s.TotalActiveQuantityPerMonth, 2)},
		{"Stunden pro Monat", services.FormatNumber(s.TotalHoursPerMonth, 2)},
		{"Umsatz netto pro Monat", services.FormatEUR(s.TotalNetSalesValuePerMonth)},
		{"Umsatz brutto pro Monat", services.FormatEUR(s.TotalGrossSalesValuePerMonth)},
		{"Umsatz netto pro Jahr", services.FormatEUR(s.TotalNetSalesValuePerYear)},
	}
}

func areaPoints(stats []services.AreaStat) []services.ChartPoint {
	out := make([]services.ChartPoint, len(stats))
	for i, s := range stats {
		out[i] = services.ChartPoint{Label: s.Area, Value: s.NetSalesValuePerMonth}
	}
	return out
}

func cleaningGroupPoints(stats []services.CleaningGroupStat) []services.ChartPoint {
	out := make([]services.ChartPoint, len(stats))
	for i, s := range stats {
		out[i] = services.ChartPoint{Label: s.CleaningGroup, Value: s.NetSalesValuePerMonth}
	}
	return out
}
