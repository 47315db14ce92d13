// Package services holds the Raumbuch analysis pipeline (coercion, derived
// values, aggregation, chart data) together with the export generators and
// the store helpers that feed them.
package services

import (
	"strings"

	"github.com/spf13/cast"
)

// RawRow is a room book entry as it crosses the store or HTTP boundary.
// Numeric fields are left untyped and only become numbers through ToNumber.
type RawRow struct {
	ID         string `json:"id"`
	LocationID string `json:"locationId"`
	BuildingID string `json:"buildingId"`

	Area             string `json:"area"`
	BuildingPart     string `json:"buildingPart"`
	Floor            string `json:"floor"`
	Designation      string `json:"designation"`
	CleaningGroup    string `json:"cleaningGroup"`
	CleaningInterval string `json:"cleaningInterval"`

	Quantity                 any `json:"quantity"`
	ActiveQuantity           any `json:"activeQuantity"`
	InactiveQuantity         any `json:"inactiveQuantity"`
	UnitCount                any `json:"unitCount"`
	CleaningDaysPerYear      any `json:"cleaningDaysPerYear"`
	CleaningDaysPerMonth     any `json:"cleaningDaysPerMonth"`
	PerformancePerHour       any `json:"performancePerHour"`
	PerformancePerHourActual any `json:"performancePerHourActual"`
	Surcharge                any `json:"surcharge"`

	HoursPerDay               any `json:"hoursPerDay"`
	HoursPerMonth             any `json:"hoursPerMonth"`
	ActiveQuantityPerMonth    any `json:"activeQuantityPerMonth"`
	NetSalesValuePerMonth     any `json:"netSalesValuePerMonth"`
	NetSalesValuePerYear      any `json:"netSalesValuePerYear"`
	GrossSalesValuePerMonth   any `json:"grossSalesValuePerMonth"`
	NetInvoiceValuePerMonth   any `json:"netInvoiceValuePerMonth"`
	GrossInvoiceValuePerMonth any `json:"grossInvoiceValuePerMonth"`

	Remark            string `json:"remark"`
	Reduction         string `json:"reduction"`
	CleaningDaysLabel string `json:"cleaningDaysLabel"`
}

// Row is a normalized room book entry. Every numeric field is finite.
// Empty classification fields mean "not set" and never form a group.
type Row struct {
	ID         string `json:"id"`
	LocationID string `json:"locationId"`
	BuildingID string `json:"buildingId"`

	Area             string `json:"area"`
	BuildingPart     string `json:"buildingPart"`
	Floor            string `json:"floor"`
	Designation      string `json:"designation"`
	CleaningGroup    string `json:"cleaningGroup"`
	CleaningInterval string `json:"cleaningInterval"`

	Quantity                 float64 `json:"quantity"`
	ActiveQuantity           float64 `json:"activeQuantity"`
	InactiveQuantity         float64 `json:"inactiveQuantity"`
	UnitCount                float64 `json:"unitCount"`
	CleaningDaysPerYear      float64 `json:"cleaningDaysPerYear"`
	CleaningDaysPerMonth     float64 `json:"cleaningDaysPerMonth"`
	PerformancePerHour       float64 `json:"performancePerHour"`
	PerformancePerHourActual float64 `json:"performancePerHourActual"`
	Surcharge                float64 `json:"surcharge"`

	HoursPerDay               float64 `json:"hoursPerDay"`
	HoursPerMonth             float64 `json:"hoursPerMonth"`
	ActiveQuantityPerMonth    float64 `json:"activeQuantityPerMonth"`
	NetSalesValuePerMonth     float64 `json:"netSalesValuePerMonth"`
	NetSalesValuePerYear      float64 `json:"netSalesValuePerYear"`
	GrossSalesValuePerMonth   float64 `json:"grossSalesValuePerMonth"`
	NetInvoiceValuePerMonth   float64 `json:"netInvoiceValuePerMonth"`
	GrossInvoiceValuePerMonth float64 `json:"grossInvoiceValuePerMonth"`

	Remark            string `json:"remark"`
	Reduction         string `json:"reduction"`
	CleaningDaysLabel string `json:"cleaningDaysLabel"`
}

// Location carries the unit prices used to bill a room.
type Location struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	PricePerHour       float64 `json:"pricePerHour"`
	PricePerHour7Days  float64 `json:"pricePerHour7Days"`
	PricePerHourSunday float64 `json:"pricePerHourSunday"`
}

// rowField binds one field of the room book to its JSON key, its store
// column and its slot in both row shapes.
type rowField struct {
	Key    string
	Column string
	raw    func(*RawRow) *any
	norm   func(*Row) *float64
}

type textField struct {
	Key    string
	Column string
	raw    func(*RawRow) *string
	norm   func(*Row) *string
}

// numericFields lists every measurement and derived field in store order.
var numericFields = []rowField{
	{"quantity", "quantity", func(r *RawRow) *any { return &r.Quantity }, func(r *Row) *float64 { return &r.Quantity }},
	{"activeQuantity", "active_quantity", func(r *RawRow) *any { return &r.ActiveQuantity }, func(r *Row) *float64 { return &r.ActiveQuantity }},
	{"inactiveQuantity", "inactive_quantity", func(r *RawRow) *any { return &r.InactiveQuantity }, func(r *Row) *float64 { return &r.InactiveQuantity }},
	{"unitCount", "unit_count", func(r *RawRow) *any { return &r.UnitCount }, func(r *Row) *float64 { return &r.UnitCount }},
	{"cleaningDaysPerYear", "cleaning_days_per_year", func(r *RawRow) *any { return &r.CleaningDaysPerYear }, func(r *Row) *float64 { return &r.CleaningDaysPerYear }},
	{"cleaningDaysPerMonth", "cleaning_days_per_month", func(r *RawRow) *any { return &r.CleaningDaysPerMonth }, func(r *Row) *float64 { return &r.CleaningDaysPerMonth }},
	{"performancePerHour", "performance_per_hour", func(r *RawRow) *any { return &r.PerformancePerHour }, func(r *Row) *float64 { return &r.PerformancePerHour }},
	{"performancePerHourActual", "performance_per_hour_actual", func(r *RawRow) *any { return &r.PerformancePerHourActual }, func(r *Row) *float64 { return &r.PerformancePerHourActual }},
	{"surcharge", "surcharge", func(r *RawRow) *any { return &r.Surcharge }, func(r *Row) *float64 { return &r.Surcharge }},
	{"hoursPerDay", "hours_per_day", func(r *RawRow) *any { return &r.HoursPerDay }, func(r *Row) *float64 { return &r.HoursPerDay }},
	{"hoursPerMonth", "hours_per_month", func(r *RawRow) *any { return &r.HoursPerMonth }, func(r *Row) *float64 { return &r.HoursPerMonth }},
	{"activeQuantityPerMonth", "active_quantity_per_month", func(r *RawRow) *any { return &r.ActiveQuantityPerMonth }, func(r *Row) *float64 { return &r.ActiveQuantityPerMonth }},
	{"netSalesValuePerMonth", "net_sales_value_per_month", func(r *RawRow) *any { return &r.NetSalesValuePerMonth }, func(r *Row) *float64 { return &r.NetSalesValuePerMonth }},
	{"netSalesValuePerYear", "net_sales_value_per_year", func(r *RawRow) *any { return &r.NetSalesValuePerYear }, func(r *Row) *float64 { return &r.NetSalesValuePerYear }},
	{"grossSalesValuePerMonth", "gross_sales_value_per_month", func(r *RawRow) *any { return &r.GrossSalesValuePerMonth }, func(r *Row) *float64 { return &r.GrossSalesValuePerMonth }},
	{"netInvoiceValuePerMonth", "net_invoice_value_per_month", func(r *RawRow) *any { return &r.NetInvoiceValuePerMonth }, func(r *Row) *float64 { return &r.NetInvoiceValuePerMonth }},
	{"grossInvoiceValuePerMonth", "gross_invoice_value_per_month", func(r *RawRow) *any { return &r.GrossInvoiceValuePerMonth }, func(r *Row) *float64 { return &r.GrossInvoiceValuePerMonth }},
}

var textFields = []textField{
	{"area", "area", func(r *RawRow) *string { return &r.Area }, func(r *Row) *string { return &r.Area }},
	{"buildingPart", "building_part", func(r *RawRow) *string { return &r.BuildingPart }, func(r *Row) *string { return &r.BuildingPart }},
	{"floor", "floor", func(r *RawRow) *string { return &r.Floor }, func(r *Row) *string { return &r.Floor }},
	{"designation", "designation", func(r *RawRow) *string { return &r.Designation }, func(r *Row) *string { return &r.Designation }},
	{"cleaningGroup", "cleaning_group", func(r *RawRow) *string { return &r.CleaningGroup }, func(r *Row) *string { return &r.CleaningGroup }},
	{"cleaningInterval", "cleaning_interval", func(r *RawRow) *string { return &r.CleaningInterval }, func(r *Row) *string { return &r.CleaningInterval }},
	{"remark", "remark", func(r *RawRow) *string { return &r.Remark }, func(r *Row) *string { return &r.Remark }},
	{"reduction", "reduction", func(r *RawRow) *string { return &r.Reduction }, func(r *Row) *string { return &r.Reduction }},
	{"cleaningDaysLabel", "cleaning_days_label", func(r *RawRow) *string { return &r.CleaningDaysLabel }, func(r *Row) *string { return &r.CleaningDaysLabel }},
}

// NumericColumns returns the store column names of all numeric fields.
func NumericColumns() []string {
	cols := make([]string, len(numericFields))
	for i, f := range numericFields {
		cols[i] = f.Column
	}
	return cols
}

// TextColumns returns the store column names of all text fields.
func TextColumns() []string {
	cols := make([]string, len(textFields))
	for i, f := range textFields {
		cols[i] = f.Column
	}
	return cols
}

// NormalizeRow converts a raw row into its canonical shape. Numeric fields go
// through ToNumber with a default of 0; text fields are trimmed so grouping
// keys, filter options and filter values agree.
func NormalizeRow(raw RawRow) Row {
	row := Row{
		ID:         raw.ID,
		LocationID: raw.LocationID,
		BuildingID: raw.BuildingID,
	}
	for _, f := range textFields {
		*f.norm(&row) = strings.TrimSpace(*f.raw(&raw))
	}
	for _, f := range numericFields {
		*f.norm(&row) = ToNumber(*f.raw(&raw), 0)
	}
	return row
}

// finite returns a copy of r with NaN and ±Inf replaced by 0, the shape a
// row takes once it has been stored.
func (r Row) finite() Row {
	for _, f := range numericFields {
		v := f.norm(&r)
		*v = num(*v)
	}
	return r
}

// Preprocess normalizes every raw row, keeping order and count.
func Preprocess(raw []RawRow) []Row {
	rows := make([]Row, len(raw))
	for i, r := range raw {
		rows[i] = NormalizeRow(r)
	}
	return rows
}

// RawRowFromMap builds a RawRow from a loosely shaped map. Both the JSON keys
// ("netSalesValuePerMonth") and the store columns ("net_sales_value_per_month")
// are recognised; JSON keys win when both are present.
func RawRowFromMap(m map[string]any) RawRow {
	var raw RawRow
	raw.ID = stringValue(lookup(m, "id", "id"))
	raw.LocationID = stringValue(lookup(m, "locationId", "location"))
	raw.BuildingID = stringValue(lookup(m, "buildingId", "building"))
	for _, f := range textFields {
		*f.raw(&raw) = stringValue(lookup(m, f.Key, f.Column))
	}
	for _, f := range numericFields {
		*f.raw(&raw) = lookup(m, f.Key, f.Column)
	}
	return raw
}

func lookup(m map[string]any, key, column string) any {
	if v, ok := m[key]; ok {
		return v
	}
	return m[column]
}

// stringValue turns nil into "" so that a null classification stays empty
// instead of becoming the literal "<nil>".
func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	}
	return cast.ToString(v)
}
