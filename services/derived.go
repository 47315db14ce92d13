package services

// Weeks per month and weeks per year used to spread yearly cleaning days
// over a month. The factor is kept at five decimals to match historical
// spreadsheets.
const (
	weeksPerMonth = 4.33333
	weeksPerYear  = 52

	// DailyUnitCount is the "Anzahl" value that selects the every-day price tier.
	DailyUnitCount = 7
)

// PriceForUnitCount picks the hourly price tier for a room.
func PriceForUnitCount(unitCount, pricePerHour, pricePerHour7Days float64) float64 {
	if unitCount == DailyUnitCount {
		return pricePerHour7Days
	}
	return pricePerHour
}

// CalculateDerivedValues completes a partial room entry with its billing and
// time figures. Each step is rounded before it feeds the next one, so the
// result carries the same cumulative rounding as the legacy spreadsheets.
//
// performancePerHour is used as a divisor unguarded: a zero rate yields
// ±Inf/NaN hours and revenue, which ValidateRow reports beforehand.
func CalculateDerivedValues(in RawRow, pricePerHour, pricePerHour7Days float64) Row {
	row := NormalizeRow(in)

	quantity := row.Quantity
	daysPerYear := row.CleaningDaysPerYear
	performance := row.PerformancePerHour

	row.CleaningDaysPerMonth = Round(daysPerYear*weeksPerMonth/weeksPerYear, 2)
	row.ActiveQuantityPerMonth = Round(quantity*row.CleaningDaysPerMonth, 2)
	row.HoursPerDay = Round(quantity/performance, 3)
	row.HoursPerMonth = Round(row.CleaningDaysPerMonth*row.HoursPerDay, 2)

	price := PriceForUnitCount(row.UnitCount, pricePerHour, pricePerHour7Days)
	row.NetSalesValuePerMonth = Round((quantity/performance)*daysPerYear*price/12, 2)
	row.NetSalesValuePerYear = Round(row.NetSalesValuePerMonth*12, 2)

	return row
}

// CalculateForLocation is CalculateDerivedValues with the prices of loc.
func CalculateForLocation(in RawRow, loc Location) Row {
	row := CalculateDerivedValues(in, loc.PricePerHour, loc.PricePerHour7Days)
	if row.LocationID == "" {
		row.LocationID = loc.ID
	}
	return row
}
