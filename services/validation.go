package services

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type fieldCheck struct {
	value any
	rules []validation.Rule
}

// ValidateRow checks a candidate room entry and returns one message per
// failing field, in a fixed field order. It is advisory only: callers may
// still store the row, and the aggregation never looks at the result.
func ValidateRow(in RawRow) []string {
	checks := []fieldCheck{
		{ToNumber(in.Quantity, 0), []validation.Rule{
			validation.Min(0.0).Error("quantity must not be negative"),
		}},
		{ToNumber(in.PerformancePerHour, 0), []validation.Rule{
			validation.Min(0.0).Error("performancePerHour must not be negative"),
			// Min skips zero values, Required is what rejects them.
			validation.Required.Error("performancePerHour must be greater than zero to derive hours"),
		}},
		{ToNumber(in.UnitCount, 0), []validation.Rule{
			validation.Min(0.0).Error("unitCount must not be negative"),
		}},
		{strings.TrimSpace(in.Area), required("area")},
		{strings.TrimSpace(in.BuildingPart), required("buildingPart")},
		{strings.TrimSpace(in.Floor), required("floor")},
		{strings.TrimSpace(in.CleaningGroup), required("cleaningGroup")},
		{strings.TrimSpace(in.CleaningInterval), required("cleaningInterval")},
	}

	messages := []string{}
	for _, c := range checks {
		if err := validation.Validate(c.value, c.rules...); err != nil {
			messages = append(messages, err.Error())
		}
	}
	return messages
}

func required(field string) []validation.Rule {
	return []validation.Rule{validation.Required.Error(field + " is required")}
}
