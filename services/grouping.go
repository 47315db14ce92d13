package services

import "strings"

// Dimension is one of the classification fields a room book can be grouped by.
type Dimension int

const (
	DimensionArea Dimension = iota
	DimensionBuildingPart
	DimensionFloor
	DimensionCleaningGroup
)

// Dimensions lists every grouping dimension in display order.
var Dimensions = []Dimension{
	DimensionArea,
	DimensionBuildingPart,
	DimensionFloor,
	DimensionCleaningGroup,
}

// Key returns the row's value for the dimension.
func (d Dimension) Key(r Row) string {
	switch d {
	case DimensionArea:
		return r.Area
	case DimensionBuildingPart:
		return r.BuildingPart
	case DimensionFloor:
		return r.Floor
	case DimensionCleaningGroup:
		return r.CleaningGroup
	}
	return ""
}

// String returns the JSON field name of the dimension.
func (d Dimension) String() string {
	switch d {
	case DimensionArea:
		return "area"
	case DimensionBuildingPart:
		return "buildingPart"
	case DimensionFloor:
		return "floor"
	case DimensionCleaningGroup:
		return "cleaningGroup"
	}
	return "unknown"
}

// Label returns the German column caption used in exports and views.
func (d Dimension) Label() string {
	switch d {
	case DimensionArea:
		return "Bereich"
	case DimensionBuildingPart:
		return "Gebäudeteil"
	case DimensionFloor:
		return "Etage"
	case DimensionCleaningGroup:
		return "Reinigungsgruppe"
	}
	return ""
}

// Group is one partition produced by GroupBy.
type Group[T any] struct {
	Key   string
	Items []T
}

// GroupBy partitions items by key. Groups appear in the order their key was
// first seen and items keep their relative order. Items whose key is empty
// or only whitespace are left out of every group.
func GroupBy[T any](items []T, key func(T) string) []Group[T] {
	var groups []Group[T]
	index := make(map[string]int)
	for _, item := range items {
		k := key(item)
		if strings.TrimSpace(k) == "" {
			continue
		}
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[T]{Key: k})
		}
		groups[i].Items = append(groups[i].Items, item)
	}
	return groups
}

// GroupRows groups normalized rows along a dimension.
func GroupRows(rows []Row, d Dimension) []Group[Row] {
	return GroupBy(rows, d.Key)
}
