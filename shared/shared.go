package shared

import (
	"agency/shared/constant"
	"agency/shared/dto"
	"agency/shared/timezone"
	"reflect"
	"strconv"
	"strings"
)

const cacheKeySeparator = ":"

// CalculateTotalPage returns the number of pages for total rows, never less than one.
func CalculateTotalPage(total, limit int) int {
	if total <= 0 || limit <= 0 {
		return 1
	}

	return (total + limit - 1) / limit
}

// TransformFields turns the set db-tagged fields of an update request into a column map stamped with the modifier.
// Zero values are skipped; pointers count as set even when they point at a zero value.
func TransformFields(data any, modifiedBy string) map[string]any {
	val := reflect.Indirect(reflect.ValueOf(data))
	typ := val.Type()

	columns := map[string]any{}

	for idx := range val.NumField() {
		column := typ.Field(idx).Tag.Get("db")
		field := val.Field(idx)

		if column == "" || column == "-" || field.IsZero() {
			continue
		}

		columns[column] = reflect.Indirect(field).Interface()
	}

	columns[constant.FieldModifiedAt] = timezone.Now()
	columns[constant.FieldModifiedBy] = modifiedBy

	return columns
}

// FilterByID matches a single row by its identifier column.
func FilterByID(id, fieldID, table string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: fieldID, Value: id, Operator: dto.FilterOperatorEq, Table: table},
		},
	}
}

// BuildCacheKey joins a prefix and its parts, e.g. "availability:2025-03-10".
func BuildCacheKey(prefix string, parts ...string) string {
	return strings.Join(append([]string{prefix}, parts...), cacheKeySeparator)
}

// AvailabilityKey is the cached slot list of date under a cache generation.
func AvailabilityKey(date string, gen int64) string {
	return BuildCacheKey(constant.CacheKeyAvailability, date, strconv.FormatInt(gen, 10))
}

// AvailabilityGenerationKey holds the generation counter of date's slot list.
func AvailabilityGenerationKey(date string) string {
	return BuildCacheKey(constant.CacheKeyAvailabilityGeneration, date)
}
