package shared_test

import (
	"agency/shared"
	"agency/shared/constant"
	"agency/shared/dto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{name: "no rows", total: 0, limit: 10, expected: 1},
		{name: "invalid limit", total: 25, limit: 0, expected: 1},
		{name: "exact pages", total: 20, limit: 10, expected: 2},
		{name: "partial last page", total: 21, limit: 10, expected: 3},
		{name: "single row", total: 1, limit: 10, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type slotUpdate struct {
		Label     string `db:"label"`
		SortOrder *int   `db:"sort_order"`
		Active    *bool  `db:"active"`
		Ignored   string `db:"-"`
		NoTag     string
	}

	zero := 0
	inactive := false

	tests := []struct {
		name     string
		data     slotUpdate
		expected map[string]any
	}{
		{
			name:     "zero values are skipped",
			data:     slotUpdate{},
			expected: map[string]any{},
		},
		{
			name: "pointer fields are dereferenced even when pointing at zero",
			data: slotUpdate{Label: "9:00 AM", SortOrder: &zero, Active: &inactive, Ignored: "x", NoTag: "y"},
			expected: map[string]any{
				"label":      "9:00 AM",
				"sort_order": 0,
				"active":     false,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(&tt.data, "admin@agency.test")

			assert.IsType(t, time.Time{}, result[constant.FieldModifiedAt])
			assert.Equal(t, "admin@agency.test", result[constant.FieldModifiedBy])

			delete(result, constant.FieldModifiedAt)
			delete(result, constant.FieldModifiedBy)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("BOOK-1", "booking_id", "consultations")

	assert.Equal(t, dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "booking_id",
				Value:    "BOOK-1",
				Operator: dto.FilterOperatorEq,
				Table:    "consultations",
			},
		},
	}, filter)

	where, args := filter.GetWhereClause()
	assert.Equal(t, "(consultations.booking_id = :booking_id)", where)
	assert.Equal(t, "BOOK-1", args["booking_id"])
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "availability", shared.BuildCacheKey("availability"))
	assert.Equal(t, "availability:2025-03-10", shared.BuildCacheKey("availability", "2025-03-10"))
	assert.Equal(t, "availability:2025-03-10:4", shared.AvailabilityKey("2025-03-10", 4))
	assert.Equal(t, "availability-generation:2025-03-10", shared.AvailabilityGenerationKey("2025-03-10"))
	assert.Equal(t, "lock:slot:2025-03-10:9:00 AM", shared.BuildCacheKey("lock", "slot", "2025-03-10", "9:00 AM"))
}
