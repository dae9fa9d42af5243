package shared_test

import (
	"testing"

	"eventrix/shared"
	"eventrix/shared/constant"
	"eventrix/shared/dto"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "remainder rounds up",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "total smaller than limit",
			total:    3,
			limit:    10,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)

			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name     string `db:"name"`
		Status   string `db:"status"`
		Venue    string `db:"venue"`
		Internal string
	}

	req := updateRequest{
		Name:     "Tech Conference",
		Status:   "Completed",
		Internal: "ignored",
	}

	fields := shared.TransformFields(req, "admin@example.com")

	if fields["name"] != "Tech Conference" {
		t.Errorf("expected name to be 'Tech Conference', got %v", fields["name"])
	}

	if fields["status"] != "Completed" {
		t.Errorf("expected status to be 'Completed', got %v", fields["status"])
	}

	// Zero-value fields stay out of the update map.
	if _, ok := fields["venue"]; ok {
		t.Error("expected venue to be omitted")
	}

	// Fields without a db tag never reach the statement builder.
	if _, ok := fields["Internal"]; ok {
		t.Error("expected untagged field to be omitted")
	}

	if fields[constant.FieldModifiedBy] != "admin@example.com" {
		t.Errorf("expected modified_by to be set, got %v", fields[constant.FieldModifiedBy])
	}

	if _, ok := fields[constant.FieldModifiedAt]; !ok {
		t.Error("expected modified_at to be set")
	}
}

func TestFilterByID(t *testing.T) {
	group := shared.FilterByID(int64(42), "id", "events")

	if len(group.Filters) != 1 {
		t.Fatalf("expected 1 filter, got %d", len(group.Filters))
	}

	filter, ok := group.Filters[0].(dto.Filter)
	if !ok {
		t.Fatalf("expected dto.Filter, got %T", group.Filters[0])
	}

	if filter.Field != "id" || filter.Table != "events" || filter.Operator != dto.FilterOperatorEq {
		t.Errorf("unexpected filter: %+v", filter)
	}

	if filter.Value != int64(42) {
		t.Errorf("expected value 42, got %v", filter.Value)
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("event"); key != "event" {
		t.Errorf("expected 'event', got %s", key)
	}

	if key := shared.BuildCacheKey("event", "42"); key != "event:42" {
		t.Errorf("expected 'event:42', got %s", key)
	}

	if key := shared.BuildCacheKey("view", "events"); key != "view:events" {
		t.Errorf("expected 'view:events', got %s", key)
	}
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 1, Limit: 10, SortBy: "name", SortDir: "ASC"}
	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Available"},
		},
	}

	first := shared.BuildCacheKeyWithQuery("equipment", params, filter)
	second := shared.BuildCacheKeyWithQuery("equipment", params, filter)

	if first != second {
		t.Errorf("expected deterministic keys, got %s and %s", first, second)
	}

	other := shared.BuildCacheKeyWithQuery("equipment", dto.QueryParams{Page: 2, Limit: 10}, filter)
	if first == other {
		t.Error("expected distinct queries to produce distinct keys")
	}
}
