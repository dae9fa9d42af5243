package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"eventrix/shared/dto"
	"eventrix/shared/repository"
)

type widget struct {
	ID     int64   `db:"id"`
	Name   string  `db:"name"`
	Status string  `db:"status"`
	Closed *string `db:"closed"`
	Meta   struct {
		Owner string `db:"owner"`
	} `db:"-"`
}

type taggedWidget struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Audit
}

type Audit struct {
	CreatedBy string `db:"created_by"`
}

func filterEq(field string, value any) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: field, Operator: dto.FilterOperatorEq, Value: value},
		},
	}
}

func TestMemory_InsertAssignsSerialID(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, widget{Name: "first"}))
	assert.NoError(t, repo.Insert(ctx, widget{Name: "second"}))

	first, err := repo.Get(ctx, filterEq("name", "first"))
	assert.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)

	second, err := repo.Get(ctx, filterEq("name", "second"))
	assert.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)
}

func TestMemory_InsertKeepsExplicitID(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, widget{ID: 42, Name: "explicit"}))
	assert.NoError(t, repo.Insert(ctx, widget{Name: "serial"}))

	// The sequence continues past the highest explicit id.
	serial, err := repo.Get(ctx, filterEq("name", "serial"))
	assert.NoError(t, err)
	assert.Equal(t, int64(43), serial.ID)
}

func TestMemory_GetReturnsZeroValueWhenMissing(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")

	got, err := repo.Get(context.Background(), filterEq("id", int64(99)))
	assert.NoError(t, err)
	assert.Equal(t, int64(0), got.ID)
}

func TestMemory_FilterOperators(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")
	ctx := context.Background()

	closed := "2024-06-01"
	assert.NoError(t, repo.InsertBulk(ctx, []widget{
		{Name: "Projector", Status: "Available"},
		{Name: "Speaker Set", Status: "Borrowed", Closed: &closed},
		{Name: "Microphone", Status: "Borrowed"},
	}))

	tests := []struct {
		name   string
		filter dto.FilterGroup
		want   int
	}{
		{
			name:   "eq",
			filter: filterEq("status", "Borrowed"),
			want:   2,
		},
		{
			name: "like is case insensitive",
			filter: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "name", Operator: dto.FilterOperatorLike, Value: "speaker"},
				},
			},
			want: 1,
		},
		{
			name: "is null",
			filter: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "closed", Operator: dto.FilterIsNull},
				},
			},
			want: 2,
		},
		{
			name: "is not null",
			filter: dto.FilterGroup{
				Filters: []any{
					dto.Filter{Field: "closed", Operator: dto.FilterIsNotNull},
				},
			},
			want: 1,
		},
		{
			name: "and group",
			filter: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorAnd,
				Filters: []any{
					dto.Filter{Field: "status", Operator: dto.FilterOperatorEq, Value: "Borrowed"},
					dto.Filter{Field: "closed", Operator: dto.FilterIsNull},
				},
			},
			want: 1,
		},
		{
			name: "or group",
			filter: dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "name", Operator: dto.FilterOperatorEq, Value: "Projector"},
					dto.Filter{Field: "name", Operator: dto.FilterOperatorEq, Value: "Microphone"},
				},
			},
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			count, err := repo.Count(ctx, tt.filter)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, count)
		})
	}
}

func TestMemory_UpdateSetsColumnsAndPointer(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, widget{Name: "Projector", Status: "Borrowed"}))

	err := repo.Update(ctx, map[string]any{
		"status": "Available",
		"closed": "2024-06-01",
	}, filterEq("id", int64(1)))
	assert.NoError(t, err)

	got, err := repo.Get(ctx, filterEq("id", int64(1)))
	assert.NoError(t, err)
	assert.Equal(t, "Available", got.Status)
	if assert.NotNil(t, got.Closed) {
		assert.Equal(t, "2024-06-01", *got.Closed)
	}
}

func TestMemory_UpdateEmbeddedColumn(t *testing.T) {
	repo := repository.NewMemory[taggedWidget]("widget", "id")
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, taggedWidget{Name: "Projector"}))

	err := repo.Update(ctx, map[string]any{"created_by": "admin"}, filterEq("id", int64(1)))
	assert.NoError(t, err)

	got, err := repo.Get(ctx, filterEq("id", int64(1)))
	assert.NoError(t, err)
	assert.Equal(t, "admin", got.CreatedBy)
}

func TestMemory_DeleteRequiresFilter(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")
	ctx := context.Background()

	assert.NoError(t, repo.Insert(ctx, widget{Name: "Projector"}))

	assert.Error(t, repo.Delete(ctx, dto.FilterGroup{}))

	assert.NoError(t, repo.Delete(ctx, filterEq("id", int64(1))))

	count, err := repo.Count(ctx, filterEq("id", int64(1)))
	assert.NoError(t, err)
	assert.Zero(t, count)
}

func TestMemory_ExistRequiresFilter(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")

	_, err := repo.Exist(context.Background(), dto.FilterGroup{})
	assert.Error(t, err)
}

func TestMemory_GetAllSortAndPaginate(t *testing.T) {
	repo := repository.NewMemory[widget]("widget", "id")
	ctx := context.Background()

	assert.NoError(t, repo.InsertBulk(ctx, []widget{
		{Name: "b"},
		{Name: "c"},
		{Name: "a"},
	}))

	models, err := repo.GetAll(ctx, dto.QueryParams{SortBy: "name", SortDir: "asc"}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, models, 3)
	assert.Equal(t, "a", models[0].Name)
	assert.Equal(t, "c", models[2].Name)

	page, err := repo.GetAll(ctx, dto.QueryParams{SortBy: "name", SortDir: "desc", Page: 2, Limit: 2}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Len(t, page, 1)
	assert.Equal(t, "a", page[0].Name)

	empty, err := repo.GetAll(ctx, dto.QueryParams{Page: 5, Limit: 10}, dto.FilterGroup{})
	assert.NoError(t, err)
	assert.Empty(t, empty)
}
