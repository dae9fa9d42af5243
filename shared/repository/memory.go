package repository

import (
	"context"
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"sync"

	"eventrix/shared/dto"

	"github.com/jmoiron/sqlx"
)

// Memory is the in-memory counterpart of Repository. It keeps models in a
// slice guarded by a mutex and evaluates the same FilterGroup DSL against the
// db-tagged struct fields, so a domain repository can swap drivers without
// touching callers. Transactions degrade to plain operations.
type Memory[T any] struct {
	mu            sync.RWMutex
	rows          []T
	entitas       string
	primaryColumn string
	nextID        int64
}

func NewMemory[T any](entitasName, primaryColumn string) *Memory[T] {
	return &Memory[T]{
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		nextID:        1,
	}
}

func (repo *Memory[T]) Insert(_ context.Context, model T) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.assignID(&model)
	repo.rows = append(repo.rows, model)

	return nil
}

func (repo *Memory[T]) InsertTx(ctx context.Context, _ *sqlx.Tx, model T) error {
	return repo.Insert(ctx, model)
}

func (repo *Memory[T]) InsertBulk(_ context.Context, models []T) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for _, model := range models {
		repo.assignID(&model)
		repo.rows = append(repo.rows, model)
	}

	return nil
}

func (repo *Memory[T]) InsertBulkTx(ctx context.Context, _ *sqlx.Tx, models []T) error {
	return repo.InsertBulk(ctx, models)
}

func (repo *Memory[T]) Get(_ context.Context, filter dto.FilterGroup, _ ...string) (T, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	for _, row := range repo.rows {
		if matchGroup(reflect.ValueOf(row), filter) {
			return row, nil
		}
	}

	var zero T

	return zero, nil
}

func (repo *Memory[T]) GetAll(_ context.Context, params dto.QueryParams, filter dto.FilterGroup, _ ...string) ([]T, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	var models []T

	for _, row := range repo.rows {
		if matchGroup(reflect.ValueOf(row), filter) {
			models = append(models, row)
		}
	}

	if params.SortBy != "" && params.SortDir != "" {
		desc := strings.EqualFold(params.SortDir, dto.SortDirDesc)

		slices.SortStableFunc(models, func(a, b T) int {
			cmp := compareValues(fieldByColumn(reflect.ValueOf(a), params.SortBy), fieldByColumn(reflect.ValueOf(b), params.SortBy))
			if desc {
				return -cmp
			}

			return cmp
		})
	}

	if params.Page > 0 && params.Limit > 0 {
		offset := (params.Page - 1) * params.Limit
		if offset >= len(models) {
			return nil, nil
		}

		models = models[offset:min(offset+params.Limit, len(models))]
	} else if params.Limit > 0 && params.Limit < len(models) {
		models = models[:params.Limit]
	}

	return models, nil
}

func (repo *Memory[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	if len(filter.Filters) == 0 {
		return false, errRequiredFilter
	}

	count, err := repo.Count(ctx, filter)

	return count > 0, err
}

func (repo *Memory[T]) Count(_ context.Context, filter dto.FilterGroup) (int, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	count := 0

	for _, row := range repo.rows {
		if matchGroup(reflect.ValueOf(row), filter) {
			count++
		}
	}

	return count, nil
}

func (repo *Memory[T]) Update(_ context.Context, mod map[string]any, filter dto.FilterGroup) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	for idx := range repo.rows {
		if !matchGroup(reflect.ValueOf(repo.rows[idx]), filter) {
			continue
		}

		value := reflect.ValueOf(&repo.rows[idx]).Elem()

		for column, newValue := range mod {
			if err := setByColumn(value, column, newValue); err != nil {
				return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
			}
		}
	}

	return nil
}

func (repo *Memory[T]) UpdateTx(ctx context.Context, _ *sqlx.Tx, mod map[string]any, filter dto.FilterGroup) error {
	return repo.Update(ctx, mod, filter)
}

func (repo *Memory[T]) Delete(_ context.Context, filter dto.FilterGroup) error {
	if len(filter.Filters) == 0 {
		return errRequiredFilter
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.rows = slices.DeleteFunc(repo.rows, func(row T) bool {
		return matchGroup(reflect.ValueOf(row), filter)
	})

	return nil
}

func (repo *Memory[T]) DeleteTx(ctx context.Context, _ *sqlx.Tx, filter dto.FilterGroup) error {
	return repo.Delete(ctx, filter)
}

// assignID emulates a serial column: an int64 primary field left at zero
// receives the next sequence value.
func (repo *Memory[T]) assignID(model *T) {
	field := fieldByColumn(reflect.ValueOf(model).Elem(), repo.primaryColumn)
	if !field.IsValid() || !field.CanSet() || field.Kind() != reflect.Int64 {
		return
	}

	if field.Int() == 0 {
		field.SetInt(repo.nextID)
		repo.nextID++

		return
	}

	if field.Int() >= repo.nextID {
		repo.nextID = field.Int() + 1
	}
}

func matchGroup(value reflect.Value, group dto.FilterGroup) bool {
	if len(group.Filters) == 0 {
		return true
	}

	isOr := group.Operator == dto.FilterGroupOperatorOr

	for _, raw := range group.Filters {
		var ok bool

		switch fill := raw.(type) {
		case dto.Filter:
			ok = matchFilter(value, fill)
		case dto.FilterGroup:
			ok = matchGroup(value, fill)
		default:
			ok = false
		}

		if isOr && ok {
			return true
		}

		if !isOr && !ok {
			return false
		}
	}

	return !isOr
}

func matchFilter(value reflect.Value, filter dto.Filter) bool {
	field := fieldByColumn(value, filter.Field)
	if !field.IsValid() {
		return false
	}

	switch filter.Operator {
	case dto.FilterOperatorEq:
		return compareValues(field, reflect.ValueOf(filter.Value)) == 0
	case dto.FilterOperatorNotEq:
		return compareValues(field, reflect.ValueOf(filter.Value)) != 0
	case dto.FilterOperatorLessEq:
		return compareValues(field, reflect.ValueOf(filter.Value)) <= 0
	case dto.FilterOperatorGreaterEq:
		return compareValues(field, reflect.ValueOf(filter.Value)) >= 0
	case dto.FilterOperatorLike:
		return strings.Contains(strings.ToLower(stringify(field)), strings.ToLower(fmt.Sprintf("%v", filter.Value)))
	case dto.FilterOperatorIn:
		items := reflect.ValueOf(filter.Value)
		if items.Kind() != reflect.Slice && items.Kind() != reflect.Array {
			return compareValues(field, items) == 0
		}

		for idx := range items.Len() {
			if compareValues(field, items.Index(idx)) == 0 {
				return true
			}
		}

		return false
	case dto.FilterIsNull:
		return field.Kind() == reflect.Pointer && field.IsNil()
	case dto.FilterIsNotNull:
		return field.Kind() != reflect.Pointer || !field.IsNil()
	default:
		return false
	}
}

// fieldByColumn resolves a struct field by its db tag, descending into
// anonymous structs the same way the SQL repository collects columns.
func fieldByColumn(value reflect.Value, column string) reflect.Value {
	if value.Kind() == reflect.Pointer {
		value = value.Elem()
	}

	if value.Kind() != reflect.Struct {
		return reflect.Value{}
	}

	reflectType := value.Type()

	for i := range reflectType.NumField() {
		structField := reflectType.Field(i)

		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			if nested := fieldByColumn(value.Field(i), column); nested.IsValid() {
				return nested
			}

			continue
		}

		if structField.Tag.Get("db") == column {
			return value.Field(i)
		}
	}

	return reflect.Value{}
}

func setByColumn(value reflect.Value, column string, newValue any) error {
	field := fieldByColumn(value, column)
	if !field.IsValid() || !field.CanSet() {
		return fmt.Errorf("no settable column %q", column)
	}

	incoming := reflect.ValueOf(newValue)

	if field.Kind() == reflect.Pointer && incoming.Kind() != reflect.Pointer {
		ptr := reflect.New(field.Type().Elem())
		if !incoming.Type().AssignableTo(field.Type().Elem()) {
			if !incoming.Type().ConvertibleTo(field.Type().Elem()) {
				return fmt.Errorf("cannot assign %s to column %q", incoming.Type(), column)
			}

			incoming = incoming.Convert(field.Type().Elem())
		}

		ptr.Elem().Set(incoming)
		field.Set(ptr)

		return nil
	}

	if incoming.Type().AssignableTo(field.Type()) {
		field.Set(incoming)

		return nil
	}

	if incoming.Type().ConvertibleTo(field.Type()) {
		field.Set(incoming.Convert(field.Type()))

		return nil
	}

	return fmt.Errorf("cannot assign %s to column %q", incoming.Type(), column)
}

// compareValues orders two reflected values, preferring numeric comparison
// and falling back to the string forms.
func compareValues(a, b reflect.Value) int {
	left := stringify(a)
	right := stringify(b)

	leftNum, leftErr := strconv.ParseFloat(left, 64)
	rightNum, rightErr := strconv.ParseFloat(right, 64)

	if leftErr == nil && rightErr == nil {
		switch {
		case leftNum < rightNum:
			return -1
		case leftNum > rightNum:
			return 1
		default:
			return 0
		}
	}

	return strings.Compare(left, right)
}

func stringify(value reflect.Value) string {
	if !value.IsValid() {
		return ""
	}

	if value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return ""
		}

		value = value.Elem()
	}

	return fmt.Sprintf("%v", value.Interface())
}
