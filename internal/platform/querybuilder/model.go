package querybuilder

import (
	"fmt"
	"reflect"
	"strings"
)

// InsertModel builds an insert for every `db`-tagged exported field of model.
func InsertModel(table string, model any) (*InsertBuilder, error) {
	cols, vals, err := modelFields(model, false)
	if err != nil {
		return nil, err
	}
	return InsertInto(table).Columns(cols...).Values(vals...), nil
}

// UpdateModel builds an update that sets only the non-nil pointer fields of patch.
// The returned builder has no sets when every field is nil.
func UpdateModel(table string, patch any) (*UpdateBuilder, int, error) {
	cols, vals, err := modelFields(patch, true)
	if err != nil {
		return nil, 0, err
	}
	b := Update(table)
	for i, col := range cols {
		b.Set(col, vals[i])
	}
	return b, len(cols), nil
}

// Columns lists the `db` column names of a table model, in field order.
func Columns(model any) []string {
	typ := reflect.TypeOf(model)
	for typ != nil && typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}
	if typ == nil || typ.Kind() != reflect.Struct {
		return nil
	}

	out := make([]string, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		if col, ok := columnName(typ.Field(i)); ok {
			out = append(out, col)
		}
	}
	return out
}

func modelFields(model any, skipNilPointers bool) ([]string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return nil, nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("model must be struct")
	}

	typ := value.Type()
	cols := make([]string, 0, typ.NumField())
	vals := make([]any, 0, typ.NumField())
	for i := 0; i < typ.NumField(); i++ {
		col, ok := columnName(typ.Field(i))
		if !ok {
			continue
		}
		field := value.Field(i)
		if skipNilPointers {
			if field.Kind() != reflect.Pointer {
				return nil, nil, fmt.Errorf("patch field %s must be a pointer", typ.Field(i).Name)
			}
			if field.IsNil() {
				continue
			}
			field = field.Elem()
		}
		cols = append(cols, col)
		vals = append(vals, field.Interface())
	}

	if len(cols) == 0 && !skipNilPointers {
		return nil, nil, fmt.Errorf("model has no db columns")
	}
	return cols, vals, nil
}

func columnName(field reflect.StructField) (string, bool) {
	if field.PkgPath != "" {
		return "", false
	}
	tag := strings.TrimSpace(field.Tag.Get("db"))
	if tag == "" || tag == "-" {
		return "", false
	}
	col := strings.TrimSpace(strings.Split(tag, ",")[0])
	if col == "" || col == "-" {
		return "", false
	}
	return col, true
}
