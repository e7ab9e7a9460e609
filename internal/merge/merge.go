// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package merge consolidates partial records produced by several dialect
// strategies into one record. Records are plain structs whose fields are
// pointers, slices or maps; a nil or empty field means "no value".
//
// Conflicts are resolved per field: the first record in the list that has
// a value for a field supplies it. A field tagged merge:"defaultfalse" of
// type *bool is set to false when no record supplies it.
package merge

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
)

// ErrEmptyInput is returned when Merge is given no records.
var ErrEmptyInput = errors.New("merge: no records to merge")

const optDefaultFalse = "defaultfalse"

var boolPtrType = reflect.TypeOf((*bool)(nil))

// Merge returns a new record where every field holds the value of the
// first record in records that sets it. records must be ordered by
// descending priority. Nil entries are skipped; if nothing but nil entries
// remain, ErrEmptyInput is returned.
func Merge[T any](records []*T) (*T, error) {
	present := make([]reflect.Value, 0, len(records))
	for _, r := range records {
		if r != nil {
			present = append(present, reflect.ValueOf(r).Elem())
		}
	}
	if len(present) == 0 {
		return nil, ErrEmptyInput
	}

	var out T
	ov := reflect.ValueOf(&out).Elem()
	if ov.Kind() != reflect.Struct {
		return nil, fmt.Errorf("merge: %s is not a struct type", ov.Type())
	}

	typ := ov.Type()
	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if !field.IsExported() {
			continue
		}
		for _, rv := range present {
			if v := rv.Field(i); isSet(v) {
				ov.Field(i).Set(v)
				break
			}
		}
		if !isSet(ov.Field(i)) && hasOption(field, optDefaultFalse) && field.Type == boolPtrType {
			f := false
			ov.Field(i).Set(reflect.ValueOf(&f))
		}
	}
	return &out, nil
}

// HasContent reports whether record is a non-nil struct pointer with at
// least one exported field set.
func HasContent(record any) bool {
	v := reflect.ValueOf(record)
	if !v.IsValid() || v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return false
	}
	typ := v.Type()
	for i := 0; i < typ.NumField(); i++ {
		if typ.Field(i).IsExported() && isSet(v.Field(i)) {
			return true
		}
	}
	return false
}

func isSet(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		return !v.IsNil()
	case reflect.Slice, reflect.Map:
		return v.Len() > 0
	default:
		return !v.IsZero()
	}
}

func hasOption(field reflect.StructField, option string) bool {
	tag, ok := field.Tag.Lookup("merge")
	if !ok {
		return false
	}
	for _, opt := range strings.Split(tag, ",") {
		if strings.TrimSpace(opt) == option {
			return true
		}
	}
	return false
}
