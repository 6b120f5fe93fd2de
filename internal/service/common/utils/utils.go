/*
SPDX-FileCopyrightText: Red Hat

SPDX-License-Identifier: Apache-2.0
*/

package utils

import (
	"reflect"

	"github.com/stephenafamo/bob/dialect/psql"

	"github.com/epms-project/epms/internal/service/common/db"
)

type DBTag map[string]string

// Columns is used in the Columns method of the SelectBuilder to convert the DBTag to a slice of any.
func (r DBTag) Columns() []any {
	columns := make([]any, 0, len(r))
	for _, tag := range r {
		columns = append(columns, tag)
	}

	return columns
}

// structType returns the underlying struct type and value of a model, dereferencing pointers
func structType[T db.Model](s T) (reflect.Type, reflect.Value) {
	st := reflect.TypeOf(s)
	sv := reflect.ValueOf(s)
	if st.Kind() != reflect.Struct {
		st = st.Elem()
		sv = sv.Elem()
	}
	return st, sv
}

// GetAllDBTagsFromStruct returns a map of field names to their db tags.
func GetAllDBTagsFromStruct[T db.Model](s T) DBTag {
	tags := make(DBTag)
	st, _ := structType(s)
	for i := 0; i < st.NumField(); i++ {
		if tag := st.Field(i).Tag.Get("db"); tag != "" && tag != "-" {
			tags[st.Field(i).Name] = tag
		}
	}
	return tags
}

// GetDBTagsFromStructFields returns a map of field names to their db tags. It only returns the tags of the fields specified.
// Non-existent fields are ignored.
func GetDBTagsFromStructFields[T db.Model](s T, fields ...string) DBTag {
	tags := make(DBTag)
	st, _ := structType(s)
	for _, field := range fields {
		f, found := st.FieldByName(field)
		if !found {
			continue
		}
		tags[f.Name] = f.Tag.Get("db")
	}
	return tags
}

// GetAllColumns returns every db column of a model in struct declaration order.  A stable order is
// required so that generated SQL is deterministic.
func GetAllColumns[T db.Model](s T) []string {
	st, _ := structType(s)
	columns := make([]string, 0, st.NumField())
	for i := 0; i < st.NumField(); i++ {
		if tag := st.Field(i).Tag.Get("db"); tag != "" && tag != "-" {
			columns = append(columns, tag)
		}
	}
	return columns
}

// GetColumns returns the db columns for the named fields, keeping the order of the fields argument.
// Unknown fields are ignored.
func GetColumns[T db.Model](s T, fields []string) []string {
	st, _ := structType(s)
	columns := make([]string, 0, len(fields))
	for _, field := range fields {
		if f, ok := st.FieldByName(field); ok {
			columns = append(columns, f.Tag.Get("db"))
		}
	}
	return columns
}

// GetFieldValues returns the values of the named fields in the same order as GetColumns.
func GetFieldValues[T db.Model](s T, fields []string) []any {
	st, sv := structType(s)
	values := make([]any, 0, len(fields))
	for _, field := range fields {
		if _, ok := st.FieldByName(field); ok {
			values = append(values, sv.FieldByName(field).Interface())
		}
	}
	return values
}

// quoted converts a list of column names to quoted expressions usable in select/returning clauses
func quoted(columns []string) []any {
	result := make([]any, len(columns))
	for i, c := range columns {
		result[i] = psql.Quote(c)
	}
	return result
}
