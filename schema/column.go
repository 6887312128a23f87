// Package schema provides column and table descriptors built around the
// logical datatype.DataType label, plus two ways to obtain them: parsing
// CREATE TABLE DDL and inspecting a live PostgreSQL database.
package schema

import (
	"github.com/coltype/coltype/datatype"
)

// Column represents a table column and its logical type.
type Column struct {
	Name         string            `json:"name"`
	Position     int               `json:"position"` // ordinal_position
	Type         datatype.DataType `json:"type"`
	RawType      string            `json:"raw_type"` // PostgreSQL type name as declared
	IsNullable   bool              `json:"is_nullable"`
	DefaultValue *string           `json:"default_value,omitempty"`
	MaxLength    *int              `json:"max_length,omitempty"`
	Precision    *int              `json:"precision,omitempty"`
	Scale        *int              `json:"scale,omitempty"`
	Comment      string            `json:"comment,omitempty"`
}

// Table represents a table with its columns in ordinal order.
type Table struct {
	Schema  string    `json:"schema"`
	Name    string    `json:"name"`
	Columns []*Column `json:"columns"`
	Comment string    `json:"comment,omitempty"`
}

// Column returns the column with the given name, or nil.
func (t *Table) Column(name string) *Column {
	for _, col := range t.Columns {
		if col.Name == name {
			return col
		}
	}
	return nil
}
