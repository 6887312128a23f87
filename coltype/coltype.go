// Package coltype re-exports the library surface: the DataType value object
// and the schema readers built around it.
package coltype

import (
	"github.com/coltype/coltype/datatype"
	"github.com/coltype/coltype/schema"
)

// DataType is an immutable logical column type label.
type DataType = datatype.DataType

// Column represents a table column and its logical type.
type Column = schema.Column

// Table represents a table with its columns in ordinal order.
type Table = schema.Table

// Parser turns CREATE TABLE statements into Table descriptors.
type Parser = schema.Parser

// Inspector reads table descriptors from a live PostgreSQL database.
type Inspector = schema.Inspector

// Predefined logical types.
var (
	Boolean  = datatype.Boolean
	DateTime = datatype.DateTime
	Decimal  = datatype.Decimal
	Integer  = datatype.Integer
	Text     = datatype.Text
	VarChar  = datatype.VarChar
)
