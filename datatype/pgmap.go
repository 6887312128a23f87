package datatype

import "strings"

// pgLogicalTypes maps normalized PostgreSQL type names onto the predefined
// logical types. Names absent from this map pass through FromPostgres as
// open-set labels.
var pgLogicalTypes = map[string]DataType{
	"boolean": Boolean,

	"smallint":    Integer,
	"integer":     Integer,
	"bigint":      Integer,
	"serial":      Integer,
	"smallserial": Integer,
	"bigserial":   Integer,

	"numeric":          Decimal,
	"decimal":          Decimal,
	"real":             Decimal,
	"double precision": Decimal,
	"money":            Decimal,

	"date":        DateTime,
	"time":        DateTime,
	"timetz":      DateTime,
	"timestamp":   DateTime,
	"timestamptz": DateTime,

	"varchar":   VarChar,
	"character": VarChar,

	"text": Text,
}

// pgInternalNames maps PostgreSQL internal spellings to their standard SQL
// names, so that "int4", "pg_catalog.bool" and "timestamp with time zone"
// all land on the same bucket.
var pgInternalNames = map[string]string{
	"int2":   "smallint",
	"int4":   "integer",
	"int8":   "bigint",
	"float4": "real",
	"float8": "double precision",
	"bool":   "boolean",

	"bpchar":            "character",
	"char":              "character",
	"character varying": "varchar",

	"timestamp with time zone":    "timestamptz",
	"timestamp without time zone": "timestamp",
	"time with time zone":         "timetz",
	"time without time zone":      "time",
}

// FromPostgres maps a PostgreSQL type name onto a logical DataType. The name
// may carry a pg_catalog prefix, internal spelling (int4, bpchar, ...),
// length/precision modifiers, or array bounds; all are normalized away
// before the lookup. Names outside the known buckets come back as a
// DataType carrying the normalized name itself, and an empty name yields the
// absent value.
func FromPostgres(pgType string) DataType {
	name := normalizePostgresName(pgType)
	if name == "" {
		return DataType{}
	}
	if dt, ok := pgLogicalTypes[name]; ok {
		return dt
	}
	return DataType{label: name}
}

func normalizePostgresName(pgType string) string {
	name := strings.ToLower(strings.TrimSpace(pgType))

	// Strip modifiers: varchar(255), numeric(10,2)
	if idx := strings.IndexByte(name, '('); idx >= 0 {
		end := strings.IndexByte(name, ')')
		if end > idx {
			name = strings.TrimSpace(name[:idx] + name[end+1:])
		} else {
			name = strings.TrimSpace(name[:idx])
		}
	}

	name = strings.TrimPrefix(name, "pg_catalog.")

	if mapped, ok := pgInternalNames[name]; ok {
		return mapped
	}
	return name
}
