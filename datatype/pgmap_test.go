package datatype

import "testing"

func TestFromPostgres(t *testing.T) {
	tests := []struct {
		name   string
		pgType string
		want   DataType
	}{
		{"boolean", "boolean", Boolean},
		{"bool internal", "bool", Boolean},
		{"catalog bool", "pg_catalog.bool", Boolean},
		{"integer", "integer", Integer},
		{"int4 internal", "int4", Integer},
		{"catalog int8", "pg_catalog.int8", Integer},
		{"smallint", "smallint", Integer},
		{"bigserial", "bigserial", Integer},
		{"numeric", "numeric", Decimal},
		{"numeric with modifiers", "numeric(10,2)", Decimal},
		{"double precision", "double precision", Decimal},
		{"float8 internal", "float8", Decimal},
		{"timestamp", "timestamp", DateTime},
		{"timestamptz verbose", "timestamp with time zone", DateTime},
		{"catalog timestamptz", "pg_catalog.timestamptz", DateTime},
		{"date", "date", DateTime},
		{"varchar", "varchar", VarChar},
		{"varchar with length", "varchar(255)", VarChar},
		{"character varying", "character varying", VarChar},
		{"bpchar internal", "bpchar", VarChar},
		{"text", "text", Text},
		{"catalog text", "pg_catalog.text", Text},
		{"mixed case input", "VARCHAR", VarChar},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromPostgres(tt.pgType); !got.Equal(tt.want) {
				t.Errorf("FromPostgres(%q) = %v; want %v", tt.pgType, got, tt.want)
			}
		})
	}
}

func TestFromPostgresOpenSet(t *testing.T) {
	tests := []struct {
		pgType string
		want   string
	}{
		{"uuid", "uuid"},
		{"jsonb", "jsonb"},
		{"text[]", "text[]"},
		{"inet", "inet"},
	}

	for _, tt := range tests {
		t.Run(tt.pgType, func(t *testing.T) {
			got := FromPostgres(tt.pgType)
			if got.IsZero() {
				t.Fatalf("FromPostgres(%q) returned absent value", tt.pgType)
			}
			if got.String() != tt.want {
				t.Errorf("FromPostgres(%q) = %q; want pass-through label %q", tt.pgType, got, tt.want)
			}
			for _, predefined := range Predefined() {
				if got.Equal(predefined) {
					t.Errorf("FromPostgres(%q) unexpectedly mapped to predefined %v", tt.pgType, predefined)
				}
			}
		})
	}
}

func TestFromPostgresEmpty(t *testing.T) {
	if got := FromPostgres(""); !got.IsZero() {
		t.Errorf("FromPostgres(\"\") = %v; want absent", got)
	}
}
