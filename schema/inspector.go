package schema

import (
	"context"
	"database/sql"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/coltype/coltype/datatype"
)

// Inspector reads table and column descriptors from a live PostgreSQL
// database through information_schema.
type Inspector struct {
	db *sql.DB
}

// NewInspector creates an inspector over an open database handle.
func NewInspector(db *sql.DB) *Inspector {
	return &Inspector{db: db}
}

type inspectedTable struct {
	name    string
	comment string
}

type inspectedColumn struct {
	tableName    string
	columnName   string
	position     int
	dataType     string
	isNullable   bool
	defaultValue sql.NullString
	maxLength    sql.NullInt64
	precision    sql.NullInt64
	scale        sql.NullInt64
	comment      sql.NullString
}

// Inspect returns the tables of targetSchema with their columns in ordinal
// order, each column carrying its logical DataType. The schema must exist;
// a schema with no tables yields an empty slice.
func (i *Inspector) Inspect(ctx context.Context, targetSchema string) ([]*Table, error) {
	if err := i.validateSchemaExists(ctx, targetSchema); err != nil {
		return nil, err
	}

	var (
		tableRows  []inspectedTable
		columnRows []inspectedColumn
	)

	// Tables and columns are independent queries; fetch them concurrently.
	var eg errgroup.Group
	eg.Go(func() error {
		rows, err := i.queryTables(ctx, targetSchema)
		if err != nil {
			return fmt.Errorf("failed to query tables: %w", err)
		}
		tableRows = rows
		return nil
	})
	eg.Go(func() error {
		rows, err := i.queryColumns(ctx, targetSchema)
		if err != nil {
			return fmt.Errorf("failed to query columns: %w", err)
		}
		columnRows = rows
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	tables := make([]*Table, 0, len(tableRows))
	byName := make(map[string]*Table, len(tableRows))
	for _, row := range tableRows {
		table := &Table{
			Schema:  targetSchema,
			Name:    row.name,
			Columns: make([]*Column, 0),
			Comment: row.comment,
		}
		tables = append(tables, table)
		byName[row.name] = table
	}

	for _, row := range columnRows {
		table, ok := byName[row.tableName]
		if !ok {
			continue
		}
		column := &Column{
			Name:       row.columnName,
			Position:   row.position,
			Type:       datatype.FromPostgres(row.dataType),
			RawType:    row.dataType,
			IsNullable: row.isNullable,
		}
		if row.defaultValue.Valid {
			defaultVal := row.defaultValue.String
			column.DefaultValue = &defaultVal
		}
		if row.maxLength.Valid {
			length := int(row.maxLength.Int64)
			column.MaxLength = &length
		}
		if row.precision.Valid {
			precision := int(row.precision.Int64)
			column.Precision = &precision
		}
		if row.scale.Valid {
			scale := int(row.scale.Int64)
			column.Scale = &scale
		}
		if row.comment.Valid {
			column.Comment = row.comment.String
		}
		table.Columns = append(table.Columns, column)
	}

	return tables, nil
}

func (i *Inspector) validateSchemaExists(ctx context.Context, targetSchema string) error {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM information_schema.schemata WHERE schema_name = $1
		)`

	var exists bool
	if err := i.db.QueryRowContext(ctx, query, targetSchema).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check schema existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("schema %q does not exist", targetSchema)
	}
	return nil
}

func (i *Inspector) queryTables(ctx context.Context, targetSchema string) ([]inspectedTable, error) {
	query := `
		SELECT t.table_name,
		       COALESCE(obj_description(c.oid, 'pg_class'), '') AS table_comment
		FROM information_schema.tables t
		JOIN pg_catalog.pg_class c ON c.relname = t.table_name
		JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace AND n.nspname = t.table_schema
		WHERE t.table_schema = $1
		  AND t.table_type = 'BASE TABLE'
		ORDER BY t.table_name`

	rows, err := i.db.QueryContext(ctx, query, targetSchema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []inspectedTable
	for rows.Next() {
		var row inspectedTable
		if err := rows.Scan(&row.name, &row.comment); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

func (i *Inspector) queryColumns(ctx context.Context, targetSchema string) ([]inspectedColumn, error) {
	query := `
		SELECT c.table_name,
		       c.column_name,
		       c.ordinal_position,
		       c.data_type,
		       c.is_nullable = 'YES',
		       c.column_default,
		       c.character_maximum_length,
		       c.numeric_precision,
		       c.numeric_scale,
		       col_description(pc.oid, c.ordinal_position) AS column_comment
		FROM information_schema.columns c
		JOIN pg_catalog.pg_class pc ON pc.relname = c.table_name
		JOIN pg_catalog.pg_namespace pn ON pn.oid = pc.relnamespace AND pn.nspname = c.table_schema
		WHERE c.table_schema = $1
		ORDER BY c.table_name, c.ordinal_position`

	rows, err := i.db.QueryContext(ctx, query, targetSchema)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []inspectedColumn
	for rows.Next() {
		var row inspectedColumn
		if err := rows.Scan(
			&row.tableName,
			&row.columnName,
			&row.position,
			&row.dataType,
			&row.isNullable,
			&row.defaultValue,
			&row.maxLength,
			&row.precision,
			&row.scale,
			&row.comment,
		); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
