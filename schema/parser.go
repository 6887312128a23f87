package schema

import (
	"fmt"
	"strconv"
	"strings"

	pg_query "github.com/pganalyze/pg_query_go/v6"

	"github.com/coltype/coltype/datatype"
)

// Parser turns CREATE TABLE statements into Table descriptors. Statements
// other than CREATE TABLE are ignored; this is a reader of column types, not
// a DDL processor.
type Parser struct {
	defaultSchema string
}

// NewParser creates a parser. Tables without a schema qualifier are placed
// in defaultSchema ("public" when empty).
func NewParser(defaultSchema string) *Parser {
	if defaultSchema == "" {
		defaultSchema = "public"
	}
	return &Parser{defaultSchema: defaultSchema}
}

// ParseSQL parses SQL content and returns the tables it creates, in
// statement order.
func (p *Parser) ParseSQL(sqlContent string) ([]*Table, error) {
	statements, err := pg_query.SplitWithParser(sqlContent, true)
	if err != nil {
		return nil, fmt.Errorf("failed to split SQL statements: %w", err)
	}

	var tables []*Table
	for _, stmt := range statements {
		if strings.TrimSpace(stmt) == "" {
			continue
		}

		result, err := pg_query.Parse(stmt)
		if err != nil {
			return nil, fmt.Errorf("pg_query parse error: %w. Statement: %q", err, stmt)
		}

		for _, parsed := range result.Stmts {
			if parsed.Stmt == nil {
				continue
			}
			createStmt, ok := parsed.Stmt.Node.(*pg_query.Node_CreateStmt)
			if !ok {
				continue
			}
			table := p.parseCreateTable(createStmt.CreateStmt)
			if table != nil {
				tables = append(tables, table)
			}
		}
	}

	return tables, nil
}

func (p *Parser) parseCreateTable(createStmt *pg_query.CreateStmt) *Table {
	if createStmt.Relation == nil {
		return nil
	}

	schemaName := createStmt.Relation.Schemaname
	if schemaName == "" {
		schemaName = p.defaultSchema
	}

	table := &Table{
		Schema:  schemaName,
		Name:    createStmt.Relation.Relname,
		Columns: make([]*Column, 0),
	}

	position := 1
	for _, element := range createStmt.TableElts {
		colDef, ok := element.Node.(*pg_query.Node_ColumnDef)
		if !ok {
			continue
		}
		table.Columns = append(table.Columns, p.parseColumnDef(colDef.ColumnDef, position))
		position++
	}

	return table
}

func (p *Parser) parseColumnDef(colDef *pg_query.ColumnDef, position int) *Column {
	column := &Column{
		Name:       colDef.Colname,
		Position:   position,
		IsNullable: true, // nullable unless explicitly NOT NULL
	}

	if colDef.TypeName != nil {
		rawType := p.parseTypeName(colDef.TypeName)
		column.RawType = rawType
		column.Type = datatype.FromPostgres(rawType)

		if len(colDef.TypeName.Typmods) > 0 {
			mods := extractTypeModifiers(colDef.TypeName.Typmods)
			if len(mods) > 0 {
				if column.Type.Equal(datatype.VarChar) {
					length := mods[0]
					column.MaxLength = &length
				} else {
					precision := mods[0]
					column.Precision = &precision
					if len(mods) > 1 {
						scale := mods[1]
						column.Scale = &scale
					}
				}
			}
		}
	}

	for _, constraint := range colDef.Constraints {
		cons := constraint.GetConstraint()
		if cons == nil {
			continue
		}
		switch cons.Contype {
		case pg_query.ConstrType_CONSTR_NOTNULL:
			column.IsNullable = false
		case pg_query.ConstrType_CONSTR_NULL:
			column.IsNullable = true
		case pg_query.ConstrType_CONSTR_PRIMARY:
			// PRIMARY KEY columns are implicitly NOT NULL
			column.IsNullable = false
		case pg_query.ConstrType_CONSTR_DEFAULT:
			if cons.RawExpr != nil {
				if expr := extractDefaultValue(cons.RawExpr); expr != "" {
					column.DefaultValue = &expr
				}
			}
		}
	}

	return column
}

// parseTypeName joins the qualified type name and maps internal spellings
// through datatype's normalization by way of the raw string.
func (p *Parser) parseTypeName(typeName *pg_query.TypeName) string {
	var parts []string
	for _, name := range typeName.Names {
		if str := name.GetString_(); str != nil {
			parts = append(parts, str.Sval)
		}
	}
	if len(parts) == 0 {
		return ""
	}

	dataType := strings.Join(parts, ".")

	// Compound names like {"pg_catalog","timestamptz"} keep the dotted form;
	// multi-word names like "timestamp without time zone" arrive as a single
	// element, so no special casing is needed here.
	if len(typeName.ArrayBounds) > 0 {
		dataType += "[]"
	}
	return dataType
}

func extractTypeModifiers(typmods []*pg_query.Node) []int {
	var mods []int
	for _, mod := range typmods {
		if aConst := mod.GetAConst(); aConst != nil {
			if intVal := aConst.GetIval(); intVal != nil {
				mods = append(mods, int(intVal.Ival))
			}
		}
	}
	return mods
}

// extractDefaultValue renders a default-value expression. Expressions beyond
// constants, casts, and simple function calls come back empty; the default
// is informational here.
func extractDefaultValue(expr *pg_query.Node) string {
	if expr == nil {
		return ""
	}

	switch e := expr.Node.(type) {
	case *pg_query.Node_AConst:
		if e.AConst.Isnull {
			return "NULL"
		}
		switch val := e.AConst.Val.(type) {
		case *pg_query.A_Const_Sval:
			return "'" + val.Sval.Sval + "'"
		case *pg_query.A_Const_Ival:
			return strconv.FormatInt(int64(val.Ival.Ival), 10)
		case *pg_query.A_Const_Fval:
			return val.Fval.Fval
		case *pg_query.A_Const_Boolval:
			if val.Boolval.Boolval {
				return "true"
			}
			return "false"
		}
	case *pg_query.Node_FuncCall:
		var parts []string
		for _, part := range e.FuncCall.Funcname {
			if str := part.GetString_(); str != nil {
				parts = append(parts, str.Sval)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ".") + "()"
		}
	case *pg_query.Node_TypeCast:
		if e.TypeCast.Arg != nil {
			return extractDefaultValue(e.TypeCast.Arg)
		}
	case *pg_query.Node_ColumnRef:
		// CURRENT_TIMESTAMP, CURRENT_USER and friends surface as column refs
		if len(e.ColumnRef.Fields) > 0 {
			if str := e.ColumnRef.Fields[0].GetString_(); str != nil {
				return str.Sval
			}
		}
	}
	return ""
}
