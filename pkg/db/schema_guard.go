package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// ColumnType represents expected column schema
type ColumnType struct {
	Name     string
	DataType string
	Nullable bool
}

// TableSchema represents expected table structure
type TableSchema struct {
	Name    string
	Columns []ColumnType
}

// SchemaGuard validates database schema matches expectations
type SchemaGuard struct {
	db *sql.DB
}

// NewSchemaGuard creates a new schema guard
func NewSchemaGuard(db *sql.DB) *SchemaGuard {
	return &SchemaGuard{db: db}
}

const columnsQuery = `
		SELECT COLUMN_NAME, DATA_TYPE, IS_NULLABLE
		FROM INFORMATION_SCHEMA.COLUMNS
		WHERE TABLE_SCHEMA = DATABASE()
		AND TABLE_NAME = ?
		ORDER BY ORDINAL_POSITION
	`

// ValidateTable checks that every expected column exists with a compatible type, and that columns
// the caller scans into non-null values are NOT NULL. All mismatches of the table are reported together.
func (sg *SchemaGuard) ValidateTable(ctx context.Context, schema TableSchema) error {
	actual, err := sg.columns(ctx, schema.Name)
	if err != nil {
		return err
	}
	if len(actual) == 0 {
		return fmt.Errorf("table %s does not exist or has no columns", schema.Name)
	}

	var problems []error
	for _, want := range schema.Columns {
		got, ok := actual[want.Name]
		switch {
		case !ok:
			problems = append(problems, fmt.Errorf("table %s missing expected column: %s", schema.Name, want.Name))
		case !matchesDataType(got.DataType, want.DataType):
			problems = append(problems, fmt.Errorf("table %s column %s has type %s, expected %s",
				schema.Name, want.Name, got.DataType, want.DataType))
		case got.Nullable && !want.Nullable:
			problems = append(problems, fmt.Errorf("table %s column %s is nullable, expected NOT NULL", schema.Name, want.Name))
		}
	}
	return errors.Join(problems...)
}

func (sg *SchemaGuard) columns(ctx context.Context, table string) (map[string]ColumnType, error) {
	rows, err := sg.db.QueryContext(ctx, columnsQuery, table)
	if err != nil {
		return nil, fmt.Errorf("failed to query table schema for %s: %w", table, err)
	}
	defer rows.Close()

	cols := make(map[string]ColumnType)
	for rows.Next() {
		var c ColumnType
		var nullable string
		if err := rows.Scan(&c.Name, &c.DataType, &nullable); err != nil {
			return nil, fmt.Errorf("failed to scan column info: %w", err)
		}
		c.Nullable = nullable == "YES"
		cols[c.Name] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read table schema for %s: %w", table, err)
	}
	return cols, nil
}

// matchesDataType checks if data types are compatible, so varchar matches varchar(191)
func matchesDataType(actual, expected string) bool {
	return strings.HasPrefix(strings.ToLower(actual), strings.ToLower(expected))
}

// ValidateTables validates every table and joins the failures
func (sg *SchemaGuard) ValidateTables(ctx context.Context, schemas []TableSchema) error {
	var errs []error
	for _, schema := range schemas {
		if err := sg.ValidateTable(ctx, schema); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
