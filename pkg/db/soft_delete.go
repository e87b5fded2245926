package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// Querier is the subset of *sql.DB used to run built queries
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// SoftDeleteQuery helps build queries that respect soft deletes
type SoftDeleteQuery struct {
	baseQuery    string
	tableName    string
	deleteColumn string
	params       []interface{}
	whereClause  []string
	orderBy      string
}

// NewSoftDeleteQuery creates a new soft delete query builder
func NewSoftDeleteQuery(baseQuery, tableName string) *SoftDeleteQuery {
	return &SoftDeleteQuery{
		baseQuery:    baseQuery,
		tableName:    tableName,
		deleteColumn: "deleted_at",
	}
}

// WithDeleteColumn sets custom soft delete column name (default: deleted_at)
func (q *SoftDeleteQuery) WithDeleteColumn(column string) *SoftDeleteQuery {
	q.deleteColumn = column
	return q
}

// Where adds a WHERE condition
func (q *SoftDeleteQuery) Where(condition string, args ...interface{}) *SoftDeleteQuery {
	q.whereClause = append(q.whereClause, condition)
	q.params = append(q.params, args...)
	return q
}

// OrderBy sets the ORDER BY clause
func (q *SoftDeleteQuery) OrderBy(clause string) *SoftDeleteQuery {
	q.orderBy = clause
	return q
}

// Build builds the final query with soft delete filter. It can be called repeatedly.
func (q *SoftDeleteQuery) Build() (string, []interface{}) {
	where := make([]string, 0, len(q.whereClause)+1)
	where = append(where, q.whereClause...)
	where = append(where, fmt.Sprintf("%s.%s IS NULL", q.tableName, q.deleteColumn))

	finalQuery := q.baseQuery + " WHERE " + strings.Join(where, " AND ")
	if q.orderBy != "" {
		finalQuery += " ORDER BY " + q.orderBy
	}
	return finalQuery, q.params
}

// QueryRows executes the query and returns rows
func (q *SoftDeleteQuery) QueryRows(ctx context.Context, db Querier) (*sql.Rows, error) {
	query, params := q.Build()
	return db.QueryContext(ctx, query, params...)
}
