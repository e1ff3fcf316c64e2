package store

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"strings"
	"time"
)

// All code interacting with a database is here

var (
	//go:embed skeletons/clickhouse/create.txt
	chCreate string
	//go:embed skeletons/postgres/create.txt
	pgCreate string

	//go:embed skeletons/clickhouse/types.txt
	chTypes string
	//go:embed skeletons/postgres/types.txt
	pgTypes string

	//go:embed skeletons/clickhouse/dropif.txt
	chDropIf string
	//go:embed skeletons/postgres/dropif.txt
	pgDropIf string

	//go:embed skeletons/clickhouse/insert.txt
	chInsert string
	//go:embed skeletons/postgres/insert.txt
	pgInsert string
)

const (
	ch = "clickhouse"
	pg = "postgres"
)

// DataTypes are the column types the store supports.
type DataTypes uint8

const (
	DTunknown DataTypes = 0 + iota
	DTfloat
	DTint
	DTstring
	DTdate
)

func (dt DataTypes) String() string {
	switch dt {
	case DTfloat:
		return "float"
	case DTint:
		return "int"
	case DTstring:
		return "string"
	case DTdate:
		return "date"
	default:
		return "unknown"
	}
}

// Field is one column of a store table.
type Field struct {
	Name string
	DT   DataTypes
}

// Dialect maps table operations to engine-specific SQL.  The skeletons are
// text templates with ?TableName, ?Fields and ?OrderBy placeholders.
type Dialect struct {
	db      *sql.DB
	dialect string

	dtTypes []string
	dbTypes []string

	create string
	insert string
	dropIf string
}

func NewDialect(dialect string, db *sql.DB) (*Dialect, error) {
	dialect = strings.ToLower(dialect)

	d := &Dialect{db: db, dialect: dialect}

	var types string
	switch d.dialect {
	case ch:
		d.create, d.dropIf, d.insert = chCreate, chDropIf, chInsert
		types = chTypes
	case pg:
		d.create, d.dropIf, d.insert = pgCreate, pgDropIf, pgInsert
		types = pgTypes
	default:
		return nil, fmt.Errorf("no skeletons for database %s", dialect)
	}

	l := strings.Split(types, "\n")
	for _, lm := range l {
		if strings.Trim(lm, " ") == "" {
			continue
		}

		t := strings.Split(lm, ",")
		if len(t) != 2 {
			return nil, fmt.Errorf("bad types line %q", lm)
		}

		d.dtTypes = append(d.dtTypes, t[0])
		d.dbTypes = append(d.dbTypes, t[1])
	}

	return d, nil
}

// ***************** Methods *****************

func (d *Dialect) DialectName() string {
	return d.dialect
}

func (d *Dialect) Close() error {
	return d.db.Close()
}

func (d *Dialect) dbtype(dt DataTypes) (string, error) {
	for ind := 0; ind < len(d.dtTypes); ind++ {
		if d.dtTypes[ind] == dt.String() {
			return d.dbTypes[ind], nil
		}
	}

	return "", fmt.Errorf("no %s type for %s", d.dialect, dt)
}

// CreateSQL builds the CREATE TABLE statement.  orderBy is the MergeTree
// sort key and is ignored by engines that have none.
func (d *Dialect) CreateSQL(tableName, orderBy string, fields []Field) (string, error) {
	var defs []string
	for _, f := range fields {
		var (
			dbType string
			e      error
		)

		if dbType, e = d.dbtype(f.DT); e != nil {
			return "", e
		}

		defs = append(defs, fmt.Sprintf("    %s %s", f.Name, dbType))
	}

	sqlStr := strings.ReplaceAll(d.create, "?TableName", tableName)
	sqlStr = strings.ReplaceAll(sqlStr, "?Fields", strings.Join(defs, ",\n"))
	sqlStr = strings.ReplaceAll(sqlStr, "?OrderBy", orderBy)

	return sqlStr, nil
}

// DropIfSQL builds the DROP TABLE IF EXISTS statement.
func (d *Dialect) DropIfSQL(tableName string) string {
	return strings.ReplaceAll(d.dropIf, "?TableName", tableName)
}

// InsertSQL builds a literal-value INSERT for the whole table.  cols is
// column-major and every column must have the same length.
func (d *Dialect) InsertSQL(tableName string, fields []Field, cols []any) (string, error) {
	if len(fields) != len(cols) {
		return "", fmt.Errorf("%d fields but %d columns", len(fields), len(cols))
	}

	n := -1
	for ind := 0; ind < len(cols); ind++ {
		m, e := colLen(cols[ind])
		if e != nil {
			return "", e
		}

		if n >= 0 && m != n {
			return "", fmt.Errorf("column length mismatch: %d vs %d", n, m)
		}
		n = m
	}

	var names []string
	for _, f := range fields {
		names = append(names, f.Name)
	}

	sqlStr := strings.ReplaceAll(d.insert, "?TableName", tableName)
	sqlStr = strings.ReplaceAll(sqlStr, "?Fields", strings.Join(names, ", "))

	var tuples []string
	for row := 0; row < n; row++ {
		var vals []string
		for ind := 0; ind < len(cols); ind++ {
			vals = append(vals, literal(cols[ind], row))
		}

		tuples = append(tuples, "("+strings.Join(vals, ", ")+")")
	}

	return sqlStr + strings.Join(tuples, ",\n"), nil
}

// Create drops and recreates the table, then inserts cols.  Full replace,
// never append: a rerun leaves the same table a single run would.
func (d *Dialect) Create(ctx context.Context, tableName, orderBy string, fields []Field, cols []any) error {
	if _, e := d.db.ExecContext(ctx, d.DropIfSQL(tableName)); e != nil {
		return e
	}

	var (
		createStr string
		e         error
	)

	if createStr, e = d.CreateSQL(tableName, orderBy, fields); e != nil {
		return e
	}

	if _, e1 := d.db.ExecContext(ctx, createStr); e1 != nil {
		return e1
	}

	var insertStr string
	if insertStr, e = d.InsertSQL(tableName, fields, cols); e != nil {
		return e
	}

	_, e2 := d.db.ExecContext(ctx, insertStr)

	return e2
}

// Read runs qry and returns the column names and rows, values boxed as
// whatever the driver hands back.
func (d *Dialect) Read(ctx context.Context, qry string) (colNames []string, rows [][]any, err error) {
	var res *sql.Rows
	if res, err = d.db.QueryContext(ctx, qry); err != nil {
		return nil, nil, err
	}
	defer func() { _ = res.Close() }()

	if colNames, err = res.Columns(); err != nil {
		return nil, nil, err
	}

	for res.Next() {
		vals := make([]any, len(colNames))
		ptrs := make([]any, len(colNames))
		for ind := range vals {
			ptrs[ind] = &vals[ind]
		}

		if e := res.Scan(ptrs...); e != nil {
			return nil, nil, e
		}

		rows = append(rows, vals)
	}

	return colNames, rows, res.Err()
}

// ***************** helpers *****************

func colLen(col any) (int, error) {
	switch d := col.(type) {
	case []float64:
		return len(d), nil
	case []int:
		return len(d), nil
	case []string:
		return len(d), nil
	case []time.Time:
		return len(d), nil
	default:
		return 0, fmt.Errorf("unsupported column type %T", col)
	}
}

func literal(col any, row int) string {
	switch d := col.(type) {
	case []float64:
		return fmt.Sprintf("%v", d[row])
	case []int:
		return fmt.Sprintf("%d", d[row])
	case []string:
		return "'" + strings.ReplaceAll(d[row], "'", "''") + "'"
	case []time.Time:
		return "'" + d[row].Format("2006-01-02") + "'"
	default:
		return "#err#"
	}
}
