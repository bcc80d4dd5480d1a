package source

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"StockViewer/internal/model"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// SQLiteSource reads price tables from a SQLite database.
type SQLiteSource struct {
	db *sql.DB
}

// OpenSQLite opens the SQLite database at dbPath.
func OpenSQLite(dbPath string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	log.Infof("sqlite source opened: %s", dbPath)
	return &SQLiteSource{db: db}, nil
}

// NewSQLiteSource wraps an already open database.
func NewSQLiteSource(db *sql.DB) *SQLiteSource {
	return &SQLiteSource{db: db}
}

// Load reads every row of table. When symbol is set and the table has a
// Symbol column, only that symbol's rows are returned.
func (s *SQLiteSource) Load(ctx context.Context, table, symbol string) (*model.Table, error) {
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	cols, err := s.columns(ctx, table)
	if err != nil {
		return nil, err
	}
	out := &model.Table{Columns: cols}

	query := fmt.Sprintf(`SELECT * FROM "%s"`, table)
	var args []any
	if symbol != "" && out.HasColumn(model.ColumnSymbol) {
		query += ` WHERE "Symbol" = ?`
		args = append(args, symbol)
	}
	rows, err := s.db.QueryContext(ctx, query+" ORDER BY rowid", args...)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", table, err)
	}
	defer rows.Close()

	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scan %s: %w", table, err)
		}
		row := make(model.Row, len(cols))
		for i, c := range cols {
			row[c] = formatValue(values[i])
		}
		out.Rows = append(out.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate %s: %w", table, err)
	}
	return out, nil
}

// Symbols lists the distinct values of the Symbol column of table.
func (s *SQLiteSource) Symbols(ctx context.Context, table string) ([]string, error) {
	if !identRe.MatchString(table) {
		return nil, fmt.Errorf("invalid table name %q", table)
	}
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT DISTINCT "Symbol" FROM "%s" ORDER BY "Symbol"`, table))
	if err != nil {
		return nil, fmt.Errorf("list symbols: %w", err)
	}
	defer rows.Close()
	var symbols []string
	for rows.Next() {
		var sym sql.NullString
		if err := rows.Scan(&sym); err != nil {
			return nil, fmt.Errorf("scan symbol: %w", err)
		}
		if sym.Valid && sym.String != "" {
			symbols = append(symbols, sym.String)
		}
	}
	return symbols, rows.Err()
}

func (s *SQLiteSource) columns(ctx context.Context, table string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(`SELECT * FROM "%s" LIMIT 0`, table))
	if err != nil {
		return nil, fmt.Errorf("describe %s: %w", table, err)
	}
	defer rows.Close()
	return rows.Columns()
}

// Close releases the database handle.
func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case []byte:
		return string(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case time.Time:
		return x.UTC().Format("2006-01-02")
	default:
		return fmt.Sprint(x)
	}
}
