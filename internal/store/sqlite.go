package store

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	apperrors "github.com/akshit-shetty/eduops-assistant/internal/errors"
)

// SQLite is the production Executor backed by the dashboard database.
type SQLite struct {
	db     *sql.DB
	logger *zap.Logger
}

// OpenDB opens a SQLite database with the standard pragma set.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, err
	}

	// One connection: SQLite has a single writer, and :memory: databases
	// are per-connection.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	pragmas := []string{
		"PRAGMA synchronous = NORMAL",
		"PRAGMA cache_size = -64000",
		"PRAGMA temp_store = MEMORY",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}

// Open opens the student database at path.
func Open(path string, logger *zap.Logger) (*SQLite, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, apperrors.StoreUnavailable(err)
	}
	return &SQLite{db: db, logger: logger}, nil
}

// NewSQLite wraps an already opened database handle.
func NewSQLite(db *sql.DB, logger *zap.Logger) *SQLite {
	return &SQLite{db: db, logger: logger}
}

// Close closes the underlying database.
func (s *SQLite) Close() error {
	return s.db.Close()
}

// Execute binds the template parameters, translates symbolic identifiers,
// and runs the query. No retries; failures are typed and logged with the
// pattern identity only.
func (s *SQLite) Execute(ctx context.Context, patternName, query string, params map[string]string) (*Result, error) {
	bound, args, err := bindTemplate(query, params)
	if err != nil {
		return nil, err
	}
	translated := translateAliases(bound)

	rows, err := s.db.QueryContext(ctx, translated, args...)
	if err != nil {
		s.logger.Error("catalog query failed",
			zap.String("pattern", patternName),
			zap.Error(err))
		return nil, apperrors.StoreQueryFailed(patternName, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, apperrors.StoreQueryFailed(patternName, err)
	}

	result := &Result{Columns: cols}
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, apperrors.StoreQueryFailed(patternName, err)
		}
		record := make(map[string]any, len(cols))
		for i, col := range cols {
			record[col] = normalizeValue(values[i])
		}
		result.Rows = append(result.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.StoreQueryFailed(patternName, err)
	}
	return result, nil
}

func normalizeValue(v any) any {
	if b, ok := v.([]byte); ok {
		return string(b)
	}
	return v
}
