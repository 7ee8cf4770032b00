package export

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"
)

// TableName is the SQLite table WriteSQLite (re)creates.
const TableName = "network"

// WriteSQLite stores t in the SQLite database at path, replacing any previous
// "network" table. Numeric columns are REAL, others TEXT; nil cells are NULL.
func (t *Table) WriteSQLite(ctx context.Context, path string) error {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return fmt.Errorf("export: open sqlite db: %w", err)
	}
	defer db.Close()

	if err = db.PingContext(ctx); err != nil {
		return fmt.Errorf("export: ping sqlite db: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("export: begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1) Schema
	defs := make([]string, len(t.Columns))
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		typ := "TEXT"
		if c.Numeric {
			typ = "REAL"
		}
		names[i] = quoteIdent(c.Name)
		defs[i] = names[i] + " " + typ
	}
	if _, err = tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+quoteIdent(TableName)); err != nil {
		return fmt.Errorf("export: drop table: %w", err)
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", quoteIdent(TableName), strings.Join(defs, ", "))
	if _, err = tx.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("export: create table: %w", err)
	}

	// 2) Rows
	insert := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", quoteIdent(TableName),
		strings.Join(names, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(names)), ", "))
	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		return fmt.Errorf("export: prepare insert: %w", err)
	}
	defer stmt.Close()
	for r, row := range t.Rows {
		if _, err = stmt.ExecContext(ctx, row...); err != nil {
			return fmt.Errorf("export: insert row %d: %w", r, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("export: commit: %w", err)
	}

	return nil
}

// quoteIdent quotes a SQLite identifier.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}
