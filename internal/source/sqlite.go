package source

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/halalan-ph/candidate-overview/internal/model"
	"github.com/halalan-ph/candidate-overview/internal/platform"
)

// SQLiteDriver is the database/sql driver name registered by modernc.org/sqlite.
const SQLiteDriver = "sqlite"

const schema = `
CREATE TABLE IF NOT EXISTS candidate (
    name TEXT NOT NULL,
    party TEXT NOT NULL DEFAULT '',
    position TEXT NOT NULL DEFAULT '',
    image_ref TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_candidate_position ON candidate(position);
`

const selectCandidates = `SELECT name, party, position, image_ref FROM candidate`

const insertCandidate = `INSERT INTO candidate (name, party, position, image_ref) VALUES (?, ?, ?, ?)`

const deleteCandidates = `DELETE FROM candidate`

// SQLiteSource reads candidates from the candidate table of a SQLite file.
type SQLiteSource struct {
	path string
}

// NewSQLiteSource creates a source for the database at path
func NewSQLiteSource(path string) *SQLiteSource {
	return &SQLiteSource{path: path}
}

// Path returns the database file
func (s *SQLiteSource) Path() string {
	return s.path
}

// Load reads every row of the candidate table. A missing database file is
// an error; Load never creates one.
func (s *SQLiteSource) Load(ctx context.Context) ([]model.Candidate, error) {
	if !platform.FileExists(s.path) {
		return nil, fmt.Errorf("open candidate database %s: %w", s.path, os.ErrNotExist)
	}

	db, err := sql.Open(SQLiteDriver, s.path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, selectCandidates)
	if err != nil {
		return nil, fmt.Errorf("query candidates: %w", err)
	}
	defer rows.Close()

	baseDir := filepath.Dir(s.path)
	candidates := make([]model.Candidate, 0)
	for rows.Next() {
		var c model.Candidate
		if err := rows.Scan(&c.Name, &c.Party, &c.Position, &c.ImageRef); err != nil {
			return nil, fmt.Errorf("scan candidate: %w", err)
		}
		c.ImageRef = platform.ResolveImageRef(baseDir, c.ImageRef)
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read candidates: %w", err)
	}
	return candidates, nil
}

// OpenDB opens the SQLite database at path for writing, creating the file
// and the schema when needed.
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open(SQLiteDriver, path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// CreateSchema creates the candidate table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

// InsertCandidates appends candidates in a single transaction.
func InsertCandidates(ctx context.Context, db *sql.DB, candidates []model.Candidate) error {
	return writeCandidates(ctx, db, candidates, false)
}

// ReplaceCandidates replaces the whole candidate table in a single
// transaction, so importing the same file twice does not duplicate rows.
func ReplaceCandidates(ctx context.Context, db *sql.DB, candidates []model.Candidate) error {
	return writeCandidates(ctx, db, candidates, true)
}

func writeCandidates(ctx context.Context, db *sql.DB, candidates []model.Candidate, replace bool) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if replace {
		if _, err := tx.ExecContext(ctx, deleteCandidates); err != nil {
			return fmt.Errorf("clear candidates: %w", err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, insertCandidate)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range candidates {
		if _, err := stmt.ExecContext(ctx, c.Name, c.Party, c.Position, c.ImageRef); err != nil {
			return fmt.Errorf("insert %q: %w", c.Name, err)
		}
	}
	return tx.Commit()
}
