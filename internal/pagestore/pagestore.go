// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pagestore persists generated pages in SQLite.
// Implements: prd007-page-store (R1-R3);
//
//	docs/ARCHITECTURE § Page Store.
package pagestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

const dbFile = "lander.db"

// ErrNotFound is returned for page IDs with no stored page.
var ErrNotFound = errors.New("page not found")

// Store manages generated pages in the SQLite database at
// DataDir/lander.db.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates the database and the pages table.
func NewStore(cfg types.StorageConfig) (*Store, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(cfg.DataDir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, now: time.Now}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS pages (
		id TEXT PRIMARY KEY,
		keyword TEXT NOT NULL,
		brand_name TEXT NOT NULL,
		brand_domain TEXT NOT NULL,
		brand_id TEXT NOT NULL,
		vertical TEXT NOT NULL,
		intent TEXT NOT NULL,
		blueprint TEXT NOT NULL,
		destination_url TEXT NOT NULL,
		document TEXT NOT NULL,
		score INTEGER NOT NULL,
		passed INTEGER NOT NULL,
		fixed INTEGER NOT NULL,
		created_at TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Save stores a page and returns its ID. A page without an ID gets a
// fresh UUID; saving an existing ID replaces the stored page.
func (s *Store) Save(ctx context.Context, page *types.Page) (string, error) {
	if page.Document == nil {
		return "", errors.New("page has no document")
	}
	if page.ID == "" {
		page.ID = uuid.NewString()
	}
	if page.CreatedAt.IsZero() {
		page.CreatedAt = s.now()
	}

	doc, err := json.Marshal(page.Document)
	if err != nil {
		return "", fmt.Errorf("marshaling document: %w", err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR REPLACE INTO pages
			(id, keyword, brand_name, brand_domain, brand_id, vertical, intent,
			 blueprint, destination_url, document, score, passed, fixed, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		page.ID, page.Keyword, page.BrandName, page.BrandDomain, page.BrandID,
		string(page.Vertical), string(page.Intent), page.Blueprint,
		page.DestinationURL, string(doc), page.Score,
		boolInt(page.Passed), boolInt(page.Fixed),
		page.CreatedAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return "", fmt.Errorf("saving page %s: %w", page.ID, err)
	}
	return page.ID, nil
}

// Get returns one page with its full document.
func (s *Store) Get(ctx context.Context, id string) (*types.Page, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, keyword, brand_name, brand_domain, brand_id, vertical, intent,
			blueprint, destination_url, document, score, passed, fixed, created_at
		 FROM pages WHERE id = ?`, id)

	page, err := scanPage(row.Scan, true)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return page, err
}

// List returns all pages newest first, without documents.
func (s *Store) List(ctx context.Context) ([]types.Page, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, keyword, brand_name, brand_domain, brand_id, vertical, intent,
			blueprint, destination_url, document, score, passed, fixed, created_at
		 FROM pages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing pages: %w", err)
	}
	defer rows.Close()

	var pages []types.Page
	for rows.Next() {
		page, err := scanPage(rows.Scan, false)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}
	return pages, rows.Err()
}

// Delete removes one page.
func (s *Store) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM pages WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting page %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting page %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

func scanPage(scan func(dest ...any) error, withDocument bool) (*types.Page, error) {
	var page types.Page
	var vertical, intent, doc, createdAt string
	var passed, fixed int

	err := scan(&page.ID, &page.Keyword, &page.BrandName, &page.BrandDomain,
		&page.BrandID, &vertical, &intent, &page.Blueprint, &page.DestinationURL,
		&doc, &page.Score, &passed, &fixed, &createdAt)
	if err != nil {
		return nil, err
	}

	page.Vertical = types.VerticalType(vertical)
	page.Intent = types.IntentType(intent)
	page.Passed = passed != 0
	page.Fixed = fixed != 0
	if page.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if withDocument {
		page.Document = &types.ContentDocument{}
		if err := json.Unmarshal([]byte(doc), page.Document); err != nil {
			return nil, fmt.Errorf("parsing document: %w", err)
		}
	}
	return &page, nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
