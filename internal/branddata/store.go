// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package branddata researches brand facts with an AI backend and
// persists them for prompt grounding. Records expire; only unexpired
// facets ever reach a generation prompt.
// Implements: prd005-brand-data (R1-R4);
//
//	docs/ARCHITECTURE § Brand Data.
package branddata

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/halcyon-media/lander-engine/pkg/types"
)

const dbFile = "lander.db"

// Store manages brand research records in the SQLite database at
// DataDir/lander.db.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens or creates the database and the brand_data table.
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
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS brand_data (
		brand_id TEXT NOT NULL,
		data_type TEXT NOT NULL,
		payload TEXT NOT NULL,
		source TEXT NOT NULL,
		scraped_at TEXT NOT NULL,
		expires_at TEXT NOT NULL,
		PRIMARY KEY (brand_id, data_type)
	)`)
	if err != nil {
		return fmt.Errorf("executing schema statement: %w", err)
	}
	return nil
}

// Put upserts one research record.
func (s *Store) Put(ctx context.Context, rec types.BrandDataRecord) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO brand_data (brand_id, data_type, payload, source, scraped_at, expires_at)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(brand_id, data_type) DO UPDATE SET
			payload=excluded.payload, source=excluded.source,
			scraped_at=excluded.scraped_at, expires_at=excluded.expires_at`,
		rec.BrandID, string(rec.DataType), string(rec.Payload), rec.Source,
		rec.ScrapedAt.UTC().Format(time.RFC3339Nano),
		rec.ExpiresAt.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("upserting brand data %s/%s: %w", rec.BrandID, rec.DataType, err)
	}
	return nil
}

// Get assembles the unexpired facets stored for a brand. Expired
// records are left out silently; an all-nil BrandData is a valid result
// meaning the page generates ungrounded.
func (s *Store) Get(ctx context.Context, brandID string) (types.BrandData, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT data_type, payload FROM brand_data WHERE brand_id = ? AND expires_at > ?`,
		brandID, s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return types.BrandData{}, fmt.Errorf("querying brand data: %w", err)
	}
	defer rows.Close()

	var data types.BrandData
	for rows.Next() {
		var dataType, payload string
		if err := rows.Scan(&dataType, &payload); err != nil {
			return types.BrandData{}, fmt.Errorf("scanning brand data row: %w", err)
		}
		if err := unmarshalFacet(&data, types.BrandDataType(dataType), []byte(payload)); err != nil {
			return types.BrandData{}, fmt.Errorf("parsing %s payload: %w", dataType, err)
		}
	}
	return data, rows.Err()
}

// Records returns every stored record for a brand, expired ones
// included, newest first.
func (s *Store) Records(ctx context.Context, brandID string) ([]types.BrandDataRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT brand_id, data_type, payload, source, scraped_at, expires_at
		 FROM brand_data WHERE brand_id = ? ORDER BY scraped_at DESC`,
		brandID,
	)
	if err != nil {
		return nil, fmt.Errorf("querying brand data records: %w", err)
	}
	defer rows.Close()

	var records []types.BrandDataRecord
	for rows.Next() {
		var rec types.BrandDataRecord
		var dataType, payload, scrapedAt, expiresAt string
		if err := rows.Scan(&rec.BrandID, &dataType, &payload, &rec.Source, &scrapedAt, &expiresAt); err != nil {
			return nil, fmt.Errorf("scanning brand data record: %w", err)
		}
		rec.DataType = types.BrandDataType(dataType)
		rec.Payload = []byte(payload)
		if rec.ScrapedAt, err = time.Parse(time.RFC3339Nano, scrapedAt); err != nil {
			return nil, fmt.Errorf("parsing scraped_at: %w", err)
		}
		if rec.ExpiresAt, err = time.Parse(time.RFC3339Nano, expiresAt); err != nil {
			return nil, fmt.Errorf("parsing expires_at: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Fresh reports whether the brand has research records and none of
// them have expired.
func (s *Store) Fresh(ctx context.Context, brandID string) (bool, error) {
	var total, expired int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(expires_at <= ?), 0) FROM brand_data WHERE brand_id = ?`,
		s.now().UTC().Format(time.RFC3339Nano), brandID,
	).Scan(&total, &expired)
	if err != nil {
		return false, fmt.Errorf("checking brand data freshness: %w", err)
	}
	return total > 0 && expired == 0, nil
}

// unmarshalFacet decodes one payload into its slot in data. Unknown
// facet types are ignored so old databases keep loading.
func unmarshalFacet(data *types.BrandData, t types.BrandDataType, payload []byte) error {
	switch t {
	case types.BrandDataPricing:
		data.Pricing = &types.PricingData{}
		return json.Unmarshal(payload, data.Pricing)
	case types.BrandDataFeatures:
		data.Features = &types.FeaturesData{}
		return json.Unmarshal(payload, data.Features)
	case types.BrandDataProsCons:
		data.ProsCons = &types.ProsConsData{}
		return json.Unmarshal(payload, data.ProsCons)
	case types.BrandDataCompanyInfo:
		data.CompanyInfo = &types.CompanyInfo{}
		return json.Unmarshal(payload, data.CompanyInfo)
	case types.BrandDataCompetitors:
		data.Competitors = &types.CompetitorsData{}
		return json.Unmarshal(payload, data.Competitors)
	}
	return nil
}
