// Package store persists completed valuations.
// Hybrid vault: Postgres (primary) with a JSON file directory fallback when
// no pool is configured.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"madlab_dcf/pkg/core/dcf"
)

// Archive stores valuation runs keyed by a per-run id and looked up by ticker.
type Archive struct {
	pool    *pgxpool.Pool
	fileDir string
}

// NewArchive creates an archive instance. With a nil pool and empty dir it
// defaults to a file archive under .cache/dcf/valuations.
func NewArchive(pool *pgxpool.Pool, dir string) *Archive {
	if pool == nil && dir == "" {
		dir = filepath.Join(".cache", "dcf", "valuations")
	}
	if dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Printf("[WARNING] Check archive dir: %v\n", err)
		}
	}
	return &Archive{pool: pool, fileDir: dir}
}

// Entry is the envelope for one archived valuation.
type Entry struct {
	ID         string       `json:"id"`
	Ticker     string       `json:"ticker"`
	Horizon    int          `json:"horizon"`
	WACC       float64      `json:"wacc"`
	Request    *dcf.Request `json:"request"`
	Result     *dcf.Result  `json:"result"`
	ArchivedAt time.Time    `json:"archived_at"`
}

// Save archives one completed valuation and returns its id.
func (a *Archive) Save(ctx context.Context, req *dcf.Request, res *dcf.Result) (string, error) {
	id := uuid.NewString()

	reqJSON, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	resJSON, err := json.Marshal(res)
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}

	if a.pool != nil {
		query := `
			INSERT INTO dcf_valuations (
				id, ticker, horizon, wacc, request, result
			) VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := a.pool.Exec(ctx, query,
			id, res.Assumptions.Ticker, res.Assumptions.Horizon, res.Assumptions.WACC,
			reqJSON, resJSON,
		)
		if err != nil {
			return "", fmt.Errorf("save valuation to db: %w", err)
		}
		return id, nil
	}

	if a.fileDir != "" {
		entry := Entry{
			ID:         id,
			Ticker:     res.Assumptions.Ticker,
			Horizon:    res.Assumptions.Horizon,
			WACC:       res.Assumptions.WACC,
			Request:    req,
			Result:     res,
			ArchivedAt: time.Now(),
		}
		data, _ := json.MarshalIndent(entry, "", "  ")
		if err := os.WriteFile(a.entryPath(id), data, 0644); err != nil {
			return "", fmt.Errorf("save valuation to file: %w", err)
		}
	}

	return id, nil
}

// LatestByTicker returns the most recent archived valuation for a ticker,
// or nil when nothing has been archived yet.
func (a *Archive) LatestByTicker(ctx context.Context, ticker string) (*Entry, error) {
	if a.pool != nil {
		query := `
			SELECT id, ticker, horizon, wacc, request, result, created_at
			FROM dcf_valuations
			WHERE ticker = $1
			ORDER BY created_at DESC
			LIMIT 1
		`
		var entry Entry
		var reqJSON, resJSON []byte
		err := a.pool.QueryRow(ctx, query, ticker).Scan(
			&entry.ID, &entry.Ticker, &entry.Horizon, &entry.WACC,
			&reqJSON, &resJSON, &entry.ArchivedAt,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // No archived run
		}
		if err != nil {
			return nil, fmt.Errorf("query latest valuation: %w", err)
		}
		if err := json.Unmarshal(reqJSON, &entry.Request); err != nil {
			return nil, fmt.Errorf("unmarshal archived request: %w", err)
		}
		if err := json.Unmarshal(resJSON, &entry.Result); err != nil {
			return nil, fmt.Errorf("unmarshal archived result: %w", err)
		}
		return &entry, nil
	}

	if a.fileDir != "" {
		return a.scanFileArchive(ticker)
	}

	return nil, nil
}

func (a *Archive) entryPath(id string) string {
	return filepath.Join(a.fileDir, id+".json")
}

func (a *Archive) scanFileArchive(ticker string) (*Entry, error) {
	files, err := os.ReadDir(a.fileDir)
	if err != nil {
		return nil, nil
	}

	var latest *Entry
	for _, f := range files {
		if filepath.Ext(f.Name()) != ".json" {
			continue
		}
		entry, err := a.loadEntry(filepath.Join(a.fileDir, f.Name()))
		if err != nil {
			continue
		}
		if !strings.EqualFold(entry.Ticker, ticker) {
			continue
		}
		if latest == nil || entry.ArchivedAt.After(latest.ArchivedAt) {
			latest = entry
		}
	}
	return latest, nil
}

func (a *Archive) loadEntry(path string) (*Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
