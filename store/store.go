// Copyright (c) 2026, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store keeps the results of winner-take-all runs in a SQLite
// database: one row per run with its parameters and summary statistics,
// and the winning neurons of each pattern.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // SQLite driver
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    run INTEGER NOT NULL,
    seed INTEGER NOT NULL,
    param_set TEXT NOT NULL DEFAULT '',
    params TEXT NOT NULL DEFAULT '',
    npats INTEGER NOT NULL,
    iterations INTEGER NOT NULL,
    mean_act REAL NOT NULL DEFAULT 0,
    distinct_winners INTEGER NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS winners (
    run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    pattern INTEGER NOT NULL,
    neuron INTEGER NOT NULL,
    PRIMARY KEY (run_id, pattern, neuron)
);
`

// RunRecord is the stored result of one run
type RunRecord struct {
	ID         int64
	Name       string
	Run        int
	Seed       int64
	ParamSet   string
	Params     string
	NPats      int
	Iterations int
	MeanAct    float64
	Distinct   bool
	Winners    [][]int // per pattern, nil if the pattern never completed a window
	Created    time.Time
}

// Store is a SQLite database of run results.  It is safe for concurrent use.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (creating if needed) the results database at path, which can
// be ":memory:" for a private in-memory database.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store.Open: path is empty")
	}
	dsn := path + "?_pragma=foreign_keys(1)"
	if path != ":memory:" {
		dsn += "&_pragma=journal_mode(WAL)"
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store.Open %s: %w", path, err)
	}
	// one connection: sqlite has a single writer, and each :memory: connection is its own db
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store.Open %s: schema: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database
func (st *Store) Close() error {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.db.Close()
}

// SaveRun saves the run record and its winners, setting rec.ID, and
// rec.Created if it is zero.
func (st *Store) SaveRun(ctx context.Context, rec *RunRecord) error {
	st.mu.Lock()
	defer st.mu.Unlock()

	if rec.Created.IsZero() {
		rec.Created = time.Now()
	}
	tx, err := st.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("store.SaveRun: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO runs
        (name, run, seed, param_set, params, npats, iterations, mean_act, distinct_winners, created_at)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.Name, rec.Run, rec.Seed, rec.ParamSet, rec.Params, rec.NPats, rec.Iterations,
		rec.MeanAct, rec.Distinct, rec.Created.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("store.SaveRun: insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("store.SaveRun: %w", err)
	}
	for pi, wins := range rec.Winners {
		for _, ni := range wins {
			if _, err := tx.ExecContext(ctx, `INSERT INTO winners (run_id, pattern, neuron) VALUES (?, ?, ?)`, id, pi, ni); err != nil {
				return fmt.Errorf("store.SaveRun: insert winner: %w", err)
			}
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("store.SaveRun: commit: %w", err)
	}
	rec.ID = id
	return nil
}

// Runs returns all stored runs with given name, or all runs if name is empty,
// in the order saved.
func (st *Store) Runs(ctx context.Context, name string) ([]*RunRecord, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	q := `SELECT id, name, run, seed, param_set, params, npats, iterations, mean_act, distinct_winners, created_at
        FROM runs`
	var args []any
	if name != "" {
		q += ` WHERE name = ?`
		args = append(args, name)
	}
	q += ` ORDER BY id`
	rows, err := st.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("store.Runs: %w", err)
	}
	var recs []*RunRecord
	byID := map[int64]*RunRecord{}
	for rows.Next() {
		rec := &RunRecord{}
		var created string
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.Run, &rec.Seed, &rec.ParamSet, &rec.Params,
			&rec.NPats, &rec.Iterations, &rec.MeanAct, &rec.Distinct, &created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store.Runs: scan: %w", err)
		}
		if rec.Created, err = time.Parse(time.RFC3339Nano, created); err != nil {
			rows.Close()
			return nil, fmt.Errorf("store.Runs: run %d created_at: %w", rec.ID, err)
		}
		rec.Winners = make([][]int, rec.NPats)
		recs = append(recs, rec)
		byID[rec.ID] = rec
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store.Runs: %w", err)
	}

	wq := `SELECT run_id, pattern, neuron FROM winners`
	if name != "" {
		wq += ` WHERE run_id IN (SELECT id FROM runs WHERE name = ?)`
	}
	wq += ` ORDER BY run_id, pattern, neuron`
	wrows, err := st.db.QueryContext(ctx, wq, args...)
	if err != nil {
		return nil, fmt.Errorf("store.Runs: winners: %w", err)
	}
	defer wrows.Close()
	for wrows.Next() {
		var id int64
		var pi, ni int
		if err := wrows.Scan(&id, &pi, &ni); err != nil {
			return nil, fmt.Errorf("store.Runs: scan winner: %w", err)
		}
		rec, ok := byID[id]
		if !ok || pi < 0 || pi >= len(rec.Winners) {
			continue
		}
		rec.Winners[pi] = append(rec.Winners[pi], ni)
	}
	if err := wrows.Err(); err != nil {
		return nil, fmt.Errorf("store.Runs: winners: %w", err)
	}
	return recs, nil
}

// DistinctFrac returns the fraction of stored runs with given name whose
// winners separated all patterns, and the number of such runs.
func (st *Store) DistinctFrac(ctx context.Context, name string) (float64, int, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	var n int
	var nd sql.NullFloat64
	err := st.db.QueryRowContext(ctx, `SELECT COUNT(*), AVG(distinct_winners) FROM runs WHERE name = ?`, name).Scan(&n, &nd)
	if err != nil {
		return 0, 0, fmt.Errorf("store.DistinctFrac: %w", err)
	}
	return nd.Float64, n, nil
}
