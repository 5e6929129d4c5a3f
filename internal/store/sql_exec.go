// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
)

type queryBuilder func() (string, []any, error)

// exec runs a DML statement produced by build.
func (db *DB) exec(ctx context.Context, funcName string, build queryBuilder) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = db.ExecContext(ctx, query, args...); err != nil {
		db.logger.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// query runs the SELECT produced by build and calls scan for every row.
func (db *DB) query(ctx context.Context, funcName string, build queryBuilder, scan func(*sql.Rows) error) error {
	query, args, err := build()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		db.logger.Err(err).Str("func", funcName).Msg("failed to execute query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		if err = scan(rows); err != nil {
			db.logger.Err(err).Str("func", funcName).Msg("failed to scan row")
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
	}

	if err = rows.Err(); err != nil {
		db.logger.Err(err).Str("func", funcName).Msg("error occurred during rows iteration")
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
