// Package dbx holds the database handle shared by the Postgres repositories
// and the transaction helper used by salesctl seed-users.
package dbx

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by *sql.DB and *sql.Tx, so a repository built on it runs
// the same queries inside or outside a transaction.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// WithTx runs fn inside a transaction opened on db. The transaction commits
// when fn returns nil; an error from fn, or a panic, rolls it back. A panic is
// re-raised after the rollback and a commit failure is returned as the error.
//
// Seeding the credential store upserts every users file entry atomically:
//
//	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
//		repo := users.NewPostgresRepository(tx)
//		for i := range list {
//			if err := repo.Upsert(ctx, &list[i]); err != nil {
//				return err
//			}
//		}
//		return nil
//	})
func WithTx(ctx context.Context, db *sql.DB, opts *sql.TxOptions, fn func(ctx context.Context, tx DBTX) error) (err error) {
	tx, err := db.BeginTx(ctx, opts)
	if err != nil {
		return err
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := fn(ctx, tx); err != nil {
		return err
	}

	committed = true
	return tx.Commit()
}
