package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Tx is a sql transaction running hooks once it is committed or rolled back
type Tx struct {
	*sql.Tx
	rollbackCallbacks []func()
	commitCallbacks   []func()
	done              bool
}

// NewTx begins a transaction on db
func NewTx(ctx context.Context, db *sql.DB) (*Tx, error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &Tx{Tx: tx}, nil
}

// AddRollbackCallback runs cb after a successful rollback
func (s *Tx) AddRollbackCallback(cb func()) {
	s.rollbackCallbacks = append(s.rollbackCallbacks, cb)
}

// AddCommitCallback runs cb after a successful commit
func (s *Tx) AddCommitCallback(cb func()) {
	s.commitCallbacks = append(s.commitCallbacks, cb)
}

func (s *Tx) Commit() error {
	if err := s.Tx.Commit(); err != nil {
		return err
	}
	s.done = true
	for _, cb := range s.commitCallbacks {
		cb()
	}

	return nil
}

// Rollback aborts the transaction. Rolling back a finished transaction is a no-op.
func (s *Tx) Rollback() error {
	if s.done {
		return nil
	}
	if err := s.Tx.Rollback(); err != nil {
		if errors.Is(err, sql.ErrTxDone) {
			return nil
		}
		return err
	}
	s.done = true
	for _, cb := range s.rollbackCallbacks {
		cb()
	}

	return nil
}

// RunInTx runs fn in a transaction, committing when it returns nil and
// rolling back otherwise. ErrSkip rolls back and makes RunInTx return nil.
func RunInTx(ctx context.Context, db *sql.DB, fn func(tx *Tx) error) error {
	tx, err := NewTx(ctx, db)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if errRllbck := tx.Rollback(); errRllbck != nil {
			return fmt.Errorf("%w (error while rolling back tx: %v)", err, errRllbck)
		}
		if errors.Is(err, ErrSkip) {
			return nil
		}

		return err
	}

	return tx.Commit()
}
