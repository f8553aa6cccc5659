// Package journal keeps a local record of the claim transactions broadcast
// by the engine. The destination chain stays the source of truth, the journal
// only lets a later run find the receipt of a transaction it lost track of.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/agglayer/aggsandbox/db"
	"github.com/agglayer/aggsandbox/journal/migrations"
	"github.com/agglayer/aggsandbox/log"
	"github.com/agglayer/aggsandbox/types"
	"github.com/ethereum/go-ethereum/common"
	sqlite "github.com/mattn/go-sqlite3"
	"github.com/russross/meddler"
)

const (
	claimTable       = "claim"
	defaultListLimit = 100
)

// Config of the journal
type Config struct {
	// DBPath is the sqlite file of the journal, empty disables journaling
	DBPath string `mapstructure:"DBPath"`
}

// Entry is one broadcast claim transaction
type Entry struct {
	ID            int64             `meddler:"id,pk"`
	NetworkID     uint32            `meddler:"network_id"`
	GlobalIndex   *big.Int          `meddler:"global_index,bigint"`
	SourceNetwork uint32            `meddler:"source_network"`
	DepositCount  uint32            `meddler:"deposit_count"`
	LeafType      uint8             `meddler:"leaf_type"`
	TxHash        common.Hash       `meddler:"tx_hash,hash"`
	Nonce         uint64            `meddler:"nonce"`
	GasPrice      *big.Int          `meddler:"gas_price,bigint"`
	Status        types.ClaimStatus `meddler:"status"`
	Reason        string            `meddler:"reason"`
	CreatedAt     int64             `meddler:"created_at"`
	UpdatedAt     int64             `meddler:"updated_at"`
}

func (e *Entry) String() string {
	return fmt.Sprintf("claim %s on network %d tx %s nonce %d: %s",
		e.GlobalIndex.String(), e.NetworkID, e.TxHash.Hex(), e.Nonce, e.Status)
}

// Journal is the sqlite backed claim journal
type Journal struct {
	logger *log.Logger
	db     *sql.DB
}

// New opens the journal at cfg.DBPath, creating the schema if needed
func New(logger *log.Logger, cfg Config) (*Journal, error) {
	if cfg.DBPath == "" {
		return nil, errors.New("journal DBPath is empty")
	}
	if logger == nil {
		logger = log.WithFields("module", "journal")
	}
	if err := migrations.RunMigrations(logger, cfg.DBPath); err != nil {
		return nil, err
	}
	database, err := db.NewSQLiteDB(cfg.DBPath)
	if err != nil {
		return nil, err
	}

	return &Journal{logger: logger, db: database}, nil
}

// Close releases the database
func (j *Journal) Close() error {
	return j.db.Close()
}

// Record stores a broadcast transaction. Recording the same tx hash twice is a no-op.
func (j *Journal) Record(ctx context.Context, entry *Entry) error {
	now := time.Now().Unix()
	if entry.CreatedAt == 0 {
		entry.CreatedAt = now
	}
	entry.UpdatedAt = now
	if entry.GasPrice == nil {
		entry.GasPrice = big.NewInt(0)
	}
	if entry.Status == "" {
		entry.Status = types.SubmittedClaimStatus
	}

	return db.RunInTx(ctx, j.db, func(tx *db.Tx) error {
		if err := meddler.Insert(tx, claimTable, entry); err != nil {
			if sqliteErr, ok := db.SQLiteErr(err); ok && sqliteErr.ExtendedCode == sqlite.ErrConstraintUnique {
				j.logger.Debugf("tx %s already journaled", entry.TxHash.Hex())
				return db.ErrSkip
			}

			return fmt.Errorf("error inserting claim entry: %w", err)
		}
		tx.AddCommitCallback(func() { j.logger.Debugf("journaled %s", entry) })

		return nil
	})
}

// UpdateStatus sets the status of the entry of txHash
func (j *Journal) UpdateStatus(
	ctx context.Context, networkID uint32, txHash common.Hash, status types.ClaimStatus, reason string,
) error {
	res, err := j.db.ExecContext(ctx,
		`UPDATE claim SET status = $1, reason = $2, updated_at = $3 WHERE network_id = $4 AND tx_hash = $5;`,
		string(status), reason, time.Now().Unix(), networkID, txHash.Hex())
	if err != nil {
		return fmt.Errorf("error updating claim entry: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return db.ErrNotFound
	}

	return nil
}

// LastSubmitted returns the most recent entry of the claim, db.ErrNotFound when none
func (j *Journal) LastSubmitted(ctx context.Context, networkID uint32, globalIndex *big.Int) (*Entry, error) {
	return lastSubmitted(ctx, j.db, networkID, globalIndex)
}

func lastSubmitted(ctx context.Context, q db.Querier, networkID uint32, globalIndex *big.Int) (*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	entry := &Entry{}
	err := meddler.QueryRow(q, entry,
		`SELECT * FROM claim WHERE network_id = $1 AND global_index = $2 ORDER BY id DESC LIMIT 1;`,
		networkID, globalIndex.String())
	if err != nil {
		return nil, db.ReturnErrNotFound(err)
	}

	return entry, nil
}

// List returns the most recent entries of the network, newest first. limit <= 0 returns up to 100 entries.
func (j *Journal) List(ctx context.Context, networkID uint32, limit int) ([]*Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	var entries []*Entry
	if err := meddler.QueryAll(j.db, &entries,
		`SELECT * FROM claim WHERE network_id = $1 ORDER BY id DESC LIMIT $2;`, networkID, limit); err != nil {
		return nil, err
	}

	return entries, nil
}
