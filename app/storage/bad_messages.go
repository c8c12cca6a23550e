package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/umputun/tg-doorman/app/storage/engine"
)

// bad messages command constants
const (
	CmdCreateBadMessagesTable engine.DBCmd = iota + 300
	CmdMarkMessageBad
	CmdIsMessageBad
	CmdRemoveBadMessage
)

// badMessagesQueries holds all bad messages queries
var badMessagesQueries = engine.NewQueryMap().
	Add(CmdCreateBadMessagesTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS bad_messages (
            hash TEXT NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            text TEXT NOT NULL,
            timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (hash, gid)
        );
        CREATE INDEX IF NOT EXISTS idx_bad_messages_gid ON bad_messages(gid)`,
		Postgres: `CREATE TABLE IF NOT EXISTS bad_messages (
            hash TEXT NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            text TEXT NOT NULL,
            timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (hash, gid)
        );
        CREATE INDEX IF NOT EXISTS idx_bad_messages_gid ON bad_messages(gid)`,
	}).
	Add(CmdMarkMessageBad, engine.Query{
		Sqlite: `INSERT INTO bad_messages (hash, gid, text, timestamp) VALUES (?, ?, ?, ?)
            ON CONFLICT (hash, gid) DO NOTHING`,
		Postgres: `INSERT INTO bad_messages (hash, gid, text, timestamp) VALUES ($1, $2, $3, $4)
            ON CONFLICT (hash, gid) DO NOTHING`,
	}).
	AddSame(CmdIsMessageBad, "SELECT COUNT(*) FROM bad_messages WHERE hash = ? AND gid = ?").
	AddSame(CmdRemoveBadMessage, "DELETE FROM bad_messages WHERE hash = ? AND gid = ?")

// BadMessages is a registry of message texts confirmed as bad content.
// Texts are keyed by hash so re-marking the same text is a no-op.
type BadMessages struct {
	*engine.SQL
	engine.RWLocker
}

// NewBadMessages creates a new BadMessages storage
func NewBadMessages(ctx context.Context, db *engine.SQL) (*BadMessages, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	schema, err := badMessagesQueries.Pick(db.Type(), CmdCreateBadMessagesTable)
	if err != nil {
		return nil, fmt.Errorf("failed to get bad messages schema: %w", err)
	}
	if err := engine.InitTable(ctx, db, "bad_messages", engine.Query{Sqlite: schema, Postgres: schema}); err != nil {
		return nil, fmt.Errorf("failed to init bad messages storage: %w", err)
	}
	return &BadMessages{SQL: db, RWLocker: db.MakeLock()}, nil
}

// MsgHash returns a hash of the message text used as the registry key
func (bm *BadMessages) MsgHash(text string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(text)))
	return hex.EncodeToString(sum[:])
}

// MarkAsBad adds a message text to the registry, idempotent
func (bm *BadMessages) MarkAsBad(ctx context.Context, text string) error {
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("text cannot be empty")
	}

	bm.Lock()
	defer bm.Unlock()

	query, err := badMessagesQueries.Pick(bm.Type(), CmdMarkMessageBad)
	if err != nil {
		return fmt.Errorf("failed to get mark bad query: %w", err)
	}
	if _, err := bm.ExecContext(ctx, query, bm.MsgHash(text), bm.GID(), text, time.Now()); err != nil {
		return fmt.Errorf("failed to mark message as bad: %w", err)
	}
	return nil
}

// IsBad checks if a message text is in the registry
func (bm *BadMessages) IsBad(ctx context.Context, text string) (bool, error) {
	bm.RLock()
	defer bm.RUnlock()

	query, err := badMessagesQueries.Pick(bm.Type(), CmdIsMessageBad)
	if err != nil {
		return false, fmt.Errorf("failed to get bad check query: %w", err)
	}
	var count int
	if err := bm.GetContext(ctx, &count, bm.Adopt(query), bm.MsgHash(text), bm.GID()); err != nil {
		return false, fmt.Errorf("failed to check bad message: %w", err)
	}
	return count > 0, nil
}

// Remove deletes a message text from the registry
func (bm *BadMessages) Remove(ctx context.Context, text string) error {
	bm.Lock()
	defer bm.Unlock()

	query, err := badMessagesQueries.Pick(bm.Type(), CmdRemoveBadMessage)
	if err != nil {
		return fmt.Errorf("failed to get remove bad query: %w", err)
	}
	if _, err := bm.ExecContext(ctx, bm.Adopt(query), bm.MsgHash(text), bm.GID()); err != nil {
		return fmt.Errorf("failed to remove bad message: %w", err)
	}
	return nil
}
