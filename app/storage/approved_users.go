package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-doorman/app/storage/engine"
)

// approved users command constants
const (
	CmdCreateApprovedUsersTable engine.DBCmd = iota + 100
	CmdApproveUser
	CmdUnbanUser
	CmdIsUserApproved
)

// approvedUsersQueries holds all approved users queries
var approvedUsersQueries = engine.NewQueryMap().
	Add(CmdCreateApprovedUsersTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS approved_users (
            user_id INTEGER NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (user_id, gid)
        );
        CREATE INDEX IF NOT EXISTS idx_approved_users_gid ON approved_users(gid)`,
		Postgres: `CREATE TABLE IF NOT EXISTS approved_users (
            user_id BIGINT NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (user_id, gid)
        );
        CREATE INDEX IF NOT EXISTS idx_approved_users_gid ON approved_users(gid)`,
	}).
	Add(CmdApproveUser, engine.Query{
		Sqlite: `INSERT INTO approved_users (user_id, gid, timestamp) VALUES (?, ?, ?)
            ON CONFLICT (user_id, gid) DO NOTHING`,
		Postgres: `INSERT INTO approved_users (user_id, gid, timestamp) VALUES ($1, $2, $3)
            ON CONFLICT (user_id, gid) DO NOTHING`,
	}).
	AddSame(CmdUnbanUser, "DELETE FROM approved_users WHERE user_id = ? AND gid = ?").
	AddSame(CmdIsUserApproved, "SELECT COUNT(*) FROM approved_users WHERE user_id = ? AND gid = ?")

// ApprovedUsers is a trust registry of user ids cleared by admins. An approved
// user skips the automatic checks on subsequent messages.
type ApprovedUsers struct {
	*engine.SQL
	engine.RWLocker
}

// NewApprovedUsers creates a new ApprovedUsers storage
func NewApprovedUsers(ctx context.Context, db *engine.SQL) (*ApprovedUsers, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	schema, err := approvedUsersQueries.Pick(db.Type(), CmdCreateApprovedUsersTable)
	if err != nil {
		return nil, fmt.Errorf("failed to get approved users schema: %w", err)
	}
	if err := engine.InitTable(ctx, db, "approved_users", engine.Query{Sqlite: schema, Postgres: schema}); err != nil {
		return nil, fmt.Errorf("failed to init approved users storage: %w", err)
	}
	return &ApprovedUsers{SQL: db, RWLocker: db.MakeLock()}, nil
}

// Approve adds a user to the trust registry, idempotent
func (au *ApprovedUsers) Approve(ctx context.Context, userID int64) error {
	au.Lock()
	defer au.Unlock()

	query, err := approvedUsersQueries.Pick(au.Type(), CmdApproveUser)
	if err != nil {
		return fmt.Errorf("failed to get approve query: %w", err)
	}
	if _, err := au.ExecContext(ctx, query, userID, au.GID(), time.Now()); err != nil {
		return fmt.Errorf("failed to approve user %d: %w", userID, err)
	}
	log.Printf("[INFO] user %d approved", userID)
	return nil
}

// Unban removes a user from the trust registry. Removing a user who was never
// approved is not an error.
func (au *ApprovedUsers) Unban(ctx context.Context, userID int64) error {
	au.Lock()
	defer au.Unlock()

	query, err := approvedUsersQueries.Pick(au.Type(), CmdUnbanUser)
	if err != nil {
		return fmt.Errorf("failed to get unban query: %w", err)
	}
	if _, err := au.ExecContext(ctx, au.Adopt(query), userID, au.GID()); err != nil {
		return fmt.Errorf("failed to unban user %d: %w", userID, err)
	}
	log.Printf("[INFO] user %d unbanned", userID)
	return nil
}

// IsApproved checks if a user is in the trust registry
func (au *ApprovedUsers) IsApproved(ctx context.Context, userID int64) (bool, error) {
	au.RLock()
	defer au.RUnlock()

	query, err := approvedUsersQueries.Pick(au.Type(), CmdIsUserApproved)
	if err != nil {
		return false, fmt.Errorf("failed to get approved check query: %w", err)
	}
	var count int
	if err := au.GetContext(ctx, &count, au.Adopt(query), userID, au.GID()); err != nil {
		return false, fmt.Errorf("failed to check approval for user %d: %w", userID, err)
	}
	return count > 0, nil
}
