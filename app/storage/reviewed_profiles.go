package storage

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/umputun/tg-doorman/app/storage/engine"
)

// reviewed profiles command constants
const (
	CmdCreateReviewedProfilesTable engine.DBCmd = iota + 200
	CmdMarkProfileOK
	CmdIsProfileOK
)

// reviewedProfilesQueries holds all reviewed profiles queries
var reviewedProfilesQueries = engine.NewQueryMap().
	Add(CmdCreateReviewedProfilesTable, engine.Query{
		Sqlite: `CREATE TABLE IF NOT EXISTS reviewed_profiles (
            user_id INTEGER NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (user_id, gid)
        )`,
		Postgres: `CREATE TABLE IF NOT EXISTS reviewed_profiles (
            user_id BIGINT NOT NULL,
            gid TEXT NOT NULL DEFAULT '',
            timestamp TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
            PRIMARY KEY (user_id, gid)
        )`,
	}).
	Add(CmdMarkProfileOK, engine.Query{
		Sqlite: `INSERT INTO reviewed_profiles (user_id, gid, timestamp) VALUES (?, ?, ?)
            ON CONFLICT (user_id, gid) DO NOTHING`,
		Postgres: `INSERT INTO reviewed_profiles (user_id, gid, timestamp) VALUES ($1, $2, $3)
            ON CONFLICT (user_id, gid) DO NOTHING`,
	}).
	AddSame(CmdIsProfileOK, "SELECT COUNT(*) FROM reviewed_profiles WHERE user_id = ? AND gid = ?")

// ReviewedProfiles is a registry of user ids whose profile passed admin review.
// A reviewed profile is exempt from profile checks but messages are still checked.
type ReviewedProfiles struct {
	*engine.SQL
	engine.RWLocker
}

// NewReviewedProfiles creates a new ReviewedProfiles storage
func NewReviewedProfiles(ctx context.Context, db *engine.SQL) (*ReviewedProfiles, error) {
	if db == nil {
		return nil, fmt.Errorf("db connection is nil")
	}
	schema, err := reviewedProfilesQueries.Pick(db.Type(), CmdCreateReviewedProfilesTable)
	if err != nil {
		return nil, fmt.Errorf("failed to get reviewed profiles schema: %w", err)
	}
	if err := engine.InitTable(ctx, db, "reviewed_profiles", engine.Query{Sqlite: schema, Postgres: schema}); err != nil {
		return nil, fmt.Errorf("failed to init reviewed profiles storage: %w", err)
	}
	return &ReviewedProfiles{SQL: db, RWLocker: db.MakeLock()}, nil
}

// MarkUserOK records that the user's profile passed review, idempotent
func (rp *ReviewedProfiles) MarkUserOK(ctx context.Context, userID int64) error {
	rp.Lock()
	defer rp.Unlock()

	query, err := reviewedProfilesQueries.Pick(rp.Type(), CmdMarkProfileOK)
	if err != nil {
		return fmt.Errorf("failed to get mark profile query: %w", err)
	}
	if _, err := rp.ExecContext(ctx, query, userID, rp.GID(), time.Now()); err != nil {
		return fmt.Errorf("failed to mark profile ok for user %d: %w", userID, err)
	}
	log.Printf("[INFO] profile of user %d marked as reviewed", userID)
	return nil
}

// IsOK checks if the user's profile passed review
func (rp *ReviewedProfiles) IsOK(ctx context.Context, userID int64) (bool, error) {
	rp.RLock()
	defer rp.RUnlock()

	query, err := reviewedProfilesQueries.Pick(rp.Type(), CmdIsProfileOK)
	if err != nil {
		return false, fmt.Errorf("failed to get profile check query: %w", err)
	}
	var count int
	if err := rp.GetContext(ctx, &count, rp.Adopt(query), userID, rp.GID()); err != nil {
		return false, fmt.Errorf("failed to check profile for user %d: %w", userID, err)
	}
	return count > 0, nil
}
