package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/webmail-identity/internal/model"
)

// SQLiteStore implements the Store interface using a local SQLite database.
type SQLiteStore struct {
	db *sqlx.DB
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Enable foreign keys.
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	// Check if schema_version table exists.
	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// ReplaceFolders replaces the stored folder snapshot for an account with
// the given one in a single transaction.
func (s *SQLiteStore) ReplaceFolders(
	ctx context.Context,
	account string,
	folders []model.Folder,
) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM folders WHERE account = ?", account,
	); err != nil {
		return fmt.Errorf("clearing folders for %s: %w", account, err)
	}

	const query = `
		INSERT INTO folders (id, account, name, parent_id, owner_account, synced_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := tx.PreparexContext(ctx, query)
	if err != nil {
		return fmt.Errorf("preparing folder insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, f := range folders {
		_, err = stmt.ExecContext(ctx,
			f.ID, account, f.Name, f.ParentID, f.OwnerAccount, now,
		)
		if err != nil {
			return fmt.Errorf("inserting folder %s: %w", f.ID, err)
		}
	}

	return tx.Commit()
}

// GetFolders retrieves the stored folder snapshot for an account.
func (s *SQLiteStore) GetFolders(
	ctx context.Context,
	account string,
) ([]model.Folder, error) {
	rows, err := s.db.QueryxContext(ctx,
		"SELECT id, name, parent_id, owner_account FROM folders WHERE account = ? ORDER BY id",
		account,
	)
	if err != nil {
		return nil, fmt.Errorf("querying folders: %w", err)
	}
	defer rows.Close()

	var folders []model.Folder
	for rows.Next() {
		var f model.Folder
		if err := rows.Scan(&f.ID, &f.Name, &f.ParentID, &f.OwnerAccount); err != nil {
			return nil, fmt.Errorf("scanning folder row: %w", err)
		}
		folders = append(folders, f)
	}

	return folders, rows.Err()
}

// RecordResolution appends a resolution to the audit trail.
// If the resolution has no ID, a new UUID is generated.
func (s *SQLiteStore) RecordResolution(ctx context.Context, r Resolution) error {
	if r.ID == "" {
		r.ID = uuid.New().String()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO resolutions (
			id, account, message_uid, folder_id,
			address, identity_id, identity_name, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Account, r.MessageUID, r.FolderID,
		r.Address, r.IdentityID, r.IdentityName, r.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("recording resolution %s: %w", r.ID, err)
	}

	return nil
}

// RecentResolutions retrieves the newest resolutions for an account,
// most recent first.
func (s *SQLiteStore) RecentResolutions(
	ctx context.Context,
	account string,
	limit int,
) ([]Resolution, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryxContext(ctx, `
		SELECT id, account, message_uid, folder_id,
		       address, identity_id, identity_name, created_at
		FROM resolutions WHERE account = ?
		ORDER BY created_at DESC, id LIMIT ?`,
		account, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("querying resolutions: %w", err)
	}
	defer rows.Close()

	var resolutions []Resolution
	for rows.Next() {
		var r Resolution
		err := rows.Scan(
			&r.ID, &r.Account, &r.MessageUID, &r.FolderID,
			&r.Address, &r.IdentityID, &r.IdentityName, &r.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning resolution row: %w", err)
		}
		resolutions = append(resolutions, r)
	}

	return resolutions, rows.Err()
}
