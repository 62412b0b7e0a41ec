package store

import (
	"context"
	"time"

	"github.com/nhle/webmail-identity/internal/model"
)

// Resolution is one recorded identity resolution: which identity the engine
// picked for a message, and when. Identities themselves are never stored;
// this is an audit trail only.
type Resolution struct {
	ID           string
	Account      string
	MessageUID   uint32
	FolderID     string
	Address      string
	IdentityID   string
	IdentityName string
	CreatedAt    time.Time
}

// Store defines the persistence interface for the synced folder tree and
// the resolution audit trail.
type Store interface {
	// ReplaceFolders replaces the stored folder snapshot for an account.
	ReplaceFolders(ctx context.Context, account string, folders []model.Folder) error

	// GetFolders retrieves the stored folder snapshot for an account.
	GetFolders(ctx context.Context, account string) ([]model.Folder, error)

	// RecordResolution appends a resolution to the audit trail.
	RecordResolution(ctx context.Context, r Resolution) error

	// RecentResolutions retrieves the newest resolutions for an account,
	// most recent first.
	RecentResolutions(ctx context.Context, account string, limit int) ([]Resolution, error)
}
