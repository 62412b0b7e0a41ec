package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/nhle/webmail-identity/internal/model"
)

// AuthError indicates that authentication has failed or expired for the
// mailbox backend.
type AuthError struct {
	Backend string
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth error (%s): %s", e.Backend, e.Message)
}

// IsAuthError reports whether err (or any error in its chain) is an AuthError.
func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}

// MessageProvider is the contract for the collaborator that supplies the
// engine's message and folder snapshots. The engine itself never performs
// I/O; a provider is invoked by the caller before resolution.
type MessageProvider interface {
	// ValidateConnection verifies credentials and connectivity.
	// Returns a human-readable status message on success.
	ValidateConnection(ctx context.Context) (string, error)

	// FetchMessage retrieves one message's participants and folder
	// reference by UID within the named mailbox.
	FetchMessage(ctx context.Context, mailbox string, uid uint32) (*model.Message, error)

	// ListFolders retrieves the current folder tree snapshot.
	ListFolders(ctx context.Context) ([]model.Folder, error)
}
