// Package folder resolves which account owns a given folder. Shared
// mailboxes carry an explicit owner; personal folders inherit the account's
// own name.
package folder

import "github.com/nhle/webmail-identity/internal/model"

// Tree is an in-memory snapshot of the account's folder hierarchy.
type Tree struct {
	folders      map[string]model.Folder
	defaultOwner string
}

// NewTree builds a tree from a folder snapshot. defaultOwner is the current
// account's name, used for folders without an explicit owner anywhere up
// their parent chain.
func NewTree(folders []model.Folder, defaultOwner string) *Tree {
	byID := make(map[string]model.Folder, len(folders))
	for _, f := range folders {
		byID[f.ID] = f
	}
	return &Tree{folders: byID, defaultOwner: defaultOwner}
}

// OwnerAccount walks from the folder up its parent chain and returns the
// first explicit owner found. Unknown folders, orphaned parents, and cycles
// all degrade to the default owner; lookups never fail.
func (t *Tree) OwnerAccount(folderID string) string {
	visited := make(map[string]bool)
	for id := folderID; id != "" && !visited[id]; {
		visited[id] = true
		f, ok := t.folders[id]
		if !ok {
			break
		}
		if f.OwnerAccount != "" {
			return f.OwnerAccount
		}
		id = f.ParentID
	}
	return t.defaultOwner
}
