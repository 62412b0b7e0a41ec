package model

// Folder is one node of the account's folder tree. Folders from a shared
// namespace carry the owning account's address; personal folders leave
// OwnerAccount empty and inherit the account's own name.
type Folder struct {
	// ID is the folder's stable identifier (the mailbox path for IMAP).
	ID string

	// Name is the display name of the folder.
	Name string

	// ParentID references the parent folder; empty at the root.
	ParentID string

	// OwnerAccount is the address of the account owning this subtree,
	// when it differs from the current account.
	OwnerAccount string
}
