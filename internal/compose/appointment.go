package compose

import (
	"github.com/nhle/webmail-identity/internal/identity"
	"github.com/nhle/webmail-identity/internal/model"
)

// AppointmentRoles names the organizer and the actual sender of a calendar
// invitation generated from a message. Sender differs from the organizer
// only when the organizing identity is held on a send-on-behalf-of grant.
type AppointmentRoles struct {
	OrganizerName    string
	OrganizerAddress string

	// SenderAddress is the address the invitation is actually sent from.
	SenderAddress string
}

// InvitationRoles decides who organizes and sends an invitation created
// while looking at a folder owned by folderOwner: the first catalog
// identity owned by that account, or the default identity when the folder
// belongs to the current account or no delegated identity matches.
func InvitationRoles(catalog *identity.Catalog, folderOwner string) (AppointmentRoles, error) {
	organizer, err := organizerIdentity(catalog, folderOwner)
	if err != nil {
		return AppointmentRoles{}, err
	}

	address := organizer.FromAddress
	if address == "" {
		address = organizer.ReceivingAddress
	}

	name := organizer.FromDisplay
	if name == "" {
		name = organizer.DisplayName
	}

	roles := AppointmentRoles{
		OrganizerName:    name,
		OrganizerAddress: address,
		SenderAddress:    address,
	}

	// On-behalf-of organizers cannot hide the acting account: the
	// invitation goes out under the user's own primary address.
	if organizer.Right == model.RightSendOnBehalfOf {
		roles.SenderAddress = catalog.AccountName()
	}

	return roles, nil
}

// organizerIdentity picks the identity owned by the folder's account, in
// catalog order, falling back to the default identity.
func organizerIdentity(catalog *identity.Catalog, folderOwner string) (model.IdentityDescriptor, error) {
	if folderOwner != "" && folderOwner != catalog.AccountName() {
		for _, d := range catalog.Identities() {
			if d.OwnerAccount == folderOwner {
				return d, nil
			}
		}
	}
	return catalog.Default()
}
