package identity

import (
	"sort"

	"github.com/nhle/webmail-identity/internal/model"
)

// FolderOwnerResolver resolves which account owns the folder a message
// lives in. Implemented by the folder tree; a fixed-owner stub suffices in
// tests.
type FolderOwnerResolver interface {
	OwnerAccount(folderID string) string
}

// rolePriority orders recipient roles for tie-breaking: earliest among To,
// then Cc, then Bcc.
var rolePriority = map[model.ParticipantRole]int{
	model.RoleTo:  0,
	model.RoleCc:  1,
	model.RoleBcc: 2,
}

// Selector picks the identity to reply with. Each Resolve call is an
// independent pure computation over the snapshots it receives.
type Selector struct{}

// NewSelector creates a Selector.
func NewSelector() *Selector {
	return &Selector{}
}

// Resolve picks the best reply identity for the message: it scores every
// relevant recipient and takes the highest-weighted one, falling back to
// the account's default identity when no recipient matches any available
// address or identity.
//
// The only error condition is an account without a default identity
// (ErrNoIdentities); everything else degrades to the fallback.
func (s *Selector) Resolve(
	account model.Account,
	settings model.Settings,
	msg model.Message,
	folders FolderOwnerResolver,
) (model.MatchingReplyIdentity, error) {
	catalog := NewCatalog(account, settings)

	folderOwner := account.Name
	if folders != nil {
		folderOwner = folders.OwnerAccount(msg.FolderID)
	}

	recipients := ExtractRecipients(msg)
	recipients = AnnotateMatches(recipients, catalog.Addresses())
	recipients = RelevantOnly(recipients, catalog.Identities())
	recipients = Score(recipients, catalog.Identities(), folderOwner)

	if len(recipients) == 0 {
		return s.fallback(catalog)
	}

	// Highest weight first. Ties break on role order and then extraction
	// index explicitly; sort stability is never relied upon.
	sort.Slice(recipients, func(i, j int) bool {
		a, b := recipients[i], recipients[j]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if rolePriority[a.Role] != rolePriority[b.Role] {
			return rolePriority[a.Role] < rolePriority[b.Role]
		}
		return a.Index < b.Index
	})

	best := recipients[0]

	resolved := model.MatchingReplyIdentity{
		Address: best.Address,
		Name:    best.FullName,
	}
	if id := best.MatchingIdentity; id != nil {
		if id.FromAddress != "" {
			resolved.Address = id.FromAddress
		}
		resolved.IdentityID = id.ID
		resolved.IdentityName = id.Name
		resolved.DefaultSignatureID = id.DefaultSignatureID
		resolved.ForwardReplySignatureID = id.ForwardReplySignatureID
	}

	return resolved, nil
}

// fallback resolves to the account's default identity.
func (s *Selector) fallback(catalog *Catalog) (model.MatchingReplyIdentity, error) {
	def, err := catalog.Default()
	if err != nil {
		return model.MatchingReplyIdentity{}, err
	}

	address := def.FromAddress
	if address == "" {
		address = def.ReceivingAddress
	}

	return model.MatchingReplyIdentity{
		Address:                 address,
		Name:                    def.FromDisplay,
		IdentityID:              def.ID,
		IdentityName:            def.Name,
		DefaultSignatureID:      def.DefaultSignatureID,
		ForwardReplySignatureID: def.ForwardReplySignatureID,
	}, nil
}
