package identity

import (
	"errors"

	"github.com/nhle/webmail-identity/internal/model"
)

// DefaultIdentityName is the reserved profile name marking the account's
// default identity. It is compared only inside this package; callers go
// through Catalog.Default.
const DefaultIdentityName = "default"

// ErrNoIdentities is returned when an account has no profile carrying the
// reserved default name, leaving the catalog without a default identity.
var ErrNoIdentities = errors.New("no identities configured for account")

// Catalog is the canonical list of send-as identities for one account:
// the configured profiles joined against the address directory, plus a
// synthesized identity for every delegated account without an explicit
// profile. It is a read-only projection rebuilt from the snapshots passed
// to NewCatalog.
type Catalog struct {
	account    model.Account
	addresses  []model.Address
	identities []model.IdentityDescriptor
}

// NewCatalog builds the identity catalog for the account and settings
// snapshot.
func NewCatalog(account model.Account, settings model.Settings) *Catalog {
	c := &Catalog{
		account:   account,
		addresses: ListAddresses(account, settings),
	}
	c.identities = c.build()
	return c
}

// build joins the configured profiles against the directory and fills in
// synthesized delegation identities for from-addresses not already covered.
// Explicit profiles always win; the seen map keyed by from-address gives
// first-match de-duplication while preserving order.
func (c *Catalog) build() []model.IdentityDescriptor {
	profiles := defaultFirst(c.account.Identities)

	seen := make(map[string]bool, len(profiles))
	identities := make([]model.IdentityDescriptor, 0, len(profiles))

	for _, profile := range profiles {
		d := c.describeProfile(profile)

		key := d.FromAddress
		if key == "" {
			// The default profile may omit a from-address; it sends as its
			// receiving address.
			key = d.ReceivingAddress
		}
		if seen[key] {
			continue
		}
		seen[key] = true
		identities = append(identities, d)
	}

	for _, grant := range c.account.Grants {
		if grant.Right != model.RightSendAs && grant.Right != model.RightSendOnBehalfOf {
			continue
		}
		for _, target := range grant.Targets {
			if seen[target.Email] {
				continue
			}
			seen[target.Email] = true
			identities = append(identities, model.IdentityDescriptor{
				OwnerAccount:     target.Email,
				Name:             target.DisplayName,
				DisplayName:      target.DisplayName,
				ReceivingAddress: target.Email,
				FromAddress:      target.Email,
				Type:             model.AddressTypeDelegation,
				Right:            grant.Right,
			})
		}
	}

	return identities
}

// describeProfile turns one configured profile into a descriptor by
// computing its receiving address and inheriting type, owner, and right
// from the matching directory entry.
func (c *Catalog) describeProfile(profile model.IdentityProfile) model.IdentityDescriptor {
	receiving := profile.FromAddress
	if profile.Name == DefaultIdentityName {
		receiving = c.account.Name
	}

	d := model.IdentityDescriptor{
		ID:                      profile.ID,
		Name:                    profile.Name,
		DisplayName:             profile.DisplayName,
		FromDisplay:             profile.FromDisplay,
		ReceivingAddress:        receiving,
		FromAddress:             profile.FromAddress,
		DefaultSignatureID:      profile.DefaultSignatureID,
		ForwardReplySignatureID: profile.ForwardReplySignatureID,

		// Defaults when no directory entry matches the receiving address.
		Type:         model.AddressTypeAlias,
		OwnerAccount: c.account.Name,
	}

	for _, addr := range c.addresses {
		if addr.Address != receiving {
			continue
		}
		d.Type = addr.Type
		d.OwnerAccount = addr.OwnerAccount
		if addr.Type == model.AddressTypeDelegation {
			d.Right = addr.Right
		}
		break
	}

	return d
}

// defaultFirst reorders profiles so the default-named one comes first,
// preserving the relative order of the rest.
func defaultFirst(profiles []model.IdentityProfile) []model.IdentityProfile {
	ordered := make([]model.IdentityProfile, 0, len(profiles))
	for _, p := range profiles {
		if p.Name == DefaultIdentityName {
			ordered = append(ordered, p)
		}
	}
	for _, p := range profiles {
		if p.Name != DefaultIdentityName {
			ordered = append(ordered, p)
		}
	}
	return ordered
}

// AccountName returns the name (primary address) of the account the
// catalog was built for.
func (c *Catalog) AccountName() string {
	return c.account.Name
}

// Addresses returns the account's address directory.
func (c *Catalog) Addresses() []model.Address {
	return c.addresses
}

// Identities returns every catalog entry in order.
func (c *Catalog) Identities() []model.IdentityDescriptor {
	return c.identities
}

// ByID returns the identity with the given profile id, or nil if none
// exists. Synthesized identities have no id and are never returned here.
func (c *Catalog) ByID(id string) *model.IdentityDescriptor {
	if id == "" {
		return nil
	}
	for i := range c.identities {
		if c.identities[i].ID == id {
			return &c.identities[i]
		}
	}
	return nil
}

// Default returns the account's default identity. It fails with
// ErrNoIdentities when no profile carries the reserved default name.
func (c *Catalog) Default() (model.IdentityDescriptor, error) {
	for _, d := range c.identities {
		if d.Name == DefaultIdentityName {
			return d, nil
		}
	}
	return model.IdentityDescriptor{}, ErrNoIdentities
}

// OwnerAccount resolves the account owning the given address: the first
// directory entry with that exact address. The second return value is false
// when no entry matches.
func (c *Catalog) OwnerAccount(address string) (string, bool) {
	for _, addr := range c.addresses {
		if addr.Address == address {
			return addr.OwnerAccount, true
		}
	}
	return "", false
}
