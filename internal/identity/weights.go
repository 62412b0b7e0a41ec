package identity

import "github.com/nhle/webmail-identity/internal/model"

// The three weight tables combine multiplicatively. Their magnitude bands
// do not overlap: ownership dominates in the thousands, role in the tens to
// hundreds, identity type as a 1-3x multiplier. The maximum role x type
// product (100 x 3 = 300) stays below the ownership factor, so a recipient
// whose identity is owned by the folder's account always outranks one
// whose identity is not.
const (
	weightOwnerMatch   = 1000
	weightOwnerDefault = 1
)

// roleWeights ranks a direct recipient above a copied one.
var roleWeights = map[model.ParticipantRole]int{
	model.RoleTo:  100,
	model.RoleCc:  10,
	model.RoleBcc: 1,
}

// typeWeights ranks the account's own addresses above delegated ones.
var typeWeights = map[model.AddressType]int{
	model.AddressTypePrimary:    3,
	model.AddressTypeAlias:      2,
	model.AddressTypeDelegation: 1,
}

// defaultTypeWeight applies when a recipient matched a directory address
// but no catalog identity; it is scored like an alias.
const defaultTypeWeight = 2

// RelevantOnly drops recipients that match neither a directory address nor
// a catalog identity. Such recipients cannot influence selection and are
// never scored.
func RelevantOnly(recipients []model.RecipientWeight, identities []model.IdentityDescriptor) []model.RecipientWeight {
	var relevant []model.RecipientWeight
	for _, r := range recipients {
		if r.MatchingAddress || matchIdentity(r.Address, identities) != nil {
			relevant = append(relevant, r)
		}
	}
	return relevant
}

// Score computes the composite weight for every recipient: the ownership
// factor (does the matched identity's account own the message's folder),
// times the recipient-role factor, times the identity-type factor.
func Score(recipients []model.RecipientWeight, identities []model.IdentityDescriptor, folderOwnerAccount string) []model.RecipientWeight {
	for i := range recipients {
		r := &recipients[i]
		r.MatchingIdentity = matchIdentity(r.Address, identities)

		owner := weightOwnerDefault
		kind := defaultTypeWeight
		if r.MatchingIdentity != nil {
			if r.MatchingIdentity.OwnerAccount == folderOwnerAccount {
				owner = weightOwnerMatch
			}
			if w, ok := typeWeights[r.MatchingIdentity.Type]; ok {
				kind = w
			}
		}

		// An unknown role scores the lowest possible composite.
		role := roleWeights[r.Role]
		if role == 0 {
			role = 1
		}

		r.Weight = owner * role * kind
	}
	return recipients
}

// matchIdentity returns the first identity in catalog order whose
// from-address equals the given address.
func matchIdentity(address string, identities []model.IdentityDescriptor) *model.IdentityDescriptor {
	for i := range identities {
		if identities[i].FromAddress == address {
			return &identities[i]
		}
	}
	return nil
}
