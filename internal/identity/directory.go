// Package identity implements the identity resolution engine: it aggregates
// the addresses an account may send as, builds the catalog of send-as
// identities, and picks the best identity for replying to a message.
package identity

import "github.com/nhle/webmail-identity/internal/model"

// ListAddresses enumerates every address the account may legitimately use
// as a sender: the primary address, its aliases, and every address reachable
// through a send-as or send-on-behalf-of grant.
//
// Duplicates are not removed here; the catalog resolves them downstream with
// first-match semantics.
func ListAddresses(account model.Account, settings model.Settings) []model.Address {
	addresses := []model.Address{{
		Address:      account.Name,
		Type:         model.AddressTypePrimary,
		OwnerAccount: account.Name,
	}}

	for _, alias := range aliasList(settings.Aliases) {
		addresses = append(addresses, model.Address{
			Address:      alias,
			Type:         model.AddressTypeAlias,
			OwnerAccount: account.Name,
		})
	}

	for _, grant := range account.Grants {
		if grant.Right != model.RightSendAs && grant.Right != model.RightSendOnBehalfOf {
			continue
		}
		for _, target := range grant.Targets {
			addresses = append(addresses, model.Address{
				Address: target.Email,
				Type:    model.AddressTypeDelegation,
				Right:   grant.Right,
				// A delegation address belongs to the delegated account,
				// not to the acting user.
				OwnerAccount: target.Email,
			})
		}
	}

	return addresses
}

// aliasList normalizes the alias settings attribute, which backends store
// either as a single string or as a list of strings.
func aliasList(v any) []string {
	switch aliases := v.(type) {
	case nil:
		return nil
	case string:
		if aliases == "" {
			return nil
		}
		return []string{aliases}
	case []string:
		return aliases
	case []any:
		var out []string
		for _, item := range aliases {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
