package model

// AddressType classifies an address the account may send as.
type AddressType string

const (
	AddressTypePrimary    AddressType = "primary"
	AddressTypeAlias      AddressType = "alias"
	AddressTypeDelegation AddressType = "delegation"
)

// DelegationRight is the kind of right another account has granted to the
// current one.
type DelegationRight string

const (
	RightSendAs         DelegationRight = "send_as"
	RightSendOnBehalfOf DelegationRight = "send_on_behalf_of"
)

// Address is one entry of the account's address directory: an address the
// account may legitimately use as a sender.
type Address struct {
	// Address is the bare email address.
	Address string

	// Type indicates whether this is the primary address, an alias,
	// or an address reachable through a delegation grant.
	Type AddressType

	// OwnerAccount is the account the address belongs to. For the primary
	// address and aliases this equals the account's own name; for a
	// delegation entry it equals the delegated address itself.
	OwnerAccount string

	// Right is set for delegation entries only.
	Right DelegationRight
}
