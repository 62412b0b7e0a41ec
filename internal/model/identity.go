package model

// IdentityDescriptor is one entry of the identity catalog: a configured
// profile joined against the address directory, or an identity synthesized
// for a delegated account that has no explicit profile.
type IdentityDescriptor struct {
	// ID is the configured profile's identifier. Empty for synthesized
	// delegation identities.
	ID string

	// OwnerAccount is the account the identity sends for.
	OwnerAccount string

	// Name is the identity's configured name.
	Name string

	// DisplayName is the human-readable label.
	DisplayName string

	// FromDisplay is the personal name used in the From header.
	FromDisplay string

	// ReceivingAddress is the address mail for this identity arrives at:
	// the account's own name for the default identity, the configured
	// from-address otherwise.
	ReceivingAddress string

	// FromAddress is the address used when sending. Unique across the
	// catalog after de-duplication.
	FromAddress string

	// Type is inherited from the directory entry matching ReceivingAddress,
	// defaulting to alias when no entry matches.
	Type AddressType

	// Right is set when the identity goes through a delegation grant.
	Right DelegationRight

	DefaultSignatureID      string
	ForwardReplySignatureID string
}

// MatchingReplyIdentity is the engine's output: the identity to prefill a
// reply or derivative artifact with. Produced fresh per resolution call.
type MatchingReplyIdentity struct {
	// Address is the resolved from-address.
	Address string

	// Name is the personal name to render next to the address.
	Name string

	// IdentityID and IdentityName reference the matched catalog entry.
	// Both are empty when the match was on a bare directory address.
	IdentityID   string
	IdentityName string

	DefaultSignatureID      string
	ForwardReplySignatureID string
}
