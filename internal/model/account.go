package model

// IdentityProfile is a send-as profile configured on the account, as it
// appears in the account's settings before the catalog joins it against the
// address directory.
type IdentityProfile struct {
	// ID is the profile's unique identifier.
	ID string `mapstructure:"id" yaml:"id"`

	// Name is the profile's configured name. One reserved name marks the
	// account's default identity.
	Name string `mapstructure:"name" yaml:"name"`

	// DisplayName is the human-readable label for the profile.
	DisplayName string `mapstructure:"display_name" yaml:"display_name"`

	// FromDisplay is the personal name rendered in the From header.
	FromDisplay string `mapstructure:"from_display" yaml:"from_display"`

	// FromAddress is the address used in the From header. May be empty for
	// the default identity, which sends as the account's own name.
	FromAddress string `mapstructure:"from_address" yaml:"from_address"`

	// DefaultSignatureID selects the signature for new messages.
	DefaultSignatureID string `mapstructure:"default_signature_id" yaml:"default_signature_id"`

	// ForwardReplySignatureID selects the signature for replies and forwards.
	ForwardReplySignatureID string `mapstructure:"forward_reply_signature_id" yaml:"forward_reply_signature_id"`
}

// DelegationTarget is one address covered by a delegation grant.
type DelegationTarget struct {
	Email       string `mapstructure:"email" yaml:"email"`
	DisplayName string `mapstructure:"display_name" yaml:"display_name"`
}

// DelegationGrant records that the targets' accounts allow the current
// account to act for them with the given right.
type DelegationGrant struct {
	Right   DelegationRight    `mapstructure:"right" yaml:"right"`
	Targets []DelegationTarget `mapstructure:"targets" yaml:"targets"`
}

// Account is the snapshot of account data the engine works from. The engine
// never mutates it and never fetches it; the caller supplies a consistent
// snapshot per resolution.
type Account struct {
	// Name is the account's primary address.
	Name string `mapstructure:"name" yaml:"name"`

	// Identities are the configured send-as profiles.
	Identities []IdentityProfile `mapstructure:"identities" yaml:"identities"`

	// Grants are the delegation rights other accounts granted to this one.
	Grants []DelegationGrant `mapstructure:"grants" yaml:"grants"`
}

// Settings is the slice of user settings the engine reads. Only the alias
// attribute is consulted; it may hold a single string or a list of strings
// depending on how the backend stored it, and is normalized where consumed.
type Settings struct {
	Aliases any `mapstructure:"aliases" yaml:"aliases"`
}
