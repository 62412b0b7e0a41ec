// Package compose adapts resolved identities for the engine's consumers:
// the composer prefilling a reply's From field, and the appointment helper
// deciding who organizes and sends a generated invitation.
package compose

import (
	"github.com/nhle/webmail-identity/internal/identity"
	"github.com/nhle/webmail-identity/internal/model"
)

// Prefill is what the composer needs to open a reply or forward editor:
// the From field and the signature to insert.
type Prefill struct {
	FromAddress string
	FromDisplay string
	SignatureID string
}

// ReplyPrefill turns a resolved identity into composer prefill data.
// Replies and forwards prefer the identity's forward/reply signature,
// falling back to its default signature.
func ReplyPrefill(resolved model.MatchingReplyIdentity) Prefill {
	p := Prefill{
		FromAddress: resolved.Address,
		FromDisplay: resolved.Name,
		SignatureID: resolved.DefaultSignatureID,
	}

	if resolved.ForwardReplySignatureID != "" {
		p.SignatureID = resolved.ForwardReplySignatureID
	}

	return p
}

// NewMessagePrefill opens a fresh composer with the account's default
// identity.
func NewMessagePrefill(catalog *identity.Catalog) (Prefill, error) {
	def, err := catalog.Default()
	if err != nil {
		return Prefill{}, err
	}

	address := def.FromAddress
	if address == "" {
		address = def.ReceivingAddress
	}

	return Prefill{
		FromAddress: address,
		FromDisplay: def.FromDisplay,
		SignatureID: def.DefaultSignatureID,
	}, nil
}
