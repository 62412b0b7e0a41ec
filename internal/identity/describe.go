package identity

import (
	"fmt"

	"github.com/nhle/webmail-identity/internal/model"
)

// Describe renders a human-readable label for an identity: "Name <address>",
// or an on-behalf-of phrasing when the identity goes through a
// send-on-behalf-of grant (the acting account stays visible as the actual
// sender).
func (c *Catalog) Describe(d model.IdentityDescriptor) string {
	name := d.FromDisplay
	if name == "" {
		name = d.DisplayName
	}
	if name == "" {
		name = d.Name
	}

	address := d.FromAddress
	if address == "" {
		address = d.ReceivingAddress
	}

	if d.Right == model.RightSendOnBehalfOf {
		return fmt.Sprintf("%s on behalf of %s <%s>", c.account.Name, name, address)
	}

	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
