package identity

import "github.com/nhle/webmail-identity/internal/model"

// ExtractRecipients pulls the participants relevant to identity resolution
// out of a message: those in the To, Cc, or Bcc role, in original order.
// Every other role is dropped. The extraction index is recorded so later
// tie-breaking never depends on sort stability.
func ExtractRecipients(msg model.Message) []model.RecipientWeight {
	var recipients []model.RecipientWeight
	for _, p := range msg.Participants {
		switch p.Role {
		case model.RoleTo, model.RoleCc, model.RoleBcc:
		default:
			continue
		}
		recipients = append(recipients, model.RecipientWeight{
			Address:  p.Address,
			FullName: p.FullName,
			Role:     p.Role,
			Index:    len(recipients),
		})
	}
	return recipients
}

// AnnotateMatches marks every recipient whose address is one of the
// directory addresses. Comparison is exact; mail providers differ on
// case-folding, so no normalization is applied here.
func AnnotateMatches(recipients []model.RecipientWeight, addresses []model.Address) []model.RecipientWeight {
	for i := range recipients {
		for _, addr := range addresses {
			if addr.Address == recipients[i].Address {
				recipients[i].MatchingAddress = true
				break
			}
		}
	}
	return recipients
}
