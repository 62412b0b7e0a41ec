package compose

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/webmail-identity/internal/identity"
	"github.com/nhle/webmail-identity/internal/model"
)

func composeAccount() model.Account {
	return model.Account{
		Name: "alice@x.com",
		Identities: []model.IdentityProfile{{
			ID:                      "id-default",
			Name:                    identity.DefaultIdentityName,
			FromDisplay:             "Alice Example",
			FromAddress:             "alice@x.com",
			DefaultSignatureID:      "sig-default",
			ForwardReplySignatureID: "sig-reply",
		}},
		Grants: []model.DelegationGrant{{
			Right:   model.RightSendOnBehalfOf,
			Targets: []model.DelegationTarget{{Email: "boss@y.com", DisplayName: "Boss"}},
		}},
	}
}

func TestReplyPrefillPrefersForwardReplySignature(t *testing.T) {
	resolved := model.MatchingReplyIdentity{
		Address:                 "alice@x.com",
		Name:                    "Alice Example",
		DefaultSignatureID:      "sig-default",
		ForwardReplySignatureID: "sig-reply",
	}

	p := ReplyPrefill(resolved)
	assert.Equal(t, "alice@x.com", p.FromAddress)
	assert.Equal(t, "Alice Example", p.FromDisplay)
	assert.Equal(t, "sig-reply", p.SignatureID)
}

func TestReplyPrefillFallsBackToDefaultSignature(t *testing.T) {
	resolved := model.MatchingReplyIdentity{
		Address:            "alice@x.com",
		DefaultSignatureID: "sig-default",
	}

	p := ReplyPrefill(resolved)
	assert.Equal(t, "sig-default", p.SignatureID)
}

func TestNewMessagePrefillUsesDefaultIdentity(t *testing.T) {
	catalog := identity.NewCatalog(composeAccount(), model.Settings{})

	p, err := NewMessagePrefill(catalog)
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", p.FromAddress)
	assert.Equal(t, "Alice Example", p.FromDisplay)
	assert.Equal(t, "sig-default", p.SignatureID)
}

func TestNewMessagePrefillNoIdentities(t *testing.T) {
	catalog := identity.NewCatalog(model.Account{Name: "alice@x.com"}, model.Settings{})

	_, err := NewMessagePrefill(catalog)
	require.ErrorIs(t, err, identity.ErrNoIdentities)
}

func TestInvitationRolesOwnFolder(t *testing.T) {
	catalog := identity.NewCatalog(composeAccount(), model.Settings{})

	roles, err := InvitationRoles(catalog, "alice@x.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", roles.OrganizerAddress)
	assert.Equal(t, "alice@x.com", roles.SenderAddress)
	assert.Equal(t, "Alice Example", roles.OrganizerName)
}

func TestInvitationRolesSendOnBehalfOf(t *testing.T) {
	catalog := identity.NewCatalog(composeAccount(), model.Settings{})

	roles, err := InvitationRoles(catalog, "boss@y.com")
	require.NoError(t, err)

	// The delegated account organizes, but the invitation is sent from the
	// acting user's own address.
	assert.Equal(t, "boss@y.com", roles.OrganizerAddress)
	assert.Equal(t, "Boss", roles.OrganizerName)
	assert.Equal(t, "alice@x.com", roles.SenderAddress)
}

func TestInvitationRolesUnknownOwnerFallsBackToDefault(t *testing.T) {
	catalog := identity.NewCatalog(composeAccount(), model.Settings{})

	roles, err := InvitationRoles(catalog, "stranger@z.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", roles.OrganizerAddress)
	assert.Equal(t, "alice@x.com", roles.SenderAddress)
}
