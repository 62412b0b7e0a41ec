package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/webmail-identity/internal/model"
)

func testIdentities() []model.IdentityDescriptor {
	return []model.IdentityDescriptor{
		{
			ID:           "id-default",
			Name:         DefaultIdentityName,
			FromAddress:  "alice@x.com",
			Type:         model.AddressTypePrimary,
			OwnerAccount: "alice@x.com",
		},
		{
			ID:           "id-work",
			Name:         "work",
			FromAddress:  "alice.work@x.com",
			Type:         model.AddressTypeAlias,
			OwnerAccount: "alice@x.com",
		},
		{
			Name:         "Bob",
			FromAddress:  "bob@y.com",
			Type:         model.AddressTypeDelegation,
			OwnerAccount: "bob@y.com",
		},
	}
}

func TestRelevantOnly(t *testing.T) {
	recipients := []model.RecipientWeight{
		{Address: "alice@x.com", Role: model.RoleTo, MatchingAddress: true},
		{Address: "stranger@z.com", Role: model.RoleTo},
		{Address: "bob@y.com", Role: model.RoleCc},
	}

	relevant := RelevantOnly(recipients, testIdentities())
	require.Len(t, relevant, 2)
	assert.Equal(t, "alice@x.com", relevant[0].Address)
	// bob@y.com survives through its identity match alone.
	assert.Equal(t, "bob@y.com", relevant[1].Address)
}

func TestScoreFactors(t *testing.T) {
	identities := testIdentities()

	tests := []struct {
		name        string
		recipient   model.RecipientWeight
		folderOwner string
		want        int
	}{
		{
			name:        "owned primary on To",
			recipient:   model.RecipientWeight{Address: "alice@x.com", Role: model.RoleTo, MatchingAddress: true},
			folderOwner: "alice@x.com",
			want:        1000 * 100 * 3,
		},
		{
			name:        "owned alias on Cc",
			recipient:   model.RecipientWeight{Address: "alice.work@x.com", Role: model.RoleCc, MatchingAddress: true},
			folderOwner: "alice@x.com",
			want:        1000 * 10 * 2,
		},
		{
			name:        "unowned delegation on Bcc",
			recipient:   model.RecipientWeight{Address: "bob@y.com", Role: model.RoleBcc, MatchingAddress: true},
			folderOwner: "alice@x.com",
			want:        1 * 1 * 1,
		},
		{
			name:        "owned delegation on Cc",
			recipient:   model.RecipientWeight{Address: "bob@y.com", Role: model.RoleCc, MatchingAddress: true},
			folderOwner: "bob@y.com",
			want:        1000 * 10 * 1,
		},
		{
			name:        "address match without identity scores as alias",
			recipient:   model.RecipientWeight{Address: "alias-only@x.com", Role: model.RoleTo, MatchingAddress: true},
			folderOwner: "alice@x.com",
			want:        1 * 100 * 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scored := Score([]model.RecipientWeight{tt.recipient}, identities, tt.folderOwner)
			assert.Equal(t, tt.want, scored[0].Weight)
		})
	}
}

func TestScoreMatchesFirstIdentityInCatalogOrder(t *testing.T) {
	identities := []model.IdentityDescriptor{
		{ID: "first", FromAddress: "dup@x.com", Type: model.AddressTypeAlias, OwnerAccount: "alice@x.com"},
		{ID: "second", FromAddress: "dup@x.com", Type: model.AddressTypeDelegation, OwnerAccount: "dup@x.com"},
	}

	scored := Score([]model.RecipientWeight{
		{Address: "dup@x.com", Role: model.RoleTo, MatchingAddress: true},
	}, identities, "alice@x.com")

	require.NotNil(t, scored[0].MatchingIdentity)
	assert.Equal(t, "first", scored[0].MatchingIdentity.ID)
}

func TestOwnershipDominatesRoleAndType(t *testing.T) {
	// The strongest role/type combination without ownership stays below the
	// weakest combination with it.
	maxWithoutOwnership := 1 * 100 * 3
	minWithOwnership := 1000 * 1 * 1
	assert.Less(t, maxWithoutOwnership, minWithOwnership)
}
