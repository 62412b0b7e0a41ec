package imapsource

import (
	"testing"

	"github.com/emersion/go-imap/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nhle/webmail-identity/internal/model"
)

func TestFolderFromMailbox(t *testing.T) {
	tests := []struct {
		name string
		path string
		want model.Folder
	}{
		{
			name: "top level",
			path: "INBOX",
			want: model.Folder{ID: "INBOX", Name: "INBOX"},
		},
		{
			name: "nested",
			path: "INBOX/Work",
			want: model.Folder{ID: "INBOX/Work", Name: "Work", ParentID: "INBOX"},
		},
		{
			name: "shared namespace",
			path: "Other Users/bob@y.com/Projects",
			want: model.Folder{
				ID:           "Other Users/bob@y.com/Projects",
				Name:         "Projects",
				ParentID:     "Other Users/bob@y.com",
				OwnerAccount: "bob@y.com",
			},
		},
		{
			name: "shared namespace root",
			path: "Other Users/bob@y.com",
			want: model.Folder{
				ID:           "Other Users/bob@y.com",
				Name:         "bob@y.com",
				ParentID:     "Other Users",
				OwnerAccount: "bob@y.com",
			},
		},
		{
			name: "shared prefix without an address",
			path: "Other Users/archive",
			want: model.Folder{
				ID:       "Other Users/archive",
				Name:     "archive",
				ParentID: "Other Users",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, folderFromMailbox(tt.path, '/'))
		})
	}
}

func TestEnvelopeParticipants(t *testing.T) {
	env := &imap.Envelope{
		From: []imap.Address{{Name: "Sender", Mailbox: "sender", Host: "z.com"}},
		To: []imap.Address{
			{Name: "Alice", Mailbox: "alice", Host: "x.com"},
			{Mailbox: "bob", Host: "y.com"},
		},
		Cc: []imap.Address{{Mailbox: "cc", Host: "z.com"}},
	}

	parts := envelopeParticipants(env)
	require.Len(t, parts, 4)

	assert.Equal(t, model.Participant{
		Address: "sender@z.com", FullName: "Sender", Role: model.RoleFrom,
	}, parts[0])
	assert.Equal(t, model.RoleTo, parts[1].Role)
	assert.Equal(t, "alice@x.com", parts[1].Address)
	assert.Equal(t, "bob@y.com", parts[2].Address)
	assert.Equal(t, model.RoleCc, parts[3].Role)
}

func TestHeaderParticipants(t *testing.T) {
	raw := []byte("From: Sender <sender@z.com>\r\n" +
		"To: Alice <alice@x.com>, bob@y.com\r\n" +
		"Cc: cc@z.com\r\n" +
		"Subject: hello\r\n" +
		"\r\n")

	parts := headerParticipants(raw)
	require.Len(t, parts, 4)

	assert.Equal(t, model.Participant{
		Address: "sender@z.com", FullName: "Sender", Role: model.RoleFrom,
	}, parts[0])
	assert.Equal(t, model.Participant{
		Address: "alice@x.com", FullName: "Alice", Role: model.RoleTo,
	}, parts[1])
	assert.Equal(t, "bob@y.com", parts[2].Address)
	assert.Equal(t, model.RoleCc, parts[3].Role)
}

func TestHeaderParticipantsEmpty(t *testing.T) {
	assert.Nil(t, headerParticipants(nil))
}
