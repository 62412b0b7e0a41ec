package imapsource

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/emersion/go-imap/v2"
	gomail "github.com/emersion/go-message/mail"

	"github.com/nhle/webmail-identity/internal/model"
)

// sharedNamespacePrefixes are the mailbox path prefixes under which servers
// expose other accounts' folders. The path segment right after the prefix
// is the owning account's address.
var sharedNamespacePrefixes = []string{
	"Other Users",
	"Shared Folders",
	"shared",
}

// Adapter implements source.MessageProvider on top of an IMAP mailbox.
type Adapter struct {
	client   *Client
	username string
}

// NewAdapter creates a new IMAP message provider.
func NewAdapter(
	host, port, username, password string, useTLS bool,
) *Adapter {
	return &Adapter{
		client:   NewClient(host, port, username, password, useTLS),
		username: username,
	}
}

// ValidateConnection verifies IMAP credentials by connecting,
// authenticating, and selecting INBOX. Returns the username on success.
func (a *Adapter) ValidateConnection(
	ctx context.Context,
) (string, error) {
	client, err := a.client.Connect(ctx)
	if err != nil {
		return "", fmt.Errorf("validating IMAP connection: %w", err)
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select("INBOX", nil).Wait(); err != nil {
		return "", fmt.Errorf("selecting INBOX: %w", err)
	}

	return a.username, nil
}

// FetchMessage retrieves one message by UID from the named mailbox and maps
// it to the engine's message shape. The mailbox path doubles as the folder
// reference.
func (a *Adapter) FetchMessage(
	ctx context.Context, mailbox string, uid uint32,
) (*model.Message, error) {
	fetched, err := a.client.FetchEnvelope(ctx, mailbox, uid)
	if err != nil {
		return nil, fmt.Errorf("fetching message %d from %s: %w", uid, mailbox, err)
	}

	msg := &model.Message{
		UID:      fetched.UID,
		FolderID: mailbox,
	}

	if env := fetched.Envelope; env != nil {
		msg.MessageID = env.MessageID
		msg.Subject = env.Subject
		msg.Participants = envelopeParticipants(env)
	}

	// The full header beats a truncated envelope when it parses; Bcc in
	// particular is often absent from envelopes of sent messages.
	if parts := headerParticipants(fetched.RawHeader); parts != nil {
		msg.Participants = parts
	}

	return msg, nil
}

// ListFolders retrieves every visible mailbox and maps it to a folder node,
// deriving the owning account for shared-namespace mailboxes.
func (a *Adapter) ListFolders(ctx context.Context) ([]model.Folder, error) {
	mailboxes, err := a.client.ListMailboxes(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing folders: %w", err)
	}

	folders := make([]model.Folder, 0, len(mailboxes))
	for _, mb := range mailboxes {
		folders = append(folders, folderFromMailbox(mb.Mailbox, mb.Delim))
	}

	return folders, nil
}

// folderFromMailbox maps one mailbox path to a folder node.
func folderFromMailbox(path string, delim rune) model.Folder {
	f := model.Folder{
		ID:   path,
		Name: path,
	}

	if delim != 0 {
		sep := string(delim)
		if i := strings.LastIndex(path, sep); i >= 0 {
			f.ParentID = path[:i]
			f.Name = path[i+len(sep):]
		}
		f.OwnerAccount = sharedOwner(path, sep)
	}

	return f
}

// sharedOwner extracts the owning address from a shared-namespace path,
// e.g. "Other Users/bob@y.com/Projects" yields "bob@y.com".
func sharedOwner(path, sep string) string {
	for _, prefix := range sharedNamespacePrefixes {
		if !strings.HasPrefix(path, prefix+sep) {
			continue
		}
		rest := strings.TrimPrefix(path, prefix+sep)
		if i := strings.Index(rest, sep); i >= 0 {
			rest = rest[:i]
		}
		if strings.Contains(rest, "@") {
			return rest
		}
	}
	return ""
}

// envelopeParticipants maps each envelope address list to participants
// with the corresponding role, preserving envelope order.
func envelopeParticipants(env *imap.Envelope) []model.Participant {
	var participants []model.Participant

	appendAddrs := func(addrs []imap.Address, role model.ParticipantRole) {
		for _, addr := range addrs {
			participants = append(participants, model.Participant{
				Address:  addr.Addr(),
				FullName: addr.Name,
				Role:     role,
			})
		}
	}

	appendAddrs(env.From, model.RoleFrom)
	appendAddrs(env.Sender, model.RoleSender)
	appendAddrs(env.ReplyTo, model.RoleReplyTo)
	appendAddrs(env.To, model.RoleTo)
	appendAddrs(env.Cc, model.RoleCc)
	appendAddrs(env.Bcc, model.RoleBcc)

	return participants
}

// headerParticipants parses the raw RFC 5322 header with go-message and
// extracts the address lists. Returns nil when there is no header or it
// fails to parse, letting the envelope mapping stand.
func headerParticipants(rawHeader []byte) []model.Participant {
	if len(rawHeader) == 0 {
		return nil
	}

	mr, err := gomail.CreateReader(bytes.NewReader(rawHeader))
	if err != nil {
		return nil
	}
	defer mr.Close()

	headerRoles := []struct {
		field string
		role  model.ParticipantRole
	}{
		{"From", model.RoleFrom},
		{"Sender", model.RoleSender},
		{"Reply-To", model.RoleReplyTo},
		{"To", model.RoleTo},
		{"Cc", model.RoleCc},
		{"Bcc", model.RoleBcc},
	}

	var participants []model.Participant
	for _, hr := range headerRoles {
		addrs, err := mr.Header.AddressList(hr.field)
		if err != nil {
			continue
		}
		for _, addr := range addrs {
			participants = append(participants, model.Participant{
				Address:  addr.Address,
				FullName: addr.Name,
				Role:     hr.role,
			})
		}
	}

	return participants
}
