package imapsource

import (
	"context"
	"fmt"

	"github.com/emersion/go-imap/v2"
	"github.com/emersion/go-imap/v2/imapclient"

	"github.com/nhle/webmail-identity/internal/source"
)

// Client wraps go-imap v2 for connecting to and querying IMAP servers.
type Client struct {
	host     string
	port     string
	username string
	password string
	tls      bool
}

// NewClient creates a new IMAP client configuration.
func NewClient(
	host, port, username, password string, tls bool,
) *Client {
	return &Client{
		host:     host,
		port:     port,
		username: username,
		password: password,
		tls:      tls,
	}
}

// Connect establishes a connection to the IMAP server, authenticates,
// and returns the connected client. The caller is responsible for
// calling Logout/Close on the returned client.
func (c *Client) Connect(
	_ context.Context,
) (*imapclient.Client, error) {
	addr := c.host + ":" + c.port

	var client *imapclient.Client
	var err error

	if c.tls {
		client, err = imapclient.DialTLS(addr, nil)
	} else {
		client, err = imapclient.DialStartTLS(addr, nil)
	}
	if err != nil {
		return nil, fmt.Errorf("connecting to IMAP %s: %w", addr, err)
	}

	if err := client.Login(c.username, c.password).Wait(); err != nil {
		_ = client.Logout().Wait()
		return nil, &source.AuthError{
			Backend: "imap",
			Message: fmt.Sprintf(
				"authentication failed for %s: %v",
				c.username, err,
			),
		}
	}

	return client, nil
}

// FetchedMessage holds the envelope and raw header of one fetched message.
type FetchedMessage struct {
	UID       uint32
	Envelope  *imap.Envelope
	RawHeader []byte
}

// FetchEnvelope connects to IMAP, selects the mailbox, and fetches the
// envelope plus the peeked message header for the given UID.
func (c *Client) FetchEnvelope(
	ctx context.Context, mailbox string, uid uint32,
) (*FetchedMessage, error) {
	client, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	if _, err := client.Select(mailbox, nil).Wait(); err != nil {
		return nil, fmt.Errorf("selecting %s: %w", mailbox, err)
	}

	uidSet := imap.UIDSetNum(imap.UID(uid))

	bodySection := &imap.FetchItemBodySection{
		Specifier: imap.PartSpecifierHeader,
		Peek:      true,
	}

	fetchOpts := &imap.FetchOptions{
		Envelope:    true,
		UID:         true,
		BodySection: []*imap.FetchItemBodySection{bodySection},
	}

	fetchCmd := client.Fetch(uidSet, fetchOpts)
	defer fetchCmd.Close()

	msg := fetchCmd.Next()
	if msg == nil {
		return nil, fmt.Errorf("message UID %d not found in %s", uid, mailbox)
	}

	buf, err := msg.Collect()
	if err != nil {
		return nil, fmt.Errorf("collecting message data: %w", err)
	}

	fetched := &FetchedMessage{
		UID:       uint32(buf.UID),
		Envelope:  buf.Envelope,
		RawHeader: buf.FindBodySection(bodySection),
	}

	if err := fetchCmd.Close(); err != nil {
		return fetched, fmt.Errorf("closing fetch: %w", err)
	}

	return fetched, nil
}

// ListMailboxes connects to IMAP and lists every mailbox the account can
// see, including shared namespaces.
func (c *Client) ListMailboxes(
	ctx context.Context,
) ([]*imap.ListData, error) {
	client, err := c.Connect(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = client.Logout().Wait() }()

	mailboxes, err := client.List("", "*", nil).Collect()
	if err != nil {
		return nil, fmt.Errorf("listing mailboxes: %w", err)
	}

	return mailboxes, nil
}
