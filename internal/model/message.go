package model

// ParticipantRole is the position of a participant on a message.
type ParticipantRole string

const (
	RoleTo      ParticipantRole = "to"
	RoleCc      ParticipantRole = "cc"
	RoleBcc     ParticipantRole = "bcc"
	RoleFrom    ParticipantRole = "from"
	RoleReplyTo ParticipantRole = "reply_to"
	RoleSender  ParticipantRole = "sender"
)

// Participant is one address on a message, with its role.
type Participant struct {
	Address  string
	FullName string
	Role     ParticipantRole
}

// Message is the slice of a mail message the engine consumes: its
// participants and a reference to the folder it lives in.
type Message struct {
	// UID is the message's identifier within its mailbox.
	UID uint32

	// MessageID is the RFC 5322 Message-ID, when known.
	MessageID string

	Subject string

	// FolderID references the folder containing the message; resolved to an
	// owning account through the folder tree.
	FolderID string

	// Participants lists every address on the message in header order.
	Participants []Participant
}

// RecipientWeight is the scoring record for one candidate recipient.
// It lives for a single resolution call and is never persisted.
type RecipientWeight struct {
	Address  string
	FullName string
	Role     ParticipantRole

	// Index is the recipient's position in extraction order, used as the
	// final tie-break key.
	Index int

	// MatchingAddress reports whether the address is one of the account's
	// own directory addresses.
	MatchingAddress bool

	// MatchingIdentity is the first catalog identity whose from-address
	// equals the recipient's address, if any.
	MatchingIdentity *IdentityDescriptor

	// Weight is the composite ownership x role x type score.
	Weight int
}
