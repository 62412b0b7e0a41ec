package credential

import (
	"fmt"

	"github.com/99designs/keyring"
)

const serviceName = "webmail-identity"

// openKeyring returns a configured keyring instance.
func openKeyring() (keyring.Keyring, error) {
	ring, err := keyring.Open(keyring.Config{
		ServiceName: serviceName,
		AllowedBackends: []keyring.BackendType{
			keyring.KeychainBackend,
			keyring.SecretServiceBackend,
			keyring.WinCredBackend,
			keyring.PassBackend,
			keyring.FileBackend,
		},
		FileDir:                  "~/.config/webmail-identity/credentials",
		FilePasswordFunc:         keyring.FixedStringPrompt("webmail-identity-file-key"),
		KeychainTrustApplication: true,
	})
	if err != nil {
		return nil, fmt.Errorf("opening keyring: %w", err)
	}
	return ring, nil
}

// passwordKey namespaces the IMAP password per mailbox user.
func passwordKey(username string) string {
	return "imap-password:" + username
}

// IMAPPassword retrieves the stored IMAP password for a mailbox user.
func IMAPPassword(username string) (string, error) {
	ring, err := openKeyring()
	if err != nil {
		return "", err
	}

	item, err := ring.Get(passwordKey(username))
	if err != nil {
		return "", fmt.Errorf("getting IMAP password for %q: %w", username, err)
	}

	return string(item.Data), nil
}

// SetIMAPPassword stores the IMAP password for a mailbox user in the
// system keyring.
func SetIMAPPassword(username, password string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Set(keyring.Item{
		Key:  passwordKey(username),
		Data: []byte(password),
	})
	if err != nil {
		return fmt.Errorf("setting IMAP password for %q: %w", username, err)
	}

	return nil
}

// DeleteIMAPPassword removes the stored IMAP password for a mailbox user.
func DeleteIMAPPassword(username string) error {
	ring, err := openKeyring()
	if err != nil {
		return err
	}

	err = ring.Remove(passwordKey(username))
	if err != nil {
		return fmt.Errorf("deleting IMAP password for %q: %w", username, err)
	}

	return nil
}
