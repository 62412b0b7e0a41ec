package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "993", cfg.IMAP.Port)
	assert.True(t, cfg.IMAP.TLS)
	assert.Empty(t, cfg.Account.Name)
}

func TestLoadConfigAccountSnapshot(t *testing.T) {
	path := writeConfig(t, `
account:
  name: alice@x.com
  identities:
    - id: id-default
      name: default
      display_name: Alice
      from_display: Alice Example
      from_address: alice@x.com
      default_signature_id: sig-1
  grants:
    - right: send_as
      targets:
        - email: bob@y.com
          display_name: Bob
imap:
  host: mail.x.com
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "alice@x.com", cfg.Account.Name)
	require.Len(t, cfg.Account.Identities, 1)
	assert.Equal(t, "Alice Example", cfg.Account.Identities[0].FromDisplay)
	assert.Equal(t, "sig-1", cfg.Account.Identities[0].DefaultSignatureID)

	require.Len(t, cfg.Account.Grants, 1)
	assert.Equal(t, RightSendAs, cfg.Account.Grants[0].Right)
	assert.Equal(t, "bob@y.com", cfg.Account.Grants[0].Targets[0].Email)

	// The IMAP username defaults to the account name.
	assert.Equal(t, "alice@x.com", cfg.IMAP.Username)
	assert.Equal(t, "mail.x.com", cfg.IMAP.Host)
}

func TestLoadConfigAliasShapes(t *testing.T) {
	t.Run("scalar alias", func(t *testing.T) {
		path := writeConfig(t, `
account:
  name: alice@x.com
settings:
  aliases: alice.alias@x.com
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "alice.alias@x.com", cfg.Settings.Aliases)
	})

	t.Run("list alias", func(t *testing.T) {
		path := writeConfig(t, `
account:
  name: alice@x.com
settings:
  aliases:
    - a@x.com
    - b@x.com
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)

		list, ok := cfg.Settings.Aliases.([]any)
		require.True(t, ok)
		assert.Equal(t, []any{"a@x.com", "b@x.com"}, list)
	})

	t.Run("absent alias", func(t *testing.T) {
		path := writeConfig(t, `
account:
  name: alice@x.com
`)
		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Nil(t, cfg.Settings.Aliases)
	})
}

func TestSaveAndReloadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := &AppConfig{
		Account: Account{
			Name: "alice@x.com",
			Identities: []IdentityProfile{
				{ID: "id-default", Name: "default", FromAddress: "alice@x.com"},
			},
		},
		IMAP:  IMAPConfig{Host: "mail.x.com", Port: "993", TLS: true},
		Store: StoreConfig{Path: "/tmp/identity.db"},
	}

	require.NoError(t, SaveConfig(path, cfg))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.Account.Name, loaded.Account.Name)
	require.Len(t, loaded.Account.Identities, 1)
	assert.Equal(t, "id-default", loaded.Account.Identities[0].ID)
	assert.Equal(t, cfg.Store.Path, loaded.Store.Path)
}
