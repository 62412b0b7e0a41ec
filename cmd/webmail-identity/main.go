// Command webmail-identity resolves the reply identity for a message in the
// configured mailbox: it syncs the folder tree, fetches the message's
// participants, runs the resolution engine, and records the outcome.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/nhle/webmail-identity/internal/compose"
	"github.com/nhle/webmail-identity/internal/credential"
	"github.com/nhle/webmail-identity/internal/folder"
	"github.com/nhle/webmail-identity/internal/identity"
	"github.com/nhle/webmail-identity/internal/model"
	"github.com/nhle/webmail-identity/internal/source"
	"github.com/nhle/webmail-identity/internal/source/imapsource"
	"github.com/nhle/webmail-identity/internal/store"
)

func main() {
	var (
		configPath  = flag.String("config", model.DefaultConfigPath(), "path to the configuration file")
		mailbox     = flag.String("mailbox", "INBOX", "mailbox containing the message")
		uid         = flag.Uint("uid", 0, "UID of the message to resolve a reply identity for")
		setPassword = flag.Bool("set-password", false, "store the IMAP password from stdin and exit")
		offline     = flag.Bool("offline", false, "use the stored folder snapshot instead of syncing")
	)
	flag.Parse()

	if err := run(*configPath, *mailbox, uint32(*uid), *setPassword, *offline); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, mailbox string, uid uint32, setPassword, offline bool) error {
	cfg, err := model.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if cfg.Account.Name == "" {
		return fmt.Errorf("no account configured in %s", configPath)
	}

	if setPassword {
		return storePassword(cfg.IMAP.Username)
	}

	if uid == 0 {
		return fmt.Errorf("a message UID is required (-uid)")
	}

	password, err := credential.IMAPPassword(cfg.IMAP.Username)
	if err != nil {
		return fmt.Errorf("no IMAP password stored (run with -set-password first): %w", err)
	}

	db, err := store.NewSQLiteStore(cfg.Store.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx := context.Background()
	var provider source.MessageProvider = imapsource.NewAdapter(
		cfg.IMAP.Host, cfg.IMAP.Port,
		cfg.IMAP.Username, password, cfg.IMAP.TLS,
	)

	folders, err := loadFolders(ctx, db, provider, cfg.Account.Name, offline)
	if err != nil {
		return err
	}

	msg, err := provider.FetchMessage(ctx, mailbox, uid)
	if err != nil {
		return err
	}

	tree := folder.NewTree(folders, cfg.Account.Name)

	selector := identity.NewSelector()
	resolved, err := selector.Resolve(cfg.Account, cfg.Settings, *msg, tree)
	if err != nil {
		return fmt.Errorf("resolving reply identity: %w", err)
	}

	catalog := identity.NewCatalog(cfg.Account, cfg.Settings)
	printResolution(catalog, resolved)

	if prefill := compose.ReplyPrefill(resolved); prefill.SignatureID != "" {
		fmt.Printf("signature: %s\n", prefill.SignatureID)
	}

	err = db.RecordResolution(ctx, store.Resolution{
		Account:      cfg.Account.Name,
		MessageUID:   msg.UID,
		FolderID:     msg.FolderID,
		Address:      resolved.Address,
		IdentityID:   resolved.IdentityID,
		IdentityName: resolved.IdentityName,
	})
	if err != nil {
		return err
	}

	return nil
}

// loadFolders syncs the folder tree from IMAP, falling back to (or, in
// offline mode, starting from) the stored snapshot.
func loadFolders(
	ctx context.Context,
	db *store.SQLiteStore,
	provider source.MessageProvider,
	account string,
	offline bool,
) ([]model.Folder, error) {
	if offline {
		return db.GetFolders(ctx, account)
	}

	folders, err := provider.ListFolders(ctx)
	if err != nil {
		log.Printf("folder sync failed, using stored snapshot: %v", err)
		return db.GetFolders(ctx, account)
	}

	if err := db.ReplaceFolders(ctx, account, folders); err != nil {
		return nil, err
	}
	return folders, nil
}

// printResolution prints the resolved identity and, when it references a
// catalog entry, its full description.
func printResolution(catalog *identity.Catalog, resolved model.MatchingReplyIdentity) {
	if d := catalog.ByID(resolved.IdentityID); d != nil {
		fmt.Println(catalog.Describe(*d))
		return
	}
	if resolved.Name != "" {
		fmt.Printf("%s <%s>\n", resolved.Name, resolved.Address)
		return
	}
	fmt.Println(resolved.Address)
}

// storePassword reads the IMAP password from stdin and saves it to the
// system keyring.
func storePassword(username string) error {
	fmt.Fprintf(os.Stderr, "IMAP password for %s: ", username)

	var password string
	if _, err := fmt.Scanln(&password); err != nil {
		return fmt.Errorf("reading password: %w", err)
	}

	if err := credential.SetIMAPPassword(username, password); err != nil {
		return err
	}

	fmt.Fprintln(os.Stderr, "password stored")
	return nil
}
