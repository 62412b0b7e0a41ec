package store

// migration holds a single schema migration with its target version and SQL.
type migration struct {
	version int
	sql     string
}

// migrations is the ordered list of schema migrations.
// Each migration's version must be sequential starting from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS folders (
	id            TEXT NOT NULL,
	account       TEXT NOT NULL,
	name          TEXT NOT NULL,
	parent_id     TEXT NOT NULL DEFAULT '',
	owner_account TEXT NOT NULL DEFAULT '',
	synced_at     DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (account, id)
);

CREATE TABLE IF NOT EXISTS resolutions (
	id            TEXT PRIMARY KEY,
	account       TEXT NOT NULL,
	message_uid   INTEGER NOT NULL,
	folder_id     TEXT NOT NULL DEFAULT '',
	address       TEXT NOT NULL,
	identity_id   TEXT NOT NULL DEFAULT '',
	identity_name TEXT NOT NULL DEFAULT '',
	created_at    DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_folders_account ON folders(account);
CREATE INDEX IF NOT EXISTS idx_resolutions_account ON resolutions(account);
CREATE INDEX IF NOT EXISTS idx_resolutions_created ON resolutions(created_at);

INSERT INTO schema_version (version) VALUES (1);
`,
	},
	{
		version: 2,
		sql: `
CREATE INDEX IF NOT EXISTS idx_folders_owner ON folders(owner_account);

INSERT INTO schema_version (version) VALUES (2);
`,
	},
}
