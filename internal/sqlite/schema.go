package sqlite

// Schema DDL for the snapshot database. The position and ordinal columns
// preserve book insertion order and phone list order across round trips.
const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    record_id TEXT PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    birthday TEXT,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    position INTEGER NOT NULL
);`

	createPhones = `CREATE TABLE IF NOT EXISTS phones (
    record_id TEXT NOT NULL,
    ordinal INTEGER NOT NULL,
    phone TEXT NOT NULL,
    PRIMARY KEY (record_id, ordinal),
    FOREIGN KEY (record_id) REFERENCES contacts(record_id) ON DELETE CASCADE
);`
)

// schemaStatements lists the DDL applied on Attach.
var schemaStatements = []string{
	createContacts,
	createPhones,
}
