package db

// SchemaSQL is the complete schema for fresh baton installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL() so test schemas cannot drift from the one
// shipped to users: a repository referencing a missing column fails
// immediately with "no such column" at test time.
const SchemaSQL = `
-- Sessions (registry of agent sessions handoffs refer back to)
CREATE TABLE IF NOT EXISTS sessions (
	id TEXT PRIMARY KEY,
	title TEXT NOT NULL DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Session transcript messages (tail is served by read_session)
CREATE TABLE IF NOT EXISTS session_messages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL,
	role TEXT NOT NULL CHECK(role IN ('user', 'assistant')),
	content TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_session_messages_session ON session_messages(session_id);

-- Handoffs (immutable rendered prompts plus the state they came from)
CREATE TABLE IF NOT EXISTS handoffs (
	id TEXT PRIMARY KEY,
	session_id TEXT,
	format TEXT NOT NULL CHECK(format IN ('compact', 'detailed')),
	prompt TEXT NOT NULL,
	summary TEXT NOT NULL DEFAULT '',
	blocked TEXT,
	state_snapshot TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_handoffs_session ON handoffs(session_id);
CREATE INDEX IF NOT EXISTS idx_handoffs_created ON handoffs(created_at);
`

// InitSchema creates the database schema.
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}
	_, err = db.Exec(SchemaSQL)
	return err
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
