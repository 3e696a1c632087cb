// ABOUTME: Table definitions for documents, prompts, and generated documents
// ABOUTME: Each table has per-dialect DDL; all statements are idempotent
package storage

// Table names
const (
	TableDocuments          = "documents"
	TablePrompts            = "prompts"
	TableGeneratedDocuments = "generated_documents"
)

// SchemaVersion is the current schema version
const SchemaVersion = 1

var schemas = map[string]map[Dialect][]string{
	TableDocuments: {
		SQLite: {`
CREATE TABLE IF NOT EXISTS documents (
    content_hash TEXT PRIMARY KEY,
    file_name TEXT NOT NULL UNIQUE,
    metadata TEXT,
    content_markdown TEXT NOT NULL,
    content_plain TEXT NOT NULL,
    word_count INTEGER NOT NULL
)`},
		Postgres: {`
CREATE TABLE IF NOT EXISTS documents (
    content_hash VARCHAR(32) PRIMARY KEY,
    file_name VARCHAR(2048) NOT NULL UNIQUE,
    metadata JSONB,
    content_markdown TEXT NOT NULL,
    content_plain TEXT NOT NULL,
    word_count INTEGER NOT NULL
)`},
		MySQL: {`
CREATE TABLE IF NOT EXISTS documents (
    content_hash VARCHAR(32) NOT NULL PRIMARY KEY,
    file_name VARCHAR(512) NOT NULL UNIQUE,
    metadata JSON,
    content_markdown LONGTEXT NOT NULL,
    content_plain LONGTEXT NOT NULL,
    word_count INT NOT NULL
)`},
	},
	TablePrompts: {
		SQLite: {`
CREATE TABLE IF NOT EXISTS prompts (
    id TEXT PRIMARY KEY,
    content_hash TEXT NOT NULL,
    generated_prompt TEXT NOT NULL,
    model_name TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    FOREIGN KEY (content_hash) REFERENCES documents(content_hash) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_prompts_content_hash ON prompts(content_hash)`,
		},
		Postgres: {`
CREATE TABLE IF NOT EXISTS prompts (
    id VARCHAR(36) PRIMARY KEY,
    content_hash VARCHAR(32) NOT NULL,
    generated_prompt TEXT NOT NULL,
    model_name VARCHAR(255) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    FOREIGN KEY (content_hash) REFERENCES documents(content_hash) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_prompts_content_hash ON prompts(content_hash)`,
		},
		MySQL: {`
CREATE TABLE IF NOT EXISTS prompts (
    id VARCHAR(36) NOT NULL PRIMARY KEY,
    content_hash VARCHAR(32) NOT NULL,
    generated_prompt LONGTEXT NOT NULL,
    model_name VARCHAR(255) NOT NULL,
    created_at DATETIME(6) NOT NULL,
    FOREIGN KEY (content_hash) REFERENCES documents(content_hash) ON DELETE CASCADE
)`},
	},
	TableGeneratedDocuments: {
		SQLite: {`
CREATE TABLE IF NOT EXISTS generated_documents (
    id TEXT PRIMARY KEY,
    prompt_id TEXT NOT NULL,
    content_markdown TEXT NOT NULL,
    content_plain TEXT NOT NULL,
    model_name TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    created_at DATETIME NOT NULL,
    FOREIGN KEY (prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_generated_prompt ON generated_documents(prompt_id)`,
		},
		Postgres: {`
CREATE TABLE IF NOT EXISTS generated_documents (
    id VARCHAR(36) PRIMARY KEY,
    prompt_id VARCHAR(36) NOT NULL,
    content_markdown TEXT NOT NULL,
    content_plain TEXT NOT NULL,
    model_name VARCHAR(255) NOT NULL,
    content_hash VARCHAR(32) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    FOREIGN KEY (prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
)`,
			`CREATE INDEX IF NOT EXISTS idx_generated_prompt ON generated_documents(prompt_id)`,
		},
		MySQL: {`
CREATE TABLE IF NOT EXISTS generated_documents (
    id VARCHAR(36) NOT NULL PRIMARY KEY,
    prompt_id VARCHAR(36) NOT NULL,
    content_markdown LONGTEXT NOT NULL,
    content_plain LONGTEXT NOT NULL,
    model_name VARCHAR(255) NOT NULL,
    content_hash VARCHAR(32) NOT NULL,
    created_at DATETIME(6) NOT NULL,
    FOREIGN KEY (prompt_id) REFERENCES prompts(id) ON DELETE CASCADE
)`},
	},
}

// tableParents lists the tables a table's foreign keys point at
var tableParents = map[string][]string{
	TablePrompts:            {TableDocuments},
	TableGeneratedDocuments: {TablePrompts},
}
